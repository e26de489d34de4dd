// Package config loads the editor settings from a JSON file, falling back
// to documented defaults when the file or individual fields are absent.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"
)

// DefaultPath is where settings are looked up unless overridden.
const DefaultPath = "config.json"

type Settings struct {
	Endpoint     string  `json:"api_endpoint"`
	Key          string  `json:"api_key"`
	Model        string  `json:"model"`
	MaxTokens    int     `json:"max_tokens"`
	Temperature  float64 `json:"temperature"`
	PauseDelayMS int     `json:"pause_delay_ms"`
}

func Default() Settings {
	return Settings{
		Endpoint:     "https://api.openai.com/v1",
		Key:          "",
		Model:        "gpt-4",
		MaxTokens:    30,
		Temperature:  0.7,
		PauseDelayMS: 200,
	}
}

// PauseDelay returns the typing-pause threshold as a duration.
func (s Settings) PauseDelay() time.Duration {
	return time.Duration(s.PauseDelayMS) * time.Millisecond
}

// Load reads settings from path. A missing file is not an error: the default
// file is written (best effort) and defaults are returned. A malformed or
// unreadable file returns defaults together with the error so the caller can
// report it and carry on.
func Load(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		_ = Save(path, Default())
		return Default(), nil
	}
	if err != nil {
		return Default(), fmt.Errorf("read config: %w", err)
	}

	s := Default()
	if err := json.Unmarshal(data, &s); err != nil {
		return Default(), fmt.Errorf("parse config: %w", err)
	}
	return normalize(s), nil
}

func Save(path string, s Settings) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0o644)
}

// normalize resets out-of-range numeric fields to their defaults. String
// fields keep defaults via the unmarshal overlay; absent numerics do too,
// but explicit zero or negative values are not meaningful here.
func normalize(s Settings) Settings {
	def := Default()
	if s.Endpoint == "" {
		s.Endpoint = def.Endpoint
	}
	if s.Model == "" {
		s.Model = def.Model
	}
	if s.MaxTokens <= 0 {
		s.MaxTokens = def.MaxTokens
	}
	if s.Temperature < 0 {
		s.Temperature = def.Temperature
	}
	if s.PauseDelayMS <= 0 {
		s.PauseDelayMS = def.PauseDelayMS
	}
	return s
}
