package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad_MissingFileYieldsDefaultsAndWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	s, err := Load(path)
	if err != nil {
		t.Fatalf("load: unexpected error: %v", err)
	}
	if s != Default() {
		t.Fatalf("settings: got %+v, want defaults", s)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("default file not written: %v", err)
	}
}

func TestLoad_PartialFileKeepsDefaultsForMissingFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	body := `{"api_key": "sk-test", "model": "gpt-4o-mini", "pause_delay_ms": 350}`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	s, err := Load(path)
	if err != nil {
		t.Fatalf("load: unexpected error: %v", err)
	}
	if s.Key != "sk-test" {
		t.Fatalf("key: got %q", s.Key)
	}
	if s.Model != "gpt-4o-mini" {
		t.Fatalf("model: got %q", s.Model)
	}
	if s.PauseDelayMS != 350 {
		t.Fatalf("pause delay: got %d", s.PauseDelayMS)
	}
	if s.Endpoint != Default().Endpoint {
		t.Fatalf("endpoint should default: got %q", s.Endpoint)
	}
	if s.MaxTokens != Default().MaxTokens {
		t.Fatalf("max tokens should default: got %d", s.MaxTokens)
	}
	if s.Temperature != Default().Temperature {
		t.Fatalf("temperature should default: got %v", s.Temperature)
	}
}

func TestLoad_MalformedFileReturnsDefaultsWithError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	s, err := Load(path)
	if err == nil {
		t.Fatalf("expected parse error")
	}
	if s != Default() {
		t.Fatalf("settings on error: got %+v, want defaults", s)
	}
}

func TestLoad_NonPositiveNumericsReset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	body := `{"max_tokens": 0, "temperature": -1, "pause_delay_ms": -5}`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	s, err := Load(path)
	if err != nil {
		t.Fatalf("load: unexpected error: %v", err)
	}
	if s != Default() {
		t.Fatalf("settings: got %+v, want defaults", s)
	}
}

func TestSaveThenLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	want := Settings{
		Endpoint:     "http://localhost:8080/v1",
		Key:          "sk-local",
		Model:        "local-model",
		MaxTokens:    64,
		Temperature:  0.2,
		PauseDelayMS: 150,
	}
	if err := Save(path, want); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got != want {
		t.Fatalf("round trip: got %+v, want %+v", got, want)
	}
}

func TestPauseDelay(t *testing.T) {
	s := Settings{PauseDelayMS: 250}
	if got := s.PauseDelay(); got != 250*time.Millisecond {
		t.Fatalf("pause delay: got %v", got)
	}
}
