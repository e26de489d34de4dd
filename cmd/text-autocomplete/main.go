package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/eli32-vlc/text-autocomplete/editor"
	"github.com/eli32-vlc/text-autocomplete/internal/ai"
	"github.com/eli32-vlc/text-autocomplete/internal/config"
)

func main() {
	var filename string
	if len(os.Args) > 1 {
		filename = os.Args[1]
	}

	settings, err := config.Load(config.DefaultPath)
	if err != nil {
		// Defaults are already in place; the session just runs with them.
		fmt.Fprintln(os.Stderr, "config:", err)
	}

	client := ai.New(ai.Config{
		Endpoint:    settings.Endpoint,
		Key:         settings.Key,
		Model:       settings.Model,
		MaxTokens:   settings.MaxTokens,
		Temperature: settings.Temperature,
	})

	m := editor.New(editor.Config{
		Settings:  settings,
		Completer: client,
		Filename:  filename,
	})

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
