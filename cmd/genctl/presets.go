package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// presets are optional CLI defaults loaded from a YAML file. Flags set
// explicitly always win.
type presets struct {
	Platform string `yaml:"platform"`
	Tone     string `yaml:"tone"`
	Language string `yaml:"language"`
	Lines    int    `yaml:"lines"`
}

func loadPresets(path string) (presets, error) {
	var p presets
	if path == "" {
		return p, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return p, fmt.Errorf("read presets: %w", err)
	}
	if err := yaml.Unmarshal(data, &p); err != nil {
		return p, fmt.Errorf("parse presets: %w", err)
	}
	return p, nil
}
