package app

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	yaml "gopkg.in/yaml.v3"
)

// FileConfig represents the single-file configuration schema. Nested
// sections improve readability and map naturally to flags.
type FileConfig struct {
	Input  string `yaml:"input" json:"input"`
	URL    string `yaml:"url" json:"url"`
	Output string `yaml:"output" json:"output"`
	Action string `yaml:"action" json:"action"`

	Timestamps bool   `yaml:"timestamps" json:"timestamps"`
	Separator  string `yaml:"separator" json:"separator"`

	Selectors struct {
		Container string `yaml:"container" json:"container"`
		Timestamp string `yaml:"timestamp" json:"timestamp"`
		Content   string `yaml:"content" json:"content"`
	} `yaml:"selectors" json:"selectors"`

	UA      string `yaml:"ua" json:"ua"`
	Verbose bool   `yaml:"verbose" json:"verbose"`
}

// LoadConfigFile reads YAML or JSON into FileConfig.
func LoadConfigFile(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &fc); err != nil {
			return fc, fmt.Errorf("parse yaml: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(b, &fc); err != nil {
			return fc, fmt.Errorf("parse json: %w", err)
		}
	default:
		// Try YAML then JSON
		if err := yaml.Unmarshal(b, &fc); err != nil {
			if jerr := json.Unmarshal(b, &fc); jerr != nil {
				return fc, fmt.Errorf("parse config: %v (yaml) / %v (json)", err, jerr)
			}
		}
	}
	return fc, nil
}

// Defaults the flag layer establishes; file config may only override fields
// still carrying these values.
const (
	ActionDefault    = string(ActionText)
	SeparatorDefault = " "
	UserAgentDefault = "transcribe/1.0 (+https://github.com/hyperifyio/transcribe)"
)

// ApplyFileConfig overlays values from FileConfig into cfg for any fields
// that are currently unset or at their flag default. Flags should already
// have been parsed; this lets file config supply defaults while preserving
// explicit flags.
func ApplyFileConfig(cfg *Config, fc FileConfig) {
	if cfg == nil {
		return
	}
	if cfg.InputPath == "" && fc.Input != "" {
		cfg.InputPath = fc.Input
	}
	if cfg.InputURL == "" && fc.URL != "" {
		cfg.InputURL = fc.URL
	}
	if cfg.OutputPath == "" && fc.Output != "" {
		cfg.OutputPath = fc.Output
	}
	if (cfg.Action == "" || cfg.Action == Action(ActionDefault)) && fc.Action != "" {
		cfg.Action = Action(fc.Action)
	}
	if !cfg.IncludeTimestamps && fc.Timestamps {
		cfg.IncludeTimestamps = true
	}
	if cfg.Separator == SeparatorDefault && fc.Separator != "" {
		cfg.Separator = fc.Separator
	}
	if cfg.ContainerSelector == "" && fc.Selectors.Container != "" {
		cfg.ContainerSelector = fc.Selectors.Container
	}
	if cfg.TimestampClass == "" && fc.Selectors.Timestamp != "" {
		cfg.TimestampClass = fc.Selectors.Timestamp
	}
	if cfg.ContentClass == "" && fc.Selectors.Content != "" {
		cfg.ContentClass = fc.Selectors.Content
	}
	if (cfg.UserAgent == "" || cfg.UserAgent == UserAgentDefault) && fc.UA != "" {
		cfg.UserAgent = fc.UA
	}
	if !cfg.Verbose && fc.Verbose {
		cfg.Verbose = true
	}
}
