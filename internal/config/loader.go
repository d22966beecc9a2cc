// Package config loads connection profiles for the kairos CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Profile is a saved server connection for the CLI.
type Profile struct {
	BaseURL string            `yaml:"baseUrl" json:"baseUrl"`
	Timeout string            `yaml:"timeout,omitempty" json:"timeout,omitempty"`
	Headers map[string]string `yaml:"headers,omitempty" json:"headers,omitempty"`
}

// Load reads a profile from a file.
//
// The file format is determined by extension:
//   - .yaml, .yml -> YAML
//   - .json -> JSON
func Load(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	return Parse(data, path)
}

// Parse parses profile data. The format is determined by the file extension
// in path, or defaults to YAML if the path is empty or has an unknown
// extension.
func Parse(data []byte, path string) (*Profile, error) {
	var profile Profile

	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".json":
		if err := json.Unmarshal(data, &profile); err != nil {
			return nil, fmt.Errorf("failed to parse JSON config: %w", err)
		}
	default:
		if err := yaml.Unmarshal(data, &profile); err != nil {
			return nil, fmt.Errorf("failed to parse YAML config: %w", err)
		}
	}

	if errs := Validate(&profile); len(errs) > 0 {
		return nil, fmt.Errorf("invalid config: %s", errs[0].Error())
	}

	return &profile, nil
}

// TimeoutDuration returns the profile's timeout, or the given default when
// none is set.
func (p *Profile) TimeoutDuration(def time.Duration) time.Duration {
	if p.Timeout == "" {
		return def
	}
	d, err := time.ParseDuration(p.Timeout)
	if err != nil {
		return def
	}
	return d
}
