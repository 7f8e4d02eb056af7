package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/atomicstack/tabshell/internal/nav"
	"gopkg.in/yaml.v3"
)

// fileConfig mirrors the YAML config file. Pointer fields distinguish unset
// keys from zero values.
type fileConfig struct {
	Width       *int      `yaml:"width"`
	Height      *int      `yaml:"height"`
	Footer      *bool     `yaml:"footer"`
	Verbose     *bool     `yaml:"verbose"`
	Trace       *bool     `yaml:"trace"`
	LogFile     *string   `yaml:"log_file"`
	RetainState *bool     `yaml:"retain_state"`
	Reselect    *string   `yaml:"reselect"`
	Tabs        []nav.Tab `yaml:"tabs"`
}

func loadFile(path string) (fileConfig, error) {
	var cfg fileConfig
	if strings.TrimSpace(path) == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return fileConfig{}, nil
		}
		return fileConfig{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

func (fileConfig) intOr(v *int, fallback int) int {
	if v == nil {
		return fallback
	}
	return *v
}

func (fileConfig) boolOr(v *bool, fallback bool) bool {
	if v == nil {
		return fallback
	}
	return *v
}

func (fileConfig) stringOr(v *string, fallback string) string {
	if v == nil {
		return fallback
	}
	return *v
}
