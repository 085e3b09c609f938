// Package config loads sqltidy's YAML project configuration.
package config

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/sqltidy/sqltidy/pkg/consts"
	"gopkg.in/yaml.v3"
)

// Config represents the project configuration for sqltidy.
type Config struct {
	// LineLength is the maximum rendered line length before the formatter
	// splits a line. Defaults to consts.DefaultLineLength.
	LineLength int `yaml:"line_length,omitempty"`
}

// LoadConfig parses a sqltidy configuration from the provided io.Reader.
//
// The function expects YAML-formatted configuration data. It uses a
// streaming YAML decoder and fills in defaults for any values left unset.
//
// Example:
//
//	cfg, err := config.LoadConfig(strings.NewReader("line_length: 100\n"))
//	if err != nil {
//		return err
//	}
//	fmt.Printf("line length: %d\n", cfg.LineLength)
func LoadConfig(r io.Reader) (*Config, error) {
	var cfg Config
	if err := yaml.NewDecoder(r).Decode(&cfg); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal sqltidy config")
	}

	if cfg.LineLength == 0 {
		cfg.LineLength = consts.DefaultLineLength
	}
	if cfg.LineLength < 0 {
		return nil, errors.Errorf("line_length must be positive, got %d", cfg.LineLength)
	}

	return &cfg, nil
}

// LoadConfigFile loads a configuration from the specified file path. This is
// a convenience function that opens the file and calls LoadConfig.
func LoadConfigFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open file: %s", path)
	}
	defer func() { _ = f.Close() }()

	return LoadConfig(f)
}
