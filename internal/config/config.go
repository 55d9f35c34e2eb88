// Package config loads the pokerhand HCL configuration file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/charmbracelet/log"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lox/pokerhand/poker"
)

const (
	DefaultAddress  = "localhost"
	DefaultPort     = 8080
	DefaultLogLevel = "info"
)

// Config is the resolved configuration with defaults applied.
type Config struct {
	Server  ServerSettings
	Batch   BatchSettings
	Samples []string
}

// ServerSettings configures the ranking service.
type ServerSettings struct {
	Address  string `hcl:"address,optional"`
	Port     int    `hcl:"port,optional"`
	LogLevel string `hcl:"log_level,optional"`
}

// BatchSettings configures batch ranking. Zero workers means one per CPU.
type BatchSettings struct {
	Workers int `hcl:"workers,optional"`
}

// SampleConfig is a single sample hand.
type SampleConfig struct {
	Hand string `hcl:"hand"`
}

// file mirrors the HCL layout; every block is optional.
type file struct {
	Server  *ServerSettings `hcl:"server,block"`
	Batch   *BatchSettings  `hcl:"batch,block"`
	Samples []SampleConfig  `hcl:"sample,block"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Server: ServerSettings{
			Address:  DefaultAddress,
			Port:     DefaultPort,
			LogLevel: DefaultLogLevel,
		},
		Samples: append([]string(nil), poker.DefaultSamples...),
	}
}

// Load reads filename. A missing file yields Default().
func Load(filename string) (*Config, error) {
	src, err := os.ReadFile(filename)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	return Parse(src, filename)
}

// Parse decodes HCL source. filename is only used in diagnostics.
func Parse(src []byte, filename string) (*Config, error) {
	parser := hclparse.NewParser()
	f, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var raw file
	diags = gohcl.DecodeBody(f.Body, nil, &raw)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	cfg := Default()
	if raw.Server != nil {
		if raw.Server.Address != "" {
			cfg.Server.Address = raw.Server.Address
		}
		if raw.Server.Port != 0 {
			cfg.Server.Port = raw.Server.Port
		}
		if raw.Server.LogLevel != "" {
			cfg.Server.LogLevel = raw.Server.LogLevel
		}
	}
	if raw.Batch != nil {
		cfg.Batch = *raw.Batch
	}
	if len(raw.Samples) > 0 {
		cfg.Samples = cfg.Samples[:0]
		for _, s := range raw.Samples {
			cfg.Samples = append(cfg.Samples, s.Hand)
		}
	}

	return cfg, nil
}

// Validate checks the configuration for values that cannot work.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Server.Port)
	}
	if _, err := log.ParseLevel(c.Server.LogLevel); err != nil {
		return fmt.Errorf("invalid log level %q", c.Server.LogLevel)
	}
	if c.Batch.Workers < 0 {
		return fmt.Errorf("batch workers must not be negative: %d", c.Batch.Workers)
	}
	for i, hand := range c.Samples {
		if hand == "" {
			return fmt.Errorf("sample %d: hand must not be empty", i+1)
		}
	}
	return nil
}

// ServerAddress returns host:port for the ranking service.
func (c *Config) ServerAddress() string {
	return fmt.Sprintf("%s:%d", c.Server.Address, c.Server.Port)
}

// Level returns the parsed log level, falling back to info.
func (c *Config) Level() log.Level {
	level, err := log.ParseLevel(c.Server.LogLevel)
	if err != nil {
		return log.InfoLevel
	}
	return level
}
