package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/pokerhand/poker"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "pokerhand.hcl"))
	require.NoError(t, err)

	assert.Equal(t, Default(), cfg)
	assert.Equal(t, "localhost:8080", cfg.ServerAddress())
	assert.Equal(t, poker.DefaultSamples, cfg.Samples)
	assert.Equal(t, log.InfoLevel, cfg.Level())
	require.NoError(t, cfg.Validate())
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pokerhand.hcl")
	src := `
server {
  address   = "0.0.0.0"
  port      = 9090
  log_level = "debug"
}

batch {
  workers = 4
}

sample {
  hand = "10s Js Qs Ks As"
}

sample {
  hand = "2c 2c 3d 4s 5h"
}
`
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "0.0.0.0:9090", cfg.ServerAddress())
	assert.Equal(t, log.DebugLevel, cfg.Level())
	assert.Equal(t, 4, cfg.Batch.Workers)
	assert.Equal(t, []string{"10s Js Qs Ks As", "2c 2c 3d 4s 5h"}, cfg.Samples)
}

func TestParsePartialServerBlock(t *testing.T) {
	cfg, err := Parse([]byte(`server { port = 7000 }`), "inline.hcl")
	require.NoError(t, err)

	assert.Equal(t, DefaultAddress, cfg.Server.Address)
	assert.Equal(t, 7000, cfg.Server.Port)
	assert.Equal(t, DefaultLogLevel, cfg.Server.LogLevel)
	assert.Equal(t, poker.DefaultSamples, cfg.Samples)
}

func TestParseDoesNotAliasDefaultSamples(t *testing.T) {
	cfg, err := Parse([]byte(`sample { hand = "Kc Kd Ks 3d 3c" }`), "inline.hcl")
	require.NoError(t, err)
	assert.Equal(t, []string{"Kc Kd Ks 3d 3c"}, cfg.Samples)
	assert.Equal(t, "5c 6c 7c 8c 9c", poker.DefaultSamples[0])
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"syntax", `server {`},
		{"unknown block", `table "main" {}`},
		{"wrong type", `server { port = "eighty" }`},
		{"sample missing hand", `sample {}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.src), "bad.hcl")
			assert.Error(t, err)
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"port too low", func(c *Config) { c.Server.Port = 0 }},
		{"port too high", func(c *Config) { c.Server.Port = 70000 }},
		{"bad log level", func(c *Config) { c.Server.LogLevel = "loud" }},
		{"negative workers", func(c *Config) { c.Batch.Workers = -1 }},
		{"empty sample", func(c *Config) { c.Samples = []string{""} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
