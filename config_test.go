package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 1500*time.Millisecond, cfg.Session.LoginDelay)
	assert.Equal(t, 2800*time.Millisecond, cfg.Assist.MatchDelay)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "artaura.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
server:
  port: "9090"
database:
  path: /tmp/other.db
session:
  login_delay: 250ms
log:
  debug: true
`), 0o644))

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "/tmp/other.db", cfg.Database.Path)
	assert.Equal(t, 250*time.Millisecond, cfg.Session.LoginDelay)
	assert.True(t, cfg.Log.Debug)
	// unset keys keep their defaults
	assert.Equal(t, 2*time.Second, cfg.Session.SocialDelay)
	assert.Equal(t, 86400, cfg.Server.CookieMaxAge)

	_, err = LoadFromFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadConfigPortOverride(t *testing.T) {
	t.Setenv("PORT", "7070")
	cfg, err := loadConfig("")
	require.NoError(t, err)
	assert.Equal(t, "7070", cfg.Server.Port)

	t.Setenv("PORT", "not-a-port")
	_, err = loadConfig("")
	assert.ErrorContains(t, err, "server.port")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"port out of range", func(c *Config) { c.Server.Port = "70000" }, "server.port"},
		{"no database", func(c *Config) { c.Database.Path = "" }, "database.path"},
		{"bcrypt cost", func(c *Config) { c.Session.BcryptCost = 1 }, "session.bcrypt_cost"},
		{"negative delay", func(c *Config) { c.Assist.MatchDelay = -time.Second }, "assist.match_delay"},
		{"cookie age", func(c *Config) { c.Server.CookieMaxAge = 0 }, "server.cookie_max_age"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			assert.ErrorContains(t, cfg.Validate(), tt.want)
		})
	}
}
