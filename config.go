package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"
)

// Config is the artaura server configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Session  SessionConfig  `yaml:"session"`
	Assist   AssistConfig   `yaml:"assist"`
	Log      LogConfig      `yaml:"log"`
}

type ServerConfig struct {
	// Port is overridden by the PORT environment variable.
	Port            string        `yaml:"port"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
	// CookieMaxAge is in seconds.
	CookieMaxAge int `yaml:"cookie_max_age"`
}

type DatabaseConfig struct {
	Path string `yaml:"path"`
}

type SessionConfig struct {
	LoginDelay  time.Duration `yaml:"login_delay"`
	SocialDelay time.Duration `yaml:"social_delay"`
	BcryptCost  int           `yaml:"bcrypt_cost"`
}

type AssistConfig struct {
	AnalyzeDelay time.Duration `yaml:"analyze_delay"`
	MatchDelay   time.Duration `yaml:"match_delay"`
}

type LogConfig struct {
	Debug bool `yaml:"debug"`
}

// DefaultConfig returns a Config with the delays the app has always used.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            "8080",
			ShutdownTimeout: 10 * time.Second,
			CookieMaxAge:    86400,
		},
		Database: DatabaseConfig{
			Path: "./artaura.db",
		},
		Session: SessionConfig{
			LoginDelay:  1500 * time.Millisecond,
			SocialDelay: 2 * time.Second,
			BcryptCost:  bcrypt.DefaultCost,
		},
		Assist: AssistConfig{
			AnalyzeDelay: 3500 * time.Millisecond,
			MatchDelay:   2800 * time.Millisecond,
		},
	}
}

// LoadFromFile reads a YAML file over the defaults.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	return config, nil
}

// loadConfig returns the defaults when path is empty, then applies the
// environment and validates.
func loadConfig(path string) (*Config, error) {
	config := DefaultConfig()
	if path != "" {
		var err error
		if config, err = LoadFromFile(path); err != nil {
			return nil, err
		}
	}
	config.applyEnv()
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

func (c *Config) applyEnv() {
	if port := os.Getenv("PORT"); port != "" {
		c.Server.Port = port
	}
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	port, err := strconv.Atoi(c.Server.Port)
	if err != nil || port < 1 || port > 65535 {
		return fmt.Errorf("server.port must be a port number, got %q", c.Server.Port)
	}
	if c.Server.CookieMaxAge <= 0 {
		return fmt.Errorf("server.cookie_max_age must be positive")
	}
	if c.Database.Path == "" {
		return fmt.Errorf("database.path is required")
	}
	if c.Session.BcryptCost < bcrypt.MinCost || c.Session.BcryptCost > bcrypt.MaxCost {
		return fmt.Errorf("session.bcrypt_cost must be between %d and %d", bcrypt.MinCost, bcrypt.MaxCost)
	}
	for name, d := range map[string]time.Duration{
		"session.login_delay":  c.Session.LoginDelay,
		"session.social_delay": c.Session.SocialDelay,
		"assist.analyze_delay": c.Assist.AnalyzeDelay,
		"assist.match_delay":   c.Assist.MatchDelay,
	} {
		if d < 0 {
			return fmt.Errorf("%s must not be negative", name)
		}
	}
	return nil
}
