package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel        string        `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	HTTPPort        string        `yaml:"http-port" env:"HTTP_PORT" env-default:"8080"`
	GinMode         string        `yaml:"gin-mode" env:"GIN_MODE" env-default:"release"`
	ShutdownTimeout time.Duration `yaml:"shutdown-timeout" env:"SHUTDOWN_TIMEOUT" env-default:"5s"`
	Session         Session       `yaml:"session"`
}

type Session struct {
	CookieName string `yaml:"cookie-name" env:"COOKIE_NAME" env-default:"ttt_session"`
	MaxAge     int    `yaml:"max-age" env:"COOKIE_MAX_AGE" env-default:"86400"` // seconds
}

// TTL returns the cookie lifetime, which is also how long an idle session is kept.
func (that *Session) TTL() time.Duration {
	return time.Duration(that.MaxAge) * time.Second
}

// Load reads the config file at path. A missing file is not an error:
// settings then come from the environment and defaults.
func Load(path string) (*Config, error) {
	config := &Config{}

	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		if err := cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("unable to read config from env: %w", err)
		}
		return config, nil
	}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	return config, nil
}

// MustLoad is Load that panics on error.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}
	return config
}

// Addr returns the listen address for the HTTP server.
func (that *Config) Addr() string {
	return ":" + that.HTTPPort
}
