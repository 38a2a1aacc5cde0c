package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

type Config struct {
	Env            string        `yaml:"env" env:"APP_ENV" env-default:"development"`
	LogLevel       string        `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	HTTPHost       string        `yaml:"http-host" env:"HTTP_HOST" env-default:"127.0.0.1"`
	HTTPPort       string        `yaml:"http-port" env:"HTTP_PORT" env-default:"9090"`
	StaticCacheAge time.Duration `yaml:"static-cache-age" env:"STATIC_CACHE_AGE" env-default:"5m"`
	RateLimit      RateLimit     `yaml:"rate-limit"`
}

type RateLimit struct {
	RPS   int `yaml:"rps" env:"RATE_LIMIT_RPS" env-default:"5"`
	Burst int `yaml:"burst" env:"RATE_LIMIT_BURST" env-default:"10"`
}

// MustLoad - loads .env, then config.yml if it exists, then the environment.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config: %w", err))
	}

	return config
}

func Load(path string) (*Config, error) {
	// a missing .env is fine, the variables may come from the shell
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("unable to load .env: %w", err)
	}

	config := &Config{}

	_, err := os.Stat(path)
	switch {
	case err == nil:
		if err = cleanenv.ReadConfig(path, config); err != nil {
			return nil, fmt.Errorf("unable to read config file: %w", err)
		}
	case errors.Is(err, os.ErrNotExist):
		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("unable to read environment: %w", err)
		}
	default:
		return nil, fmt.Errorf("unable to stat config file: %w", err)
	}

	return config, nil
}

func (that *Config) GetHTTPAddr() string {
	return net.JoinHostPort(that.HTTPHost, that.HTTPPort)
}

func (that *Config) IsProduction() bool {
	return that.Env == EnvProduction
}
