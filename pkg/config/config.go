package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	EnvPrefix = "FITHOUSE"

	EnvAppEnv     = "FITHOUSE_APP_ENV"
	EnvLogLevel   = "FITHOUSE_LOG_LEVEL"
	EnvAPIBaseURL = "FITHOUSE_API_BASE_URL"
	EnvSessionDir = "FITHOUSE_SESSION_DIR"

	AppEnvDev  = "development"
	AppEnvProd = "production"
)

type Config struct {
	App     AppConfig
	API     APIConfig
	Session SessionConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.API.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"FITHOUSE_APP_ENV" default:"production"`
	LogLevel     string `envconfig:"FITHOUSE_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"FITHOUSE_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type APIConfig struct {
	BaseURL string        `envconfig:"FITHOUSE_API_BASE_URL" required:"true"`
	Timeout time.Duration `envconfig:"FITHOUSE_API_TIMEOUT" default:"15s"`
}

func (a *APIConfig) validate() error {
	trimmed := strings.TrimRight(strings.TrimSpace(a.BaseURL), "/")
	if trimmed == "" {
		return fmt.Errorf("%s is required", EnvAPIBaseURL)
	}
	if !strings.HasPrefix(trimmed, "http://") && !strings.HasPrefix(trimmed, "https://") {
		return fmt.Errorf("%s must be an http(s) URL", EnvAPIBaseURL)
	}
	a.BaseURL = trimmed
	return nil
}

// SessionConfig locates the on-disk session files. The structured session file
// holds {token, user, company}; the flat token file is the legacy fallback kept
// for sessions issued before the structured record existed.
type SessionConfig struct {
	Dir           string `envconfig:"FITHOUSE_SESSION_DIR"`
	UserFile      string `envconfig:"FITHOUSE_SESSION_USER_FILE" default:"fit-house-user.json"`
	LegacyTokFile string `envconfig:"FITHOUSE_SESSION_TOKEN_FILE" default:"fit-house-token"`
}
