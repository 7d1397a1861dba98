package config

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Env holds startup overrides read from the environment. Preferences stay
// the source of truth for user-visible settings; the environment only wins
// at launch, which keeps the base URL injectable without rebuilding.
type Env struct {
	APIBaseURL string `envconfig:"API_BASE_URL" default:""`
	LogLevel   string `envconfig:"LOG_LEVEL" default:"info"` // debug, info, warn, error
	LogPretty  bool   `envconfig:"LOG_PRETTY" default:"true"`
}

// LoadEnv reads overrides from the environment, loading .env first if present
func LoadEnv() (*Env, error) {
	_ = godotenv.Load()

	var env Env
	if err := envconfig.Process("NEWSCAST", &env); err != nil {
		return nil, fmt.Errorf("failed to load environment config: %w", err)
	}
	return &env, nil
}

// Apply writes non-empty overrides into settings
func (e *Env) Apply(settings *Settings) {
	if e.APIBaseURL != "" {
		settings.SetAPIBaseURL(e.APIBaseURL)
	}
}
