package config

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"time"
	_ "time/tzdata"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// DefaultEndpointURL is the collection script the form posts to
const DefaultEndpointURL = "https://script.google.com/macros/s/AKfycbz96cEfcv6tdQ6qADQhengTAIuEtCt2gZFAWQfJkgp32HSxAvusIyQCvqKo0zDUjW3j/exec"

// Config holds all application configuration values
type Config struct {
	Port    string `env:"PORT" envDefault:"8080"`
	GinMode string `env:"GIN_MODE" envDefault:"debug"`

	EndpointURL       string        `env:"SUBMISSION_ENDPOINT_URL"`
	SubmissionTimeout time.Duration `env:"SUBMISSION_TIMEOUT" envDefault:"0s"`

	DistrictsFile      string   `env:"DISTRICTS_FILE"`
	CountryCodes       []string `env:"COUNTRY_CODES" envDefault:"+91,+1,+44,+971" envSeparator:","`
	DefaultCountryCode string   `env:"DEFAULT_COUNTRY_CODE" envDefault:"+91"`
	ScheduleTimezone   string   `env:"SCHEDULE_TIMEZONE" envDefault:"UTC"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"console"`

	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envDefault:"*" envSeparator:","`
	MetricsEnabled     bool     `env:"METRICS_ENABLED" envDefault:"true"`
	MetricsPath        string   `env:"METRICS_PATH" envDefault:"/metrics"`
}

// LoadEnvFiles loads the .env files that exist, in order. Values already in
// the environment win.
func LoadEnvFiles(files ...string) (int, error) {
	existing := make([]string, 0, len(files))
	for _, f := range files {
		if _, err := os.Stat(f); err == nil {
			existing = append(existing, f)
		}
	}
	if len(existing) == 0 {
		return 0, nil
	}
	return len(existing), godotenv.Load(existing...)
}

// LoadConfig reads configuration from environment variables
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("error parsing environment: %w", err)
	}
	if cfg.EndpointURL == "" {
		cfg.EndpointURL = DefaultEndpointURL
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Validate checks the configuration for errors
func (c *Config) Validate() error {
	if c.EndpointURL == "" {
		return errors.New("submission endpoint URL is required")
	}
	if c.SubmissionTimeout < 0 {
		return fmt.Errorf("submission timeout must be non-negative, got %s", c.SubmissionTimeout)
	}
	if len(c.CountryCodes) == 0 {
		return errors.New("at least one country code is required")
	}
	if !slices.Contains(c.CountryCodes, c.DefaultCountryCode) {
		return fmt.Errorf("default country code %q is not in %v", c.DefaultCountryCode, c.CountryCodes)
	}
	if _, err := time.LoadLocation(c.ScheduleTimezone); err != nil {
		return fmt.Errorf("unknown schedule timezone %q: %w", c.ScheduleTimezone, err)
	}
	return nil
}

// Location returns the zone in which the schedule date is checked
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.ScheduleTimezone)
	if err != nil {
		return time.UTC
	}
	return loc
}
