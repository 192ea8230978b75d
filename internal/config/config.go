package config

import (
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

// Config is process-wide: base URLs and the static version/branch headers
// never change for the life of the process.
type Config struct {
	BaseURL     string        `env:"PORTAL_BASE_URL" envDefault:"https://api.omdehgostar.ir"`
	FileBaseURL string        `env:"PORTAL_FILE_BASE_URL" envDefault:"https://files.omdehgostar.ir"`
	Version     string        `env:"PORTAL_VERSION" envDefault:"1.9.2"`
	Branch      string        `env:"PORTAL_BRANCH" envDefault:"center"`
	IPEchoURL   string        `env:"PORTAL_IP_ECHO_URL" envDefault:"https://api.ipify.org?format=json"`
	SessionPath string        `env:"PORTAL_SESSION_FILE"`
	LogLevel    string        `env:"PORTAL_LOG_LEVEL" envDefault:"warn"`
	Timeout     time.Duration `env:"PORTAL_TIMEOUT" envDefault:"30s"`
}

func GetConfig() (*Config, error) {
	// .env is optional; variables already in the environment win
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
