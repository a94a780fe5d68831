package formguard

import (
	"errors"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the subsystem's own settings, loaded from environment
// variables.
type Config struct {
	DefaultLocale      string `env:"FORMGUARD_DEFAULT_LOCALE" envDefault:"en"`
	MessagesDir        string `env:"FORMGUARD_MESSAGES_DIR" envDefault:""`
	LogMissingMessages bool   `env:"FORMGUARD_LOG_MISSING_MESSAGES" envDefault:"false"`
}

// ErrParsingConfig is returned when environment variables cannot be
// parsed into the Config struct.
var ErrParsingConfig = errors.New("failed to parse environment variables into config")

// LoadConfig loads Config from the environment. Any given .env files
// are loaded first, in order, earlier files taking precedence; a
// missing default .env is not an error when no paths are given.
func LoadConfig(envFiles ...string) (Config, error) {
	if len(envFiles) > 0 {
		if err := godotenv.Load(envFiles...); err != nil {
			return Config{}, err
		}
	} else {
		_ = godotenv.Load()
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, errors.Join(ErrParsingConfig, err)
	}
	return cfg, nil
}
