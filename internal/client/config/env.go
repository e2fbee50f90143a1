package config

import (
	"errors"
	"io/fs"
	"os"

	"github.com/joho/godotenv"

	"github.com/trademinutes/tmclient/internal/flagx"
)

const (
	EnvAPIBaseURL       = "TRADEMINUTES_API_BASE_URL"
	EnvNotificationsURL = "TRADEMINUTES_NOTIFICATIONS_URL"
)

// parseEnv overlays Config with values from the process environment.
//
// A dotenv file is loaded first: the path given with -e/-env, or ".env" in
// the working directory when present. Variables already set in the process
// environment are not overridden by the file. A missing default .env is
// fine; a missing explicit file panics like every other bad source.
func parseEnv(cfg *Config) {
	if path := flagx.EnvFileFlags(); path != "" {
		if err := godotenv.Load(path); err != nil {
			panic(err)
		}
	} else if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		panic(err)
	}

	if v := os.Getenv(EnvAPIBaseURL); v != "" {
		cfg.APIBaseURL = v
	}
	if v := os.Getenv(EnvNotificationsURL); v != "" {
		cfg.NotificationsURL = v
	}
}
