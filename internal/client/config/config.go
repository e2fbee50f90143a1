package config

import "time"

// Config holds runtime settings for the TradeMinutes CLI.
//
// Fields:
//   - APIBaseURL: base URL of the authentication API.
//   - NotificationsURL: base URL of the notification service; empty means
//     APIBaseURL.
//   - PollInterval: notification refetch period.
//   - DBPath: SQLite file holding the session token and preferences.
//   - RequestTimeout: per-request deadline, 0 for none.
//   - LogLevel: debug, info, warn or error.
type Config struct {
	APIBaseURL       string
	NotificationsURL string
	PollInterval     time.Duration
	DBPath           string
	RequestTimeout   time.Duration
	LogLevel         string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "https://trademinutes-auth.onrender.com"
	c.NotificationsURL = ""
	c.PollInterval = 30 * time.Second
	c.DBPath = "trademinutes.db"
	c.RequestTimeout = 0
	c.LogLevel = "info"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// the environment, JSON (if present) and command-line flags (if present).
// Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
