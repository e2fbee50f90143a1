package config

import (
	"encoding/json"
	"os"

	"github.com/trademinutes/tmclient/internal/flagx"
	"github.com/trademinutes/tmclient/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling.
// Intervals use timex.Duration so they can be given as "30s" or as integer
// nanoseconds. Absent keys leave the current value alone.
type JsonConfig struct {
	APIBaseURL       *string         `json:"api_base_url"`
	NotificationsURL *string         `json:"notifications_url"`
	PollInterval     *timex.Duration `json:"poll_interval"`
	DBPath           *string         `json:"db_path"`
	RequestTimeout   *timex.Duration `json:"request_timeout"`
	LogLevel         *string         `json:"log_level"`
}

// parseJson overlays Config with values loaded from the JSON file named by
// -c or -config. Without the flag nothing is loaded. Read and unmarshal
// errors panic.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.APIBaseURL != nil {
		cfg.APIBaseURL = *jc.APIBaseURL
	}
	if jc.NotificationsURL != nil {
		cfg.NotificationsURL = *jc.NotificationsURL
	}
	if jc.PollInterval != nil {
		cfg.PollInterval = jc.PollInterval.Duration
	}
	if jc.DBPath != nil {
		cfg.DBPath = *jc.DBPath
	}
	if jc.RequestTimeout != nil {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.LogLevel != nil {
		cfg.LogLevel = *jc.LogLevel
	}
}
