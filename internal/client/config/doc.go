// Package config loads runtime configuration for the TradeMinutes CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Environment, after loading a dotenv file (-e/-env, or ./.env):
//     TRADEMINUTES_API_BASE_URL and TRADEMINUTES_NOTIFICATIONS_URL.
//  3. Optional JSON file selected with -c or -config.
//  4. Command-line flags, which override earlier values.
//
// Supported flags
//
//	-a string   auth API base URL
//	-n string   notification service base URL
//	-i int      notification poll interval (seconds)
//	-d string   local database path
//	-l string   log level
//
// # JSON schema
//
//	{
//	  "api_base_url": "https://trademinutes-auth.onrender.com",
//	  "notifications_url": "https://notify.example.com",
//	  "poll_interval": "30s",
//	  "db_path": "trademinutes.db",
//	  "request_timeout": "10s",
//	  "log_level": "debug"
//	}
//
// Malformed sources panic; LoadConfig is meant to run once at startup.
package config
