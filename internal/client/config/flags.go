package config

import (
	"flag"
	"os"
	"time"

	"github.com/trademinutes/tmclient/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   auth API base URL
//	-n string   notification service base URL
//	-i int      notification poll interval in seconds
//	-d string   path of the local database
//	-l string   log level
//
// os.Args is filtered with flagx.FilterArgs first so that -c and -e, read
// by the other loaders, do not make parsing fail.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-n", "-i", "-d", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.APIBaseURL, "a", cfg.APIBaseURL, "auth API base URL")
	fs.StringVar(&cfg.NotificationsURL, "n", cfg.NotificationsURL, "notification service base URL")
	pollInterval := fs.Int("i", 0, "notification poll interval (in seconds)")
	fs.StringVar(&cfg.DBPath, "d", cfg.DBPath, "path of the local database")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level (debug, info, warn, error)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	// -i only overrides when given.
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "i" {
			cfg.PollInterval = time.Duration(*pollInterval) * time.Second
		}
	})
}
