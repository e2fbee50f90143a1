package config

import (
	"os"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	tests := []struct {
		expected    *Config
		name        string
		args        []string
		expectPanic bool
	}{
		{
			name: "all flags",
			args: []string{"cmd", "-a", "http://localhost:8080", "-n", "http://localhost:9090", "-i", "10", "-d", "/tmp/tm.db", "-l", "debug"},
			expected: &Config{
				APIBaseURL:       "http://localhost:8080",
				NotificationsURL: "http://localhost:9090",
				PollInterval:     10 * time.Second,
				DBPath:           "/tmp/tm.db",
				LogLevel:         "debug",
			},
		},
		{
			name: "foreign flags ignored",
			args: []string{"cmd", "-c", "cfg.json", "-a=http://x", "-e", "tm.env"},
			expected: &Config{
				APIBaseURL: "http://x",
			},
		},
		{name: "incorrect poll interval", args: []string{"cmd", "-i", "abc"}, expectPanic: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Args = tt.args

			config := &Config{}

			if !tt.expectPanic {
				require.NotPanics(t, func() { parseFlags(config) })
				assert.Empty(t, cmp.Diff(config, tt.expected))
			} else {
				require.Panics(t, func() { parseFlags(config) })
			}
		})
	}
}

func TestParseFlags_KeepsSubSecondIntervalWithoutFlag(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	os.Args = []string{"cmd", "-a", "http://x"}
	config := &Config{PollInterval: 1500 * time.Millisecond}
	parseFlags(config)
	assert.Equal(t, 1500*time.Millisecond, config.PollInterval)

	os.Args = []string{"cmd", "-i", "2"}
	parseFlags(config)
	assert.Equal(t, 2*time.Second, config.PollInterval)
}
