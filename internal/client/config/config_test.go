package config

import (
	"os"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaults() Config {
	var c Config
	c.LoadDefaults()
	return c
}

func TestLoadDefaults(t *testing.T) {
	c := defaults()

	assert.Equal(t, "https://trademinutes-auth.onrender.com", c.APIBaseURL)
	assert.Empty(t, c.NotificationsURL)
	assert.Equal(t, 30*time.Second, c.PollInterval)
	assert.Equal(t, "trademinutes.db", c.DBPath)
	assert.Zero(t, c.RequestTimeout)
	assert.Equal(t, "info", c.LogLevel)
}

func TestLoadConfig_LayersInOrder(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	t.Chdir(t.TempDir())

	t.Setenv(EnvAPIBaseURL, "https://env.example")
	t.Setenv(EnvNotificationsURL, "https://notify.env.example")

	path := writeTempJSON(t, "", "", map[string]any{
		"notifications_url": "https://notify.json.example",
		"db_path":           "json.db",
	})
	os.Args = []string{"tm", "-c", path, "-d", "flag.db", "-i", "5"}

	cfg := LoadConfig()
	require.NotNil(t, cfg)

	want := defaults()
	want.APIBaseURL = "https://env.example"
	want.NotificationsURL = "https://notify.json.example"
	want.DBPath = "flag.db"
	want.PollInterval = 5 * time.Second

	assert.Empty(t, cmp.Diff(want, *cfg))
}
