package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// unsetenv clears keys for the duration of the test. godotenv does not
// override variables that are present, even when empty.
func unsetenv(t *testing.T, keys ...string) {
	t.Helper()
	for _, k := range keys {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

func TestParseEnv(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	t.Run("process environment", func(t *testing.T) {
		t.Chdir(t.TempDir())
		os.Args = []string{"tm"}
		unsetenv(t, EnvNotificationsURL)
		t.Setenv(EnvAPIBaseURL, "https://api.example")

		cfg := defaults()
		parseEnv(&cfg)

		want := defaults()
		want.APIBaseURL = "https://api.example"
		assert.Empty(t, cmp.Diff(want, cfg))
	})

	t.Run("default .env in working directory", func(t *testing.T) {
		dir := t.TempDir()
		t.Chdir(dir)
		os.Args = []string{"tm"}
		unsetenv(t, EnvAPIBaseURL, EnvNotificationsURL)
		require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"),
			[]byte(EnvNotificationsURL+"=https://notify.dotenv\n"), 0o600))

		cfg := defaults()
		parseEnv(&cfg)

		assert.Equal(t, "https://notify.dotenv", cfg.NotificationsURL)
		assert.Equal(t, defaults().APIBaseURL, cfg.APIBaseURL)
	})

	t.Run("explicit file", func(t *testing.T) {
		t.Chdir(t.TempDir())
		unsetenv(t, EnvAPIBaseURL, EnvNotificationsURL)
		path := filepath.Join(t.TempDir(), "tm.env")
		require.NoError(t, os.WriteFile(path, []byte(EnvAPIBaseURL+"=https://file.example\n"), 0o600))
		os.Args = []string{"tm", "-e", path}

		cfg := defaults()
		parseEnv(&cfg)

		assert.Equal(t, "https://file.example", cfg.APIBaseURL)
	})

	t.Run("missing explicit file panics", func(t *testing.T) {
		t.Chdir(t.TempDir())
		os.Args = []string{"tm", "-env", filepath.Join(t.TempDir(), "absent.env")}

		cfg := defaults()
		require.Panics(t, func() { parseEnv(&cfg) })
	})
}
