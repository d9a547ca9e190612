package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// unsetenv removes key for the duration of the test.
func unsetenv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	require.NoError(t, os.Unsetenv(key))
}

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"ANNOTIZ_DB", "ANNOTIZ_NO_HISTORY", "ANNOTIZ_LOG", "ANNOTIZ_LOG_LEVEL"} {
		unsetenv(t, k)
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Empty(t, cfg.HistoryDB)
	assert.False(t, cfg.DisableHistory)
	assert.Empty(t, cfg.LogFile)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("ANNOTIZ_DB", "/tmp/j.db")
	t.Setenv("ANNOTIZ_NO_HISTORY", "true")
	t.Setenv("ANNOTIZ_LOG", "/tmp/a.log")
	t.Setenv("ANNOTIZ_LOG_LEVEL", " DEBUG ")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, Config{
		HistoryDB:      "/tmp/j.db",
		DisableHistory: true,
		LogFile:        "/tmp/a.log",
		LogLevel:       "debug",
	}, cfg)
}

func TestLoad_BadBool(t *testing.T) {
	t.Setenv("ANNOTIZ_NO_HISTORY", "maybe")

	_, err := Load()
	assert.Error(t, err)
}

func TestApply(t *testing.T) {
	base := Config{HistoryDB: "env.db", LogFile: "env.log", LogLevel: "info"}

	tests := []struct {
		name string
		o    Overrides
		want Config
	}{
		{"none", Overrides{}, base},
		{"db flag wins", Overrides{HistoryDB: "flag.db"}, Config{HistoryDB: "flag.db", LogFile: "env.log", LogLevel: "info"}},
		{"no history", Overrides{DisableHistory: true}, Config{HistoryDB: "env.db", DisableHistory: true, LogFile: "env.log", LogLevel: "info"}},
		{"log", Overrides{LogFile: "flag.log", LogLevel: "WARN"}, Config{HistoryDB: "env.db", LogFile: "flag.log", LogLevel: "warn"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, base.Apply(tt.o))
		})
	}
}
