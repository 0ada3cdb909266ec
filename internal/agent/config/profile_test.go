package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/IvanChernomyrdin/siteauth/internal/agent/config"
)

func TestLoad_MissingFileGivesEmptyProfile(t *testing.T) {
	p, err := config.Load(filepath.Join(t.TempDir(), "nope.json"))
	require.NoError(t, err)
	require.NotNil(t, p)
	require.False(t, p.LoggedIn())
}

func TestLoad_InvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profile.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	_, err := config.Load(path)
	require.Error(t, err)
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "profile.json")
	name := "Alice"
	want := &config.Profile{
		Server:     "http://127.0.0.1:3000",
		UserID:     3,
		Fullname:   &name,
		Email:      "a@x.com",
		LoggedInAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}

	require.NoError(t, config.Save(path, want))

	fi, err := os.Stat(path)
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0o600), fi.Mode().Perm())

	got, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, want, got)
	require.True(t, got.LoggedIn())
}

func TestRemove(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profile.json")
	require.NoError(t, config.Save(path, &config.Profile{Email: "a@x.com"}))

	require.NoError(t, config.Remove(path))
	_, err := os.Stat(path)
	require.True(t, os.IsNotExist(err))

	// повторно — не ошибка
	require.NoError(t, config.Remove(path))
}
