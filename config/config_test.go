package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"runner-game/game"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDefaults(t *testing.T) {
	conf, err := Parse()
	require.NoError(t, err)

	assert.Equal(t, 5*time.Second, conf.RequestTimeout)
	assert.Equal(t, "8080", conf.HTTPPort)
	assert.Equal(t, "assets", conf.AssetDir)
	assert.Empty(t, conf.NatsURL)
	assert.False(t, conf.LogJSON)
}

func TestParseFromEnv(t *testing.T) {
	t.Setenv("RUNNER_API_URL", "http://localhost:3000")
	t.Setenv("RUNNER_REQUEST_TIMEOUT", "750ms")
	t.Setenv("RUNNER_LOG_JSON", "true")

	conf, err := Parse()
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:3000", conf.APIBaseURL)
	assert.Equal(t, 750*time.Millisecond, conf.RequestTimeout)
	assert.True(t, conf.LogJSON)
}

func TestParseRejectsBadDuration(t *testing.T) {
	t.Setenv("RUNNER_REQUEST_TIMEOUT", "soon")

	_, err := Parse()
	assert.Error(t, err)
}

func writeTuning(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tuning.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadTuningOverlaysDefaults(t *testing.T) {
	path := writeTuning(t, "gravity: 0.9\nbirdMinScore: 10\ncountdownFrom: 5\n")

	tuning, err := LoadTuning(path)
	require.NoError(t, err)

	want := game.DefaultTuning()
	want.Gravity = 0.9
	want.BirdMinScore = 10
	want.CountdownFrom = 5
	assert.Equal(t, want, tuning)
}

func TestLoadTuningEmptyPath(t *testing.T) {
	tuning, err := LoadTuning("")
	require.NoError(t, err)
	assert.Equal(t, game.DefaultTuning(), tuning)
}

func TestLoadTuningErrors(t *testing.T) {
	_, err := LoadTuning(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = LoadTuning(writeTuning(t, "gravity: [1, 2"))
	assert.Error(t, err)

	tuning, err := LoadTuning(writeTuning(t, "jumpImpulse: 4\n"))
	assert.ErrorContains(t, err, "jumpImpulse")
	assert.Equal(t, game.DefaultTuning(), tuning)
}
