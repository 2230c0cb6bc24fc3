package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadRequiresCursorSecret(t *testing.T) {
	t.Setenv("VULNSENTINEL_CURSOR_SECRET", "")
	_, err := Load()
	assert.Error(t, err)
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("VULNSENTINEL_CURSOR_SECRET", "s3cret")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 30*time.Minute, cfg.Intervals.Scan)
	assert.Equal(t, 10*time.Minute, cfg.Intervals.Collect)
	assert.Equal(t, 2*time.Minute, cfg.Intervals.Classify)
	assert.Equal(t, 10, cfg.Collector.MaxPages)
	assert.Equal(t, 3, cfg.Collector.FirstCollectMaxPages)
	assert.Equal(t, 30*24*time.Hour, cfg.Collector.FirstCollectWindow)
	assert.Equal(t, 587, cfg.SMTP.Port)
}

func TestEnvSecondsOverride(t *testing.T) {
	t.Setenv("VULNSENTINEL_CURSOR_SECRET", "s3cret")
	t.Setenv("VULNSENTINEL_CLASSIFY_INTERVAL", "45")
	t.Setenv("VULNSENTINEL_SCAN_INTERVAL", "not-a-number")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 45*time.Second, cfg.Intervals.Classify)
	// Unparseable values fall back to the default.
	assert.Equal(t, 30*time.Minute, cfg.Intervals.Scan)
}
