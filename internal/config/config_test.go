package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadUsesDefaultsWhenUnset(t *testing.T) {
	for _, key := range []string{
		"GOVKERNEL_LISTEN_ADDR", "GOVKERNEL_LOG_LEVEL", "GOVKERNEL_ARCHIVE_URL",
		"GOVKERNEL_QUEUE_URL", "GOVKERNEL_SHADOW_MODE", "GOVKERNEL_PROFILES_DIR", "GOVKERNEL_PROFILE",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()
	assert.Equal(t, ":8080", cfg.ListenAddr)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "file://./archive", cfg.ArchiveURL)
	assert.Equal(t, "redis://localhost:6379/0", cfg.QueueURL)
	assert.False(t, cfg.ShadowMode)
	assert.Equal(t, "./profiles", cfg.ProfilesDir)
	assert.Equal(t, "default", cfg.ActiveProfile)
}

func TestLoadReadsEnvironmentOverrides(t *testing.T) {
	t.Setenv("GOVKERNEL_LISTEN_ADDR", ":9090")
	t.Setenv("GOVKERNEL_LOG_LEVEL", "debug")
	t.Setenv("GOVKERNEL_SHADOW_MODE", "true")
	t.Setenv("GOVKERNEL_PROFILE", "production")

	cfg := Load()
	assert.Equal(t, ":9090", cfg.ListenAddr)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.ShadowMode)
	assert.Equal(t, "production", cfg.ActiveProfile)
}

func TestLoadShadowModeRequiresExactStringMatch(t *testing.T) {
	t.Setenv("GOVKERNEL_SHADOW_MODE", "1")
	cfg := Load()
	assert.False(t, cfg.ShadowMode, `only the literal string "true" enables shadow mode`)
}
