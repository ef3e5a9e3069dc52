package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, BackendBBolt, c.StorageBackend)
	assert.Equal(t, "feedline.db", c.StoragePath)
	assert.Equal(t, "secretKey", c.SessionSecret)
	assert.Equal(t, 12*time.Hour, c.SessionValidity)
}

func TestLoadConfig_UsesDefaultsBeforeParsing(t *testing.T) {
	cfg := LoadConfig()

	require.NotNil(t, cfg, "LoadConfig must not return nil")
	assert.Equal(t, BackendBBolt, cfg.StorageBackend)
	assert.Equal(t, "feedline.db", cfg.StoragePath)
}
