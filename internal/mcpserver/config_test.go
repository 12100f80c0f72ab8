package mcpserver

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfigDefaults(t *testing.T) {
	c := loadConfig()
	assert.True(t, c.CacheEnabled)
	assert.Equal(t, 10, c.CacheMaxSize)
	assert.Equal(t, 15*time.Minute, c.CacheFileTTL)
	assert.Equal(t, 5*time.Minute, c.CacheURLTTL)
	assert.Equal(t, 100, c.ListLimit)
	assert.Equal(t, 25, c.ListDetailLimit)
	assert.Equal(t, int64(4*1024*1024), c.MaxInlineSize)
	assert.False(t, c.AllowPrivateIPs)
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("OASCATALOG_CACHE_ENABLED", "false")
	t.Setenv("OASCATALOG_LIST_LIMIT", "42")
	t.Setenv("OASCATALOG_CACHE_FILE_TTL", "30s")

	c := loadConfig()
	assert.False(t, c.CacheEnabled)
	assert.Equal(t, 42, c.ListLimit)
	assert.Equal(t, 30*time.Second, c.CacheFileTTL)
}

func TestLoadConfigInvalidValuesFallBack(t *testing.T) {
	t.Setenv("OASCATALOG_CACHE_ENABLED", "not-a-bool")
	t.Setenv("OASCATALOG_LIST_LIMIT", "-5")
	t.Setenv("OASCATALOG_CACHE_URL_TTL", "soon")
	t.Setenv("OASCATALOG_MAX_INLINE_SIZE", "0")

	c := loadConfig()
	assert.True(t, c.CacheEnabled)
	assert.Equal(t, 100, c.ListLimit)
	assert.Equal(t, 5*time.Minute, c.CacheURLTTL)
	assert.Equal(t, int64(4*1024*1024), c.MaxInlineSize)
}
