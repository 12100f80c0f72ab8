package mcpserver

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/oascatalog/catalog"
)

const testSpec = `swagger: "2.0"
paths:
  /pets:
    get:
      summary: List pets
      responses:
        "200":
          description: ok
`

func writeTestSpec(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "spec.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testSpec), 0o600))
	return path
}

func TestSpecInputResolveContent(t *testing.T) {
	catalogCache.reset()
	t.Cleanup(catalogCache.reset)

	cat, err := specInput{Content: testSpec}.resolve()
	require.NoError(t, err)
	assert.Len(t, cat.Methods, 1)
}

func TestSpecInputResolveFile(t *testing.T) {
	catalogCache.reset()
	t.Cleanup(catalogCache.reset)

	cat, err := specInput{File: writeTestSpec(t)}.resolve()
	require.NoError(t, err)
	assert.Len(t, cat.Methods, 1)
}

func TestSpecInputResolveExactlyOne(t *testing.T) {
	_, err := specInput{}.resolve()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exactly one")

	_, err = specInput{File: "a.yaml", Content: testSpec}.resolve()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exactly one")
}

func TestSpecInputResolveCaches(t *testing.T) {
	catalogCache.reset()
	t.Cleanup(catalogCache.reset)

	first, err := specInput{Content: testSpec}.resolve()
	require.NoError(t, err)
	assert.Equal(t, 1, catalogCache.size())

	second, err := specInput{Content: testSpec}.resolve()
	require.NoError(t, err)
	// Same pointer: the second call was served from the cache.
	assert.Same(t, first, second)
}

func TestMakeCacheKey(t *testing.T) {
	path := writeTestSpec(t)

	fileKey := makeCacheKey(specInput{File: path}, nil)
	assert.True(t, strings.HasPrefix(fileKey, "file:"))

	contentKey := makeCacheKey(specInput{Content: testSpec}, nil)
	assert.True(t, strings.HasPrefix(contentKey, "content:"))
	// Content keys are hashes, stable across calls.
	assert.Equal(t, contentKey, makeCacheKey(specInput{Content: testSpec}, nil))

	urlKey := makeCacheKey(specInput{URL: "https://example.com/a.yaml"}, nil)
	assert.Equal(t, "url:https://example.com/a.yaml", urlKey)

	// Extra options defeat caching.
	withOpts := makeCacheKey(specInput{Content: testSpec}, []catalog.Option{catalog.WithBaseURL("x")})
	assert.Equal(t, "", withOpts)

	// Missing file cannot be keyed.
	assert.Equal(t, "", makeCacheKey(specInput{File: filepath.Join(t.TempDir(), "missing.yaml")}, nil))
}

func TestCacheExpiryAndEviction(t *testing.T) {
	c := &catalogCacheStore{entries: make(map[string]*cacheEntry), maxSize: 2}
	cat := &catalog.Catalog{}

	c.putWithTTL("a", cat, time.Minute)
	c.putWithTTL("b", cat, -time.Second) // already expired
	assert.Nil(t, c.get("b"))
	assert.NotNil(t, c.get("a"))

	c.putWithTTL("c", cat, time.Minute)
	c.putWithTTL("d", cat, time.Minute) // evicts the oldest
	assert.Equal(t, 2, c.size())

	c.sweep()
	assert.Equal(t, 2, c.size())

	c.reset()
	assert.Equal(t, 0, c.size())
}

func TestSpecInputResolveInlineSizeLimit(t *testing.T) {
	old := cfg.MaxInlineSize
	cfg.MaxInlineSize = 8
	t.Cleanup(func() { cfg.MaxInlineSize = old })

	_, err := specInput{Content: testSpec}.resolve()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exceeds maximum")
}
