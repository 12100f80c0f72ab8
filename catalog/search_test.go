package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocateSchemaDirect(t *testing.T) {
	entry := map[string]any{
		"description": "ok",
		"schema":      map[string]any{"type": "string"},
	}
	s, ok := locateSchema(entry)
	require.True(t, ok)
	assert.Equal(t, "string", s["type"])
}

func TestLocateSchemaContent(t *testing.T) {
	entry := map[string]any{
		"content": map[string]any{
			"application/json": map[string]any{
				"schema": map[string]any{"$ref": "#/components/schemas/Pet"},
			},
		},
	}
	s, ok := locateSchema(entry)
	require.True(t, ok)
	assert.Equal(t, "#/components/schemas/Pet", s["$ref"])
}

func TestLocateSchemaFirstMediaType(t *testing.T) {
	// Multiple media types: ascending order makes the pick deterministic.
	entry := map[string]any{
		"content": map[string]any{
			"text/plain": map[string]any{
				"schema": map[string]any{"type": "string"},
			},
			"application/json": map[string]any{
				"schema": map[string]any{"type": "object"},
			},
		},
	}
	s, ok := locateSchema(entry)
	require.True(t, ok)
	assert.Equal(t, "object", s["type"])
}

func TestLocateSchemaAbsent(t *testing.T) {
	_, ok := locateSchema(map[string]any{"description": "no schema here"})
	assert.False(t, ok)
}

func TestFindKeyBFSShallowBeforeDeep(t *testing.T) {
	// The key exists both at the top level and nested; breadth-first search
	// returns the shallow one.
	value := map[string]any{
		"wrapper": map[string]any{"target": "deep"},
		"target":  "shallow",
	}
	got, ok := findKeyBFS(value, "target")
	require.True(t, ok)
	assert.Equal(t, "shallow", got)
}

func TestFindKeyBFSThroughSlices(t *testing.T) {
	value := map[string]any{
		"items": []any{
			map[string]any{"other": 1},
			map[string]any{"target": "found"},
		},
	}
	got, ok := findKeyBFS(value, "target")
	require.True(t, ok)
	assert.Equal(t, "found", got)
}

func TestFindKeyBFSMissing(t *testing.T) {
	_, ok := findKeyBFS(map[string]any{"a": 1}, "target")
	assert.False(t, ok)
}

func TestFindStringKeyBFSSkipsNonStrings(t *testing.T) {
	value := map[string]any{
		"outer": map[string]any{"$ref": "#/definitions/Pet"},
		"$ref":  42,
	}
	got, ok := findStringKeyBFS(value, "$ref")
	require.True(t, ok)
	assert.Equal(t, "#/definitions/Pet", got)
}
