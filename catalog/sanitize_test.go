package catalog

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeStripsDenylistedKeys(t *testing.T) {
	in := map[string]any{
		"type": "object",
		"xml":  map[string]any{"name": "Pet"},
		"properties": map[string]any{
			"name": map[string]any{"type": "string"},
			"tags": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"xml":  map[string]any{"wrapped": true},
				},
			},
		},
	}

	out, ok := Sanitize(in, DefaultDenylist).(map[string]any)
	require.True(t, ok)

	assert.NotContains(t, out, "xml")
	items := out["properties"].(map[string]any)["tags"].(map[string]any)["items"].(map[string]any)
	assert.NotContains(t, items, "xml")
	assert.Equal(t, "object", items["type"])
}

func TestSanitizeWalksSlices(t *testing.T) {
	in := []any{
		map[string]any{"xml": true, "keep": 1},
		"plain",
		[]any{map[string]any{"xml": true}},
	}

	out := Sanitize(in, []string{"xml"}).([]any)
	assert.NotContains(t, out[0].(map[string]any), "xml")
	assert.Equal(t, 1, out[0].(map[string]any)["keep"])
	assert.Equal(t, "plain", out[1])
	assert.NotContains(t, out[2].([]any)[0].(map[string]any), "xml")
}

func TestSanitizeDoesNotMutateInput(t *testing.T) {
	in := map[string]any{
		"xml":  "drop",
		"keep": map[string]any{"xml": "drop too"},
	}
	want := map[string]any{
		"xml":  "drop",
		"keep": map[string]any{"xml": "drop too"},
	}

	_ = Sanitize(in, DefaultDenylist)
	assert.Empty(t, cmp.Diff(want, in))
}

func TestSanitizeScalarsPassThrough(t *testing.T) {
	assert.Equal(t, "s", Sanitize("s", DefaultDenylist))
	assert.Equal(t, 42, Sanitize(42, DefaultDenylist))
	assert.Nil(t, Sanitize(nil, DefaultDenylist))
}

func TestSanitizeCustomDenylist(t *testing.T) {
	in := map[string]any{"example": 1, "xml": 2, "type": "string"}
	out := Sanitize(in, []string{"example", "xml"}).(map[string]any)
	assert.Equal(t, map[string]any{"type": "string"}, out)
}
