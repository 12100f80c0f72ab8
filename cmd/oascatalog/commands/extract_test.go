package commands

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const cliSpec = `swagger: "2.0"
paths:
  /pets:
    get:
      summary: List pets
      responses:
        "200":
          description: ok
`

func writeCLISpec(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "spec.yaml")
	require.NoError(t, os.WriteFile(path, []byte(cliSpec), 0o600))
	return path
}

// captureStdout runs fn with os.Stdout redirected to a pipe and returns
// what was written.
func captureStdout(t *testing.T, fn func() error) (string, error) {
	t.Helper()
	old := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w
	defer func() { os.Stdout = old }()

	fnErr := fn()
	require.NoError(t, w.Close())
	out, err := io.ReadAll(r)
	require.NoError(t, err)
	return string(out), fnErr
}

func TestHandleExtractQuiet(t *testing.T) {
	path := writeCLISpec(t)

	out, err := captureStdout(t, func() error {
		return HandleExtract([]string{"-q", path})
	})
	require.NoError(t, err)
	assert.Contains(t, out, "GET\t/pets\tList pets")
}

func TestHandleExtractJSON(t *testing.T) {
	path := writeCLISpec(t)

	out, err := captureStdout(t, func() error {
		return HandleExtract([]string{"-format", "json", path})
	})
	require.NoError(t, err)
	assert.Contains(t, out, `"version": "2.0"`)
	assert.Contains(t, out, `"path": "/pets"`)
}

func TestHandleExtractRequiresOneArg(t *testing.T) {
	err := HandleExtract([]string{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exactly one")
}

func TestHandleExtractInvalidFormat(t *testing.T) {
	err := HandleExtract([]string{"-format", "xml", writeCLISpec(t)})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid format")
}

func TestHandleExtractMissingFile(t *testing.T) {
	err := HandleExtract([]string{filepath.Join(t.TempDir(), "missing.yaml")})
	require.Error(t, err)
}

func TestSplitStripList(t *testing.T) {
	assert.Equal(t, []string{"xml", "example"}, splitStripList("xml,example"))
	assert.Equal(t, []string{"xml"}, splitStripList(" xml , "))
	assert.Empty(t, splitStripList("none"))
	assert.NotNil(t, splitStripList("none"))
}
