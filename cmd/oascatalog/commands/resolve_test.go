package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const resolveSpec = `swagger: "2.0"
paths:
  /pets:
    get:
      responses:
        "200":
          description: ok
definitions:
  Pet:
    type: object
    properties:
      name:
        type: string
`

func TestHandleResolve(t *testing.T) {
	path := filepath.Join(t.TempDir(), "spec.yaml")
	require.NoError(t, os.WriteFile(path, []byte(resolveSpec), 0o600))

	out, err := captureStdout(t, func() error {
		return HandleResolve([]string{path, "#/definitions/Pet"})
	})
	require.NoError(t, err)
	assert.Contains(t, out, `"name"`)
}

func TestHandleResolveBareRef(t *testing.T) {
	path := filepath.Join(t.TempDir(), "spec.yaml")
	require.NoError(t, os.WriteFile(path, []byte(resolveSpec), 0o600))

	// Leading '#' may be dropped on shells where quoting is awkward.
	_, err := captureStdout(t, func() error {
		return HandleResolve([]string{path, "/definitions/Pet"})
	})
	require.NoError(t, err)
}

func TestHandleResolveBareName(t *testing.T) {
	path := filepath.Join(t.TempDir(), "spec.yaml")
	require.NoError(t, os.WriteFile(path, []byte(resolveSpec), 0o600))

	out, err := captureStdout(t, func() error {
		return HandleResolve([]string{path, "Pet"})
	})
	require.NoError(t, err)
	assert.Contains(t, out, `"name"`)
}

func TestHandleResolveArgCount(t *testing.T) {
	err := HandleResolve([]string{"only-one-arg.yaml"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "requires a file path and a pointer")
}

func TestHandleResolveUnknownRef(t *testing.T) {
	path := filepath.Join(t.TempDir(), "spec.yaml")
	require.NoError(t, os.WriteFile(path, []byte(resolveSpec), 0o600))

	_, err := captureStdout(t, func() error {
		return HandleResolve([]string{path, "#/definitions/Missing"})
	})
	require.Error(t, err)
}

func TestTrimRefArg(t *testing.T) {
	assert.Equal(t, "#/definitions/Pet", trimRefArg("#/definitions/Pet"))
	assert.Equal(t, "#/definitions/Pet", trimRefArg("/definitions/Pet"))
}
