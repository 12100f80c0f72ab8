package catalog

import (
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/oascatalog/oaserrors"
)

func extractFixture(t *testing.T, name string, e *Extractor) *Catalog {
	t.Helper()
	if e == nil {
		e = New()
	}
	cat, err := e.Extract(filepath.Join("testdata", name))
	require.NoError(t, err)
	require.NotNil(t, cat)
	return cat
}

func TestExtractPetstore20(t *testing.T) {
	cat := extractFixture(t, "petstore-2.0.yaml", nil)

	assert.Equal(t, "2.0", cat.Version)
	assert.Equal(t, Version20, cat.OASVersion)
	assert.Equal(t, SourceFormatYAML, cat.SourceFormat)
	assert.Empty(t, cat.Warnings)

	// The deprecated DELETE is omitted; declaration order is preserved.
	require.Len(t, cat.Methods, 3)
	assert.Equal(t, OperationGet, cat.Methods[0].Operation)
	assert.Equal(t, "/pets", cat.Methods[0].Path)
	assert.Equal(t, OperationPost, cat.Methods[1].Operation)
	assert.Equal(t, "/pets", cat.Methods[1].Path)
	assert.Equal(t, OperationGet, cat.Methods[2].Operation)
	assert.Equal(t, "/pets/{id}", cat.Methods[2].Path)

	assert.Equal(t, 2, cat.Stats.PathCount)
	assert.Equal(t, 3, cat.Stats.OperationCount)
	assert.Equal(t, 1, cat.Stats.DeprecatedSkipped)
	assert.Equal(t, 4, cat.Stats.ParameterCount)
	assert.Equal(t, 4, cat.Stats.ResponseCount)
	assert.Positive(t, cat.Stats.RefResolutions)
}

func TestExtractPetstore20ListPets(t *testing.T) {
	cat := extractFixture(t, "petstore-2.0.yaml", nil)
	list := cat.Methods[0]

	assert.Equal(t, "List pets", list.Summary)
	assert.Equal(t, []string{"application/json"}, list.OutputFormats)
	assert.Nil(t, list.InputFormats)

	require.Len(t, list.Parameters, 2)
	limit := list.Parameters[0]
	assert.Equal(t, "limit", limit.Name)
	assert.Equal(t, ParamInQuery, limit.In)
	assert.False(t, limit.Required)
	assert.Equal(t, "integer", limit.Type)
	assert.Equal(t, "int32", limit.Format)
	require.NotNil(t, limit.Maximum)
	assert.Equal(t, float64(100), *limit.Maximum)

	tags := list.Parameters[1]
	assert.Equal(t, "tags", tags.Name)
	assert.Equal(t, "array", tags.Type)
	require.NotNil(t, tags.Items)
	assert.Equal(t, "string", tags.Items.Type)
	assert.Nil(t, tags.Items.Schema)

	// 200 returns an array of Pet.
	require.Len(t, list.Responses, 1)
	resp := list.Responses[0]
	assert.Equal(t, "200", resp.Code)
	require.NotNil(t, resp.Schema)
	assert.Equal(t, KindArray, resp.Schema.Kind)

	pet := resp.Schema.Items
	require.NotNil(t, pet)
	assert.Equal(t, KindObject, pet.Kind)

	// Properties are deterministic: ascending name order.
	names := make([]string, 0, len(pet.Properties))
	for _, p := range pet.Properties {
		names = append(names, p.Name)
	}
	assert.Equal(t, []string{"id", "name", "status", "tags"}, names)

	status := pet.Property("status")
	require.NotNil(t, status)
	assert.Equal(t, KindEnum, status.Kind)
	assert.Equal(t, "string", status.Type)
	assert.Equal(t, []any{"available", "pending", "sold"}, status.Values)

	petTags := pet.Property("tags")
	require.NotNil(t, petTags)
	assert.Equal(t, KindArray, petTags.Kind)
	require.NotNil(t, petTags.Items)
	assert.Equal(t, KindObject, petTags.Items.Kind)
	assert.NotNil(t, petTags.Items.Property("name"))
}

func TestExtractPetstore20BodyParameter(t *testing.T) {
	cat := extractFixture(t, "petstore-2.0.yaml", nil)
	create := cat.Methods[1]

	assert.Equal(t, []string{"application/json"}, create.InputFormats)

	require.Len(t, create.Parameters, 1)
	body := create.Parameters[0]
	assert.Equal(t, "pet", body.Name)
	assert.Equal(t, ParamInBody, body.In)
	assert.True(t, body.Required)
	assert.Equal(t, "object", body.Type)
	require.NotNil(t, body.Schema)
	assert.Equal(t, KindObject, body.Schema.Kind)
	assert.NotNil(t, body.Schema.Property("name"))

	require.Len(t, create.Responses, 1)
	assert.Equal(t, "201", create.Responses[0].Code)
	require.NotNil(t, create.Responses[0].Schema)
	assert.Equal(t, KindObject, create.Responses[0].Schema.Kind)
}

func TestExtractPetstore20PathLevelParameters(t *testing.T) {
	cat := extractFixture(t, "petstore-2.0.yaml", nil)
	byID := cat.Methods[2]

	require.Len(t, byID.Parameters, 1)
	id := byID.Parameters[0]
	assert.Equal(t, "id", id.Name)
	assert.Equal(t, ParamInPath, id.In)
	assert.True(t, id.Required)
	assert.Equal(t, "integer", id.Type)
	assert.Equal(t, "int64", id.Format)

	require.Len(t, byID.Responses, 2)
	assert.Equal(t, "200", byID.Responses[0].Code)
	assert.Equal(t, "default", byID.Responses[1].Code)
	require.NotNil(t, byID.Responses[1].Schema)
	assert.NotNil(t, byID.Responses[1].Schema.Property("message"))
}

func TestExtractPetstore30(t *testing.T) {
	cat := extractFixture(t, "petstore-3.0.yaml", nil)

	assert.Equal(t, "3.0.3", cat.Version)
	assert.Equal(t, Version30, cat.OASVersion)
	require.Len(t, cat.Methods, 2)

	list := cat.Methods[0]
	require.Len(t, list.Parameters, 1)
	limit := list.Parameters[0]
	assert.Equal(t, "integer", limit.Type)
	assert.Equal(t, "int32", limit.Format)
	require.NotNil(t, limit.Maximum)
	assert.Equal(t, float64(100), *limit.Maximum)

	// Media types come from response content keys in 3.x.
	assert.Equal(t, []string{"application/json"}, list.OutputFormats)

	require.Len(t, list.Responses, 1)
	require.NotNil(t, list.Responses[0].Schema)
	assert.Equal(t, KindArray, list.Responses[0].Schema.Kind)
}

func TestExtractPetstore30RequestBody(t *testing.T) {
	cat := extractFixture(t, "petstore-3.0.yaml", nil)
	create := cat.Methods[1]

	require.NotNil(t, create.RequestBody)
	assert.Equal(t, "Pet to add to the store", create.RequestBody.Description)
	assert.True(t, create.RequestBody.Required)
	require.NotNil(t, create.RequestBody.Schema)
	assert.Equal(t, KindObject, create.RequestBody.Schema.Kind)

	assert.Equal(t, []string{"application/json"}, create.InputFormats)
	assert.Equal(t, []string{"application/json"}, create.OutputFormats)
}

func TestExtractCircularSchema(t *testing.T) {
	cat := extractFixture(t, "petstore-3.0.yaml", nil)
	create := cat.Methods[1]

	pet := create.Responses[0].Schema
	require.NotNil(t, pet)

	category := pet.Property("category")
	require.NotNil(t, category)
	assert.Equal(t, KindObject, category.Kind)

	// Category references itself through parent: the cycle collapses into a
	// reference node carrying just the schema name.
	parent := category.Property("parent")
	require.NotNil(t, parent)
	assert.Equal(t, KindReference, parent.Kind)
	assert.Equal(t, "Category", parent.Ref)
}

func TestExtractBaseURLConcatenation(t *testing.T) {
	e := &Extractor{BaseURL: "https://api.example.com/v2"}
	cat := extractFixture(t, "petstore-2.0.yaml", e)

	assert.Equal(t, "https://api.example.com/v2", cat.BaseURL)
	assert.Equal(t, "https://api.example.com/v2/pets", cat.Methods[0].URL)
	assert.Equal(t, "https://api.example.com/v2/pets/{id}", cat.Methods[2].URL)
	// The template itself stays available unjoined.
	assert.Equal(t, "/pets/{id}", cat.Methods[2].Path)
}

func TestExtractIdempotent(t *testing.T) {
	first := extractFixture(t, "petstore-2.0.yaml", nil)
	second := extractFixture(t, "petstore-2.0.yaml", nil)
	assert.Empty(t, cmp.Diff(first.Methods, second.Methods))
}

func TestExtractDocumentDoesNotMutateInput(t *testing.T) {
	doc := map[string]any{
		"swagger": "2.0",
		"paths": map[string]any{
			"/things": map[string]any{
				"get": map[string]any{
					"responses": map[string]any{
						"200": map[string]any{
							"description": "ok",
							"schema":      map[string]any{"$ref": "#/definitions/Thing"},
						},
					},
				},
			},
		},
		"definitions": map[string]any{
			"Thing": map[string]any{
				"type": "object",
				"xml":  map[string]any{"name": "Thing"},
				"properties": map[string]any{
					"name": map[string]any{"type": "string"},
				},
			},
		},
	}

	cat, err := New().ExtractDocument(doc)
	require.NoError(t, err)
	require.Len(t, cat.Methods, 1)

	// The denylisted key is absent from the output but untouched in the input.
	thing := doc["definitions"].(map[string]any)["Thing"].(map[string]any)
	assert.Contains(t, thing, "xml")
}

func TestExtractNoPaths(t *testing.T) {
	_, err := New().ExtractBytes([]byte("swagger: \"2.0\"\ninfo:\n  title: t\n  version: \"1\"\n"))
	require.Error(t, err)
	assert.ErrorIs(t, err, oaserrors.ErrExtract)
	assert.Contains(t, err.Error(), "no paths object")
}

func TestExtractEmptyPaths(t *testing.T) {
	_, err := New().ExtractBytes([]byte("swagger: \"2.0\"\npaths: {}\n"))
	require.Error(t, err)
	assert.ErrorIs(t, err, oaserrors.ErrExtract)
	assert.Contains(t, err.Error(), "empty paths object")
}

func TestExtractUnknownVerb(t *testing.T) {
	spec := `
swagger: "2.0"
paths:
  /pets:
    fetch:
      responses:
        "200":
          description: ok
`
	_, err := New().ExtractBytes([]byte(spec))
	require.Error(t, err)
	var extractErr *oaserrors.ExtractError
	require.ErrorAs(t, err, &extractErr)
	assert.Contains(t, err.Error(), "unknown HTTP verb")
}

func TestExtractNonOperationKeysSkipped(t *testing.T) {
	spec := `
swagger: "2.0"
paths:
  /pets:
    summary: Everything about pets
    x-internal: true
    get:
      responses:
        "200":
          description: ok
`
	cat, err := New().ExtractBytes([]byte(spec))
	require.NoError(t, err)
	require.Len(t, cat.Methods, 1)
	assert.Equal(t, OperationGet, cat.Methods[0].Operation)
}

func TestExtractRequestBodyWithoutPointer(t *testing.T) {
	spec := `
openapi: "3.0.0"
paths:
  /pets:
    post:
      requestBody:
        content:
          application/json:
            schema:
              type: object
              properties:
                name:
                  type: string
      responses:
        "201":
          description: created
`
	_, err := New().ExtractBytes([]byte(spec))
	require.Error(t, err)
	assert.ErrorIs(t, err, oaserrors.ErrExtract)
	assert.Contains(t, err.Error(), "no schema pointer")
}

func TestExtractMissingRefTarget(t *testing.T) {
	spec := `
swagger: "2.0"
paths:
  /pets:
    get:
      responses:
        "200":
          description: ok
          schema:
            $ref: "#/definitions/Missing"
`
	_, err := New().ExtractBytes([]byte(spec))
	require.Error(t, err)
	assert.ErrorIs(t, err, oaserrors.ErrReference)

	var refErr *oaserrors.ReferenceError
	require.ErrorAs(t, err, &refErr)
	assert.Equal(t, "Missing", refErr.MissingSegment)
}

func TestExtractDeprecatedOperationOmitted(t *testing.T) {
	spec := `
swagger: "2.0"
paths:
  /pets:
    get:
      deprecated: true
      responses:
        "200":
          description: ok
    post:
      responses:
        "201":
          description: created
`
	cat, err := New().ExtractBytes([]byte(spec))
	require.NoError(t, err)
	require.Len(t, cat.Methods, 1)
	assert.Equal(t, OperationPost, cat.Methods[0].Operation)
	assert.Equal(t, 1, cat.Stats.DeprecatedSkipped)
}

func TestExtractDeclarationOrderPreserved(t *testing.T) {
	spec := `
swagger: "2.0"
paths:
  /zebras:
    get:
      responses:
        "200":
          description: ok
  /apes:
    post:
      responses:
        "201":
          description: created
    get:
      responses:
        "200":
          description: ok
  /mice:
    get:
      responses:
        "200":
          description: ok
`
	cat, err := New().ExtractBytes([]byte(spec))
	require.NoError(t, err)
	require.Len(t, cat.Methods, 4)

	got := make([]string, 0, len(cat.Methods))
	for _, m := range cat.Methods {
		got = append(got, string(m.Operation)+" "+m.Path)
	}
	assert.Equal(t, []string{"GET /zebras", "POST /apes", "GET /apes", "GET /mice"}, got)
}

func TestExtractDocumentSortedOrder(t *testing.T) {
	// Pre-decoded documents carry no declaration order; iteration falls back
	// to ascending keys.
	doc := map[string]any{
		"swagger": "2.0",
		"paths": map[string]any{
			"/zebras": map[string]any{
				"get": map[string]any{"responses": map[string]any{"200": map[string]any{"description": "ok"}}},
			},
			"/apes": map[string]any{
				"get": map[string]any{"responses": map[string]any{"200": map[string]any{"description": "ok"}}},
			},
		},
	}
	cat, err := New().ExtractDocument(doc)
	require.NoError(t, err)
	require.Len(t, cat.Methods, 2)
	assert.Equal(t, "/apes", cat.Methods[0].Path)
	assert.Equal(t, "/zebras", cat.Methods[1].Path)
}

func TestExtractInvalidStatusCodeWarns(t *testing.T) {
	spec := `
swagger: "2.0"
paths:
  /pets:
    get:
      responses:
        "200":
          description: ok
        "999":
          description: bogus
`
	cat, err := New().ExtractBytes([]byte(spec))
	require.NoError(t, err)
	require.Len(t, cat.Methods, 1)
	// The bogus code is kept but flagged.
	assert.Len(t, cat.Methods[0].Responses, 2)
	require.Len(t, cat.Warnings, 1)
	assert.Contains(t, cat.Warnings[0], "999")
}

func TestExtractReaderAndBytesSourcePath(t *testing.T) {
	data := []byte("{\"swagger\": \"2.0\", \"paths\": {\"/p\": {\"get\": {\"responses\": {\"200\": {\"description\": \"ok\"}}}}}}")

	cat, err := New().ExtractBytes(data)
	require.NoError(t, err)
	assert.Equal(t, "ExtractBytes.json", cat.SourcePath)
	assert.Equal(t, SourceFormatJSON, cat.SourceFormat)
	assert.Equal(t, int64(len(data)), cat.SourceSize)
}
