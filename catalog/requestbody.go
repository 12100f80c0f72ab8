package catalog

import "github.com/erraggy/oascatalog/oaserrors"

// normalizeRequestBody normalizes the requestBody object of one operation.
// The body schema must be reachable through a pointer to a named schema:
// the standard locations are checked first, then a generic breadth-first
// search. A body with no pointer anywhere in its subtree is unsupported and
// fails the whole extraction.
func (x *extraction) normalizeRequestBody(raw map[string]any, pathTmpl, verb string) (*RequestBody, error) {
	ref := ""
	if schema, ok := locateSchema(raw); ok {
		ref = mapGetString(schema, "$ref")
		if ref == "" {
			// Array bodies keep the pointer one level down.
			if items := mapGetMap(schema, "items"); items != nil {
				ref = mapGetString(items, "$ref")
			}
		}
	}
	if ref == "" {
		ref, _ = findStringKeyBFS(raw, "$ref")
	}
	if ref == "" {
		return nil, &oaserrors.ExtractError{
			Path:    pathTmpl,
			Method:  verb,
			Message: "request body has no schema pointer",
		}
	}

	node, err := x.resolver.Resolve(ref, 0)
	if err != nil {
		return nil, &oaserrors.ExtractError{
			Path:   pathTmpl,
			Method: verb,
			Cause:  err,
		}
	}

	// Single-character descriptions carry no information; normalize them to
	// absent.
	description := mapGetString(raw, "description")
	if len(description) <= 1 {
		description = ""
	}

	return &RequestBody{
		Description: description,
		Required:    mapGetBool(raw, "required"),
		Schema:      node,
	}, nil
}
