package catalog

import (
	"go.yaml.in/yaml/v4"

	"github.com/erraggy/oascatalog/internal/httputil"
	"github.com/erraggy/oascatalog/oaserrors"
)

// normalizeResponses normalizes the responses object of one operation, in
// declaration order when the source order is known.
func (x *extraction) normalizeResponses(raw map[string]any, node *yaml.Node, pathTmpl, verb string) ([]Response, error) {
	var responses []Response
	for _, code := range orderedKeys(node, raw) {
		entry, ok := raw[code].(map[string]any)
		if !ok {
			x.warnf("response %q at %s %s is not an object, skipping", code, pathTmpl, verb)
			continue
		}
		if !httputil.ValidateStatusCode(code) {
			x.warnf("response key %q at %s %s is not a valid status code", code, pathTmpl, verb)
		}
		resp, err := x.normalizeResponse(code, entry, pathTmpl, verb)
		if err != nil {
			return nil, err
		}
		responses = append(responses, resp)
	}
	return responses, nil
}

// normalizeResponse classifies one status-code entry. The return schema is
// located at the standard places first (schema, content/<media-type>/schema)
// with generic breadth-first search as a last resort; a located pointer is
// resolved fully recursively. Entries whose effective type is array are
// represented as a KindArray node over the resolved item schema.
func (x *extraction) normalizeResponse(code string, entry map[string]any, pathTmpl, verb string) (Response, error) {
	resp := Response{
		Code:        code,
		Description: mapGetString(entry, "description"),
	}

	schema, located := locateSchema(entry)
	typeStr := ""
	ref := ""
	if located {
		typeStr = mapGetString(schema, "type")
		ref = mapGetString(schema, "$ref")
		if ref == "" {
			// Array responses keep the pointer one level down.
			if items := mapGetMap(schema, "items"); items != nil {
				ref = mapGetString(items, "$ref")
			}
		}
	}
	if typeStr == "" {
		typeStr, _ = findStringKeyBFS(entry, "type")
	}
	if ref == "" {
		ref, _ = findStringKeyBFS(entry, "$ref")
	}

	var node *SchemaNode
	switch {
	case ref != "":
		resolved, err := x.resolver.Resolve(ref, 0)
		if err != nil {
			return Response{}, &oaserrors.ExtractError{
				Path:   pathTmpl,
				Method: verb,
				Cause:  err,
			}
		}
		node = resolved
	case located:
		// Inline schema with no pointer anywhere: normalize it directly.
		built, err := x.resolver.buildFromRaw(schema)
		if err != nil {
			return Response{}, &oaserrors.ExtractError{
				Path:   pathTmpl,
				Method: verb,
				Cause:  err,
			}
		}
		node = built
	}

	if node != nil {
		if typeStr == "array" && node.Kind != KindArray {
			node = &SchemaNode{Kind: KindArray, Items: node}
		}
		resp.Schema = node
	}
	return resp, nil
}
