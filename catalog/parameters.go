package catalog

import (
	"fmt"

	"github.com/erraggy/oascatalog/oaserrors"
)

// normalizeParameters normalizes the declared parameter objects of one
// operation, in declaration order. Any failure aborts the whole extraction.
func (x *extraction) normalizeParameters(raw []any, pathTmpl, verb string) ([]Parameter, error) {
	var params []Parameter
	for i, item := range raw {
		obj, ok := item.(map[string]any)
		if !ok {
			return nil, &oaserrors.ExtractError{
				Path:    pathTmpl,
				Method:  verb,
				Message: fmt.Sprintf("parameter %d is not an object", i),
			}
		}
		p, err := x.normalizeParameter(obj, pathTmpl, verb)
		if err != nil {
			return nil, err
		}
		params = append(params, p)
	}
	return params, nil
}

func (x *extraction) normalizeParameter(param map[string]any, pathTmpl, verb string) (Parameter, error) {
	// A bare pointer parameter (e.g. #/parameters/limit) is replaced by its
	// target before any field is read.
	if mapGetMap(param, "schema") == nil {
		if ref := mapGetString(param, "$ref"); ref != "" {
			target, err := x.resolver.lookupRaw(ref)
			if err != nil {
				return Parameter{}, &oaserrors.ExtractError{
					Path:   pathTmpl,
					Method: verb,
					Cause:  err,
				}
			}
			param = target
		}
	}

	name := mapGetString(param, "name")
	if name == "" {
		return Parameter{}, &oaserrors.ExtractError{
			Path:    pathTmpl,
			Method:  verb,
			Message: "parameter without a name",
		}
	}

	schema := mapGetMap(param, "schema")

	// Effective type precedence: inline type, then schema.type, then
	// resolution of schema.$ref.
	var schemaNode *SchemaNode
	typeStr := mapGetString(param, "type")
	if typeStr == "" && schema != nil {
		typeStr = mapGetString(schema, "type")
	}
	if typeStr == "" {
		ref := ""
		if schema != nil {
			ref = mapGetString(schema, "$ref")
		}
		if ref == "" {
			return Parameter{}, &oaserrors.ExtractError{
				Path:    pathTmpl,
				Method:  verb,
				Message: fmt.Sprintf("parameter %q has no discoverable type", name),
			}
		}
		node, err := x.resolver.Resolve(ref, 0)
		if err != nil {
			return Parameter{}, &oaserrors.ExtractError{
				Path:   pathTmpl,
				Method: verb,
				Cause:  err,
			}
		}
		schemaNode = node
		typeStr = node.TypeName()
	}

	var items *ArrayItem
	if typeStr == "array" {
		rawItems := mapGetMap(param, "items")
		if rawItems == nil && schema != nil {
			rawItems = mapGetMap(schema, "items")
		}
		if rawItems == nil {
			return Parameter{}, &oaserrors.ExtractError{
				Path:    pathTmpl,
				Method:  verb,
				Message: fmt.Sprintf("array parameter %q without items is invalid", name),
			}
		}

		enum, _ := rawItems["enum"].([]any)
		items = &ArrayItem{
			Enum:    enum,
			Default: rawItems["default"],
		}
		if t := mapGetString(rawItems, "type"); t != "" {
			items.Type = t
		} else {
			ref := mapGetString(rawItems, "$ref")
			if ref == "" {
				return Parameter{}, &oaserrors.ExtractError{
					Path:    pathTmpl,
					Method:  verb,
					Message: fmt.Sprintf("array parameter %q item has neither type nor $ref", name),
				}
			}
			node, err := x.resolver.Resolve(ref, 0)
			if err != nil {
				return Parameter{}, &oaserrors.ExtractError{
					Path:   pathTmpl,
					Method: verb,
					Cause:  err,
				}
			}
			items.Schema = node
			items.Type = node.TypeName()
		}
	}

	// Constraint fields: parameter object first, nested schema as fallback,
	// decided independently per field.
	pattern := mapGetString(param, "pattern")
	if pattern == "" && schema != nil {
		pattern = mapGetString(schema, "pattern")
	}
	format := mapGetString(param, "format")
	if format == "" && schema != nil {
		format = mapGetString(schema, "format")
	}
	maxLength := mapGetIntPtr(param, "maxLength")
	if maxLength == nil && schema != nil {
		maxLength = mapGetIntPtr(schema, "maxLength")
	}
	minimum := mapGetFloat64Ptr(param, "minimum")
	if minimum == nil && schema != nil {
		minimum = mapGetFloat64Ptr(schema, "minimum")
	}
	maximum := mapGetFloat64Ptr(param, "maximum")
	if maximum == nil && schema != nil {
		maximum = mapGetFloat64Ptr(schema, "maximum")
	}

	return Parameter{
		Name:        name,
		In:          mapGetString(param, "in"),
		Description: mapGetString(param, "description"),
		Required:    mapGetBool(param, "required"),
		Deprecated:  mapGetBool(param, "deprecated"),
		Type:        typeStr,
		Items:       items,
		Schema:      schemaNode,
		Pattern:     pattern,
		Format:      format,
		MaxLength:   maxLength,
		Minimum:     minimum,
		Maximum:     maximum,
	}, nil
}
