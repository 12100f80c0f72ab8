package catalog

import (
	"strings"

	"github.com/erraggy/oascatalog/internal/httputil"
	"github.com/erraggy/oascatalog/oaserrors"
)

// Operation is one of the eight HTTP verbs an OAS path item may declare.
type Operation string

// The complete set of operations. Any other path-item key that is not a
// known non-operation key fails extraction for that entry.
const (
	OperationGet     Operation = "GET"
	OperationPut     Operation = "PUT"
	OperationPost    Operation = "POST"
	OperationDelete  Operation = "DELETE"
	OperationOptions Operation = "OPTIONS"
	OperationHead    Operation = "HEAD"
	OperationPatch   Operation = "PATCH"
	OperationTrace   Operation = "TRACE"
)

// ParseOperation maps a path-item key (case-insensitive) to its Operation.
// Unrecognized verbs return an ExtractError.
func ParseOperation(verb string) (Operation, error) {
	lower := strings.ToLower(verb)
	if !httputil.Methods[lower] {
		return "", &oaserrors.ExtractError{
			Method:  verb,
			Message: "unknown HTTP verb",
		}
	}
	return Operation(strings.ToUpper(lower)), nil
}

// String implements fmt.Stringer.
func (o Operation) String() string { return string(o) }

// Parameter location constants (used in Parameter.In field)
const (
	// ParamInQuery indicates the parameter is passed in the query string
	ParamInQuery = "query"
	// ParamInHeader indicates the parameter is passed in a request header
	ParamInHeader = "header"
	// ParamInPath indicates the parameter is part of the URL path
	ParamInPath = "path"
	// ParamInCookie indicates the parameter is passed as a cookie (OAS 3.0+)
	ParamInCookie = "cookie"
	// ParamInFormData indicates the parameter is passed as form data (OAS 2.0 only)
	ParamInFormData = "formData"
	// ParamInBody indicates the parameter is in the request body (OAS 2.0 only)
	ParamInBody = "body"
)

// SchemaKind discriminates the variants of a SchemaNode.
type SchemaKind int

const (
	// KindPrimitive is a scalar schema (string, integer, number, boolean, ...).
	KindPrimitive SchemaKind = iota
	// KindObject is an object schema with named properties.
	KindObject
	// KindArray is an array schema with an item schema.
	KindArray
	// KindEnum is a literal value set.
	KindEnum
	// KindReference is a backward reference to a schema currently being
	// resolved on the same pointer chain. It carries the schema name only,
	// never a second copy of the schema.
	KindReference
)

var schemaKindNames = map[SchemaKind]string{
	KindPrimitive: "primitive",
	KindObject:    "object",
	KindArray:     "array",
	KindEnum:      "enum",
	KindReference: "reference",
}

// String implements fmt.Stringer.
func (k SchemaKind) String() string {
	if s, ok := schemaKindNames[k]; ok {
		return s
	}
	return "unknown"
}

// Property is one named property of an object schema. Properties are kept
// as a slice so the mapping stays ordered; order is deterministic
// (ascending property name).
type Property struct {
	Name   string      `json:"name"`
	Schema *SchemaNode `json:"schema"`
}

// SchemaNode is the resolved, normalized form of a schema subtree. Exactly
// the fields relevant to Kind are populated. A resolved tree never contains
// a $ref key or a denylisted key at any depth.
type SchemaNode struct {
	// Kind selects the variant.
	Kind SchemaKind `json:"kind"`
	// Type is the primitive type name (KindPrimitive) or the element type
	// of a literal set (KindEnum).
	Type string `json:"type,omitempty"`
	// Format is the optional format qualifier of a primitive (e.g. int64,
	// date-time).
	Format string `json:"format,omitempty"`
	// Properties are the named members of an object schema (KindObject).
	Properties []Property `json:"properties,omitempty"`
	// Items is the element schema of an array (KindArray).
	Items *SchemaNode `json:"items,omitempty"`
	// Values are the members of a literal set (KindEnum).
	Values []any `json:"values,omitempty"`
	// Ref is the referenced schema name (KindReference).
	Ref string `json:"ref,omitempty"`
}

// TypeName returns the conventional OAS type string for the node: the
// primitive or enum element type where known, otherwise the structural kind.
func (n *SchemaNode) TypeName() string {
	if n == nil {
		return ""
	}
	switch n.Kind {
	case KindPrimitive, KindEnum:
		if n.Type != "" {
			return n.Type
		}
		return n.Kind.String()
	default:
		return n.Kind.String()
	}
}

// Property returns the schema of the named property of an object node, or
// nil when absent or when the node is not an object.
func (n *SchemaNode) Property(name string) *SchemaNode {
	if n == nil || n.Kind != KindObject {
		return nil
	}
	for _, p := range n.Properties {
		if p.Name == name {
			return p.Schema
		}
	}
	return nil
}

// ArrayItem describes the element of an array-typed parameter.
type ArrayItem struct {
	// Type is the element's primitive type name, when declared inline.
	Type string `json:"type,omitempty"`
	// Schema is the resolved element schema, when the items held a pointer.
	Schema *SchemaNode `json:"schema,omitempty"`
	// Enum holds the declared literal values, if any.
	Enum []any `json:"enum,omitempty"`
	// Default is the declared default value, if any.
	Default any `json:"default,omitempty"`
}

// Parameter is one normalized operation parameter.
type Parameter struct {
	Name        string `json:"name"`
	In          string `json:"in"`
	Description string `json:"description,omitempty"`
	Required    bool   `json:"required"`
	Deprecated  bool   `json:"deprecated,omitempty"`
	// Type is the effective primitive type, determined by precedence:
	// inline type, then schema.type, then resolution of schema.$ref.
	Type string `json:"type"`
	// Items is set for array-typed parameters.
	Items *ArrayItem `json:"items,omitempty"`
	// Schema is the resolved nested schema when the type was carried by a
	// pointer.
	Schema *SchemaNode `json:"schema,omitempty"`
	// Constraint fields; read from the parameter object first, falling back
	// to its nested schema, independently per field. Nil means absent.
	Pattern   string   `json:"pattern,omitempty"`
	Format    string   `json:"format,omitempty"`
	MaxLength *int     `json:"maxLength,omitempty"`
	Minimum   *float64 `json:"minimum,omitempty"`
	Maximum   *float64 `json:"maximum,omitempty"`
}

// RequestBody is the normalized request body of an operation.
type RequestBody struct {
	// Description is empty when the document carried none, or one of a
	// single character.
	Description string `json:"description,omitempty"`
	Required    bool   `json:"required"`
	// Schema is the resolved body schema. Always set: documents that
	// describe request bodies without a pointer to a named schema are
	// unsupported and fail extraction.
	Schema *SchemaNode `json:"schema"`
}

// Response is one normalized response entry, keyed by status code.
type Response struct {
	// Code is the status code key: a numeric code, a wildcard pattern such
	// as 2XX, or "default".
	Code        string `json:"code"`
	Description string `json:"description,omitempty"`
	// Schema is the resolved return schema, or nil when the entry declares
	// none. Array responses are represented as a node of KindArray whose
	// Items is the resolved element schema.
	Schema *SchemaNode `json:"schema,omitempty"`
}

// Method is one catalog entry: a single HTTP verb on a single path.
type Method struct {
	// URL is the base endpoint prefix concatenated verbatim with the
	// declared path template.
	URL       string    `json:"url"`
	Operation Operation `json:"operation"`
	// Path is the declared path template, kept alongside the joined URL.
	Path          string   `json:"path"`
	Summary       string   `json:"summary,omitempty"`
	Description   string   `json:"description,omitempty"`
	InputFormats  []string `json:"inputFormats,omitempty"`
	OutputFormats []string `json:"outputFormats,omitempty"`
	// Parameters is nil when the operation declares none; it is never an
	// empty non-nil slice, so consumers can distinguish "no parameters"
	// from "zero-length parameter list".
	Parameters  []Parameter  `json:"parameters,omitempty"`
	RequestBody *RequestBody `json:"requestBody,omitempty"`
	Responses   []Response   `json:"responses,omitempty"`
}
