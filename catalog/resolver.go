package catalog

import (
	"strings"

	"github.com/erraggy/oascatalog/internal/maputil"
	"github.com/erraggy/oascatalog/oaserrors"
)

// DefaultMaxRefDepth is the maximum depth allowed for nested $ref resolution.
// This prevents stack overflow from deeply nested (but non-circular) chains.
const DefaultMaxRefDepth = 100

// refResolver resolves local $ref pointers against a single root document.
// Resolution is pure: every call returns newly built values and the document
// is never mutated, so resolving the same pointer twice yields structurally
// equal results.
type refResolver struct {
	doc      map[string]any
	denylist map[string]bool
	maxDepth int
	// resolving tracks pointers on the current recursion path. Revisiting
	// one means the pointer graph has a cycle; the revisit produces a
	// KindReference node carrying the schema name instead of recursing.
	resolving map[string]bool
	logger    Logger
	// resolutions counts successful pointer lookups for stats reporting.
	resolutions int
}

func newRefResolver(doc map[string]any, denylist []string, maxDepth int, logger Logger) *refResolver {
	if maxDepth <= 0 {
		maxDepth = DefaultMaxRefDepth
	}
	if logger == nil {
		logger = NopLogger{}
	}
	set := make(map[string]bool, len(denylist))
	for _, k := range denylist {
		set[k] = true
	}
	return &refResolver{
		doc:       doc,
		denylist:  set,
		maxDepth:  maxDepth,
		resolving: make(map[string]bool),
		logger:    logger,
	}
}

// refName returns the last path segment of a pointer string.
func refName(ref string) string {
	if idx := strings.LastIndex(ref, "/"); idx >= 0 {
		return ref[idx+1:]
	}
	return ref
}

// lookupRaw returns a sanitized copy of the subtree the pointer addresses.
// Pointers take the form #/<container>/<name> or #/<container>/<sub>/<name>;
// a missing segment fails with a ReferenceError naming it.
func (r *refResolver) lookupRaw(ref string) (map[string]any, error) {
	if !strings.HasPrefix(ref, "#/") {
		return nil, &oaserrors.ReferenceError{
			Ref:     ref,
			Message: "only local pointers of the form #/container/name are supported",
		}
	}

	parts := strings.Split(strings.TrimPrefix(ref, "#/"), "/")
	current := any(r.doc)
	for _, part := range parts {
		m, ok := current.(map[string]any)
		if !ok {
			return nil, &oaserrors.ReferenceError{
				Ref:            ref,
				MissingSegment: part,
				Message:        "segment parent is not an object",
			}
		}
		next, ok := m[part]
		if !ok {
			return nil, &oaserrors.ReferenceError{Ref: ref, MissingSegment: part}
		}
		current = next
	}

	obj, ok := current.(map[string]any)
	if !ok {
		return nil, &oaserrors.ReferenceError{
			Ref:     ref,
			Message: "pointer does not address an object",
		}
	}

	// Copy and strip denylisted keys in one pass; the document itself stays
	// untouched.
	sanitized, _ := sanitizeValue(obj, r.denylist).(map[string]any)
	return sanitized, nil
}

// Resolve resolves a pointer to a fully normalized schema node. Resolution
// is recursive through any number of hops; a pointer revisited on the
// current path yields a KindReference node.
func (r *refResolver) Resolve(ref string, depth int) (*SchemaNode, error) {
	if depth > r.maxDepth {
		return nil, &oaserrors.ResourceLimitError{
			ResourceType: "ref_depth",
			Limit:        int64(r.maxDepth),
			Actual:       int64(depth),
			Message:      "pointer chain too deeply nested",
		}
	}

	if r.resolving[ref] {
		return &SchemaNode{Kind: KindReference, Ref: refName(ref)}, nil
	}

	raw, err := r.lookupRaw(ref)
	if err != nil {
		return nil, err
	}
	r.resolutions++
	r.logger.Debug("resolved pointer", "ref", ref, "depth", depth)

	r.resolving[ref] = true
	defer delete(r.resolving, ref)
	return r.buildNode(raw, depth+1)
}

// buildNode normalizes a raw, already sanitized schema subtree into the
// tagged SchemaNode form. Precedence: pointer, literal set, array, object
// with properties, then primitive.
func (r *refResolver) buildNode(raw map[string]any, depth int) (*SchemaNode, error) {
	if depth > r.maxDepth {
		return nil, &oaserrors.ResourceLimitError{
			ResourceType: "ref_depth",
			Limit:        int64(r.maxDepth),
			Actual:       int64(depth),
			Message:      "schema too deeply nested",
		}
	}

	if ref := mapGetString(raw, "$ref"); ref != "" {
		return r.Resolve(ref, depth+1)
	}

	if values, ok := raw["enum"].([]any); ok {
		return &SchemaNode{
			Kind:   KindEnum,
			Type:   mapGetString(raw, "type"),
			Values: values,
		}, nil
	}

	typeStr := mapGetString(raw, "type")
	if typeStr == "array" {
		node := &SchemaNode{Kind: KindArray}
		if items, ok := raw["items"].(map[string]any); ok {
			child, err := r.buildNode(items, depth+1)
			if err != nil {
				return nil, err
			}
			node.Items = child
		}
		return node, nil
	}

	if props, ok := raw["properties"].(map[string]any); ok {
		node := &SchemaNode{Kind: KindObject}
		for _, name := range maputil.SortedKeys(props) {
			pm, ok := props[name].(map[string]any)
			if !ok {
				// Property values that are not objects carry no usable
				// schema; skip them.
				continue
			}
			child, err := r.buildNode(pm, depth+1)
			if err != nil {
				return nil, err
			}
			node.Properties = append(node.Properties, Property{Name: name, Schema: child})
		}
		return node, nil
	}

	// A subtree with no properties of its own may still wrap a pointer
	// (an allOf is the usual shape); resolve the buried pointer instead of
	// collapsing to an empty object.
	if ref, ok := findStringKeyBFS(raw, "$ref"); ok {
		return r.Resolve(ref, depth+1)
	}

	if typeStr == "" || typeStr == "object" {
		return &SchemaNode{Kind: KindObject}, nil
	}

	return &SchemaNode{
		Kind:   KindPrimitive,
		Type:   typeStr,
		Format: mapGetString(raw, "format"),
	}, nil
}

// buildFromRaw normalizes an inline schema subtree that was not reached
// through a pointer. The subtree is sanitized first; the original value is
// not mutated.
func (r *refResolver) buildFromRaw(raw map[string]any) (*SchemaNode, error) {
	sanitized, _ := sanitizeValue(raw, r.denylist).(map[string]any)
	return r.buildNode(sanitized, 0)
}

// ResolveRef resolves a single local pointer against doc and returns the
// fully resolved, sanitized schema node. A bare schema name is expanded
// against the document's schema container (definitions for 2.0,
// components/schemas for 3.x). A nil denylist means DefaultDenylist. The
// document is never mutated.
func ResolveRef(doc map[string]any, ref string, denylist []string) (*SchemaNode, error) {
	if !strings.ContainsAny(ref, "#/") {
		_, v, err := detectVersion(doc)
		if err != nil {
			return nil, err
		}
		ref = "#/" + strings.Join(append(v.SchemaContainer(), ref), "/")
	}
	if denylist == nil {
		denylist = DefaultDenylist
	}
	r := newRefResolver(doc, denylist, DefaultMaxRefDepth, nil)
	return r.Resolve(ref, 0)
}
