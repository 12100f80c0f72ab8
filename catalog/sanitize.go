package catalog

// DefaultDenylist is the set of schema keys stripped from every resolved
// schema regardless of position. The legacy xml marker carries serialization
// hints that have no meaning in a normalized catalog.
var DefaultDenylist = []string{"xml"}

// Sanitize returns a copy of value with every denylisted key removed from
// every mapping at any depth. Mappings and sequences are reconstructed;
// scalar values pass through unchanged. The input is never mutated. Absent
// keys are no-ops; there are no error conditions.
func Sanitize(value any, denylist []string) any {
	set := make(map[string]bool, len(denylist))
	for _, k := range denylist {
		set[k] = true
	}
	return sanitizeValue(value, set)
}

func sanitizeValue(value any, denylist map[string]bool) any {
	switch v := value.(type) {
	case map[string]any:
		out := make(map[string]any, len(v))
		for k, val := range v {
			if denylist[k] {
				continue
			}
			out[k] = sanitizeValue(val, denylist)
		}
		return out
	case []any:
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = sanitizeValue(item, denylist)
		}
		return out
	default:
		return v
	}
}
