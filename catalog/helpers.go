package catalog

import "math"

// mapGetString extracts a string from m[key], or "" when absent or not a string.
func mapGetString(m map[string]any, key string) string {
	s, _ := m[key].(string)
	return s
}

// mapGetBool extracts a bool from m[key], defaulting to false.
func mapGetBool(m map[string]any, key string) bool {
	b, _ := m[key].(bool)
	return b
}

// mapGetMap extracts a nested mapping from m[key], or nil.
func mapGetMap(m map[string]any, key string) map[string]any {
	nested, _ := m[key].(map[string]any)
	return nested
}

// mapGetStringSlice extracts a []string from m[key], handling the []any that
// yaml.Unmarshal / json.Unmarshal produce.
func mapGetStringSlice(m map[string]any, key string) []string {
	arr, ok := m[key].([]any)
	if !ok {
		return nil
	}
	result := make([]string, 0, len(arr))
	for _, item := range arr {
		if s, ok := item.(string); ok {
			result = append(result, s)
		}
	}
	if len(result) == 0 {
		return nil
	}
	return result
}

// mapGetFloat64Ptr extracts a *float64 from m[key].
// Handles both float64 (from JSON) and int (from YAML) numeric values.
func mapGetFloat64Ptr(m map[string]any, key string) *float64 {
	v, ok := m[key]
	if !ok {
		return nil
	}
	switch n := v.(type) {
	case float64:
		return &n
	case int:
		f := float64(n)
		return &f
	case int64:
		f := float64(n)
		return &f
	case uint64:
		f := float64(n)
		return &f
	default:
		return nil
	}
}

// mapGetIntPtr extracts a *int from m[key].
// Handles both float64 (from JSON) and int (from YAML) numeric values.
func mapGetIntPtr(m map[string]any, key string) *int {
	v, ok := m[key]
	if !ok {
		return nil
	}
	switch n := v.(type) {
	case float64:
		i := int(n)
		return &i
	case int:
		return &n
	case int64:
		i := int(n)
		return &i
	case uint64:
		if n > math.MaxInt {
			return nil
		}
		i := int(n)
		return &i
	default:
		return nil
	}
}
