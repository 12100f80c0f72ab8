package catalog

import "github.com/erraggy/oascatalog/internal/maputil"

// locateSchema returns the schema object declared at one of the standard
// locations inside a response or request-body entry: the OAS 2.0 "schema"
// key, or an OAS 3.x "content/<media-type>/schema" (media types visited in
// ascending order). Generic breadth-first search is only used when neither
// location is present.
func locateSchema(entry map[string]any) (map[string]any, bool) {
	if s := mapGetMap(entry, "schema"); s != nil {
		return s, true
	}
	if content := mapGetMap(entry, "content"); content != nil {
		for _, mt := range maputil.SortedKeys(content) {
			if mtObj, ok := content[mt].(map[string]any); ok {
				if s := mapGetMap(mtObj, "schema"); s != nil {
					return s, true
				}
			}
		}
	}
	return nil, false
}

// findKeyBFS searches value breadth-first for the first occurrence of key.
// All keys of a mapping are examined before descending into its nested
// values, and children at the same level are visited in ascending key order
// so the search is deterministic.
func findKeyBFS(value any, key string) (any, bool) {
	queue := []any{value}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		switch v := cur.(type) {
		case map[string]any:
			if found, ok := v[key]; ok {
				return found, true
			}
			for _, k := range maputil.SortedKeys(v) {
				switch child := v[k].(type) {
				case map[string]any:
					queue = append(queue, child)
				case []any:
					queue = append(queue, child)
				}
			}
		case []any:
			for _, item := range v {
				switch child := item.(type) {
				case map[string]any:
					queue = append(queue, child)
				case []any:
					queue = append(queue, child)
				}
			}
		}
	}
	return nil, false
}

// findStringKeyBFS is findKeyBFS narrowed to string-valued keys. Non-string
// occurrences of key do not terminate the search.
func findStringKeyBFS(value any, key string) (string, bool) {
	queue := []any{value}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		switch v := cur.(type) {
		case map[string]any:
			if found, ok := v[key].(string); ok {
				return found, true
			}
			for _, k := range maputil.SortedKeys(v) {
				switch child := v[k].(type) {
				case map[string]any:
					queue = append(queue, child)
				case []any:
					queue = append(queue, child)
				}
			}
		case []any:
			for _, item := range v {
				switch child := item.(type) {
				case map[string]any:
					queue = append(queue, child)
				case []any:
					queue = append(queue, child)
				}
			}
		}
	}
	return "", false
}
