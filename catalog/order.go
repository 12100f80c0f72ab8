package catalog

import (
	"go.yaml.in/yaml/v4"

	"github.com/erraggy/oascatalog/internal/maputil"
)

// unwrapNode steps through document and alias nodes to the underlying
// content node.
func unwrapNode(node *yaml.Node) *yaml.Node {
	for node != nil {
		switch {
		case node.Kind == yaml.DocumentNode && len(node.Content) > 0:
			node = node.Content[0]
		case node.Kind == yaml.AliasNode && node.Alias != nil:
			node = node.Alias
		default:
			return node
		}
	}
	return nil
}

// orderedKeys returns the keys of m in the declaration order recorded by
// node. When no node is available (the document was supplied pre-decoded),
// keys fall back to ascending order so iteration stays deterministic.
func orderedKeys(node *yaml.Node, m map[string]any) []string {
	node = unwrapNode(node)
	if node == nil || node.Kind != yaml.MappingNode {
		return maputil.SortedKeys(m)
	}

	keys := make([]string, 0, len(m))
	seen := make(map[string]bool, len(m))
	for i := 0; i+1 < len(node.Content); i += 2 {
		k := node.Content[i].Value
		if _, ok := m[k]; ok && !seen[k] {
			keys = append(keys, k)
			seen[k] = true
		}
	}
	// Keys present in the map but missing from the node (should not happen
	// for a faithful decode) still get visited.
	for _, k := range maputil.SortedKeys(m) {
		if !seen[k] {
			keys = append(keys, k)
		}
	}
	return keys
}

// childNode returns the value node for key inside a mapping node, or nil.
func childNode(node *yaml.Node, key string) *yaml.Node {
	node = unwrapNode(node)
	if node == nil || node.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value == key {
			return node.Content[i+1]
		}
	}
	return nil
}
