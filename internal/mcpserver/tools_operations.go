package mcpserver

import (
	"context"
	"strings"

	"github.com/erraggy/oascatalog/catalog"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type operationsInput struct {
	Spec   specInput `json:"spec"             jsonschema:"The OAS document to list operations from"`
	Method string    `json:"method,omitempty" jsonschema:"Filter by HTTP method (get\\, post\\, put\\, delete\\, etc.)"`
	Path   string    `json:"path,omitempty"   jsonschema:"Filter by path pattern (* matches one segment)"`
	Detail bool      `json:"detail,omitempty" jsonschema:"Return fully normalized operations instead of summaries"`
	Limit  int       `json:"limit,omitempty"  jsonschema:"Maximum number of results to return (default 100)"`
	Offset int       `json:"offset,omitempty" jsonschema:"Skip the first N results (for pagination)"`
}

type methodSummary struct {
	Method  string `json:"method"`
	Path    string `json:"path"`
	URL     string `json:"url"`
	Summary string `json:"summary,omitempty"`
}

type operationsOutput struct {
	Total     int              `json:"total"`
	Matched   int              `json:"matched"`
	Returned  int              `json:"returned"`
	Summaries []methodSummary  `json:"summaries,omitempty"`
	Methods   []catalog.Method `json:"methods,omitempty"`
}

func handleOperations(_ context.Context, _ *mcp.CallToolRequest, input operationsInput) (*mcp.CallToolResult, any, error) {
	cat, err := input.Spec.resolve()
	if err != nil {
		return errResult(err), nil, nil
	}

	matched := filterMethods(cat.Methods, input)

	limit := input.Limit
	if input.Detail {
		limit = detailLimit(limit)
	}
	returned := paginate(matched, input.Offset, limit)

	output := operationsOutput{
		Total:    len(cat.Methods),
		Matched:  len(matched),
		Returned: len(returned),
	}

	if input.Detail {
		output.Methods = returned
	} else {
		output.Summaries = makeSlice[methodSummary](len(returned))
		for _, m := range returned {
			output.Summaries = append(output.Summaries, methodSummary{
				Method:  string(m.Operation),
				Path:    m.Path,
				URL:     m.URL,
				Summary: m.Summary,
			})
		}
	}

	return nil, output, nil
}

// filterMethods applies the method and path filters and returns the matching subset.
func filterMethods(methods []catalog.Method, input operationsInput) []catalog.Method {
	var matched []catalog.Method
	for _, m := range methods {
		if input.Method != "" && !strings.EqualFold(string(m.Operation), input.Method) {
			continue
		}
		if input.Path != "" && !matchPathPattern(m.Path, input.Path) {
			continue
		}
		matched = append(matched, m)
	}
	return matched
}

// matchPathPattern checks if a path template matches a pattern.
// Supports simple glob matching where * matches exactly one path segment.
func matchPathPattern(pathTemplate, pattern string) bool {
	if pattern == "" {
		return true
	}
	if strings.Contains(pattern, "*") {
		patternParts := strings.Split(pattern, "/")
		pathParts := strings.Split(pathTemplate, "/")
		if len(patternParts) != len(pathParts) {
			return false
		}
		for i, pp := range patternParts {
			if pp == "*" {
				continue
			}
			if pp != pathParts[i] {
				return false
			}
		}
		return true
	}
	return pathTemplate == pattern
}
