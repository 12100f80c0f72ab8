package mcpserver

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"

	"go.yaml.in/yaml/v4"

	"github.com/erraggy/oascatalog/catalog"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type resolveRefInput struct {
	Spec     specInput `json:"spec"               jsonschema:"The OAS document the pointer resolves against"`
	Ref      string    `json:"ref"                jsonschema:"Local pointer to resolve (e.g. #/components/schemas/Pet)"`
	Denylist []string  `json:"denylist,omitempty" jsonschema:"Schema keys to strip from the resolved schema (default: xml)"`
}

type resolveRefOutput struct {
	Ref    string              `json:"ref"`
	Schema *catalog.SchemaNode `json:"schema"`
}

func handleResolveRef(ctx context.Context, _ *mcp.CallToolRequest, input resolveRefInput) (*mcp.CallToolResult, any, error) {
	if input.Ref == "" {
		return errResult(fmt.Errorf("ref must be provided")), nil, nil
	}

	doc, err := input.Spec.rawDocument(ctx)
	if err != nil {
		return errResult(err), nil, nil
	}

	node, err := catalog.ResolveRef(doc, input.Ref, input.Denylist)
	if err != nil {
		return errResult(err), nil, nil
	}

	return nil, resolveRefOutput{Ref: input.Ref, Schema: node}, nil
}

// rawDocument loads and decodes the spec input into a plain map without
// extracting a catalog, for tools that work on the raw document.
func (s specInput) rawDocument(ctx context.Context) (map[string]any, error) {
	var data []byte
	switch {
	case s.File != "":
		b, err := os.ReadFile(s.File)
		if err != nil {
			return nil, err
		}
		data = b
	case s.URL != "":
		client := http.DefaultClient
		if !cfg.AllowPrivateIPs {
			client = newSafeHTTPClient()
		}
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.URL, nil)
		if err != nil {
			return nil, err
		}
		resp, err := client.Do(req)
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("unexpected status %s fetching %s", resp.Status, s.URL)
		}
		b, err := io.ReadAll(io.LimitReader(resp.Body, cfg.MaxInlineSize))
		if err != nil {
			return nil, err
		}
		data = b
	case s.Content != "":
		if int64(len(s.Content)) > cfg.MaxInlineSize {
			return nil, fmt.Errorf("inline content size %d bytes exceeds maximum %d bytes", len(s.Content), cfg.MaxInlineSize)
		}
		data = []byte(s.Content)
	default:
		return nil, fmt.Errorf("exactly one of file, url, or content must be provided")
	}

	var doc map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode document: %w", err)
	}
	return doc, nil
}
