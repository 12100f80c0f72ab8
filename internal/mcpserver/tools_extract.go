package mcpserver

import (
	"context"

	"github.com/erraggy/oascatalog/catalog"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type extractInput struct {
	Spec     specInput `json:"spec"               jsonschema:"The OAS document to extract a catalog from"`
	BaseURL  string    `json:"base_url,omitempty" jsonschema:"Override the endpoint prefix joined onto every path"`
	Denylist []string  `json:"denylist,omitempty" jsonschema:"Schema keys to strip from resolved schemas (default: xml)"`
}

type extractOutput struct {
	Version           string   `json:"version"`
	OASVersion        string   `json:"oas_version"`
	SourceFormat      string   `json:"source_format"`
	BaseURL           string   `json:"base_url,omitempty"`
	PathCount         int      `json:"path_count"`
	OperationCount    int      `json:"operation_count"`
	ParameterCount    int      `json:"parameter_count"`
	ResponseCount     int      `json:"response_count"`
	DeprecatedSkipped int      `json:"deprecated_skipped"`
	RefResolutions    int      `json:"ref_resolutions"`
	Warnings          []string `json:"warnings,omitempty"`
}

func handleExtract(_ context.Context, _ *mcp.CallToolRequest, input extractInput) (*mcp.CallToolResult, any, error) {
	var extraOpts []catalog.Option
	if input.BaseURL != "" {
		extraOpts = append(extraOpts, catalog.WithBaseURL(input.BaseURL))
	}
	if input.Denylist != nil {
		extraOpts = append(extraOpts, catalog.WithDenylist(input.Denylist))
	}

	cat, err := input.Spec.resolve(extraOpts...)
	if err != nil {
		return errResult(err), nil, nil
	}

	return nil, extractOutput{
		Version:           cat.Version,
		OASVersion:        cat.OASVersion.String(),
		SourceFormat:      string(cat.SourceFormat),
		BaseURL:           cat.BaseURL,
		PathCount:         cat.Stats.PathCount,
		OperationCount:    cat.Stats.OperationCount,
		ParameterCount:    cat.Stats.ParameterCount,
		ResponseCount:     cat.Stats.ResponseCount,
		DeprecatedSkipped: cat.Stats.DeprecatedSkipped,
		RefResolutions:    cat.Stats.RefResolutions,
		Warnings:          cat.Warnings,
	}, nil
}
