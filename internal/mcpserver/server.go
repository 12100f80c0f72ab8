// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes oascatalog capabilities as MCP tools over stdio.
package mcpserver

import (
	"context"
	"regexp"

	"github.com/erraggy/oascatalog"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const serverInstructions = `oascatalog MCP server — turns OpenAPI/Swagger documents into a normalized operation catalog.

Configuration: All defaults are configurable via OASCATALOG_* environment variables set in your MCP client config. The Go MCP SDK does not support initializationOptions; use env vars instead.

Key settings:
- OASCATALOG_CACHE_FILE_TTL (default: 15m) — cache TTL for local file specs
- OASCATALOG_CACHE_URL_TTL (default: 5m) — cache TTL for URL-fetched specs
- OASCATALOG_CACHE_ENABLED (default: true) — disable catalog caching entirely
- OASCATALOG_LIST_LIMIT (default: 100) — default result limit for the operations tool
- OASCATALOG_LIST_DETAIL_LIMIT (default: 25) — default limit in detail mode
- OASCATALOG_MAX_INLINE_SIZE (default: 4MB) — inline content size cap

Caching: Extracted catalogs are cached per session. File entries use path+mtime as key (auto-invalidated on change). URL entries are cached with a shorter TTL. A background sweeper removes expired entries every 60s.`

// Run starts the MCP server over stdio and blocks until the client disconnects
// or the context is cancelled.
func Run(ctx context.Context) error {
	if cfg.CacheEnabled {
		catalogCache.startSweeper(ctx, cfg.CacheSweepInterval)
	}

	server := mcp.NewServer(
		&mcp.Implementation{Name: "oascatalog", Version: oascatalog.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	return server.Run(ctx, &mcp.StdioTransport{})
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "extract",
		Description: "Extract a normalized operation catalog from an OpenAPI/Swagger document (2.0, 3.0, or 3.1). Returns the declared version, detected format, base URL, extraction stats (paths, operations, parameters, responses, skipped deprecated operations), and any warnings. Deprecated operations are always omitted from the catalog. Use base_url to override the endpoint prefix joined onto every path.",
	}, handleExtract)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "operations",
		Description: "List the operations of an extracted catalog. Filter by HTTP method or path pattern (* matches one path segment). Returns summaries (method, path, URL, summary) by default or fully normalized operations — parameters, request body, resolved response schemas — with detail=true. Use offset/limit to paginate. Default limit is configurable via OASCATALOG_LIST_LIMIT (100, or 25 in detail mode).",
	}, handleOperations)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "resolve_ref",
		Description: "Resolve a single local $ref pointer (e.g. #/components/schemas/Pet) against an OpenAPI document and return the fully resolved schema tree. Pointer chains are followed to any depth; circular references collapse into reference nodes carrying the schema name. Denylisted keys (default: xml) are stripped.",
	}, handleResolveRef)
}

// paginate applies offset/limit pagination to a slice, returning the
// requested page. A non-positive limit defaults to cfg.ListLimit.
func paginate[T any](items []T, offset, limit int) []T {
	if limit <= 0 {
		limit = cfg.ListLimit
	}
	if limit > cfg.MaxLimit {
		limit = cfg.MaxLimit
	}
	if offset < 0 || offset >= len(items) {
		return nil
	}
	end := offset + limit
	if end < offset || end > len(items) { // overflow or beyond slice
		end = len(items)
	}
	return items[offset:end]
}

// detailLimit returns a lower default limit for detail mode output.
// When the user hasn't specified an explicit limit (limit <= 0),
// detail mode defaults to cfg.ListDetailLimit to keep output manageable.
func detailLimit(limit int) int {
	if limit <= 0 {
		return cfg.ListDetailLimit
	}
	return limit
}

// makeSlice returns nil when n is 0 (preserving omitempty JSON semantics),
// otherwise returns make([]T, 0, n) for pre-allocated appending.
func makeSlice[T any](n int) []T {
	if n == 0 {
		return nil
	}
	return make([]T, 0, n)
}

// sanitizeError strips absolute filesystem paths from error messages
// to prevent leaking internal directory structure to MCP clients.
var pathPattern = regexp.MustCompile(`(?:/(?:home|tmp|var|Users|etc|opt|usr|private|root|mnt|srv|run|snap|nix)[a-zA-Z0-9._/-]*)`)

func sanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return pathPattern.ReplaceAllString(err.Error(), "<path>")
}

// errResult creates an MCP error result from an error.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: sanitizeError(err)}},
	}
}
