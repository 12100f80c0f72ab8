// Package oascatalog turns OpenAPI Specification (OAS) documents into a
// normalized, typed catalog of operations.
//
// oascatalog reads an OAS 2.0 (Swagger) or 3.x document from a file, URL,
// reader, or byte slice and produces one catalog entry per HTTP verb on each
// path, with every $ref pointer resolved and every denylisted noise key
// stripped from the embedded schemas. Consumers such as documentation
// generators, client generators, and test harnesses receive schemas with no
// remaining cross-references.
//
// # Overview
//
// The module consists of two primary packages:
//
//   - catalog: Extract and normalize operation catalogs from OAS documents
//   - oaserrors: Structured error types usable with errors.Is and errors.As
//
// # Installation
//
// Install the library using go get:
//
//	go get github.com/erraggy/oascatalog
//
// # Quick Start
//
// Extract a catalog from a specification file:
//
//	import "github.com/erraggy/oascatalog/catalog"
//
//	cat, err := catalog.ExtractWithOptions(
//		catalog.WithFilePath("openapi.yaml"),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	for _, m := range cat.Methods {
//		fmt.Printf("%s %s\n", m.Operation, m.URL)
//	}
//
// # Catalog Package
//
// The catalog package hosts the reference-resolution and schema-normalization
// engine. Key features:
//
//   - Multi-format support (YAML, JSON)
//   - Full recursive $ref resolution with cycle handling
//   - Configurable schema key denylist
//   - Declaration-order output (path order, then verb order)
//   - URL fetching with retries
//
// # Command Line Tool
//
// The module ships a CLI at cmd/oascatalog:
//
//	oascatalog extract openapi.yaml
//	oascatalog extract -format json https://example.com/api/swagger.json
//	oascatalog mcp
//
// The mcp command runs a Model Context Protocol server over stdio exposing
// the extractor as MCP tools.
package oascatalog
