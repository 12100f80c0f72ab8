// Package catalog extracts a normalized, typed operation catalog from
// OpenAPI Specification (OAS) documents.
//
// The extractor walks every path and HTTP verb declared in an OAS 2.0
// (Swagger) or 3.x document and produces one [Method] per operation, with
// parameter, request-body, and response schemas fully resolved: every $ref
// pointer is followed (through any number of hops), denylisted noise keys
// are stripped, and ambiguous schema shapes are normalized into the tagged
// [SchemaNode] variant. The source document is treated as strictly
// read-only; resolution builds new values and never mutates the input.
//
// # Quick Start
//
//	cat, err := catalog.ExtractWithOptions(
//		catalog.WithFilePath("openapi.yaml"),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	for _, m := range cat.Methods {
//		fmt.Printf("%s %s (%d params)\n", m.Operation, m.URL, len(m.Parameters))
//	}
//
// Documents can also be supplied from a URL (fetched with retries), an
// io.Reader, a byte slice, or an already-decoded map:
//
//	cat, err := catalog.ExtractWithOptions(
//		catalog.WithBytes(data),
//		catalog.WithBaseURL("https://api.example.com/v2"),
//	)
//
// # Failure model
//
// Extraction is all-or-nothing: a missing or empty paths object, an
// unresolvable pointer, an array parameter without an item descriptor, or a
// request body with no schema pointer aborts the whole extraction and no
// partial catalog is returned. Operations marked deprecated are silently
// omitted (counted in [CatalogStats]). Circular pointer chains are legal:
// the cycle is represented structurally by a [SchemaNode] of kind
// [KindReference] carrying the schema name instead of a second copy.
package catalog
