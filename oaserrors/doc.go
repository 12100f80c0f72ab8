// Package oaserrors provides structured error types for oascatalog.
//
// These error types enable programmatic error handling via errors.Is() and
// errors.As(), allowing callers to distinguish between different categories
// of errors and implement appropriate recovery strategies.
//
// # Error Categories
//
//   - ParseError: YAML/JSON decoding failures and structural issues
//   - ReferenceError: $ref pointer lookup failures
//   - ExtractError: catalog extraction failures (missing paths, invalid
//     parameters, unsupported request bodies, unknown verbs)
//   - ResourceLimitError: resource exhaustion (depth, size limits)
//   - ConfigError: invalid configuration or input options
//
// # Usage with errors.As
//
//	cat, err := catalog.ExtractWithOptions(catalog.WithFilePath("api.yaml"))
//	if err != nil {
//	    var refErr *oaserrors.ReferenceError
//	    if errors.As(err, &refErr) {
//	        fmt.Println("unresolvable pointer:", refErr.Ref)
//	    }
//	}
//
// # Usage with errors.Is
//
//	if errors.Is(err, oaserrors.ErrExtract) {
//	    // the document was decodable but could not be cataloged
//	}
package oaserrors
