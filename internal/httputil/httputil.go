// Package httputil provides HTTP-related constants and validation helpers
// shared by the catalog extractor and its front ends.
package httputil

import "strings"

// HTTP status code boundaries for response-key validation.
const (
	statusCodeLength = 3   // standard length of HTTP status codes (e.g., "200", "404")
	minStatusCode    = 100 // minimum valid HTTP status code
	maxStatusCode    = 599 // maximum valid HTTP status code
)

// HTTP method constants as they appear as path-item keys in OAS documents.
const (
	MethodGet     = "get"
	MethodPut     = "put"
	MethodPost    = "post"
	MethodDelete  = "delete"
	MethodOptions = "options"
	MethodHead    = "head"
	MethodPatch   = "patch"
	MethodTrace   = "trace" // OAS 3.0+ only
)

// Methods is the complete set of path-item keys that name operations.
var Methods = map[string]bool{
	MethodGet:     true,
	MethodPut:     true,
	MethodPost:    true,
	MethodDelete:  true,
	MethodOptions: true,
	MethodHead:    true,
	MethodPatch:   true,
	MethodTrace:   true,
}

// NonOperationPathKeys are path-item keys that are legal in OAS documents but
// do not name operations. The extractor skips these rather than failing.
var NonOperationPathKeys = map[string]bool{
	"summary":     true,
	"description": true,
	"parameters":  true,
	"servers":     true,
	"$ref":        true,
}

// ValidateStatusCode checks whether a responses key is a valid status code
// per the OpenAPI specification. Valid values are:
//   - "default" for the default response
//   - wildcard patterns: 1XX, 2XX, 3XX, 4XX, 5XX
//   - numeric codes: 100-599
func ValidateStatusCode(code string) bool {
	if code == "default" {
		return true
	}

	if len(code) != statusCodeLength {
		return false
	}

	// Wildcard patterns (e.g., "2XX", "4XX")
	if code[1] == 'X' && code[2] == 'X' {
		return code[0] >= '1' && code[0] <= '5'
	}

	n := 0
	for _, c := range code {
		if c < '0' || c > '9' {
			return false
		}
		n = n*10 + int(c-'0')
	}
	return n >= minStatusCode && n <= maxStatusCode
}

// IsExtensionKey reports whether a key is a specification extension (x-*).
func IsExtensionKey(key string) bool {
	return strings.HasPrefix(key, "x-")
}
