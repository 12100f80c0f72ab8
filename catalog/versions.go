package catalog

import (
	"strings"

	"github.com/erraggy/oascatalog/oaserrors"
)

// OASVersion is the major specification series a document declares.
// The extractor only needs the series: it selects where named schemas live
// and how media types are declared.
type OASVersion int

const (
	// VersionUnknown represents an unknown or undeclared OAS version
	VersionUnknown OASVersion = iota
	// Version20 is OpenAPI Specification 2.0 (Swagger)
	Version20
	// Version30 is the OpenAPI Specification 3.0.x series
	Version30
	// Version31 is the OpenAPI Specification 3.1.x series
	Version31
)

// String implements fmt.Stringer.
func (v OASVersion) String() string {
	switch v {
	case Version20:
		return "2.0"
	case Version30:
		return "3.0"
	case Version31:
		return "3.1"
	default:
		return "unknown"
	}
}

// SchemaContainer returns the top-level pointer segments under which the
// document keeps its named schemas: definitions for 2.0,
// components/schemas for 3.x.
func (v OASVersion) SchemaContainer() []string {
	if v == Version20 {
		return []string{"definitions"}
	}
	return []string{"components", "schemas"}
}

// detectVersion reads the version declaration of a decoded document.
// OAS 2.0 declares swagger: "2.0"; 3.x declares openapi: "3.y.z".
func detectVersion(doc map[string]any) (string, OASVersion, error) {
	if s := mapGetString(doc, "swagger"); s != "" {
		if s != "2.0" {
			return s, VersionUnknown, &oaserrors.ParseError{
				Message: "unsupported swagger version: " + s,
			}
		}
		return s, Version20, nil
	}

	if s := mapGetString(doc, "openapi"); s != "" {
		switch {
		case strings.HasPrefix(s, "3.0"):
			return s, Version30, nil
		case strings.HasPrefix(s, "3.1"):
			return s, Version31, nil
		default:
			return s, VersionUnknown, &oaserrors.ParseError{
				Message: "unsupported openapi version: " + s,
			}
		}
	}

	return "", VersionUnknown, &oaserrors.ParseError{
		Message: "document declares neither swagger nor openapi version",
	}
}
