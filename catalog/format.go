package catalog

import (
	"bytes"
	"mime"
	"path"
	"strings"
)

// SourceFormat represents the serialized format of the source document.
type SourceFormat string

const (
	// SourceFormatYAML indicates the source was in YAML format
	SourceFormatYAML SourceFormat = "yaml"
	// SourceFormatJSON indicates the source was in JSON format
	SourceFormatJSON SourceFormat = "json"
	// SourceFormatUnknown indicates the source format could not be determined
	SourceFormatUnknown SourceFormat = "unknown"
)

// detectFormatFromPath detects the source format from a file path or URL path.
func detectFormatFromPath(p string) SourceFormat {
	switch strings.ToLower(path.Ext(p)) {
	case ".yaml", ".yml":
		return SourceFormatYAML
	case ".json":
		return SourceFormatJSON
	default:
		return SourceFormatUnknown
	}
}

// detectFormatFromURL detects the source format from a URL and the
// Content-Type header of its response.
func detectFormatFromURL(rawURL, contentType string) SourceFormat {
	if f := detectFormatFromPath(rawURL); f != SourceFormatUnknown {
		return f
	}
	if contentType != "" {
		if mediaType, _, err := mime.ParseMediaType(contentType); err == nil {
			switch {
			case strings.Contains(mediaType, "json"):
				return SourceFormatJSON
			case strings.Contains(mediaType, "yaml"):
				return SourceFormatYAML
			}
		}
	}
	return SourceFormatUnknown
}

// detectFormatFromContent detects the format from the content bytes.
// JSON documents start with an object or array opener; anything else is
// treated as YAML, which is a superset of JSON for our decoding purposes.
func detectFormatFromContent(data []byte) SourceFormat {
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if len(trimmed) == 0 {
		return SourceFormatUnknown
	}
	if trimmed[0] == '{' || trimmed[0] == '[' {
		return SourceFormatJSON
	}
	return SourceFormatYAML
}
