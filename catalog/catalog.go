package catalog

import (
	"io"
	"net/http"
	"os"
	"time"

	"go.yaml.in/yaml/v4"

	"github.com/erraggy/oascatalog"
	"github.com/erraggy/oascatalog/oaserrors"
)

// Extractor handles OpenAPI operation catalog extraction.
type Extractor struct {
	// BaseURL overrides the base endpoint prefix concatenated with every
	// path template. When empty, documents fetched over HTTP use the
	// directory of the source URL and all other sources use no prefix.
	BaseURL string
	// Denylist is the set of schema keys stripped from every resolved
	// schema. Nil means DefaultDenylist; an empty non-nil slice disables
	// stripping.
	Denylist []string
	// UserAgent is the User-Agent string used when fetching URLs.
	// Defaults to "oascatalog" if not set.
	UserAgent string
	// HTTPClient is the HTTP client used for fetching URLs.
	// If nil, a default client with a 30-second timeout is created.
	// When set, InsecureSkipVerify is ignored (configure TLS on your
	// client's transport).
	HTTPClient *http.Client
	// InsecureSkipVerify disables TLS certificate verification when
	// fetching. Use with caution - only enable for testing or internal
	// servers with self-signed certs.
	InsecureSkipVerify bool
	// RetryAttempts is the number of attempts when fetching URLs.
	// Default: 5
	RetryAttempts int
	// MaxRefDepth is the maximum depth for resolving nested $ref pointers.
	// Default: 100
	MaxRefDepth int
	// Logger is the structured logger for debug output.
	// If nil, logging is disabled (default).
	Logger Logger
}

// New creates a new Extractor instance with default settings
func New() *Extractor {
	return &Extractor{
		UserAgent: oascatalog.UserAgent(),
	}
}

// log returns the configured logger, or a no-op logger if none is set.
func (e *Extractor) log() Logger {
	if e.Logger != nil {
		return e.Logger
	}
	return NopLogger{}
}

// Catalog is the result of one extraction: the normalized operation
// catalog plus source metadata. Callers should treat it as read-only.
type Catalog struct {
	// SourcePath is the input source the document was read from.
	// Note: if the source was not a file path or URL, this is set to the
	// name of the method and ends in '.yaml' or '.json' based on the
	// detected format.
	SourcePath string `json:"sourcePath,omitempty"`
	// SourceFormat is the format of the source (JSON or YAML).
	SourceFormat SourceFormat `json:"sourceFormat"`
	// Version is the declared version string (e.g., "2.0", "3.0.3").
	Version string `json:"version"`
	// OASVersion is the detected specification series.
	OASVersion OASVersion `json:"-"`
	// BaseURL is the endpoint prefix every Method URL starts with.
	BaseURL string `json:"baseURL,omitempty"`
	// Methods are the catalog entries, in document declaration order
	// (path order, then verb order as declared).
	Methods []Method `json:"methods"`
	// Warnings contains non-fatal issues observed during extraction.
	Warnings []string `json:"warnings,omitempty"`
	// LoadTime is the time taken to load the source data (file, URL).
	LoadTime time.Duration `json:"-"`
	// SourceSize is the size of the source data in bytes.
	SourceSize int64 `json:"sourceSize,omitempty"`
	// Stats contains counts gathered during extraction.
	Stats CatalogStats `json:"stats"`
}

// Extract extracts a catalog from a specification file or URL.
// For URLs (http:// or https://), the content is fetched with retries and
// the base endpoint prefix defaults to the URL's directory.
func (e *Extractor) Extract(specPath string) (*Catalog, error) {
	var data []byte
	var err error
	var format SourceFormat
	baseURL := e.BaseURL

	loadStart := time.Now()
	if isURL(specPath) {
		var contentType string
		data, contentType, err = e.fetchURL(specPath)
		if err != nil {
			return nil, err
		}
		format = detectFormatFromURL(specPath, contentType)
		if baseURL == "" {
			baseURL = baseEndpoint(specPath)
		}
	} else {
		data, err = os.ReadFile(specPath)
		if err != nil {
			return nil, &oaserrors.ParseError{Path: specPath, Message: "failed to read file", Cause: err}
		}
		format = detectFormatFromPath(specPath)
	}
	loadTime := time.Since(loadStart)

	cat, err := e.extract(data, baseURL)
	if err != nil {
		return nil, err
	}
	cat.SourcePath = specPath
	cat.LoadTime = loadTime
	cat.SourceSize = int64(len(data))
	if format != SourceFormatUnknown {
		cat.SourceFormat = format
	}
	return cat, nil
}

// ExtractReader extracts a catalog from an io.Reader.
// Note: since there is no actual source path, Catalog.SourcePath is set to
// ExtractReader.yaml or ExtractReader.json.
func (e *Extractor) ExtractReader(r io.Reader) (*Catalog, error) {
	loadStart := time.Now()
	data, err := io.ReadAll(r)
	loadTime := time.Since(loadStart)
	if err != nil {
		return nil, &oaserrors.ParseError{Message: "failed to read data", Cause: err}
	}
	cat, err := e.ExtractBytes(data)
	if err != nil {
		return nil, err
	}
	cat.LoadTime = loadTime
	cat.SourcePath = "ExtractReader." + formatExt(cat.SourceFormat)
	return cat, nil
}

// ExtractBytes extracts a catalog from a byte slice.
// Note: since there is no actual source path, Catalog.SourcePath is set to
// ExtractBytes.yaml or ExtractBytes.json.
func (e *Extractor) ExtractBytes(data []byte) (*Catalog, error) {
	cat, err := e.extract(data, e.BaseURL)
	if err != nil {
		return nil, err
	}
	cat.SourceSize = int64(len(data))
	cat.SourcePath = "ExtractBytes." + formatExt(cat.SourceFormat)
	return cat, nil
}

// ExtractDocument extracts a catalog from an already-decoded document.
// The document is treated as strictly read-only. Declaration order is not
// recoverable from a map, so paths and verbs are visited in ascending
// order.
func (e *Extractor) ExtractDocument(doc map[string]any) (*Catalog, error) {
	return e.run(doc, nil, SourceFormatUnknown, e.BaseURL)
}

// extract decodes data and runs the walk. The data is decoded twice: once
// to a map for random access during resolution, and once to a yaml.Node
// tree so paths and verbs can be visited in declaration order.
func (e *Extractor) extract(data []byte, baseURL string) (*Catalog, error) {
	var doc map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, &oaserrors.ParseError{Message: "failed to decode YAML/JSON", Cause: err}
	}

	var docNode *yaml.Node
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err == nil {
		docNode = &root
	}

	return e.run(doc, docNode, detectFormatFromContent(data), baseURL)
}

func (e *Extractor) run(doc map[string]any, docNode *yaml.Node, format SourceFormat, baseURL string) (*Catalog, error) {
	version, oasVersion, err := detectVersion(doc)
	if err != nil {
		return nil, err
	}

	cat := &Catalog{
		SourceFormat: format,
		Version:      version,
		OASVersion:   oasVersion,
		BaseURL:      baseURL,
	}

	denylist := e.Denylist
	if denylist == nil {
		denylist = DefaultDenylist
	}

	x := &extraction{
		resolver: newRefResolver(doc, denylist, e.MaxRefDepth, e.log()),
		logger:   e.log(),
		cat:      cat,
	}
	if err := x.extractDocument(doc, docNode, baseURL); err != nil {
		return nil, err
	}
	return cat, nil
}

func formatExt(f SourceFormat) string {
	if f == SourceFormatJSON {
		return "json"
	}
	return "yaml"
}
