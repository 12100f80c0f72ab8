package catalog

import (
	"fmt"
	"io"
	"net/http"

	"github.com/erraggy/oascatalog"

	"github.com/erraggy/oascatalog/internal/options"
)

// Option is a function that configures an extract operation
type Option func(*extractConfig) error

// extractConfig holds configuration for an extract operation
type extractConfig struct {
	// Input source (exactly one must be set)
	filePath *string
	reader   io.Reader
	bytes    []byte
	document map[string]any

	// Configuration options
	baseURL            *string
	denylist           []string
	userAgent          string
	httpClient         *http.Client
	insecureSkipVerify bool
	logger             Logger

	// Resource limits (0 means use default)
	maxRefDepth   int
	retryAttempts int

	// Source identification
	sourceName *string // Override SourcePath in the result
}

// ExtractWithOptions extracts an operation catalog using functional options.
// This provides a flexible, extensible API that combines input source
// selection and configuration in a single function call.
//
// Example:
//
//	cat, err := catalog.ExtractWithOptions(
//	    catalog.WithFilePath("openapi.yaml"),
//	    catalog.WithBaseURL("https://api.example.com"),
//	)
func ExtractWithOptions(opts ...Option) (*Catalog, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, fmt.Errorf("catalog: invalid options: %w", err)
	}

	e := &Extractor{
		Denylist:           cfg.denylist,
		UserAgent:          cfg.userAgent,
		HTTPClient:         cfg.httpClient,
		InsecureSkipVerify: cfg.insecureSkipVerify,
		RetryAttempts:      cfg.retryAttempts,
		MaxRefDepth:        cfg.maxRefDepth,
		Logger:             cfg.logger,
	}
	if cfg.baseURL != nil {
		e.BaseURL = *cfg.baseURL
	}

	// Route to the appropriate extraction method based on input source
	var cat *Catalog
	var extractErr error
	switch {
	case cfg.filePath != nil:
		cat, extractErr = e.Extract(*cfg.filePath)
	case cfg.reader != nil:
		cat, extractErr = e.ExtractReader(cfg.reader)
	case cfg.bytes != nil:
		cat, extractErr = e.ExtractBytes(cfg.bytes)
	case cfg.document != nil:
		cat, extractErr = e.ExtractDocument(cfg.document)
	default:
		// Should never reach here due to validation in applyOptions
		return nil, fmt.Errorf("catalog: no input source specified")
	}

	if extractErr != nil {
		return nil, extractErr
	}

	// Apply source name override if specified
	if cat != nil && cfg.sourceName != nil {
		cat.SourcePath = *cfg.sourceName
	}

	return cat, nil
}

// applyOptions applies option functions and validates configuration
func applyOptions(opts ...Option) (*extractConfig, error) {
	cfg := &extractConfig{
		userAgent: oascatalog.UserAgent(),
	}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	// Validate exactly one input source is specified
	if err := options.ValidateSingleInputSource(
		"catalog: must specify an input source (use WithFilePath, WithReader, WithBytes, or WithDocument)",
		"catalog: must specify exactly one input source",
		cfg.filePath != nil, cfg.reader != nil, cfg.bytes != nil, cfg.document != nil,
	); err != nil {
		return nil, err
	}

	return cfg, nil
}

// WithFilePath specifies a file path or URL as the input source
func WithFilePath(path string) Option {
	return func(cfg *extractConfig) error {
		cfg.filePath = &path
		return nil
	}
}

// WithReader specifies an io.Reader as the input source
func WithReader(r io.Reader) Option {
	return func(cfg *extractConfig) error {
		if r == nil {
			return fmt.Errorf("catalog: reader cannot be nil")
		}
		cfg.reader = r
		return nil
	}
}

// WithBytes specifies a byte slice as the input source
func WithBytes(data []byte) Option {
	return func(cfg *extractConfig) error {
		if data == nil {
			return fmt.Errorf("catalog: bytes cannot be nil")
		}
		cfg.bytes = data
		return nil
	}
}

// WithDocument specifies an already-decoded document as the input source.
// The document is treated as read-only; nothing in it is mutated.
func WithDocument(doc map[string]any) Option {
	return func(cfg *extractConfig) error {
		if doc == nil {
			return fmt.Errorf("catalog: document cannot be nil")
		}
		cfg.document = doc
		return nil
	}
}

// WithBaseURL overrides the endpoint prefix concatenated with every path
// template. For URL sources the default is the directory of the source URL;
// for all other sources the default is no prefix.
func WithBaseURL(baseURL string) Option {
	return func(cfg *extractConfig) error {
		cfg.baseURL = &baseURL
		return nil
	}
}

// WithDenylist sets the schema keys stripped from every resolved schema.
// Default: ["xml"]. Pass an empty slice to disable stripping entirely.
func WithDenylist(keys []string) Option {
	return func(cfg *extractConfig) error {
		if keys == nil {
			return fmt.Errorf("catalog: denylist cannot be nil (use an empty slice to disable stripping)")
		}
		cfg.denylist = keys
		return nil
	}
}

// WithUserAgent sets the User-Agent string for HTTP requests
// Default: "oascatalog/vX.Y.Z"
func WithUserAgent(ua string) Option {
	return func(cfg *extractConfig) error {
		cfg.userAgent = ua
		return nil
	}
}

// WithHTTPClient sets a custom HTTP client for fetching URLs.
// When set, the client is used as-is for all HTTP requests.
// The InsecureSkipVerify option is ignored when a custom client is provided
// (configure TLS settings on your client's transport instead).
//
// If the client is nil, this option has no effect (default client is used).
//
// Example with custom timeout:
//
//	client := &http.Client{Timeout: 60 * time.Second}
//	cat, err := catalog.ExtractWithOptions(
//	    catalog.WithFilePath("https://example.com/api.yaml"),
//	    catalog.WithHTTPClient(client),
//	)
func WithHTTPClient(client *http.Client) Option {
	return func(cfg *extractConfig) error {
		cfg.httpClient = client
		return nil
	}
}

// WithInsecureSkipVerify disables TLS certificate verification when fetching
// Use with caution - only enable for testing or internal servers with self-signed certs
func WithInsecureSkipVerify(enabled bool) Option {
	return func(cfg *extractConfig) error {
		cfg.insecureSkipVerify = enabled
		return nil
	}
}

// WithLogger sets a structured logger for debug output during extraction.
// By default, no logging is performed (nil logger).
//
// The logger interface is compatible with log/slog, zap, and zerolog.
// Use NewSlogAdapter to wrap a *slog.Logger.
//
// Example:
//
//	logger := catalog.NewSlogAdapter(slog.Default())
//	cat, err := catalog.ExtractWithOptions(
//	    catalog.WithFilePath("api.yaml"),
//	    catalog.WithLogger(logger),
//	)
func WithLogger(l Logger) Option {
	return func(cfg *extractConfig) error {
		cfg.logger = l
		return nil
	}
}

// WithMaxRefDepth sets the maximum depth for resolving nested $ref pointers.
// This prevents stack overflow from deeply nested (but non-circular) chains.
// A value of 0 means use the default (100).
// Returns an error if depth is negative.
func WithMaxRefDepth(depth int) Option {
	return func(cfg *extractConfig) error {
		if depth < 0 {
			return fmt.Errorf("catalog: maxRefDepth cannot be negative")
		}
		cfg.maxRefDepth = depth
		return nil
	}
}

// WithRetryAttempts sets how many times a URL fetch is attempted before
// giving up. A value of 0 means use the default (5).
// Returns an error if attempts is negative.
func WithRetryAttempts(attempts int) Option {
	return func(cfg *extractConfig) error {
		if attempts < 0 {
			return fmt.Errorf("catalog: retryAttempts cannot be negative")
		}
		cfg.retryAttempts = attempts
		return nil
	}
}

// WithSourceName specifies a meaningful name for the source document.
// This is particularly useful when extracting from bytes or reader, where
// the default names ("ExtractBytes.yaml", "ExtractReader.yaml") are not
// descriptive.
func WithSourceName(name string) Option {
	return func(cfg *extractConfig) error {
		if name == "" {
			return fmt.Errorf("catalog: source name cannot be empty")
		}
		cfg.sourceName = &name
		return nil
	}
}
