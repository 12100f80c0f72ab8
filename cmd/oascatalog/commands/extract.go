package commands

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/erraggy/oascatalog/catalog"
)

// extractFlags contains flags for the extract command
type extractFlags struct {
	baseURL  string
	format   string
	strip    string
	insecure bool
	quiet    bool
	verbose  bool
}

func setupExtractFlags() (*flag.FlagSet, *extractFlags) {
	fs := flag.NewFlagSet("extract", flag.ContinueOnError)
	flags := &extractFlags{}

	fs.StringVar(&flags.baseURL, "base-url", "", "override the endpoint prefix joined onto every path")
	fs.StringVar(&flags.format, "format", FormatText, "output format (text, json, yaml)")
	fs.StringVar(&flags.strip, "strip", "", "comma-separated schema keys to strip (default: xml)")
	fs.BoolVar(&flags.insecure, "insecure", false, "skip TLS certificate verification when fetching URLs")
	fs.BoolVar(&flags.quiet, "q", false, "quiet output: no header, no colors, tab-separated rows")
	fs.BoolVar(&flags.verbose, "verbose", false, "enable debug logging to stderr")

	fs.Usage = func() {
		output := fs.Output()
		_, _ = fmt.Fprintf(output, "Usage: oascatalog extract [flags] <file|url>\n\n")
		_, _ = fmt.Fprintf(output, "Extract a normalized operation catalog from an OpenAPI document.\n\n")
		_, _ = fmt.Fprintf(output, "Flags:\n")
		fs.PrintDefaults()
		_, _ = fmt.Fprintf(output, "\nExamples:\n")
		_, _ = fmt.Fprintf(output, "  oascatalog extract openapi.yaml\n")
		_, _ = fmt.Fprintf(output, "  oascatalog extract --base-url https://api.example.com openapi.yaml\n")
		_, _ = fmt.Fprintf(output, "  oascatalog extract --format json https://example.com/api/openapi.yaml\n")
		_, _ = fmt.Fprintf(output, "  oascatalog extract -q openapi.yaml | grep DELETE\n")
	}

	return fs, flags
}

// HandleExtract implements the extract command.
func HandleExtract(args []string) error {
	fs, flags := setupExtractFlags()

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("extract command requires exactly one file path or URL")
	}

	if err := ValidateOutputFormat(flags.format); err != nil {
		return err
	}

	specPath := fs.Arg(0)

	e := catalog.New()
	e.BaseURL = flags.baseURL
	e.InsecureSkipVerify = flags.insecure
	if flags.strip != "" {
		e.Denylist = splitStripList(flags.strip)
	}
	if flags.verbose {
		e.Logger = catalog.NewSlogAdapter(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	cat, err := e.Extract(specPath)
	if err != nil {
		return fmt.Errorf("extracting catalog: %w", err)
	}

	if flags.format != FormatText {
		return OutputStructured(os.Stdout, cat, flags.format)
	}

	if !flags.quiet {
		OutputSpecHeader(specPath, cat.Version)
		Writef(os.Stderr, "Source Size: %s\n", FormatBytes(cat.SourceSize))
		Writef(os.Stderr, "Paths: %d\n", cat.Stats.PathCount)
		Writef(os.Stderr, "Operations: %d\n", cat.Stats.OperationCount)
		if cat.Stats.DeprecatedSkipped > 0 {
			Writef(os.Stderr, "Deprecated (skipped): %d\n", cat.Stats.DeprecatedSkipped)
		}
		Writef(os.Stderr, "Load Time: %v\n\n", cat.LoadTime)

		if len(cat.Warnings) > 0 {
			Writef(os.Stderr, "Warnings (%d):\n", len(cat.Warnings))
			for _, warning := range cat.Warnings {
				Writef(os.Stderr, "  - %s\n", warning)
			}
			Writef(os.Stderr, "\n")
		}
	}

	RenderMethods(os.Stdout, cat.Methods, flags.quiet)
	return nil
}

// splitStripList parses the comma-separated -strip value. An explicit "none"
// disables stripping entirely.
func splitStripList(s string) []string {
	if strings.EqualFold(s, "none") {
		return []string{}
	}
	parts := strings.Split(s, ",")
	keys := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			keys = append(keys, p)
		}
	}
	return keys
}
