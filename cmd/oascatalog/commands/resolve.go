package commands

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"go.yaml.in/yaml/v4"

	"github.com/erraggy/oascatalog/catalog"
)

// resolveFlags contains flags for the resolve command
type resolveFlags struct {
	format string
	strip  string
}

func setupResolveFlags() (*flag.FlagSet, *resolveFlags) {
	fs := flag.NewFlagSet("resolve", flag.ContinueOnError)
	flags := &resolveFlags{}

	fs.StringVar(&flags.format, "format", FormatJSON, "output format (json, yaml)")
	fs.StringVar(&flags.strip, "strip", "", "comma-separated schema keys to strip (default: xml)")

	fs.Usage = func() {
		output := fs.Output()
		_, _ = fmt.Fprintf(output, "Usage: oascatalog resolve [flags] <file> <ref>\n\n")
		_, _ = fmt.Fprintf(output, "Resolve a local $ref pointer against a document and print the schema tree.\n\n")
		_, _ = fmt.Fprintf(output, "Flags:\n")
		fs.PrintDefaults()
		_, _ = fmt.Fprintf(output, "\nExamples:\n")
		_, _ = fmt.Fprintf(output, "  oascatalog resolve openapi.yaml '#/components/schemas/Pet'\n")
		_, _ = fmt.Fprintf(output, "  oascatalog resolve --format yaml swagger.yaml '#/definitions/Order'\n")
		_, _ = fmt.Fprintf(output, "  oascatalog resolve openapi.yaml Pet\n")
	}

	return fs, flags
}

// HandleResolve implements the resolve command.
func HandleResolve(args []string) error {
	fs, flags := setupResolveFlags()

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil
		}
		return err
	}

	if fs.NArg() != 2 {
		fs.Usage()
		return fmt.Errorf("resolve command requires a file path and a pointer")
	}

	if flags.format == FormatText {
		return fmt.Errorf("resolve output is structured; use --format json or yaml")
	}
	if err := ValidateOutputFormat(flags.format); err != nil {
		return err
	}

	specPath := fs.Arg(0)
	ref := trimRefArg(fs.Arg(1))

	data, err := os.ReadFile(specPath)
	if err != nil {
		return fmt.Errorf("reading file: %w", err)
	}

	var doc map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("decoding document: %w", err)
	}

	var denylist []string
	if flags.strip != "" {
		denylist = splitStripList(flags.strip)
	}

	node, err := catalog.ResolveRef(doc, ref, denylist)
	if err != nil {
		return fmt.Errorf("resolving %s: %w", ref, err)
	}

	return OutputStructured(os.Stdout, node, flags.format)
}

// trimRefArg allows passing the pointer without the leading '#' on shells
// where quoting it is awkward.
func trimRefArg(ref string) string {
	if strings.HasPrefix(ref, "/") {
		return "#" + ref
	}
	return ref
}
