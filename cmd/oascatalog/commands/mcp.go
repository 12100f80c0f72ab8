package commands

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/erraggy/oascatalog/internal/mcpserver"
)

func setupMCPFlags() *flag.FlagSet {
	fs := flag.NewFlagSet("mcp", flag.ContinueOnError)

	fs.Usage = func() {
		output := fs.Output()
		_, _ = fmt.Fprintf(output, "Usage: oascatalog mcp\n\n")
		_, _ = fmt.Fprintf(output, "Run the oascatalog MCP server over stdio.\n\n")
		_, _ = fmt.Fprintf(output, "The server exposes extract, operations, and resolve_ref tools to MCP\n")
		_, _ = fmt.Fprintf(output, "clients. Defaults are configurable via OASCATALOG_* environment\n")
		_, _ = fmt.Fprintf(output, "variables; see the server instructions for the full list.\n")
	}

	return fs
}

// HandleMCP implements the mcp command. It blocks until the client
// disconnects or the process receives an interrupt.
func HandleMCP(args []string) error {
	fs := setupMCPFlags()

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil
		}
		return err
	}

	if fs.NArg() != 0 {
		fs.Usage()
		return fmt.Errorf("mcp command takes no arguments")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return mcpserver.Run(ctx)
}
