package main

import (
	"fmt"
	"os"

	"github.com/erraggy/oascatalog"
	"github.com/erraggy/oascatalog/cmd/oascatalog/commands"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "version", "-v", "--version":
		fmt.Printf("oascatalog v%s\n", oascatalog.Version())
	case "help", "-h", "--help":
		printUsage()
	case "extract":
		if err := commands.HandleExtract(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "resolve":
		if err := commands.HandleResolve(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "mcp":
		if err := commands.HandleMCP(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`oascatalog - OpenAPI Operation Catalog Extractor

Usage:
  oascatalog <command> [options]

Commands:
  extract     Extract a normalized operation catalog from an OpenAPI file or URL
  resolve     Resolve a local $ref pointer and print the schema tree
  mcp         Run the oascatalog MCP server over stdio
  version     Show version information
  help        Show this help message

Examples:
  oascatalog extract openapi.yaml
  oascatalog extract --format json https://example.com/api/openapi.yaml
  oascatalog extract -q openapi.yaml | grep DELETE
  oascatalog resolve openapi.yaml '#/components/schemas/Pet'
  oascatalog mcp

Run 'oascatalog <command> --help' for more information on a command.`)
}
