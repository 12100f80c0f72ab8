package commands

import (
	"io"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/erraggy/oascatalog/catalog"
)

// ANSI escape sequences for verb coloring.
const (
	ansiReset   = "\033[0m"
	ansiRed     = "\033[31m"
	ansiGreen   = "\033[32m"
	ansiYellow  = "\033[33m"
	ansiBlue    = "\033[34m"
	ansiMagenta = "\033[35m"
	ansiCyan    = "\033[36m"
)

// verbColors maps HTTP verbs to their display color, mirroring common API
// console conventions (GET reads, DELETE destroys).
var verbColors = map[catalog.Operation]string{
	catalog.OperationGet:     ansiGreen,
	catalog.OperationPost:    ansiYellow,
	catalog.OperationPut:     ansiBlue,
	catalog.OperationPatch:   ansiCyan,
	catalog.OperationDelete:  ansiRed,
	catalog.OperationOptions: ansiMagenta,
	catalog.OperationHead:    ansiMagenta,
	catalog.OperationTrace:   ansiMagenta,
}

// ColorVerb wraps a verb in its ANSI color. Quiet mode returns it uncolored
// so output stays pipeable.
func ColorVerb(op catalog.Operation, quiet bool) string {
	if quiet {
		return string(op)
	}
	color, ok := verbColors[op]
	if !ok {
		return string(op)
	}
	return color + string(op) + ansiReset
}

// NoLower keeps inner capitals intact so camelCase template variables
// render as PetId rather than Petid.
var titleCaser = cases.Title(language.English, cases.NoLower)

// OperationTitle returns a human-readable title for a catalog entry: the
// declared summary when present, otherwise one derived from the verb and the
// path segments (template variables lose their braces).
func OperationTitle(m catalog.Method) string {
	if m.Summary != "" {
		return m.Summary
	}

	words := []string{titleCaser.String(strings.ToLower(string(m.Operation)))}
	for _, seg := range strings.Split(m.Path, "/") {
		seg = strings.Trim(seg, "{}")
		if seg == "" {
			continue
		}
		words = append(words, titleCaser.String(seg))
	}
	return strings.Join(words, " ")
}

// RenderMethods writes one line per catalog entry: colored verb, path, and
// title. In quiet mode, lines are uncolored and tab-separated for piping.
func RenderMethods(w io.Writer, methods []catalog.Method, quiet bool) {
	verbWidth := 0
	for _, m := range methods {
		if len(m.Operation) > verbWidth {
			verbWidth = len(m.Operation)
		}
	}
	pathWidth := 0
	for _, m := range methods {
		if len(m.Path) > pathWidth {
			pathWidth = len(m.Path)
		}
	}

	for _, m := range methods {
		if quiet {
			Writef(w, "%s\t%s\t%s\n", m.Operation, m.Path, OperationTitle(m))
			continue
		}
		// The color codes are invisible but count toward width, so pad the
		// verb before coloring.
		padded := string(m.Operation) + strings.Repeat(" ", verbWidth-len(m.Operation))
		colored := strings.Replace(padded, string(m.Operation), ColorVerb(m.Operation, false), 1)
		Writef(w, "%s  %-*s  %s\n", colored, pathWidth, m.Path, OperationTitle(m))
	}
}
