// Package cmd implements the CLI application to explore the index catalog.
package cmd

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/assetexpl"
	"github.com/google/subcommands"
)

// Commands lists the subcommands in the order they are registered.
var Commands = []subcommands.Command{
	&listCmd{},
	&showCmd{},
	&chartCmd{},
	&exposureCmd{},
	&validateCmd{},
	&queryCmd{},
	&topicCmd{},
	&tutorCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var langFlag = flag.String("lang", "", "Content language, one of it, en. Defaults to $"+EnvLang+" or to the first language.")
var catalogDir = flag.String("catalog", "", "Directory of <language>.yaml content files to use instead of the bundled catalog. Defaults to $"+EnvCatalog+".")
var plain = flag.Bool("plain", false, "Print markdown source instead of rendering it for the terminal.")

// Verbose enables logging to stderr. Defaults to $ASSETEXPL_VERBOSE.
var Verbose = flag.Bool("v", false, "Verbose logging.")

// out is where commands write their results.
var out io.Writer = os.Stdout

// Configure applies environment fallbacks to unset global flags and sets up
// logging. It is called once, after flags are parsed.
func Configure() {
	if *langFlag == "" {
		*langFlag = os.Getenv(EnvLang)
	}
	if *catalogDir == "" {
		*catalogDir = os.Getenv(EnvCatalog)
	}
	if !*Verbose {
		*Verbose, _ = strconv.ParseBool(os.Getenv(EnvVerbose))
	}
	log.SetFlags(0)
	log.SetPrefix("assetexpl: ")
	if !*Verbose {
		log.SetOutput(io.Discard)
	}
}

// BundledCatalog reports whether commands read the catalog embedded in the
// binary, that is -catalog and $ASSETEXPL_CATALOG are unset.
func BundledCatalog() bool { return *catalogDir == "" }

// OpenCatalog returns the catalog selected by the -catalog flag, the bundled
// one by default.
func OpenCatalog() (*assetexpl.Catalog, error) {
	if BundledCatalog() {
		return assetexpl.Default()
	}
	log.Printf("loading catalog from %q", *catalogDir)
	c, err := assetexpl.LoadCatalog(os.DirFS(*catalogDir))
	if err != nil {
		return nil, fmt.Errorf("catalog %q: %w", *catalogDir, err)
	}
	return c, nil
}

// Language returns the language selected by the -lang flag, or the default
// language of c.
func Language(c *assetexpl.Catalog) (assetexpl.Language, error) {
	if *langFlag == "" {
		return c.DefaultSelection().Language, nil
	}
	return assetexpl.ParseLanguage(*langFlag)
}

// selection returns the selection for the optional index argument of a
// command. Without argument, the first index is selected.
func selection(c *assetexpl.Catalog, args []string) (assetexpl.Selection, error) {
	lang, err := Language(c)
	if err != nil {
		return assetexpl.Selection{}, err
	}
	sel := assetexpl.Selection{Language: lang, Index: c.DefaultSelection().Index}
	switch len(args) {
	case 0:
	case 1:
		sel.Index = args[0]
	default:
		return assetexpl.Selection{}, fmt.Errorf("expected at most one index key, got %d", len(args))
	}
	return sel, nil
}

// printMarkdown renders md for the terminal, or prints it as is with -plain.
func printMarkdown(md string) {
	fmt.Fprint(out, renderMarkdown(md))
}

// renderMarkdown renders md for the terminal. It returns md unchanged with
// -plain or if rendering fails.
func renderMarkdown(md string) string {
	if *plain {
		return md
	}
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(100))
	if err != nil {
		log.Printf("could not create markdown renderer: %v", err)
		return md
	}
	s, err := r.Render(md)
	if err != nil {
		log.Printf("could not render markdown: %v", err)
		return md
	}
	return s
}
