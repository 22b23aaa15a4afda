package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/assetexpl/agent"
	"github.com/google/subcommands"
	"google.golang.org/genai"
)

// tutorCmd is the subcommand for the AI tutor.
type tutorCmd struct {
	search bool
}

func (*tutorCmd) Name() string     { return "tutor" }
func (*tutorCmd) Synopsis() string { return "ask questions about the indices to an AI tutor" }
func (*tutorCmd) Usage() string {
	return `assetexpl tutor [-search] [<question>]

  Starts an interactive session with an AI tutor that reads the catalog.
  It needs a Gemini API key in GOOGLE_API_KEY or GEMINI_API_KEY.
`
}

func (c *tutorCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.search, "search", true, "Let the tutor ask an analyst who searches the web for recent information.")
}

func (c *tutorCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var prompts []string
	if f.NArg() > 0 {
		prompts = append(prompts, strings.Join(f.Args(), " "))
	}

	cat, err := OpenCatalog()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading catalog: %v\n", err)
		return subcommands.ExitFailure
	}
	lang, err := Language(cat)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	var experts []*agent.Expert
	if c.search {
		experts = append(experts, agent.NewAnalyst())
	}
	tutor, err := agent.NewTutor(cat, lang, experts...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error initializing Gemini's client:", err)
		return subcommands.ExitFailure
	}

	a := agent.New(out, os.Stdin, tutor, experts...)
	a.Render = renderMarkdown

	if err := a.Run(ctx, client, prompts...); err != nil {
		fmt.Fprintln(os.Stderr, "Tutor failed:", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
