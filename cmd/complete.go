package cmd

import (
	"flag"

	"github.com/etnz/assetexpl"
	"github.com/etnz/assetexpl/docs"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Completion describes the command line for shell completion: global flags,
// subcommands with their flags, and index keys, languages and topics as
// arguments. c may be nil, then index keys are not predicted.
func Completion(c *assetexpl.Catalog) *complete.Command {
	var keys predict.Set
	if c != nil {
		keys, _ = c.IndexKeys(c.DefaultSelection().Language)
	}
	var langs predict.Set
	for _, l := range assetexpl.Languages() {
		langs = append(langs, string(l))
	}
	var breakdowns predict.Set
	for _, b := range assetexpl.Breakdowns() {
		breakdowns = append(breakdowns, string(b))
	}
	topics, _ := docs.All()

	// flag values predicted beyond "something"
	values := map[string]complete.Predictor{
		"lang":    langs,
		"catalog": predict.Dirs("*"),
		"b":       breakdowns,
		"kind":    predict.Set{string(assetexpl.Proportional), string(assetexpl.Ranked)},
		"format":  predict.Set{"md", "json", "svg"},
		"tab":     predict.Set{"all", "description", "statistics", "strategy"},
		"o":       predict.Files("*"),
		"c":       predict.Set{"EUR", "USD", "GBP", "CHF", "JPY"},
	}
	args := map[string]complete.Predictor{
		"show":     keys,
		"chart":    keys,
		"exposure": keys,
		"topic":    predict.Set(topics),
	}

	root := &complete.Command{
		Sub:   map[string]*complete.Command{"help": {Args: commandNames()}},
		Flags: flagPredictors(globalFlags(), values),
	}
	for _, cmd := range Commands {
		f := flag.NewFlagSet(cmd.Name(), flag.ContinueOnError)
		cmd.SetFlags(f)
		root.Sub[cmd.Name()] = &complete.Command{
			Flags: flagPredictors(f, values),
			Args:  args[cmd.Name()],
		}
	}
	return root
}

// globalFlags returns the flags of the command line that belong to this package.
func globalFlags() *flag.FlagSet {
	f := flag.NewFlagSet("assetexpl", flag.ContinueOnError)
	for _, name := range []string{"lang", "catalog", "plain", "v"} {
		if fl := flag.CommandLine.Lookup(name); fl != nil {
			f.Var(fl.Value, fl.Name, fl.Usage)
		}
	}
	return f
}

// flagPredictors predicts the flags of f, boolean flags take no value.
func flagPredictors(f *flag.FlagSet, values map[string]complete.Predictor) map[string]complete.Predictor {
	flags := make(map[string]complete.Predictor)
	f.VisitAll(func(fl *flag.Flag) {
		switch {
		case isBool(fl):
			flags[fl.Name] = predict.Nothing
		case values[fl.Name] != nil:
			flags[fl.Name] = values[fl.Name]
		default:
			flags[fl.Name] = predict.Something
		}
	})
	return flags
}

func isBool(fl *flag.Flag) bool {
	b, ok := fl.Value.(interface{ IsBoolFlag() bool })
	return ok && b.IsBoolFlag()
}

func commandNames() predict.Set {
	var names predict.Set
	for _, cmd := range Commands {
		names = append(names, cmd.Name())
	}
	return names
}
