// Command dogmalex is the CLI runner over the lexer/analyzer core: it loads
// a lexicon and/or grammar YAML file, builds the corresponding automata, and
// either scans an input or prints FIRST/FOLLOW tables (spec §4.10).
package main

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/projectdiscovery/goflags"
	"github.com/projectdiscovery/gologger"
	"github.com/projectdiscovery/gologger/levels"
	errorutil "github.com/projectdiscovery/utils/errors"

	"github.com/dogmalang/lexgen/cmd/auxiliar"
	"github.com/dogmalang/lexgen/internal/analyzer"
	"github.com/dogmalang/lexgen/internal/config"
	"github.com/dogmalang/lexgen/internal/dfa"
	"github.com/dogmalang/lexgen/internal/grammar"
	"github.com/dogmalang/lexgen/internal/nfa"
	"github.com/dogmalang/lexgen/internal/scanner"
)

// options holds the parsed CLI flags (spec §4.10 flag list).
type options struct {
	LexiconPath string
	GrammarPath string
	InputPath   string
	Analyze     bool
	Tokens      bool
	Debug       bool
	Verbose     bool
	Silent      bool
}

func parseFlags() *options {
	opts := &options{}
	flagSet := goflags.NewFlagSet()
	flagSet.SetDescription(`Regex-driven lexer generator and LL(1) FIRST/FOLLOW analyzer.`)

	flagSet.CreateGroup("input", "Input",
		flagSet.StringVarP(&opts.LexiconPath, "lexicon", "l", "", "lexicon YAML file (token definitions + alphabet)"),
		flagSet.StringVarP(&opts.GrammarPath, "grammar", "g", "", "grammar YAML file (productions + start symbol)"),
		flagSet.StringVarP(&opts.InputPath, "input", "i", "", "input file to scan, or \"-\" for stdin"),
	)

	flagSet.CreateGroup("output", "Output",
		flagSet.BoolVarP(&opts.Analyze, "analyze", "a", false, "print FIRST/FOLLOW tables for the loaded grammar"),
		flagSet.BoolVarP(&opts.Tokens, "tokens", "t", false, "print the token stream produced by scanning the input"),
		flagSet.BoolVarP(&opts.Debug, "debug", "d", false, "print the assembled NFA and minimized DFA structure"),
		flagSet.BoolVarP(&opts.Verbose, "verbose", "v", false, "display verbose output"),
		flagSet.BoolVar(&opts.Silent, "silent", false, "display results only"),
	)

	if err := flagSet.Parse(); err != nil {
		gologger.Fatal().Msgf("could not read flags: %s\n", err)
	}

	if opts.Silent {
		gologger.DefaultLogger.SetMaxLevel(levels.LevelSilent)
	} else if opts.Verbose {
		gologger.DefaultLogger.SetMaxLevel(levels.LevelVerbose)
	}

	return opts
}

func main() {
	opts := parseFlags()

	if opts.LexiconPath == "" && opts.GrammarPath == "" {
		gologger.Fatal().Msgf("%s", errorutil.NewWithTag("dogmalex", "at least one of -lexicon or -grammar is required"))
	}

	if opts.LexiconPath != "" {
		if err := runLexicon(opts); err != nil {
			gologger.Fatal().Msgf("%s", errorutil.NewWithTag("dogmalex", err.Error()))
		}
	}

	if opts.GrammarPath != "" && opts.Analyze {
		if err := runAnalyze(opts); err != nil {
			gologger.Fatal().Msgf("%s", errorutil.NewWithTag("dogmalex", err.Error()))
		}
	}
}

// runLexicon assembles the combined NFA from the lexicon, subset-constructs
// and minimizes it into a DFA, then scans the input if requested.
func runLexicon(opts *options) error {
	lex, err := config.LoadLexicon(opts.LexiconPath)
	if err != nil {
		return fmt.Errorf("loading lexicon: %w", err)
	}
	gologger.Verbose().Msgf("loaded %d token definitions from %s", len(lex.Tokens), opts.LexiconPath)

	combined, err := nfa.BuildCombined(lex.Tokens)
	if err != nil {
		return fmt.Errorf("building combined NFA: %w", err)
	}

	subset := dfa.SubsetConstruct(combined, lex.Alphabet)
	minimized := dfa.Minimize(subset, lex.Alphabet)
	gologger.Verbose().Msgf("DFA minimized to %d states", len(minimized.States))

	if opts.Debug {
		fmt.Println("-- combined NFA --")
		auxiliar.PrintNFA(combined)
		fmt.Println("-- minimized DFA --")
		auxiliar.PrintDFA(minimized)
	}

	if !opts.Tokens && opts.InputPath == "" {
		return nil
	}

	input, err := readInput(opts.InputPath)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	toks, err := scanner.New(minimized).Scan(input)
	if err != nil {
		return fmt.Errorf("scanning input: %w", err)
	}

	if opts.Tokens {
		auxiliar.PrintTokens(toks)
	}
	return nil
}

// runAnalyze computes and prints FIRST/FOLLOW tables for every non-terminal
// in the loaded grammar, in deterministic (sorted) name order.
func runAnalyze(opts *options) error {
	g, err := config.LoadGrammar(opts.GrammarPath)
	if err != nil {
		return fmt.Errorf("loading grammar: %w", err)
	}
	gologger.Verbose().Msgf("loaded grammar with %d productions from %s", len(g.Productions), opts.GrammarPath)

	a := analyzer.New(g)

	names := make([]string, 0, len(g.NonTerminals))
	for name := range g.NonTerminals {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		nt := grammar.NewNonTerminal(name)
		fmt.Printf("FIRST(%s)  = %s\n", name, formatSet(a.First(nt)))
		fmt.Printf("FOLLOW(%s) = %s\n", name, formatSet(a.Follow(nt)))
	}
	return nil
}

func formatSet(items []string) string {
	sort.Strings(items)
	out := "{ "
	for i, item := range items {
		if i > 0 {
			out += ", "
		}
		out += item
	}
	return out + " }"
}

func readInput(path string) (string, error) {
	if path == "" {
		return "", errorutil.NewWithTag("dogmalex", "-input is required to scan a lexicon")
	}
	if path == "-" {
		bin, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", err
		}
		return string(bin), nil
	}
	bin, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(bin), nil
}
