// Package config loads the lexicon and grammar YAML files into the CORE's
// plain data structures (spec §4.9). It performs no semantic validation
// beyond YAML syntax — undeclared-symbol and similar checks are the
// analyzer/grammar package's job and surface as lexerr.GrammarError.
package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/dogmalang/lexgen/internal/grammar"
	"github.com/dogmalang/lexgen/internal/nfa"
)

// tokenEntry mirrors one "tokens:" list item in lexicon.yaml.
type tokenEntry struct {
	Name  string `yaml:"name"`
	Regex string `yaml:"regex"`
}

// lexiconFile mirrors the on-disk shape of lexicon.yaml.
type lexiconFile struct {
	Alphabet string       `yaml:"alphabet"`
	Tokens   []tokenEntry `yaml:"tokens"`
}

// Lexicon is the loaded, in-memory form of lexicon.yaml: the input alphabet
// plus the ordered token definitions (order fixes token priority, spec §4.3).
type Lexicon struct {
	Alphabet map[rune]struct{}
	Tokens   []nfa.TokenDefinition
}

// LoadLexicon reads and parses a lexicon YAML file from filePath.
func LoadLexicon(filePath string) (*Lexicon, error) {
	bin, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}

	var raw lexiconFile
	if err := yaml.Unmarshal(bin, &raw); err != nil {
		return nil, err
	}

	alphabet := make(map[rune]struct{}, len(raw.Alphabet))
	for _, c := range raw.Alphabet {
		alphabet[c] = struct{}{}
	}

	tokens := make([]nfa.TokenDefinition, 0, len(raw.Tokens))
	for _, entry := range raw.Tokens {
		tokens = append(tokens, nfa.TokenDefinition{TokenID: entry.Name, Regex: entry.Regex})
	}

	return &Lexicon{Alphabet: alphabet, Tokens: tokens}, nil
}

// productionEntry mirrors one "productions:" list item in grammar.yaml.
type productionEntry struct {
	Left  string   `yaml:"left"`
	Right []string `yaml:"right"`
}

// grammarFile mirrors the on-disk shape of grammar.yaml.
type grammarFile struct {
	Start        string            `yaml:"start"`
	Terminals    []string          `yaml:"terminals"`
	NonTerminals []string          `yaml:"nonTerminals"`
	Productions  []productionEntry `yaml:"productions"`
}

// LoadGrammar reads and parses a grammar YAML file from filePath, resolving
// its plain string symbol names into a validated grammar.Grammar.
func LoadGrammar(filePath string) (*grammar.Grammar, error) {
	bin, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}

	var raw grammarFile
	if err := yaml.Unmarshal(bin, &raw); err != nil {
		return nil, err
	}

	terminals := make(map[string]grammar.Symbol, len(raw.Terminals))
	for _, name := range raw.Terminals {
		terminals[name] = grammar.NewTerminal(name)
	}

	nonTerminals := make(map[string]grammar.Symbol, len(raw.NonTerminals))
	for _, name := range raw.NonTerminals {
		nonTerminals[name] = grammar.NewNonTerminal(name)
	}

	resolve := func(name string) grammar.Symbol {
		if name == grammar.Epsilon {
			return grammar.EpsilonSymbol
		}
		if name == grammar.EndOfInput {
			return grammar.EndSymbol
		}
		if sym, ok := nonTerminals[name]; ok {
			return sym
		}
		if sym, ok := terminals[name]; ok {
			return sym
		}
		// Unknown names are passed through as bare terminals so that
		// grammar.New can report them as undeclared, rather than the
		// loader silently swallowing a typo.
		return grammar.NewTerminal(name)
	}

	productions := make([]grammar.Production, 0, len(raw.Productions))
	for _, entry := range raw.Productions {
		right := make([]grammar.Symbol, 0, len(entry.Right))
		for _, name := range entry.Right {
			right = append(right, resolve(name))
		}
		productions = append(productions, grammar.Production{
			Left:  resolve(entry.Left),
			Right: right,
		})
	}

	return grammar.New(productions, terminals, nonTerminals, resolve(raw.Start))
}
