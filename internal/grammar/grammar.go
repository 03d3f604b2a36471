// Package grammar holds the static data model for a context-free grammar:
// symbols, productions, and the grammar itself (spec §3). It performs the
// invariant checks the static analyzer depends on, but no FIRST/FOLLOW
// computation — that lives in package analyzer.
package grammar

import "github.com/dogmalang/lexgen/internal/lexerr"

// Kind distinguishes a terminal from a non-terminal symbol.
type Kind int

const (
	Terminal Kind = iota
	NonTerminal
)

func (k Kind) String() string {
	if k == Terminal {
		return "terminal"
	}
	return "non-terminal"
}

// Epsilon and EndOfInput are the two reserved terminal symbols.
const (
	Epsilon    = "ε"
	EndOfInput = "$"
)

// Symbol is a (name, kind) pair; equality is by value.
type Symbol struct {
	Name string
	Kind Kind
}

// NewTerminal builds a terminal symbol.
func NewTerminal(name string) Symbol { return Symbol{Name: name, Kind: Terminal} }

// NewNonTerminal builds a non-terminal symbol.
func NewNonTerminal(name string) Symbol { return Symbol{Name: name, Kind: NonTerminal} }

// EpsilonSymbol and EndSymbol are the canonical reserved-terminal values.
var (
	EpsilonSymbol = NewTerminal(Epsilon)
	EndSymbol     = NewTerminal(EndOfInput)
)

// IsEpsilon reports whether s is the reserved ε marker.
func (s Symbol) IsEpsilon() bool { return s.Kind == Terminal && s.Name == Epsilon }

// Production is an ordered pair (left, right); right is possibly a single
// ε symbol to denote an ε-production.
type Production struct {
	Left  Symbol
	Right []Symbol
}

// IsEpsilonProduction reports whether the production's right side is
// exactly the ε marker.
func (p Production) IsEpsilonProduction() bool {
	return len(p.Right) == 1 && p.Right[0].IsEpsilon()
}

// Grammar is an ordered sequence of productions plus the declared terminal
// and non-terminal sets and the start symbol.
type Grammar struct {
	Productions  []Production
	Terminals    map[string]Symbol
	NonTerminals map[string]Symbol
	Start        Symbol
}

// New validates and constructs a Grammar. It enforces the invariants from
// spec §3: every right-hand symbol is declared terminal or non-terminal,
// every production's left is a non-terminal, and the start symbol is a
// declared non-terminal. ε and $ are implicitly valid right-hand symbols
// even if not present in terminals (they are reserved, not user-declared).
func New(productions []Production, terminals, nonTerminals map[string]Symbol, start Symbol) (*Grammar, error) {
	if _, ok := nonTerminals[start.Name]; !ok || start.Kind != NonTerminal {
		return nil, &lexerr.GrammarError{Reason: "start symbol \"" + start.Name + "\" is not declared as a non-terminal"}
	}

	for _, p := range productions {
		if p.Left.Kind != NonTerminal {
			return nil, &lexerr.GrammarError{Reason: "production left-hand side \"" + p.Left.Name + "\" is not a non-terminal"}
		}
		if _, ok := nonTerminals[p.Left.Name]; !ok {
			return nil, &lexerr.GrammarError{Reason: "production left-hand side \"" + p.Left.Name + "\" is not declared"}
		}
		for _, sym := range p.Right {
			if sym.IsEpsilon() || sym.Name == EndOfInput {
				continue
			}
			switch sym.Kind {
			case Terminal:
				if _, ok := terminals[sym.Name]; !ok {
					return nil, &lexerr.GrammarError{Reason: "symbol \"" + sym.Name + "\" used as terminal but not declared"}
				}
			case NonTerminal:
				if _, ok := nonTerminals[sym.Name]; !ok {
					return nil, &lexerr.GrammarError{Reason: "symbol \"" + sym.Name + "\" used as non-terminal but not declared"}
				}
			default:
				return nil, &lexerr.GrammarError{Reason: "symbol \"" + sym.Name + "\" has neither terminal nor non-terminal kind"}
			}
		}
	}

	return &Grammar{
		Productions:  productions,
		Terminals:    terminals,
		NonTerminals: nonTerminals,
		Start:        start,
	}, nil
}

// ProductionsFor returns, in declaration order, every production whose left
// side is the given non-terminal.
func (g *Grammar) ProductionsFor(nt Symbol) []Production {
	var out []Production
	for _, p := range g.Productions {
		if p.Left == nt {
			out = append(out, p)
		}
	}
	return out
}
