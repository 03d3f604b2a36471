// Package auxiliar holds small debug-printing helpers shared by the
// dogmalex CLI's -debug and -tokens output: textual dumps of an NFA, a DFA, and a scanned
// token stream, one line per transition/token so they read well piped
// through less or grep.
package auxiliar

import (
	"fmt"
	"sort"
	"strings"

	"github.com/dogmalang/lexgen/internal/dfa"
	"github.com/dogmalang/lexgen/internal/nfa"
	"github.com/dogmalang/lexgen/internal/token"
)

// PrintNFA dumps every state of a, marking the start state, and one line per
// transition (ε-transitions render as "ε").
func PrintNFA(a *nfa.Automaton) {
	fmt.Printf("start state: %d\n", a.Start)
	fmt.Println("transitions:")
	for _, s := range a.States {
		label := fmt.Sprintf("%d", s.ID)
		if s.Final {
			tag := "accept"
			if s.HasToken {
				tag = fmt.Sprintf("accept(%s, priority=%d)", s.TokenID, s.Priority)
			}
			label = fmt.Sprintf("%d [%s]", s.ID, tag)
		}
		if len(s.Transitions) == 0 {
			fmt.Printf("  %s\n", label)
			continue
		}
		for _, t := range s.Transitions {
			symbol := "ε"
			if !t.Epsilon {
				symbol = string(t.Symbol)
			}
			fmt.Printf("  %s --%s--> %d\n", label, symbol, t.To)
		}
	}
}

// PrintDFA dumps every state of d, marking the start state and every
// accepting state's token, and one line per transition.
func PrintDFA(d *dfa.Automaton) {
	fmt.Printf("start state: %d\n", d.Start)
	fmt.Println("accepting states:")
	for _, s := range d.States {
		if s.Final {
			fmt.Printf("  %d -> %s\n", s.ID, s.TokenID)
		}
	}

	fmt.Println("transitions:")
	for _, s := range d.States {
		symbols := make([]rune, 0, len(s.Transitions))
		for c := range s.Transitions {
			symbols = append(symbols, c)
		}
		sort.Slice(symbols, func(i, j int) bool { return symbols[i] < symbols[j] })
		for _, c := range symbols {
			fmt.Printf("  %d --%s--> %d\n", s.ID, string(c), s.Transitions[c])
		}
	}
}

// PrintTokens writes one line per token in the stream, as `TokenID("lexeme")`
// (the lexeme Go-quoted, per token.Token.String).
func PrintTokens(tokens []token.Token) {
	lines := make([]string, len(tokens))
	for i, t := range tokens {
		lines[i] = t.String()
	}
	fmt.Println(strings.Join(lines, "\n"))
}
