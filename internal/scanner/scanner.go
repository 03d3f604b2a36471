// Package scanner implements C6: maximal-munch scanning over a compiled
// DFA, producing a token stream in input order (spec §4.6).
package scanner

import (
	"github.com/dogmalang/lexgen/internal/dfa"
	"github.com/dogmalang/lexgen/internal/lexerr"
	"github.com/dogmalang/lexgen/internal/token"
)

// Scanner wraps a compiled DFA. It must be built via New with a non-nil
// DFA before Scan is called — scanning before that is a ScannerNotReadyError
// (spec §7).
type Scanner struct {
	dfa *dfa.Automaton
}

// New creates a Scanner bound to a compiled (and ideally minimized) DFA.
func New(d *dfa.Automaton) *Scanner {
	return &Scanner{dfa: d}
}

// Scan implements maximal munch with longest-match, highest-priority
// tie-break (spec §4.6): at each position it walks the DFA as far as
// possible, remembering the last position at which the current state was
// accepting, then emits the token recognized up to that point. Priority
// between token kinds accepting at the same length was already resolved
// when the DFA state was built (subset construction + minimization), so
// the scanner only ever reads the state's single TokenID.
func (s *Scanner) Scan(input string) ([]token.Token, error) {
	if s.dfa == nil {
		return nil, &lexerr.ScannerNotReadyError{}
	}

	runes := []rune(input)
	var tokens []token.Token
	position := 0

	for position < len(runes) {
		walker := s.dfa.Start
		lastAcceptingPos := -1
		var lastAcceptingState *dfa.State

		p := position
		for p < len(runes) {
			state := s.dfa.StateByID(walker)
			next, ok := state.Transitions[runes[p]]
			if !ok {
				break
			}
			walker = next
			if s.dfa.StateByID(walker).Final {
				lastAcceptingPos = p
				lastAcceptingState = s.dfa.StateByID(walker)
			}
			p++
		}

		if lastAcceptingPos == -1 {
			return tokens, &lexerr.LexicalError{Position: position, Char: runes[position]}
		}

		lexeme := string(runes[position : lastAcceptingPos+1])
		tokens = append(tokens, token.Token{TokenID: lastAcceptingState.TokenID, Lexeme: lexeme})
		position = lastAcceptingPos + 1
	}

	return tokens, nil
}
