package scanner

import (
	"errors"
	"testing"

	"github.com/dogmalang/lexgen/internal/dfa"
	"github.com/dogmalang/lexgen/internal/lexerr"
	"github.com/dogmalang/lexgen/internal/nfa"
)

func buildScanner(t *testing.T, alphabet string, tokens []nfa.TokenDefinition) *Scanner {
	t.Helper()
	combined, err := nfa.BuildCombined(tokens)
	if err != nil {
		t.Fatalf("BuildCombined: %v", err)
	}
	alpha := make(map[rune]struct{}, len(alphabet))
	for _, c := range alphabet {
		alpha[c] = struct{}{}
	}
	subset := dfa.SubsetConstruct(combined, alpha)
	minimized := dfa.Minimize(subset, alpha)
	return New(minimized)
}

func lowerLetters() string {
	letters := ""
	for c := 'a'; c <= 'z'; c++ {
		letters += string(c)
	}
	return letters
}

func idRegex() string {
	// (a|b|...|z)(a|b|...|z)*
	letters := lowerLetters()
	alt := "(" + letters[0:1]
	for _, c := range letters[1:] {
		alt += "|" + string(c)
	}
	alt += ")"
	return alt + alt + "*"
}

func newIfIDScanner(t *testing.T) *Scanner {
	t.Helper()
	return buildScanner(t, lowerLetters(), []nfa.TokenDefinition{
		{TokenID: "IF", Regex: "if"},
		{TokenID: "ID", Regex: idRegex()},
	})
}

func TestScanMaximalMunchRepeatsIF(t *testing.T) {
	s := newIfIDScanner(t)
	toks, err := s.Scan("ififif")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(toks) != 3 {
		t.Fatalf("expected 3 tokens, got %d (%v)", len(toks), toks)
	}
	for _, tok := range toks {
		if tok.TokenID != "IF" || tok.Lexeme != "if" {
			t.Errorf("unexpected token %v", tok)
		}
	}
}

func TestScanMaximalMunchPrefersLongerID(t *testing.T) {
	s := newIfIDScanner(t)
	toks, err := s.Scan("ifx")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(toks) != 1 || toks[0].TokenID != "ID" || toks[0].Lexeme != "ifx" {
		t.Fatalf("expected a single ID(\"ifx\") token, got %v", toks)
	}
}

func TestScanLexicalErrorOutsideAlphabet(t *testing.T) {
	s := newIfIDScanner(t)
	_, err := s.Scan("if ")
	var lexErr *lexerr.LexicalError
	if !errors.As(err, &lexErr) {
		t.Fatalf("expected LexicalError, got %v", err)
	}
	if lexErr.Position != 2 || lexErr.Char != ' ' {
		t.Fatalf("expected position 2 char ' ', got position %d char %q", lexErr.Position, lexErr.Char)
	}
}

func TestScanNotReady(t *testing.T) {
	s := New(nil)
	_, err := s.Scan("abc")
	var notReady *lexerr.ScannerNotReadyError
	if !errors.As(err, &notReady) {
		t.Fatalf("expected ScannerNotReadyError, got %v", err)
	}
}

func TestScanPriorityTieBreak(t *testing.T) {
	// Two token kinds that accept exactly the same lexeme: the
	// earlier-registered one must win (spec's priority tie-break property).
	s := buildScanner(t, "a", []nfa.TokenDefinition{
		{TokenID: "FIRST", Regex: "a"},
		{TokenID: "SECOND", Regex: "a"},
	})
	toks, err := s.Scan("a")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(toks) != 1 || toks[0].TokenID != "FIRST" {
		t.Fatalf("expected FIRST to win the tie, got %v", toks)
	}
}
