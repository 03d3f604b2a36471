package nfa

import (
	"testing"

	"github.com/dogmalang/lexgen/internal/shuntingyard"
)

func buildNFA(t *testing.T, regex string) *Automaton {
	t.Helper()
	postfix, err := shuntingyard.ToPostfix(regex)
	if err != nil {
		t.Fatalf("ToPostfix(%q): %v", regex, err)
	}
	a, err := BuildFromPostfix(postfix)
	if err != nil {
		t.Fatalf("BuildFromPostfix(%q): %v", postfix, err)
	}
	return a
}

func TestBuildFromPostfixAcceptsExpectedLanguage(t *testing.T) {
	a := buildNFA(t, "a(b|c)*")

	accept := []string{"a", "abc", "acbbc", "abbbbc"}
	for _, s := range accept {
		if !Accepts(a, s) {
			t.Errorf("expected NFA to accept %q", s)
		}
	}

	reject := []string{"", "b", "ab ", "ca"}
	for _, s := range reject {
		if Accepts(a, s) {
			t.Errorf("expected NFA to reject %q", s)
		}
	}
}

func TestBuildFromPostfixPlusRequiresOne(t *testing.T) {
	a := buildNFA(t, "a+")
	if Accepts(a, "") {
		t.Errorf("a+ must not accept the empty string")
	}
	if !Accepts(a, "a") || !Accepts(a, "aaaa") {
		t.Errorf("a+ must accept one or more 'a's")
	}
}

func TestBuildFromPostfixQuestionIsOptional(t *testing.T) {
	a := buildNFA(t, "a?b")
	if !Accepts(a, "b") || !Accepts(a, "ab") {
		t.Errorf("a?b must accept both 'b' and 'ab'")
	}
	if Accepts(a, "aab") {
		t.Errorf("a?b must not accept 'aab'")
	}
}

func TestBuildFromPostfixMalformedDanglingOperator(t *testing.T) {
	if _, err := BuildFromPostfix("a|"); err == nil {
		t.Fatalf("expected MalformedRegexError for dangling '|'")
	}
	if _, err := BuildFromPostfix("ab"); err == nil {
		t.Fatalf("expected MalformedRegexError: two operands never combined")
	}
}

func TestBuildCombinedAssignsTokenIDs(t *testing.T) {
	combined, err := BuildCombined([]TokenDefinition{
		{TokenID: "IF", Regex: "if"},
		{TokenID: "ID", Regex: "(a|b|c)(a|b|c)*"},
	})
	if err != nil {
		t.Fatalf("BuildCombined: %v", err)
	}

	var tagged []string
	for _, s := range combined.States {
		if s.HasToken {
			tagged = append(tagged, s.TokenID)
		}
	}
	if len(tagged) != 2 {
		t.Fatalf("expected 2 tagged accept states, got %d (%v)", len(tagged), tagged)
	}
	if !Accepts(combined, "if") {
		t.Errorf("combined NFA must accept 'if'")
	}
	if !Accepts(combined, "cab") {
		t.Errorf("combined NFA must accept 'cab' via the ID branch")
	}
}
