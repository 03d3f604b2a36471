package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dogmalang/lexgen/internal/grammar"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadLexicon(t *testing.T) {
	path := writeTemp(t, "lexicon.yaml", `
alphabet: "abcdefghijklmnopqrstuvwxyz"
tokens:
  - name: IF
    regex: "if"
  - name: ID
    regex: "a(a|b)*"
`)

	lex, err := LoadLexicon(path)
	require.NoError(t, err)
	require.Len(t, lex.Alphabet, 26)
	require.Contains(t, lex.Alphabet, 'q')
	require.Len(t, lex.Tokens, 2)
	require.Equal(t, "IF", lex.Tokens[0].TokenID)
	require.Equal(t, "if", lex.Tokens[0].Regex)
	require.Equal(t, "ID", lex.Tokens[1].TokenID)
	require.Equal(t, "a(a|b)*", lex.Tokens[1].Regex)
}

func TestLoadLexiconMissingFile(t *testing.T) {
	_, err := LoadLexicon(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestLoadGrammarExpressionGrammar(t *testing.T) {
	path := writeTemp(t, "grammar.yaml", `
start: E
terminals: ["+", "*", "(", ")", "id"]
nonTerminals: ["E", "E'", "T", "T'", "F"]
productions:
  - left: E
    right: [T, "E'"]
  - left: "E'"
    right: ["+", T, "E'"]
  - left: "E'"
    right: ["ε"]
  - left: T
    right: [F, "T'"]
  - left: "T'"
    right: ["*", F, "T'"]
  - left: "T'"
    right: ["ε"]
  - left: F
    right: ["(", E, ")"]
  - left: F
    right: ["id"]
`)

	g, err := LoadGrammar(path)
	require.NoError(t, err)
	require.Equal(t, "E", g.Start.Name)
	require.Equal(t, grammar.NonTerminal, g.Start.Kind)
	require.Len(t, g.Productions, 8)
	require.True(t, g.Productions[2].IsEpsilonProduction())
	require.Len(t, g.Terminals, 5)
	require.Len(t, g.NonTerminals, 5)
}

func TestLoadGrammarUndeclaredSymbolFails(t *testing.T) {
	path := writeTemp(t, "grammar.yaml", `
start: S
terminals: ["a"]
nonTerminals: ["S"]
productions:
  - left: S
    right: ["a", "b"]
`)

	_, err := LoadGrammar(path)
	require.Error(t, err)
}

func TestLoadGrammarMissingFile(t *testing.T) {
	_, err := LoadGrammar(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
