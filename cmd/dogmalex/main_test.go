package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFormatSet(t *testing.T) {
	require.Equal(t, "{ a, b, c }", formatSet([]string{"c", "a", "b"}))
	require.Equal(t, "{  }", formatSet(nil))
}

func TestReadInputFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.txt")
	require.NoError(t, os.WriteFile(path, []byte("ifif"), 0644))

	content, err := readInput(path)
	require.NoError(t, err)
	require.Equal(t, "ifif", content)
}

func TestReadInputRequiresPath(t *testing.T) {
	_, err := readInput("")
	require.Error(t, err)
}

func TestReadInputMissingFile(t *testing.T) {
	_, err := readInput(filepath.Join(t.TempDir(), "missing.txt"))
	require.Error(t, err)
}

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestRunLexiconScansTokens(t *testing.T) {
	lexiconPath := writeTempFile(t, "lexicon.yaml", `
alphabet: "abcdefghijklmnopqrstuvwxyz"
tokens:
  - name: IF
    regex: "if"
  - name: ID
    regex: "(a|b|c|d|e|f|g|h|i|j|k|l|m|n|o|p|q|r|s|t|u|v|w|x|y|z)(a|b|c|d|e|f|g|h|i|j|k|l|m|n|o|p|q|r|s|t|u|v|w|x|y|z)*"
`)
	inputPath := writeTempFile(t, "input.txt", "ifx")

	err := runLexicon(&options{LexiconPath: lexiconPath, InputPath: inputPath, Tokens: true})
	require.NoError(t, err)
}

func TestRunLexiconRejectsMissingFile(t *testing.T) {
	err := runLexicon(&options{LexiconPath: filepath.Join(t.TempDir(), "missing.yaml")})
	require.Error(t, err)
}

func TestRunAnalyzePrintsExpressionGrammar(t *testing.T) {
	grammarPath := writeTempFile(t, "grammar.yaml", `
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

	err := runAnalyze(&options{GrammarPath: grammarPath, Analyze: true})
	require.NoError(t, err)
}

func TestRunAnalyzeRejectsMissingFile(t *testing.T) {
	err := runAnalyze(&options{GrammarPath: filepath.Join(t.TempDir(), "missing.yaml")})
	require.Error(t, err)
}
