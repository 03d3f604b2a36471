// Package token defines the scanner's output record.
package token

import "fmt"

// Token is a (token_id, lexeme) pair produced by the scanner, in input
// order (spec §3, §6).
type Token struct {
	TokenID string
	Lexeme  string
}

func (t Token) String() string {
	return fmt.Sprintf("%s(%q)", t.TokenID, t.Lexeme)
}
