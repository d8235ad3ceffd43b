package nlp

import "strings"

// Normalize lowercases, trims and collapses internal whitespace runs to
// single spaces. It is total and idempotent; an empty input yields an
// empty output.
func Normalize(text string) string {
	return strings.Join(strings.Fields(strings.ToLower(text)), " ")
}

// Tokenize splits a normalized message into whitespace-delimited tokens.
func Tokenize(normalized string) []string {
	return strings.Fields(normalized)
}
