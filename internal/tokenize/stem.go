// Package tokenize provides the optional build-time stemming pass over raw
// completion corpora, before token-string-to-id assignment.
//
// spec.md treats the ingest tokenizer as an external collaborator ("the
// build-time tokenizer that ingests raw input files" — out of scope for the
// core). The corpus still needs *something* to turn "Running Shoes" into
// the same token stream as "running shoe" before it ever reaches the
// dictionary; we give that ambient concern a home using the teacher's own
// stemming pipeline (analyzer.go's stemmerFilter), reduced to just the
// stemming step since the rest of analyzer.go's pipeline (stopwords, length
// filtering) does not apply to pre-tokenized completion/query corpora where
// every token is already meaningful and space-delimited.
package tokenize

import (
	"strings"

	snowballeng "github.com/kljensen/snowball/english"
)

// Stem reduces a single already-split token to its stem, lowercased, the way
// the teacher's stemmerFilter does per-token.
func Stem(token string) string {
	return snowballeng.Stem(strings.ToLower(token), false)
}

// StemAll stems a pre-split slice of tokens in place order, returning a new
// slice (the teacher's convention of not mutating the input).
func StemAll(tokens []string) []string {
	out := make([]string, len(tokens))
	for i, t := range tokens {
		out[i] = Stem(t)
	}
	return out
}
