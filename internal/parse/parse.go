// Package parse converts the text form of a puzzle (one token per cell or
// operator) into the typed clues and operators the frontend expects.
package parse

import (
	"fmt"
	"strings"

	"github.com/bclarenc/garam/constraint"
)

// unknownMarkers are the accepted spellings of an empty cell.
var unknownMarkers = map[string]struct{}{
	"_": {},
	"?": {},
	".": {},
	"x": {},
	"X": {},
}

// Tokens splits a puzzle row into tokens, accepting spaces and commas as
// separators.
func Tokens(line string) []string {
	return strings.FieldsFunc(line, func(r rune) bool {
		return r == ' ' || r == '\t' || r == ','
	})
}

// Clues parses cell tokens: a single digit 0-9, or an unknown marker
// (one of _ ? . x X).
func Clues(tokens []string) ([]constraint.Clue, error) {
	clues := make([]constraint.Clue, len(tokens))
	for i, tok := range tokens {
		if _, ok := unknownMarkers[tok]; ok {
			continue
		}
		if len(tok) != 1 || tok[0] < '0' || tok[0] > '9' {
			return nil, fmt.Errorf("cell %d: %q is neither a digit nor an unknown marker", i+1, tok)
		}
		clues[i] = constraint.KnownDigit(tok[0] - '0')
	}
	return clues, nil
}

// Operators parses operator tokens, one of + - *.
func Operators(tokens []string) ([]constraint.Operator, error) {
	ops := make([]constraint.Operator, len(tokens))
	for i, tok := range tokens {
		op, err := constraint.ParseOperator(tok)
		if err != nil {
			return nil, fmt.Errorf("operator %d: %w", i+1, err)
		}
		ops[i] = op
	}
	return ops, nil
}
