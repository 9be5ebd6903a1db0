package search

import (
	"github.com/backtrack-framework/backtrack/pkg/backtrack"
)

// Tree is the implicit enumeration tree over candidates: the children
// of a candidate are its extensions by one alphabet character, the
// siblings of a child are the same extension advanced through the
// alphabet. Every generated candidate is a fresh value; no scratch
// buffer is shared between calls.
type Tree struct {
	alphabet backtrack.Alphabet
	maxLen   int
}

// NewTree returns a Tree over the given alphabet that never generates
// candidates longer than maxLen.
func NewTree(alphabet backtrack.Alphabet, maxLen int) *Tree {
	return &Tree{
		alphabet: alphabet,
		maxLen:   maxLen,
	}
}

// FirstChild returns the candidate extended by the lowest-ordered
// alphabet character. The second return value is false when the
// candidate has already reached the maximum length.
func (t *Tree) FirstChild(c backtrack.Candidate) (backtrack.Candidate, bool) {
	if c.Len() >= t.maxLen {
		return "", false
	}
	return c.Append(t.alphabet.First()), true
}

// NextSibling returns the candidate with its last character advanced
// to the next alphabet character. The second return value is false
// when the candidate is empty or its last character is the alphabet's
// last, so the enumeration can never run past the end of the
// alphabet.
func (t *Tree) NextSibling(c backtrack.Candidate) (backtrack.Candidate, bool) {
	last, ok := c.Last()
	if !ok {
		return "", false
	}
	next, ok := t.alphabet.Next(last)
	if !ok {
		return "", false
	}
	return c.WithLast(next), true
}
