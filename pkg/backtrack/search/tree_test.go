package search

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/backtrack-framework/backtrack/pkg/backtrack"
)

func testTree(t *testing.T, chars string, maxLen int) *Tree {
	t.Helper()
	a, err := backtrack.NewAlphabet(chars)
	assert.NoError(t, err)
	return NewTree(a, maxLen)
}

func TestTreeFirstChild(t *testing.T) {
	tree := testTree(t, "ab1", 3)

	child, ok := tree.FirstChild("")
	assert.True(t, ok)
	assert.Equal(t, backtrack.Candidate("a"), child)

	child, ok = tree.FirstChild("b1")
	assert.True(t, ok)
	assert.Equal(t, backtrack.Candidate("b1a"), child)

	// no children beyond the maximum length
	_, ok = tree.FirstChild("ab1")
	assert.False(t, ok)
	_, ok = tree.FirstChild("ab1x")
	assert.False(t, ok)
}

func TestTreeNextSibling(t *testing.T) {
	tree := testTree(t, "ab1", 3)

	sibling, ok := tree.NextSibling("xa")
	assert.True(t, ok)
	assert.Equal(t, backtrack.Candidate("xb"), sibling)

	sibling, ok = tree.NextSibling("xb")
	assert.True(t, ok)
	assert.Equal(t, backtrack.Candidate("x1"), sibling)

	// the last alphabet character has no sibling
	_, ok = tree.NextSibling("x1")
	assert.False(t, ok)

	// nor does the empty candidate
	_, ok = tree.NextSibling("")
	assert.False(t, ok)
}

func TestTreeSiblingWalkCoversAlphabet(t *testing.T) {
	tree := testTree(t, "ab12", 2)

	var walked []backtrack.Candidate
	child, ok := tree.FirstChild("a")
	for ok {
		walked = append(walked, child)
		child, ok = tree.NextSibling(child)
	}
	assert.Equal(t, []backtrack.Candidate{"aa", "ab", "a1", "a2"}, walked)
}
