package search

import (
	"github.com/backtrack-framework/backtrack/pkg/backtrack"
)

// frontier holds the candidates pending exploration. The container
// discipline decides the traversal order. A frontier is owned by a
// single Run invocation and discarded when it drains.
type frontier interface {
	push(c backtrack.Candidate)
	pop() (backtrack.Candidate, bool)
	len() int
}

// lifo yields a depth-first traversal. Its size stays bounded by
// alphabet size times remaining depth.
type lifo struct {
	items []backtrack.Candidate
}

func (f *lifo) push(c backtrack.Candidate) {
	f.items = append(f.items, c)
}

func (f *lifo) pop() (backtrack.Candidate, bool) {
	if len(f.items) == 0 {
		return "", false
	}
	c := f.items[len(f.items)-1]
	f.items = f.items[:len(f.items)-1]
	return c, true
}

func (f *lifo) len() int {
	return len(f.items)
}

// fifo yields a breadth-first traversal. It holds every pending
// candidate of the current and next level at once and can grow to
// alphabet size to the power of the maximum length.
type fifo struct {
	items []backtrack.Candidate
	head  int
}

func (f *fifo) push(c backtrack.Candidate) {
	f.items = append(f.items, c)
}

func (f *fifo) pop() (backtrack.Candidate, bool) {
	if f.head == len(f.items) {
		return "", false
	}
	c := f.items[f.head]
	f.items[f.head] = ""
	f.head++
	if f.head > 1024 && f.head*2 > len(f.items) {
		f.items = append(f.items[:0], f.items[f.head:]...)
		f.head = 0
	}
	return c, true
}

func (f *fifo) len() int {
	return len(f.items) - f.head
}
