package search

import (
	"fmt"
)

// Strategy selects the traversal order of a search. All strategies
// produce the identical set of accepted candidates for the same rules
// and tree; only the discovery order and the memory profile differ.
type Strategy int

const (
	// RecursiveDFS explores depth-first on the call stack, visiting
	// candidates in lexicographic alphabet order. Call depth equals
	// the maximum length minus the length of the root.
	RecursiveDFS Strategy = iota
	// IterativeDFS explores depth-first over an explicit stack, with
	// the same visitation order and output as RecursiveDFS. Memory
	// stays bounded by alphabet size times depth.
	IterativeDFS
	// BreadthFirst explores all candidates of one length before the
	// next over an explicit queue. WARNING: the queue holds entire
	// levels of the enumeration tree and can grow to alphabet size to
	// the power of the maximum length; prefer a depth-first strategy
	// for large search spaces.
	BreadthFirst
)

func (s Strategy) String() string {
	switch s {
	case RecursiveDFS:
		return "recursive"
	case IterativeDFS:
		return "stack"
	case BreadthFirst:
		return "queue"
	}
	return fmt.Sprintf("unknown(%d)", int(s))
}

// StrategyFromString returns the Strategy named by s.
func StrategyFromString(s string) (Strategy, error) {
	switch s {
	case "recursive":
		return RecursiveDFS, nil
	case "stack":
		return IterativeDFS, nil
	case "queue":
		return BreadthFirst, nil
	}
	return 0, fmt.Errorf("unknown strategy %q (expected recursive, stack or queue)", s)
}
