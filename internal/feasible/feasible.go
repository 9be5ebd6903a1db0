package feasible

import (
	"fmt"

	"github.com/go-air/gini"
	"github.com/go-air/gini/logic"
	"github.com/go-air/gini/z"

	"github.com/backtrack-framework/backtrack/pkg/backtrack"
	"github.com/backtrack-framework/backtrack/pkg/backtrack/search"
)

const (
	satisfiable   = 1
	unsatisfiable = -1
)

// NotCardinality is returned by New when a ruleset goal cannot be
// reasoned about as a minimum-count requirement.
type NotCardinality struct {
	Goal backtrack.Constraint
}

func (e NotCardinality) Error() string {
	return fmt.Sprintf("goal %T is not a cardinality constraint", e.Goal)
}

// Checker decides whether a candidate prefix can still grow into an
// accepted candidate within the ruleset's maximum length. It encodes
// the question as a satisfiability problem: one literal per remaining
// position per goal, stating that the character placed there counts
// towards that goal, with cardinality constraints requiring each
// goal's missing count to be covered.
//
// Goal classes that share no alphabet character exclude each other at
// a single position. Wider overlaps are not tracked, which can only
// over-approximate viability and weaken pruning, never cut a viable
// candidate.
type Checker struct {
	alphabet backtrack.Alphabet
	maxLen   int
	goals    []backtrack.CardinalityConstraint

	// reachable[i] records whether any alphabet character matches
	// goal i at all; overlap[i][j] whether some alphabet character
	// matches both goal i and goal j.
	reachable []bool
	overlap   [][]bool
}

var _ search.Pruner = &Checker{}

// New returns a Checker for the ruleset's goals. Every goal must
// implement backtrack.CardinalityConstraint.
func New(rules *backtrack.Ruleset) (*Checker, error) {
	goals := make([]backtrack.CardinalityConstraint, 0, len(rules.Goals()))
	for _, goal := range rules.Goals() {
		cardinality, ok := goal.(backtrack.CardinalityConstraint)
		if !ok {
			return nil, NotCardinality{Goal: goal}
		}
		goals = append(goals, cardinality)
	}

	checker := &Checker{
		alphabet:  rules.Alphabet(),
		maxLen:    rules.MaxLength(),
		goals:     goals,
		reachable: make([]bool, len(goals)),
		overlap:   make([][]bool, len(goals)),
	}
	for i := range checker.overlap {
		checker.overlap[i] = make([]bool, len(goals))
	}
	chars := checker.alphabet.Chars()
	for k := 0; k < len(chars); k++ {
		for i, goal := range goals {
			if !goal.Matches(chars[k]) {
				continue
			}
			checker.reachable[i] = true
			for j, other := range goals {
				if other.Matches(chars[k]) {
					checker.overlap[i][j] = true
				}
			}
		}
	}
	return checker, nil
}

// Viable reports whether some completion of c within the maximum
// length satisfies every goal.
func (ch *Checker) Viable(c backtrack.Candidate) (bool, error) {
	remaining := ch.maxLen - c.Len()
	if remaining < 0 {
		return false, nil
	}

	need := make([]int, len(ch.goals))
	open := false
	for i, goal := range ch.goals {
		need[i] = goal.Minimum()
		for k := 0; k < c.Len(); k++ {
			if goal.Matches(c[k]) {
				need[i]--
			}
		}
		if need[i] <= 0 {
			continue
		}
		if need[i] > remaining || !ch.reachable[i] {
			return false, nil
		}
		open = true
	}
	if !open {
		return true, nil
	}

	circuit := logic.NewC()
	lits := make([][]z.Lit, remaining)
	var assumptions []z.Lit
	for p := range lits {
		lits[p] = make([]z.Lit, len(ch.goals))
		for i := range ch.goals {
			lits[p][i] = circuit.Lit()
		}
		for i := range ch.goals {
			for j := i + 1; j < len(ch.goals); j++ {
				if !ch.overlap[i][j] {
					// no single character can serve both goals
					assumptions = append(assumptions, circuit.Or(lits[p][i].Not(), lits[p][j].Not()))
				}
			}
		}
	}
	for i := range ch.goals {
		if need[i] <= 0 {
			continue
		}
		column := make([]z.Lit, remaining)
		for p := range lits {
			column[p] = lits[p][i]
		}
		assumptions = append(assumptions, circuit.CardSort(column).Geq(need[i]))
	}

	solver := gini.New()
	circuit.ToCnf(solver)
	solver.Assume(assumptions...)
	switch solver.Solve() {
	case satisfiable:
		return true, nil
	case unsatisfiable:
		return false, nil
	}
	return false, fmt.Errorf("unexpected solver outcome for %q", c)
}
