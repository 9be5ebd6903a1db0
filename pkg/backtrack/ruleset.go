package backtrack

import (
	"fmt"
)

// InvalidLengthBounds is returned by NewRuleset when the candidate
// length bounds are inconsistent.
type InvalidLengthBounds struct {
	Min, Max int
}

func (e InvalidLengthBounds) Error() string {
	return fmt.Sprintf("invalid length bounds [%d, %d]", e.Min, e.Max)
}

var _ Rules = &Ruleset{}

// Ruleset binds an alphabet, a candidate length interval and a set of
// goal constraints into the Rules of a search.
//
// Goal constraints are only enforced by Reject once a candidate has
// reached the maximum length. Shorter candidates are kept alive even
// when they can no longer possibly satisfy the goals; cutting them
// earlier is the job of an optional pruner, not of the rules.
type Ruleset struct {
	alphabet Alphabet
	minLen   int
	maxLen   int
	goals    []Constraint
}

// NewRuleset returns a Ruleset over the given alphabet accepting
// candidates of length minLen to maxLen that satisfy every goal.
func NewRuleset(alphabet Alphabet, minLen, maxLen int, goals ...Constraint) (*Ruleset, error) {
	if minLen < 0 || maxLen < 1 || minLen > maxLen {
		return nil, InvalidLengthBounds{Min: minLen, Max: maxLen}
	}
	return &Ruleset{
		alphabet: alphabet,
		minLen:   minLen,
		maxLen:   maxLen,
		goals:    goals,
	}, nil
}

func (r *Ruleset) Alphabet() Alphabet {
	return r.alphabet
}

func (r *Ruleset) MinLength() int {
	return r.minLen
}

func (r *Ruleset) MaxLength() int {
	return r.maxLen
}

// Goals returns the goal constraints in the order they were given.
func (r *Ruleset) Goals() []Constraint {
	return r.goals
}

// Reject reports whether the candidate and all of its descendants are
// to be discarded. A candidate is rejected when it contains a
// character outside the alphabet, or when it has reached the maximum
// length without satisfying every goal.
func (r *Ruleset) Reject(c Candidate) bool {
	for i := 0; i < len(c); i++ {
		if !r.alphabet.Contains(c[i]) {
			return true
		}
	}
	if c.Len() >= r.maxLen {
		for _, goal := range r.goals {
			if !goal.Satisfied(c) {
				return true
			}
		}
	}
	return false
}

// Accept reports whether the candidate is a solution: its length is
// within bounds and every goal is satisfied. Precondition:
// Reject(c) == false.
func (r *Ruleset) Accept(c Candidate) bool {
	if c.Len() < r.minLen || c.Len() > r.maxLen {
		return false
	}
	for _, goal := range r.goals {
		if !goal.Satisfied(c) {
			return false
		}
	}
	return true
}
