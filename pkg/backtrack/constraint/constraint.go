package constraint

import (
	"fmt"
	"strings"

	"github.com/backtrack-framework/backtrack/pkg/backtrack"
)

type MinCountConstraint struct {
	ch byte
	n  int
}

func (constraint *MinCountConstraint) String(subject backtrack.Candidate) string {
	return fmt.Sprintf("%s must contain at least %d of %q", subject, constraint.n, rune(constraint.ch))
}

func (constraint *MinCountConstraint) Satisfied(subject backtrack.Candidate) bool {
	return strings.Count(subject.String(), string(constraint.ch)) >= constraint.n
}

func (constraint *MinCountConstraint) Matches(ch byte) bool {
	return ch == constraint.ch
}

func (constraint *MinCountConstraint) Minimum() int {
	return constraint.n
}

// MinCount returns a Constraint requiring at least n occurrences of
// the marker character ch.
func MinCount(ch byte, n int) backtrack.CardinalityConstraint {
	return &MinCountConstraint{
		ch: ch,
		n:  n,
	}
}

type MinClassConstraint struct {
	name    string
	matches func(ch byte) bool
	n       int
}

func (constraint *MinClassConstraint) String(subject backtrack.Candidate) string {
	return fmt.Sprintf("%s must contain at least %d %s characters", subject, constraint.n, constraint.name)
}

func (constraint *MinClassConstraint) Satisfied(subject backtrack.Candidate) bool {
	count := 0
	for i := 0; i < subject.Len(); i++ {
		if constraint.matches(subject[i]) {
			count++
		}
	}
	return count >= constraint.n
}

func (constraint *MinClassConstraint) Matches(ch byte) bool {
	return constraint.matches(ch)
}

func (constraint *MinClassConstraint) Minimum() int {
	return constraint.n
}

// MinClass returns a Constraint requiring at least n characters of an
// arbitrary class. The name appears in constraint messages.
func MinClass(name string, matches func(ch byte) bool, n int) backtrack.CardinalityConstraint {
	return &MinClassConstraint{
		name:    name,
		matches: matches,
		n:       n,
	}
}

// MinDigits returns a Constraint requiring at least n decimal digits.
func MinDigits(n int) backtrack.CardinalityConstraint {
	return MinClass("digit", func(ch byte) bool {
		return ch >= '0' && ch <= '9'
	}, n)
}

type AndConstraint struct {
	parts []backtrack.Constraint
}

func (constraint *AndConstraint) String(subject backtrack.Candidate) string {
	if len(constraint.parts) == 0 {
		return fmt.Sprintf("%s is unconstrained", subject)
	}
	s := make([]string, len(constraint.parts))
	for i, part := range constraint.parts {
		s[i] = part.String(subject)
	}
	return strings.Join(s, " AND ")
}

func (constraint *AndConstraint) Satisfied(subject backtrack.Candidate) bool {
	for _, part := range constraint.parts {
		if !part.Satisfied(subject) {
			return false
		}
	}
	return true
}

// And returns a Constraint that is satisfied when every part is.
func And(parts ...backtrack.Constraint) backtrack.Constraint {
	return &AndConstraint{
		parts: parts,
	}
}
