package backtrack

// Candidate values are the basic unit of searches understood by this
// module: a string under construction or evaluation. Candidates are
// immutable; the derivation helpers return new values and never alias
// their receiver.
type Candidate string

func (c Candidate) String() string {
	return string(c)
}

// CandidateFromString returns a Candidate based on a provided
// string.
func CandidateFromString(s string) Candidate {
	return Candidate(s)
}

func (c Candidate) Len() int {
	return len(c)
}

// Append returns a new candidate extended by ch.
func (c Candidate) Append(ch byte) Candidate {
	return c + Candidate(ch)
}

// WithLast returns a new candidate of the same length whose final
// character is replaced by ch. The receiver must be non-empty.
func (c Candidate) WithLast(ch byte) Candidate {
	return c[:len(c)-1] + Candidate(ch)
}

// Last returns the final character of the candidate. The second
// return value is false for the empty candidate.
func (c Candidate) Last() (byte, bool) {
	if len(c) == 0 {
		return 0, false
	}
	return c[len(c)-1], true
}

// Constraint implementations describe a property an accepted
// candidate must have.
type Constraint interface {
	String(subject Candidate) string
	Satisfied(subject Candidate) bool
}

// CardinalityConstraint is a Constraint that requires a minimum
// number of characters drawn from some class. The narrower interface
// lets a pruner reason about whether the completions of a prefix can
// still meet the requirement.
type CardinalityConstraint interface {
	Constraint
	// Matches reports whether ch counts towards the requirement.
	Matches(ch byte) bool
	// Minimum returns the required number of matching characters.
	Minimum() int
}

// Rules decide which candidates are pruned and which are reported.
type Rules interface {
	// Reject reports that the candidate and all of its descendants
	// are to be discarded from the search.
	Reject(c Candidate) bool
	// Accept reports that the candidate is a solution. Precondition:
	// Reject(c) == false.
	Accept(c Candidate) bool
}
