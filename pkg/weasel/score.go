package weasel

import (
	"math"
)

// Scorer gives the distance of a candidate from the goal. A perfect
// score equals zero; the higher the worse.
type Scorer interface {
	Score(candidate string) int
	// Length returns the candidate length the scorer expects.
	Length() int
}

type targetScorer struct {
	target string
}

// Target returns a Scorer that counts the positions at which a
// candidate differs from the target string.
func Target(target string) Scorer {
	return &targetScorer{target: target}
}

func (s *targetScorer) Score(candidate string) int {
	if len(candidate) != len(s.target) {
		return math.MaxInt
	}
	score := len(s.target)
	for i := 0; i < len(s.target); i++ {
		if candidate[i] == s.target[i] {
			score--
		}
	}
	return score
}

func (s *targetScorer) Length() int {
	return len(s.target)
}

type palindromeScorer struct {
	length int
}

// Palindrome returns a Scorer that counts mismatched mirror pairs, so
// any palindrome of the given length scores zero.
func Palindrome(length int) Scorer {
	return &palindromeScorer{length: length}
}

func (s *palindromeScorer) Score(candidate string) int {
	if len(candidate) != s.length {
		return math.MaxInt
	}
	score := 0
	for i, j := 0, len(candidate)-1; i < j; i, j = i+1, j-1 {
		if candidate[i] != candidate[j] {
			score++
		}
	}
	return score
}

func (s *palindromeScorer) Length() int {
	return s.length
}
