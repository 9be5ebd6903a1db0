package backtrack

import (
	"errors"
	"fmt"
)

// ErrEmptyAlphabet is returned by NewAlphabet when no characters are
// provided.
var ErrEmptyAlphabet = errors.New("alphabet must contain at least one character")

// DuplicateCharacter is returned by NewAlphabet when a character
// appears more than once in the input.
type DuplicateCharacter byte

func (e DuplicateCharacter) Error() string {
	return fmt.Sprintf("duplicate character %q in alphabet", rune(e))
}

// Alphabet is an ordered, duplicate-free set of characters. Its order
// defines the order in which children and siblings of a candidate are
// enumerated. An Alphabet is immutable once constructed and safe to
// share between concurrent searches.
type Alphabet struct {
	chars string
	pos   map[byte]int
}

// NewAlphabet returns an Alphabet whose characters appear in the
// order given by chars.
func NewAlphabet(chars string) (Alphabet, error) {
	if len(chars) == 0 {
		return Alphabet{}, ErrEmptyAlphabet
	}
	pos := make(map[byte]int, len(chars))
	for i := 0; i < len(chars); i++ {
		if _, ok := pos[chars[i]]; ok {
			return Alphabet{}, DuplicateCharacter(chars[i])
		}
		pos[chars[i]] = i
	}
	return Alphabet{chars: chars, pos: pos}, nil
}

// First returns the lowest-ordered character.
func (a Alphabet) First() byte {
	return a.chars[0]
}

// Next returns the character following ch in the alphabet. The second
// return value is false when ch is the last character or is not part
// of the alphabet at all, so advancing can never run past the end.
func (a Alphabet) Next(ch byte) (byte, bool) {
	i, ok := a.pos[ch]
	if !ok || i == len(a.chars)-1 {
		return 0, false
	}
	return a.chars[i+1], true
}

// Contains reports whether ch is part of the alphabet.
func (a Alphabet) Contains(ch byte) bool {
	_, ok := a.pos[ch]
	return ok
}

func (a Alphabet) Len() int {
	return len(a.chars)
}

// Chars returns the characters of the alphabet in order.
func (a Alphabet) Chars() string {
	return a.chars
}
