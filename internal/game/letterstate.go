package game

import "fmt"

// LetterState classifies what submitted guesses have revealed about a letter.
// The zero value StateUnknown means the letter has not been evaluated yet.
type LetterState int

const (
	StateUnknown LetterState = iota
	StateAbsent
	StatePresent
	StateCorrect
)

// Max returns the stronger of two states. Keyboard aggregation relies on the
// ordering Correct > Present > Absent > Unknown: a letter's displayed state is
// the best result it has ever achieved.
func (s LetterState) Max(other LetterState) LetterState {
	if other > s {
		return other
	}
	return s
}

// Code returns the single-digit byte used in persisted guess records:
// '0' absent, '1' present, '2' correct. Unknown cells are never persisted.
func (s LetterState) Code() byte {
	switch s {
	case StateAbsent:
		return '0'
	case StatePresent:
		return '1'
	case StateCorrect:
		return '2'
	}
	return 0
}

// ParseStateCode decodes a persisted status digit back into a LetterState.
func ParseStateCode(c byte) (LetterState, error) {
	switch c {
	case '0':
		return StateAbsent, nil
	case '1':
		return StatePresent, nil
	case '2':
		return StateCorrect, nil
	}
	return StateUnknown, fmt.Errorf("invalid status code %q", c)
}

func (s LetterState) String() string {
	switch s {
	case StateAbsent:
		return "absent"
	case StatePresent:
		return "present"
	case StateCorrect:
		return "correct"
	}
	return "unknown"
}
