package domain

import "errors"

// The three fatal conditions of a solve. Each is fatal for the puzzle
// in progress only; batch processing continues with the next puzzle.
var (
	// ErrMalformedClue marks a clue whose runs cannot fit the line
	// length even with no other constraints. Caught at load time.
	ErrMalformedClue = errors.New("malformed clue")

	// ErrStateConflict marks an inference or pre-filled cell that
	// contradicts an already-recorded cell state.
	ErrStateConflict = errors.New("state conflict")

	// ErrLineContradiction marks a clue that is unsatisfiable given
	// the currently known cells of its line.
	ErrLineContradiction = errors.New("line contradiction")
)
