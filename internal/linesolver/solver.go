package linesolver

import (
	"fmt"

	"svw.info/nonogram/internal/domain"
)

// Solver derives every cell state of a single line that is forced by
// the line's clue and its currently known cells. Reasoning is purely
// local: no other line is consulted.
type Solver struct{}

func New() *Solver { return &Solver{} }

// SolveLine runs both techniques against a scratch copy of the line
// until neither adds a fact, then reports the difference to the view
// as inferences in positional order. A clue that cannot be satisfied
// by any completion of the line yields ErrLineContradiction.
func (s *Solver) SolveLine(view domain.LineView) ([]domain.Inference, error) {
	clue := view.Clue()
	line := &workLine{
		cells: view.States(),
		tech:  make([]domain.Technique, view.Len()),
	}
	for {
		line.dirty = false
		if err := applyOverlap(line, clue); err != nil {
			return nil, err
		}
		if err := applyCapacity(line, clue); err != nil {
			return nil, err
		}
		if !line.dirty {
			break
		}
	}

	var out []domain.Inference
	for i, st := range line.cells {
		if st != view.At(i) {
			out = append(out, view.Inference(i, st, line.tech[i]))
		}
	}
	return out, nil
}

// workLine is the solver's scratch copy of one line. tech remembers
// which technique first determined each cell, for the trace.
type workLine struct {
	cells []domain.CellState
	tech  []domain.Technique
	dirty bool
}

func (l *workLine) set(i int, s domain.CellState, t domain.Technique) error {
	switch l.cells[i] {
	case s:
		return nil
	case domain.Unknown:
		l.cells[i] = s
		l.tech[i] = t
		l.dirty = true
		return nil
	default:
		return fmt.Errorf("cell %d is %v but %v forces %v: %w",
			i, l.cells[i], t, s, domain.ErrLineContradiction)
	}
}
