package linesolver

import (
	"fmt"

	"svw.info/nonogram/internal/domain"
)

// Bounding-placement overlap: pack the runs as far left and as far
// right as the known cells allow. Every cell covered by a run in both
// extremes is covered under every valid placement, so it is filled.

// bumpStart slides the leftmost window of a run right: a known blank
// inside the window pushes the whole window past it, and a filled cell
// just after the window drags the window onto it, since ending next to
// a fill would merge two runs.
func bumpStart(cells []domain.CellState, start, length int) (int, error) {
	focus := start
	for focus < start+length {
		if focus >= len(cells) {
			return 0, fmt.Errorf("run of %d pushed past line end: %w", length, domain.ErrLineContradiction)
		}
		if cells[focus] == domain.Blank {
			start = focus + 1
		}
		focus++
	}
	for focus < len(cells) && cells[focus] == domain.Filled {
		focus++
	}
	return focus - length, nil
}

// bumpEnd is the mirror image of bumpStart, returning the exclusive
// end of the rightmost window.
func bumpEnd(cells []domain.CellState, last, length int) (int, error) {
	focus := last
	for focus > last-length {
		if focus < 0 {
			return 0, fmt.Errorf("run of %d pushed past line start: %w", length, domain.ErrLineContradiction)
		}
		if cells[focus] == domain.Blank {
			last = focus - 1
		}
		focus--
	}
	for focus >= 0 && cells[focus] == domain.Filled {
		focus--
	}
	return focus + length + 1, nil
}

// rangeStarts packs every run leftmost, in clue order.
func rangeStarts(cells []domain.CellState, clue domain.Clue) ([]int, error) {
	starts := make([]int, len(clue))
	start := 0
	for i, n := range clue {
		s, err := bumpStart(cells, start, n)
		if err != nil {
			return nil, err
		}
		starts[i] = s
		start = s + n + 1
	}
	return starts, nil
}

// rangeEnds packs every run rightmost and reports exclusive ends, in
// clue order.
func rangeEnds(cells []domain.CellState, clue domain.Clue) ([]int, error) {
	ends := make([]int, len(clue))
	last := len(cells) - 1
	for i := len(clue) - 1; i >= 0; i-- {
		if last < 0 {
			return nil, fmt.Errorf("run of %d pushed past line start: %w", clue[i], domain.ErrLineContradiction)
		}
		e, err := bumpEnd(cells, last, clue[i])
		if err != nil {
			return nil, err
		}
		ends[i] = e
		last = e - clue[i] - 2
	}
	return ends, nil
}

func applyOverlap(l *workLine, clue domain.Clue) error {
	if len(clue) == 0 {
		return nil
	}
	starts, err := rangeStarts(l.cells, clue)
	if err != nil {
		return err
	}
	ends, err := rangeEnds(l.cells, clue)
	if err != nil {
		return err
	}
	for i, n := range clue {
		lo, hi := starts[i], ends[i]
		if lo+n > hi {
			return fmt.Errorf("run %d of clue %v has no feasible placement: %w", i, clue, domain.ErrLineContradiction)
		}
		// The leftmost and rightmost windows overlap in [hi-n, lo+n).
		for j := hi - n; j < lo+n; j++ {
			if err := l.set(j, domain.Filled, domain.TechniqueOverlap); err != nil {
				return err
			}
		}
	}
	return nil
}
