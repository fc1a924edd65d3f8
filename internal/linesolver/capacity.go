package linesolver

import (
	"fmt"

	"svw.info/nonogram/internal/domain"
)

// Run-capacity forcing: enumerate every placement of the clue that is
// consistent with the known cells, then intersect. A cell covered by a
// run in all placements is filled; a cell no placement can reach is
// blanked. Zero placements means the clue is unsatisfiable.

func applyCapacity(l *workLine, clue domain.Clue) error {
	n := len(l.cells)
	e := &enumerator{
		cells:        l.cells,
		clue:         clue,
		alwaysFilled: make([]bool, n),
		alwaysBlank:  make([]bool, n),
	}
	for i := 0; i < n; i++ {
		e.alwaysFilled[i] = true
		e.alwaysBlank[i] = true
	}
	e.walk(0, 0)
	if !e.found {
		return fmt.Errorf("clue %v admits no placement on the line: %w", clue, domain.ErrLineContradiction)
	}
	for i := 0; i < n; i++ {
		switch {
		case e.alwaysFilled[i]:
			if err := l.set(i, domain.Filled, domain.TechniqueCapacity); err != nil {
				return err
			}
		case e.alwaysBlank[i]:
			if err := l.set(i, domain.Blank, domain.TechniqueCapacity); err != nil {
				return err
			}
		}
	}
	return nil
}

type enumerator struct {
	cells []domain.CellState
	clue  domain.Clue

	alwaysFilled []bool
	alwaysBlank  []bool
	pos          []int
	found        bool
}

// walk places run `depth` at every admissible start from `start` on
// and recurses for the rest of the clue.
func (e *enumerator) walk(depth, start int) {
	if depth == len(e.clue) {
		// No run may be left of an already filled cell.
		for i := start; i < len(e.cells); i++ {
			if e.cells[i] == domain.Filled {
				return
			}
		}
		e.record()
		return
	}
	n := e.clue[depth]
	for s := start; s+n <= len(e.cells); s++ {
		if s > start && e.cells[s-1] == domain.Filled {
			// A fill left behind here can never be covered later.
			break
		}
		if e.fits(s, n) {
			e.pos = append(e.pos, s)
			e.walk(depth+1, s+n+1)
			e.pos = e.pos[:len(e.pos)-1]
		}
	}
}

// fits reports whether a run of length n may occupy [s, s+n): no known
// blank inside, and no fill immediately after that would extend it.
func (e *enumerator) fits(s, n int) bool {
	for i := s; i < s+n; i++ {
		if e.cells[i] == domain.Blank {
			return false
		}
	}
	if s+n < len(e.cells) && e.cells[s+n] == domain.Filled {
		return false
	}
	return true
}

func (e *enumerator) record() {
	e.found = true
	prev := 0
	for depth, s := range e.pos {
		for i := prev; i < s; i++ {
			e.alwaysFilled[i] = false
		}
		for i := s; i < s+e.clue[depth]; i++ {
			e.alwaysBlank[i] = false
		}
		prev = s + e.clue[depth]
	}
	for i := prev; i < len(e.cells); i++ {
		e.alwaysFilled[i] = false
	}
}
