package validator

import (
	"context"
	"fmt"

	"svw.info/nonogram/internal/domain"
)

// LoadValidator performs the checks that must pass before the first
// solving pass: every clue fits its line and no pre-filled cell is
// self-contradictory.
type LoadValidator struct{}

func New() *LoadValidator { return &LoadValidator{} }

func (v *LoadValidator) Validate(ctx context.Context, p *domain.Puzzle) error {
	w, h := p.Width(), p.Height()
	if w == 0 || h == 0 {
		return fmt.Errorf("puzzle has no %s clues: %w", side(w == 0), domain.ErrMalformedClue)
	}
	for y, clue := range p.RowClues {
		if err := checkClue(clue, w); err != nil {
			return fmt.Errorf("row %d: %w", y, err)
		}
	}
	for x, clue := range p.ColClues {
		if err := checkClue(clue, h); err != nil {
			return fmt.Errorf("column %d: %w", x, err)
		}
	}
	if p.Prefill != nil {
		if len(p.Prefill) != h {
			return fmt.Errorf("pre-fill has %d rows, want %d: %w", len(p.Prefill), h, domain.ErrMalformedClue)
		}
		for y, row := range p.Prefill {
			if len(row) != w {
				return fmt.Errorf("pre-fill row %d has %d cells, want %d: %w", y, len(row), w, domain.ErrMalformedClue)
			}
		}
	}
	if len(p.Conflicts) > 0 {
		c := p.Conflicts[0]
		return fmt.Errorf("pre-filled cell (%d,%d) is both filled and blank: %w", c.Col, c.Row, domain.ErrStateConflict)
	}
	return nil
}

func checkClue(c domain.Clue, length int) error {
	for _, n := range c {
		if n <= 0 {
			return fmt.Errorf("run length %d is not positive: %w", n, domain.ErrMalformedClue)
		}
	}
	if min := c.MinLen(); min > length {
		return fmt.Errorf("clue %v needs %d cells but the line has %d: %w", c, min, length, domain.ErrMalformedClue)
	}
	return nil
}

func side(cols bool) string {
	if cols {
		return "column"
	}
	return "row"
}
