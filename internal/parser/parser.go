// Package parser reads and writes the one-line puzzle encoding:
//
//	[colClues|rowClues]
//	[colClues|rowClues|grid]
//
// A clue list joins clues with ';', a clue joins run lengths with ','
// (an empty clue is an empty string). Grid rows join with ';' and use
// one character per cell: '#' filled, 'x' blank, '.' unknown, '!' for
// a cell recorded as both filled and blank.
package parser

import (
	"fmt"
	"strconv"
	"strings"

	"svw.info/nonogram/internal/domain"
)

// Parse decodes one puzzle. Conflict ('!') cells are kept on the
// puzzle's Conflicts list so validation can reject them with the same
// taxonomy as a mid-solve conflict.
func Parse(input string) (*domain.Puzzle, error) {
	s := strings.TrimSpace(input)
	if !strings.HasPrefix(s, "[") || !strings.HasSuffix(s, "]") {
		return nil, fmt.Errorf("puzzle must be bracketed, got %q", input)
	}
	parts := strings.Split(s[1:len(s)-1], "|")
	if len(parts) != 2 && len(parts) != 3 {
		return nil, fmt.Errorf("want 2 or 3 '|'-separated sections, got %d", len(parts))
	}

	colClues, err := parseClueList(parts[0])
	if err != nil {
		return nil, fmt.Errorf("column clues: %w", err)
	}
	rowClues, err := parseClueList(parts[1])
	if err != nil {
		return nil, fmt.Errorf("row clues: %w", err)
	}
	p := &domain.Puzzle{ColClues: colClues, RowClues: rowClues}

	if len(parts) == 3 {
		if err := parseGrid(p, parts[2]); err != nil {
			return nil, err
		}
	}
	return p, nil
}

func parseClueList(s string) ([]domain.Clue, error) {
	clues := strings.Split(s, ";")
	out := make([]domain.Clue, len(clues))
	for i, c := range clues {
		if c == "" {
			out[i] = domain.Clue{}
			continue
		}
		for _, num := range strings.Split(c, ",") {
			n, err := strconv.Atoi(num)
			if err != nil {
				return nil, fmt.Errorf("clue %d: bad run length %q", i, num)
			}
			out[i] = append(out[i], n)
		}
	}
	return out, nil
}

func parseGrid(p *domain.Puzzle, s string) error {
	rows := strings.Split(s, ";")
	if len(rows) != p.Height() {
		return fmt.Errorf("grid has %d rows but there are %d row clues", len(rows), p.Height())
	}
	p.Prefill = make([][]domain.CellState, len(rows))
	for y, row := range rows {
		if len(row) != p.Width() {
			return fmt.Errorf("grid row %d has %d cells but there are %d column clues", y, len(row), p.Width())
		}
		p.Prefill[y] = make([]domain.CellState, len(row))
		for x, ch := range row {
			switch ch {
			case '#':
				p.Prefill[y][x] = domain.Filled
			case 'x':
				p.Prefill[y][x] = domain.Blank
			case '.':
				p.Prefill[y][x] = domain.Unknown
			case '!':
				p.Conflicts = append(p.Conflicts, domain.CellCoord{Row: y, Col: x})
			default:
				return fmt.Errorf("grid row %d: unknown cell %q", y, string(ch))
			}
		}
	}
	return nil
}

// Encode writes a puzzle back to its one-line form, round-tripping
// Parse output.
func Encode(p *domain.Puzzle) string {
	var b strings.Builder
	b.WriteByte('[')
	writeClueList(&b, p.ColClues)
	b.WriteByte('|')
	writeClueList(&b, p.RowClues)
	if p.Prefill != nil {
		b.WriteByte('|')
		for y, row := range p.Prefill {
			if y > 0 {
				b.WriteByte(';')
			}
			for x, s := range row {
				b.WriteByte(cellChar(s, conflictAt(p, x, y)))
			}
		}
	}
	b.WriteByte(']')
	return b.String()
}

// EncodeGrid writes a grid's clues and current cell states as one
// line; this is the brief display theme.
func EncodeGrid(g *domain.Grid) string {
	var b strings.Builder
	b.WriteByte('[')
	for x := 0; x < g.Width(); x++ {
		if x > 0 {
			b.WriteByte(';')
		}
		writeClue(&b, g.ColClue(x))
	}
	b.WriteByte('|')
	for y := 0; y < g.Height(); y++ {
		if y > 0 {
			b.WriteByte(';')
		}
		writeClue(&b, g.RowClue(y))
	}
	b.WriteByte('|')
	for y := 0; y < g.Height(); y++ {
		if y > 0 {
			b.WriteByte(';')
		}
		for x := 0; x < g.Width(); x++ {
			b.WriteByte(cellChar(g.At(x, y), false))
		}
	}
	b.WriteByte(']')
	return b.String()
}

func writeClueList(b *strings.Builder, clues []domain.Clue) {
	for i, c := range clues {
		if i > 0 {
			b.WriteByte(';')
		}
		writeClue(b, c)
	}
}

func writeClue(b *strings.Builder, c domain.Clue) {
	for i, n := range c {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(n))
	}
}

func conflictAt(p *domain.Puzzle, x, y int) bool {
	for _, c := range p.Conflicts {
		if c.Col == x && c.Row == y {
			return true
		}
	}
	return false
}

func cellChar(s domain.CellState, conflict bool) byte {
	if conflict {
		return '!'
	}
	switch s {
	case domain.Filled:
		return '#'
	case domain.Blank:
		return 'x'
	default:
		return '.'
	}
}
