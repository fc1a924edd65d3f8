// Package render turns grids and traces into text. It consumes the
// engine's read-only structures and never feeds anything back.
package render

import (
	"fmt"
	"strings"

	"svw.info/nonogram/internal/domain"
	"svw.info/nonogram/internal/parser"
)

// Theme selects the display style.
type Theme uint8

const (
	Unicode Theme = iota
	ASCII
	Brief
)

func ParseTheme(s string) (Theme, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "unicode", "":
		return Unicode, nil
	case "ascii":
		return ASCII, nil
	case "brief":
		return Brief, nil
	default:
		return Unicode, fmt.Errorf("unknown theme %q (want unicode, ascii or brief)", s)
	}
}

type Renderer struct {
	theme Theme
}

func New(theme Theme) *Renderer { return &Renderer{theme: theme} }

func (r *Renderer) Theme() Theme { return r.theme }

// Grid renders the current cell states. Unicode and ascii themes draw
// the board with clue gutters; brief re-encodes it as one line.
func (r *Renderer) Grid(g *domain.Grid) string {
	if r.theme == Brief {
		return parser.EncodeGrid(g)
	}
	glyphs := map[domain.CellState]rune{
		domain.Filled:  '■',
		domain.Blank:   '⨉',
		domain.Unknown: '·',
	}
	if r.theme == ASCII {
		glyphs = map[domain.CellState]rune{
			domain.Filled:  '#',
			domain.Blank:   'x',
			domain.Unknown: '.',
		}
	}

	maxCol := 0
	for x := 0; x < g.Width(); x++ {
		if n := len(g.ColClue(x)); n > maxCol {
			maxCol = n
		}
	}
	maxRow := 0
	for y := 0; y < g.Height(); y++ {
		if n := len(g.RowClue(y)); n > maxRow {
			maxRow = n
		}
	}

	var b strings.Builder
	// Column clues stacked above the board, bottom-aligned.
	for i := 0; i < maxCol; i++ {
		b.WriteString(strings.Repeat(" ", 3*maxRow))
		for x := 0; x < g.Width(); x++ {
			clue := g.ColClue(x)
			if len(clue) > maxCol-i-1 {
				fmt.Fprintf(&b, "%2d", clue[len(clue)-(maxCol-i)])
			} else {
				b.WriteString("  ")
			}
		}
		b.WriteByte('\n')
	}
	// Row clues right-aligned in a gutter, then the cells.
	for y := 0; y < g.Height(); y++ {
		clue := g.RowClue(y)
		for i := 0; i < maxRow; i++ {
			if len(clue) > maxRow-i-1 {
				fmt.Fprintf(&b, " %2d", clue[len(clue)-(maxRow-i)])
			} else {
				b.WriteString("   ")
			}
		}
		for x := 0; x < g.Width(); x++ {
			b.WriteByte(' ')
			b.WriteRune(glyphs[g.At(x, y)])
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// Pass lists one pass's inferences with their technique tags.
func (r *Renderer) Pass(idx int, p domain.Pass) string {
	var b strings.Builder
	fmt.Fprintf(&b, "pass %d: %d inferences\n", idx+1, len(p))
	if r.theme == Brief {
		return b.String()
	}
	for _, inf := range p {
		fmt.Fprintf(&b, "  %v %d cell %d -> %v (%v)\n",
			inf.Orientation, inf.Line, inf.Pos, inf.State, inf.Technique)
	}
	return b.String()
}

// Trace renders every pass of a solve.
func (r *Renderer) Trace(t domain.Trace) string {
	var b strings.Builder
	for i, p := range t {
		b.WriteString(r.Pass(i, p))
	}
	return b.String()
}
