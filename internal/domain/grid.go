package domain

import "fmt"

// Grid is the mutable puzzle state: dimensions, per-cell state and
// per-line clues. It holds no solving logic; the line solver reads and
// writes it through LineView and Apply.
//
// Cells live in one flat array addressed by (row, col), so a row view
// and a column view of the same cell always agree.
type Grid struct {
	width  int
	height int

	rowClues []Clue
	colClues []Clue
	cells    []CellState
}

// NewGrid returns an all-Unknown grid sized by its clue lists.
func NewGrid(rowClues, colClues []Clue) *Grid {
	w, h := len(colClues), len(rowClues)
	return &Grid{
		width:    w,
		height:   h,
		rowClues: rowClues,
		colClues: colClues,
		cells:    make([]CellState, w*h),
	}
}

// NewGridFromPuzzle builds a grid and applies the puzzle's pre-filled
// cells. A pre-fill that conflicts with another wraps ErrStateConflict.
func NewGridFromPuzzle(p *Puzzle) (*Grid, error) {
	g := NewGrid(p.RowClues, p.ColClues)
	for y, row := range p.Prefill {
		for x, s := range row {
			if s == Unknown {
				continue
			}
			if err := g.set(x, y, s); err != nil {
				return nil, err
			}
		}
	}
	return g, nil
}

func (g *Grid) Width() int  { return g.width }
func (g *Grid) Height() int { return g.height }

func (g *Grid) index(x, y int) int {
	if x < 0 || x >= g.width || y < 0 || y >= g.height {
		panic(fmt.Sprintf("cell (%d,%d) out of %dx%d grid", x, y, g.width, g.height))
	}
	return y*g.width + x
}

// At returns the state of the cell at column x, row y.
func (g *Grid) At(x, y int) CellState { return g.cells[g.index(x, y)] }

// RowClue returns the clue of row y.
func (g *Grid) RowClue(y int) Clue { return g.rowClues[y] }

// ColClue returns the clue of column x.
func (g *Grid) ColClue(x int) Clue { return g.colClues[x] }

func (g *Grid) set(x, y int, s CellState) error {
	i := g.index(x, y)
	if old := g.cells[i]; old != Unknown && old != s {
		return fmt.Errorf("cell (%d,%d) already %v, cannot set %v: %w", x, y, old, s, ErrStateConflict)
	}
	g.cells[i] = s
	return nil
}

// Apply writes an inference's state into the named cell. A cell that
// already holds a different determined state signals ErrStateConflict.
func (g *Grid) Apply(inf Inference) error {
	x, y := inf.Pos, inf.Line
	if inf.Orientation == Vertical {
		x, y = inf.Line, inf.Pos
	}
	return g.set(x, y, inf.State)
}

// Line returns a view of one row or column. The view borrows the
// grid's storage; it must not outlive the solver invocation it was
// created for.
func (g *Grid) Line(o Orientation, index int) LineView {
	if o == Horizontal {
		if index < 0 || index >= g.height {
			panic(fmt.Sprintf("row %d out of %d", index, g.height))
		}
	} else {
		if index < 0 || index >= g.width {
			panic(fmt.Sprintf("column %d out of %d", index, g.width))
		}
	}
	return LineView{grid: g, orientation: o, index: index}
}

// Unknowns counts the cells still undetermined.
func (g *Grid) Unknowns() int {
	n := 0
	for _, s := range g.cells {
		if s == Unknown {
			n++
		}
	}
	return n
}

// Cells returns the grid contents as rows, for read-only consumers.
func (g *Grid) Cells() [][]CellState {
	rows := make([][]CellState, g.height)
	for y := 0; y < g.height; y++ {
		rows[y] = make([]CellState, g.width)
		for x := 0; x < g.width; x++ {
			rows[y][x] = g.At(x, y)
		}
	}
	return rows
}

// LineView exposes one row or column as an ordered cell sequence plus
// its clue. Both orientations address the same underlying storage, so
// a write through a row is visible through the crossing columns.
type LineView struct {
	grid        *Grid
	orientation Orientation
	index       int
}

// Len returns the number of cells in the line.
func (v LineView) Len() int {
	if v.orientation == Horizontal {
		return v.grid.width
	}
	return v.grid.height
}

// At returns the state of the line's i-th cell.
func (v LineView) At(i int) CellState {
	if v.orientation == Horizontal {
		return v.grid.At(i, v.index)
	}
	return v.grid.At(v.index, i)
}

// Clue returns the line's clue.
func (v LineView) Clue() Clue {
	if v.orientation == Horizontal {
		return v.grid.rowClues[v.index]
	}
	return v.grid.colClues[v.index]
}

// States copies the line's cell states in positional order.
func (v LineView) States() []CellState {
	out := make([]CellState, v.Len())
	for i := range out {
		out[i] = v.At(i)
	}
	return out
}

// Ref names the viewed line.
func (v LineView) Ref() LineRef {
	return LineRef{Orientation: v.orientation, Index: v.index}
}

// Inference builds an inference addressed to this line.
func (v LineView) Inference(pos int, s CellState, t Technique) Inference {
	return Inference{
		Orientation: v.orientation,
		Line:        v.index,
		Pos:         pos,
		State:       s,
		Technique:   t,
	}
}
