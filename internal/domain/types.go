package domain

// Clue is the ordered run lengths for one line. Consecutive runs are
// separated by at least one blank cell; an empty clue means the whole
// line is blank.
type Clue []int

// MinLen returns the shortest line the clue fits into: the runs plus
// one separating blank between each pair.
func (c Clue) MinLen() int {
	if len(c) == 0 {
		return 0
	}
	sum := 0
	for _, n := range c {
		sum += n
	}
	return sum + len(c) - 1
}

// CellCoord identifies a cell on the grid.
type CellCoord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Inference is one forced cell assignment produced by the line solver,
// immutable once created.
type Inference struct {
	Orientation Orientation `json:"orientation"`
	Line        int         `json:"line"`
	Pos         int         `json:"pos"`
	State       CellState   `json:"state"`
	Technique   Technique   `json:"technique"`
}

// Pass is the ordered inference list of one sweep over all rows then
// all columns.
type Pass []Inference

// Trace is the ordered passes of one solve, for the renderer.
type Trace []Pass

// Inferences counts the inferences across all passes.
func (t Trace) Inferences() int {
	total := 0
	for _, p := range t {
		total += len(p)
	}
	return total
}

// LineRef names one line of the grid.
type LineRef struct {
	Orientation Orientation `json:"orientation"`
	Index       int         `json:"index"`
}

// Puzzle is a nonogram as supplied by a puzzle source: clues plus
// optional pre-filled cells. Conflicts lists pre-filled cells whose
// supplied state was self-contradictory; they are rejected during
// validation, before the first pass.
type Puzzle struct {
	ColClues  []Clue        `json:"colClues"`
	RowClues  []Clue        `json:"rowClues"`
	Prefill   [][]CellState `json:"prefill,omitempty"`
	Conflicts []CellCoord   `json:"conflicts,omitempty"`
}

// Width returns the number of columns.
func (p *Puzzle) Width() int { return len(p.ColClues) }

// Height returns the number of rows.
func (p *Puzzle) Height() int { return len(p.RowClues) }

// Solution is the read-only outcome of a solve: the final grid, the
// full trace, and where the solve stopped.
type Solution struct {
	Status SolveStatus   `json:"status"`
	Grid   *Grid         `json:"-"`
	Cells  [][]CellState `json:"cells"`
	Trace  Trace         `json:"trace"`
	Failed *LineRef      `json:"failed,omitempty"`
}

// Record is a persisted puzzle with its solve outcome and metadata.
type Record struct {
	ID        string    `json:"id,omitempty"`
	Name      string    `json:"name,omitempty"`
	Source    string    `json:"source"`
	Puzzle    *Puzzle   `json:"puzzle,omitempty"`
	Solution  *Solution `json:"solution,omitempty"`
	CreatedAt int64     `json:"createdAt,omitempty"`
}

// RecordMeta is a lightweight listing entry.
type RecordMeta struct {
	ID        string `json:"id"`
	Name      string `json:"name,omitempty"`
	CreatedAt int64  `json:"createdAt"`
}
