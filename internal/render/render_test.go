package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/nonogram/internal/domain"
)

func checkerboard(t *testing.T) *domain.Grid {
	t.Helper()
	g := domain.NewGrid([]domain.Clue{{1}, {1}}, []domain.Clue{{1}, {1}})
	cells := []domain.Inference{
		{Orientation: domain.Horizontal, Line: 0, Pos: 0, State: domain.Filled},
		{Orientation: domain.Horizontal, Line: 0, Pos: 1, State: domain.Blank},
		{Orientation: domain.Horizontal, Line: 1, Pos: 0, State: domain.Blank},
		{Orientation: domain.Horizontal, Line: 1, Pos: 1, State: domain.Filled},
	}
	for _, inf := range cells {
		require.NoError(t, g.Apply(inf))
	}
	return g
}

func TestParseTheme(t *testing.T) {
	for name, want := range map[string]Theme{
		"unicode": Unicode,
		"ASCII":   ASCII,
		" brief ": Brief,
		"":        Unicode,
	} {
		got, err := ParseTheme(name)
		require.NoError(t, err)
		assert.Equal(t, want, got, "theme %q", name)
	}
	_, err := ParseTheme("sepia")
	assert.Error(t, err)
}

func TestGridASCII(t *testing.T) {
	g := checkerboard(t)
	want := "" +
		"    1 1\n" +
		"  1 # x\n" +
		"  1 x #\n"
	assert.Equal(t, want, New(ASCII).Grid(g))
}

func TestGridUnicode(t *testing.T) {
	g := checkerboard(t)
	want := "" +
		"    1 1\n" +
		"  1 ■ ⨉\n" +
		"  1 ⨉ ■\n"
	assert.Equal(t, want, New(Unicode).Grid(g))
}

func TestGridBrief(t *testing.T) {
	g := checkerboard(t)
	assert.Equal(t, "[1;1|1;1|#x;x#]", New(Brief).Grid(g))
}

func TestGridStackedColumnClues(t *testing.T) {
	// Column 0 carries two runs, so the gutter is two lines tall and
	// column 1's single run sits on the bottom line.
	g := domain.NewGrid(
		[]domain.Clue{{1}, {1}, {1}},
		[]domain.Clue{{1, 1}, {1}},
	)
	want := "" +
		"    1  \n" +
		"    1 1\n" +
		"  1 . .\n" +
		"  1 . .\n" +
		"  1 . .\n"
	assert.Equal(t, want, New(ASCII).Grid(g))
}

func TestTrace(t *testing.T) {
	trace := domain.Trace{
		{
			{Orientation: domain.Horizontal, Line: 2, Pos: 1, State: domain.Filled, Technique: domain.TechniqueOverlap},
			{Orientation: domain.Vertical, Line: 0, Pos: 3, State: domain.Blank, Technique: domain.TechniqueCapacity},
		},
		{},
	}
	want := "" +
		"pass 1: 2 inferences\n" +
		"  row 2 cell 1 -> filled (overlap)\n" +
		"  column 0 cell 3 -> blank (capacity)\n" +
		"pass 2: 0 inferences\n"
	assert.Equal(t, want, New(ASCII).Trace(trace))

	assert.Equal(t,
		"pass 1: 2 inferences\npass 2: 0 inferences\n",
		New(Brief).Trace(trace))
}
