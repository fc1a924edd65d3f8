package domain

import "fmt"

// CellState is what is currently known about one grid cell.
type CellState uint8

const (
	Unknown CellState = iota
	Filled
	Blank
)

func (s CellState) String() string {
	switch s {
	case Filled:
		return "filled"
	case Blank:
		return "blank"
	default:
		return "unknown"
	}
}

func (s CellState) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

func (s *CellState) UnmarshalText(b []byte) error {
	switch string(b) {
	case "filled":
		*s = Filled
	case "blank":
		*s = Blank
	case "unknown", "":
		*s = Unknown
	default:
		return fmt.Errorf("unknown cell state %q", b)
	}
	return nil
}

// Orientation selects the rows or the columns of a grid.
type Orientation uint8

const (
	Horizontal Orientation = iota // rows
	Vertical                      // columns
)

func (o Orientation) String() string {
	if o == Vertical {
		return "column"
	}
	return "row"
}

func (o Orientation) MarshalText() ([]byte, error) { return []byte(o.String()), nil }

func (o *Orientation) UnmarshalText(b []byte) error {
	switch string(b) {
	case "row":
		*o = Horizontal
	case "column":
		*o = Vertical
	default:
		return fmt.Errorf("unknown orientation %q", b)
	}
	return nil
}

// Technique identifies the reasoning rule that justified an inference.
// The set is closed so renderers can format each tag without the engine
// depending on presentation concerns.
type Technique uint8

const (
	TechniqueOverlap  Technique = iota // bounding-placement overlap
	TechniqueCapacity                  // run-capacity forcing
)

func (t Technique) String() string {
	if t == TechniqueCapacity {
		return "capacity"
	}
	return "overlap"
}

func (t Technique) MarshalText() ([]byte, error) { return []byte(t.String()), nil }

func (t *Technique) UnmarshalText(b []byte) error {
	switch string(b) {
	case "overlap":
		*t = TechniqueOverlap
	case "capacity":
		*t = TechniqueCapacity
	default:
		return fmt.Errorf("unknown technique %q", b)
	}
	return nil
}

// SolveStatus is the pass scheduler's state.
type SolveStatus uint8

const (
	StatusRunning SolveStatus = iota
	StatusFixpoint
	StatusContradiction
)

func (s SolveStatus) String() string {
	switch s {
	case StatusFixpoint:
		return "fixpoint"
	case StatusContradiction:
		return "contradiction"
	default:
		return "running"
	}
}

func (s SolveStatus) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

func (s *SolveStatus) UnmarshalText(b []byte) error {
	switch string(b) {
	case "running":
		*s = StatusRunning
	case "fixpoint":
		*s = StatusFixpoint
	case "contradiction":
		*s = StatusContradiction
	default:
		return fmt.Errorf("unknown solve status %q", b)
	}
	return nil
}
