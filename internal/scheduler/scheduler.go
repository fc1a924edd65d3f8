package scheduler

import (
	"context"
	"fmt"
	"time"

	"svw.info/nonogram/internal/domain"
	"svw.info/nonogram/internal/ports"
)

// LineSolver is the per-line inference engine the scheduler drives.
type LineSolver interface {
	SolveLine(view domain.LineView) ([]domain.Inference, error)
}

// Scheduler sweeps the line solver over every row then every column of
// the grid, applying each inference immediately so later lines in the
// same pass see it, and repeats until a pass yields nothing (fixpoint)
// or a contradiction surfaces.
type Scheduler struct {
	lines LineSolver
}

func New(lines LineSolver) *Scheduler { return &Scheduler{lines: lines} }

// Solve implements ports.Solver. A contradiction stops the sweep
// mid-pass; the partial pass stays recorded and the returned error
// wraps the fatal kind.
func (s *Scheduler) Solve(ctx context.Context, p *domain.Puzzle) (*domain.Solution, ports.Stats, error) {
	start := time.Now()

	grid, err := domain.NewGridFromPuzzle(p)
	if err != nil {
		return nil, ports.Stats{Duration: time.Since(start)}, err
	}

	rec := &Recorder{}
	status := domain.StatusRunning
	var failed *domain.LineRef
	var solveErr error

sweep:
	for status == domain.StatusRunning {
		for _, o := range []domain.Orientation{domain.Horizontal, domain.Vertical} {
			count := grid.Height()
			if o == domain.Vertical {
				count = grid.Width()
			}
			for i := 0; i < count; i++ {
				if err := ctx.Err(); err != nil {
					solveErr = err
					break sweep
				}
				view := grid.Line(o, i)
				infs, err := s.lines.SolveLine(view)
				if err != nil {
					ref := view.Ref()
					failed = &ref
					status = domain.StatusContradiction
					solveErr = fmt.Errorf("%v %d: %w", o, i, err)
					break sweep
				}
				for _, inf := range infs {
					if err := grid.Apply(inf); err != nil {
						ref := view.Ref()
						failed = &ref
						status = domain.StatusContradiction
						solveErr = fmt.Errorf("%v %d: %w", o, i, err)
						break sweep
					}
					rec.Record(inf)
				}
			}
		}
		made := rec.CurrentLen()
		rec.EndPass()
		if made == 0 {
			status = domain.StatusFixpoint
		}
	}
	if status != domain.StatusFixpoint {
		// Seal the partial pass of a contradicted or canceled solve.
		rec.EndPass()
	}

	trace := rec.Trace()
	sol := &domain.Solution{
		Status: status,
		Grid:   grid,
		Cells:  grid.Cells(),
		Trace:  trace,
		Failed: failed,
	}
	stats := ports.Stats{
		Passes:     len(trace),
		Inferences: trace.Inferences(),
		Duration:   time.Since(start),
	}
	return sol, stats, solveErr
}
