package ports

import (
	"context"
	"time"

	"svw.info/nonogram/internal/domain"
)

// Stats captures performance characteristics of a solve.
type Stats struct {
	Passes     int
	Inferences int
	Duration   time.Duration
}

// Solver runs the multi-pass inference engine over one puzzle. On a
// contradiction the returned error wraps the fatal kind and the
// solution still carries the partial trace.
type Solver interface {
	Solve(ctx context.Context, p *domain.Puzzle) (*domain.Solution, Stats, error)
}

// Validator performs the load-time checks: clue fit and pre-fill
// consistency.
type Validator interface {
	Validate(ctx context.Context, p *domain.Puzzle) error
}

// Storage persists and retrieves solve records as JSON.
type Storage interface {
	Save(ctx context.Context, rec *domain.Record) error
	Load(ctx context.Context, id string) (*domain.Record, error)
	List(ctx context.Context) ([]domain.RecordMeta, error)
}
