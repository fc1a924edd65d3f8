package usecase

import (
	"context"
	"errors"

	"svw.info/nonogram/internal/domain"
	"svw.info/nonogram/internal/ports"
)

// Service wires the engine's collaborators behind one boundary.
type Service struct {
	Solver    ports.Solver
	Validator ports.Validator
	Storage   ports.Storage
}

func NewService(s ports.Solver, v ports.Validator, st ports.Storage) *Service {
	return &Service{Solver: s, Validator: v, Storage: st}
}

var errNotConfigured = errors.New("usecase dependency not configured")

// Solve validates the puzzle and runs the pass scheduler. Load-time
// failures return a nil solution; a mid-solve contradiction returns
// both the partial solution and the error.
func (u *Service) Solve(ctx context.Context, p *domain.Puzzle) (*domain.Solution, ports.Stats, error) {
	if u.Solver == nil || u.Validator == nil {
		return nil, ports.Stats{}, errNotConfigured
	}
	if err := u.Validator.Validate(ctx, p); err != nil {
		return nil, ports.Stats{}, err
	}
	return u.Solver.Solve(ctx, p)
}

func (u *Service) Validate(ctx context.Context, p *domain.Puzzle) error {
	if u.Validator == nil {
		return errNotConfigured
	}
	return u.Validator.Validate(ctx, p)
}

// Persistence
func (u *Service) Save(ctx context.Context, rec *domain.Record) error {
	if u.Storage == nil {
		return errNotConfigured
	}
	return u.Storage.Save(ctx, rec)
}

func (u *Service) Load(ctx context.Context, id string) (*domain.Record, error) {
	if u.Storage == nil {
		return nil, errNotConfigured
	}
	return u.Storage.Load(ctx, id)
}

func (u *Service) List(ctx context.Context) ([]domain.RecordMeta, error) {
	if u.Storage == nil {
		return nil, errNotConfigured
	}
	return u.Storage.List(ctx)
}
