package periodmock

import (
	"context"

	domain "github.com/barakhubs/sacco-ledger/internal/domain/period"
)

// Repo is a function-backed mock that satisfies domain.Repository.
// Fill in the function fields a test needs; unfilled ones return
// context.Canceled so misuse is loud.
type Repo struct {
	CreateFn                 func(ctx context.Context, p *domain.Period) error
	GetByPeriodIDFn          func(ctx context.Context, periodID string) (*domain.Period, error)
	GetByPeriodIDForUpdateFn func(ctx context.Context, periodID string) (*domain.Period, error)
	GetByIDFn                func(ctx context.Context, id uint64) (*domain.Period, error)
	GetByYearSequenceFn      func(ctx context.Context, year, sequence int) (*domain.Period, error)
	GetActiveFn              func(ctx context.Context) (*domain.Period, error)
	ListByYearFn             func(ctx context.Context, year int) ([]domain.Period, error)
	ListFn                   func(ctx context.Context) ([]domain.Period, error)
	SaveFn                   func(ctx context.Context, p *domain.Period) error
	DemoteActiveFn           func(ctx context.Context) error
	CountActiveFn            func(ctx context.Context) (int64, error)
}

var _ domain.Repository = (*Repo)(nil)

func (m *Repo) Create(ctx context.Context, p *domain.Period) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, p)
	}
	return nil
}

func (m *Repo) GetByPeriodID(ctx context.Context, periodID string) (*domain.Period, error) {
	if m.GetByPeriodIDFn != nil {
		return m.GetByPeriodIDFn(ctx, periodID)
	}
	return nil, context.Canceled
}

func (m *Repo) GetByPeriodIDForUpdate(ctx context.Context, periodID string) (*domain.Period, error) {
	if m.GetByPeriodIDForUpdateFn != nil {
		return m.GetByPeriodIDForUpdateFn(ctx, periodID)
	}
	return nil, context.Canceled
}

func (m *Repo) GetByID(ctx context.Context, id uint64) (*domain.Period, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, context.Canceled
}

func (m *Repo) GetByYearSequence(ctx context.Context, year, sequence int) (*domain.Period, error) {
	if m.GetByYearSequenceFn != nil {
		return m.GetByYearSequenceFn(ctx, year, sequence)
	}
	return nil, context.Canceled
}

func (m *Repo) GetActive(ctx context.Context) (*domain.Period, error) {
	if m.GetActiveFn != nil {
		return m.GetActiveFn(ctx)
	}
	return nil, context.Canceled
}

func (m *Repo) ListByYear(ctx context.Context, year int) ([]domain.Period, error) {
	if m.ListByYearFn != nil {
		return m.ListByYearFn(ctx, year)
	}
	return nil, context.Canceled
}

func (m *Repo) List(ctx context.Context) ([]domain.Period, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, context.Canceled
}

func (m *Repo) Save(ctx context.Context, p *domain.Period) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, p)
	}
	return nil
}

func (m *Repo) DemoteActive(ctx context.Context) error {
	if m.DemoteActiveFn != nil {
		return m.DemoteActiveFn(ctx)
	}
	return nil
}

func (m *Repo) CountActive(ctx context.Context) (int64, error) {
	if m.CountActiveFn != nil {
		return m.CountActiveFn(ctx)
	}
	return 0, context.Canceled
}
