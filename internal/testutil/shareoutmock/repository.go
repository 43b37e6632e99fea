package shareoutmock

import (
	"context"

	domain "github.com/barakhubs/sacco-ledger/internal/domain/shareout"
)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateFn                     func(ctx context.Context, d *domain.Decision) error
	GetByMemberPeriodFn          func(ctx context.Context, memberID string, periodID uint64) (*domain.Decision, error)
	GetByMemberPeriodForUpdateFn func(ctx context.Context, memberID string, periodID uint64) (*domain.Decision, error)
	SaveFn                       func(ctx context.Context, d *domain.Decision) error
	ListByPeriodFn               func(ctx context.Context, periodID uint64) ([]domain.Decision, error)
}

var _ domain.Repository = (*Repo)(nil)

func (m *Repo) Create(ctx context.Context, d *domain.Decision) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, d)
	}
	return nil
}

func (m *Repo) GetByMemberPeriod(ctx context.Context, memberID string, periodID uint64) (*domain.Decision, error) {
	if m.GetByMemberPeriodFn != nil {
		return m.GetByMemberPeriodFn(ctx, memberID, periodID)
	}
	return nil, context.Canceled
}

func (m *Repo) GetByMemberPeriodForUpdate(ctx context.Context, memberID string, periodID uint64) (*domain.Decision, error) {
	if m.GetByMemberPeriodForUpdateFn != nil {
		return m.GetByMemberPeriodForUpdateFn(ctx, memberID, periodID)
	}
	return nil, context.Canceled
}

func (m *Repo) Save(ctx context.Context, d *domain.Decision) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, d)
	}
	return nil
}

func (m *Repo) ListByPeriod(ctx context.Context, periodID uint64) ([]domain.Decision, error) {
	if m.ListByPeriodFn != nil {
		return m.ListByPeriodFn(ctx, periodID)
	}
	return nil, context.Canceled
}
