package savingsmock

import (
	"context"

	"github.com/shopspring/decimal"

	domain "github.com/barakhubs/sacco-ledger/internal/domain/savings"
)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateTargetFn             func(ctx context.Context, t *domain.Target) error
	GetTargetFn                func(ctx context.Context, memberID string, periodID uint64) (*domain.Target, error)
	CreateDepositFn            func(ctx context.Context, d *domain.Deposit) error
	GetByDepositIDFn           func(ctx context.Context, depositID string) (*domain.Deposit, error)
	SaveDepositFn              func(ctx context.Context, d *domain.Deposit) error
	ListByMemberPeriodFn       func(ctx context.Context, memberID string, periodID uint64) ([]domain.Deposit, error)
	SumForPeriodFn             func(ctx context.Context, memberID string, periodID uint64) (decimal.Decimal, error)
	SumUnsharedForPeriodFn     func(ctx context.Context, memberID string, periodID uint64) (decimal.Decimal, error)
	SumAvailableFn             func(ctx context.Context, memberID string) (decimal.Decimal, error)
	TotalsByMemberForPeriodsFn func(ctx context.Context, periodIDs []uint64) ([]domain.MemberTotal, error)
	MarkSharedOutForPeriodFn   func(ctx context.Context, memberID string, periodID uint64) error
}

var _ domain.Repository = (*Repo)(nil)

func (m *Repo) CreateTarget(ctx context.Context, t *domain.Target) error {
	if m.CreateTargetFn != nil {
		return m.CreateTargetFn(ctx, t)
	}
	return nil
}

func (m *Repo) GetTarget(ctx context.Context, memberID string, periodID uint64) (*domain.Target, error) {
	if m.GetTargetFn != nil {
		return m.GetTargetFn(ctx, memberID, periodID)
	}
	return nil, context.Canceled
}

func (m *Repo) CreateDeposit(ctx context.Context, d *domain.Deposit) error {
	if m.CreateDepositFn != nil {
		return m.CreateDepositFn(ctx, d)
	}
	return nil
}

func (m *Repo) GetByDepositID(ctx context.Context, depositID string) (*domain.Deposit, error) {
	if m.GetByDepositIDFn != nil {
		return m.GetByDepositIDFn(ctx, depositID)
	}
	return nil, context.Canceled
}

func (m *Repo) SaveDeposit(ctx context.Context, d *domain.Deposit) error {
	if m.SaveDepositFn != nil {
		return m.SaveDepositFn(ctx, d)
	}
	return nil
}

func (m *Repo) ListByMemberPeriod(ctx context.Context, memberID string, periodID uint64) ([]domain.Deposit, error) {
	if m.ListByMemberPeriodFn != nil {
		return m.ListByMemberPeriodFn(ctx, memberID, periodID)
	}
	return nil, context.Canceled
}

func (m *Repo) SumForPeriod(ctx context.Context, memberID string, periodID uint64) (decimal.Decimal, error) {
	if m.SumForPeriodFn != nil {
		return m.SumForPeriodFn(ctx, memberID, periodID)
	}
	return decimal.Zero, context.Canceled
}

func (m *Repo) SumUnsharedForPeriod(ctx context.Context, memberID string, periodID uint64) (decimal.Decimal, error) {
	if m.SumUnsharedForPeriodFn != nil {
		return m.SumUnsharedForPeriodFn(ctx, memberID, periodID)
	}
	return decimal.Zero, context.Canceled
}

func (m *Repo) SumAvailable(ctx context.Context, memberID string) (decimal.Decimal, error) {
	if m.SumAvailableFn != nil {
		return m.SumAvailableFn(ctx, memberID)
	}
	return decimal.Zero, context.Canceled
}

func (m *Repo) TotalsByMemberForPeriods(ctx context.Context, periodIDs []uint64) ([]domain.MemberTotal, error) {
	if m.TotalsByMemberForPeriodsFn != nil {
		return m.TotalsByMemberForPeriodsFn(ctx, periodIDs)
	}
	return nil, context.Canceled
}

func (m *Repo) MarkSharedOutForPeriod(ctx context.Context, memberID string, periodID uint64) error {
	if m.MarkSharedOutForPeriodFn != nil {
		return m.MarkSharedOutForPeriodFn(ctx, memberID, periodID)
	}
	return nil
}
