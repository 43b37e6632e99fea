package interestmock

import (
	"context"

	"github.com/shopspring/decimal"

	domain "github.com/barakhubs/sacco-ledger/internal/domain/interest"
)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateDistributionFn          func(ctx context.Context, d *domain.Distribution) error
	ListByLoanFn                  func(ctx context.Context, loanID uint64) ([]domain.Distribution, error)
	SumPoolForPeriodsFn           func(ctx context.Context, periodIDs []uint64) (decimal.Decimal, error)
	SumUnclaimedForMemberPeriodFn func(ctx context.Context, memberID string, periodID uint64) (decimal.Decimal, error)
	MarkClaimedForMemberPeriodFn  func(ctx context.Context, memberID string, periodID uint64) error
	ArchiveDistributionsByLoanFn  func(ctx context.Context, loanID uint64) error
	CreateYearEndFn               func(ctx context.Context, y *domain.YearEndShareout) error
	GetYearEndFn                  func(ctx context.Context, year int) (*domain.YearEndShareout, error)
	CreateShareFn                 func(ctx context.Context, s *domain.IndividualYearShare) error
	GetShareByShareIDFn           func(ctx context.Context, shareID string) (*domain.IndividualYearShare, error)
	SaveShareFn                   func(ctx context.Context, s *domain.IndividualYearShare) error
	ListSharesByShareoutFn        func(ctx context.Context, yearShareoutID uint64) ([]domain.IndividualYearShare, error)
}

var _ domain.Repository = (*Repo)(nil)

func (m *Repo) CreateDistribution(ctx context.Context, d *domain.Distribution) error {
	if m.CreateDistributionFn != nil {
		return m.CreateDistributionFn(ctx, d)
	}
	return nil
}

func (m *Repo) ListByLoan(ctx context.Context, loanID uint64) ([]domain.Distribution, error) {
	if m.ListByLoanFn != nil {
		return m.ListByLoanFn(ctx, loanID)
	}
	return nil, context.Canceled
}

func (m *Repo) SumPoolForPeriods(ctx context.Context, periodIDs []uint64) (decimal.Decimal, error) {
	if m.SumPoolForPeriodsFn != nil {
		return m.SumPoolForPeriodsFn(ctx, periodIDs)
	}
	return decimal.Zero, context.Canceled
}

func (m *Repo) SumUnclaimedForMemberPeriod(ctx context.Context, memberID string, periodID uint64) (decimal.Decimal, error) {
	if m.SumUnclaimedForMemberPeriodFn != nil {
		return m.SumUnclaimedForMemberPeriodFn(ctx, memberID, periodID)
	}
	return decimal.Zero, context.Canceled
}

func (m *Repo) MarkClaimedForMemberPeriod(ctx context.Context, memberID string, periodID uint64) error {
	if m.MarkClaimedForMemberPeriodFn != nil {
		return m.MarkClaimedForMemberPeriodFn(ctx, memberID, periodID)
	}
	return nil
}

func (m *Repo) ArchiveDistributionsByLoan(ctx context.Context, loanID uint64) error {
	if m.ArchiveDistributionsByLoanFn != nil {
		return m.ArchiveDistributionsByLoanFn(ctx, loanID)
	}
	return nil
}

func (m *Repo) CreateYearEnd(ctx context.Context, y *domain.YearEndShareout) error {
	if m.CreateYearEndFn != nil {
		return m.CreateYearEndFn(ctx, y)
	}
	return nil
}

func (m *Repo) GetYearEnd(ctx context.Context, year int) (*domain.YearEndShareout, error) {
	if m.GetYearEndFn != nil {
		return m.GetYearEndFn(ctx, year)
	}
	return nil, context.Canceled
}

func (m *Repo) CreateShare(ctx context.Context, s *domain.IndividualYearShare) error {
	if m.CreateShareFn != nil {
		return m.CreateShareFn(ctx, s)
	}
	return nil
}

func (m *Repo) GetShareByShareID(ctx context.Context, shareID string) (*domain.IndividualYearShare, error) {
	if m.GetShareByShareIDFn != nil {
		return m.GetShareByShareIDFn(ctx, shareID)
	}
	return nil, context.Canceled
}

func (m *Repo) SaveShare(ctx context.Context, s *domain.IndividualYearShare) error {
	if m.SaveShareFn != nil {
		return m.SaveShareFn(ctx, s)
	}
	return nil
}

func (m *Repo) ListSharesByShareout(ctx context.Context, yearShareoutID uint64) ([]domain.IndividualYearShare, error) {
	if m.ListSharesByShareoutFn != nil {
		return m.ListSharesByShareoutFn(ctx, yearShareoutID)
	}
	return nil, context.Canceled
}
