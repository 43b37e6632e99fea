package savings

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/barakhubs/sacco-ledger/internal/domain/member"
	"github.com/barakhubs/sacco-ledger/internal/domain/period"
	"github.com/barakhubs/sacco-ledger/internal/domain/savings"
	"github.com/barakhubs/sacco-ledger/pkg/id"
	"github.com/barakhubs/sacco-ledger/pkg/money"
)

// monthsPerPeriod: a savings year is split into three periods of four months.
var monthsPerPeriod = decimal.NewFromInt(4)

type Usecase struct {
	repo    savings.Repository
	periods period.Repository
}

func NewUsecase(r savings.Repository, periods period.Repository) *Usecase {
	return &Usecase{repo: r, periods: periods}
}

func (u *Usecase) resolvePeriod(ctx context.Context, periodID string) (*period.Period, error) {
	p, err := u.periods.GetByPeriodID(ctx, periodID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, period.ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

// SetTarget derives the member's period target from their category; the
// amount is never caller-supplied. One target per member per period.
func (u *Usecase) SetTarget(ctx context.Context, in SetTargetInput) (*TargetDTO, error) {
	cat := member.Category(in.Category)
	if !cat.Valid() {
		return nil, member.ErrCategoryRequired
	}
	p, err := u.resolvePeriod(ctx, in.PeriodID)
	if err != nil {
		return nil, err
	}

	_, err = u.repo.GetTarget(ctx, in.MemberID, p.ID)
	switch {
	case err == nil:
		return nil, savings.ErrDuplicateTarget
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return nil, err
	}

	split := cat.TargetSplit()
	t := &savings.Target{
		TargetID:      id.NewID32(),
		MemberID:      in.MemberID,
		PeriodID:      p.ID,
		Category:      cat,
		MonthlyTarget: cat.MonthlyTarget(),
		MainShare:     split.Main,
		SocialShare:   split.Social,
		WelfareShare:  split.Welfare,
	}
	if err := u.repo.CreateTarget(ctx, t); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, savings.ErrDuplicateTarget
		}
		return nil, err
	}
	return &TargetDTO{
		TargetID:      t.TargetID,
		MemberID:      t.MemberID,
		PeriodID:      p.PeriodID,
		Category:      string(t.Category),
		MonthlyTarget: t.MonthlyTarget,
		MainShare:     t.MainShare,
		SocialShare:   t.SocialShare,
		WelfareShare:  t.WelfareShare,
	}, nil
}

// RecordDeposit appends a deposit against the active period.
func (u *Usecase) RecordDeposit(ctx context.Context, in RecordDepositInput) (*DepositDTO, error) {
	if !money.IsAmount(in.Amount) {
		return nil, savings.ErrInvalidAmount
	}
	p, err := u.resolvePeriod(ctx, in.PeriodID)
	if err != nil {
		return nil, err
	}
	if p.Status != period.StatusActive {
		return nil, period.ErrNotActive
	}

	savedOn := in.SavedOn
	if savedOn.IsZero() {
		savedOn = time.Now().UTC()
	}
	d := &savings.Deposit{
		DepositID:  id.NewID32(),
		MemberID:   in.MemberID,
		PeriodID:   p.ID,
		Amount:     in.Amount,
		SavedOn:    savedOn.UTC(),
		RecordedBy: in.RecorderID,
	}
	if err := u.repo.CreateDeposit(ctx, d); err != nil {
		return nil, err
	}
	return depositDTO(d, p.PeriodID), nil
}

func depositDTO(d *savings.Deposit, periodID string) *DepositDTO {
	return &DepositDTO{
		DepositID:   d.DepositID,
		MemberID:    d.MemberID,
		PeriodID:    periodID,
		Amount:      d.Amount,
		SavedOn:     d.SavedOn,
		RecordedBy:  d.RecordedBy,
		SharedOut:   d.SharedOut,
		SharedOutAt: d.SharedOutAt,
	}
}

// QuarterTotal sums every deposit for the pair, shared out or not.
func (u *Usecase) QuarterTotal(ctx context.Context, memberID, periodID string) (decimal.Decimal, error) {
	p, err := u.resolvePeriod(ctx, periodID)
	if err != nil {
		return decimal.Zero, err
	}
	return u.repo.SumForPeriod(ctx, memberID, p.ID)
}

// AvailableBalance sums unshared deposits across all periods.
func (u *Usecase) AvailableBalance(ctx context.Context, memberID string) (decimal.Decimal, error) {
	return u.repo.SumAvailable(ctx, memberID)
}

// ShareOutDeposit withdraws a single deposit once its period has closed.
func (u *Usecase) ShareOutDeposit(ctx context.Context, depositID string) (*DepositDTO, error) {
	d, err := u.repo.GetByDepositID(ctx, depositID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, savings.ErrDepositNotFound
		}
		return nil, err
	}
	if d.SharedOut {
		return nil, savings.ErrAlreadySharedOut
	}
	p, err := u.periods.GetByID(ctx, d.PeriodID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, period.ErrNotFound
		}
		return nil, err
	}
	if p.Status != period.StatusCompleted {
		return nil, period.ErrNotCompleted
	}
	now := time.Now().UTC()
	d.SharedOut = true
	d.SharedOutAt = &now
	if err := u.repo.SaveDeposit(ctx, d); err != nil {
		return nil, err
	}
	return depositDTO(d, p.PeriodID), nil
}

// MemberSummary reports target-vs-saved progress for one member/period.
func (u *Usecase) MemberSummary(ctx context.Context, memberID, periodID string) (*SummaryDTO, error) {
	p, err := u.resolvePeriod(ctx, periodID)
	if err != nil {
		return nil, err
	}
	t, err := u.repo.GetTarget(ctx, memberID, p.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, savings.ErrTargetNotFound
		}
		return nil, err
	}
	saved, err := u.repo.SumForPeriod(ctx, memberID, p.ID)
	if err != nil {
		return nil, err
	}
	quarterTarget := t.MonthlyTarget.Mul(monthsPerPeriod)
	remaining := quarterTarget.Sub(saved)
	if remaining.IsNegative() {
		remaining = decimal.Zero
	}
	return &SummaryDTO{
		MemberID:      memberID,
		PeriodID:      p.PeriodID,
		MonthlyTarget: t.MonthlyTarget,
		QuarterTarget: quarterTarget,
		Saved:         saved,
		Remaining:     remaining,
	}, nil
}
