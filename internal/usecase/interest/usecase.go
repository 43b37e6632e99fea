package interest

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/barakhubs/sacco-ledger/internal/domain/interest"
	"github.com/barakhubs/sacco-ledger/internal/domain/period"
	"github.com/barakhubs/sacco-ledger/internal/domain/uow"
	"github.com/barakhubs/sacco-ledger/pkg/id"
	"github.com/barakhubs/sacco-ledger/pkg/money"
)

var one = decimal.NewFromInt(1)

type Usecase struct {
	repo    interest.Repository
	periods period.Repository
	uow     uow.UnitOfWork
}

func NewUsecase(r interest.Repository, periods period.Repository, tx uow.UnitOfWork) *Usecase {
	return &Usecase{repo: r, periods: periods, uow: tx}
}

// PendingForMember totals the member's unclaimed rebate and member-share
// distributions for one period; the shareout workflow snapshots this.
func (u *Usecase) PendingForMember(ctx context.Context, memberID, periodID string) (decimal.Decimal, error) {
	p, err := u.periods.GetByPeriodID(ctx, periodID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return decimal.Zero, period.ErrNotFound
		}
		return decimal.Zero, err
	}
	return u.repo.SumUnclaimedForMemberPeriod(ctx, memberID, p.ID)
}

// RunYearEnd aggregates the retained half of the year's loan interest
// into one committee slice per office-holder and pro-rata member slices
// weighted by recorded savings. Runs once per year, after every period
// of the year has closed.
func (u *Usecase) RunYearEnd(ctx context.Context, in RunYearEndInput) (*YearEndDTO, error) {
	if in.Year < 2000 || in.CommitteeRatio.IsNegative() || in.CommitteeRatio.GreaterThan(one) {
		return nil, interest.ErrInvalidInput
	}

	var dto *YearEndDTO
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		_, err := r.Interest.GetYearEnd(ctx, in.Year)
		switch {
		case err == nil:
			return interest.ErrYearAlreadyRun
		case !errors.Is(err, gorm.ErrRecordNotFound):
			return err
		}

		periods, err := r.Periods.ListByYear(ctx, in.Year)
		if err != nil {
			return err
		}
		if len(periods) == 0 {
			return interest.ErrYearNotClosed
		}
		periodIDs := make([]uint64, 0, len(periods))
		for i := range periods {
			if periods[i].Status != period.StatusCompleted {
				return interest.ErrYearNotClosed
			}
			periodIDs = append(periodIDs, periods[i].ID)
		}

		pool, err := r.Interest.SumPoolForPeriods(ctx, periodIDs)
		if err != nil {
			return err
		}

		committeeTotal := money.Round2(pool.Mul(in.CommitteeRatio))
		if len(in.CommitteeMemberIDs) == 0 {
			committeeTotal = decimal.Zero
		}
		membersTotal := pool.Sub(committeeTotal)

		now := time.Now().UTC()
		y := &interest.YearEndShareout{
			ShareoutID:        id.NewID32(),
			Year:              in.Year,
			TotalInterestPool: pool,
			CommitteeTotal:    committeeTotal,
			MembersTotal:      membersTotal,
			RunBy:             in.RunBy,
			RunAt:             now,
		}
		if err := r.Interest.CreateYearEnd(ctx, y); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return interest.ErrYearAlreadyRun
			}
			return err
		}

		var shares []YearShareDTO

		// Flat per-head committee slices; the last head takes the
		// rounding remainder so the slices sum exactly.
		if n := len(in.CommitteeMemberIDs); n > 0 && committeeTotal.IsPositive() {
			perHead := money.Round2(committeeTotal.Div(decimal.NewFromInt(int64(n))))
			allocated := decimal.Zero
			for i, memberID := range in.CommitteeMemberIDs {
				amount := perHead
				if i == n-1 {
					amount = committeeTotal.Sub(allocated)
				}
				allocated = allocated.Add(amount)
				s, err := u.createShare(ctx, r, y.ID, memberID, amount, interest.ShareCommittee)
				if err != nil {
					return err
				}
				shares = append(shares, *s)
			}
		}

		// Pro-rata member slices by the year's recorded savings.
		if membersTotal.IsPositive() {
			totals, err := r.Savings.TotalsByMemberForPeriods(ctx, periodIDs)
			if err != nil {
				return err
			}
			sumWeights := decimal.Zero
			for _, t := range totals {
				sumWeights = sumWeights.Add(t.Total)
			}
			// A positive member pool with no savings weights would leave
			// MembersTotal unaccounted for; refuse and roll back.
			if !sumWeights.IsPositive() {
				return interest.ErrNoSavings
			}
			allocated := decimal.Zero
			for i, t := range totals {
				amount := money.ProRata(membersTotal, t.Total, sumWeights)
				if i == len(totals)-1 {
					amount = membersTotal.Sub(allocated)
				}
				allocated = allocated.Add(amount)
				s, err := u.createShare(ctx, r, y.ID, t.MemberID, amount, interest.ShareMember)
				if err != nil {
					return err
				}
				shares = append(shares, *s)
			}
		}

		dto = &YearEndDTO{
			ShareoutID:        y.ShareoutID,
			Year:              y.Year,
			TotalInterestPool: y.TotalInterestPool,
			CommitteeTotal:    y.CommitteeTotal,
			MembersTotal:      y.MembersTotal,
			Shares:            shares,
			RunAt:             y.RunAt,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

func (u *Usecase) createShare(ctx context.Context, r uow.Repos, shareoutID uint64, memberID string, amount decimal.Decimal, t interest.ShareType) (*YearShareDTO, error) {
	s := &interest.IndividualYearShare{
		ShareID:        id.NewID32(),
		YearShareoutID: shareoutID,
		MemberID:       memberID,
		Amount:         amount,
		ShareType:      t,
	}
	if err := r.Interest.CreateShare(ctx, s); err != nil {
		return nil, err
	}
	return &YearShareDTO{
		ShareID:   s.ShareID,
		MemberID:  s.MemberID,
		Amount:    s.Amount,
		ShareType: string(s.ShareType),
	}, nil
}

// DisburseShare pays out one year share. Explicit action; a share never
// flips on its own and never flips twice.
func (u *Usecase) DisburseShare(ctx context.Context, shareID, disbursedBy string) (*YearShareDTO, error) {
	s, err := u.repo.GetShareByShareID(ctx, shareID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, interest.ErrShareNotFound
		}
		return nil, err
	}
	if s.IsDisbursed {
		return nil, interest.ErrAlreadyDisbursed
	}
	now := time.Now().UTC()
	s.IsDisbursed = true
	s.DisbursedAt = &now
	s.DisbursedBy = disbursedBy
	if err := u.repo.SaveShare(ctx, s); err != nil {
		return nil, err
	}
	return &YearShareDTO{
		ShareID:     s.ShareID,
		MemberID:    s.MemberID,
		Amount:      s.Amount,
		ShareType:   string(s.ShareType),
		IsDisbursed: s.IsDisbursed,
		DisbursedAt: s.DisbursedAt,
	}, nil
}

// GetYearEnd returns the aggregation for a year with its shares.
func (u *Usecase) GetYearEnd(ctx context.Context, year int) (*YearEndDTO, error) {
	y, err := u.repo.GetYearEnd(ctx, year)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, interest.ErrShareNotFound
		}
		return nil, err
	}
	rows, err := u.repo.ListSharesByShareout(ctx, y.ID)
	if err != nil {
		return nil, err
	}
	shares := make([]YearShareDTO, 0, len(rows))
	for i := range rows {
		s := rows[i]
		shares = append(shares, YearShareDTO{
			ShareID:     s.ShareID,
			MemberID:    s.MemberID,
			Amount:      s.Amount,
			ShareType:   string(s.ShareType),
			IsDisbursed: s.IsDisbursed,
			DisbursedAt: s.DisbursedAt,
		})
	}
	return &YearEndDTO{
		ShareoutID:        y.ShareoutID,
		Year:              y.Year,
		TotalInterestPool: y.TotalInterestPool,
		CommitteeTotal:    y.CommitteeTotal,
		MembersTotal:      y.MembersTotal,
		Shares:            shares,
		RunAt:             y.RunAt,
	}, nil
}
