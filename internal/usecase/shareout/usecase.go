package shareout

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/barakhubs/sacco-ledger/internal/domain/period"
	"github.com/barakhubs/sacco-ledger/internal/domain/shareout"
	"github.com/barakhubs/sacco-ledger/internal/domain/uow"
	"github.com/barakhubs/sacco-ledger/pkg/id"
)

type Usecase struct {
	repo    shareout.Repository
	periods period.Repository
	uow     uow.UnitOfWork
}

func NewUsecase(r shareout.Repository, periods period.Repository, tx uow.UnitOfWork) *Usecase {
	return &Usecase{repo: r, periods: periods, uow: tx}
}

func toDTO(d *shareout.Decision, periodID string) *DecisionDTO {
	return &DecisionDTO{
		DecisionID:          d.DecisionID,
		MemberID:            d.MemberID,
		PeriodID:            periodID,
		WantsShareout:       d.WantsShareout,
		SavingsBalance:      d.SavingsBalance,
		InterestAmount:      d.InterestAmount,
		ShareoutCompleted:   d.ShareoutCompleted,
		DecisionMadeAt:      d.DecisionMadeAt,
		ShareoutCompletedAt: d.ShareoutCompletedAt,
		CompletedBy:         d.CompletedBy,
	}
}

// Decide records or revises a member's withdraw-or-retain choice. The
// choice stays revisable until the shareout is completed, locked after.
// The read-check-write runs in one transaction with the decision row
// locked, so a revision cannot overwrite a completion that landed in
// between.
func (u *Usecase) Decide(ctx context.Context, in DecideInput) (*DecisionDTO, error) {
	p, err := u.periods.GetByPeriodID(ctx, in.PeriodID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, period.ErrNotFound
		}
		return nil, err
	}
	if p.Status != period.StatusCompleted || !p.ShareoutActivated {
		return nil, shareout.ErrNotActivated
	}

	var dto *DecisionDTO
	err = u.uow.WithinTx(ctx, func(r uow.Repos) error {
		now := time.Now().UTC()
		d, err := r.Shareouts.GetByMemberPeriodForUpdate(ctx, in.MemberID, p.ID)
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			d = &shareout.Decision{
				DecisionID:     id.NewID32(),
				MemberID:       in.MemberID,
				PeriodID:       p.ID,
				WantsShareout:  in.WantsShareout,
				DecisionMadeAt: now,
			}
			if err := r.Shareouts.Create(ctx, d); err != nil {
				if errors.Is(err, gorm.ErrDuplicatedKey) {
					return shareout.ErrDecisionLocked
				}
				return err
			}
			dto = toDTO(d, p.PeriodID)
			return nil
		case err != nil:
			return err
		}

		if d.ShareoutCompleted {
			return shareout.ErrDecisionLocked
		}
		d.WantsShareout = in.WantsShareout
		d.DecisionMadeAt = now
		if err := r.Shareouts.Save(ctx, d); err != nil {
			return err
		}
		dto = toDTO(d, p.PeriodID)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

// Complete honors an opted-in decision: snapshots the member's unshared
// savings and pending interest for the period, marks the deposits and
// distributions consumed, and locks the decision. One transaction.
func (u *Usecase) Complete(ctx context.Context, in CompleteInput) (*DecisionDTO, error) {
	var dto *DecisionDTO
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		p, err := r.Periods.GetByPeriodID(ctx, in.PeriodID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return period.ErrNotFound
			}
			return err
		}

		d, err := r.Shareouts.GetByMemberPeriodForUpdate(ctx, in.MemberID, p.ID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return shareout.ErrNotFound
			}
			return err
		}
		if d.ShareoutCompleted {
			return shareout.ErrDecisionLocked
		}
		if !d.WantsShareout {
			return shareout.ErrNotOptedIn
		}

		balance, err := r.Savings.SumUnsharedForPeriod(ctx, in.MemberID, p.ID)
		if err != nil {
			return err
		}
		pending, err := r.Interest.SumUnclaimedForMemberPeriod(ctx, in.MemberID, p.ID)
		if err != nil {
			return err
		}
		if err := r.Savings.MarkSharedOutForPeriod(ctx, in.MemberID, p.ID); err != nil {
			return err
		}
		if err := r.Interest.MarkClaimedForMemberPeriod(ctx, in.MemberID, p.ID); err != nil {
			return err
		}

		now := time.Now().UTC()
		d.SavingsBalance = balance
		d.InterestAmount = pending
		d.ShareoutCompleted = true
		d.ShareoutCompletedAt = &now
		d.CompletedBy = in.CompletedBy
		if err := r.Shareouts.Save(ctx, d); err != nil {
			return err
		}
		dto = toDTO(d, p.PeriodID)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

// List returns every decision for a period, for the admin overview.
func (u *Usecase) List(ctx context.Context, periodID string) ([]DecisionDTO, error) {
	p, err := u.periods.GetByPeriodID(ctx, periodID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, period.ErrNotFound
		}
		return nil, err
	}
	rows, err := u.repo.ListByPeriod(ctx, p.ID)
	if err != nil {
		return nil, err
	}
	out := make([]DecisionDTO, 0, len(rows))
	for i := range rows {
		out = append(out, *toDTO(&rows[i], p.PeriodID))
	}
	return out, nil
}
