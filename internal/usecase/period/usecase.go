package period

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/barakhubs/sacco-ledger/internal/domain/period"
	"github.com/barakhubs/sacco-ledger/internal/domain/uow"
	"github.com/barakhubs/sacco-ledger/pkg/id"
)

type Usecase struct {
	repo period.Repository
	uow  uow.UnitOfWork
}

func NewUsecase(r period.Repository, tx uow.UnitOfWork) *Usecase {
	return &Usecase{repo: r, uow: tx}
}

func toDTO(p *period.Period) *PeriodDTO {
	return &PeriodDTO{
		PeriodID:          p.PeriodID,
		Year:              p.Year,
		Sequence:          p.Sequence,
		StartDate:         p.StartDate,
		EndDate:           p.EndDate,
		Status:            string(p.Status),
		ShareoutActivated: p.ShareoutActivated,
		CreatedAt:         p.CreatedAt,
	}
}

func (u *Usecase) Create(ctx context.Context, in CreatePeriodInput) (*PeriodDTO, error) {
	if in.Year < 2000 || in.Sequence < 1 || in.Sequence > 3 || !in.StartDate.Before(in.EndDate) {
		return nil, period.ErrInvalidInput
	}

	_, err := u.repo.GetByYearSequence(ctx, in.Year, in.Sequence)
	switch {
	case err == nil:
		return nil, period.ErrDuplicatePeriod
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return nil, err
	}

	p := &period.Period{
		PeriodID:  id.NewID32(),
		Year:      in.Year,
		Sequence:  in.Sequence,
		StartDate: in.StartDate.UTC(),
		EndDate:   in.EndDate.UTC(),
		Status:    period.StatusUpcoming,
	}
	if err := u.repo.Create(ctx, p); err != nil {
		// the unique index closes the check-then-insert race
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, period.ErrDuplicatePeriod
		}
		return nil, err
	}
	return toDTO(p), nil
}

// Activate promotes the target period and demotes whichever period was
// active, inside one transaction so at most one period is ever active.
// The target row is read with a lock, and the active count is re-checked
// after promoting: when no period was active the demote matches zero rows
// and takes no locks, so two bootstrap activations can both get this far.
// The recount makes the loser roll back.
func (u *Usecase) Activate(ctx context.Context, periodID string) (*PeriodDTO, error) {
	var dto *PeriodDTO
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		p, err := r.Periods.GetByPeriodIDForUpdate(ctx, periodID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return period.ErrNotFound
			}
			return err
		}
		if p.Status == period.StatusActive {
			dto = toDTO(p)
			return nil
		}
		if err := r.Periods.DemoteActive(ctx); err != nil {
			return err
		}
		p.Status = period.StatusActive
		if err := r.Periods.Save(ctx, p); err != nil {
			return err
		}
		n, err := r.Periods.CountActive(ctx)
		if err != nil {
			return err
		}
		if n > 1 {
			return period.ErrActivationRace
		}
		dto = toDTO(p)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

// ActivateShareout flips the orthogonal shareout flag on a completed period.
func (u *Usecase) ActivateShareout(ctx context.Context, periodID string) (*PeriodDTO, error) {
	p, err := u.repo.GetByPeriodID(ctx, periodID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, period.ErrNotFound
		}
		return nil, err
	}
	if p.Status != period.StatusCompleted {
		return nil, period.ErrNotCompleted
	}
	if !p.ShareoutActivated {
		p.ShareoutActivated = true
		if err := u.repo.Save(ctx, p); err != nil {
			return nil, err
		}
	}
	return toDTO(p), nil
}

func (u *Usecase) Get(ctx context.Context, periodID string) (*PeriodDTO, error) {
	p, err := u.repo.GetByPeriodID(ctx, periodID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, period.ErrNotFound
		}
		return nil, err
	}
	return toDTO(p), nil
}

// Current returns the active period; callers thread its id explicitly
// instead of reading any session-scoped "current quarter".
func (u *Usecase) Current(ctx context.Context) (*PeriodDTO, error) {
	p, err := u.repo.GetActive(ctx)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, period.ErrNoActivePeriod
		}
		return nil, err
	}
	return toDTO(p), nil
}

func (u *Usecase) List(ctx context.Context, year int) ([]PeriodDTO, error) {
	var (
		rows []period.Period
		err  error
	)
	if year > 0 {
		rows, err = u.repo.ListByYear(ctx, year)
	} else {
		rows, err = u.repo.List(ctx)
	}
	if err != nil {
		return nil, err
	}
	out := make([]PeriodDTO, 0, len(rows))
	for i := range rows {
		out = append(out, *toDTO(&rows[i]))
	}
	return out, nil
}
