package loan

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/barakhubs/sacco-ledger/internal/domain/interest"
	"github.com/barakhubs/sacco-ledger/internal/domain/loan"
	"github.com/barakhubs/sacco-ledger/internal/domain/period"
	"github.com/barakhubs/sacco-ledger/internal/domain/uow"
	"github.com/barakhubs/sacco-ledger/pkg/id"
	"github.com/barakhubs/sacco-ledger/pkg/money"
)

type Usecase struct {
	repo    loan.Repository
	periods period.Repository
	uow     uow.UnitOfWork
}

func NewUsecase(r loan.Repository, periods period.Repository, tx uow.UnitOfWork) *Usecase {
	return &Usecase{repo: r, periods: periods, uow: tx}
}

func toDTO(l *loan.Loan) *LoanDTO {
	return &LoanDTO{
		LoanNumber:            l.LoanNumber,
		MemberID:              l.MemberID,
		Principal:             l.Principal,
		InterestRate:          l.InterestRate,
		TotalAmount:           l.TotalAmount,
		AmountPaid:            l.AmountPaid,
		OutstandingBalance:    l.OutstandingBalance,
		Status:                string(l.Status),
		Purpose:               l.Purpose,
		AppliedDate:           l.AppliedDate,
		ApprovedDate:          l.ApprovedDate,
		DisbursedDate:         l.DisbursedDate,
		ExpectedRepaymentDate: l.ExpectedRepaymentDate,
	}
}

// Apply files a loan application. A member may hold at most one loan in
// a non-terminal status at a time.
func (u *Usecase) Apply(ctx context.Context, in ApplyInput) (*LoanDTO, error) {
	if !money.IsAmount(in.Principal) {
		return nil, loan.ErrInvalidAmount
	}

	p, err := u.periods.GetByPeriodID(ctx, in.PeriodID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, period.ErrNotFound
		}
		return nil, err
	}
	if p.Status != period.StatusActive {
		return nil, period.ErrNotActive
	}

	_, err = u.repo.GetOpenLoanByMemberID(ctx, in.MemberID)
	switch {
	case err == nil:
		return nil, loan.ErrActiveLoanExists
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return nil, err
	}

	principal := money.Round2(in.Principal)
	interestDue := money.Round2(principal.Mul(loan.FixedRate))
	total := principal.Add(interestDue)
	now := time.Now().UTC()

	l := &loan.Loan{
		LoanNumber:            id.NewLoanNumber(p.Year),
		MemberID:              in.MemberID,
		PeriodID:              p.ID,
		Principal:             principal,
		InterestRate:          loan.FixedRate,
		TotalAmount:           total,
		AmountPaid:            decimal.Zero,
		OutstandingBalance:    total,
		Status:                loan.StatusPending,
		Purpose:               in.Purpose,
		AppliedDate:           now,
		ExpectedRepaymentDate: in.ExpectedRepaymentDate.UTC(),
		StatusUpdatedAt:       now,
	}
	if err := u.repo.Create(ctx, l); err != nil {
		return nil, err
	}
	return toDTO(l), nil
}

// Approve moves a pending loan to approved.
func (u *Usecase) Approve(ctx context.Context, loanNumber, approverID string) (*LoanDTO, error) {
	return u.transition(ctx, loanNumber, loan.StatusPending, func(l *loan.Loan, now time.Time) {
		l.Status = loan.StatusApproved
		l.ApprovedDate = &now
		l.ApprovedBy = approverID
	})
}

// Reject terminally rejects a pending loan.
func (u *Usecase) Reject(ctx context.Context, loanNumber, reason string) (*LoanDTO, error) {
	return u.transition(ctx, loanNumber, loan.StatusPending, func(l *loan.Loan, now time.Time) {
		l.Status = loan.StatusRejected
		l.RejectReason = reason
	})
}

// Disburse moves an approved loan to disbursed.
func (u *Usecase) Disburse(ctx context.Context, loanNumber string) (*LoanDTO, error) {
	return u.transition(ctx, loanNumber, loan.StatusApproved, func(l *loan.Loan, now time.Time) {
		l.Status = loan.StatusDisbursed
		l.DisbursedDate = &now
	})
}

// MarkDefaulted terminally defaults a disbursed loan. Administrative;
// never triggered automatically.
func (u *Usecase) MarkDefaulted(ctx context.Context, loanNumber string) (*LoanDTO, error) {
	return u.transition(ctx, loanNumber, loan.StatusDisbursed, func(l *loan.Loan, now time.Time) {
		l.Status = loan.StatusDefaulted
	})
}

// transition applies a guarded status change under a row lock. The
// exact-state precondition fails with ErrInvalidTransition, never a
// silent no-op.
func (u *Usecase) transition(ctx context.Context, loanNumber string, from loan.Status, apply func(*loan.Loan, time.Time)) (*LoanDTO, error) {
	var dto *LoanDTO
	err := u.uow.WithinLoanTx(ctx, loanNumber, func(r uow.Repos, l *loan.Loan) error {
		if l.Status != from {
			return loan.ErrInvalidTransition
		}
		now := time.Now().UTC()
		apply(l, now)
		l.StatusUpdatedAt = now
		if err := r.Loans.Save(ctx, l); err != nil {
			return err
		}
		dto = toDTO(l)
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, loan.ErrNotFound
		}
		return nil, err
	}
	return dto, nil
}

// RecordRepayment posts a payment under a row lock, splitting it into
// principal and interest by the loan's interest ratio. The payment that
// clears the balance completes the loan and writes the borrower's
// interest rebate in the same transaction.
func (u *Usecase) RecordRepayment(ctx context.Context, in RecordRepaymentInput) (*RepaymentDTO, error) {
	var dto *RepaymentDTO
	err := u.uow.WithinLoanTx(ctx, in.LoanNumber, func(r uow.Repos, l *loan.Loan) error {
		if l.Status != loan.StatusDisbursed {
			return loan.ErrInvalidTransition
		}
		if !money.IsAmount(in.Amount) {
			return loan.ErrInvalidAmount
		}
		if in.Amount.GreaterThan(l.OutstandingBalance) {
			return loan.ErrExceedsOutstanding
		}

		interestRatio := l.TotalInterest().Div(l.TotalAmount)
		interestPortion := money.Round2(in.Amount.Mul(interestRatio))
		principalPortion := in.Amount.Sub(interestPortion)
		now := time.Now().UTC()

		rp := &loan.Repayment{
			RepaymentID:      id.NewID32(),
			LoanID:           l.ID,
			Amount:           in.Amount,
			PrincipalPortion: principalPortion,
			InterestPortion:  interestPortion,
			PaymentDate:      now,
			PaymentMethod:    in.PaymentMethod,
			Reference:        uuid.NewString(),
			Notes:            in.Notes,
		}
		if err := r.Loans.CreateRepayment(ctx, rp); err != nil {
			return err
		}

		l.AmountPaid = l.AmountPaid.Add(in.Amount)
		l.OutstandingBalance = l.OutstandingBalance.Sub(in.Amount)
		if l.OutstandingBalance.IsZero() {
			l.Status = loan.StatusCompleted
			l.StatusUpdatedAt = now

			// Half the collected interest goes straight back to the
			// borrower; the other half stays in the year's pool.
			rebate := money.Round2(l.TotalInterest().Mul(loan.RebateRatio))
			d := &interest.Distribution{
				DistributionID:    id.NewID32(),
				PeriodID:          l.PeriodID,
				LoanID:            l.ID,
				RecipientMemberID: l.MemberID,
				Amount:            rebate,
				Type:              interest.ShareLoanBearerReturn,
				DistributedDate:   now,
				Reference:         uuid.NewString(),
			}
			if err := r.Interest.CreateDistribution(ctx, d); err != nil {
				return err
			}
		}
		if err := r.Loans.Save(ctx, l); err != nil {
			return err
		}

		dto = &RepaymentDTO{
			RepaymentID:      rp.RepaymentID,
			LoanNumber:       l.LoanNumber,
			Amount:           rp.Amount,
			PrincipalPortion: rp.PrincipalPortion,
			InterestPortion:  rp.InterestPortion,
			PaymentDate:      rp.PaymentDate,
			PaymentMethod:    rp.PaymentMethod,
			Reference:        rp.Reference,
			LoanStatus:       string(l.Status),
			Outstanding:      l.OutstandingBalance,
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, loan.ErrNotFound
		}
		return nil, err
	}
	return dto, nil
}

func (u *Usecase) Get(ctx context.Context, loanNumber string) (*LoanDTO, error) {
	l, err := u.repo.GetByLoanNumber(ctx, loanNumber)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, loan.ErrNotFound
		}
		return nil, err
	}
	return toDTO(l), nil
}

func (u *Usecase) ListByMember(ctx context.Context, memberID string) ([]LoanDTO, error) {
	rows, err := u.repo.ListByMember(ctx, memberID)
	if err != nil {
		return nil, err
	}
	out := make([]LoanDTO, 0, len(rows))
	for i := range rows {
		out = append(out, *toDTO(&rows[i]))
	}
	return out, nil
}

// ListOverdue feeds the daily sweep: disbursed loans past their expected
// repayment date.
func (u *Usecase) ListOverdue(ctx context.Context, asOf time.Time) ([]LoanDTO, error) {
	rows, err := u.repo.ListOverdue(ctx, asOf)
	if err != nil {
		return nil, err
	}
	out := make([]LoanDTO, 0, len(rows))
	for i := range rows {
		out = append(out, *toDTO(&rows[i]))
	}
	return out, nil
}

// Delete archives a loan together with the repayments and distributions
// it owns, in one transaction. The child rows keep audit value, so this
// is a soft archive rather than a storage-layer cascade.
func (u *Usecase) Delete(ctx context.Context, loanNumber, deletedBy string) error {
	return u.uow.WithinLoanTx(ctx, loanNumber, func(r uow.Repos, l *loan.Loan) error {
		if err := r.Loans.ArchiveRepaymentsByLoan(ctx, l.ID); err != nil {
			return err
		}
		if err := r.Interest.ArchiveDistributionsByLoan(ctx, l.ID); err != nil {
			return err
		}
		return r.Loans.ArchiveLoan(ctx, l, deletedBy)
	})
}
