package loanmock

import (
	"context"
	"time"

	domain "github.com/barakhubs/sacco-ledger/internal/domain/loan"
)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateFn                   func(ctx context.Context, l *domain.Loan) error
	GetByLoanNumberFn          func(ctx context.Context, loanNumber string) (*domain.Loan, error)
	GetByLoanNumberForUpdateFn func(ctx context.Context, loanNumber string) (*domain.Loan, error)
	GetOpenLoanByMemberIDFn    func(ctx context.Context, memberID string) (*domain.Loan, error)
	SaveFn                     func(ctx context.Context, l *domain.Loan) error
	ListByMemberFn             func(ctx context.Context, memberID string) ([]domain.Loan, error)
	ListOverdueFn              func(ctx context.Context, asOf time.Time) ([]domain.Loan, error)
	CreateRepaymentFn          func(ctx context.Context, r *domain.Repayment) error
	ListRepaymentsFn           func(ctx context.Context, loanID uint64) ([]domain.Repayment, error)
	ArchiveLoanFn              func(ctx context.Context, l *domain.Loan, deletedBy string) error
	ArchiveRepaymentsByLoanFn  func(ctx context.Context, loanID uint64) error
}

var _ domain.Repository = (*Repo)(nil)

func (m *Repo) Create(ctx context.Context, l *domain.Loan) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, l)
	}
	return nil
}

func (m *Repo) GetByLoanNumber(ctx context.Context, loanNumber string) (*domain.Loan, error) {
	if m.GetByLoanNumberFn != nil {
		return m.GetByLoanNumberFn(ctx, loanNumber)
	}
	return nil, context.Canceled
}

func (m *Repo) GetByLoanNumberForUpdate(ctx context.Context, loanNumber string) (*domain.Loan, error) {
	if m.GetByLoanNumberForUpdateFn != nil {
		return m.GetByLoanNumberForUpdateFn(ctx, loanNumber)
	}
	return nil, context.Canceled
}

func (m *Repo) GetOpenLoanByMemberID(ctx context.Context, memberID string) (*domain.Loan, error) {
	if m.GetOpenLoanByMemberIDFn != nil {
		return m.GetOpenLoanByMemberIDFn(ctx, memberID)
	}
	return nil, context.Canceled
}

func (m *Repo) Save(ctx context.Context, l *domain.Loan) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, l)
	}
	return nil
}

func (m *Repo) ListByMember(ctx context.Context, memberID string) ([]domain.Loan, error) {
	if m.ListByMemberFn != nil {
		return m.ListByMemberFn(ctx, memberID)
	}
	return nil, context.Canceled
}

func (m *Repo) ListOverdue(ctx context.Context, asOf time.Time) ([]domain.Loan, error) {
	if m.ListOverdueFn != nil {
		return m.ListOverdueFn(ctx, asOf)
	}
	return nil, context.Canceled
}

func (m *Repo) CreateRepayment(ctx context.Context, r *domain.Repayment) error {
	if m.CreateRepaymentFn != nil {
		return m.CreateRepaymentFn(ctx, r)
	}
	return nil
}

func (m *Repo) ListRepayments(ctx context.Context, loanID uint64) ([]domain.Repayment, error) {
	if m.ListRepaymentsFn != nil {
		return m.ListRepaymentsFn(ctx, loanID)
	}
	return nil, context.Canceled
}

func (m *Repo) ArchiveLoan(ctx context.Context, l *domain.Loan, deletedBy string) error {
	if m.ArchiveLoanFn != nil {
		return m.ArchiveLoanFn(ctx, l, deletedBy)
	}
	return nil
}

func (m *Repo) ArchiveRepaymentsByLoan(ctx context.Context, loanID uint64) error {
	if m.ArchiveRepaymentsByLoanFn != nil {
		return m.ArchiveRepaymentsByLoanFn(ctx, loanID)
	}
	return nil
}
