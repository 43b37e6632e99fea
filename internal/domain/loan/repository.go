package loan

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, l *Loan) error
	GetByLoanNumber(ctx context.Context, loanNumber string) (*Loan, error)
	// GetByLoanNumberForUpdate locks the row for the enclosing transaction.
	GetByLoanNumberForUpdate(ctx context.Context, loanNumber string) (*Loan, error)
	// GetOpenLoanByMemberID returns the member's loan in a non-terminal
	// status, gorm.ErrRecordNotFound if there is none.
	GetOpenLoanByMemberID(ctx context.Context, memberID string) (*Loan, error)
	Save(ctx context.Context, l *Loan) error
	ListByMember(ctx context.Context, memberID string) ([]Loan, error)
	// ListOverdue returns disbursed loans whose expected repayment date
	// has passed as of the given day.
	ListOverdue(ctx context.Context, asOf time.Time) ([]Loan, error)

	CreateRepayment(ctx context.Context, r *Repayment) error
	ListRepayments(ctx context.Context, loanID uint64) ([]Repayment, error)

	// ArchiveLoan soft-deletes the loan; its repayments are archived by
	// ArchiveRepaymentsByLoan in the same transaction.
	ArchiveLoan(ctx context.Context, l *Loan, deletedBy string) error
	ArchiveRepaymentsByLoan(ctx context.Context, loanID uint64) error
}
