package mysql

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	loanDomain "github.com/barakhubs/sacco-ledger/internal/domain/loan"
)

type LoanRepository struct{ db *gorm.DB }

func NewLoanRepository(db *gorm.DB) *LoanRepository { return &LoanRepository{db: db} }

func (r *LoanRepository) Create(ctx context.Context, l *loanDomain.Loan) error {
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *LoanRepository) Save(ctx context.Context, l *loanDomain.Loan) error {
	return r.db.WithContext(ctx).Save(l).Error
}

func (r *LoanRepository) GetByLoanNumber(ctx context.Context, loanNumber string) (*loanDomain.Loan, error) {
	var out loanDomain.Loan
	res := r.db.WithContext(ctx).Where("loan_number = ?", loanNumber).First(&out)
	return &out, res.Error
}

func (r *LoanRepository) GetByLoanNumberForUpdate(ctx context.Context, loanNumber string) (*loanDomain.Loan, error) {
	var out loanDomain.Loan
	res := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("loan_number = ?", loanNumber).
		First(&out)
	return &out, res.Error
}

func (r *LoanRepository) GetOpenLoanByMemberID(ctx context.Context, memberID string) (*loanDomain.Loan, error) {
	var out loanDomain.Loan
	res := r.db.WithContext(ctx).
		Where("member_id = ? AND status IN ?", memberID, []loanDomain.Status{
			loanDomain.StatusPending, loanDomain.StatusApproved, loanDomain.StatusDisbursed,
		}).
		Order("status_updated_at DESC, id DESC").
		First(&out)
	return &out, res.Error
}

func (r *LoanRepository) ListByMember(ctx context.Context, memberID string) ([]loanDomain.Loan, error) {
	var out []loanDomain.Loan
	res := r.db.WithContext(ctx).
		Where("member_id = ?", memberID).
		Order("applied_date DESC, id DESC").
		Find(&out)
	return out, res.Error
}

func (r *LoanRepository) ListOverdue(ctx context.Context, asOf time.Time) ([]loanDomain.Loan, error) {
	var out []loanDomain.Loan
	res := r.db.WithContext(ctx).
		Where("status = ? AND expected_repayment_date < ?", loanDomain.StatusDisbursed, asOf).
		Order("expected_repayment_date ASC").
		Find(&out)
	return out, res.Error
}

func (r *LoanRepository) CreateRepayment(ctx context.Context, rp *loanDomain.Repayment) error {
	return r.db.WithContext(ctx).Create(rp).Error
}

func (r *LoanRepository) ListRepayments(ctx context.Context, loanID uint64) ([]loanDomain.Repayment, error) {
	var out []loanDomain.Repayment
	res := r.db.WithContext(ctx).
		Where("loan_id = ?", loanID).
		Order("payment_date ASC, id ASC").
		Find(&out)
	return out, res.Error
}

func (r *LoanRepository) ArchiveLoan(ctx context.Context, l *loanDomain.Loan, deletedBy string) error {
	if err := r.db.WithContext(ctx).Model(l).Update("deleted_by", deletedBy).Error; err != nil {
		return err
	}
	return r.db.WithContext(ctx).Delete(l).Error
}

func (r *LoanRepository) ArchiveRepaymentsByLoan(ctx context.Context, loanID uint64) error {
	return r.db.WithContext(ctx).
		Where("loan_id = ?", loanID).
		Delete(&loanDomain.Repayment{}).Error
}
