package mysql

import (
	"context"

	"gorm.io/gorm"

	"github.com/barakhubs/sacco-ledger/internal/domain/loan"
	"github.com/barakhubs/sacco-ledger/internal/domain/uow"
)

type GormUoW struct{ db *gorm.DB }

func NewGormUoW(db *gorm.DB) *GormUoW { return &GormUoW{db: db} }

func reposFor(tx *gorm.DB) uow.Repos {
	return uow.Repos{
		Periods:   &PeriodRepository{db: tx},
		Savings:   &SavingsRepository{db: tx},
		Loans:     &LoanRepository{db: tx},
		Interest:  &InterestRepository{db: tx},
		Shareouts: &ShareoutRepository{db: tx},
	}
}

func (u *GormUoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(reposFor(tx))
	})
}

func (u *GormUoW) WithinLoanTx(ctx context.Context, loanNumber string, fn func(r uow.Repos, l *loan.Loan) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		r := reposFor(tx)
		// lock the loan row up-front to serialize concurrent repayments
		l, err := r.Loans.GetByLoanNumberForUpdate(ctx, loanNumber)
		if err != nil {
			return err
		}
		return fn(r, l)
	})
}
