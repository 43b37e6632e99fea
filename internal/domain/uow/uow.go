package uow

import (
	"context"

	"github.com/barakhubs/sacco-ledger/internal/domain/interest"
	"github.com/barakhubs/sacco-ledger/internal/domain/loan"
	"github.com/barakhubs/sacco-ledger/internal/domain/period"
	"github.com/barakhubs/sacco-ledger/internal/domain/savings"
	"github.com/barakhubs/sacco-ledger/internal/domain/shareout"
)

type Repos struct {
	Periods   period.Repository
	Savings   savings.Repository
	Loans     loan.Repository
	Interest  interest.Repository
	Shareouts shareout.Repository
}

type UnitOfWork interface {
	// plain tx
	WithinTx(ctx context.Context, fn func(r Repos) error) error
	// convenience: lock the loan row first, then pass it in
	WithinLoanTx(ctx context.Context, loanNumber string, fn func(r Repos, l *loan.Loan) error) error
}
