package loanmock

import (
	"context"
	"errors"
	"testing"
	"time"

	domain "github.com/barakhubs/sacco-ledger/internal/domain/loan"
)

func TestRepo_FnFieldsAreCalled(t *testing.T) {
	ctx := context.Background()
	wantErr := errors.New("boom")

	t.Run("Create", func(t *testing.T) {
		called := false
		l := &domain.Loan{LoanNumber: "LN-2026-3FA2C1"}
		m := &Repo{CreateFn: func(gotCtx context.Context, got *domain.Loan) error {
			called = true
			if gotCtx != ctx {
				t.Fatalf("ctx mismatch")
			}
			if got != l {
				t.Fatalf("arg mismatch: %+v", got)
			}
			return wantErr
		}}
		if err := m.Create(ctx, l); !errors.Is(err, wantErr) {
			t.Fatalf("want wantErr, got %v", err)
		}
		if !called {
			t.Fatalf("CreateFn not called")
		}
	})

	t.Run("GetByLoanNumber", func(t *testing.T) {
		want := &domain.Loan{ID: 7, LoanNumber: "LN-2026-3FA2C1"}
		m := &Repo{GetByLoanNumberFn: func(gotCtx context.Context, n string) (*domain.Loan, error) {
			if n != want.LoanNumber {
				t.Fatalf("loanNumber mismatch: %s", n)
			}
			return want, nil
		}}
		got, err := m.GetByLoanNumber(ctx, want.LoanNumber)
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if got != want {
			t.Fatalf("loan mismatch: %+v", got)
		}
	})

	t.Run("ListOverdue", func(t *testing.T) {
		asOf := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)
		m := &Repo{ListOverdueFn: func(gotCtx context.Context, gotAsOf time.Time) ([]domain.Loan, error) {
			if !gotAsOf.Equal(asOf) {
				t.Fatalf("asOf mismatch: %v", gotAsOf)
			}
			return []domain.Loan{{ID: 1}, {ID: 2}}, nil
		}}
		got, err := m.ListOverdue(ctx, asOf)
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if len(got) != 2 {
			t.Fatalf("want 2 loans, got %d", len(got))
		}
	})
}

func TestRepo_Defaults(t *testing.T) {
	ctx := context.Background()
	m := &Repo{}

	// Writes default to nil so a test can ignore them.
	if err := m.Create(ctx, &domain.Loan{}); err != nil {
		t.Fatalf("Create default: %v", err)
	}
	if err := m.Save(ctx, &domain.Loan{}); err != nil {
		t.Fatalf("Save default: %v", err)
	}
	if err := m.CreateRepayment(ctx, &domain.Repayment{}); err != nil {
		t.Fatalf("CreateRepayment default: %v", err)
	}
	if err := m.ArchiveLoan(ctx, &domain.Loan{}, "admin"); err != nil {
		t.Fatalf("ArchiveLoan default: %v", err)
	}
	if err := m.ArchiveRepaymentsByLoan(ctx, 1); err != nil {
		t.Fatalf("ArchiveRepaymentsByLoan default: %v", err)
	}

	// Reads fail loudly when the test forgot to stub them.
	if _, err := m.GetByLoanNumber(ctx, "LN-2026-3FA2C1"); !errors.Is(err, context.Canceled) {
		t.Fatalf("GetByLoanNumber default: %v", err)
	}
	if _, err := m.GetOpenLoanByMemberID(ctx, "a1b2"); !errors.Is(err, context.Canceled) {
		t.Fatalf("GetOpenLoanByMemberID default: %v", err)
	}
	if _, err := m.ListRepayments(ctx, 1); !errors.Is(err, context.Canceled) {
		t.Fatalf("ListRepayments default: %v", err)
	}
}
