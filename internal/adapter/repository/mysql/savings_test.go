package mysql

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/barakhubs/sacco-ledger/internal/domain/member"
	savingsDomain "github.com/barakhubs/sacco-ledger/internal/domain/savings"
	"github.com/barakhubs/sacco-ledger/pkg/id"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func makeTarget(memberID string, periodID uint64) *savingsDomain.Target {
	return &savingsDomain.Target{
		TargetID:      id.NewID32(),
		MemberID:      memberID,
		PeriodID:      periodID,
		Category:      member.CategoryA,
		MonthlyTarget: dec("500"),
		MainShare:     dec("375"),
		SocialShare:   dec("87.50"),
		WelfareShare:  dec("37.50"),
	}
}

func makeDeposit(memberID string, periodID uint64, amount string) *savingsDomain.Deposit {
	return &savingsDomain.Deposit{
		DepositID:  id.NewID32(),
		MemberID:   memberID,
		PeriodID:   periodID,
		Amount:     dec(amount),
		SavedOn:    time.Now().UTC(),
		RecordedBy: "admin",
	}
}

func TestTargetCreate_DuplicateMemberPeriod(t *testing.T) {
	db := openTestDB(t)
	repo := NewSavingsRepository(db)
	ctx := context.Background()

	m := id.NewID32()
	if err := repo.CreateTarget(ctx, makeTarget(m, 1)); err != nil {
		t.Fatalf("CreateTarget: %v", err)
	}
	err := repo.CreateTarget(ctx, makeTarget(m, 1))
	if !errors.Is(err, gorm.ErrDuplicatedKey) {
		t.Fatalf("expected ErrDuplicatedKey, got %v", err)
	}

	// Same member, different period is fine.
	if err := repo.CreateTarget(ctx, makeTarget(m, 2)); err != nil {
		t.Fatalf("CreateTarget next period: %v", err)
	}

	got, err := repo.GetTarget(ctx, m, 1)
	if err != nil {
		t.Fatalf("GetTarget: %v", err)
	}
	if !got.MonthlyTarget.Equal(dec("500")) {
		t.Errorf("monthly target = %s, want 500", got.MonthlyTarget)
	}
}

func TestDepositSums(t *testing.T) {
	db := openTestDB(t)
	repo := NewSavingsRepository(db)
	ctx := context.Background()

	m := id.NewID32()
	other := id.NewID32()
	for _, d := range []*savingsDomain.Deposit{
		makeDeposit(m, 1, "200"),
		makeDeposit(m, 1, "300.50"),
		makeDeposit(m, 2, "100"),
		makeDeposit(other, 1, "999"),
	} {
		if err := repo.CreateDeposit(ctx, d); err != nil {
			t.Fatalf("CreateDeposit: %v", err)
		}
	}

	total, err := repo.SumForPeriod(ctx, m, 1)
	if err != nil {
		t.Fatalf("SumForPeriod: %v", err)
	}
	if !total.Equal(dec("500.50")) {
		t.Errorf("period total = %s, want 500.50", total)
	}

	avail, err := repo.SumAvailable(ctx, m)
	if err != nil {
		t.Fatalf("SumAvailable: %v", err)
	}
	if !avail.Equal(dec("600.50")) {
		t.Errorf("available = %s, want 600.50", avail)
	}

	// No deposits sums to zero, not an error.
	zero, err := repo.SumForPeriod(ctx, m, 9)
	if err != nil {
		t.Fatalf("SumForPeriod empty: %v", err)
	}
	if !zero.IsZero() {
		t.Errorf("empty period total = %s, want 0", zero)
	}
}

func TestMarkSharedOutForPeriod(t *testing.T) {
	db := openTestDB(t)
	repo := NewSavingsRepository(db)
	ctx := context.Background()

	m := id.NewID32()
	other := id.NewID32()
	for _, d := range []*savingsDomain.Deposit{
		makeDeposit(m, 1, "200"),
		makeDeposit(m, 1, "300"),
		makeDeposit(m, 2, "100"),
		makeDeposit(other, 1, "50"),
	} {
		if err := repo.CreateDeposit(ctx, d); err != nil {
			t.Fatalf("CreateDeposit: %v", err)
		}
	}

	if err := repo.MarkSharedOutForPeriod(ctx, m, 1); err != nil {
		t.Fatalf("MarkSharedOutForPeriod: %v", err)
	}

	unshared, err := repo.SumUnsharedForPeriod(ctx, m, 1)
	if err != nil {
		t.Fatalf("SumUnsharedForPeriod: %v", err)
	}
	if !unshared.IsZero() {
		t.Errorf("unshared after mark = %s, want 0", unshared)
	}

	// Gross period total is unaffected; only availability moves.
	gross, err := repo.SumForPeriod(ctx, m, 1)
	if err != nil {
		t.Fatalf("SumForPeriod: %v", err)
	}
	if !gross.Equal(dec("500")) {
		t.Errorf("gross total = %s, want 500", gross)
	}

	avail, err := repo.SumAvailable(ctx, m)
	if err != nil {
		t.Fatalf("SumAvailable: %v", err)
	}
	if !avail.Equal(dec("100")) {
		t.Errorf("available = %s, want 100", avail)
	}

	// The other member's deposits stay available.
	otherAvail, err := repo.SumAvailable(ctx, other)
	if err != nil {
		t.Fatalf("SumAvailable other: %v", err)
	}
	if !otherAvail.Equal(dec("50")) {
		t.Errorf("other available = %s, want 50", otherAvail)
	}
}

func TestTotalsByMemberForPeriods(t *testing.T) {
	db := openTestDB(t)
	repo := NewSavingsRepository(db)
	ctx := context.Background()

	for _, d := range []*savingsDomain.Deposit{
		makeDeposit("aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa", 1, "200"),
		makeDeposit("aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa", 2, "300"),
		makeDeposit("bbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb", 1, "1000"),
		makeDeposit("bbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb", 3, "400"),
	} {
		if err := repo.CreateDeposit(ctx, d); err != nil {
			t.Fatalf("CreateDeposit: %v", err)
		}
	}

	totals, err := repo.TotalsByMemberForPeriods(ctx, []uint64{1, 2})
	if err != nil {
		t.Fatalf("TotalsByMemberForPeriods: %v", err)
	}
	if len(totals) != 2 {
		t.Fatalf("totals rows = %d, want 2: %+v", len(totals), totals)
	}
	if totals[0].MemberID != "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa" || !totals[0].Total.Equal(dec("500")) {
		t.Errorf("first row: %+v", totals[0])
	}
	if totals[1].MemberID != "bbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb" || !totals[1].Total.Equal(dec("1000")) {
		t.Errorf("second row: %+v", totals[1])
	}
}
