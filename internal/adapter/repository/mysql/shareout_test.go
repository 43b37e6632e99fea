package mysql

import (
	"context"
	"errors"
	"testing"
	"time"

	"gorm.io/gorm"

	shareoutDomain "github.com/barakhubs/sacco-ledger/internal/domain/shareout"
	"github.com/barakhubs/sacco-ledger/pkg/id"
)

func makeDecision(memberID string, periodID uint64, wants bool) *shareoutDomain.Decision {
	return &shareoutDomain.Decision{
		DecisionID:     id.NewID32(),
		MemberID:       memberID,
		PeriodID:       periodID,
		WantsShareout:  wants,
		DecisionMadeAt: time.Now().UTC(),
	}
}

func TestDecisionCreate_DuplicateMemberPeriod(t *testing.T) {
	db := openTestDB(t)
	repo := NewShareoutRepository(db)
	ctx := context.Background()

	m := id.NewID32()
	if err := repo.Create(ctx, makeDecision(m, 1, true)); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := repo.Create(ctx, makeDecision(m, 1, false)); !errors.Is(err, gorm.ErrDuplicatedKey) {
		t.Fatalf("expected ErrDuplicatedKey, got %v", err)
	}

	// One decision per period; the next period gets a fresh one.
	if err := repo.Create(ctx, makeDecision(m, 2, false)); err != nil {
		t.Fatalf("Create next period: %v", err)
	}
}

func TestDecisionSaveAndGet(t *testing.T) {
	db := openTestDB(t)
	repo := NewShareoutRepository(db)
	ctx := context.Background()

	m := id.NewID32()
	d := makeDecision(m, 1, true)
	if err := repo.Create(ctx, d); err != nil {
		t.Fatalf("Create: %v", err)
	}

	now := time.Now().UTC()
	d.SavingsBalance = dec("2400")
	d.InterestAmount = dec("25")
	d.ShareoutCompleted = true
	d.ShareoutCompletedAt = &now
	d.CompletedBy = "admin"
	if err := repo.Save(ctx, d); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := repo.GetByMemberPeriod(ctx, m, 1)
	if err != nil {
		t.Fatalf("GetByMemberPeriod: %v", err)
	}
	if !got.ShareoutCompleted || !got.SavingsBalance.Equal(dec("2400")) {
		t.Errorf("unexpected decision: %+v", got)
	}

	if _, err := repo.GetByMemberPeriod(ctx, m, 9); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound, got %v", err)
	}
}

func TestDecisionGetForUpdate(t *testing.T) {
	db := openTestDB(t)
	repo := NewShareoutRepository(db)
	ctx := context.Background()

	m := id.NewID32()
	d := makeDecision(m, 1, true)
	if err := repo.Create(ctx, d); err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := repo.GetByMemberPeriodForUpdate(ctx, m, 1)
	if err != nil {
		t.Fatalf("GetByMemberPeriodForUpdate: %v", err)
	}
	if got.DecisionID != d.DecisionID || !got.WantsShareout {
		t.Errorf("unexpected decision: %+v", got)
	}

	if _, err := repo.GetByMemberPeriodForUpdate(ctx, m, 9); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound, got %v", err)
	}
}

func TestDecisionListByPeriod(t *testing.T) {
	db := openTestDB(t)
	repo := NewShareoutRepository(db)
	ctx := context.Background()

	for _, d := range []*shareoutDomain.Decision{
		makeDecision("bbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb", 1, true),
		makeDecision("aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa", 1, false),
		makeDecision("cccccccccccccccccccccccccccccccc", 2, true),
	} {
		if err := repo.Create(ctx, d); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	rows, err := repo.ListByPeriod(ctx, 1)
	if err != nil {
		t.Fatalf("ListByPeriod: %v", err)
	}
	if len(rows) != 2 || rows[0].MemberID != "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa" {
		t.Errorf("unexpected decisions: %+v", rows)
	}
}
