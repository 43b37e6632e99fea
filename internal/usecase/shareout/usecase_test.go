package shareout

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	periodDomain "github.com/barakhubs/sacco-ledger/internal/domain/period"
	domain "github.com/barakhubs/sacco-ledger/internal/domain/shareout"
	"github.com/barakhubs/sacco-ledger/internal/domain/uow"
	"github.com/barakhubs/sacco-ledger/internal/testutil/interestmock"
	"github.com/barakhubs/sacco-ledger/internal/testutil/periodmock"
	"github.com/barakhubs/sacco-ledger/internal/testutil/savingsmock"
	"github.com/barakhubs/sacco-ledger/internal/testutil/shareoutmock"
	"github.com/barakhubs/sacco-ledger/internal/testutil/uowmock"
)

const (
	memberID = "bbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb"
	periodID = "pppppppppppppppppppppppppppppppp"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func periodRepo(status periodDomain.Status, activated bool) *periodmock.Repo {
	return &periodmock.Repo{
		GetByPeriodIDFn: func(ctx context.Context, id string) (*periodDomain.Period, error) {
			return &periodDomain.Period{
				ID: 7, PeriodID: periodID, Year: 2026, Sequence: 1,
				Status: status, ShareoutActivated: activated,
			}, nil
		},
	}
}

func noDecision(ctx context.Context, m string, p uint64) (*domain.Decision, error) {
	return nil, gorm.ErrRecordNotFound
}

func TestDecide_CreatesDecision(t *testing.T) {
	var saved *domain.Decision
	repo := &shareoutmock.Repo{
		GetByMemberPeriodForUpdateFn: noDecision,
		CreateFn: func(ctx context.Context, dec *domain.Decision) error {
			saved = dec
			return nil
		},
	}
	tx := uowmock.Passthrough(uow.Repos{Shareouts: repo})
	uc := NewUsecase(repo, periodRepo(periodDomain.StatusCompleted, true), tx)

	dto, err := uc.Decide(context.Background(), DecideInput{
		MemberID: memberID, PeriodID: periodID, WantsShareout: true,
	})
	if err != nil {
		t.Fatalf("Decide err: %v", err)
	}
	if !dto.WantsShareout || dto.ShareoutCompleted {
		t.Fatalf("decision dto: %+v", dto)
	}
	if saved == nil || saved.PeriodID != 7 {
		t.Fatalf("decision not persisted against resolved period: %+v", saved)
	}
}

func TestDecide_RevisesUntilCompleted(t *testing.T) {
	existing := &domain.Decision{
		DecisionID: "dddddddddddddddddddddddddddddddd",
		MemberID:   memberID, PeriodID: 7, WantsShareout: true,
	}
	repo := &shareoutmock.Repo{
		GetByMemberPeriodForUpdateFn: func(ctx context.Context, m string, p uint64) (*domain.Decision, error) {
			return existing, nil
		},
	}
	tx := uowmock.Passthrough(uow.Repos{Shareouts: repo})
	uc := NewUsecase(repo, periodRepo(periodDomain.StatusCompleted, true), tx)

	dto, err := uc.Decide(context.Background(), DecideInput{
		MemberID: memberID, PeriodID: periodID, WantsShareout: false,
	})
	if err != nil {
		t.Fatalf("Decide err: %v", err)
	}
	if dto.WantsShareout {
		t.Fatal("revision not applied")
	}
}

func TestDecide_LockedAfterCompletion(t *testing.T) {
	repo := &shareoutmock.Repo{
		GetByMemberPeriodForUpdateFn: func(ctx context.Context, m string, p uint64) (*domain.Decision, error) {
			return &domain.Decision{MemberID: m, PeriodID: p, WantsShareout: true, ShareoutCompleted: true}, nil
		},
		SaveFn: func(ctx context.Context, dec *domain.Decision) error {
			t.Fatal("Save must not run on a completed decision")
			return nil
		},
	}
	tx := uowmock.Passthrough(uow.Repos{Shareouts: repo})
	uc := NewUsecase(repo, periodRepo(periodDomain.StatusCompleted, true), tx)

	_, err := uc.Decide(context.Background(), DecideInput{
		MemberID: memberID, PeriodID: periodID, WantsShareout: false,
	})
	if !errors.Is(err, domain.ErrDecisionLocked) {
		t.Fatalf("want ErrDecisionLocked, got %v", err)
	}
}

// A completion that commits after the caller first looked at the decision
// must still win: the revise path goes through the locked read, so it sees
// the completed row and refuses to overwrite the snapshot.
func TestDecide_CompletionWinsOverConcurrentRevision(t *testing.T) {
	stale := &domain.Decision{
		DecisionID: "dddddddddddddddddddddddddddddddd",
		MemberID:   memberID, PeriodID: 7, WantsShareout: true,
	}
	completed := &domain.Decision{
		DecisionID: stale.DecisionID,
		MemberID:   memberID, PeriodID: 7, WantsShareout: true,
		ShareoutCompleted: true, CompletedBy: "admin",
		SavingsBalance: d("2400"), InterestAmount: d("25"),
	}
	repo := &shareoutmock.Repo{
		// the unlocked read still shows the pre-completion state
		GetByMemberPeriodFn: func(ctx context.Context, m string, p uint64) (*domain.Decision, error) {
			return stale, nil
		},
		GetByMemberPeriodForUpdateFn: func(ctx context.Context, m string, p uint64) (*domain.Decision, error) {
			return completed, nil
		},
		SaveFn: func(ctx context.Context, dec *domain.Decision) error {
			t.Fatalf("completed decision written back: %+v", dec)
			return nil
		},
	}
	tx := uowmock.Passthrough(uow.Repos{Shareouts: repo})
	uc := NewUsecase(repo, periodRepo(periodDomain.StatusCompleted, true), tx)

	_, err := uc.Decide(context.Background(), DecideInput{
		MemberID: memberID, PeriodID: periodID, WantsShareout: false,
	})
	if !errors.Is(err, domain.ErrDecisionLocked) {
		t.Fatalf("want ErrDecisionLocked, got %v", err)
	}
}

func TestDecide_RequiresActivatedCompletedPeriod(t *testing.T) {
	tests := []struct {
		name      string
		status    periodDomain.Status
		activated bool
	}{
		{name: "active period", status: periodDomain.StatusActive, activated: true},
		{name: "completed but not activated", status: periodDomain.StatusCompleted, activated: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := NewUsecase(&shareoutmock.Repo{}, periodRepo(tt.status, tt.activated), uowmock.New())

			_, err := uc.Decide(context.Background(), DecideInput{
				MemberID: memberID, PeriodID: periodID, WantsShareout: true,
			})
			if !errors.Is(err, domain.ErrNotActivated) {
				t.Fatalf("want ErrNotActivated, got %v", err)
			}
		})
	}
}

func TestComplete_SnapshotsAndLocks(t *testing.T) {
	decision := &domain.Decision{
		DecisionID: "dddddddddddddddddddddddddddddddd",
		MemberID:   memberID, PeriodID: 7, WantsShareout: true,
	}
	shareouts := &shareoutmock.Repo{
		GetByMemberPeriodForUpdateFn: func(ctx context.Context, m string, p uint64) (*domain.Decision, error) {
			return decision, nil
		},
	}
	var savingsMarked, interestMarked bool
	savingsRepo := &savingsmock.Repo{
		SumUnsharedForPeriodFn: func(ctx context.Context, m string, p uint64) (decimal.Decimal, error) {
			return d("2400"), nil
		},
		MarkSharedOutForPeriodFn: func(ctx context.Context, m string, p uint64) error {
			savingsMarked = true
			return nil
		},
	}
	interestRepo := &interestmock.Repo{
		SumUnclaimedForMemberPeriodFn: func(ctx context.Context, m string, p uint64) (decimal.Decimal, error) {
			return d("25"), nil
		},
		MarkClaimedForMemberPeriodFn: func(ctx context.Context, m string, p uint64) error {
			interestMarked = true
			return nil
		},
	}
	periods := periodRepo(periodDomain.StatusCompleted, true)
	tx := uowmock.Passthrough(uow.Repos{
		Periods: periods, Savings: savingsRepo, Interest: interestRepo, Shareouts: shareouts,
	})
	uc := NewUsecase(shareouts, periods, tx)

	dto, err := uc.Complete(context.Background(), CompleteInput{
		MemberID: memberID, PeriodID: periodID, CompletedBy: "admin",
	})
	if err != nil {
		t.Fatalf("Complete err: %v", err)
	}
	if !dto.SavingsBalance.Equal(d("2400")) {
		t.Fatalf("savings snapshot = %s, want 2400", dto.SavingsBalance)
	}
	if !dto.InterestAmount.Equal(d("25")) {
		t.Fatalf("interest snapshot = %s, want 25", dto.InterestAmount)
	}
	if !dto.ShareoutCompleted || dto.ShareoutCompletedAt == nil {
		t.Fatalf("decision not locked: %+v", dto)
	}
	if !savingsMarked || !interestMarked {
		t.Fatalf("consumed flags: savings=%v interest=%v", savingsMarked, interestMarked)
	}
}

func TestComplete_NotOptedIn(t *testing.T) {
	shareouts := &shareoutmock.Repo{
		GetByMemberPeriodForUpdateFn: func(ctx context.Context, m string, p uint64) (*domain.Decision, error) {
			return &domain.Decision{MemberID: m, PeriodID: p, WantsShareout: false}, nil
		},
	}
	periods := periodRepo(periodDomain.StatusCompleted, true)
	tx := uowmock.Passthrough(uow.Repos{Periods: periods, Shareouts: shareouts})
	uc := NewUsecase(shareouts, periods, tx)

	_, err := uc.Complete(context.Background(), CompleteInput{
		MemberID: memberID, PeriodID: periodID, CompletedBy: "admin",
	})
	if !errors.Is(err, domain.ErrNotOptedIn) {
		t.Fatalf("want ErrNotOptedIn, got %v", err)
	}
}

func TestComplete_AlreadyCompleted(t *testing.T) {
	shareouts := &shareoutmock.Repo{
		GetByMemberPeriodForUpdateFn: func(ctx context.Context, m string, p uint64) (*domain.Decision, error) {
			return &domain.Decision{MemberID: m, PeriodID: p, WantsShareout: true, ShareoutCompleted: true}, nil
		},
	}
	periods := periodRepo(periodDomain.StatusCompleted, true)
	tx := uowmock.Passthrough(uow.Repos{Periods: periods, Shareouts: shareouts})
	uc := NewUsecase(shareouts, periods, tx)

	_, err := uc.Complete(context.Background(), CompleteInput{
		MemberID: memberID, PeriodID: periodID, CompletedBy: "admin",
	})
	if !errors.Is(err, domain.ErrDecisionLocked) {
		t.Fatalf("want ErrDecisionLocked, got %v", err)
	}
}
