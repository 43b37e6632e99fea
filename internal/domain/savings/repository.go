package savings

import (
	"context"

	"github.com/shopspring/decimal"
)

// MemberTotal pairs a member with a summed deposit amount.
type MemberTotal struct {
	MemberID string
	Total    decimal.Decimal
}

type Repository interface {
	CreateTarget(ctx context.Context, t *Target) error
	GetTarget(ctx context.Context, memberID string, periodID uint64) (*Target, error)

	CreateDeposit(ctx context.Context, d *Deposit) error
	GetByDepositID(ctx context.Context, depositID string) (*Deposit, error)
	SaveDeposit(ctx context.Context, d *Deposit) error
	ListByMemberPeriod(ctx context.Context, memberID string, periodID uint64) ([]Deposit, error)

	// SumForPeriod totals every deposit for the pair, shared out or not.
	SumForPeriod(ctx context.Context, memberID string, periodID uint64) (decimal.Decimal, error)
	// SumUnsharedForPeriod totals only deposits still held for the pair.
	SumUnsharedForPeriod(ctx context.Context, memberID string, periodID uint64) (decimal.Decimal, error)
	// SumAvailable totals unshared deposits across all periods.
	SumAvailable(ctx context.Context, memberID string) (decimal.Decimal, error)
	// TotalsByMemberForPeriods groups deposit sums per member over the
	// given periods; year-end pro-rata weighting reads from this.
	TotalsByMemberForPeriods(ctx context.Context, periodIDs []uint64) ([]MemberTotal, error)

	// MarkSharedOutForPeriod flips every unshared deposit of the pair.
	MarkSharedOutForPeriod(ctx context.Context, memberID string, periodID uint64) error
}
