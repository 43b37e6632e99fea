package interest

import (
	"context"

	"github.com/shopspring/decimal"
)

type Repository interface {
	CreateDistribution(ctx context.Context, d *Distribution) error
	ListByLoan(ctx context.Context, loanID uint64) ([]Distribution, error)
	// SumPoolForPeriods returns the pooled (undistributed) half of
	// interest for the given periods. The pool mirrors the rebate rows
	// one-to-one, so this sums loan_bearer_return amounts.
	SumPoolForPeriods(ctx context.Context, periodIDs []uint64) (decimal.Decimal, error)
	// SumUnclaimedForMemberPeriod totals the member's unclaimed
	// rebate/member_share distributions for one period.
	SumUnclaimedForMemberPeriod(ctx context.Context, memberID string, periodID uint64) (decimal.Decimal, error)
	// MarkClaimedForMemberPeriod flips the member's unclaimed
	// distributions for the period; called when a shareout completes.
	MarkClaimedForMemberPeriod(ctx context.Context, memberID string, periodID uint64) error
	ArchiveDistributionsByLoan(ctx context.Context, loanID uint64) error

	CreateYearEnd(ctx context.Context, y *YearEndShareout) error
	GetYearEnd(ctx context.Context, year int) (*YearEndShareout, error)
	CreateShare(ctx context.Context, s *IndividualYearShare) error
	GetShareByShareID(ctx context.Context, shareID string) (*IndividualYearShare, error)
	SaveShare(ctx context.Context, s *IndividualYearShare) error
	ListSharesByShareout(ctx context.Context, yearShareoutID uint64) ([]IndividualYearShare, error)
}
