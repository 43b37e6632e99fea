package shareout

import "context"

type Repository interface {
	Create(ctx context.Context, d *Decision) error
	GetByMemberPeriod(ctx context.Context, memberID string, periodID uint64) (*Decision, error)
	// GetByMemberPeriodForUpdate locks the decision row for the enclosing
	// transaction so a check-then-write cannot race a completion.
	GetByMemberPeriodForUpdate(ctx context.Context, memberID string, periodID uint64) (*Decision, error)
	Save(ctx context.Context, d *Decision) error
	ListByPeriod(ctx context.Context, periodID uint64) ([]Decision, error)
}
