package period

import "context"

type Repository interface {
	Create(ctx context.Context, p *Period) error
	GetByPeriodID(ctx context.Context, periodID string) (*Period, error)
	// GetByPeriodIDForUpdate locks the period row for the enclosing transaction.
	GetByPeriodIDForUpdate(ctx context.Context, periodID string) (*Period, error)
	GetByID(ctx context.Context, id uint64) (*Period, error)
	GetByYearSequence(ctx context.Context, year, sequence int) (*Period, error)
	// GetActive returns the single active period, gorm.ErrRecordNotFound if none.
	GetActive(ctx context.Context) (*Period, error)
	ListByYear(ctx context.Context, year int) ([]Period, error)
	List(ctx context.Context) ([]Period, error)
	Save(ctx context.Context, p *Period) error
	// DemoteActive marks every currently active period completed.
	DemoteActive(ctx context.Context) error
	// CountActive reads the current number of active periods with a
	// locking read, blocking on rows another transaction is promoting.
	CountActive(ctx context.Context) (int64, error)
}
