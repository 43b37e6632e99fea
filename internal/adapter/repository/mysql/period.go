package mysql

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	periodDomain "github.com/barakhubs/sacco-ledger/internal/domain/period"
)

type PeriodRepository struct{ db *gorm.DB }

func NewPeriodRepository(db *gorm.DB) *PeriodRepository { return &PeriodRepository{db: db} }

func (r *PeriodRepository) Create(ctx context.Context, p *periodDomain.Period) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *PeriodRepository) Save(ctx context.Context, p *periodDomain.Period) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *PeriodRepository) GetByPeriodID(ctx context.Context, periodID string) (*periodDomain.Period, error) {
	var out periodDomain.Period
	res := r.db.WithContext(ctx).Where("period_id = ?", periodID).First(&out)
	return &out, res.Error
}

func (r *PeriodRepository) GetByPeriodIDForUpdate(ctx context.Context, periodID string) (*periodDomain.Period, error) {
	var out periodDomain.Period
	res := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("period_id = ?", periodID).
		First(&out)
	return &out, res.Error
}

func (r *PeriodRepository) GetByID(ctx context.Context, id uint64) (*periodDomain.Period, error) {
	var out periodDomain.Period
	res := r.db.WithContext(ctx).Where("id = ?", id).First(&out)
	return &out, res.Error
}

func (r *PeriodRepository) GetByYearSequence(ctx context.Context, year, sequence int) (*periodDomain.Period, error) {
	var out periodDomain.Period
	res := r.db.WithContext(ctx).Where("year = ? AND sequence = ?", year, sequence).First(&out)
	return &out, res.Error
}

func (r *PeriodRepository) GetActive(ctx context.Context) (*periodDomain.Period, error) {
	var out periodDomain.Period
	res := r.db.WithContext(ctx).Where("status = ?", periodDomain.StatusActive).First(&out)
	return &out, res.Error
}

func (r *PeriodRepository) ListByYear(ctx context.Context, year int) ([]periodDomain.Period, error) {
	var out []periodDomain.Period
	res := r.db.WithContext(ctx).Where("year = ?", year).Order("sequence ASC").Find(&out)
	return out, res.Error
}

func (r *PeriodRepository) List(ctx context.Context) ([]periodDomain.Period, error) {
	var out []periodDomain.Period
	res := r.db.WithContext(ctx).Order("year DESC, sequence DESC").Find(&out)
	return out, res.Error
}

func (r *PeriodRepository) DemoteActive(ctx context.Context) error {
	return r.db.WithContext(ctx).Model(&periodDomain.Period{}).
		Where("status = ?", periodDomain.StatusActive).
		Update("status", periodDomain.StatusCompleted).Error
}

func (r *PeriodRepository) CountActive(ctx context.Context) (int64, error) {
	var n int64
	res := r.db.WithContext(ctx).Model(&periodDomain.Period{}).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("status = ?", periodDomain.StatusActive).
		Count(&n)
	return n, res.Error
}
