package mysql

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	shareoutDomain "github.com/barakhubs/sacco-ledger/internal/domain/shareout"
)

type ShareoutRepository struct{ db *gorm.DB }

func NewShareoutRepository(db *gorm.DB) *ShareoutRepository { return &ShareoutRepository{db: db} }

func (r *ShareoutRepository) Create(ctx context.Context, d *shareoutDomain.Decision) error {
	return r.db.WithContext(ctx).Create(d).Error
}

func (r *ShareoutRepository) Save(ctx context.Context, d *shareoutDomain.Decision) error {
	return r.db.WithContext(ctx).Save(d).Error
}

func (r *ShareoutRepository) GetByMemberPeriod(ctx context.Context, memberID string, periodID uint64) (*shareoutDomain.Decision, error) {
	var out shareoutDomain.Decision
	res := r.db.WithContext(ctx).
		Where("member_id = ? AND period_id = ?", memberID, periodID).
		First(&out)
	return &out, res.Error
}

func (r *ShareoutRepository) GetByMemberPeriodForUpdate(ctx context.Context, memberID string, periodID uint64) (*shareoutDomain.Decision, error) {
	var out shareoutDomain.Decision
	res := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("member_id = ? AND period_id = ?", memberID, periodID).
		First(&out)
	return &out, res.Error
}

func (r *ShareoutRepository) ListByPeriod(ctx context.Context, periodID uint64) ([]shareoutDomain.Decision, error) {
	var out []shareoutDomain.Decision
	res := r.db.WithContext(ctx).
		Where("period_id = ?", periodID).
		Order("member_id ASC").
		Find(&out)
	return out, res.Error
}
