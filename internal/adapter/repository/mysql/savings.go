package mysql

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	savingsDomain "github.com/barakhubs/sacco-ledger/internal/domain/savings"
)

type SavingsRepository struct{ db *gorm.DB }

func NewSavingsRepository(db *gorm.DB) *SavingsRepository { return &SavingsRepository{db: db} }

func (r *SavingsRepository) CreateTarget(ctx context.Context, t *savingsDomain.Target) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *SavingsRepository) GetTarget(ctx context.Context, memberID string, periodID uint64) (*savingsDomain.Target, error) {
	var out savingsDomain.Target
	res := r.db.WithContext(ctx).
		Where("member_id = ? AND period_id = ?", memberID, periodID).
		First(&out)
	return &out, res.Error
}

func (r *SavingsRepository) CreateDeposit(ctx context.Context, d *savingsDomain.Deposit) error {
	return r.db.WithContext(ctx).Create(d).Error
}

func (r *SavingsRepository) GetByDepositID(ctx context.Context, depositID string) (*savingsDomain.Deposit, error) {
	var out savingsDomain.Deposit
	res := r.db.WithContext(ctx).Where("deposit_id = ?", depositID).First(&out)
	return &out, res.Error
}

func (r *SavingsRepository) SaveDeposit(ctx context.Context, d *savingsDomain.Deposit) error {
	return r.db.WithContext(ctx).Save(d).Error
}

func (r *SavingsRepository) ListByMemberPeriod(ctx context.Context, memberID string, periodID uint64) ([]savingsDomain.Deposit, error) {
	var out []savingsDomain.Deposit
	res := r.db.WithContext(ctx).
		Where("member_id = ? AND period_id = ?", memberID, periodID).
		Order("saved_on ASC, id ASC").
		Find(&out)
	return out, res.Error
}

func (r *SavingsRepository) SumForPeriod(ctx context.Context, memberID string, periodID uint64) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.db.WithContext(ctx).Model(&savingsDomain.Deposit{}).
		Where("member_id = ? AND period_id = ?", memberID, periodID).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).Error
	return total, err
}

func (r *SavingsRepository) SumUnsharedForPeriod(ctx context.Context, memberID string, periodID uint64) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.db.WithContext(ctx).Model(&savingsDomain.Deposit{}).
		Where("member_id = ? AND period_id = ? AND shared_out = ?", memberID, periodID, false).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).Error
	return total, err
}

func (r *SavingsRepository) SumAvailable(ctx context.Context, memberID string) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.db.WithContext(ctx).Model(&savingsDomain.Deposit{}).
		Where("member_id = ? AND shared_out = ?", memberID, false).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).Error
	return total, err
}

func (r *SavingsRepository) TotalsByMemberForPeriods(ctx context.Context, periodIDs []uint64) ([]savingsDomain.MemberTotal, error) {
	var rows []struct {
		MemberID string
		Total    decimal.Decimal
	}
	err := r.db.WithContext(ctx).Model(&savingsDomain.Deposit{}).
		Where("period_id IN ?", periodIDs).
		Select("member_id, COALESCE(SUM(amount), 0) AS total").
		Group("member_id").
		Order("member_id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make([]savingsDomain.MemberTotal, 0, len(rows))
	for _, row := range rows {
		out = append(out, savingsDomain.MemberTotal{MemberID: row.MemberID, Total: row.Total})
	}
	return out, nil
}

func (r *SavingsRepository) MarkSharedOutForPeriod(ctx context.Context, memberID string, periodID uint64) error {
	now := time.Now().UTC()
	return r.db.WithContext(ctx).Model(&savingsDomain.Deposit{}).
		Where("member_id = ? AND period_id = ? AND shared_out = ?", memberID, periodID, false).
		Updates(map[string]any{"shared_out": true, "shared_out_at": now}).Error
}
