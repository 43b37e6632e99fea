package mysql

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	interestDomain "github.com/barakhubs/sacco-ledger/internal/domain/interest"
)

type InterestRepository struct{ db *gorm.DB }

func NewInterestRepository(db *gorm.DB) *InterestRepository { return &InterestRepository{db: db} }

func (r *InterestRepository) CreateDistribution(ctx context.Context, d *interestDomain.Distribution) error {
	return r.db.WithContext(ctx).Create(d).Error
}

func (r *InterestRepository) ListByLoan(ctx context.Context, loanID uint64) ([]interestDomain.Distribution, error) {
	var out []interestDomain.Distribution
	res := r.db.WithContext(ctx).
		Where("loan_id = ?", loanID).
		Order("distributed_date ASC, id ASC").
		Find(&out)
	return out, res.Error
}

func (r *InterestRepository) SumPoolForPeriods(ctx context.Context, periodIDs []uint64) (decimal.Decimal, error) {
	if len(periodIDs) == 0 {
		return decimal.Zero, nil
	}
	// The retained pool equals the rebate half, loan for loan.
	var total decimal.Decimal
	err := r.db.WithContext(ctx).Model(&interestDomain.Distribution{}).
		Where("period_id IN ? AND type = ?", periodIDs, interestDomain.ShareLoanBearerReturn).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).Error
	return total, err
}

func (r *InterestRepository) SumUnclaimedForMemberPeriod(ctx context.Context, memberID string, periodID uint64) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.db.WithContext(ctx).Model(&interestDomain.Distribution{}).
		Where("recipient_member_id = ? AND period_id = ? AND claimed = ? AND type IN ?",
			memberID, periodID, false,
			[]interestDomain.ShareType{interestDomain.ShareLoanBearerReturn, interestDomain.ShareMember}).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).Error
	return total, err
}

func (r *InterestRepository) MarkClaimedForMemberPeriod(ctx context.Context, memberID string, periodID uint64) error {
	now := time.Now().UTC()
	return r.db.WithContext(ctx).Model(&interestDomain.Distribution{}).
		Where("recipient_member_id = ? AND period_id = ? AND claimed = ?", memberID, periodID, false).
		Updates(map[string]any{"claimed": true, "claimed_at": now}).Error
}

func (r *InterestRepository) ArchiveDistributionsByLoan(ctx context.Context, loanID uint64) error {
	return r.db.WithContext(ctx).
		Where("loan_id = ?", loanID).
		Delete(&interestDomain.Distribution{}).Error
}

func (r *InterestRepository) CreateYearEnd(ctx context.Context, y *interestDomain.YearEndShareout) error {
	return r.db.WithContext(ctx).Create(y).Error
}

func (r *InterestRepository) GetYearEnd(ctx context.Context, year int) (*interestDomain.YearEndShareout, error) {
	var out interestDomain.YearEndShareout
	res := r.db.WithContext(ctx).Where("year = ?", year).First(&out)
	return &out, res.Error
}

func (r *InterestRepository) CreateShare(ctx context.Context, s *interestDomain.IndividualYearShare) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *InterestRepository) GetShareByShareID(ctx context.Context, shareID string) (*interestDomain.IndividualYearShare, error) {
	var out interestDomain.IndividualYearShare
	res := r.db.WithContext(ctx).Where("share_id = ?", shareID).First(&out)
	return &out, res.Error
}

func (r *InterestRepository) SaveShare(ctx context.Context, s *interestDomain.IndividualYearShare) error {
	return r.db.WithContext(ctx).Save(s).Error
}

func (r *InterestRepository) ListSharesByShareout(ctx context.Context, yearShareoutID uint64) ([]interestDomain.IndividualYearShare, error) {
	var out []interestDomain.IndividualYearShare
	res := r.db.WithContext(ctx).
		Where("year_shareout_id = ?", yearShareoutID).
		Order("share_type ASC, member_id ASC").
		Find(&out)
	return out, res.Error
}
