package savings

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/barakhubs/sacco-ledger/internal/domain/member"
)

var (
	ErrTargetNotFound   = errors.New("savings target not found")
	ErrDuplicateTarget  = errors.New("savings target already set for this period")
	ErrDepositNotFound  = errors.New("deposit not found")
	ErrAlreadySharedOut = errors.New("deposit already shared out")
	ErrInvalidAmount    = errors.New("amount must be positive with at most 2 decimal places")
)

// Target is a member's immutable savings target for one period, derived
// from the member's category at the time it is set.
type Target struct {
	ID            uint64          `gorm:"primaryKey;column:id" json:"-"`
	TargetID      string          `gorm:"size:32;uniqueIndex:ux_targets_target_id" json:"target_id"`
	MemberID      string          `gorm:"size:32;uniqueIndex:ux_targets_member_period" json:"member_id"`
	PeriodID      uint64          `gorm:"uniqueIndex:ux_targets_member_period" json:"-"`
	Category      member.Category `gorm:"size:4" json:"category"`
	MonthlyTarget decimal.Decimal `gorm:"type:decimal(18,2)" json:"monthly_target"`
	MainShare     decimal.Decimal `gorm:"type:decimal(18,2)" json:"main_share"`
	SocialShare   decimal.Decimal `gorm:"type:decimal(18,2)" json:"social_share"`
	WelfareShare  decimal.Decimal `gorm:"type:decimal(18,2)" json:"welfare_share"`
	CreatedAt     time.Time       `gorm:"autoCreateTime" json:"created_at"`
}

func (Target) TableName() string { return "savings_targets" }

// Deposit is one recorded savings payment. Deposits are append-only;
// sharing out flips the flag but never removes the row.
type Deposit struct {
	ID          uint64          `gorm:"primaryKey;column:id" json:"-"`
	DepositID   string          `gorm:"size:32;uniqueIndex:ux_deposits_deposit_id" json:"deposit_id"`
	MemberID    string          `gorm:"size:32;index:idx_deposits_member" json:"member_id"`
	PeriodID    uint64          `gorm:"index:idx_deposits_period" json:"-"`
	Amount      decimal.Decimal `gorm:"type:decimal(18,2)" json:"amount"`
	SavedOn     time.Time       `gorm:"type:date" json:"saved_on"`
	RecordedBy  string          `gorm:"size:32" json:"recorded_by"`
	SharedOut   bool            `gorm:"default:false;index" json:"shared_out"`
	SharedOutAt *time.Time      `json:"shared_out_at,omitempty"`
	CreatedAt   time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Deposit) TableName() string { return "saving_deposits" }
