package shareout

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrNotFound       = errors.New("shareout decision not found")
	ErrDecisionLocked = errors.New("shareout decision is locked")
	ErrNotOptedIn     = errors.New("member did not opt in to shareout")
	ErrNotActivated   = errors.New("shareout is not activated for this period")
)

// Decision is one member's choice to withdraw or retain period savings.
// Revisable until completed; immutable after.
type Decision struct {
	ID                  uint64          `gorm:"primaryKey;column:id" json:"-"`
	DecisionID          string          `gorm:"size:32;uniqueIndex:ux_decisions_decision_id" json:"decision_id"`
	MemberID            string          `gorm:"size:32;uniqueIndex:ux_decisions_member_period" json:"member_id"`
	PeriodID            uint64          `gorm:"uniqueIndex:ux_decisions_member_period" json:"-"`
	WantsShareout       bool            `json:"wants_shareout"`
	SavingsBalance      decimal.Decimal `gorm:"type:decimal(18,2)" json:"savings_balance"`
	InterestAmount      decimal.Decimal `gorm:"type:decimal(18,2)" json:"interest_amount"`
	ShareoutCompleted   bool            `gorm:"default:false" json:"shareout_completed"`
	DecisionMadeAt      time.Time       `json:"decision_made_at"`
	ShareoutCompletedAt *time.Time      `json:"shareout_completed_at,omitempty"`
	CompletedBy         string          `gorm:"size:32" json:"completed_by,omitempty"`
	CreatedAt           time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt           time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Decision) TableName() string { return "shareout_decisions" }
