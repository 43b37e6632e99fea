package shareout

import (
	"time"

	"github.com/shopspring/decimal"
)

type DecideInput struct {
	MemberID      string `json:"member_id"`
	PeriodID      string `json:"period_id"`
	WantsShareout bool   `json:"wants_shareout"`
}

type CompleteInput struct {
	MemberID    string `json:"member_id"`
	PeriodID    string `json:"period_id"`
	CompletedBy string `json:"completed_by"`
}

type DecisionDTO struct {
	DecisionID          string          `json:"decision_id"`
	MemberID            string          `json:"member_id"`
	PeriodID            string          `json:"period_id"`
	WantsShareout       bool            `json:"wants_shareout"`
	SavingsBalance      decimal.Decimal `json:"savings_balance"`
	InterestAmount      decimal.Decimal `json:"interest_amount"`
	ShareoutCompleted   bool            `json:"shareout_completed"`
	DecisionMadeAt      time.Time       `json:"decision_made_at"`
	ShareoutCompletedAt *time.Time      `json:"shareout_completed_at,omitempty"`
	CompletedBy         string          `json:"completed_by,omitempty"`
}
