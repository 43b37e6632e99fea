package savings

import (
	"time"

	"github.com/shopspring/decimal"
)

type SetTargetInput struct {
	MemberID string `json:"member_id"`
	Category string `json:"category"`
	PeriodID string `json:"period_id"`
}

type TargetDTO struct {
	TargetID      string          `json:"target_id"`
	MemberID      string          `json:"member_id"`
	PeriodID      string          `json:"period_id"`
	Category      string          `json:"category"`
	MonthlyTarget decimal.Decimal `json:"monthly_target"`
	MainShare     decimal.Decimal `json:"main_share"`
	SocialShare   decimal.Decimal `json:"social_share"`
	WelfareShare  decimal.Decimal `json:"welfare_share"`
}

type RecordDepositInput struct {
	MemberID   string          `json:"member_id"`
	PeriodID   string          `json:"period_id"`
	Amount     decimal.Decimal `json:"amount"`
	SavedOn    time.Time       `json:"saved_on"`
	RecorderID string          `json:"recorder_id"`
}

type DepositDTO struct {
	DepositID   string          `json:"deposit_id"`
	MemberID    string          `json:"member_id"`
	PeriodID    string          `json:"period_id"`
	Amount      decimal.Decimal `json:"amount"`
	SavedOn     time.Time       `json:"saved_on"`
	RecordedBy  string          `json:"recorded_by"`
	SharedOut   bool            `json:"shared_out"`
	SharedOutAt *time.Time      `json:"shared_out_at,omitempty"`
}

// SummaryDTO is the target-vs-saved progress figure for one member/period.
type SummaryDTO struct {
	MemberID      string          `json:"member_id"`
	PeriodID      string          `json:"period_id"`
	MonthlyTarget decimal.Decimal `json:"monthly_target"`
	QuarterTarget decimal.Decimal `json:"quarter_target"`
	Saved         decimal.Decimal `json:"saved"`
	Remaining     decimal.Decimal `json:"remaining"`
}
