package interest

import (
	"time"

	"github.com/shopspring/decimal"
)

type RunYearEndInput struct {
	Year               int             `json:"year"`
	CommitteeMemberIDs []string        `json:"committee_member_ids"`
	CommitteeRatio     decimal.Decimal `json:"committee_ratio"`
	RunBy              string          `json:"run_by"`
}

type YearEndDTO struct {
	ShareoutID        string          `json:"shareout_id"`
	Year              int             `json:"year"`
	TotalInterestPool decimal.Decimal `json:"total_interest_pool"`
	CommitteeTotal    decimal.Decimal `json:"committee_total"`
	MembersTotal      decimal.Decimal `json:"members_total"`
	Shares            []YearShareDTO  `json:"shares"`
	RunAt             time.Time       `json:"run_at"`
}

type YearShareDTO struct {
	ShareID     string          `json:"share_id"`
	MemberID    string          `json:"member_id"`
	Amount      decimal.Decimal `json:"amount"`
	ShareType   string          `json:"share_type"`
	IsDisbursed bool            `json:"is_disbursed"`
	DisbursedAt *time.Time      `json:"disbursed_at,omitempty"`
}
