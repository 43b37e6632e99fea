package interest

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrShareNotFound    = errors.New("year share not found")
	ErrAlreadyDisbursed = errors.New("year share already disbursed")
	ErrYearAlreadyRun   = errors.New("year-end shareout already run for this year")
	ErrYearNotClosed    = errors.New("year has periods that are not completed")
	ErrInvalidInput     = errors.New("invalid year-end input")
	ErrNoSavings        = errors.New("no recorded savings to pro-rate the member pool")
)

// ShareType discriminates who an interest amount goes to.
type ShareType string

const (
	ShareLoanBearerReturn ShareType = "loan_bearer_return"
	ShareCommittee        ShareType = "committee_share"
	ShareMember           ShareType = "member_share"
)

// Distribution is one interest payment owed to a member. The rebate half
// is written when a loan completes; the pooled half only materializes as
// IndividualYearShare rows at year end. A loan owns the distributions it
// generated.
type Distribution struct {
	ID                uint64          `gorm:"primaryKey;column:id" json:"-"`
	DistributionID    string          `gorm:"size:32;uniqueIndex:ux_distributions_distribution_id" json:"distribution_id"`
	PeriodID          uint64          `gorm:"index:idx_distributions_period" json:"-"`
	LoanID            uint64          `gorm:"index:idx_distributions_loan" json:"-"`
	RecipientMemberID string          `gorm:"size:32;index:idx_distributions_recipient" json:"recipient_member_id"`
	Amount            decimal.Decimal `gorm:"type:decimal(18,2)" json:"amount"`
	Type              ShareType       `gorm:"size:24" json:"type"`
	DistributedDate   time.Time       `gorm:"type:date" json:"distributed_date"`
	Reference         string          `gorm:"size:36" json:"reference"`
	// Claimed flips when a period shareout consumes this distribution.
	Claimed   bool           `gorm:"default:false;index" json:"claimed"`
	ClaimedAt *time.Time     `json:"claimed_at,omitempty"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Distribution) TableName() string { return "interest_distributions" }

// YearEndShareout is the once-per-year aggregation of the pooled half of
// loan interest into committee and member shares.
type YearEndShareout struct {
	ID                uint64          `gorm:"primaryKey;column:id" json:"-"`
	ShareoutID        string          `gorm:"size:32;uniqueIndex:ux_year_shareouts_shareout_id" json:"shareout_id"`
	Year              int             `gorm:"uniqueIndex:ux_year_shareouts_year" json:"year"`
	TotalInterestPool decimal.Decimal `gorm:"type:decimal(18,2)" json:"total_interest_pool"`
	CommitteeTotal    decimal.Decimal `gorm:"type:decimal(18,2)" json:"committee_total"`
	MembersTotal      decimal.Decimal `gorm:"type:decimal(18,2)" json:"members_total"`
	RunBy             string          `gorm:"size:32" json:"run_by"`
	RunAt             time.Time       `json:"run_at"`
	CreatedAt         time.Time       `gorm:"autoCreateTime" json:"created_at"`
}

func (YearEndShareout) TableName() string { return "year_end_shareouts" }

// IndividualYearShare is one member's payable slice of a year-end
// shareout. Rows are written once and never amended; only the disbursal
// flag moves, via an explicit action.
type IndividualYearShare struct {
	ID             uint64          `gorm:"primaryKey;column:id" json:"-"`
	ShareID        string          `gorm:"size:32;uniqueIndex:ux_year_shares_share_id" json:"share_id"`
	YearShareoutID uint64          `gorm:"index:idx_year_shares_shareout;not null" json:"-"`
	MemberID       string          `gorm:"size:32;index:idx_year_shares_member" json:"member_id"`
	Amount         decimal.Decimal `gorm:"type:decimal(18,2)" json:"amount"`
	ShareType      ShareType       `gorm:"size:24" json:"share_type"`
	IsDisbursed    bool            `gorm:"default:false" json:"is_disbursed"`
	DisbursedAt    *time.Time      `json:"disbursed_at,omitempty"`
	DisbursedBy    string          `gorm:"size:32" json:"disbursed_by,omitempty"`
	CreatedAt      time.Time       `gorm:"autoCreateTime" json:"created_at"`
}

func (IndividualYearShare) TableName() string { return "individual_year_shares" }
