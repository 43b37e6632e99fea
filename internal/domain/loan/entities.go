package loan

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrNotFound           = errors.New("loan not found")
	ErrInvalidTransition  = errors.New("loan is not in the required status for this operation")
	ErrActiveLoanExists   = errors.New("member already has an open loan")
	ErrInvalidAmount      = errors.New("amount must be positive with at most 2 decimal places")
	ErrExceedsOutstanding = errors.New("repayment exceeds outstanding balance")
)

// FixedRate is the flat interest rate applied once on the principal.
var FixedRate = decimal.RequireFromString("0.05")

// RebateRatio is the half of collected interest returned to the borrower
// on full repayment; the rest accumulates in the year's pool.
var RebateRatio = decimal.RequireFromString("0.5")

type Status string

const (
	StatusPending   Status = "pending"
	StatusApproved  Status = "approved"
	StatusRejected  Status = "rejected"
	StatusDisbursed Status = "disbursed"
	StatusCompleted Status = "completed"
	StatusDefaulted Status = "defaulted"
)

// Open reports whether the status still blocks a new application.
func (s Status) Open() bool {
	switch s {
	case StatusPending, StatusApproved, StatusDisbursed:
		return true
	}
	return false
}

type Loan struct {
	ID                    uint64          `gorm:"primaryKey;column:id" json:"-"`
	LoanNumber            string          `gorm:"size:32;uniqueIndex:ux_loans_loan_number" json:"loan_number"`
	MemberID              string          `gorm:"size:32;index:idx_loans_member" json:"member_id"`
	PeriodID              uint64          `gorm:"index:idx_loans_period" json:"-"`
	Principal             decimal.Decimal `gorm:"type:decimal(18,2)" json:"principal"`
	InterestRate          decimal.Decimal `gorm:"type:decimal(6,4)" json:"interest_rate"`
	TotalAmount           decimal.Decimal `gorm:"type:decimal(18,2)" json:"total_amount"`
	AmountPaid            decimal.Decimal `gorm:"type:decimal(18,2)" json:"amount_paid"`
	OutstandingBalance    decimal.Decimal `gorm:"type:decimal(18,2)" json:"outstanding_balance"`
	Status                Status          `gorm:"size:16;default:'pending';index" json:"status"`
	Purpose               string          `gorm:"type:text" json:"purpose"`
	RejectReason          string          `gorm:"type:text" json:"reject_reason,omitempty"`
	AppliedDate           time.Time       `gorm:"type:date" json:"applied_date"`
	ApprovedDate          *time.Time      `gorm:"type:date" json:"approved_date,omitempty"`
	ApprovedBy            string          `gorm:"size:32" json:"approved_by,omitempty"`
	DisbursedDate         *time.Time      `gorm:"type:date" json:"disbursed_date,omitempty"`
	ExpectedRepaymentDate time.Time       `gorm:"type:date" json:"expected_repayment_date"`
	StatusUpdatedAt       time.Time       `gorm:"autoCreateTime" json:"status_updated_at"`
	CreatedAt             time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt             time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt             gorm.DeletedAt  `gorm:"index" json:"-"`
	DeletedBy             string          `gorm:"size:32" json:"-"`
}

func (Loan) TableName() string { return "loans" }

// TotalInterest is the fixed interest charged on this loan.
func (l *Loan) TotalInterest() decimal.Decimal { return l.TotalAmount.Sub(l.Principal) }

// Repayment is one payment against a loan. The loan exclusively owns
// its repayments; archiving a loan archives these too.
type Repayment struct {
	ID               uint64          `gorm:"primaryKey;column:id" json:"-"`
	RepaymentID      string          `gorm:"size:32;uniqueIndex:ux_repayments_repayment_id" json:"repayment_id"`
	LoanID           uint64          `gorm:"index:idx_repayments_loan;not null" json:"-"`
	Amount           decimal.Decimal `gorm:"type:decimal(18,2)" json:"amount"`
	PrincipalPortion decimal.Decimal `gorm:"type:decimal(18,2)" json:"principal_portion"`
	InterestPortion  decimal.Decimal `gorm:"type:decimal(18,2)" json:"interest_portion"`
	PaymentDate      time.Time       `gorm:"type:date" json:"payment_date"`
	PaymentMethod    string          `gorm:"size:32" json:"payment_method"`
	Reference        string          `gorm:"size:36" json:"reference"`
	Notes            string          `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt        time.Time       `gorm:"autoCreateTime" json:"created_at"`
	DeletedAt        gorm.DeletedAt  `gorm:"index" json:"-"`
}

func (Repayment) TableName() string { return "loan_repayments" }
