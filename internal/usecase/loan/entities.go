package loan

import (
	"time"

	"github.com/shopspring/decimal"
)

type ApplyInput struct {
	MemberID              string          `json:"member_id"`
	PeriodID              string          `json:"period_id"`
	Principal             decimal.Decimal `json:"principal"`
	Purpose               string          `json:"purpose"`
	ExpectedRepaymentDate time.Time       `json:"expected_repayment_date"`
}

type RecordRepaymentInput struct {
	LoanNumber    string          `json:"loan_number"`
	Amount        decimal.Decimal `json:"amount"`
	PaymentMethod string          `json:"payment_method"`
	Notes         string          `json:"notes"`
}

type LoanDTO struct {
	LoanNumber            string          `json:"loan_number"`
	MemberID              string          `json:"member_id"`
	Principal             decimal.Decimal `json:"principal"`
	InterestRate          decimal.Decimal `json:"interest_rate"`
	TotalAmount           decimal.Decimal `json:"total_amount"`
	AmountPaid            decimal.Decimal `json:"amount_paid"`
	OutstandingBalance    decimal.Decimal `json:"outstanding_balance"`
	Status                string          `json:"status"`
	Purpose               string          `json:"purpose"`
	AppliedDate           time.Time       `json:"applied_date"`
	ApprovedDate          *time.Time      `json:"approved_date,omitempty"`
	DisbursedDate         *time.Time      `json:"disbursed_date,omitempty"`
	ExpectedRepaymentDate time.Time       `json:"expected_repayment_date"`
}

type RepaymentDTO struct {
	RepaymentID      string          `json:"repayment_id"`
	LoanNumber       string          `json:"loan_number"`
	Amount           decimal.Decimal `json:"amount"`
	PrincipalPortion decimal.Decimal `json:"principal_portion"`
	InterestPortion  decimal.Decimal `json:"interest_portion"`
	PaymentDate      time.Time       `json:"payment_date"`
	PaymentMethod    string          `json:"payment_method"`
	Reference        string          `json:"reference"`
	LoanStatus       string          `json:"loan_status"`
	Outstanding      decimal.Decimal `json:"outstanding_balance"`
}
