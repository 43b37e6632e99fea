package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"github.com/barakhubs/sacco-ledger/internal/usecase/loan"
)

type LoanHandler struct{ uc *loan.Usecase }

func NewLoanHandler(uc *loan.Usecase) *LoanHandler { return &LoanHandler{uc: uc} }

type applyLoanReq struct {
	MemberID              string  `json:"member_id"               validate:"required,hex32"`
	PeriodID              string  `json:"period_id"               validate:"required,hex32"`
	Principal             float64 `json:"principal"               validate:"required,gt=0,dec2"`
	Purpose               string  `json:"purpose"                 validate:"required"`
	ExpectedRepaymentDate string  `json:"expected_repayment_date" validate:"required,datetime=2006-01-02"`
}

func (h *LoanHandler) Apply(c echo.Context) error {
	var req applyLoanReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	expected, _ := time.Parse("2006-01-02", req.ExpectedRepaymentDate)
	dto, err := h.uc.Apply(c.Request().Context(), loan.ApplyInput{
		MemberID:              req.MemberID,
		PeriodID:              req.PeriodID,
		Principal:             decimal.NewFromFloat(req.Principal).Round(2),
		Purpose:               req.Purpose,
		ExpectedRepaymentDate: expected,
	})
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *LoanHandler) Approve(c echo.Context) error {
	approver := c.Request().Header.Get("Ax-Member-Id")
	dto, err := h.uc.Approve(c.Request().Context(), c.Param("loan_number"), approver)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

type rejectLoanReq struct {
	Reason string `json:"reason" validate:"required"`
}

func (h *LoanHandler) Reject(c echo.Context) error {
	var req rejectLoanReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.Reject(c.Request().Context(), c.Param("loan_number"), req.Reason)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *LoanHandler) Disburse(c echo.Context) error {
	dto, err := h.uc.Disburse(c.Request().Context(), c.Param("loan_number"))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *LoanHandler) MarkDefaulted(c echo.Context) error {
	dto, err := h.uc.MarkDefaulted(c.Request().Context(), c.Param("loan_number"))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

type recordRepaymentReq struct {
	Amount        float64 `json:"amount"         validate:"required,gt=0,dec2"`
	PaymentMethod string  `json:"payment_method" validate:"required"`
	Notes         string  `json:"notes"`
}

func (h *LoanHandler) RecordRepayment(c echo.Context) error {
	var req recordRepaymentReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.RecordRepayment(c.Request().Context(), loan.RecordRepaymentInput{
		LoanNumber:    c.Param("loan_number"),
		Amount:        decimal.NewFromFloat(req.Amount).Round(2),
		PaymentMethod: req.PaymentMethod,
		Notes:         req.Notes,
	})
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *LoanHandler) GetLoan(c echo.Context) error {
	dto, err := h.uc.Get(c.Request().Context(), c.Param("loan_number"))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *LoanHandler) ListMemberLoans(c echo.Context) error {
	dtos, err := h.uc.ListByMember(c.Request().Context(), c.Param("member_id"))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dtos)
}

func (h *LoanHandler) DeleteLoan(c echo.Context) error {
	deletedBy := c.Request().Header.Get("Ax-Member-Id")
	if err := h.uc.Delete(c.Request().Context(), c.Param("loan_number"), deletedBy); err != nil {
		return writeDomainError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
