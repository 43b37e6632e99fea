package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"github.com/barakhubs/sacco-ledger/internal/usecase/savings"
)

type SavingsHandler struct{ uc *savings.Usecase }

func NewSavingsHandler(uc *savings.Usecase) *SavingsHandler { return &SavingsHandler{uc: uc} }

type setTargetReq struct {
	MemberID string `json:"member_id" validate:"required,hex32"`
	Category string `json:"category"  validate:"required,oneof=A B C"`
	PeriodID string `json:"period_id" validate:"required,hex32"`
}

func (h *SavingsHandler) SetTarget(c echo.Context) error {
	var req setTargetReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.SetTarget(c.Request().Context(), savings.SetTargetInput(req))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

type recordDepositReq struct {
	MemberID string  `json:"member_id" validate:"required,hex32"`
	PeriodID string  `json:"period_id" validate:"required,hex32"`
	Amount   float64 `json:"amount"    validate:"required,gt=0,dec2"`
	SavedOn  string  `json:"saved_on"  validate:"omitempty,datetime=2006-01-02"`
}

func (h *SavingsHandler) RecordDeposit(c echo.Context) error {
	var req recordDepositReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	var savedOn time.Time
	if req.SavedOn != "" {
		savedOn, _ = time.Parse("2006-01-02", req.SavedOn)
	}
	dto, err := h.uc.RecordDeposit(c.Request().Context(), savings.RecordDepositInput{
		MemberID:   req.MemberID,
		PeriodID:   req.PeriodID,
		Amount:     decimal.NewFromFloat(req.Amount).Round(2),
		SavedOn:    savedOn,
		RecorderID: c.Request().Header.Get("Ax-Member-Id"),
	})
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *SavingsHandler) QuarterTotal(c echo.Context) error {
	total, err := h.uc.QuarterTotal(c.Request().Context(), c.Param("member_id"), c.Param("period_id"))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"total": total})
}

func (h *SavingsHandler) AvailableBalance(c echo.Context) error {
	total, err := h.uc.AvailableBalance(c.Request().Context(), c.Param("member_id"))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"available_balance": total})
}

func (h *SavingsHandler) ShareOutDeposit(c echo.Context) error {
	dto, err := h.uc.ShareOutDeposit(c.Request().Context(), c.Param("deposit_id"))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *SavingsHandler) MemberSummary(c echo.Context) error {
	dto, err := h.uc.MemberSummary(c.Request().Context(), c.Param("member_id"), c.Param("period_id"))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}
