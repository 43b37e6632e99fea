package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/barakhubs/sacco-ledger/internal/usecase/shareout"
)

type ShareoutHandler struct{ uc *shareout.Usecase }

func NewShareoutHandler(uc *shareout.Usecase) *ShareoutHandler { return &ShareoutHandler{uc: uc} }

type decideReq struct {
	MemberID      string `json:"member_id"      validate:"required,hex32"`
	PeriodID      string `json:"period_id"      validate:"required,hex32"`
	WantsShareout *bool  `json:"wants_shareout" validate:"required"`
}

func (h *ShareoutHandler) Decide(c echo.Context) error {
	var req decideReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.Decide(c.Request().Context(), shareout.DecideInput{
		MemberID:      req.MemberID,
		PeriodID:      req.PeriodID,
		WantsShareout: *req.WantsShareout,
	})
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

type completeReq struct {
	MemberID string `json:"member_id" validate:"required,hex32"`
	PeriodID string `json:"period_id" validate:"required,hex32"`
}

func (h *ShareoutHandler) Complete(c echo.Context) error {
	var req completeReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.Complete(c.Request().Context(), shareout.CompleteInput{
		MemberID:    req.MemberID,
		PeriodID:    req.PeriodID,
		CompletedBy: c.Request().Header.Get("Ax-Member-Id"),
	})
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *ShareoutHandler) ListByPeriod(c echo.Context) error {
	dtos, err := h.uc.List(c.Request().Context(), c.Param("period_id"))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dtos)
}
