package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"github.com/barakhubs/sacco-ledger/internal/usecase/interest"
)

type InterestHandler struct{ uc *interest.Usecase }

func NewInterestHandler(uc *interest.Usecase) *InterestHandler { return &InterestHandler{uc: uc} }

type runYearEndReq struct {
	Year               int      `json:"year"                 validate:"required,gte=2000"`
	CommitteeMemberIDs []string `json:"committee_member_ids" validate:"dive,hex32"`
	CommitteeRatio     float64  `json:"committee_ratio"      validate:"gte=0,lte=1"`
}

func (h *InterestHandler) RunYearEnd(c echo.Context) error {
	var req runYearEndReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.RunYearEnd(c.Request().Context(), interest.RunYearEndInput{
		Year:               req.Year,
		CommitteeMemberIDs: req.CommitteeMemberIDs,
		CommitteeRatio:     decimal.NewFromFloat(req.CommitteeRatio),
		RunBy:              c.Request().Header.Get("Ax-Member-Id"),
	})
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *InterestHandler) GetYearEnd(c echo.Context) error {
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid year"})
	}
	dto, err := h.uc.GetYearEnd(c.Request().Context(), year)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *InterestHandler) DisburseShare(c echo.Context) error {
	by := c.Request().Header.Get("Ax-Member-Id")
	dto, err := h.uc.DisburseShare(c.Request().Context(), c.Param("share_id"), by)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *InterestHandler) PendingForMember(c echo.Context) error {
	total, err := h.uc.PendingForMember(c.Request().Context(), c.Param("member_id"), c.Param("period_id"))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"pending_interest": total})
}
