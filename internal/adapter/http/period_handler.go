package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/barakhubs/sacco-ledger/internal/usecase/period"
)

type PeriodHandler struct{ uc *period.Usecase }

func NewPeriodHandler(uc *period.Usecase) *PeriodHandler { return &PeriodHandler{uc: uc} }

type createPeriodReq struct {
	Year      int    `json:"year"       validate:"required,gte=2000"`
	Sequence  int    `json:"sequence"   validate:"required,gte=1,lte=3"`
	StartDate string `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate   string `json:"end_date"   validate:"required,datetime=2006-01-02"`
}

func (h *PeriodHandler) CreatePeriod(c echo.Context) error {
	var req createPeriodReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	start, _ := time.Parse("2006-01-02", req.StartDate)
	end, _ := time.Parse("2006-01-02", req.EndDate)

	dto, err := h.uc.Create(c.Request().Context(), period.CreatePeriodInput{
		Year:      req.Year,
		Sequence:  req.Sequence,
		StartDate: start,
		EndDate:   end,
	})
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *PeriodHandler) ActivatePeriod(c echo.Context) error {
	dto, err := h.uc.Activate(c.Request().Context(), c.Param("period_id"))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *PeriodHandler) ActivateShareout(c echo.Context) error {
	dto, err := h.uc.ActivateShareout(c.Request().Context(), c.Param("period_id"))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *PeriodHandler) GetPeriod(c echo.Context) error {
	dto, err := h.uc.Get(c.Request().Context(), c.Param("period_id"))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *PeriodHandler) CurrentPeriod(c echo.Context) error {
	dto, err := h.uc.Current(c.Request().Context())
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *PeriodHandler) ListPeriods(c echo.Context) error {
	year := 0
	if v := c.QueryParam("year"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid year"})
		}
		year = n
	}
	dtos, err := h.uc.List(c.Request().Context(), year)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dtos)
}
