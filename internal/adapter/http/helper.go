package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/barakhubs/sacco-ledger/internal/domain/interest"
	"github.com/barakhubs/sacco-ledger/internal/domain/loan"
	"github.com/barakhubs/sacco-ledger/internal/domain/member"
	"github.com/barakhubs/sacco-ledger/internal/domain/period"
	"github.com/barakhubs/sacco-ledger/internal/domain/savings"
	"github.com/barakhubs/sacco-ledger/internal/domain/shareout"
)

// writeDomainError maps domain sentinel errors onto HTTP status codes.
// Anything unmapped is a storage failure and surfaces as 500.
func writeDomainError(c echo.Context, err error) error {
	var status int
	switch {
	case errors.Is(err, period.ErrNotFound),
		errors.Is(err, loan.ErrNotFound),
		errors.Is(err, savings.ErrDepositNotFound),
		errors.Is(err, savings.ErrTargetNotFound),
		errors.Is(err, interest.ErrShareNotFound),
		errors.Is(err, shareout.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, period.ErrDuplicatePeriod),
		errors.Is(err, period.ErrActivationRace),
		errors.Is(err, savings.ErrDuplicateTarget),
		errors.Is(err, interest.ErrYearAlreadyRun),
		errors.Is(err, loan.ErrActiveLoanExists):
		status = http.StatusConflict
	case errors.Is(err, loan.ErrInvalidTransition),
		errors.Is(err, interest.ErrAlreadyDisbursed),
		errors.Is(err, savings.ErrAlreadySharedOut):
		status = http.StatusConflict
	case errors.Is(err, period.ErrNotActive),
		errors.Is(err, period.ErrNotCompleted),
		errors.Is(err, period.ErrNoActivePeriod),
		errors.Is(err, member.ErrCategoryRequired),
		errors.Is(err, shareout.ErrDecisionLocked),
		errors.Is(err, shareout.ErrNotOptedIn),
		errors.Is(err, shareout.ErrNotActivated),
		errors.Is(err, interest.ErrYearNotClosed),
		errors.Is(err, interest.ErrNoSavings):
		status = http.StatusUnprocessableEntity
	case errors.Is(err, period.ErrInvalidInput),
		errors.Is(err, loan.ErrInvalidAmount),
		errors.Is(err, loan.ErrExceedsOutstanding),
		errors.Is(err, savings.ErrInvalidAmount),
		errors.Is(err, interest.ErrInvalidInput):
		status = http.StatusBadRequest
	default:
		status = http.StatusInternalServerError
	}
	return c.JSON(status, ErrorResponse{Error: err.Error()})
}
