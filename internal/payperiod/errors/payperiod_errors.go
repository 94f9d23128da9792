package errors

import (
	"net/http"

	"go-payroll/internal/shared/apperror"
)

var (
	ErrPayPeriodNotFound = apperror.New(
		"PAY_PERIOD_NOT_FOUND",
		"Pay period not found",
		http.StatusNotFound,
	)

	ErrPayPeriodOverlap = apperror.New(
		"PAY_PERIOD_OVERLAP",
		"A pay period already covers this date range",
		http.StatusConflict,
	)
)
