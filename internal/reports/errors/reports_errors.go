package errors

import (
	"net/http"

	"go-payroll/internal/shared/apperror"
)

var (
	ErrInvalidDateRange = apperror.New(
		"INVALID_DATE_RANGE",
		"Range end must not be before range start",
		http.StatusBadRequest,
	)
	ErrInvalidQuarter = apperror.New(
		"INVALID_QUARTER",
		"Quarter must be between 1 and 4",
		http.StatusBadRequest,
	)
	ErrInvalidYear = apperror.New(
		"INVALID_YEAR",
		"Year is out of range",
		http.StatusBadRequest,
	)
)
