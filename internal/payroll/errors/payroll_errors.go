package errors

import (
	"net/http"

	"go-payroll/internal/shared/apperror"
)

var (
	ErrStatementNotFound = apperror.New(
		"STATEMENT_NOT_FOUND",
		"Pay statement not found",
		http.StatusNotFound,
	)

	ErrStatementAlreadyExists = apperror.New(
		"STATEMENT_ALREADY_EXISTS",
		"A pay statement already exists for this employee and pay period",
		http.StatusConflict,
	)

	ErrPayslipNotGenerated = apperror.New(
		"PAYSLIP_NOT_GENERATED",
		"Payslip has not been generated for this statement",
		http.StatusNotFound,
	)
)
