package errors

import (
	"net/http"

	"go-payroll/internal/shared/apperror"
)

var (
	ErrEmployeeNotFound = apperror.New(
		"EMPLOYEE_NOT_FOUND",
		"Employee not found",
		http.StatusNotFound,
	)

	ErrEmployeeAlreadyExists = apperror.New(
		"EMPLOYEE_ALREADY_EXISTS",
		"An employee with this email already exists",
		http.StatusConflict,
	)

	ErrInvalidCompensation = apperror.New(
		"INVALID_COMPENSATION",
		"Compensation does not match the selected compensation type",
		http.StatusBadRequest,
	)
)
