package employee

type CreateEmployeeRequest struct {
	FullName              string  `json:"full_name" binding:"required"`
	Email                 string  `json:"email" binding:"required,email"`
	CompensationType      string  `json:"compensation_type" binding:"required,oneof=hourly salaried"`
	HourlyRateCents       int64   `json:"hourly_rate_cents"`
	AnnualSalaryCents     int64   `json:"annual_salary_cents"`
	RetirementPercent     float64 `json:"retirement_percent"`
	HealthInsuranceCents  int64   `json:"health_insurance_cents"`
	OtherDeductionCents   int64   `json:"other_deduction_cents"`
	DefaultHoursPerPeriod float64 `json:"default_hours_per_period"`
}

type UpdateEmployeeRequest struct {
	FullName              string  `json:"full_name" binding:"required"`
	Email                 string  `json:"email" binding:"required,email"`
	IsActive              *bool   `json:"is_active"`
	CompensationType      string  `json:"compensation_type" binding:"required,oneof=hourly salaried"`
	HourlyRateCents       int64   `json:"hourly_rate_cents"`
	AnnualSalaryCents     int64   `json:"annual_salary_cents"`
	RetirementPercent     float64 `json:"retirement_percent"`
	HealthInsuranceCents  int64   `json:"health_insurance_cents"`
	OtherDeductionCents   int64   `json:"other_deduction_cents"`
	DefaultHoursPerPeriod float64 `json:"default_hours_per_period"`
}

type EmployeeResponse struct {
	ID                    string  `json:"id"`
	FullName              string  `json:"full_name"`
	Email                 string  `json:"email"`
	IsActive              bool    `json:"is_active"`
	CompensationType      string  `json:"compensation_type"`
	HourlyRateCents       int64   `json:"hourly_rate_cents"`
	AnnualSalaryCents     int64   `json:"annual_salary_cents"`
	RetirementPercent     float64 `json:"retirement_percent"`
	HealthInsuranceCents  int64   `json:"health_insurance_cents"`
	OtherDeductionCents   int64   `json:"other_deduction_cents"`
	DefaultHoursPerPeriod float64 `json:"default_hours_per_period"`
}
