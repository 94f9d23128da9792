package payroll

import "time"

type CreateStatementRequest struct {
	EmployeeID            string  `json:"employee_id" binding:"required,uuid"`
	PayPeriodID           string  `json:"pay_period_id" binding:"required,uuid"`
	RegularHours          float64 `json:"regular_hours" binding:"min=0"`
	OvertimeHours         float64 `json:"overtime_hours" binding:"min=0"`
	BonusCents            int64   `json:"bonus_cents" binding:"min=0"`
	CommissionCents       int64   `json:"commission_cents" binding:"min=0"`
	BonusDescription      string  `json:"bonus_description"`
	CommissionDescription string  `json:"commission_description"`
}

// CreateStatementHoursRequest is the legacy single-hours entry point; the
// server splits hours into regular/overtime at the standard threshold.
type CreateStatementHoursRequest struct {
	EmployeeID      string  `json:"employee_id" binding:"required,uuid"`
	PayPeriodID     string  `json:"pay_period_id" binding:"required,uuid"`
	TotalHours      float64 `json:"total_hours" binding:"min=0"`
	BonusCents      int64   `json:"bonus_cents" binding:"min=0"`
	CommissionCents int64   `json:"commission_cents" binding:"min=0"`
}

type StatementQueryFilter struct {
	EmployeeID  string `form:"employee_id" binding:"omitempty,uuid"`
	PayPeriodID string `form:"pay_period_id" binding:"omitempty,uuid"`
}

type EarningLineResponse struct {
	Type        string  `json:"type"`
	Hours       float64 `json:"hours,omitempty"`
	RateCents   int64   `json:"rate_cents,omitempty"`
	AmountCents int64   `json:"amount_cents"`
	Description string  `json:"description"`
}

type DeductionLineResponse struct {
	Type        string `json:"type"`
	AmountCents int64  `json:"amount_cents"`
	PreTax      bool   `json:"pre_tax"`
	Description string `json:"description"`
}

type TaxLineResponse struct {
	Type        string  `json:"type"`
	AmountCents int64   `json:"amount_cents"`
	RatePercent float64 `json:"rate_percent"`
	BasisCents  int64   `json:"basis_cents"`
	Description string  `json:"description"`
}

type StatementResponse struct {
	ID          string `json:"id"`
	EmployeeID  string `json:"employee_id"`
	PayPeriodID string `json:"pay_period_id"`
	PayDate     string `json:"pay_date"`

	HoursWorked float64 `json:"hours_worked"`

	GrossCents             int64 `json:"gross_cents"`
	RetirementCents        int64 `json:"retirement_cents"`
	FederalTaxCents        int64 `json:"federal_tax_cents"`
	StateTaxCents          int64 `json:"state_tax_cents"`
	SocialSecurityTaxCents int64 `json:"social_security_tax_cents"`
	MedicareTaxCents       int64 `json:"medicare_tax_cents"`
	PostTaxDeductionCents  int64 `json:"post_tax_deduction_cents"`
	NetCents               int64 `json:"net_cents"`

	YTDGrossCents int64 `json:"ytd_gross_cents"`
	YTDTaxCents   int64 `json:"ytd_tax_cents"`
	YTDNetCents   int64 `json:"ytd_net_cents"`

	Earnings   []EarningLineResponse   `json:"earnings"`
	Deductions []DeductionLineResponse `json:"deductions"`
	Taxes      []TaxLineResponse       `json:"taxes"`

	PayslipURL *string `json:"payslip_url,omitempty"`
}

func mapToResponse(stmt PayStatement) StatementResponse {
	resp := StatementResponse{
		ID:          stmt.ID.String(),
		EmployeeID:  stmt.EmployeeID.String(),
		PayPeriodID: stmt.PayPeriodID.String(),
		PayDate:     stmt.PayDate.Format(time.DateOnly),

		HoursWorked: stmt.HoursWorked,

		GrossCents:             stmt.GrossCents,
		RetirementCents:        stmt.RetirementCents,
		FederalTaxCents:        stmt.FederalTaxCents,
		StateTaxCents:          stmt.StateTaxCents,
		SocialSecurityTaxCents: stmt.SocialSecurityTaxCents,
		MedicareTaxCents:       stmt.MedicareTaxCents,
		PostTaxDeductionCents:  stmt.PostTaxDeductionCents,
		NetCents:               stmt.NetCents,

		YTDGrossCents: stmt.YTDGrossCents,
		YTDTaxCents:   stmt.YTDTaxCents,
		YTDNetCents:   stmt.YTDNetCents,

		Earnings:   make([]EarningLineResponse, 0, len(stmt.Earnings)),
		Deductions: make([]DeductionLineResponse, 0, len(stmt.Deductions)),
		Taxes:      make([]TaxLineResponse, 0, len(stmt.Taxes)),

		PayslipURL: stmt.PayslipURL,
	}

	for _, line := range stmt.Earnings {
		resp.Earnings = append(resp.Earnings, EarningLineResponse{
			Type:        string(line.Type),
			Hours:       line.Hours,
			RateCents:   line.RateCents,
			AmountCents: line.AmountCents,
			Description: line.Description,
		})
	}
	for _, line := range stmt.Deductions {
		resp.Deductions = append(resp.Deductions, DeductionLineResponse{
			Type:        string(line.Type),
			AmountCents: line.AmountCents,
			PreTax:      line.PreTax,
			Description: line.Description,
		})
	}
	for _, line := range stmt.Taxes {
		resp.Taxes = append(resp.Taxes, TaxLineResponse{
			Type:        string(line.Type),
			AmountCents: line.AmountCents,
			RatePercent: line.RatePercent,
			BasisCents:  line.BasisCents,
			Description: line.Description,
		})
	}

	return resp
}

func mapToListResponse(stmts []PayStatement) []StatementResponse {
	resp := make([]StatementResponse, len(stmts))
	for i, stmt := range stmts {
		resp[i] = mapToResponse(stmt)
	}
	return resp
}
