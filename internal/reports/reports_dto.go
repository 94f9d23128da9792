package reports

// EmployeeSummaryRow aggregates an employee's statements whose pay dates
// fall inside the requested range. Pre-tax deductions are derived as
// gross minus taxes minus post-tax deductions minus net.
type EmployeeSummaryRow struct {
	EmployeeID             string `gorm:"column:employee_id" json:"employee_id"`
	EmployeeName           string `gorm:"column:employee_name" json:"employee_name"`
	StatementCount         int    `gorm:"column:statement_count" json:"statement_count"`
	GrossCents             int64  `gorm:"column:gross_cents" json:"gross_cents"`
	FederalTaxCents        int64  `gorm:"column:federal_tax_cents" json:"federal_tax_cents"`
	StateTaxCents          int64  `gorm:"column:state_tax_cents" json:"state_tax_cents"`
	SocialSecurityTaxCents int64  `gorm:"column:social_security_tax_cents" json:"social_security_tax_cents"`
	MedicareTaxCents       int64  `gorm:"column:medicare_tax_cents" json:"medicare_tax_cents"`
	TaxCents               int64  `gorm:"column:tax_cents" json:"tax_cents"`
	PreTaxDeductionCents   int64  `gorm:"column:pre_tax_deduction_cents" json:"pre_tax_deduction_cents"`
	PostTaxDeductionCents  int64  `gorm:"column:post_tax_deduction_cents" json:"post_tax_deduction_cents"`
	NetCents               int64  `gorm:"column:net_cents" json:"net_cents"`
}

// CompanyTotals is the single rollup row over the same range.
type CompanyTotals struct {
	EmployeeCount          int   `gorm:"column:employee_count" json:"employee_count"`
	StatementCount         int   `gorm:"column:statement_count" json:"statement_count"`
	GrossCents             int64 `gorm:"column:gross_cents" json:"gross_cents"`
	FederalTaxCents        int64 `gorm:"column:federal_tax_cents" json:"federal_tax_cents"`
	StateTaxCents          int64 `gorm:"column:state_tax_cents" json:"state_tax_cents"`
	SocialSecurityTaxCents int64 `gorm:"column:social_security_tax_cents" json:"social_security_tax_cents"`
	MedicareTaxCents       int64 `gorm:"column:medicare_tax_cents" json:"medicare_tax_cents"`
	TaxCents               int64 `gorm:"column:tax_cents" json:"tax_cents"`
	PreTaxDeductionCents   int64 `gorm:"column:pre_tax_deduction_cents" json:"pre_tax_deduction_cents"`
	PostTaxDeductionCents  int64 `gorm:"column:post_tax_deduction_cents" json:"post_tax_deduction_cents"`
	NetCents               int64 `gorm:"column:net_cents" json:"net_cents"`
}

type SummaryResponse struct {
	From      string               `json:"from"`
	To        string               `json:"to"`
	Employees []EmployeeSummaryRow `json:"employees"`
	Company   CompanyTotals        `json:"company"`
}

type SummaryQueryRequest struct {
	From string `form:"from" binding:"required"`
	To   string `form:"to" binding:"required"`
}

type QuarterlyQueryRequest struct {
	Year    int `form:"year" binding:"required"`
	Quarter int `form:"quarter" binding:"required"`
}

type YTDQueryRequest struct {
	Year       int    `form:"year"`
	EmployeeID string `form:"employee_id"`
}
