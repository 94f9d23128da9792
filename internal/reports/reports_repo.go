package reports

import (
	"context"

	"go-payroll/internal/payroll"

	"gorm.io/gorm"
)

// Filter scopes a rollup query. An empty EmployeeID covers the whole
// company.
type Filter struct {
	Range      DateRange
	EmployeeID string
}

//go:generate mockgen -source=reports_repo.go -destination=mock/reports_repo_mock.go -package=mock
type Repository interface {
	SummaryByEmployee(ctx context.Context, filter Filter) ([]EmployeeSummaryRow, error)
	CompanyTotals(ctx context.Context, filter Filter) (CompanyTotals, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

const taxSumExpr = "pay_statements.federal_tax_cents + pay_statements.state_tax_cents + " +
	"pay_statements.social_security_tax_cents + pay_statements.medicare_tax_cents"

// Pre-tax deductions are not stored as a column; net = gross - pre-tax
// - taxes - post-tax, so the pre-tax total falls out of the others.
const preTaxExpr = "pay_statements.gross_cents - (" + taxSumExpr + ") - " +
	"pay_statements.post_tax_deduction_cents - pay_statements.net_cents"

var rollupColumns = []string{
	"COUNT(*) AS statement_count",
	"COALESCE(SUM(pay_statements.gross_cents), 0) AS gross_cents",
	"COALESCE(SUM(pay_statements.federal_tax_cents), 0) AS federal_tax_cents",
	"COALESCE(SUM(pay_statements.state_tax_cents), 0) AS state_tax_cents",
	"COALESCE(SUM(pay_statements.social_security_tax_cents), 0) AS social_security_tax_cents",
	"COALESCE(SUM(pay_statements.medicare_tax_cents), 0) AS medicare_tax_cents",
	"COALESCE(SUM(" + taxSumExpr + "), 0) AS tax_cents",
	"COALESCE(SUM(" + preTaxExpr + "), 0) AS pre_tax_deduction_cents",
	"COALESCE(SUM(pay_statements.post_tax_deduction_cents), 0) AS post_tax_deduction_cents",
	"COALESCE(SUM(pay_statements.net_cents), 0) AS net_cents",
}

// SummaryByEmployee rolls statements up per employee over the pay-date
// range, one row per employee ordered by display name.
func (r *repository) SummaryByEmployee(ctx context.Context, filter Filter) ([]EmployeeSummaryRow, error) {
	cols := append([]string{
		"pay_statements.employee_id AS employee_id",
		"employees.full_name AS employee_name",
	}, rollupColumns...)

	var rows []EmployeeSummaryRow
	err := r.scoped(ctx, filter).
		Select(cols).
		Joins("JOIN employees ON employees.id = pay_statements.employee_id").
		Group("pay_statements.employee_id, employees.full_name").
		Order("employees.full_name ASC").
		Scan(&rows).Error
	return rows, err
}

func (r *repository) CompanyTotals(ctx context.Context, filter Filter) (CompanyTotals, error) {
	cols := append([]string{
		"COUNT(DISTINCT pay_statements.employee_id) AS employee_count",
	}, rollupColumns...)

	var totals CompanyTotals
	err := r.scoped(ctx, filter).
		Select(cols).
		Scan(&totals).Error
	return totals, err
}

func (r *repository) scoped(ctx context.Context, filter Filter) *gorm.DB {
	q := r.db.WithContext(ctx).
		Model(&payroll.PayStatement{}).
		Where("pay_statements.pay_date BETWEEN ? AND ?", filter.Range.From, filter.Range.To)
	if filter.EmployeeID != "" {
		q = q.Where("pay_statements.employee_id = ?", filter.EmployeeID)
	}
	return q
}
