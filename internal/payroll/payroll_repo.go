package payroll

import (
	"context"
	"database/sql"
	"time"

	"gorm.io/gorm"
)

//go:generate mockgen -source=payroll_repo.go -destination=mock/payroll_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, stmt *PayStatement) error
	FindByID(ctx context.Context, id string) (*PayStatement, error)
	FindAll(ctx context.Context, filter StatementQueryFilter) ([]PayStatement, error)
	ListPriorInYear(ctx context.Context, employeeID string, payDate time.Time) ([]PayStatement, error)
	HasStatementForPeriod(ctx context.Context, employeeID, payPeriodID string) (bool, error)
	Delete(ctx context.Context, id string) error
	SetPayslip(ctx context.Context, id, url string) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// WithTx rebinds the session onto an open transaction so statement and
// outbox writes commit together.
func (r *repository) WithTx(tx *sql.Tx) Repository {
	session := r.db.Session(&gorm.Session{NewDB: true})
	session.Statement.ConnPool = tx
	return &repository{db: session}
}

// Create persists the statement and its line items as one unit; gorm wraps
// the association inserts in a single transaction, so a failed line insert
// never leaves a partial statement behind.
func (r *repository) Create(ctx context.Context, stmt *PayStatement) error {
	return r.db.WithContext(ctx).Create(stmt).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*PayStatement, error) {
	var stmt PayStatement
	err := r.db.WithContext(ctx).
		Preload("Earnings", sortLines).
		Preload("Deductions", sortLines).
		Preload("Taxes", sortLines).
		First(&stmt, "id = ?", id).Error
	return &stmt, err
}

func (r *repository) FindAll(ctx context.Context, filter StatementQueryFilter) ([]PayStatement, error) {
	db := r.db.WithContext(ctx).
		Preload("Earnings", sortLines).
		Preload("Deductions", sortLines).
		Preload("Taxes", sortLines).
		Order("pay_date DESC")

	if filter.EmployeeID != "" {
		db = db.Where("employee_id = ?", filter.EmployeeID)
	}
	if filter.PayPeriodID != "" {
		db = db.Where("pay_period_id = ?", filter.PayPeriodID)
	}

	var stmts []PayStatement
	err := db.Find(&stmts).Error
	return stmts, err
}

// ListPriorInYear returns the employee's statements whose pay date falls in
// the same calendar year as payDate and strictly before it, oldest first.
// Only stored totals are read from these; they are never recomputed.
func (r *repository) ListPriorInYear(ctx context.Context, employeeID string, payDate time.Time) ([]PayStatement, error) {
	yearStart := time.Date(payDate.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)

	var stmts []PayStatement
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Where("pay_date >= ? AND pay_date < ?", yearStart, payDate).
		Order("pay_date ASC").
		Find(&stmts).Error
	return stmts, err
}

func (r *repository) HasStatementForPeriod(ctx context.Context, employeeID, payPeriodID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&PayStatement{}).
		Where("employee_id = ? AND pay_period_id = ?", employeeID, payPeriodID).
		Count(&count).Error
	return count > 0, err
}

// Delete removes the statement; line items go with it via the FK cascade.
func (r *repository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&PayStatement{}, "id = ?", id).Error
}

func (r *repository) SetPayslip(ctx context.Context, id, url string) error {
	now := time.Now().UTC()
	return r.db.WithContext(ctx).
		Model(&PayStatement{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"payslip_url":          url,
			"payslip_generated_at": now,
		}).Error
}

func sortLines(db *gorm.DB) *gorm.DB {
	return db.Order("sort_order ASC")
}
