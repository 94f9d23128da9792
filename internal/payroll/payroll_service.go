package payroll

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go-payroll/internal/employee"
	employeeerrors "go-payroll/internal/employee/errors"
	"go-payroll/internal/events"
	"go-payroll/internal/messaging/kafka"
	"go-payroll/internal/payperiod"
	payperioderrors "go-payroll/internal/payperiod/errors"
	payrollerrors "go-payroll/internal/payroll/errors"
	"go-payroll/internal/settings"
	"go-payroll/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=payroll_service.go -destination=mock/payroll_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, actorID string, req CreateStatementRequest) (StatementResponse, error)
	CreateFromTotalHours(ctx context.Context, actorID string, req CreateStatementHoursRequest) (StatementResponse, error)
	GetAll(ctx context.Context, filter StatementQueryFilter) ([]StatementResponse, error)
	GetByID(ctx context.Context, id string) (StatementResponse, error)
	Delete(ctx context.Context, id string) error
	RequestPayslip(ctx context.Context, actorID, id string) error
	GeneratePayslip(ctx context.Context, id string) (string, error)
}

type service struct {
	db           *sql.DB
	repo         Repository
	employeeRepo employee.Repository
	periodRepo   payperiod.Repository
	settings     settings.Store
	outbox       kafka.OutboxRepository
	statutes     Statutes
	logger       *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	employeeRepo employee.Repository,
	periodRepo payperiod.Repository,
	settingsStore settings.Store,
	statutes Statutes,
) Service {
	return NewServiceWithOutbox(db, repo, employeeRepo, periodRepo, settingsStore, statutes, nil)
}

func NewServiceWithOutbox(
	db *sql.DB,
	repo Repository,
	employeeRepo employee.Repository,
	periodRepo payperiod.Repository,
	settingsStore settings.Store,
	statutes Statutes,
	outboxRepo kafka.OutboxRepository,
) Service {
	return &service{
		db:           db,
		repo:         repo,
		employeeRepo: employeeRepo,
		periodRepo:   periodRepo,
		settings:     settingsStore,
		outbox:       outboxRepo,
		statutes:     statutes,
		logger:       zap.L().Named("payroll.service"),
	}
}

func (s *service) Create(
	ctx context.Context,
	actorID string,
	req CreateStatementRequest,
) (StatementResponse, error) {
	input := PeriodInput{
		RegularHours:          req.RegularHours,
		OvertimeHours:         req.OvertimeHours,
		BonusCents:            req.BonusCents,
		CommissionCents:       req.CommissionCents,
		BonusDescription:      req.BonusDescription,
		CommissionDescription: req.CommissionDescription,
	}
	return s.create(ctx, actorID, req.EmployeeID, req.PayPeriodID, input)
}

// CreateFromTotalHours is the legacy single-hours entry point: hours are
// split regular/overtime at the standard threshold regardless of the
// configured pay frequency.
func (s *service) CreateFromTotalHours(
	ctx context.Context,
	actorID string,
	req CreateStatementHoursRequest,
) (StatementResponse, error) {
	regular, overtime := SplitTotalHours(req.TotalHours, s.statutes)
	input := PeriodInput{
		RegularHours:    regular,
		OvertimeHours:   overtime,
		BonusCents:      req.BonusCents,
		CommissionCents: req.CommissionCents,
	}
	return s.create(ctx, actorID, req.EmployeeID, req.PayPeriodID, input)
}

func (s *service) create(
	ctx context.Context,
	actorID, employeeID, payPeriodID string,
	input PeriodInput,
) (StatementResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create statement requested",
		zap.String("request_id", rid),
		zap.String("employee_id", employeeID),
		zap.String("pay_period_id", payPeriodID),
	)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create statement begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return StatementResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	emp, err := s.employeeRepo.FindByID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return StatementResponse{}, employeeerrors.ErrEmployeeNotFound
		}
		return StatementResponse{}, err
	}

	period, err := s.periodRepo.FindByID(ctx, payPeriodID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return StatementResponse{}, payperioderrors.ErrPayPeriodNotFound
		}
		return StatementResponse{}, err
	}

	exists, err := qtx.HasStatementForPeriod(ctx, employeeID, payPeriodID)
	if err != nil {
		return StatementResponse{}, err
	}
	if exists {
		return StatementResponse{}, payrollerrors.ErrStatementAlreadyExists
	}

	cfg, err := s.settings.Get(ctx)
	if err != nil {
		return StatementResponse{}, err
	}

	prior, err := qtx.ListPriorInYear(ctx, employeeID, period.PayDate)
	if err != nil {
		return StatementResponse{}, err
	}

	stmt := Compute(emp, period, cfg, s.statutes, input, sumPriorTotals(prior))

	if err := qtx.Create(ctx, stmt); err != nil {
		s.logger.Error("create statement persist failed", zap.String("request_id", rid), zap.Error(err))
		return StatementResponse{}, err
	}

	if s.outbox != nil {
		event := events.StatementCreatedEvent{
			EventType:   "statement_created",
			RequestID:   rid,
			StatementID: stmt.ID.String(),
			EmployeeID:  stmt.EmployeeID.String(),
			PayPeriodID: stmt.PayPeriodID.String(),
			PayDate:     stmt.PayDate.Format(time.DateOnly),
			OccurredAt:  time.Now().UTC(),
		}
		payload, err := json.Marshal(event)
		if err != nil {
			return StatementResponse{}, err
		}

		outboxRepo := s.outbox.WithTx(tx)
		if err := outboxRepo.Create(ctx, kafka.OutboxEvent{
			ID:            uuid.NewString(),
			RequestID:     rid,
			AggregateType: "pay_statement",
			AggregateID:   stmt.ID.String(),
			EventType:     event.EventType,
			Topic:         events.StatementCreatedTopic,
			Payload:       payload,
			Status:        kafka.OutboxStatusPending,
		}); err != nil {
			s.logger.Error("create statement outbox persist failed",
				zap.String("statement_id", stmt.ID.String()),
				zap.Error(err),
			)
			return StatementResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("create statement commit failed", zap.String("request_id", rid), zap.Error(err))
		return StatementResponse{}, err
	}

	s.logger.Info("create statement success",
		zap.String("request_id", rid),
		zap.String("statement_id", stmt.ID.String()),
		zap.String("employee_id", stmt.EmployeeID.String()),
		zap.Int64("gross_cents", stmt.GrossCents),
		zap.Int64("net_cents", stmt.NetCents),
	)

	return mapToResponse(*stmt), nil
}

func (s *service) GetAll(ctx context.Context, filter StatementQueryFilter) ([]StatementResponse, error) {
	stmts, err := s.repo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}

	return mapToListResponse(stmts), nil
}

func (s *service) GetByID(ctx context.Context, id string) (StatementResponse, error) {
	stmt, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return StatementResponse{}, payrollerrors.ErrStatementNotFound
		}
		return StatementResponse{}, err
	}

	return mapToResponse(*stmt), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("statement deleted", zap.String("statement_id", id))
	return nil
}

// RequestPayslip enqueues generation; the consumer picks the event up and
// renders the document out of band.
func (s *service) RequestPayslip(ctx context.Context, actorID, id string) error {
	if s.outbox == nil {
		_, err := s.GeneratePayslip(ctx, id)
		return err
	}

	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return payrollerrors.ErrStatementNotFound
		}
		return err
	}

	event := events.PayslipRequestedEvent{
		EventType:   "payslip_requested",
		StatementID: id,
		RequestedBy: actorID,
		OccurredAt:  time.Now().UTC(),
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return s.outbox.Create(ctx, kafka.OutboxEvent{
		ID:            uuid.NewString(),
		AggregateType: "pay_statement",
		AggregateID:   id,
		EventType:     event.EventType,
		Topic:         events.PayslipRequestedTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	})
}

// GeneratePayslip renders the minimal PDF for a statement and records where
// it was written. The statement itself stays untouched apart from the
// payslip pointer.
func (s *service) GeneratePayslip(ctx context.Context, id string) (string, error) {
	stmt, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", payrollerrors.ErrStatementNotFound
		}
		return "", err
	}

	emp, err := s.employeeRepo.FindByID(ctx, stmt.EmployeeID.String())
	if err != nil {
		return "", err
	}

	pdf, err := buildSimplePayslipPDF(payslipLines(stmt, emp))
	if err != nil {
		return "", err
	}

	dir := os.Getenv("PAYSLIP_DIR")
	if dir == "" {
		dir = "payslips"
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	path := filepath.Join(dir, fmt.Sprintf("payslip-%s.pdf", stmt.ID))
	if err := os.WriteFile(path, pdf, 0o644); err != nil {
		return "", err
	}

	if err := s.repo.SetPayslip(ctx, id, path); err != nil {
		return "", err
	}

	s.logger.Info("payslip generated",
		zap.String("statement_id", id),
		zap.String("path", path),
	)

	return path, nil
}

// sumPriorTotals folds stored statement fields into the running totals the
// engine needs. Values come from the frozen snapshots, never from current
// rates.
func sumPriorTotals(stmts []PayStatement) YTDTotals {
	var ytd YTDTotals
	for _, stmt := range stmts {
		ytd.GrossCents += stmt.GrossCents
		ytd.TaxCents += stmt.TotalTaxCents()
		ytd.RetirementCents += stmt.RetirementCents
		ytd.SocialSecurityTaxCents += stmt.SocialSecurityTaxCents
		ytd.NetCents += stmt.NetCents
	}
	return ytd
}

func payslipLines(stmt *PayStatement, emp *employee.Employee) []string {
	lines := []string{
		"Pay Statement",
		fmt.Sprintf("Employee: %s", emp.FullName),
		fmt.Sprintf("Pay date: %s", stmt.PayDate.Format(time.DateOnly)),
		fmt.Sprintf("Hours worked: %.2f", stmt.HoursWorked),
		"",
	}

	for _, e := range stmt.Earnings {
		lines = append(lines, fmt.Sprintf("%s: %s", e.Description, formatCents(e.AmountCents)))
	}
	for _, d := range stmt.Deductions {
		lines = append(lines, fmt.Sprintf("%s: -%s", d.Description, formatCents(d.AmountCents)))
	}
	for _, t := range stmt.Taxes {
		lines = append(lines, fmt.Sprintf("%s (%.2f%%): -%s", t.Description, t.RatePercent, formatCents(t.AmountCents)))
	}

	lines = append(lines,
		"",
		fmt.Sprintf("Gross pay: %s", formatCents(stmt.GrossCents)),
		fmt.Sprintf("Net pay: %s", formatCents(stmt.NetCents)),
		fmt.Sprintf("YTD gross: %s", formatCents(stmt.YTDGrossCents)),
		fmt.Sprintf("YTD taxes: %s", formatCents(stmt.YTDTaxCents)),
		fmt.Sprintf("YTD net: %s", formatCents(stmt.YTDNetCents)),
	)

	return lines
}

func formatCents(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s$%d.%02d", sign, cents/100, cents%100)
}
