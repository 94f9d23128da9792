package payroll_test

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"go-payroll/internal/employee"
	employeeerrors "go-payroll/internal/employee/errors"
	"go-payroll/internal/events"
	"go-payroll/internal/messaging/kafka"
	"go-payroll/internal/payperiod"
	"go-payroll/internal/payroll"
	payrollerrors "go-payroll/internal/payroll/errors"
	"go-payroll/internal/settings"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeStatementRepository struct {
	withTxFn       func(tx *sql.Tx) payroll.Repository
	createFn       func(ctx context.Context, stmt *payroll.PayStatement) error
	findByIDFn     func(ctx context.Context, id string) (*payroll.PayStatement, error)
	findAllFn      func(ctx context.Context, filter payroll.StatementQueryFilter) ([]payroll.PayStatement, error)
	listPriorFn    func(ctx context.Context, employeeID string, payDate time.Time) ([]payroll.PayStatement, error)
	hasForPeriodFn func(ctx context.Context, employeeID, payPeriodID string) (bool, error)
	deleteFn       func(ctx context.Context, id string) error
	setPayslipFn   func(ctx context.Context, id, url string) error
}

func (f *fakeStatementRepository) WithTx(tx *sql.Tx) payroll.Repository {
	if f.withTxFn != nil {
		return f.withTxFn(tx)
	}
	return f
}

func (f *fakeStatementRepository) Create(ctx context.Context, stmt *payroll.PayStatement) error {
	if f.createFn != nil {
		return f.createFn(ctx, stmt)
	}
	return nil
}

func (f *fakeStatementRepository) FindByID(ctx context.Context, id string) (*payroll.PayStatement, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeStatementRepository) FindAll(ctx context.Context, filter payroll.StatementQueryFilter) ([]payroll.PayStatement, error) {
	if f.findAllFn != nil {
		return f.findAllFn(ctx, filter)
	}
	return nil, nil
}

func (f *fakeStatementRepository) ListPriorInYear(ctx context.Context, employeeID string, payDate time.Time) ([]payroll.PayStatement, error) {
	if f.listPriorFn != nil {
		return f.listPriorFn(ctx, employeeID, payDate)
	}
	return nil, nil
}

func (f *fakeStatementRepository) HasStatementForPeriod(ctx context.Context, employeeID, payPeriodID string) (bool, error) {
	if f.hasForPeriodFn != nil {
		return f.hasForPeriodFn(ctx, employeeID, payPeriodID)
	}
	return false, nil
}

func (f *fakeStatementRepository) Delete(ctx context.Context, id string) error {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, id)
	}
	return nil
}

func (f *fakeStatementRepository) SetPayslip(ctx context.Context, id, url string) error {
	if f.setPayslipFn != nil {
		return f.setPayslipFn(ctx, id, url)
	}
	return nil
}

type fakeEmployeeRepository struct {
	findByIDFn func(ctx context.Context, id string) (*employee.Employee, error)
}

func (f *fakeEmployeeRepository) WithTx(tx *sql.Tx) employee.Repository { return f }
func (f *fakeEmployeeRepository) Create(ctx context.Context, empl *employee.Employee) error {
	return nil
}
func (f *fakeEmployeeRepository) FindAll(ctx context.Context) ([]employee.Employee, error) {
	return nil, nil
}
func (f *fakeEmployeeRepository) FindOptions(ctx context.Context) ([]employee.Employee, error) {
	return nil, nil
}
func (f *fakeEmployeeRepository) FindByID(ctx context.Context, id string) (*employee.Employee, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}
func (f *fakeEmployeeRepository) Update(ctx context.Context, empl *employee.Employee) error {
	return nil
}
func (f *fakeEmployeeRepository) Delete(ctx context.Context, id string) error { return nil }

type fakePeriodRepository struct {
	findByIDFn func(ctx context.Context, id string) (*payperiod.PayPeriod, error)
}

func (f *fakePeriodRepository) Create(ctx context.Context, period *payperiod.PayPeriod) error {
	return nil
}
func (f *fakePeriodRepository) FindAll(ctx context.Context) ([]payperiod.PayPeriod, error) {
	return nil, nil
}
func (f *fakePeriodRepository) FindByID(ctx context.Context, id string) (*payperiod.PayPeriod, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}
func (f *fakePeriodRepository) FindLatest(ctx context.Context) (*payperiod.PayPeriod, error) {
	return nil, gorm.ErrRecordNotFound
}
func (f *fakePeriodRepository) HasOverlap(ctx context.Context, p *payperiod.PayPeriod) (bool, error) {
	return false, nil
}

type fakeSettingsStore struct {
	cfg settings.CompanySettings
}

func (f *fakeSettingsStore) Get(ctx context.Context) (settings.CompanySettings, error) {
	return f.cfg, nil
}
func (f *fakeSettingsStore) Save(ctx context.Context, req settings.SaveSettingsRequest) (settings.CompanySettings, error) {
	return f.cfg, nil
}

type fakeOutboxRepository struct {
	withTxFn func(tx *sql.Tx) kafka.OutboxRepository
	createFn func(ctx context.Context, event kafka.OutboxEvent) error
}

func (f *fakeOutboxRepository) WithTx(tx *sql.Tx) kafka.OutboxRepository {
	if f.withTxFn != nil {
		return f.withTxFn(tx)
	}
	return f
}
func (f *fakeOutboxRepository) Create(ctx context.Context, event kafka.OutboxEvent) error {
	if f.createFn != nil {
		return f.createFn(ctx, event)
	}
	return nil
}
func (f *fakeOutboxRepository) ListPending(ctx context.Context, limit int) ([]kafka.OutboxEvent, error) {
	return nil, nil
}
func (f *fakeOutboxRepository) MarkSent(ctx context.Context, id string) error { return nil }
func (f *fakeOutboxRepository) MarkFailed(ctx context.Context, id string, reason string) error {
	return nil
}

type statementServiceDeps struct {
	db        *sql.DB
	sqlMock   sqlmock.Sqlmock
	service   payroll.Service
	repo      *fakeStatementRepository
	employees *fakeEmployeeRepository
	periods   *fakePeriodRepository
	outbox    *fakeOutboxRepository
}

func setupStatementServiceTest(t *testing.T) *statementServiceDeps {
	t.Helper()

	db, sqlMock, err := sqlmock.New()
	assert.NoError(t, err)

	repo := &fakeStatementRepository{}
	employees := &fakeEmployeeRepository{}
	periods := &fakePeriodRepository{}
	outbox := &fakeOutboxRepository{}
	store := &fakeSettingsStore{cfg: settings.CompanySettings{
		ID:                        uuid.New(),
		FederalRatePercent:        10,
		StateRatePercent:          5,
		SocialSecurityRatePercent: 6.2,
		MedicareRatePercent:       1.45,
		PayPeriodsPerYear:         26,
		DefaultHoursPerPeriod:     80,
	}}

	svc := payroll.NewServiceWithOutbox(db, repo, employees, periods, store, payroll.DefaultStatutes(), outbox)

	return &statementServiceDeps{
		db: db, sqlMock: sqlMock, service: svc,
		repo: repo, employees: employees, periods: periods, outbox: outbox,
	}
}

func TestStatementService_Create(t *testing.T) {
	ctx := context.Background()
	deps := setupStatementServiceTest(t)
	defer deps.db.Close()

	emp := hourlyEmployee()
	period := testPeriod()

	deps.sqlMock.ExpectBegin()
	deps.sqlMock.ExpectCommit()

	deps.employees.findByIDFn = func(ctx context.Context, id string) (*employee.Employee, error) {
		assert.Equal(t, emp.ID.String(), id)
		return emp, nil
	}
	deps.periods.findByIDFn = func(ctx context.Context, id string) (*payperiod.PayPeriod, error) {
		return period, nil
	}

	var created *payroll.PayStatement
	deps.repo.createFn = func(ctx context.Context, stmt *payroll.PayStatement) error {
		created = stmt
		return nil
	}

	var outboxEvent kafka.OutboxEvent
	deps.outbox.createFn = func(ctx context.Context, event kafka.OutboxEvent) error {
		outboxEvent = event
		return nil
	}

	resp, err := deps.service.Create(ctx, uuid.NewString(), payroll.CreateStatementRequest{
		EmployeeID:   emp.ID.String(),
		PayPeriodID:  period.ID.String(),
		RegularHours: 80,
	})

	assert.NoError(t, err)
	assert.NotNil(t, created)
	assert.Equal(t, int64(2000_00), resp.GrossCents)
	assert.Equal(t, period.PayDate.Format(time.DateOnly), created.PayDate.Format(time.DateOnly))

	assert.Equal(t, events.StatementCreatedTopic, outboxEvent.Topic)
	var published events.StatementCreatedEvent
	assert.NoError(t, json.Unmarshal(outboxEvent.Payload, &published))
	assert.Equal(t, created.ID.String(), published.StatementID)

	assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
}

func TestStatementService_Create_UsesStoredPriorTotals(t *testing.T) {
	ctx := context.Background()
	deps := setupStatementServiceTest(t)
	defer deps.db.Close()

	emp := hourlyEmployee()
	period := testPeriod()

	deps.sqlMock.ExpectBegin()
	deps.sqlMock.ExpectCommit()

	deps.employees.findByIDFn = func(ctx context.Context, id string) (*employee.Employee, error) {
		return emp, nil
	}
	deps.periods.findByIDFn = func(ctx context.Context, id string) (*payperiod.PayPeriod, error) {
		return period, nil
	}
	deps.repo.listPriorFn = func(ctx context.Context, employeeID string, payDate time.Time) ([]payroll.PayStatement, error) {
		return []payroll.PayStatement{
			{GrossCents: 5000_00, FederalTaxCents: 500_00, NetCents: 4000_00},
			{GrossCents: 5000_00, FederalTaxCents: 500_00, NetCents: 4000_00},
		}, nil
	}

	resp, err := deps.service.Create(ctx, uuid.NewString(), payroll.CreateStatementRequest{
		EmployeeID:   emp.ID.String(),
		PayPeriodID:  period.ID.String(),
		RegularHours: 80,
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(10_000_00+2000_00), resp.YTDGrossCents)
	assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
}

func TestStatementService_Create_DuplicatePeriod(t *testing.T) {
	ctx := context.Background()
	deps := setupStatementServiceTest(t)
	defer deps.db.Close()

	emp := hourlyEmployee()
	period := testPeriod()

	deps.sqlMock.ExpectBegin()
	deps.sqlMock.ExpectRollback()

	deps.employees.findByIDFn = func(ctx context.Context, id string) (*employee.Employee, error) {
		return emp, nil
	}
	deps.periods.findByIDFn = func(ctx context.Context, id string) (*payperiod.PayPeriod, error) {
		return period, nil
	}
	deps.repo.hasForPeriodFn = func(ctx context.Context, employeeID, payPeriodID string) (bool, error) {
		return true, nil
	}

	created := false
	deps.repo.createFn = func(ctx context.Context, stmt *payroll.PayStatement) error {
		created = true
		return nil
	}

	_, err := deps.service.Create(ctx, uuid.NewString(), payroll.CreateStatementRequest{
		EmployeeID:   emp.ID.String(),
		PayPeriodID:  period.ID.String(),
		RegularHours: 80,
	})

	assert.ErrorIs(t, err, payrollerrors.ErrStatementAlreadyExists)
	assert.False(t, created)
	assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
}

func TestStatementService_Create_EmployeeNotFound(t *testing.T) {
	ctx := context.Background()
	deps := setupStatementServiceTest(t)
	defer deps.db.Close()

	deps.sqlMock.ExpectBegin()
	deps.sqlMock.ExpectRollback()

	_, err := deps.service.Create(ctx, uuid.NewString(), payroll.CreateStatementRequest{
		EmployeeID:   uuid.NewString(),
		PayPeriodID:  uuid.NewString(),
		RegularHours: 40,
	})

	assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
	assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
}

func TestStatementService_Create_PersistFailureRollsBack(t *testing.T) {
	ctx := context.Background()
	deps := setupStatementServiceTest(t)
	defer deps.db.Close()

	emp := hourlyEmployee()
	period := testPeriod()

	deps.sqlMock.ExpectBegin()
	deps.sqlMock.ExpectRollback()

	deps.employees.findByIDFn = func(ctx context.Context, id string) (*employee.Employee, error) {
		return emp, nil
	}
	deps.periods.findByIDFn = func(ctx context.Context, id string) (*payperiod.PayPeriod, error) {
		return period, nil
	}
	deps.repo.createFn = func(ctx context.Context, stmt *payroll.PayStatement) error {
		return errors.New("insert failed")
	}

	outboxCalled := false
	deps.outbox.createFn = func(ctx context.Context, event kafka.OutboxEvent) error {
		outboxCalled = true
		return nil
	}

	_, err := deps.service.Create(ctx, uuid.NewString(), payroll.CreateStatementRequest{
		EmployeeID:   emp.ID.String(),
		PayPeriodID:  period.ID.String(),
		RegularHours: 80,
	})

	assert.Error(t, err)
	assert.False(t, outboxCalled)
	assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
}

func TestStatementService_CreateFromTotalHours_SplitsOvertime(t *testing.T) {
	ctx := context.Background()
	deps := setupStatementServiceTest(t)
	defer deps.db.Close()

	emp := hourlyEmployee()
	period := testPeriod()

	deps.sqlMock.ExpectBegin()
	deps.sqlMock.ExpectCommit()

	deps.employees.findByIDFn = func(ctx context.Context, id string) (*employee.Employee, error) {
		return emp, nil
	}
	deps.periods.findByIDFn = func(ctx context.Context, id string) (*payperiod.PayPeriod, error) {
		return period, nil
	}

	var created *payroll.PayStatement
	deps.repo.createFn = func(ctx context.Context, stmt *payroll.PayStatement) error {
		created = stmt
		return nil
	}

	_, err := deps.service.CreateFromTotalHours(ctx, uuid.NewString(), payroll.CreateStatementHoursRequest{
		EmployeeID:  emp.ID.String(),
		PayPeriodID: period.ID.String(),
		TotalHours:  45,
	})

	assert.NoError(t, err)
	if assert.NotNil(t, created) && assert.Len(t, created.Earnings, 2) {
		assert.Equal(t, float64(40), created.Earnings[0].Hours)
		assert.Equal(t, float64(5), created.Earnings[1].Hours)
		assert.Equal(t, payroll.EarningOvertime, created.Earnings[1].Type)
	}
	assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
}

func TestStatementService_GetByID_NotFound(t *testing.T) {
	ctx := context.Background()
	deps := setupStatementServiceTest(t)
	defer deps.db.Close()

	_, err := deps.service.GetByID(ctx, uuid.NewString())

	assert.ErrorIs(t, err, payrollerrors.ErrStatementNotFound)
}
