package employee

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	employeeerrors "go-payroll/internal/employee/errors"
	"go-payroll/internal/shared/contextutil"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const employeeOptionsKey = "employees:options"

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	GetAll(ctx context.Context) ([]EmployeeResponse, error)
	GetOptions(ctx context.Context) ([]EmployeeResponse, error)
	GetByID(ctx context.Context, id string) (EmployeeResponse, error)
	Update(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo   Repository
	rdb    *redis.Client
	sf     *singleflight.Group
	logger *zap.Logger
}

func NewService(repo Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{
		repo:   repo,
		rdb:    rdb,
		sf:     &singleflight.Group{},
		logger: l,
	}
}

func (s *service) Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create employee requested",
		zap.String("request_id", rid),
		zap.String("email", req.Email),
		zap.String("compensation_type", req.CompensationType),
	)

	empl := &Employee{
		ID:                    uuid.New(),
		FullName:              normalizeName(req.FullName),
		Email:                 strings.ToLower(strings.TrimSpace(req.Email)),
		IsActive:              true,
		CompensationType:      req.CompensationType,
		HourlyRateCents:       req.HourlyRateCents,
		AnnualSalaryCents:     req.AnnualSalaryCents,
		RetirementPercent:     req.RetirementPercent,
		HealthInsuranceCents:  req.HealthInsuranceCents,
		OtherDeductionCents:   req.OtherDeductionCents,
		DefaultHoursPerPeriod: req.DefaultHoursPerPeriod,
	}

	if err := validateCompensation(empl); err != nil {
		return EmployeeResponse{}, err
	}

	if err := s.repo.Create(ctx, empl); err != nil {
		s.logger.Error("create employee persist failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	s.invalidateOptionsCache(ctx)
	s.logger.Info("create employee success",
		zap.String("request_id", rid),
		zap.String("employee_id", empl.ID.String()),
	)

	return mapToResponse(*empl), nil
}

func (s *service) GetAll(ctx context.Context) ([]EmployeeResponse, error) {
	employees, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("get all employees failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	return mapToListResponse(employees), nil
}

func (s *service) GetOptions(ctx context.Context) ([]EmployeeResponse, error) {
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, employeeOptionsKey).Result(); err == nil {
			var resp []EmployeeResponse
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return resp, nil
			}
		}
	}

	// Singleflight collapses the stampede when the run-payroll form opens.
	v, err, _ := s.sf.Do(employeeOptionsKey, func() (interface{}, error) {
		emps, err := s.repo.FindOptions(ctx)
		if err != nil {
			return nil, mapRepositoryError(err)
		}

		resp := mapToListResponse(emps)

		if s.rdb != nil {
			if jsonData, err := json.Marshal(resp); err == nil {
				s.rdb.Set(ctx, employeeOptionsKey, jsonData, 1*time.Hour)
			}
		}

		return resp, nil
	})

	if err != nil {
		return nil, err
	}

	return v.([]EmployeeResponse), nil
}

func (s *service) GetByID(ctx context.Context, id string) (EmployeeResponse, error) {
	empl, err := s.repo.FindByID(ctx, id)
	if err != nil {
		s.logger.Error("get employee by id failed", zap.String("employee_id", id), zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*empl), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	empl, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	empl.FullName = normalizeName(req.FullName)
	empl.Email = strings.ToLower(strings.TrimSpace(req.Email))
	empl.CompensationType = req.CompensationType
	empl.HourlyRateCents = req.HourlyRateCents
	empl.AnnualSalaryCents = req.AnnualSalaryCents
	empl.RetirementPercent = req.RetirementPercent
	empl.HealthInsuranceCents = req.HealthInsuranceCents
	empl.OtherDeductionCents = req.OtherDeductionCents
	empl.DefaultHoursPerPeriod = req.DefaultHoursPerPeriod
	if req.IsActive != nil {
		empl.IsActive = *req.IsActive
	}

	if err := validateCompensation(empl); err != nil {
		return EmployeeResponse{}, err
	}

	if err := s.repo.Update(ctx, empl); err != nil {
		s.logger.Error("update employee persist failed",
			zap.String("request_id", rid),
			zap.String("employee_id", id),
			zap.Error(err),
		)
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	s.invalidateOptionsCache(ctx)
	s.logger.Info("update employee success",
		zap.String("request_id", rid),
		zap.String("employee_id", id),
	)

	return mapToResponse(*empl), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Error("delete employee failed", zap.String("employee_id", id), zap.Error(err))
		return mapRepositoryError(err)
	}

	s.invalidateOptionsCache(ctx)
	return nil
}

// validateCompensation enforces that exactly one of rate/salary is set,
// selected by the compensation type.
func validateCompensation(empl *Employee) error {
	switch empl.CompensationType {
	case CompensationHourly:
		if empl.HourlyRateCents <= 0 || empl.AnnualSalaryCents != 0 {
			return employeeerrors.ErrInvalidCompensation
		}
	case CompensationSalaried:
		if empl.AnnualSalaryCents <= 0 || empl.HourlyRateCents != 0 {
			return employeeerrors.ErrInvalidCompensation
		}
	default:
		return employeeerrors.ErrInvalidCompensation
	}
	return nil
}

func normalizeName(name string) string {
	caser := cases.Title(language.English)
	return caser.String(strings.ToLower(strings.TrimSpace(name)))
}

func (s *service) invalidateOptionsCache(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, employeeOptionsKey).Err(); err != nil {
		s.logger.Error("failed to invalidate employee options cache",
			zap.Error(err),
			zap.String("key", employeeOptionsKey),
		)
	}
}

func mapToResponse(empl Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:                    empl.ID.String(),
		FullName:              empl.FullName,
		Email:                 empl.Email,
		IsActive:              empl.IsActive,
		CompensationType:      empl.CompensationType,
		HourlyRateCents:       empl.HourlyRateCents,
		AnnualSalaryCents:     empl.AnnualSalaryCents,
		RetirementPercent:     empl.RetirementPercent,
		HealthInsuranceCents:  empl.HealthInsuranceCents,
		OtherDeductionCents:   empl.OtherDeductionCents,
		DefaultHoursPerPeriod: empl.DefaultHoursPerPeriod,
	}
}

func mapToListResponse(employees []Employee) []EmployeeResponse {
	resp := make([]EmployeeResponse, len(employees))
	for i, empl := range employees {
		resp[i] = mapToResponse(empl)
	}
	return resp
}
