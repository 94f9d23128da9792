package payperiod

import (
	"context"
	"errors"
	"time"

	payperioderrors "go-payroll/internal/payperiod/errors"
	"go-payroll/internal/settings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=payperiod_service.go -destination=mock/payperiod_service_mock.go -package=mock
type Service interface {
	CreateNext(ctx context.Context) (PayPeriodResponse, error)
	GetAll(ctx context.Context) ([]PayPeriodResponse, error)
	GetByID(ctx context.Context, id string) (PayPeriodResponse, error)
}

type service struct {
	repo     Repository
	settings settings.Store
	logger   *zap.Logger

	// now is swappable for tests; defaults to time.Now.
	now func() time.Time
}

func NewService(repo Repository, settingsStore settings.Store, logger ...*zap.Logger) Service {
	l := zap.L().Named("payperiod.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("payperiod.service")
	}
	return &service{
		repo:     repo,
		settings: settingsStore,
		logger:   l,
		now:      time.Now,
	}
}

// CreateNext derives and persists the period following the latest one on
// record. With no prior period, today is the reference date.
func (s *service) CreateNext(ctx context.Context) (PayPeriodResponse, error) {
	cfg, err := s.settings.Get(ctx)
	if err != nil {
		return PayPeriodResponse{}, err
	}
	freq := FrequencyForPeriods(cfg.PayPeriodsPerYear)

	var sched Schedule
	last, err := s.repo.FindLatest(ctx)
	switch {
	case err == nil:
		sched = NextAfter(last.EndDate, freq)
	case errors.Is(err, gorm.ErrRecordNotFound):
		// first period ever, derive from today
		sched = Next(s.now(), freq)
	default:
		return PayPeriodResponse{}, err
	}
	period := &PayPeriod{
		ID:        uuid.New(),
		StartDate: sched.Start,
		EndDate:   sched.End,
		PayDate:   sched.PayDate,
	}

	overlap, err := s.repo.HasOverlap(ctx, period)
	if err != nil {
		return PayPeriodResponse{}, err
	}
	if overlap {
		return PayPeriodResponse{}, payperioderrors.ErrPayPeriodOverlap
	}

	if err := s.repo.Create(ctx, period); err != nil {
		return PayPeriodResponse{}, err
	}

	s.logger.Info("pay period created",
		zap.String("pay_period_id", period.ID.String()),
		zap.String("start", period.StartDate.Format(time.DateOnly)),
		zap.String("end", period.EndDate.Format(time.DateOnly)),
		zap.String("pay_date", period.PayDate.Format(time.DateOnly)),
		zap.String("frequency", string(freq)),
	)

	return mapToResponse(*period, freq), nil
}

func (s *service) GetAll(ctx context.Context) ([]PayPeriodResponse, error) {
	periods, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	return mapToListResponse(periods), nil
}

func (s *service) GetByID(ctx context.Context, id string) (PayPeriodResponse, error) {
	period, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return PayPeriodResponse{}, payperioderrors.ErrPayPeriodNotFound
		}
		return PayPeriodResponse{}, err
	}

	return mapToResponse(*period, ""), nil
}
