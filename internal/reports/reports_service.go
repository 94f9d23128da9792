package reports

import (
	"context"
	"time"

	"go-payroll/internal/shared/apperror"

	"go.uber.org/zap"
)

//go:generate mockgen -source=reports_service.go -destination=mock/reports_service_mock.go -package=mock
type Service interface {
	Summary(ctx context.Context, req SummaryQueryRequest) (SummaryResponse, error)
	Quarterly(ctx context.Context, req QuarterlyQueryRequest) (SummaryResponse, error)
	YearToDate(ctx context.Context, req YTDQueryRequest) (SummaryResponse, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger

	// now is swappable so the year-to-date default is testable.
	now func() time.Time
}

func NewService(repo Repository) Service {
	return &service{
		repo:   repo,
		logger: zap.L().Named("reports.service"),
		now:    time.Now,
	}
}

func (s *service) Summary(ctx context.Context, req SummaryQueryRequest) (SummaryResponse, error) {
	from, err := time.Parse(time.DateOnly, req.From)
	if err != nil {
		return SummaryResponse{}, apperror.InvalidField("from")
	}
	to, err := time.Parse(time.DateOnly, req.To)
	if err != nil {
		return SummaryResponse{}, apperror.InvalidField("to")
	}

	rng, err := NewDateRange(from, to)
	if err != nil {
		return SummaryResponse{}, err
	}

	return s.build(ctx, Filter{Range: rng})
}

func (s *service) Quarterly(ctx context.Context, req QuarterlyQueryRequest) (SummaryResponse, error) {
	rng, err := QuarterRange(req.Year, req.Quarter)
	if err != nil {
		return SummaryResponse{}, err
	}

	return s.build(ctx, Filter{Range: rng})
}

// YearToDate reports on the requested year, defaulting to the current
// one. An employee id narrows the rollup to that employee's statements.
func (s *service) YearToDate(ctx context.Context, req YTDQueryRequest) (SummaryResponse, error) {
	year := req.Year
	if year == 0 {
		year = s.now().UTC().Year()
	}

	rng, err := YearRange(year)
	if err != nil {
		return SummaryResponse{}, err
	}

	return s.build(ctx, Filter{Range: rng, EmployeeID: req.EmployeeID})
}

func (s *service) build(ctx context.Context, filter Filter) (SummaryResponse, error) {
	rows, err := s.repo.SummaryByEmployee(ctx, filter)
	if err != nil {
		s.logger.Error("summary by employee query failed", zap.Error(err))
		return SummaryResponse{}, err
	}

	totals, err := s.repo.CompanyTotals(ctx, filter)
	if err != nil {
		s.logger.Error("company totals query failed", zap.Error(err))
		return SummaryResponse{}, err
	}

	if rows == nil {
		rows = []EmployeeSummaryRow{}
	}

	return SummaryResponse{
		From:      filter.Range.From.Format(time.DateOnly),
		To:        filter.Range.To.Format(time.DateOnly),
		Employees: rows,
		Company:   totals,
	}, nil
}
