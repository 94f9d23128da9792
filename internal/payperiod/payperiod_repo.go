package payperiod

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=payperiod_repo.go -destination=mock/payperiod_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, period *PayPeriod) error
	FindAll(ctx context.Context) ([]PayPeriod, error)
	FindByID(ctx context.Context, id string) (*PayPeriod, error)
	FindLatest(ctx context.Context) (*PayPeriod, error)
	HasOverlap(ctx context.Context, p *PayPeriod) (bool, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, period *PayPeriod) error {
	return r.db.WithContext(ctx).Create(period).Error
}

func (r *repository) FindAll(ctx context.Context) ([]PayPeriod, error) {
	var periods []PayPeriod
	err := r.db.WithContext(ctx).
		Order("start_date DESC").
		Find(&periods).Error
	return periods, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*PayPeriod, error) {
	var period PayPeriod
	err := r.db.WithContext(ctx).First(&period, "id = ?", id).Error
	return &period, err
}

// FindLatest returns the most recent period by end date, or
// gorm.ErrRecordNotFound when no period exists yet.
func (r *repository) FindLatest(ctx context.Context) (*PayPeriod, error) {
	var period PayPeriod
	err := r.db.WithContext(ctx).
		Order("end_date DESC").
		First(&period).Error
	return &period, err
}

func (r *repository) HasOverlap(ctx context.Context, p *PayPeriod) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&PayPeriod{}).
		Where("NOT (end_date < ? OR start_date > ?)", p.StartDate, p.EndDate).
		Count(&count).Error
	return count > 0, err
}
