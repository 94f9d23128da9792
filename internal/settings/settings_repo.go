package settings

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=settings_repo.go -destination=mock/settings_repo_mock.go -package=mock
type Repository interface {
	FindAll(ctx context.Context) ([]CompanySettings, error)
	Create(ctx context.Context, cfg *CompanySettings) error
	Update(ctx context.Context, cfg *CompanySettings) error
	DeleteByIDs(ctx context.Context, ids []string) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// FindAll returns every settings row, newest first. The store relies on this
// ordering for the keep-most-recent repair.
func (r *repository) FindAll(ctx context.Context) ([]CompanySettings, error) {
	var rows []CompanySettings
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) Create(ctx context.Context, cfg *CompanySettings) error {
	return r.db.WithContext(ctx).Create(cfg).Error
}

func (r *repository) Update(ctx context.Context, cfg *CompanySettings) error {
	return r.db.WithContext(ctx).Save(cfg).Error
}

func (r *repository) DeleteByIDs(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Delete(&CompanySettings{}, "id IN ?", ids).Error
}
