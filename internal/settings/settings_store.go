package settings

import (
	"context"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

//go:generate mockgen -source=settings_store.go -destination=mock/settings_store_mock.go -package=mock
type Store interface {
	Get(ctx context.Context) (CompanySettings, error)
	Save(ctx context.Context, req SaveSettingsRequest) (CompanySettings, error)
}

// store caches the singleton settings record behind a double-checked lock.
// The fast path reads the cached copy under an RLock; the slow path takes the
// write lock, re-checks, then loads (repairing duplicates or creating
// defaults as needed). Concurrent first reads collapse onto one DB round trip
// via singleflight, so two callers can never each create a default row.
type store struct {
	repo   Repository
	mu     sync.RWMutex
	sf     singleflight.Group
	cached *CompanySettings
	logger *zap.Logger
}

func NewStore(repo Repository, logger ...*zap.Logger) Store {
	l := zap.L().Named("settings.store")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("settings.store")
	}
	return &store{repo: repo, logger: l}
}

func (s *store) Get(ctx context.Context) (CompanySettings, error) {
	s.mu.RLock()
	if s.cached != nil {
		cfg := *s.cached
		s.mu.RUnlock()
		return cfg, nil
	}
	s.mu.RUnlock()

	v, err, _ := s.sf.Do("settings", func() (interface{}, error) {
		s.mu.Lock()
		defer s.mu.Unlock()

		// Re-check: another caller may have filled the cache while we
		// waited for the lock.
		if s.cached != nil {
			return *s.cached, nil
		}

		cfg, err := s.loadRepairOrCreate(ctx)
		if err != nil {
			return CompanySettings{}, err
		}

		s.cached = cfg
		return *cfg, nil
	})
	if err != nil {
		return CompanySettings{}, err
	}

	return v.(CompanySettings), nil
}

func (s *store) Save(ctx context.Context, req SaveSettingsRequest) (CompanySettings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Repair before writing so the update lands on the surviving row.
	cfg, err := s.loadRepairOrCreate(ctx)
	if err != nil {
		return CompanySettings{}, err
	}

	cfg.FederalRatePercent = req.FederalRatePercent
	cfg.StateRatePercent = req.StateRatePercent
	cfg.SocialSecurityRatePercent = req.SocialSecurityRatePercent
	cfg.MedicareRatePercent = req.MedicareRatePercent
	cfg.PayPeriodsPerYear = req.PayPeriodsPerYear
	cfg.DefaultHoursPerPeriod = req.DefaultHoursPerPeriod

	if err := s.repo.Update(ctx, cfg); err != nil {
		return CompanySettings{}, err
	}

	// Invalidate so the next Get reloads from storage.
	s.cached = nil

	s.logger.Info("company settings saved",
		zap.Float64("federal_rate", cfg.FederalRatePercent),
		zap.Float64("state_rate", cfg.StateRatePercent),
		zap.Int("pay_periods_per_year", cfg.PayPeriodsPerYear),
	)

	return *cfg, nil
}

// loadRepairOrCreate enforces the singleton invariant: zero rows creates the
// defaults, more than one keeps the newest and deletes the rest. Duplicates
// are healed silently, never surfaced as an error. Caller must hold mu.
func (s *store) loadRepairOrCreate(ctx context.Context) (*CompanySettings, error) {
	rows, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	switch {
	case len(rows) == 0:
		cfg := defaultSettings()
		if err := s.repo.Create(ctx, cfg); err != nil {
			return nil, err
		}
		s.logger.Info("no company settings found, created defaults")
		return cfg, nil

	case len(rows) > 1:
		extras := make([]string, 0, len(rows)-1)
		for _, row := range rows[1:] {
			extras = append(extras, row.ID.String())
		}
		if err := s.repo.DeleteByIDs(ctx, extras); err != nil {
			return nil, err
		}
		s.logger.Warn("repaired duplicate company settings",
			zap.Int("discarded", len(extras)),
			zap.String("kept", rows[0].ID.String()),
		)
		fallthrough

	default:
		cfg := rows[0]
		return &cfg, nil
	}
}
