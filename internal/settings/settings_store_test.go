package settings_test

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"go-payroll/internal/settings"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeSettingsRepository struct {
	mu   sync.Mutex
	rows []settings.CompanySettings

	findAllCalls atomic.Int64
	createCalls  atomic.Int64
	deletedIDs   []string
}

func (f *fakeSettingsRepository) FindAll(ctx context.Context) ([]settings.CompanySettings, error) {
	f.findAllCalls.Add(1)
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]settings.CompanySettings, len(f.rows))
	copy(out, f.rows)
	return out, nil
}

func (f *fakeSettingsRepository) Create(ctx context.Context, cfg *settings.CompanySettings) error {
	f.createCalls.Add(1)
	f.mu.Lock()
	defer f.mu.Unlock()
	f.rows = append([]settings.CompanySettings{*cfg}, f.rows...)
	return nil
}

func (f *fakeSettingsRepository) Update(ctx context.Context, cfg *settings.CompanySettings) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.rows {
		if f.rows[i].ID == cfg.ID {
			f.rows[i] = *cfg
			return nil
		}
	}
	return nil
}

func (f *fakeSettingsRepository) DeleteByIDs(ctx context.Context, ids []string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deletedIDs = append(f.deletedIDs, ids...)

	kept := f.rows[:0]
	for _, row := range f.rows {
		deleted := false
		for _, id := range ids {
			if row.ID.String() == id {
				deleted = true
				break
			}
		}
		if !deleted {
			kept = append(kept, row)
		}
	}
	f.rows = kept
	return nil
}

func TestSettingsStore_Get_CreatesDefaultsOnce(t *testing.T) {
	ctx := context.Background()
	repo := &fakeSettingsRepository{}
	store := settings.NewStore(repo)

	cfg, err := store.Get(ctx)

	assert.NoError(t, err)
	assert.Equal(t, settings.DefaultFederalRatePercent, cfg.FederalRatePercent)
	assert.Equal(t, settings.DefaultStateRatePercent, cfg.StateRatePercent)
	assert.Equal(t, settings.DefaultSocialSecurityRatePercent, cfg.SocialSecurityRatePercent)
	assert.Equal(t, settings.DefaultMedicareRatePercent, cfg.MedicareRatePercent)
	assert.Equal(t, settings.DefaultPayPeriodsPerYear, cfg.PayPeriodsPerYear)
	assert.Equal(t, settings.DefaultHoursPerPeriod, cfg.DefaultHoursPerPeriod)
	assert.EqualValues(t, 1, repo.createCalls.Load())

	// A second read comes from the cache.
	again, err := store.Get(ctx)
	assert.NoError(t, err)
	assert.Equal(t, cfg.ID, again.ID)
	assert.EqualValues(t, 1, repo.findAllCalls.Load())
}

func TestSettingsStore_Get_ConcurrentFirstReadsCreateOneRow(t *testing.T) {
	ctx := context.Background()
	repo := &fakeSettingsRepository{}
	store := settings.NewStore(repo)

	var wg sync.WaitGroup
	ids := make([]uuid.UUID, 50)
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			cfg, err := store.Get(ctx)
			assert.NoError(t, err)
			ids[i] = cfg.ID
		}(i)
	}
	wg.Wait()

	assert.EqualValues(t, 1, repo.createCalls.Load())
	for _, id := range ids[1:] {
		assert.Equal(t, ids[0], id)
	}
}

func TestSettingsStore_Get_RepairsDuplicatesKeepingNewest(t *testing.T) {
	ctx := context.Background()

	newest := settings.CompanySettings{
		ID:                 uuid.New(),
		FederalRatePercent: 22,
		PayPeriodsPerYear:  12,
		CreatedAt:          time.Now(),
	}
	older := settings.CompanySettings{
		ID:                 uuid.New(),
		FederalRatePercent: 15,
		PayPeriodsPerYear:  26,
		CreatedAt:          time.Now().Add(-time.Hour),
	}
	oldest := settings.CompanySettings{
		ID:        uuid.New(),
		CreatedAt: time.Now().Add(-2 * time.Hour),
	}

	// FindAll contract: newest first.
	repo := &fakeSettingsRepository{rows: []settings.CompanySettings{newest, older, oldest}}
	store := settings.NewStore(repo)

	cfg, err := store.Get(ctx)

	assert.NoError(t, err)
	assert.Equal(t, newest.ID, cfg.ID)
	assert.Equal(t, float64(22), cfg.FederalRatePercent)
	assert.ElementsMatch(t, []string{older.ID.String(), oldest.ID.String()}, repo.deletedIDs)
	assert.Len(t, repo.rows, 1)
	assert.EqualValues(t, 0, repo.createCalls.Load())
}

func TestSettingsStore_Save_UpdatesAndInvalidatesCache(t *testing.T) {
	ctx := context.Background()
	repo := &fakeSettingsRepository{}
	store := settings.NewStore(repo)

	// Prime the cache.
	_, err := store.Get(ctx)
	assert.NoError(t, err)

	saved, err := store.Save(ctx, settings.SaveSettingsRequest{
		FederalRatePercent:        18,
		StateRatePercent:          4,
		SocialSecurityRatePercent: 6.2,
		MedicareRatePercent:       1.45,
		PayPeriodsPerYear:         24,
		DefaultHoursPerPeriod:     86.67,
	})

	assert.NoError(t, err)
	assert.Equal(t, float64(18), saved.FederalRatePercent)
	assert.Equal(t, 24, saved.PayPeriodsPerYear)

	// The next Get must reload from storage, not the stale cache.
	reads := repo.findAllCalls.Load()
	cfg, err := store.Get(ctx)
	assert.NoError(t, err)
	assert.Equal(t, float64(18), cfg.FederalRatePercent)
	assert.Greater(t, repo.findAllCalls.Load(), reads)
}

func TestSettingsStore_Save_RepairsBeforeWriting(t *testing.T) {
	ctx := context.Background()

	newest := settings.CompanySettings{ID: uuid.New(), CreatedAt: time.Now()}
	older := settings.CompanySettings{ID: uuid.New(), CreatedAt: time.Now().Add(-time.Hour)}
	repo := &fakeSettingsRepository{rows: []settings.CompanySettings{newest, older}}
	store := settings.NewStore(repo)

	saved, err := store.Save(ctx, settings.SaveSettingsRequest{
		FederalRatePercent: 20,
		PayPeriodsPerYear:  26,
	})

	assert.NoError(t, err)
	assert.Equal(t, newest.ID, saved.ID)
	assert.Equal(t, []string{older.ID.String()}, repo.deletedIDs)
	assert.Len(t, repo.rows, 1)
}
