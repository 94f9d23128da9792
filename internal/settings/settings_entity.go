package settings

import (
	"time"

	"github.com/google/uuid"
)

// CompanySettings is the single rate-configuration record. The store
// guarantees at most one row survives; see Store for the repair rules.
type CompanySettings struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`

	FederalRatePercent        float64 `gorm:"type:numeric(5,2);not null;default:0"`
	StateRatePercent          float64 `gorm:"type:numeric(5,2);not null;default:0"`
	SocialSecurityRatePercent float64 `gorm:"type:numeric(5,2);not null;default:0"`
	MedicareRatePercent       float64 `gorm:"type:numeric(5,2);not null;default:0"`

	PayPeriodsPerYear     int     `gorm:"not null;default:26"`
	DefaultHoursPerPeriod float64 `gorm:"type:numeric(6,2);not null;default:80"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Defaults used when the store finds no record at all.
const (
	DefaultFederalRatePercent        = 15.0
	DefaultStateRatePercent          = 5.0
	DefaultSocialSecurityRatePercent = 6.2
	DefaultMedicareRatePercent       = 1.45
	DefaultPayPeriodsPerYear         = 26
	DefaultHoursPerPeriod            = 80.0
)

func defaultSettings() *CompanySettings {
	return &CompanySettings{
		ID:                        uuid.New(),
		FederalRatePercent:        DefaultFederalRatePercent,
		StateRatePercent:          DefaultStateRatePercent,
		SocialSecurityRatePercent: DefaultSocialSecurityRatePercent,
		MedicareRatePercent:       DefaultMedicareRatePercent,
		PayPeriodsPerYear:         DefaultPayPeriodsPerYear,
		DefaultHoursPerPeriod:     DefaultHoursPerPeriod,
	}
}
