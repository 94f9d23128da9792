package employee

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	CompensationHourly   = "hourly"
	CompensationSalaried = "salaried"
)

// Employee is the compensation profile the calculation engine reads.
// Exactly one of HourlyRateCents / AnnualSalaryCents is meaningful, selected
// by CompensationType; the service enforces that on every write.
// Monetary fields are stored in cents to avoid floating point drift.
type Employee struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	FullName string    `gorm:"type:varchar(255);not null"`
	Email    string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	IsActive bool      `gorm:"not null;default:true"`

	CompensationType  string `gorm:"type:varchar(20);not null"`
	HourlyRateCents   int64  `gorm:"type:bigint;not null;default:0"`
	AnnualSalaryCents int64  `gorm:"type:bigint;not null;default:0"`

	// Recurring per-period amounts and the pre-tax retirement election.
	RetirementPercent     float64 `gorm:"type:numeric(5,2);not null;default:0"`
	HealthInsuranceCents  int64   `gorm:"type:bigint;not null;default:0"`
	OtherDeductionCents   int64   `gorm:"type:bigint;not null;default:0"`
	DefaultHoursPerPeriod float64 `gorm:"type:numeric(6,2);not null;default:0"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (e *Employee) IsHourly() bool {
	return e.CompensationType == CompensationHourly
}
