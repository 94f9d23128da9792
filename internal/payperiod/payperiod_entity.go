package payperiod

import (
	"time"

	"github.com/google/uuid"
)

// PayPeriod is one pay run. Immutable once created; it owns zero or more pay
// statements (the statement side holds the foreign key).
type PayPeriod struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	StartDate time.Time `gorm:"type:date;not null;index"`
	EndDate   time.Time `gorm:"type:date;not null"`
	PayDate   time.Time `gorm:"type:date;not null;index"`
	CreatedAt time.Time
}
