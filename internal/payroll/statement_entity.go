package payroll

import (
	"time"

	"github.com/google/uuid"
)

type EarningType string

const (
	EarningRegular    EarningType = "regular"
	EarningOvertime   EarningType = "overtime"
	EarningBonus      EarningType = "bonus"
	EarningCommission EarningType = "commission"
)

type DeductionType string

const (
	DeductionRetirement      DeductionType = "retirement_401k"
	DeductionHealthInsurance DeductionType = "health_insurance"
	DeductionOther           DeductionType = "other"
)

type TaxType string

const (
	TaxFederal        TaxType = "federal"
	TaxState          TaxType = "state"
	TaxSocialSecurity TaxType = "social_security"
	TaxMedicare       TaxType = "medicare"
)

// PayStatement is the frozen result of computing one employee's pay for one
// period. Computed fields are never recalculated after creation, even when
// company settings change later; YTD lookups read these stored values only.
// Financials are stored in cents to avoid floating point error.
// PayDate is denormalized from the owning period so year/range queries skip
// the join.
type PayStatement struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID  uuid.UUID `gorm:"type:uuid;not null;index:idx_statement_employee_paydate;index:idx_employee_period,unique"`
	PayPeriodID uuid.UUID `gorm:"type:uuid;not null;index:idx_employee_period,unique"`
	PayDate     time.Time `gorm:"type:date;not null;index:idx_statement_employee_paydate"`

	HoursWorked float64 `gorm:"type:numeric(6,2);not null;default:0"`

	GrossCents             int64 `gorm:"type:bigint;not null;default:0"`
	RetirementCents        int64 `gorm:"type:bigint;not null;default:0"`
	FederalTaxCents        int64 `gorm:"type:bigint;not null;default:0"`
	StateTaxCents          int64 `gorm:"type:bigint;not null;default:0"`
	SocialSecurityTaxCents int64 `gorm:"type:bigint;not null;default:0"`
	MedicareTaxCents       int64 `gorm:"type:bigint;not null;default:0"`
	PostTaxDeductionCents  int64 `gorm:"type:bigint;not null;default:0"`
	NetCents               int64 `gorm:"type:bigint;not null;default:0"`

	// Running totals as of this statement's pay date.
	YTDGrossCents int64 `gorm:"type:bigint;not null;default:0"`
	YTDTaxCents   int64 `gorm:"type:bigint;not null;default:0"`
	YTDNetCents   int64 `gorm:"type:bigint;not null;default:0"`

	PayslipURL         *string
	PayslipGeneratedAt *time.Time

	CreatedAt time.Time

	Earnings   []EarningLine   `gorm:"foreignKey:StatementID;constraint:OnDelete:CASCADE"`
	Deductions []DeductionLine `gorm:"foreignKey:StatementID;constraint:OnDelete:CASCADE"`
	Taxes      []TaxLine       `gorm:"foreignKey:StatementID;constraint:OnDelete:CASCADE"`
}

type EarningLine struct {
	ID          uuid.UUID   `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	StatementID uuid.UUID   `gorm:"type:uuid;not null;index"`
	Type        EarningType `gorm:"type:varchar(20);not null"`
	Hours       float64     `gorm:"type:numeric(6,2);not null;default:0"`
	RateCents   int64       `gorm:"type:bigint;not null;default:0"`
	AmountCents int64       `gorm:"type:bigint;not null;default:0"`
	Description string      `gorm:"type:varchar(120);not null"`
	SortOrder   int         `gorm:"not null;default:0"`
}

type DeductionLine struct {
	ID          uuid.UUID     `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	StatementID uuid.UUID     `gorm:"type:uuid;not null;index"`
	Type        DeductionType `gorm:"type:varchar(20);not null"`
	AmountCents int64         `gorm:"type:bigint;not null;default:0"`
	PreTax      bool          `gorm:"not null;default:false"`
	Description string        `gorm:"type:varchar(120);not null"`
	SortOrder   int           `gorm:"not null;default:0"`
}

type TaxLine struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	StatementID uuid.UUID `gorm:"type:uuid;not null;index"`
	Type        TaxType   `gorm:"type:varchar(20);not null"`
	AmountCents int64     `gorm:"type:bigint;not null;default:0"`
	RatePercent float64   `gorm:"type:numeric(5,2);not null;default:0"`
	BasisCents  int64     `gorm:"type:bigint;not null;default:0"`
	Description string    `gorm:"type:varchar(120);not null"`
	SortOrder   int       `gorm:"not null;default:0"`
}

// EarningSubtotal sums the lines of one earning type. The switch is
// exhaustive so a new type fails loudly here instead of silently summing to
// zero.
func EarningSubtotal(lines []EarningLine, t EarningType) int64 {
	switch t {
	case EarningRegular, EarningOvertime, EarningBonus, EarningCommission:
	default:
		panic("payroll: unknown earning type " + string(t))
	}

	var total int64
	for _, line := range lines {
		if line.Type == t {
			total += line.AmountCents
		}
	}
	return total
}

func (s *PayStatement) TotalTaxCents() int64 {
	return s.FederalTaxCents + s.StateTaxCents + s.SocialSecurityTaxCents + s.MedicareTaxCents
}

func (s *PayStatement) PreTaxDeductionCents() int64 {
	var total int64
	for _, d := range s.Deductions {
		if d.PreTax {
			total += d.AmountCents
		}
	}
	return total
}

func (s *PayStatement) TaxableCents() int64 {
	return s.GrossCents - s.PreTaxDeductionCents()
}
