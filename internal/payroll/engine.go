package payroll

import (
	"math"

	"go-payroll/internal/employee"
	"go-payroll/internal/payperiod"
	"go-payroll/internal/settings"

	"github.com/google/uuid"
)

// PeriodInput is what varies period to period for one employee: hours and
// any one-off amounts. Negative values are a caller precondition violation;
// the engine does not validate them.
type PeriodInput struct {
	RegularHours          float64
	OvertimeHours         float64
	BonusCents            int64
	CommissionCents       int64
	BonusDescription      string
	CommissionDescription string
}

// YTDTotals are the sums of an employee's stored prior statements for the
// calendar year, strictly before the period being computed. They come from
// persisted statement fields, never from re-deriving with current rates.
type YTDTotals struct {
	GrossCents             int64
	TaxCents               int64
	RetirementCents        int64
	SocialSecurityTaxCents int64
	NetCents               int64
}

// Compute turns a compensation profile, a pay period, a settings snapshot
// and the period inputs into a fully itemized pay statement. It is pure: all
// storage access (the YTD lookup) happens before the call. The caller
// persists the result.
func Compute(
	emp *employee.Employee,
	period *payperiod.PayPeriod,
	cfg settings.CompanySettings,
	st Statutes,
	input PeriodInput,
	prior YTDTotals,
) *PayStatement {
	stmt := &PayStatement{
		ID:          uuid.New(),
		EmployeeID:  emp.ID,
		PayPeriodID: period.ID,
		PayDate:     period.PayDate,
		HoursWorked: input.RegularHours + input.OvertimeHours,
	}

	// 1. Earnings. Zero or negative amounts produce no line (sparse
	// representation).
	if emp.IsHourly() {
		if input.RegularHours > 0 {
			stmt.Earnings = append(stmt.Earnings, EarningLine{
				ID:          uuid.New(),
				Type:        EarningRegular,
				Hours:       input.RegularHours,
				RateCents:   emp.HourlyRateCents,
				AmountCents: roundCents(input.RegularHours * float64(emp.HourlyRateCents)),
				Description: "Regular hours",
			})
		}
		if input.OvertimeHours > 0 {
			otRate := roundCents(float64(emp.HourlyRateCents) * st.OvertimeMultiplier)
			stmt.Earnings = append(stmt.Earnings, EarningLine{
				ID:          uuid.New(),
				Type:        EarningOvertime,
				Hours:       input.OvertimeHours,
				RateCents:   otRate,
				AmountCents: roundCents(input.OvertimeHours * float64(emp.HourlyRateCents) * st.OvertimeMultiplier),
				Description: "Overtime hours",
			})
		}
	} else {
		periods := cfg.PayPeriodsPerYear
		if periods <= 0 {
			periods = settings.DefaultPayPeriodsPerYear
		}
		stmt.Earnings = append(stmt.Earnings, EarningLine{
			ID:          uuid.New(),
			Type:        EarningRegular,
			AmountCents: roundCents(float64(emp.AnnualSalaryCents) / float64(periods)),
			Description: "Salary",
		})
	}

	if input.BonusCents > 0 {
		desc := input.BonusDescription
		if desc == "" {
			desc = "Bonus"
		}
		stmt.Earnings = append(stmt.Earnings, EarningLine{
			ID:          uuid.New(),
			Type:        EarningBonus,
			AmountCents: input.BonusCents,
			Description: desc,
		})
	}
	if input.CommissionCents > 0 {
		desc := input.CommissionDescription
		if desc == "" {
			desc = "Commission"
		}
		stmt.Earnings = append(stmt.Earnings, EarningLine{
			ID:          uuid.New(),
			Type:        EarningCommission,
			AmountCents: input.CommissionCents,
			Description: desc,
		})
	}

	for i := range stmt.Earnings {
		stmt.Earnings[i].SortOrder = i
		stmt.GrossCents += stmt.Earnings[i].AmountCents
	}

	// 2. Pre-tax retirement, capped by the remaining annual room.
	requested := roundCents(float64(stmt.GrossCents) * emp.RetirementPercent / 100)
	remaining := st.RetirementLimitCents - prior.RetirementCents
	if remaining < 0 {
		remaining = 0
	}
	stmt.RetirementCents = min64(requested, remaining)
	if stmt.RetirementCents > 0 {
		stmt.Deductions = append(stmt.Deductions, DeductionLine{
			ID:          uuid.New(),
			Type:        DeductionRetirement,
			AmountCents: stmt.RetirementCents,
			PreTax:      true,
			Description: "401(k) contribution",
		})
	}

	// 3. Pre-tax health insurance, flat per-period amount.
	if emp.HealthInsuranceCents > 0 {
		stmt.Deductions = append(stmt.Deductions, DeductionLine{
			ID:          uuid.New(),
			Type:        DeductionHealthInsurance,
			AmountCents: emp.HealthInsuranceCents,
			PreTax:      true,
			Description: "Health insurance",
		})
	}

	taxable := stmt.GrossCents - stmt.PreTaxDeductionCents()

	// 4. Social Security: the wage base caps cumulative *gross* pay, not
	// taxable income.
	ssRoom := st.SocialSecurityWageBaseCents - prior.GrossCents
	if ssRoom < 0 {
		ssRoom = 0
	}
	ssBasis := min64(stmt.GrossCents, ssRoom)
	stmt.SocialSecurityTaxCents = roundCents(float64(ssBasis) * cfg.SocialSecurityRatePercent / 100)
	if stmt.SocialSecurityTaxCents > 0 {
		stmt.Taxes = append(stmt.Taxes, TaxLine{
			ID:          uuid.New(),
			Type:        TaxSocialSecurity,
			AmountCents: stmt.SocialSecurityTaxCents,
			RatePercent: cfg.SocialSecurityRatePercent,
			BasisCents:  ssBasis,
			Description: "Social Security",
		})
	}

	// 5. Medicare: base rate on full gross, plus the surtax on the slice of
	// this period's gross that sits above the annual threshold.
	baseMedicare := roundCents(float64(stmt.GrossCents) * cfg.MedicareRatePercent / 100)
	excessAfter := max64(0, prior.GrossCents+stmt.GrossCents-st.AdditionalMedicareThresholdCents)
	excessBefore := max64(0, prior.GrossCents-st.AdditionalMedicareThresholdCents)
	surtaxBasis := excessAfter - excessBefore
	surtax := roundCents(float64(surtaxBasis) * st.AdditionalMedicareRatePercent / 100)

	stmt.MedicareTaxCents = baseMedicare + surtax
	medicareRate := cfg.MedicareRatePercent
	medicareDesc := "Medicare"
	if surtax > 0 {
		medicareRate = cfg.MedicareRatePercent + st.AdditionalMedicareRatePercent
		medicareDesc = "Medicare incl. additional tax"
	}
	if stmt.MedicareTaxCents > 0 {
		stmt.Taxes = append(stmt.Taxes, TaxLine{
			ID:          uuid.New(),
			Type:        TaxMedicare,
			AmountCents: stmt.MedicareTaxCents,
			RatePercent: medicareRate,
			BasisCents:  stmt.GrossCents,
			Description: medicareDesc,
		})
	}

	// 6. Federal and state income tax on taxable income. These two lines are
	// always emitted, zero included, so every statement shows the rates it
	// was computed with.
	stmt.FederalTaxCents = roundCents(float64(taxable) * cfg.FederalRatePercent / 100)
	stmt.Taxes = append(stmt.Taxes, TaxLine{
		ID:          uuid.New(),
		Type:        TaxFederal,
		AmountCents: stmt.FederalTaxCents,
		RatePercent: cfg.FederalRatePercent,
		BasisCents:  taxable,
		Description: "Federal income tax",
	})

	stmt.StateTaxCents = roundCents(float64(taxable) * cfg.StateRatePercent / 100)
	stmt.Taxes = append(stmt.Taxes, TaxLine{
		ID:          uuid.New(),
		Type:        TaxState,
		AmountCents: stmt.StateTaxCents,
		RatePercent: cfg.StateRatePercent,
		BasisCents:  taxable,
		Description: "State income tax",
	})

	// 7. Post-tax deductions.
	if emp.OtherDeductionCents > 0 {
		stmt.Deductions = append(stmt.Deductions, DeductionLine{
			ID:          uuid.New(),
			Type:        DeductionOther,
			AmountCents: emp.OtherDeductionCents,
			PreTax:      false,
			Description: "Other deductions",
		})
		stmt.PostTaxDeductionCents = emp.OtherDeductionCents
	}

	for i := range stmt.Deductions {
		stmt.Deductions[i].SortOrder = i
	}
	for i := range stmt.Taxes {
		stmt.Taxes[i].SortOrder = i
	}

	// 8. Net pay and running totals.
	stmt.NetCents = taxable - stmt.TotalTaxCents() - stmt.PostTaxDeductionCents
	stmt.YTDGrossCents = prior.GrossCents + stmt.GrossCents
	stmt.YTDTaxCents = prior.TaxCents + stmt.TotalTaxCents()
	stmt.YTDNetCents = prior.NetCents + stmt.NetCents

	return stmt
}

// SplitTotalHours splits a single total-hours value into regular and
// overtime at the standard-hours threshold. Legacy entry point: the split
// assumes a two-week norm and ignores the configured pay frequency; kept
// for callers that only record one hours figure.
func SplitTotalHours(totalHours float64, st Statutes) (regular, overtime float64) {
	if totalHours <= st.StandardPeriodHours {
		return totalHours, 0
	}
	return st.StandardPeriodHours, totalHours - st.StandardPeriodHours
}

func roundCents(v float64) int64 {
	return int64(math.Round(v))
}

func min64(a, b int64) int64 {
	if a < b {
		return a
	}
	return b
}

func max64(a, b int64) int64 {
	if a > b {
		return a
	}
	return b
}
