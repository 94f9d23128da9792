package payroll

import (
	"os"
	"strconv"
)

// Statutes are the statutory caps and thresholds that change once a year.
// They are deployment configuration, not company settings: operators update
// them via environment overrides when the IRS/SSA publish new figures.
type Statutes struct {
	SocialSecurityWageBaseCents      int64
	AdditionalMedicareThresholdCents int64
	AdditionalMedicareRatePercent    float64
	RetirementLimitCents             int64
	OvertimeMultiplier               float64
	StandardPeriodHours              float64
}

// DefaultStatutes returns the tax-year 2024 figures.
func DefaultStatutes() Statutes {
	return Statutes{
		SocialSecurityWageBaseCents:      168_600_00,
		AdditionalMedicareThresholdCents: 200_000_00,
		AdditionalMedicareRatePercent:    0.9,
		RetirementLimitCents:             23_000_00,
		OvertimeMultiplier:               1.5,
		StandardPeriodHours:              40,
	}
}

// StatutesFromEnv starts from the defaults and applies any environment
// overrides, so an annual update needs a redeploy but no code change.
func StatutesFromEnv() Statutes {
	st := DefaultStatutes()

	if v, ok := envInt64("PAYROLL_SS_WAGE_BASE_CENTS"); ok {
		st.SocialSecurityWageBaseCents = v
	}
	if v, ok := envInt64("PAYROLL_ADDL_MEDICARE_THRESHOLD_CENTS"); ok {
		st.AdditionalMedicareThresholdCents = v
	}
	if v, ok := envFloat("PAYROLL_ADDL_MEDICARE_RATE_PERCENT"); ok {
		st.AdditionalMedicareRatePercent = v
	}
	if v, ok := envInt64("PAYROLL_RETIREMENT_LIMIT_CENTS"); ok {
		st.RetirementLimitCents = v
	}
	if v, ok := envFloat("PAYROLL_OVERTIME_MULTIPLIER"); ok {
		st.OvertimeMultiplier = v
	}
	if v, ok := envFloat("PAYROLL_STANDARD_PERIOD_HOURS"); ok {
		st.StandardPeriodHours = v
	}

	return st
}

func envInt64(key string) (int64, bool) {
	raw := os.Getenv(key)
	if raw == "" {
		return 0, false
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func envFloat(key string) (float64, bool) {
	raw := os.Getenv(key)
	if raw == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
