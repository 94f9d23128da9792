package settings

type SaveSettingsRequest struct {
	FederalRatePercent        float64 `json:"federal_rate_percent" binding:"min=0,max=100"`
	StateRatePercent          float64 `json:"state_rate_percent" binding:"min=0,max=100"`
	SocialSecurityRatePercent float64 `json:"social_security_rate_percent" binding:"min=0,max=100"`
	MedicareRatePercent       float64 `json:"medicare_rate_percent" binding:"min=0,max=100"`
	PayPeriodsPerYear         int     `json:"pay_periods_per_year" binding:"required,min=1"`
	DefaultHoursPerPeriod     float64 `json:"default_hours_per_period" binding:"min=0"`
}

type SettingsResponse struct {
	ID                        string  `json:"id"`
	FederalRatePercent        float64 `json:"federal_rate_percent"`
	StateRatePercent          float64 `json:"state_rate_percent"`
	SocialSecurityRatePercent float64 `json:"social_security_rate_percent"`
	MedicareRatePercent       float64 `json:"medicare_rate_percent"`
	PayPeriodsPerYear         int     `json:"pay_periods_per_year"`
	DefaultHoursPerPeriod     float64 `json:"default_hours_per_period"`
}

func mapToResponse(cfg CompanySettings) SettingsResponse {
	return SettingsResponse{
		ID:                        cfg.ID.String(),
		FederalRatePercent:        cfg.FederalRatePercent,
		StateRatePercent:          cfg.StateRatePercent,
		SocialSecurityRatePercent: cfg.SocialSecurityRatePercent,
		MedicareRatePercent:       cfg.MedicareRatePercent,
		PayPeriodsPerYear:         cfg.PayPeriodsPerYear,
		DefaultHoursPerPeriod:     cfg.DefaultHoursPerPeriod,
	}
}
