package payperiod

import "time"

type PayPeriodResponse struct {
	ID        string `json:"id"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	PayDate   string `json:"pay_date"`
	Frequency string `json:"frequency,omitempty"`
}

func mapToResponse(p PayPeriod, freq Frequency) PayPeriodResponse {
	return PayPeriodResponse{
		ID:        p.ID.String(),
		StartDate: p.StartDate.Format(time.DateOnly),
		EndDate:   p.EndDate.Format(time.DateOnly),
		PayDate:   p.PayDate.Format(time.DateOnly),
		Frequency: string(freq),
	}
}

func mapToListResponse(periods []PayPeriod) []PayPeriodResponse {
	resp := make([]PayPeriodResponse, len(periods))
	for i, p := range periods {
		resp[i] = mapToResponse(p, "")
	}
	return resp
}
