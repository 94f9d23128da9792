package events

import "time"

const StatementCreatedTopic = "payroll.statement.created.v1"

type StatementCreatedEvent struct {
	EventType   string    `json:"event_type"`
	RequestID   string    `json:"request_id,omitempty"`
	StatementID string    `json:"statement_id"`
	EmployeeID  string    `json:"employee_id"`
	PayPeriodID string    `json:"pay_period_id"`
	PayDate     string    `json:"pay_date"`
	OccurredAt  time.Time `json:"occurred_at"`
}
