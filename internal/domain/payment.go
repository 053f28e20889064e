package domain

import "github.com/shopspring/decimal"

type Payment struct {
	ID            int32           `json:"id"`
	UserID        int32           `json:"user_id"`
	AssignmentID  *int32          `json:"assignment_id,omitempty"`
	Amount        decimal.Decimal `json:"amount"`
	Method        string          `json:"method"`
	PaymentDate   string          `json:"payment_date"`
	PeriodStart   *string         `json:"period_start,omitempty"`
	PeriodEnd     *string         `json:"period_end,omitempty"`
	ReceiptNumber string          `json:"receipt_number"` // unique
	RecordedBy    int32           `json:"recorded_by"`
	Notes         string          `json:"notes,omitempty"`
	CreatedOn     string          `json:"created_on"`
	UpdatedOn     string          `json:"updated_on"`
}

// PaymentFilter narrows payment listings on top of the actor's role scope.
type PaymentFilter struct {
	StudentID  int32
	BuildingID int32
	Method     string
	DateFrom   string
	DateTo     string
}

// PaymentStats are the aggregate figures shown to admins and landlords.
// All values are computed on read within the actor's scope.
type PaymentStats struct {
	TotalCollected decimal.Decimal `json:"total_collected"`
	MonthCollected decimal.Decimal `json:"month_collected"`
	PaymentCount   int32           `json:"payment_count"`
	AveragePayment decimal.Decimal `json:"average_payment"`
}

// StudentBalance is the student-facing view: what they paid, what their
// active assignments expect, and when the next one falls due.
type StudentBalance struct {
	TotalPaid   decimal.Decimal `json:"total_paid"`
	Expected    decimal.Decimal `json:"expected"`
	Balance     decimal.Decimal `json:"balance"`
	NextDueDate string          `json:"next_due_date"` // "N/A" when no future due date
}
