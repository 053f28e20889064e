package domain

import "github.com/shopspring/decimal"

type AssignmentStatus string

const (
	AssignmentStatusPending   AssignmentStatus = "pending"
	AssignmentStatusActive    AssignmentStatus = "active"
	AssignmentStatusCompleted AssignmentStatus = "completed"
	AssignmentStatusCancelled AssignmentStatus = "cancelled"
)

// Terminal reports whether the status admits no further transitions.
func (s AssignmentStatus) Terminal() bool {
	return s == AssignmentStatusCompleted || s == AssignmentStatusCancelled
}

// OccupiesRoom reports whether an assignment in this status holds its room.
func (s AssignmentStatus) OccupiesRoom() bool {
	return s == AssignmentStatusPending || s == AssignmentStatusActive
}

func (s AssignmentStatus) Valid() bool {
	switch s {
	case AssignmentStatusPending, AssignmentStatusActive, AssignmentStatusCompleted, AssignmentStatusCancelled:
		return true
	}
	return false
}

// Assignment is a tenancy record binding one user to one room for a date
// range. Dates travel as yyyy-mm-dd strings.
type Assignment struct {
	ID          int32            `json:"id"`
	UserID      int32            `json:"user_id"`
	RoomID      int32            `json:"room_id"`
	StartDate   string           `json:"start_date"`
	EndDate     *string          `json:"end_date,omitempty"`
	MonthlyRate decimal.Decimal  `json:"monthly_rate"`
	Status      AssignmentStatus `json:"status"`
	AssignedBy  int32            `json:"assigned_by"`
	CreatedOn   string           `json:"created_on"`
	UpdatedOn   string           `json:"updated_on"`
}
