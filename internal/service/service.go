package service

import (
	"context"

	"dormhub-backend/internal/domain"

	"github.com/shopspring/decimal"
)

// CreateAssignmentInput carries the caller-supplied fields for a new tenancy.
// The tenant may be identified by username or email; resolution happens in
// the service.
type CreateAssignmentInput struct {
	UsernameOrEmail string          `json:"username_or_email"`
	RoomID          int32           `json:"room_id"`
	StartDate       string          `json:"start_date"`
	EndDate         string          `json:"end_date,omitempty"`
	MonthlyRate     decimal.Decimal `json:"monthly_rate"`
}

// EditAssignmentInput identifies the target room by building plus
// human-entered room number; the service re-resolves the room id itself
// because UI selects may arrive disabled client-side.
type EditAssignmentInput struct {
	BuildingID  int32                   `json:"building_id"`
	RoomNumber  string                  `json:"room_number"`
	EndDate     string                  `json:"end_date,omitempty"`
	MonthlyRate *decimal.Decimal        `json:"monthly_rate,omitempty"`
	Status      domain.AssignmentStatus `json:"status"`
}

type AssignmentService interface {
	Create(ctx context.Context, actor domain.Actor, in CreateAssignmentInput) (*domain.Assignment, error)
	Edit(ctx context.Context, actor domain.Actor, assignmentID int32, in EditAssignmentInput) (*domain.Assignment, error)
	Get(ctx context.Context, actor domain.Actor, assignmentID int32) (*domain.Assignment, error)
	List(ctx context.Context, actor domain.Actor) ([]domain.Assignment, error)
}

type RecordPaymentInput struct {
	UserID        int32           `json:"user_id"`
	AssignmentID  *int32          `json:"assignment_id,omitempty"`
	Amount        decimal.Decimal `json:"amount"`
	Method        string          `json:"method"`
	PaymentDate   string          `json:"payment_date"`
	PeriodStart   string          `json:"period_start,omitempty"`
	PeriodEnd     string          `json:"period_end,omitempty"`
	ReceiptNumber string          `json:"receipt_number,omitempty"`
	Notes         string          `json:"notes,omitempty"`
}

type EditPaymentInput struct {
	Amount      decimal.Decimal `json:"amount"`
	Method      string          `json:"method"`
	PaymentDate string          `json:"payment_date"`
	Notes       string          `json:"notes"`
}

type PaymentService interface {
	Record(ctx context.Context, actor domain.Actor, in RecordPaymentInput) (*domain.Payment, error)
	Edit(ctx context.Context, actor domain.Actor, paymentID int32, in EditPaymentInput) (*domain.Payment, error)
	Delete(ctx context.Context, actor domain.Actor, paymentID int32) error
	List(ctx context.Context, actor domain.Actor, filter domain.PaymentFilter) ([]domain.Payment, error)
	Stats(ctx context.Context, actor domain.Actor) (*domain.PaymentStats, error)
	// BalanceForUser is recomputed on every read, never stored.
	BalanceForUser(ctx context.Context, userID int32) (*domain.StudentBalance, error)
}

type RoomService interface {
	Create(ctx context.Context, actor domain.Actor, room *domain.Room) error
	Update(ctx context.Context, actor domain.Actor, room *domain.Room) error
	Get(ctx context.Context, roomID int32) (*domain.Room, error)
	ListAvailable(ctx context.Context, actor domain.Actor) ([]domain.Room, error)
	SetAvailability(ctx context.Context, roomID int32, available bool) error
	IsAvailable(ctx context.Context, roomID int32) (bool, error)
}

type BuildingService interface {
	Create(ctx context.Context, actor domain.Actor, b *domain.Building) error
	Update(ctx context.Context, actor domain.Actor, b *domain.Building) error
	Get(ctx context.Context, buildingID int32) (*domain.Building, error)
	List(ctx context.Context, actor domain.Actor) ([]domain.Building, error)
	Deactivate(ctx context.Context, actor domain.Actor, buildingID int32) error
}

type UserService interface {
	Create(ctx context.Context, actor domain.Actor, u *domain.User) error
	Update(ctx context.Context, actor domain.Actor, u *domain.User) error
	Get(ctx context.Context, userID int32) (*domain.User, error)
	List(ctx context.Context, actor domain.Actor) ([]domain.User, error)
}

// DeletionOutcome tags what DeleteOrDeactivateUser actually did, so callers
// can render the right message deterministically.
type DeletionOutcome string

const (
	OutcomeDeleted     DeletionOutcome = "DELETED"
	OutcomeDeactivated DeletionOutcome = "DEACTIVATED"
)

type DeletionService interface {
	CanDeleteBuilding(ctx context.Context, buildingID int32) (bool, error)
	DeleteBuilding(ctx context.Context, actor domain.Actor, buildingID int32) error
	CanDeleteRoom(ctx context.Context, roomID int32) (bool, error)
	// RoomHasHistory is true if any assignment row references the room,
	// terminal statuses included. A room's history is what permanently
	// protects its building from deletion.
	RoomHasHistory(ctx context.Context, roomID int32) (bool, error)
	DeleteRoom(ctx context.Context, actor domain.Actor, roomID int32) error
	DeleteOrDeactivateUser(ctx context.Context, actor domain.Actor, userID int32) (DeletionOutcome, error)
}

// EmailService is the outbound notification collaborator. Sends happen after
// a successful ledger operation and never gate its outcome.
type EmailService interface {
	SendAssignmentConfirmation(ctx context.Context, email, name, roomNumber, startDate string) error
	SendPaymentReceipt(ctx context.Context, email, name, receiptNumber string, amount decimal.Decimal) error
	SendDueDateReminder(ctx context.Context, email, name, dueDate string) error
}
