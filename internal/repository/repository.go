package repository

import (
	"context"

	"dormhub-backend/internal/domain"

	"github.com/shopspring/decimal"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id int32) (*domain.User, error)
	GetByUsernameOrEmail(ctx context.Context, usernameOrEmail string) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context, id int32) error
	Deactivate(ctx context.Context, id int32) error
	ListActive(ctx context.Context) ([]domain.User, error)
}

type BuildingRepository interface {
	Create(ctx context.Context, b *domain.Building) error
	GetByID(ctx context.Context, id int32) (*domain.Building, error)
	Update(ctx context.Context, b *domain.Building) error
	Delete(ctx context.Context, id int32) error
	Deactivate(ctx context.Context, id int32) error
	// ListActive is scoped by the actor: admins see every active building,
	// landlords only their own.
	ListActive(ctx context.Context, actor domain.Actor) ([]domain.Building, error)
	// HasAssignmentHistory reports whether any assignment row, of any status,
	// references a room in this building.
	HasAssignmentHistory(ctx context.Context, buildingID int32) (bool, error)
}

type RoomRepository interface {
	Create(ctx context.Context, room *domain.Room) error
	GetByID(ctx context.Context, id int32) (*domain.Room, error)
	GetByNumber(ctx context.Context, buildingID int32, roomNumber string) (*domain.Room, error)
	Update(ctx context.Context, room *domain.Room) error
	Delete(ctx context.Context, id int32) error
	// SetAvailability is an idempotent single-row write of the availability
	// flag; the only occupancy-bookkeeping surface in the system.
	SetAvailability(ctx context.Context, roomID int32, available bool) error
	IsAvailable(ctx context.Context, roomID int32) (bool, error)
	ListAvailable(ctx context.Context, actor domain.Actor) ([]domain.Room, error)
	// ReconcileAvailability rewrites every room's flag from the presence of
	// active/pending assignments and returns the number of rows corrected.
	ReconcileAvailability(ctx context.Context) (int64, error)
}

type AssignmentRepository interface {
	// CreateActive inserts the assignment with status active and marks the
	// room unavailable in the same transaction.
	CreateActive(ctx context.Context, a *domain.Assignment) error
	GetByID(ctx context.Context, id int32) (*domain.Assignment, error)
	// UpdateWithReconcile applies the assignment update and reconciles room
	// availability in one transaction: the current room follows the new
	// status (completed frees it, anything else occupies it), then the old
	// room is freed if the assignment moved.
	UpdateWithReconcile(ctx context.Context, a *domain.Assignment, oldRoomID int32) error
	// ExistsForRoom is true if any assignment references the room, regardless
	// of status; "has history" is stronger than "is active".
	ExistsForRoom(ctx context.Context, roomID int32) (bool, error)
	HasActiveForRoom(ctx context.Context, roomID int32) (bool, error)
	CountForUser(ctx context.Context, userID int32) (int32, error)
	List(ctx context.Context, actor domain.Actor) ([]domain.Assignment, error)
	ListForUser(ctx context.Context, userID int32) ([]domain.Assignment, error)
	// ActiveMonthlyTotal sums monthly_rate over the user's active assignments.
	ActiveMonthlyTotal(ctx context.Context, userID int32) (decimal.Decimal, error)
	// NextDueDate returns the minimum future end_date among the user's active
	// assignments, or "" when there is none.
	NextDueDate(ctx context.Context, userID int32) (string, error)
	// ListEndingBetween returns active assignments whose end_date falls in
	// [from, to], for due-date reminders.
	ListEndingBetween(ctx context.Context, from, to string) ([]domain.Assignment, error)
}

type PaymentRepository interface {
	Create(ctx context.Context, p *domain.Payment) error
	GetByID(ctx context.Context, id int32) (*domain.Payment, error)
	Update(ctx context.Context, p *domain.Payment) error
	Delete(ctx context.Context, id int32) error
	List(ctx context.Context, actor domain.Actor, filter domain.PaymentFilter) ([]domain.Payment, error)
	TotalCollected(ctx context.Context, actor domain.Actor) (decimal.Decimal, error)
	MonthCollected(ctx context.Context, actor domain.Actor) (decimal.Decimal, error)
	CountPayments(ctx context.Context, actor domain.Actor) (int32, error)
	AveragePayment(ctx context.Context, actor domain.Actor) (decimal.Decimal, error)
	TotalPaidByUser(ctx context.Context, userID int32) (decimal.Decimal, error)
	CountForUser(ctx context.Context, userID int32) (int32, error)
}
