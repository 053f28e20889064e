package service_test

import (
	"context"

	"dormhub-backend/internal/domain"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// MockUserRepo
type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}
func (m *MockUserRepo) GetByID(ctx context.Context, id int32) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetByUsernameOrEmail(ctx context.Context, usernameOrEmail string) (*domain.User, error) {
	args := m.Called(ctx, usernameOrEmail)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) Update(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}
func (m *MockUserRepo) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockUserRepo) Deactivate(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockUserRepo) ListActive(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.User), args.Error(1)
}

// MockBuildingRepo
type MockBuildingRepo struct {
	mock.Mock
}

func (m *MockBuildingRepo) Create(ctx context.Context, b *domain.Building) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}
func (m *MockBuildingRepo) GetByID(ctx context.Context, id int32) (*domain.Building, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Building), args.Error(1)
}
func (m *MockBuildingRepo) Update(ctx context.Context, b *domain.Building) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}
func (m *MockBuildingRepo) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockBuildingRepo) Deactivate(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockBuildingRepo) ListActive(ctx context.Context, actor domain.Actor) ([]domain.Building, error) {
	args := m.Called(ctx, actor)
	return args.Get(0).([]domain.Building), args.Error(1)
}
func (m *MockBuildingRepo) HasAssignmentHistory(ctx context.Context, buildingID int32) (bool, error) {
	args := m.Called(ctx, buildingID)
	return args.Bool(0), args.Error(1)
}

// MockRoomRepo
type MockRoomRepo struct {
	mock.Mock
}

func (m *MockRoomRepo) Create(ctx context.Context, room *domain.Room) error {
	args := m.Called(ctx, room)
	return args.Error(0)
}
func (m *MockRoomRepo) GetByID(ctx context.Context, id int32) (*domain.Room, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Room), args.Error(1)
}
func (m *MockRoomRepo) GetByNumber(ctx context.Context, buildingID int32, roomNumber string) (*domain.Room, error) {
	args := m.Called(ctx, buildingID, roomNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Room), args.Error(1)
}
func (m *MockRoomRepo) Update(ctx context.Context, room *domain.Room) error {
	args := m.Called(ctx, room)
	return args.Error(0)
}
func (m *MockRoomRepo) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockRoomRepo) SetAvailability(ctx context.Context, roomID int32, available bool) error {
	args := m.Called(ctx, roomID, available)
	return args.Error(0)
}
func (m *MockRoomRepo) IsAvailable(ctx context.Context, roomID int32) (bool, error) {
	args := m.Called(ctx, roomID)
	return args.Bool(0), args.Error(1)
}
func (m *MockRoomRepo) ListAvailable(ctx context.Context, actor domain.Actor) ([]domain.Room, error) {
	args := m.Called(ctx, actor)
	return args.Get(0).([]domain.Room), args.Error(1)
}
func (m *MockRoomRepo) ReconcileAvailability(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// MockAssignmentRepo
type MockAssignmentRepo struct {
	mock.Mock
}

func (m *MockAssignmentRepo) CreateActive(ctx context.Context, a *domain.Assignment) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}
func (m *MockAssignmentRepo) GetByID(ctx context.Context, id int32) (*domain.Assignment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Assignment), args.Error(1)
}
func (m *MockAssignmentRepo) UpdateWithReconcile(ctx context.Context, a *domain.Assignment, oldRoomID int32) error {
	args := m.Called(ctx, a, oldRoomID)
	return args.Error(0)
}
func (m *MockAssignmentRepo) ExistsForRoom(ctx context.Context, roomID int32) (bool, error) {
	args := m.Called(ctx, roomID)
	return args.Bool(0), args.Error(1)
}
func (m *MockAssignmentRepo) HasActiveForRoom(ctx context.Context, roomID int32) (bool, error) {
	args := m.Called(ctx, roomID)
	return args.Bool(0), args.Error(1)
}
func (m *MockAssignmentRepo) CountForUser(ctx context.Context, userID int32) (int32, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int32), args.Error(1)
}
func (m *MockAssignmentRepo) List(ctx context.Context, actor domain.Actor) ([]domain.Assignment, error) {
	args := m.Called(ctx, actor)
	return args.Get(0).([]domain.Assignment), args.Error(1)
}
func (m *MockAssignmentRepo) ListForUser(ctx context.Context, userID int32) ([]domain.Assignment, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.Assignment), args.Error(1)
}
func (m *MockAssignmentRepo) ActiveMonthlyTotal(ctx context.Context, userID int32) (decimal.Decimal, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}
func (m *MockAssignmentRepo) NextDueDate(ctx context.Context, userID int32) (string, error) {
	args := m.Called(ctx, userID)
	return args.String(0), args.Error(1)
}
func (m *MockAssignmentRepo) ListEndingBetween(ctx context.Context, from, to string) ([]domain.Assignment, error) {
	args := m.Called(ctx, from, to)
	return args.Get(0).([]domain.Assignment), args.Error(1)
}

// MockPaymentRepo
type MockPaymentRepo struct {
	mock.Mock
}

func (m *MockPaymentRepo) Create(ctx context.Context, p *domain.Payment) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}
func (m *MockPaymentRepo) GetByID(ctx context.Context, id int32) (*domain.Payment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}
func (m *MockPaymentRepo) Update(ctx context.Context, p *domain.Payment) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}
func (m *MockPaymentRepo) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockPaymentRepo) List(ctx context.Context, actor domain.Actor, filter domain.PaymentFilter) ([]domain.Payment, error) {
	args := m.Called(ctx, actor, filter)
	return args.Get(0).([]domain.Payment), args.Error(1)
}
func (m *MockPaymentRepo) TotalCollected(ctx context.Context, actor domain.Actor) (decimal.Decimal, error) {
	args := m.Called(ctx, actor)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}
func (m *MockPaymentRepo) MonthCollected(ctx context.Context, actor domain.Actor) (decimal.Decimal, error) {
	args := m.Called(ctx, actor)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}
func (m *MockPaymentRepo) CountPayments(ctx context.Context, actor domain.Actor) (int32, error) {
	args := m.Called(ctx, actor)
	return args.Get(0).(int32), args.Error(1)
}
func (m *MockPaymentRepo) AveragePayment(ctx context.Context, actor domain.Actor) (decimal.Decimal, error) {
	args := m.Called(ctx, actor)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}
func (m *MockPaymentRepo) TotalPaidByUser(ctx context.Context, userID int32) (decimal.Decimal, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}
func (m *MockPaymentRepo) CountForUser(ctx context.Context, userID int32) (int32, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int32), args.Error(1)
}

// MockEmailService
type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendAssignmentConfirmation(ctx context.Context, email, name, roomNumber, startDate string) error {
	args := m.Called(ctx, email, name, roomNumber, startDate)
	return args.Error(0)
}
func (m *MockEmailService) SendPaymentReceipt(ctx context.Context, email, name, receiptNumber string, amount decimal.Decimal) error {
	args := m.Called(ctx, email, name, receiptNumber, amount)
	return args.Error(0)
}
func (m *MockEmailService) SendDueDateReminder(ctx context.Context, email, name, dueDate string) error {
	args := m.Called(ctx, email, name, dueDate)
	return args.Error(0)
}
