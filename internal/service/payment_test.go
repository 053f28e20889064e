package service_test

import (
	"context"
	"strings"
	"testing"

	"dormhub-backend/internal/domain"
	"dormhub-backend/internal/service"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newPaymentService() (service.PaymentService, *MockPaymentRepo, *MockAssignmentRepo, *MockUserRepo, *MockEmailService) {
	paymentRepo := new(MockPaymentRepo)
	assignmentRepo := new(MockAssignmentRepo)
	userRepo := new(MockUserRepo)
	emailSvc := new(MockEmailService)
	svc := service.NewPaymentService(paymentRepo, assignmentRepo, userRepo, emailSvc)
	return svc, paymentRepo, assignmentRepo, userRepo, emailSvc
}

func TestPaymentService_Record(t *testing.T) {
	ctx := context.Background()
	admin := domain.Actor{UserID: 1, Role: domain.RoleAdmin}

	student := &domain.User{ID: 5, Username: "jdoe", Email: "jdoe@test.com", FirstName: "Jane", LastName: "Doe"}

	in := service.RecordPaymentInput{
		UserID:      5,
		Amount:      decimal.NewFromInt(450),
		Method:      "cash",
		PaymentDate: "2026-09-05",
	}

	t.Run("Generates Receipt Number", func(t *testing.T) {
		svc, paymentRepo, _, userRepo, emailSvc := newPaymentService()

		userRepo.On("GetByID", ctx, int32(5)).Return(student, nil)
		paymentRepo.On("Create", ctx, mock.MatchedBy(func(p *domain.Payment) bool {
			return strings.HasPrefix(p.ReceiptNumber, "PMT-")
		})).Return(nil)
		emailSvc.On("SendPaymentReceipt", ctx, "jdoe@test.com", "Jane Doe", mock.AnythingOfType("string"), in.Amount).Return(nil)

		res, err := svc.Record(ctx, admin, in)
		assert.NoError(t, err)
		assert.NotNil(t, res)
		assert.True(t, strings.HasPrefix(res.ReceiptNumber, "PMT-"))
		assert.Equal(t, int32(1), res.RecordedBy)
		paymentRepo.AssertExpectations(t)
	})

	t.Run("Keeps Explicit Receipt Number", func(t *testing.T) {
		svc, paymentRepo, _, userRepo, emailSvc := newPaymentService()

		explicit := in
		explicit.ReceiptNumber = "PMT-20260905-0042"
		userRepo.On("GetByID", ctx, int32(5)).Return(student, nil)
		paymentRepo.On("Create", ctx, mock.MatchedBy(func(p *domain.Payment) bool {
			return p.ReceiptNumber == "PMT-20260905-0042"
		})).Return(nil)
		emailSvc.On("SendPaymentReceipt", ctx, "jdoe@test.com", "Jane Doe", "PMT-20260905-0042", in.Amount).Return(nil)

		res, err := svc.Record(ctx, admin, explicit)
		assert.NoError(t, err)
		assert.Equal(t, "PMT-20260905-0042", res.ReceiptNumber)
	})

	t.Run("Duplicate Receipt Surfaces Conflict", func(t *testing.T) {
		svc, paymentRepo, _, userRepo, _ := newPaymentService()

		userRepo.On("GetByID", ctx, int32(5)).Return(student, nil)
		paymentRepo.On("Create", ctx, mock.AnythingOfType("*domain.Payment")).Return(domain.ErrDuplicateReceipt)

		res, err := svc.Record(ctx, admin, in)
		assert.Nil(t, res)
		assert.ErrorIs(t, err, domain.ErrDuplicateReceipt)
	})

	t.Run("Negative Amount", func(t *testing.T) {
		svc, _, _, _, _ := newPaymentService()

		bad := in
		bad.Amount = decimal.NewFromInt(-10)
		res, err := svc.Record(ctx, admin, bad)
		assert.Nil(t, res)
		assert.ErrorIs(t, err, domain.ErrInvalidAmount)
	})

	t.Run("Student Forbidden", func(t *testing.T) {
		svc, _, _, _, _ := newPaymentService()

		res, err := svc.Record(ctx, domain.Actor{UserID: 5, Role: domain.RoleStudent}, in)
		assert.Nil(t, res)
		assert.ErrorIs(t, err, domain.ErrPermissionDenied)
	})

	t.Run("Email Failure Does Not Gate Success", func(t *testing.T) {
		svc, paymentRepo, _, userRepo, emailSvc := newPaymentService()

		userRepo.On("GetByID", ctx, int32(5)).Return(student, nil)
		paymentRepo.On("Create", ctx, mock.AnythingOfType("*domain.Payment")).Return(nil)
		emailSvc.On("SendPaymentReceipt", ctx, "jdoe@test.com", "Jane Doe", mock.AnythingOfType("string"), in.Amount).Return(assert.AnError)

		res, err := svc.Record(ctx, admin, in)
		assert.NoError(t, err)
		assert.NotNil(t, res)
	})
}

func TestPaymentService_EditAndDelete(t *testing.T) {
	ctx := context.Background()
	admin := domain.Actor{UserID: 1, Role: domain.RoleAdmin}
	landlord := domain.Actor{UserID: 7, Role: domain.RoleLandlord}

	t.Run("Edit Admin Only", func(t *testing.T) {
		svc, _, _, _, _ := newPaymentService()

		res, err := svc.Edit(ctx, landlord, 2, service.EditPaymentInput{
			Amount: decimal.NewFromInt(500), Method: "cash", PaymentDate: "2026-09-05",
		})
		assert.Nil(t, res)
		assert.ErrorIs(t, err, domain.ErrPermissionDenied)
	})

	t.Run("Edit Success", func(t *testing.T) {
		svc, paymentRepo, _, _, _ := newPaymentService()

		paymentRepo.On("GetByID", ctx, int32(2)).Return(&domain.Payment{ID: 2, UserID: 5, Amount: decimal.NewFromInt(450)}, nil)
		paymentRepo.On("Update", ctx, mock.MatchedBy(func(p *domain.Payment) bool {
			return p.Amount.Equal(decimal.NewFromInt(500)) && p.Method == "transfer"
		})).Return(nil)

		res, err := svc.Edit(ctx, admin, 2, service.EditPaymentInput{
			Amount: decimal.NewFromInt(500), Method: "transfer", PaymentDate: "2026-09-06",
		})
		assert.NoError(t, err)
		assert.Equal(t, "2026-09-06", res.PaymentDate)
	})

	t.Run("Delete Admin Only", func(t *testing.T) {
		svc, _, _, _, _ := newPaymentService()

		err := svc.Delete(ctx, landlord, 2)
		assert.ErrorIs(t, err, domain.ErrPermissionDenied)
	})

	t.Run("Delete Missing Payment", func(t *testing.T) {
		svc, paymentRepo, _, _, _ := newPaymentService()

		paymentRepo.On("GetByID", ctx, int32(99)).Return(nil, domain.ErrPaymentNotFound)
		err := svc.Delete(ctx, admin, 99)
		assert.ErrorIs(t, err, domain.ErrPaymentNotFound)
	})
}

func TestPaymentService_BalanceForUser(t *testing.T) {
	ctx := context.Background()

	t.Run("Balance Is Expected Minus Paid", func(t *testing.T) {
		svc, paymentRepo, assignmentRepo, _, _ := newPaymentService()

		assignmentRepo.On("ActiveMonthlyTotal", ctx, int32(5)).Return(decimal.NewFromInt(900), nil)
		paymentRepo.On("TotalPaidByUser", ctx, int32(5)).Return(decimal.NewFromInt(350), nil)
		assignmentRepo.On("NextDueDate", ctx, int32(5)).Return("2026-10-31", nil)

		bal, err := svc.BalanceForUser(ctx, 5)
		assert.NoError(t, err)
		assert.True(t, bal.Balance.Equal(decimal.NewFromInt(550)))
		assert.True(t, bal.Expected.Equal(decimal.NewFromInt(900)))
		assert.True(t, bal.TotalPaid.Equal(decimal.NewFromInt(350)))
		assert.Equal(t, "2026-10-31", bal.NextDueDate)
	})

	t.Run("No Future Due Date", func(t *testing.T) {
		svc, paymentRepo, assignmentRepo, _, _ := newPaymentService()

		assignmentRepo.On("ActiveMonthlyTotal", ctx, int32(5)).Return(decimal.Zero, nil)
		paymentRepo.On("TotalPaidByUser", ctx, int32(5)).Return(decimal.NewFromInt(350), nil)
		assignmentRepo.On("NextDueDate", ctx, int32(5)).Return("", nil)

		bal, err := svc.BalanceForUser(ctx, 5)
		assert.NoError(t, err)
		assert.Equal(t, "N/A", bal.NextDueDate)
		assert.True(t, bal.Balance.Equal(decimal.NewFromInt(-350)))
	})
}

func TestPaymentService_Stats(t *testing.T) {
	ctx := context.Background()
	admin := domain.Actor{UserID: 1, Role: domain.RoleAdmin}

	svc, paymentRepo, _, _, _ := newPaymentService()
	paymentRepo.On("TotalCollected", ctx, admin).Return(decimal.NewFromInt(10000), nil)
	paymentRepo.On("MonthCollected", ctx, admin).Return(decimal.NewFromInt(1200), nil)
	paymentRepo.On("CountPayments", ctx, admin).Return(int32(25), nil)
	paymentRepo.On("AveragePayment", ctx, admin).Return(decimal.NewFromInt(400), nil)

	stats, err := svc.Stats(ctx, admin)
	assert.NoError(t, err)
	assert.True(t, stats.TotalCollected.Equal(decimal.NewFromInt(10000)))
	assert.True(t, stats.MonthCollected.Equal(decimal.NewFromInt(1200)))
	assert.Equal(t, int32(25), stats.PaymentCount)
	assert.True(t, stats.AveragePayment.Equal(decimal.NewFromInt(400)))
}
