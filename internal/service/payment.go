package service

import (
	"context"
	"time"

	"dormhub-backend/internal/domain"
	"dormhub-backend/internal/logger"
	"dormhub-backend/internal/repository"
	"dormhub-backend/internal/utils"
)

type paymentService struct {
	paymentRepo    repository.PaymentRepository
	assignmentRepo repository.AssignmentRepository
	userRepo       repository.UserRepository
	emailSvc       EmailService
	now            func() time.Time
}

func NewPaymentService(
	paymentRepo repository.PaymentRepository,
	assignmentRepo repository.AssignmentRepository,
	userRepo repository.UserRepository,
	emailSvc EmailService,
) PaymentService {
	return &paymentService{
		paymentRepo:    paymentRepo,
		assignmentRepo: assignmentRepo,
		userRepo:       userRepo,
		emailSvc:       emailSvc,
		now:            time.Now,
	}
}

func (s *paymentService) Record(ctx context.Context, actor domain.Actor, in RecordPaymentInput) (*domain.Payment, error) {
	if !actor.Is(domain.RoleAdmin, domain.RoleLandlord) {
		return nil, domain.ErrPermissionDenied
	}
	if in.UserID == 0 || in.Method == "" || in.PaymentDate == "" || in.Amount.IsZero() {
		return nil, domain.ErrMissingField
	}
	if in.Amount.IsNegative() {
		return nil, domain.ErrInvalidAmount
	}
	if _, err := utils.ParseDate(in.PaymentDate); err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByID(ctx, in.UserID)
	if err != nil {
		return nil, err
	}

	receipt := in.ReceiptNumber
	if receipt == "" {
		receipt = utils.GenerateReceiptNumber(s.now())
	}

	payment := &domain.Payment{
		UserID:        user.ID,
		AssignmentID:  in.AssignmentID,
		Amount:        in.Amount,
		Method:        in.Method,
		PaymentDate:   in.PaymentDate,
		ReceiptNumber: receipt,
		RecordedBy:    actor.UserID,
		Notes:         in.Notes,
	}
	if in.PeriodStart != "" {
		payment.PeriodStart = &in.PeriodStart
	}
	if in.PeriodEnd != "" {
		payment.PeriodEnd = &in.PeriodEnd
	}

	// The unique constraint on receipt_number is the collision arbiter; the
	// repository maps its violation to ErrDuplicateReceipt.
	if err := s.paymentRepo.Create(ctx, payment); err != nil {
		return nil, err
	}

	logger.Info("Payment recorded", "payment_id", payment.ID, "user_id", user.ID, "receipt", receipt, "recorded_by", actor.UserID)
	_ = s.emailSvc.SendPaymentReceipt(ctx, user.Email, user.FullName(), receipt, payment.Amount)

	return payment, nil
}

func (s *paymentService) Edit(ctx context.Context, actor domain.Actor, paymentID int32, in EditPaymentInput) (*domain.Payment, error) {
	if actor.Role != domain.RoleAdmin {
		return nil, domain.ErrPermissionDenied
	}
	payment, err := s.paymentRepo.GetByID(ctx, paymentID)
	if err != nil {
		return nil, err
	}
	if in.Amount.IsZero() || in.Method == "" || in.PaymentDate == "" {
		return nil, domain.ErrMissingField
	}
	if in.Amount.IsNegative() {
		return nil, domain.ErrInvalidAmount
	}
	if _, err := utils.ParseDate(in.PaymentDate); err != nil {
		return nil, err
	}

	payment.Amount = in.Amount
	payment.Method = in.Method
	payment.PaymentDate = in.PaymentDate
	payment.Notes = in.Notes

	if err := s.paymentRepo.Update(ctx, payment); err != nil {
		return nil, err
	}
	logger.Info("Payment corrected", "payment_id", payment.ID, "by", actor.UserID)
	return payment, nil
}

func (s *paymentService) Delete(ctx context.Context, actor domain.Actor, paymentID int32) error {
	if actor.Role != domain.RoleAdmin {
		return domain.ErrPermissionDenied
	}
	if _, err := s.paymentRepo.GetByID(ctx, paymentID); err != nil {
		return err
	}
	if err := s.paymentRepo.Delete(ctx, paymentID); err != nil {
		return err
	}
	logger.Info("Payment deleted", "payment_id", paymentID, "by", actor.UserID)
	return nil
}

func (s *paymentService) List(ctx context.Context, actor domain.Actor, filter domain.PaymentFilter) ([]domain.Payment, error) {
	return s.paymentRepo.List(ctx, actor, filter)
}

func (s *paymentService) Stats(ctx context.Context, actor domain.Actor) (*domain.PaymentStats, error) {
	stats := &domain.PaymentStats{}

	total, err := s.paymentRepo.TotalCollected(ctx, actor)
	if err != nil {
		return nil, err
	}
	stats.TotalCollected = total

	month, err := s.paymentRepo.MonthCollected(ctx, actor)
	if err != nil {
		return nil, err
	}
	stats.MonthCollected = month

	count, err := s.paymentRepo.CountPayments(ctx, actor)
	if err != nil {
		return nil, err
	}
	stats.PaymentCount = count

	avg, err := s.paymentRepo.AveragePayment(ctx, actor)
	if err != nil {
		return nil, err
	}
	stats.AveragePayment = avg

	return stats, nil
}

// BalanceForUser computes expected = Σ monthly_rate over the user's active
// assignments and balance = expected − total paid, at read time.
func (s *paymentService) BalanceForUser(ctx context.Context, userID int32) (*domain.StudentBalance, error) {
	expected, err := s.assignmentRepo.ActiveMonthlyTotal(ctx, userID)
	if err != nil {
		return nil, err
	}
	paid, err := s.paymentRepo.TotalPaidByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	nextDue, err := s.assignmentRepo.NextDueDate(ctx, userID)
	if err != nil {
		return nil, err
	}
	if nextDue == "" {
		nextDue = "N/A"
	}

	return &domain.StudentBalance{
		TotalPaid:   paid,
		Expected:    expected,
		Balance:     expected.Sub(paid),
		NextDueDate: nextDue,
	}, nil
}
