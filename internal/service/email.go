package service

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"github.com/shopspring/decimal"
)

type sendgridEmailService struct {
	apiKey    string
	fromEmail string
	fromName  string
}

func NewSendgridEmailService(apiKey, fromEmail, fromName string) EmailService {
	return &sendgridEmailService{
		apiKey:    apiKey,
		fromEmail: fromEmail,
		fromName:  fromName,
	}
}

func (s *sendgridEmailService) send(to, toName, subject, body string) error {
	from := mail.NewEmail(s.fromName, s.fromEmail)
	recipient := mail.NewEmail(toName, to)
	message := mail.NewSingleEmail(from, subject, recipient, body, "")

	client := sendgrid.NewSendClient(s.apiKey)
	response, err := client.Send(message)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid error: status %d, body: %s", response.StatusCode, response.Body)
	}
	return nil
}

func (s *sendgridEmailService) SendAssignmentConfirmation(ctx context.Context, email, name, roomNumber, startDate string) error {
	body := fmt.Sprintf("Hello %s,\n\nYou have been assigned room %s starting %s.\n\nBest regards,\nDormhub", name, roomNumber, startDate)
	return s.send(email, name, "Room Assignment Confirmation", body)
}

func (s *sendgridEmailService) SendPaymentReceipt(ctx context.Context, email, name, receiptNumber string, amount decimal.Decimal) error {
	body := fmt.Sprintf("Hello %s,\n\nWe received your payment of %s.\nReceipt number: %s\n\nBest regards,\nDormhub", name, amount.StringFixed(2), receiptNumber)
	return s.send(email, name, fmt.Sprintf("Payment Receipt %s", receiptNumber), body)
}

func (s *sendgridEmailService) SendDueDateReminder(ctx context.Context, email, name, dueDate string) error {
	body := fmt.Sprintf("Hello %s,\n\nYour tenancy is due on %s. Please arrange payment or renewal before then.\n\nBest regards,\nDormhub", name, dueDate)
	return s.send(email, name, "Upcoming Due Date Reminder", body)
}
