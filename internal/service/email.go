package service

import (
	"context"
	"fmt"

	"vehicle-rental-backend/internal/domain"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

type emailService struct {
	apiKey    string
	fromEmail string
	fromName  string
}

func NewEmailService(apiKey, fromEmail, fromName string) EmailService {
	return &emailService{
		apiKey:    apiKey,
		fromEmail: fromEmail,
		fromName:  fromName,
	}
}

func (s *emailService) send(to, toName, subject, plainText string) error {
	from := mail.NewEmail(s.fromName, s.fromEmail)
	recipient := mail.NewEmail(toName, to)
	message := mail.NewSingleEmail(from, subject, recipient, plainText, "")

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

func (s *emailService) SendReservationConfirmation(ctx context.Context, email, name string, res *domain.Reservation) error {
	subject := "Your reservation is confirmed"
	body := fmt.Sprintf(
		"Hello %s,\n\nYour reservation #%d is confirmed.\n\nPickup: %s\nReturn: %s\nEstimated total: $%.2f\n\nThank you for renting with us.",
		name, res.ID,
		res.PickupAt.Format("Mon, 02 Jan 2006 15:04"),
		res.ReturnAt.Format("Mon, 02 Jan 2006 15:04"),
		float64(res.TotalAmountCents)/100,
	)
	return s.send(email, name, subject, body)
}

func (s *emailService) SendReturnReceipt(ctx context.Context, email, name string, inv *domain.Invoice) error {
	subject := fmt.Sprintf("Receipt for invoice %s", inv.Number)
	body := fmt.Sprintf(
		"Hello %s,\n\nYour rental has been returned.\n\nInvoice: %s\nSubtotal: $%.2f\nTotal: $%.2f\nBalance due: $%.2f\n\nThank you for renting with us.",
		name, inv.Number,
		float64(inv.SubtotalCents)/100,
		float64(inv.TotalCents)/100,
		float64(inv.BalanceDueCents)/100,
	)
	return s.send(email, name, subject, body)
}

func (s *emailService) SendOverdueReminder(ctx context.Context, email, name string, rt *domain.Rental) error {
	subject := "Your rental return is overdue"
	body := fmt.Sprintf(
		"Hello %s,\n\nYour rental #%d was due back on %s. Please return the vehicle or contact us to extend the rental.\n\nLate fees may apply.",
		name, rt.ID,
		rt.ExpectedReturnAt.Format("Mon, 02 Jan 2006 15:04"),
	)
	return s.send(email, name, subject, body)
}
