package service

import (
	"context"
	"fmt"
	"time"

	"vehicle-rental-backend/internal/domain"
	"vehicle-rental-backend/internal/repository"
)

type paymentService struct {
	paymentRepo repository.PaymentRepository
	invoiceRepo repository.InvoiceRepository
}

func NewPaymentService(paymentRepo repository.PaymentRepository, invoiceRepo repository.InvoiceRepository) PaymentService {
	return &paymentService{paymentRepo: paymentRepo, invoiceRepo: invoiceRepo}
}

func (s *paymentService) RecordPayment(ctx context.Context, in RecordPaymentInput) (*domain.Payment, error) {
	if in.AmountCents <= 0 {
		return nil, fmt.Errorf("%w: payment amount must be positive", domain.ErrValidation)
	}
	if in.Method == "" {
		return nil, fmt.Errorf("%w: payment method is required", domain.ErrValidation)
	}
	status := in.Status
	if status == "" {
		status = domain.PaymentStatusCompleted
	}

	p := &domain.Payment{
		InvoiceID:   in.InvoiceID,
		AmountCents: in.AmountCents,
		Method:      in.Method,
		Status:      status,
		ReceivedBy:  in.ReceivedBy,
		ReceivedOn:  time.Now(),
	}
	if err := s.paymentRepo.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *paymentService) SetPaymentStatus(ctx context.Context, id int64, status domain.PaymentStatus) (*domain.Payment, error) {
	switch status {
	case domain.PaymentStatusPending, domain.PaymentStatusCompleted, domain.PaymentStatusFailed, domain.PaymentStatusRefunded:
	default:
		return nil, fmt.Errorf("%w: unknown payment status %q", domain.ErrValidation, status)
	}
	return s.paymentRepo.SetStatus(ctx, id, status)
}

func (s *paymentService) GetInvoice(ctx context.Context, id int64) (*domain.Invoice, error) {
	return s.invoiceRepo.GetByID(ctx, id)
}

func (s *paymentService) GetInvoiceForRental(ctx context.Context, rentalID int64) (*domain.Invoice, error) {
	return s.invoiceRepo.GetByRental(ctx, rentalID)
}

func (s *paymentService) ListPayments(ctx context.Context, invoiceID int64) ([]domain.Payment, error) {
	return s.paymentRepo.ListByInvoice(ctx, invoiceID)
}
