package domain

import "time"

// Invoice is produced exactly once per completed rental, after its charges
// are posted. BalanceDueCents starts equal to TotalCents and is reduced by
// completed payments.
type Invoice struct {
	ID              int64     `json:"id"`
	RentalID        int64     `json:"rental_id"`
	Number          string    `json:"number"`
	SubtotalCents   int64     `json:"subtotal_cents"`
	TaxesCents      int64     `json:"taxes_cents"`
	DiscountsCents  int64     `json:"discounts_cents"`
	TotalCents      int64     `json:"total_cents"`
	BalanceDueCents int64     `json:"balance_due_cents"`
	IssuedBy        int64     `json:"issued_by"`
	IssuedOn        time.Time `json:"issued_on"`
}

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "Pending"
	PaymentStatusCompleted PaymentStatus = "Completed"
	PaymentStatusFailed    PaymentStatus = "Failed"
	PaymentStatusRefunded  PaymentStatus = "Refunded"
)

type Payment struct {
	ID          int64         `json:"id"`
	InvoiceID   int64         `json:"invoice_id"`
	AmountCents int64         `json:"amount_cents"`
	Method      string        `json:"method"`
	Status      PaymentStatus `json:"status"`
	ReceivedBy  int64         `json:"received_by"`
	ReceivedOn  time.Time     `json:"received_on"`
	CreatedOn   time.Time     `json:"created_on"`
}
