package mysql

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"vehicle-rental-backend/internal/domain"
	"vehicle-rental-backend/internal/repository"
)

type invoiceRepository struct {
	db *sql.DB
}

func NewInvoiceRepository(db *sql.DB) repository.InvoiceRepository {
	return &invoiceRepository{db: db}
}

const invoiceColumns = `id, rental_id, number, subtotal_cents, taxes_cents, discounts_cents, total_cents, balance_due_cents, issued_by, issued_on`

func scanInvoice(row interface{ Scan(...interface{}) error }) (*domain.Invoice, error) {
	inv := &domain.Invoice{}
	err := row.Scan(&inv.ID, &inv.RentalID, &inv.Number, &inv.SubtotalCents, &inv.TaxesCents, &inv.DiscountsCents, &inv.TotalCents, &inv.BalanceDueCents, &inv.IssuedBy, &inv.IssuedOn)
	if err != nil {
		return nil, err
	}
	return inv, nil
}

func (r *invoiceRepository) GetByID(ctx context.Context, id int64) (*domain.Invoice, error) {
	inv, err := scanInvoice(r.db.QueryRowContext(ctx, `SELECT `+invoiceColumns+` FROM invoices WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	return inv, err
}

func (r *invoiceRepository) GetByRental(ctx context.Context, rentalID int64) (*domain.Invoice, error) {
	inv, err := scanInvoice(r.db.QueryRowContext(ctx, `SELECT `+invoiceColumns+` FROM invoices WHERE rental_id = ?`, rentalID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	return inv, err
}

type paymentRepository struct {
	db *sql.DB
}

func NewPaymentRepository(db *sql.DB) repository.PaymentRepository {
	return &paymentRepository{db: db}
}

const paymentColumns = `id, invoice_id, amount_cents, method, status, received_by, received_on, created_on`

func scanPayment(row interface{ Scan(...interface{}) error }) (*domain.Payment, error) {
	p := &domain.Payment{}
	err := row.Scan(&p.ID, &p.InvoiceID, &p.AmountCents, &p.Method, &p.Status, &p.ReceivedBy, &p.ReceivedOn, &p.CreatedOn)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *paymentRepository) Create(ctx context.Context, p *domain.Payment) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var invoiceID int64
	err = tx.QueryRowContext(ctx, `SELECT id FROM invoices WHERE id = ? FOR UPDATE`, p.InvoiceID).Scan(&invoiceID)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrNotFound
	}
	if err != nil {
		return err
	}

	query := `INSERT INTO payments (invoice_id, amount_cents, method, status, received_by, received_on, created_on)
	          VALUES (?, ?, ?, ?, ?, ?, ?)`
	result, err := tx.ExecContext(ctx, query, p.InvoiceID, p.AmountCents, p.Method, p.Status, p.ReceivedBy, p.ReceivedOn, time.Now())
	if err != nil {
		return err
	}
	if p.ID, err = result.LastInsertId(); err != nil {
		return err
	}

	if p.Status == domain.PaymentStatusCompleted {
		_, err = tx.ExecContext(ctx, `UPDATE invoices SET balance_due_cents = balance_due_cents - ? WHERE id = ?`, p.AmountCents, p.InvoiceID)
		if err != nil {
			return err
		}
	}
	return tx.Commit()
}

func (r *paymentRepository) GetByID(ctx context.Context, id int64) (*domain.Payment, error) {
	p, err := scanPayment(r.db.QueryRowContext(ctx, `SELECT `+paymentColumns+` FROM payments WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	return p, err
}

// SetStatus transitions the payment and keeps the invoice balance in step:
// moving into Completed reduces the balance, moving out of it restores it.
func (r *paymentRepository) SetStatus(ctx context.Context, id int64, status domain.PaymentStatus) (*domain.Payment, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	p, err := scanPayment(tx.QueryRowContext(ctx, `SELECT `+paymentColumns+` FROM payments WHERE id = ? FOR UPDATE`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	if p.Status != status {
		var delta int64
		if status == domain.PaymentStatusCompleted {
			delta = -p.AmountCents
		} else if p.Status == domain.PaymentStatusCompleted {
			delta = p.AmountCents
		}
		if delta != 0 {
			_, err = tx.ExecContext(ctx, `UPDATE invoices SET balance_due_cents = balance_due_cents + ? WHERE id = ?`, delta, p.InvoiceID)
			if err != nil {
				return nil, err
			}
		}
		_, err = tx.ExecContext(ctx, `UPDATE payments SET status = ? WHERE id = ?`, status, id)
		if err != nil {
			return nil, err
		}
		p.Status = status
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return p, nil
}

func (r *paymentRepository) ListByInvoice(ctx context.Context, invoiceID int64) ([]domain.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE invoice_id = ? ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query, invoiceID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var payments []domain.Payment
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, err
		}
		payments = append(payments, *p)
	}
	return payments, rows.Err()
}
