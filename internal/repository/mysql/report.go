package mysql

import (
	"context"
	"database/sql"

	"vehicle-rental-backend/internal/domain"
	"vehicle-rental-backend/internal/repository"
)

type reportRepository struct {
	db *sql.DB
}

func NewReportRepository(db *sql.DB) repository.ReportRepository {
	return &reportRepository{db: db}
}

func (r *reportRepository) DashboardSummary(ctx context.Context) (*domain.DashboardSummary, error) {
	summary := &domain.DashboardSummary{
		VehiclesByStatus: make(map[domain.VehicleStatus]int64),
	}

	rows, err := r.db.QueryContext(ctx, `SELECT status, COUNT(*) FROM vehicles GROUP BY status`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var status domain.VehicleStatus
		var count int64
		if err := rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		summary.VehiclesByStatus[status] = count
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	err = r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM rentals WHERE status = 'Active'`).Scan(&summary.ActiveRentals)
	if err != nil {
		return nil, err
	}
	err = r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM reservations WHERE status = 'Pending'`).Scan(&summary.PendingResv)
	if err != nil {
		return nil, err
	}
	// Revenue counts money actually collected, not invoiced totals.
	err = r.db.QueryRowContext(ctx, `SELECT COALESCE(SUM(amount_cents), 0) FROM payments WHERE status = 'Completed'`).Scan(&summary.RevenueCents)
	if err != nil {
		return nil, err
	}
	err = r.db.QueryRowContext(ctx, `SELECT COALESCE(SUM(balance_due_cents), 0) FROM invoices`).Scan(&summary.OutstandingCents)
	if err != nil {
		return nil, err
	}
	err = r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM damage_reports WHERE status <> 'Repaired'`).Scan(&summary.OpenDamageReports)
	if err != nil {
		return nil, err
	}
	return summary, nil
}
