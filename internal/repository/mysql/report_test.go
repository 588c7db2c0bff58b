package mysql_test

import (
	"context"
	"testing"

	"vehicle-rental-backend/internal/domain"
	"vehicle-rental-backend/internal/repository/mysql"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestReportRepository_DashboardSummary(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := mysql.NewReportRepository(db)
	ctx := context.Background()

	mock.ExpectQuery(`SELECT status, COUNT\(\*\) FROM vehicles`).
		WillReturnRows(sqlmock.NewRows([]string{"status", "count"}).
			AddRow("Available", 4).
			AddRow("Rented", 2).
			AddRow("Maintenance", 1))
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM rentals`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM reservations`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))
	mock.ExpectQuery(`SELECT COALESCE\(SUM\(amount_cents\), 0\) FROM payments`).
		WillReturnRows(sqlmock.NewRows([]string{"sum"}).AddRow(250000))
	mock.ExpectQuery(`SELECT COALESCE\(SUM\(balance_due_cents\), 0\) FROM invoices`).
		WillReturnRows(sqlmock.NewRows([]string{"sum"}).AddRow(42000))
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM damage_reports`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	summary, err := repo.DashboardSummary(ctx)
	assert.NoError(t, err)
	assert.Equal(t, int64(4), summary.VehiclesByStatus[domain.VehicleStatusAvailable])
	assert.Equal(t, int64(2), summary.ActiveRentals)
	assert.Equal(t, int64(3), summary.PendingResv)
	// Revenue is collected payments, not invoiced totals.
	assert.Equal(t, int64(250000), summary.RevenueCents)
	assert.Equal(t, int64(42000), summary.OutstandingCents)
	assert.Equal(t, int64(1), summary.OpenDamageReports)
	assert.NoError(t, mock.ExpectationsWereMet())
}
