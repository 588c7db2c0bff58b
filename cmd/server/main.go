package main

import (
	"database/sql"
	"flag"
	"log"
	"net/http"
	"time"

	httpapi "vehicle-rental-backend/internal/api/http"
	"vehicle-rental-backend/internal/config"
	"vehicle-rental-backend/internal/logger"
	"vehicle-rental-backend/internal/repository/mysql"
	"vehicle-rental-backend/internal/security"
	"vehicle-rental-backend/internal/service"

	_ "github.com/go-sql-driver/mysql"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting Vehicle Rental Backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)

	// Initialize Database
	db, err := sql.Open("mysql", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Test database connection
	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	// Initialize Repositories
	store := mysql.NewStore(db)

	// Initialize Security
	tokenManager := security.NewTokenManager(cfg.JWT.Secret, time.Duration(cfg.JWT.AccessTokenExpiry)*time.Minute)

	// Initialize Email Service
	emailSvc := service.NewEmailService(cfg.Email.APIKey, cfg.Email.FromEmail, cfg.Email.FromName)

	// Initialize Services
	authSvc := service.NewAuthService(store.UserRepository, tokenManager)
	availSvc := service.NewAvailabilityService(store.VehicleRepository, store.BookingRepository, store.RateRepository)
	resvSvc := service.NewReservationService(
		store.ReservationRepository,
		store.VehicleRepository,
		store.CustomerRepository,
		store.RateRepository,
		store.BookingRepository,
		emailSvc,
	)
	rentalSvc := service.NewRentalService(
		store.RentalRepository,
		store.ReservationRepository,
		store.VehicleRepository,
		store.CustomerRepository,
		store.RateRepository,
		store.BookingRepository,
		emailSvc,
	)
	fleetSvc := service.NewFleetService(store.VehicleRepository)
	rateSvc := service.NewRateService(store.RateRepository)
	customerSvc := service.NewCustomerService(store.CustomerRepository)
	paymentSvc := service.NewPaymentService(store.PaymentRepository, store.InvoiceRepository)
	maintSvc := service.NewMaintenanceService(store.MaintenanceRepository, store.DamageRepository, store.VehicleRepository)
	reportSvc := service.NewReportService(store.ReportRepository)

	// Initialize HTTP API
	handlers := httpapi.NewHandlers(
		authSvc,
		availSvc,
		resvSvc,
		rentalSvc,
		fleetSvc,
		rateSvc,
		customerSvc,
		paymentSvc,
		maintSvc,
		reportSvc,
	)
	router := httpapi.NewRouter(handlers, tokenManager)

	server := &http.Server{
		Addr:         cfg.GetServerAddress(),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
	if err := server.ListenAndServe(); err != nil {
		logger.Error("Server stopped", "error", err)
		log.Fatalf("Server stopped: %v", err)
	}
}
