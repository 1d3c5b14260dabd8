package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	cancelReservationHandler "github.com/thetrinh16698/tufting-booking/internal/api/handlers/cancel_reservation"
	createReservationHandler "github.com/thetrinh16698/tufting-booking/internal/api/handlers/create_reservation"
	generateSlotsHandler "github.com/thetrinh16698/tufting-booking/internal/api/handlers/generate_slots"
	getAvailabilityHandler "github.com/thetrinh16698/tufting-booking/internal/api/handlers/get_availability"
	getBookingHandler "github.com/thetrinh16698/tufting-booking/internal/api/handlers/get_booking"
	getUserBookingsHandler "github.com/thetrinh16698/tufting-booking/internal/api/handlers/get_user_bookings"
	"github.com/thetrinh16698/tufting-booking/internal/api/middleware"
	"github.com/thetrinh16698/tufting-booking/internal/app"
	"github.com/thetrinh16698/tufting-booking/internal/config"
	availabilityRepo "github.com/thetrinh16698/tufting-booking/internal/infra/storage/availability"
	bookingRepo "github.com/thetrinh16698/tufting-booking/internal/infra/storage/booking"
	catalogRepo "github.com/thetrinh16698/tufting-booking/internal/infra/storage/catalog"
	bookingsService "github.com/thetrinh16698/tufting-booking/internal/service/bookings"
	cancelReservationUC "github.com/thetrinh16698/tufting-booking/internal/usecase/cancel_reservation"
	createReservationUC "github.com/thetrinh16698/tufting-booking/internal/usecase/create_reservation"
	generateSlotsUC "github.com/thetrinh16698/tufting-booking/internal/usecase/generate_slots"
	getAvailabilityUC "github.com/thetrinh16698/tufting-booking/internal/usecase/get_availability"
	"github.com/thetrinh16698/tufting-booking/pkg/dbmetrics"
	"github.com/thetrinh16698/tufting-booking/pkg/logger"
	"github.com/thetrinh16698/tufting-booking/pkg/metrics"
	"github.com/thetrinh16698/tufting-booking/pkg/simpletxmanager"
	"github.com/thetrinh16698/tufting-booking/pkg/txmanager"
)

func main() {
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting tufting-booking service...")

	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	if cfg.Migrations.AutoApply {
		migrator, err := app.NewMigrator(db, cfg.Migrations.Path)
		if err != nil {
			log.Fatal("Failed to initialize migrator: %v", err)
		}
		if err := migrator.Run(context.Background()); err != nil {
			log.Fatal("Failed to apply migrations: %v", err)
		}
		version, err := migrator.Version(context.Background())
		if err != nil {
			log.Fatal("Failed to read migration version: %v", err)
		}
		log.Info("Migrations applied, schema version %d", version)
	}

	var (
		availabilityRepository *availabilityRepo.Repository
		bookingRepository      *bookingRepo.Repository
		catalogRepository      *catalogRepo.Repository
	)

	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		availabilityRepository = availabilityRepo.NewRepository(wrappedDB)
		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		catalogRepository = catalogRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		availabilityRepository = availabilityRepo.NewRepository(db)
		bookingRepository = bookingRepo.NewRepository(db)
		catalogRepository = catalogRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	bookingSvc := bookingsService.NewService(bookingRepository, log)

	generateSlotsUseCase := generateSlotsUC.NewUseCase(
		availabilityRepository,
		catalogRepository,
		log,
	)
	getAvailabilityUseCase := getAvailabilityUC.NewUseCase(
		availabilityRepository,
		log,
	)
	createReservationUseCase := createReservationUC.NewUseCase(
		availabilityRepository,
		bookingRepository,
		catalogRepository,
		txMgr,
		log,
	)
	cancelReservationUseCase := cancelReservationUC.NewUseCase(
		bookingRepository,
		availabilityRepository,
		txMgr,
		log,
	)

	generateSlots := generateSlotsHandler.NewHandler(generateSlotsUseCase, log)
	getAvailability := getAvailabilityHandler.NewHandler(getAvailabilityUseCase, log)
	createReservation := createReservationHandler.NewHandler(createReservationUseCase, log)
	cancelReservation := cancelReservationHandler.NewHandler(cancelReservationUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingSvc, log)

	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// Public routes.
	api.HandleFunc("/services/{serviceId}/availability",
		getAvailability.Handle).Methods(http.MethodGet)

	// Protected routes require the X-User-ID header.
	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	protected.HandleFunc("/services/{serviceId}/slots/generate",
		generateSlots.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings", createReservation.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings", getUserBookings.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelReservation.Handle).Methods(http.MethodPatch)

	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
