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

	cancelBookingHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/cancel_booking"
	checkAvailabilityHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/check_availability"
	createBookingHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/create_booking"
	getBookingHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/get_booking"
	getWeekBookingsHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/get_week_bookings"
	getWeekDaysHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/get_week_days"
	getWeeksHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/get_weeks"
	listBookingsHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/list_bookings"
	listPaymentsHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/list_payments"
	pickupBookingHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/pickup_booking"
	previewPaymentHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/preview_payment"
	recordPaymentHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/record_payment"
	returnBookingHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/return_booking"
	reversePaymentHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/reverse_payment"
	updateBookingHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/update_booking"
	"github.com/m04kA/SMC-RentalService/internal/api/middleware"
	"github.com/m04kA/SMC-RentalService/internal/config"
	bookingRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/booking"
	paymentRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/payment"
	catalogClient "github.com/m04kA/SMC-RentalService/internal/integrations/catalog"
	bookingsService "github.com/m04kA/SMC-RentalService/internal/service/bookings"
	calendarService "github.com/m04kA/SMC-RentalService/internal/service/calendar"
	checkAvailabilityUC "github.com/m04kA/SMC-RentalService/internal/usecase/check_availability"
	createBookingUC "github.com/m04kA/SMC-RentalService/internal/usecase/create_booking"
	recordPaymentUC "github.com/m04kA/SMC-RentalService/internal/usecase/record_payment"
	reversePaymentUC "github.com/m04kA/SMC-RentalService/internal/usecase/reverse_payment"
	updateBookingUC "github.com/m04kA/SMC-RentalService/internal/usecase/update_booking"
	"github.com/m04kA/SMC-RentalService/pkg/dbmetrics"
	"github.com/m04kA/SMC-RentalService/pkg/logger"
	"github.com/m04kA/SMC-RentalService/pkg/metrics"
	"github.com/m04kA/SMC-RentalService/pkg/txmanager"
)

func main() {
	configPath := "config.toml"
	if p := os.Getenv("RENTAL_CONFIG"); p != "" {
		configPath = p
	}

	// Загружаем конфигурацию
	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting SMC-RentalService...")
	log.Info("Configuration loaded from %s", configPath)

	// Инициализируем метрики (если включены)
	// nil-коллектор безопасен: и dbmetrics, и use cases его пропускают
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Инициализируем клиента каталога
	catalog := catalogClient.NewClient(
		cfg.CatalogService.URL,
		time.Duration(cfg.CatalogService.Timeout)*time.Second,
		log,
	)
	log.Info("Catalog client initialized (url=%s, timeout=%ds)", cfg.CatalogService.URL, cfg.CatalogService.Timeout)

	// Инициализируем репозитории
	bookingRepository := bookingRepo.NewRepository(wrappedDB)
	paymentRepository := paymentRepo.NewRepository(wrappedDB)

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(bookingRepository, paymentRepository, txMgr, log)
	calendarSvc := calendarService.NewService(bookingSvc, log)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		paymentRepository,
		catalog,
		txMgr,
		metricsCollector,
		cfg.Rental.PrepDays,
		log,
	)
	updateBookingUseCase := updateBookingUC.NewUseCase(
		bookingRepository,
		catalog,
		txMgr,
		cfg.Rental.PrepDays,
		log,
	)
	recordPaymentUseCase := recordPaymentUC.NewUseCase(
		bookingRepository,
		paymentRepository,
		txMgr,
		metricsCollector,
		log,
	)
	reversePaymentUseCase := reversePaymentUC.NewUseCase(
		bookingRepository,
		paymentRepository,
		txMgr,
		metricsCollector,
		log,
	)
	checkAvailabilityUseCase := checkAvailabilityUC.NewUseCase(bookingRepository, cfg.Rental.PrepDays, log)
	log.Info("Use cases initialized (prep_days=%d)", cfg.Rental.PrepDays)

	// Инициализируем handlers
	getWeeks := getWeeksHandler.NewHandler(calendarSvc, log)
	getWeekDays := getWeekDaysHandler.NewHandler(calendarSvc, log)
	getWeekBookings := getWeekBookingsHandler.NewHandler(calendarSvc, log)
	listBookings := listBookingsHandler.NewHandler(bookingSvc, log)
	checkAvailability := checkAvailabilityHandler.NewHandler(checkAvailabilityUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	updateBooking := updateBookingHandler.NewHandler(updateBookingUseCase, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	pickupBooking := pickupBookingHandler.NewHandler(bookingSvc, log)
	returnBooking := returnBookingHandler.NewHandler(bookingSvc, log)
	listPayments := listPaymentsHandler.NewHandler(bookingSvc, log)
	recordPayment := recordPaymentHandler.NewHandler(recordPaymentUseCase, log)
	reversePayment := reversePaymentHandler.NewHandler(reversePaymentUseCase, log)
	previewPayment := previewPaymentHandler.NewHandler(bookingSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		log.Info("HTTP metrics middleware enabled")

		// Metrics endpoint (публичный, без аутентификации)
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// READ ROUTES (без X-User-ID)
	// ============================================================

	// --- Календарь ---
	api.HandleFunc("/calendar/weeks/{month:[0-9]+}/{year:[0-9]+}", getWeeks.Handle).Methods(http.MethodGet)
	api.HandleFunc("/calendar/weeks/{month:[0-9]+}/{year:[0-9]+}/{week:[0-9]+}/days",
		getWeekDays.Handle).Methods(http.MethodGet)
	api.HandleFunc("/calendar/weeks/{month:[0-9]+}/{year:[0-9]+}/{week:[0-9]+}/bookings",
		getWeekBookings.Handle).Methods(http.MethodGet)

	// --- Бронирования ---
	// check-availability регистрируется раньше /bookings/{bookingId}
	api.HandleFunc("/bookings/check-availability", checkAvailability.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings", listBookings.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{bookingId:[0-9]+}", getBooking.Handle).Methods(http.MethodGet)

	// --- Платежи ---
	api.HandleFunc("/bookings/{bookingId:[0-9]+}/payments", listPayments.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{bookingId:[0-9]+}/payment-preview", previewPayment.Handle).Methods(http.MethodGet)

	// ============================================================
	// WRITE ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Бронирования ---
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/{bookingId:[0-9]+}", updateBooking.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/bookings/{bookingId:[0-9]+}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/bookings/{bookingId:[0-9]+}/pickup", pickupBooking.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/bookings/{bookingId:[0-9]+}/return", returnBooking.Handle).Methods(http.MethodPatch)

	// --- Платежи ---
	protected.HandleFunc("/bookings/{bookingId:[0-9]+}/payments", recordPayment.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/{bookingId:[0-9]+}/payments/{paymentId:[0-9]+}",
		reversePayment.Handle).Methods(http.MethodDelete)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Останавливаем сбор метрик connection pool
	close(stopMetricsCh)

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
