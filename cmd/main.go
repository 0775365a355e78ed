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

	createBookingHandler "github.com/sparkleclean/SCS-BookingService/internal/api/handlers/create_booking"
	createQuoteHandler "github.com/sparkleclean/SCS-BookingService/internal/api/handlers/create_quote"
	getAvailableSlotsHandler "github.com/sparkleclean/SCS-BookingService/internal/api/handlers/get_available_slots"
	getBlockedDatesHandler "github.com/sparkleclean/SCS-BookingService/internal/api/handlers/get_blocked_dates"
	getBookingHandler "github.com/sparkleclean/SCS-BookingService/internal/api/handlers/get_booking"
	getDayBookingsHandler "github.com/sparkleclean/SCS-BookingService/internal/api/handlers/get_day_bookings"
	lookupAddressHandler "github.com/sparkleclean/SCS-BookingService/internal/api/handlers/lookup_address"
	"github.com/sparkleclean/SCS-BookingService/internal/api/middleware"
	"github.com/sparkleclean/SCS-BookingService/internal/config"
	bookingRepo "github.com/sparkleclean/SCS-BookingService/internal/infra/storage/booking"
	ledgerRepo "github.com/sparkleclean/SCS-BookingService/internal/infra/storage/ledger"
	overrideRepo "github.com/sparkleclean/SCS-BookingService/internal/infra/storage/override"
	staffRepo "github.com/sparkleclean/SCS-BookingService/internal/infra/storage/staff"
	addressLookupClient "github.com/sparkleclean/SCS-BookingService/internal/integrations/addresslookup"
	automationClient "github.com/sparkleclean/SCS-BookingService/internal/integrations/automation"
	bookingsService "github.com/sparkleclean/SCS-BookingService/internal/service/bookings"
	createBookingUC "github.com/sparkleclean/SCS-BookingService/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/sparkleclean/SCS-BookingService/internal/usecase/get_available_slots"
	getBlockedDatesUC "github.com/sparkleclean/SCS-BookingService/internal/usecase/get_blocked_dates"
	getQuoteUC "github.com/sparkleclean/SCS-BookingService/internal/usecase/get_quote"
	"github.com/sparkleclean/SCS-BookingService/pkg/dbmetrics"
	"github.com/sparkleclean/SCS-BookingService/pkg/logger"
	"github.com/sparkleclean/SCS-BookingService/pkg/metrics"
	"github.com/sparkleclean/SCS-BookingService/pkg/simpletxmanager"
	"github.com/sparkleclean/SCS-BookingService/pkg/txmanager"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
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

	log.Info("Starting SCS-BookingService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
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

	// Инициализируем интеграционных клиентов
	automation := automationClient.NewClient(
		cfg.Automation.WebhookURL,
		time.Duration(cfg.Automation.Timeout)*time.Second,
		log,
	)
	addressLookup := addressLookupClient.NewClient(
		cfg.AddressLookup.URL,
		cfg.AddressLookup.APIKey,
		time.Duration(cfg.AddressLookup.Timeout)*time.Second,
		cfg.AddressLookup.CoverageOutwardCodes,
		log,
	)
	log.Info("Integration clients initialized (Automation=%s timeout=%ds, AddressLookup=%s timeout=%ds)",
		cfg.Automation.WebhookURL, cfg.Automation.Timeout, cfg.AddressLookup.URL, cfg.AddressLookup.Timeout)

	// Инициализируем репозитории (с метриками или без)
	var (
		staffRepository    *staffRepo.Repository
		bookingRepository  *bookingRepo.Repository
		overrideRepository *overrideRepo.Repository
		ledgerRepository   *ledgerRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		Do(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		staffRepository = staffRepo.NewRepository(wrappedDB)
		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		overrideRepository = overrideRepo.NewRepository(wrappedDB)
		ledgerRepository = ledgerRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		staffRepository = staffRepo.NewRepository(db)
		bookingRepository = bookingRepo.NewRepository(db)
		overrideRepository = overrideRepo.NewRepository(db)
		ledgerRepository = ledgerRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(bookingRepository, log)

	// Инициализируем use cases
	getBlockedDatesUseCase := getBlockedDatesUC.NewUseCase(staffRepository, log)

	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		staffRepository,
		bookingRepository,
		overrideRepository,
		log,
	)

	getQuoteUseCase := getQuoteUC.NewUseCase(cfg.Pricing.OfficeLegacy, log)

	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		ledgerRepository,
		automation,
		txMgr,
		cfg.Pricing.OfficeLegacy,
		log,
	)

	// Инициализируем handlers
	getBlockedDates := getBlockedDatesHandler.NewHandler(getBlockedDatesUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	createQuote := createQuoteHandler.NewHandler(getQuoteUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	lookupAddress := lookupAddressHandler.NewHandler(addressLookup, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	getDayBookings := getDayBookingsHandler.NewHandler(bookingSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// CORS для сайтов, встраивающих формы бронирования
	if len(cfg.Server.AllowedOrigins) > 0 {
		r.Use(middleware.CORS(cfg.Server.AllowedOrigins))
		log.Info("CORS enabled for origins: %v", cfg.Server.AllowedOrigins)
	}

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")

		// Metrics endpoint (публичный, без аутентификации)
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (формы бронирования, без аутентификации)
	// ============================================================

	// Заблокированные даты для календаря
	api.HandleFunc("/availability/blocked-dates", getBlockedDates.Handle).Methods(http.MethodGet)

	// Доступные часовые слоты на дату
	api.HandleFunc("/availability/slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// Расчет котировки
	api.HandleFunc("/quotes", createQuote.Handle).Methods(http.MethodPost)

	// Подбор адреса по индексу
	api.HandleFunc("/addresses", lookupAddress.Handle).Methods(http.MethodGet)

	// Создание бронирования
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (админ-панель, требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// Список бронирований на дату
	protected.HandleFunc("/bookings", getDayBookings.Handle).Methods(http.MethodGet)

	// Бронирование по ID или номеру заказа
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

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
