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

	bookAppointmentHandler "github.com/swiftmoving/booking-service/internal/api/handlers/book_appointment"
	calculateEstimateHandler "github.com/swiftmoving/booking-service/internal/api/handlers/calculate_estimate"
	cancelAppointmentHandler "github.com/swiftmoving/booking-service/internal/api/handlers/cancel_appointment"
	deleteAppointmentHandler "github.com/swiftmoving/booking-service/internal/api/handlers/delete_appointment"
	getAppointmentHandler "github.com/swiftmoving/booking-service/internal/api/handlers/get_appointment"
	getAvailabilitySettingsHandler "github.com/swiftmoving/booking-service/internal/api/handlers/get_availability_settings"
	getAvailableSlotsHandler "github.com/swiftmoving/booking-service/internal/api/handlers/get_available_slots"
	getPricingConfigHandler "github.com/swiftmoving/booking-service/internal/api/handlers/get_pricing_config"
	listAppointmentsHandler "github.com/swiftmoving/booking-service/internal/api/handlers/list_appointments"
	reschedAppointmentHandler "github.com/swiftmoving/booking-service/internal/api/handlers/reschedule_appointment"
	updateAvailabilitySettingsHandler "github.com/swiftmoving/booking-service/internal/api/handlers/update_availability_settings"
	updatePricingConfigHandler "github.com/swiftmoving/booking-service/internal/api/handlers/update_pricing_config"
	"github.com/swiftmoving/booking-service/internal/api/middleware"
	"github.com/swiftmoving/booking-service/internal/config"
	appointmentRepo "github.com/swiftmoving/booking-service/internal/infra/storage/appointment"
	settingsRepo "github.com/swiftmoving/booking-service/internal/infra/storage/availabilitysettings"
	pricingConfigRepo "github.com/swiftmoving/booking-service/internal/infra/storage/pricingconfig"
	"github.com/swiftmoving/booking-service/internal/integrations/notifier"
	appointmentsService "github.com/swiftmoving/booking-service/internal/service/appointments"
	"github.com/swiftmoving/booking-service/internal/service/availability"
	"github.com/swiftmoving/booking-service/internal/service/pricing"
	settingsService "github.com/swiftmoving/booking-service/internal/service/settings"
	bookAppointmentUC "github.com/swiftmoving/booking-service/internal/usecase/book_appointment"
	calculateEstimateUC "github.com/swiftmoving/booking-service/internal/usecase/calculate_estimate"
	getAvailableSlotsUC "github.com/swiftmoving/booking-service/internal/usecase/get_available_slots"
	"github.com/swiftmoving/booking-service/pkg/dbmetrics"
	"github.com/swiftmoving/booking-service/pkg/logger"
	"github.com/swiftmoving/booking-service/pkg/metrics"
	"github.com/swiftmoving/booking-service/pkg/simpletxmanager"
	"github.com/swiftmoving/booking-service/pkg/txmanager"
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

	log.Info("Starting SwiftMoving booking service...")
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

	// Клиент шлюза уведомлений (email/SMS/календарь)
	type NotifierClient interface {
		Send(ctx context.Context, event notifier.Event) error
	}
	var notifierClient NotifierClient

	if cfg.Notifier.Enabled {
		notifierClient = notifier.NewClient(
			cfg.Notifier.URL,
			time.Duration(cfg.Notifier.Timeout)*time.Second,
			log,
		)
		log.Info("Notifier client initialized (url=%s, timeout=%ds)", cfg.Notifier.URL, cfg.Notifier.Timeout)
	} else {
		notifierClient = notifier.NewNoopClient(log)
		log.Info("Notifier disabled, events will be logged only")
	}

	// Инициализируем репозитории (с метриками или без)
	var (
		appointmentRepository   *appointmentRepo.Repository
		pricingConfigRepository *pricingConfigRepo.Repository
		settingsRepository      *settingsRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases и сервисах)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		appointmentRepository = appointmentRepo.NewRepository(wrappedDB)
		pricingConfigRepository = pricingConfigRepo.NewRepository(wrappedDB)
		settingsRepository = settingsRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		appointmentRepository = appointmentRepo.NewRepository(db)
		pricingConfigRepository = pricingConfigRepo.NewRepository(db)
		settingsRepository = settingsRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Движок расчета стоимости и проверка доступности слотов
	pricingEngine := pricing.NewEngine(log)
	availabilityChecker := availability.NewChecker()

	// Инициализируем сервисы
	appointmentsSvc := appointmentsService.NewService(
		appointmentRepository,
		settingsRepository,
		availabilityChecker,
		notifierClient,
		txMgr,
		log,
	)
	settingsSvc := settingsService.NewService(
		pricingConfigRepository,
		settingsRepository,
		txMgr,
		log,
	)

	// Инициализируем use cases
	calculateEstimateUseCase := calculateEstimateUC.NewUseCase(
		pricingConfigRepository,
		pricingEngine,
		log,
	)

	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		appointmentRepository,
		settingsRepository,
		availabilityChecker,
		log,
	)

	bookAppointmentUseCase := bookAppointmentUC.NewUseCase(
		appointmentRepository,
		pricingConfigRepository,
		settingsRepository,
		pricingEngine,
		availabilityChecker,
		notifierClient,
		txMgr,
		log,
	)

	// Инициализируем handlers
	calculateEstimate := calculateEstimateHandler.NewHandler(calculateEstimateUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	bookAppointment := bookAppointmentHandler.NewHandler(bookAppointmentUseCase, log)
	getAppointment := getAppointmentHandler.NewHandler(appointmentsSvc, log)
	cancelAppointment := cancelAppointmentHandler.NewHandler(appointmentsSvc, log)
	rescheduleAppointment := reschedAppointmentHandler.NewHandler(appointmentsSvc, log)
	listAppointments := listAppointmentsHandler.NewHandler(appointmentsSvc, log)
	deleteAppointment := deleteAppointmentHandler.NewHandler(appointmentsSvc, log)
	getPricingConfig := getPricingConfigHandler.NewHandler(settingsSvc, log)
	updatePricingConfig := updatePricingConfigHandler.NewHandler(settingsSvc, log)
	getAvailabilitySettings := getAvailabilitySettingsHandler.NewHandler(settingsSvc, log)
	updateAvailabilitySettings := updateAvailabilitySettingsHandler.NewHandler(settingsSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (чат-бот, голосовой AI, сайт)
	// ============================================================

	// Расчет стоимости услуги
	api.HandleFunc("/estimate", calculateEstimate.Handle).Methods(http.MethodPost)

	// Доступные слоты на дату
	api.HandleFunc("/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// Создание записи
	api.HandleFunc("/book-appointment", bookAppointment.Handle).Methods(http.MethodPost)

	// Получение записи по booking ID
	api.HandleFunc("/appointments/{bookingId}", getAppointment.Handle).Methods(http.MethodGet)

	// Отмена записи
	api.HandleFunc("/appointments/{bookingId}/cancel", cancelAppointment.Handle).Methods(http.MethodPatch)

	// Перенос записи
	api.HandleFunc("/appointments/{bookingId}/reschedule", rescheduleAppointment.Handle).Methods(http.MethodPatch)

	// ============================================================
	// ADMIN ROUTES (требуют X-Admin-Token header)
	// ============================================================

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.AdminAuth(cfg.Admin.Token))

	// --- Записи ---
	// Список записей с фильтрами
	admin.HandleFunc("/appointments", listAppointments.Handle).Methods(http.MethodGet)

	// Жесткое удаление записи
	admin.HandleFunc("/appointments/{bookingId}", deleteAppointment.Handle).Methods(http.MethodDelete)

	// --- Тарифы и настройки ---
	// Активная тарифная сетка
	admin.HandleFunc("/pricing-config", getPricingConfig.Handle).Methods(http.MethodGet)

	// Публикация новой версии тарифной сетки
	admin.HandleFunc("/pricing-config", updatePricingConfig.Handle).Methods(http.MethodPut)

	// Настройки календаря доступности
	admin.HandleFunc("/availability-settings", getAvailabilitySettings.Handle).Methods(http.MethodGet)

	// Обновление настроек календаря
	admin.HandleFunc("/availability-settings", updateAvailabilitySettings.Handle).Methods(http.MethodPut)

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
