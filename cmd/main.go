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

	createDateOverrideHandler "github.com/lengolf/LG-CoachingService/internal/api/handlers/create_date_override"
	createRecurringBlockHandler "github.com/lengolf/LG-CoachingService/internal/api/handlers/create_recurring_block"
	deleteDateOverrideHandler "github.com/lengolf/LG-CoachingService/internal/api/handlers/delete_date_override"
	deleteRecurringBlockHandler "github.com/lengolf/LG-CoachingService/internal/api/handlers/delete_recurring_block"
	deleteWeeklyScheduleHandler "github.com/lengolf/LG-CoachingService/internal/api/handlers/delete_weekly_schedule"
	getCoachScheduleHandler "github.com/lengolf/LG-CoachingService/internal/api/handlers/get_coach_schedule"
	getWeekAvailabilityHandler "github.com/lengolf/LG-CoachingService/internal/api/handlers/get_week_availability"
	upsertWeeklyScheduleHandler "github.com/lengolf/LG-CoachingService/internal/api/handlers/upsert_weekly_schedule"
	"github.com/lengolf/LG-CoachingService/internal/api/middleware"
	"github.com/lengolf/LG-CoachingService/internal/config"
	dateoverrideRepo "github.com/lengolf/LG-CoachingService/internal/infra/storage/dateoverride"
	recurringblockRepo "github.com/lengolf/LG-CoachingService/internal/infra/storage/recurringblock"
	weeklyscheduleRepo "github.com/lengolf/LG-CoachingService/internal/infra/storage/weeklyschedule"
	staffServiceClient "github.com/lengolf/LG-CoachingService/internal/integrations/staffservice"
	scheduleService "github.com/lengolf/LG-CoachingService/internal/service/schedule"
	createDateOverrideUC "github.com/lengolf/LG-CoachingService/internal/usecase/create_date_override"
	getWeekAvailabilityUC "github.com/lengolf/LG-CoachingService/internal/usecase/get_week_availability"
	"github.com/lengolf/LG-CoachingService/pkg/dbmetrics"
	"github.com/lengolf/LG-CoachingService/pkg/logger"
	"github.com/lengolf/LG-CoachingService/pkg/metrics"
	"github.com/lengolf/LG-CoachingService/pkg/simpletxmanager"
	"github.com/lengolf/LG-CoachingService/pkg/txmanager"
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

	log.Info("Starting LG-CoachingService...")
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

	// Инициализируем клиента StaffService
	staffClient := staffServiceClient.NewClient(
		cfg.StaffService.URL,
		time.Duration(cfg.StaffService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration client initialized (StaffService=%s timeout=%ds)",
		cfg.StaffService.URL, cfg.StaffService.Timeout)

	// Инициализируем репозитории (с метриками или без)
	var (
		scheduleRepository *weeklyscheduleRepo.Repository
		blockRepository    *recurringblockRepo.Repository
		overrideRepository *dateoverrideRepo.Repository
	)

	// Интерфейс transaction manager, используемый в usecases
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		scheduleRepository = weeklyscheduleRepo.NewRepository(wrappedDB)
		blockRepository = recurringblockRepo.NewRepository(wrappedDB)
		overrideRepository = dateoverrideRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		scheduleRepository = weeklyscheduleRepo.NewRepository(db)
		blockRepository = recurringblockRepo.NewRepository(db)
		overrideRepository = dateoverrideRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	scheduleSvc := scheduleService.NewService(
		scheduleRepository,
		blockRepository,
		overrideRepository,
		staffClient,
		log,
	)

	// Инициализируем use cases
	getWeekAvailabilityUseCase := getWeekAvailabilityUC.NewUseCase(
		scheduleRepository,
		blockRepository,
		overrideRepository,
		staffClient,
		log,
	)

	createDateOverrideUseCase := createDateOverrideUC.NewUseCase(
		overrideRepository,
		staffClient,
		txMgr,
		log,
	)

	// Инициализируем handlers
	getWeekAvailability := getWeekAvailabilityHandler.NewHandler(getWeekAvailabilityUseCase, log)
	getCoachSchedule := getCoachScheduleHandler.NewHandler(scheduleSvc, log)
	upsertWeeklySchedule := upsertWeeklyScheduleHandler.NewHandler(scheduleSvc, log)
	deleteWeeklySchedule := deleteWeeklyScheduleHandler.NewHandler(scheduleSvc, log)
	createRecurringBlock := createRecurringBlockHandler.NewHandler(scheduleSvc, log)
	deleteRecurringBlock := deleteRecurringBlockHandler.NewHandler(scheduleSvc, log)
	createDateOverride := createDateOverrideHandler.NewHandler(createDateOverrideUseCase, log)
	deleteDateOverride := deleteDateOverrideHandler.NewHandler(scheduleSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Сквозной идентификатор запроса
	r.Use(middleware.RequestID)

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
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Недельная сетка доступности тренера
	api.HandleFunc("/coaches/{coachId}/availability/week",
		getWeekAvailability.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-Staff-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Расписание тренера (для staff-панели) ---
	// Полное расписание: правила, блокировки, исключения
	protected.HandleFunc("/coaches/{coachId}/schedule", getCoachSchedule.Handle).Methods(http.MethodGet)

	// Создание или обновление правила недельного расписания
	protected.HandleFunc("/coaches/{coachId}/weekly-schedules", upsertWeeklySchedule.Handle).Methods(http.MethodPut)

	// Удаление правила недельного расписания на день
	protected.HandleFunc("/coaches/{coachId}/weekly-schedules/{dayOfWeek}", deleteWeeklySchedule.Handle).Methods(http.MethodDelete)

	// --- Еженедельные блокировки ---
	protected.HandleFunc("/coaches/{coachId}/recurring-blocks", createRecurringBlock.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/coaches/{coachId}/recurring-blocks/{blockId}", deleteRecurringBlock.Handle).Methods(http.MethodDelete)

	// --- Исключения на даты ---
	protected.HandleFunc("/coaches/{coachId}/date-overrides", createDateOverride.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/coaches/{coachId}/date-overrides/{overrideId}", deleteDateOverride.Handle).Methods(http.MethodDelete)

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
