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
	goredis "github.com/redis/go-redis/v9"

	blockSlotHandler "github.com/termindesk/appointment-service/internal/api/handlers/block_slot"
	cancelAppointmentHandler "github.com/termindesk/appointment-service/internal/api/handlers/cancel_appointment"
	createAppointmentHandler "github.com/termindesk/appointment-service/internal/api/handlers/create_appointment"
	getAvailabilityHandler "github.com/termindesk/appointment-service/internal/api/handlers/get_availability"
	getCapacityConfigHandler "github.com/termindesk/appointment-service/internal/api/handlers/get_capacity_config"
	getDayAppointmentsHandler "github.com/termindesk/appointment-service/internal/api/handlers/get_day_appointments"
	listBlocksHandler "github.com/termindesk/appointment-service/internal/api/handlers/list_blocks"
	listOpenDatesHandler "github.com/termindesk/appointment-service/internal/api/handlers/list_open_dates"
	lookupAppointmentsHandler "github.com/termindesk/appointment-service/internal/api/handlers/lookup_appointments"
	unblockSlotHandler "github.com/termindesk/appointment-service/internal/api/handlers/unblock_slot"
	updateCapacityConfigHandler "github.com/termindesk/appointment-service/internal/api/handlers/update_capacity_config"
	"github.com/termindesk/appointment-service/internal/api/middleware"
	"github.com/termindesk/appointment-service/internal/config"
	appointmentRepo "github.com/termindesk/appointment-service/internal/infra/storage/appointment"
	blockRepo "github.com/termindesk/appointment-service/internal/infra/storage/block"
	capacityRepo "github.com/termindesk/appointment-service/internal/infra/storage/capacity"
	"github.com/termindesk/appointment-service/internal/infra/storage/store"
	fileStore "github.com/termindesk/appointment-service/internal/infra/storage/store/file"
	postgresStore "github.com/termindesk/appointment-service/internal/infra/storage/store/postgres"
	redisStore "github.com/termindesk/appointment-service/internal/infra/storage/store/redis"
	appointmentsService "github.com/termindesk/appointment-service/internal/service/appointments"
	blocksService "github.com/termindesk/appointment-service/internal/service/blocks"
	capacityService "github.com/termindesk/appointment-service/internal/service/capacity"
	scheduleService "github.com/termindesk/appointment-service/internal/service/schedule"
	createAppointmentUC "github.com/termindesk/appointment-service/internal/usecase/create_appointment"
	getAvailabilityUC "github.com/termindesk/appointment-service/internal/usecase/get_availability"
	"github.com/termindesk/appointment-service/pkg/logger"
	"github.com/termindesk/appointment-service/pkg/metrics"
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

	log.Info("Starting appointment-service...")
	log.Info("Configuration loaded from config.toml")

	// Собираем недельное расписание (конфиг поверх значений по умолчанию)
	schedule, err := cfg.WeeklySchedule()
	if err != nil {
		log.Fatal("Failed to build weekly schedule: %v", err)
	}

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	ctx := context.Background()

	// Инициализируем key-value хранилище коллекций
	var kv store.Store
	switch cfg.Storage.Driver {
	case "postgres":
		db, err := sql.Open("postgres", cfg.Storage.Postgres.DSN())
		if err != nil {
			log.Fatal("Failed to connect to database: %v", err)
		}
		defer db.Close()

		// Настраиваем connection pool
		db.SetMaxOpenConns(cfg.Storage.Postgres.MaxOpenConns)
		db.SetMaxIdleConns(cfg.Storage.Postgres.MaxIdleConns)
		db.SetConnMaxLifetime(time.Duration(cfg.Storage.Postgres.ConnMaxLifetime) * time.Second)

		if err := db.Ping(); err != nil {
			log.Fatal("Failed to ping database: %v", err)
		}

		kv, err = postgresStore.New(ctx, db)
		if err != nil {
			log.Fatal("Failed to initialize postgres store: %v", err)
		}
		log.Info("Using postgres storage (host=%s, port=%d, db=%s)",
			cfg.Storage.Postgres.Host, cfg.Storage.Postgres.Port, cfg.Storage.Postgres.DBName)

	case "redis":
		client := goredis.NewClient(&goredis.Options{
			Addr:     cfg.Storage.Redis.Addr,
			Password: cfg.Storage.Redis.Password,
			DB:       cfg.Storage.Redis.DB,
		})
		defer client.Close()

		kv, err = redisStore.New(ctx, client)
		if err != nil {
			log.Fatal("Failed to initialize redis store: %v", err)
		}
		log.Info("Using redis storage (addr=%s, db=%d)", cfg.Storage.Redis.Addr, cfg.Storage.Redis.DB)

	default:
		kv, err = fileStore.New(cfg.Storage.File.Dir)
		if err != nil {
			log.Fatal("Failed to initialize file store: %v", err)
		}
		log.Info("Using file storage (dir=%s)", cfg.Storage.File.Dir)
	}

	// Инициализируем леджеры (загрузка из хранилища - fail-open)
	appointmentRepository := appointmentRepo.NewRepository(ctx, kv, log)
	blockRepository := blockRepo.NewRepository(ctx, kv, log)
	capacityRepository := capacityRepo.NewRepository(ctx, kv, log)

	// Инициализируем сервисы
	appointmentsSvc := appointmentsService.NewService(appointmentRepository, blockRepository, log)
	blocksSvc := blocksService.NewService(schedule, blockRepository, log)
	capacitySvc := capacityService.NewService(capacityRepository, log)
	scheduleSvc := scheduleService.NewService(schedule, cfg.Booking.HorizonDays, log)

	// Инициализируем use cases
	createAppointmentUseCase := createAppointmentUC.NewUseCase(
		schedule,
		cfg.Booking.SlotDurationMinutes,
		appointmentRepository,
		blockRepository,
		capacityRepository,
		log,
	)

	getAvailabilityUseCase := getAvailabilityUC.NewUseCase(
		schedule,
		cfg.Booking.SlotDurationMinutes,
		appointmentRepository,
		blockRepository,
		capacityRepository,
		log,
	)

	// Инициализируем handlers
	createAppointment := createAppointmentHandler.NewHandler(createAppointmentUseCase, log)
	getAvailability := getAvailabilityHandler.NewHandler(getAvailabilityUseCase, log)
	listOpenDates := listOpenDatesHandler.NewHandler(scheduleSvc, log)
	cancelAppointment := cancelAppointmentHandler.NewHandler(appointmentsSvc, log)
	lookupAppointments := lookupAppointmentsHandler.NewHandler(appointmentsSvc, log)
	getDayAppointments := getDayAppointmentsHandler.NewHandler(appointmentsSvc, log)
	blockSlot := blockSlotHandler.NewHandler(blocksSvc, log)
	unblockSlot := unblockSlotHandler.NewHandler(blocksSvc, log)
	listBlocks := listBlocksHandler.NewHandler(blocksSvc, log)
	getCapacityConfig := getCapacityConfigHandler.NewHandler(capacitySvc, log)
	updateCapacityConfig := updateCapacityConfigHandler.NewHandler(capacitySvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Открытые для записи даты в пределах горизонта
	api.HandleFunc("/open-dates", listOpenDates.Handle).Methods(http.MethodGet)

	// Доступность слотов на дату
	api.HandleFunc("/availability", getAvailability.Handle).Methods(http.MethodGet)

	// Создание записи на приём
	api.HandleFunc("/appointments", createAppointment.Handle).Methods(http.MethodPost)

	// Поиск записей по секретному коду
	api.HandleFunc("/appointments", lookupAppointments.Handle).Methods(http.MethodGet)

	// Отмена записи по коду подтверждения
	api.HandleFunc("/appointments/{appointmentId}", cancelAppointment.Handle).Methods(http.MethodDelete)

	// ============================================================
	// EMPLOYEE ROUTES (требуют X-Employee-Token header)
	// ============================================================

	employee := api.PathPrefix("/employee").Subrouter()
	employee.Use(middleware.EmployeeAuth(cfg.Auth.EmployeeToken))

	// Представление дня: записи и блокировки
	employee.HandleFunc("/appointments", getDayAppointments.Handle).Methods(http.MethodGet)

	// --- Блокировки слотов ---
	employee.HandleFunc("/blocks", blockSlot.Handle).Methods(http.MethodPost)
	employee.HandleFunc("/blocks", listBlocks.Handle).Methods(http.MethodGet)
	employee.HandleFunc("/blocks/{blockId}", unblockSlot.Handle).Methods(http.MethodDelete)

	// --- Вместимость слотов ---
	employee.HandleFunc("/capacity", getCapacityConfig.Handle).Methods(http.MethodGet)
	employee.HandleFunc("/capacity/{dayOfWeek}", updateCapacityConfig.Handle).Methods(http.MethodPut)

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
