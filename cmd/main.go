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

	availableRoomsHandler "github.com/univent-hse/Univent-VenueService/internal/api/handlers/available_rooms"
	createApplicationHandler "github.com/univent-hse/Univent-VenueService/internal/api/handlers/create_application"
	getApplicationHandler "github.com/univent-hse/Univent-VenueService/internal/api/handlers/get_application"
	getMeHandler "github.com/univent-hse/Univent-VenueService/internal/api/handlers/get_me"
	listApplicationsHandler "github.com/univent-hse/Univent-VenueService/internal/api/handlers/list_applications"
	loginHandler "github.com/univent-hse/Univent-VenueService/internal/api/handlers/login"
	moderateApplicationHandler "github.com/univent-hse/Univent-VenueService/internal/api/handlers/moderate_application"
	publicEventsHandler "github.com/univent-hse/Univent-VenueService/internal/api/handlers/public_events"
	registerHandler "github.com/univent-hse/Univent-VenueService/internal/api/handlers/register"
	roomAvailabilityHandler "github.com/univent-hse/Univent-VenueService/internal/api/handlers/room_availability"
	"github.com/univent-hse/Univent-VenueService/internal/api/middleware"
	"github.com/univent-hse/Univent-VenueService/internal/config"
	"github.com/univent-hse/Univent-VenueService/internal/infra/i18n"
	"github.com/univent-hse/Univent-VenueService/internal/infra/storage"
	applicationRepo "github.com/univent-hse/Univent-VenueService/internal/infra/storage/application"
	roomRepo "github.com/univent-hse/Univent-VenueService/internal/infra/storage/room"
	userRepo "github.com/univent-hse/Univent-VenueService/internal/infra/storage/user"
	telegramClient "github.com/univent-hse/Univent-VenueService/internal/integrations/telegram"
	applicationsService "github.com/univent-hse/Univent-VenueService/internal/service/applications"
	authService "github.com/univent-hse/Univent-VenueService/internal/service/auth"
	notifierService "github.com/univent-hse/Univent-VenueService/internal/service/notifier"
	getAvailableRoomsUC "github.com/univent-hse/Univent-VenueService/internal/usecase/get_available_rooms"
	getRoomAvailabilityUC "github.com/univent-hse/Univent-VenueService/internal/usecase/get_room_availability"
	moderateApplicationUC "github.com/univent-hse/Univent-VenueService/internal/usecase/moderate_application"
	submitApplicationUC "github.com/univent-hse/Univent-VenueService/internal/usecase/submit_application"
	"github.com/univent-hse/Univent-VenueService/pkg/authtoken"
	"github.com/univent-hse/Univent-VenueService/pkg/logger"
	"github.com/univent-hse/Univent-VenueService/pkg/metrics"
	"github.com/univent-hse/Univent-VenueService/pkg/txmanager"
)

// nopSender заглушка отправки уведомлений, когда Telegram выключен в конфиге
type nopSender struct {
	log *logger.Logger
}

func (s *nopSender) SendMessage(_ context.Context, chatID int64, _ string) error {
	s.log.Info("Telegram disabled, skipping notification to chat_id=%d", chatID)
	return nil
}

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

	log.Info("Starting Univent-VenueService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Применяем миграции
	if err := storage.RunMigrations(cfg.Database.URL(), cfg.Migrations.Path); err != nil {
		log.Fatal("Failed to run migrations: %v", err)
	}
	log.Info("Migrations applied from %s", cfg.Migrations.Path)

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

	// Инициализируем репозитории и менеджер транзакций
	applicationRepository := applicationRepo.NewRepository(db)
	userRepository := userRepo.NewRepository(db)
	roomRepository := roomRepo.NewRepository(db)
	txMgr := txmanager.NewTransactionManager(db)

	// Инициализируем токены и локализацию
	tokens := authtoken.NewManager(
		cfg.Auth.JWTSecret,
		time.Duration(cfg.Auth.AccessTTLMinutes)*time.Minute,
		time.Duration(cfg.Auth.RefreshTTLHours)*time.Hour,
	)
	translator := i18n.NewTranslator(cfg.Auth.DefaultUserLocale, log)

	// Инициализируем отправку уведомлений
	var sender notifierService.MessageSender
	if cfg.Telegram.Enabled {
		sender = telegramClient.NewClient(
			cfg.Telegram.APIURL,
			cfg.Telegram.Token,
			time.Duration(cfg.Telegram.Timeout)*time.Second,
			log,
		)
		log.Info("Telegram client initialized (api=%s timeout=%ds)", cfg.Telegram.APIURL, cfg.Telegram.Timeout)
	} else {
		sender = &nopSender{log: log}
		log.Info("Telegram notifications disabled")
	}

	// Инициализируем сервисы
	authSvc := authService.NewService(userRepository, tokens, cfg.Auth.BcryptCost, cfg.Auth.DefaultUserLocale, log)
	applicationsSvc := applicationsService.NewService(applicationRepository, log)
	notifierSvc := notifierService.NewService(userRepository, roomRepository, sender, translator, log)

	// Инициализируем use cases
	submitApplicationUseCase := submitApplicationUC.NewUseCase(applicationRepository, roomRepository, log)
	moderateApplicationUseCase := moderateApplicationUC.NewUseCase(
		applicationRepository,
		roomRepository,
		txMgr,
		notifierSvc,
		log,
	)
	getAvailableRoomsUseCase := getAvailableRoomsUC.NewUseCase(roomRepository, applicationRepository, log)
	getRoomAvailabilityUseCase := getRoomAvailabilityUC.NewUseCase(roomRepository, applicationRepository, log)

	// Инициализируем handlers
	register := registerHandler.NewHandler(authSvc, log)
	login := loginHandler.NewHandler(authSvc, log)
	getMe := getMeHandler.NewHandler(authSvc, log)
	createApplication := createApplicationHandler.NewHandler(submitApplicationUseCase, log)
	listApplications := listApplicationsHandler.NewHandler(applicationsSvc, log)
	getApplication := getApplicationHandler.NewHandler(applicationsSvc, log)
	moderateApplication := moderateApplicationHandler.NewHandler(moderateApplicationUseCase, log)
	publicEvents := publicEventsHandler.NewHandler(applicationsSvc, log)
	availableRooms := availableRoomsHandler.NewHandler(getAvailableRoomsUseCase, log)
	roomAvailability := roomAvailabilityHandler.NewHandler(getRoomAvailabilityUseCase, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Регистрация и вход
	api.HandleFunc("/auth/register", register.Handle).Methods(http.MethodPost)
	api.HandleFunc("/auth/login", login.Handle).Methods(http.MethodPost)

	// Публичный календарь одобренных событий
	api.HandleFunc("/events", publicEvents.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют Bearer токен)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth(tokens, log))

	// Профиль текущего пользователя
	protected.HandleFunc("/auth/me", getMe.Handle).Methods(http.MethodGet)

	// --- Заявки ---
	// Подача заявки (студенты)
	protected.HandleFunc("/applications", createApplication.Handle).Methods(http.MethodPost)

	// Список заявок (студент видит свои, куратор - все)
	protected.HandleFunc("/applications", listApplications.Handle).Methods(http.MethodGet)

	// Карточка заявки
	protected.HandleFunc("/applications/{applicationId}", getApplication.Handle).Methods(http.MethodGet)

	// Решение модерации (кураторы и админы)
	protected.HandleFunc("/applications/{applicationId}/moderate", moderateApplication.Handle).Methods(http.MethodPatch)

	// --- Аудитории ---
	// Свободные аудитории башни на интервал
	protected.HandleFunc("/rooms/available", availableRooms.Handle).Methods(http.MethodGet)

	// Занятость одной аудитории на день
	protected.HandleFunc("/rooms/{roomId}/availability", roomAvailability.Handle).Methods(http.MethodGet)

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
