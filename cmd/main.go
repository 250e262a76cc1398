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

	"github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	checkConnectionHandler "github.com/m04kA/SMC-CalendarService/internal/api/handlers/check_connection"
	checkRoomHandler "github.com/m04kA/SMC-CalendarService/internal/api/handlers/check_room"
	getAvailableCategoriesHandler "github.com/m04kA/SMC-CalendarService/internal/api/handlers/get_available_categories"
	getAvailableRoomsHandler "github.com/m04kA/SMC-CalendarService/internal/api/handlers/get_available_rooms"
	getCalendarInfoHandler "github.com/m04kA/SMC-CalendarService/internal/api/handlers/get_calendar_info"
	getLoadHistoryHandler "github.com/m04kA/SMC-CalendarService/internal/api/handlers/get_load_history"
	healthHandler "github.com/m04kA/SMC-CalendarService/internal/api/handlers/health"
	loadCalendarHandler "github.com/m04kA/SMC-CalendarService/internal/api/handlers/load_calendar"
	loginHandler "github.com/m04kA/SMC-CalendarService/internal/api/handlers/login"
	refreshTokenHandler "github.com/m04kA/SMC-CalendarService/internal/api/handlers/refresh_token"
	"github.com/m04kA/SMC-CalendarService/internal/api/middleware"
	"github.com/m04kA/SMC-CalendarService/internal/config"
	"github.com/m04kA/SMC-CalendarService/internal/infra/storage/loadlog"
	"github.com/m04kA/SMC-CalendarService/internal/infra/storage/snapshot"
	"github.com/m04kA/SMC-CalendarService/internal/integrations/gridcache"
	"github.com/m04kA/SMC-CalendarService/internal/integrations/sheets"
	"github.com/m04kA/SMC-CalendarService/internal/service/availability"
	loadCalendarUC "github.com/m04kA/SMC-CalendarService/internal/usecase/load_calendar"
	"github.com/m04kA/SMC-CalendarService/pkg/jwtauth"
	"github.com/m04kA/SMC-CalendarService/pkg/logger"
	"github.com/m04kA/SMC-CalendarService/pkg/metrics"
)

func main() {
	// Загружаем конфигурацию
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config.toml"
	}

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

	log.Info("Starting SMC-CalendarService...")
	log.Info("Configuration loaded from %s", configPath)

	// Интерфейсы опциональных зависимостей: nil означает "не используется"
	var (
		ucMetrics  loadCalendarUC.Metrics
		svcMetrics availability.Metrics
		ucJournal  loadCalendarUC.LoadLogRepository
		svcJournal availability.LoadLogRepository
		gridCache  loadCalendarUC.GridCache
	)

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		ucMetrics = metricsCollector
		svcMetrics = metricsCollector
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных журнала загрузок (если включена)
	if cfg.Database.Enabled {
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

		journal := loadlog.NewRepository(db)
		ucJournal = journal
		svcJournal = journal
	}

	// Инициализируем клиента Google Sheets
	googleTimeout := time.Duration(cfg.Google.Timeout) * time.Second
	sheetsClient, err := sheets.NewClient(context.Background(), cfg.Google.CredentialsPath, googleTimeout, log)
	if err != nil {
		log.Fatal("Failed to initialize Google Sheets client: %v", err)
	}
	log.Info("Google Sheets client initialized (credentials=%s, timeout=%ds)",
		cfg.Google.CredentialsPath, cfg.Google.Timeout)

	// Источник таблицы: напрямую или через кэш Redis
	var source loadCalendarUC.GridSource = sheetsClient
	if cfg.Redis.Enabled {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer redisClient.Close()

		pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := redisClient.Ping(pingCtx).Err(); err != nil {
			log.Warn("Redis is not reachable at %s, cache will fall back to Google Sheets: %v", cfg.Redis.Addr, err)
		}
		cancel()

		cache := gridcache.NewCache(redisClient, sheetsClient, time.Duration(cfg.Redis.TTL)*time.Second, log)
		source = cache
		gridCache = cache
		log.Info("Grid cache enabled (addr=%s, ttl=%ds)", cfg.Redis.Addr, cfg.Redis.TTL)
	}

	// Хранилище снимка календаря
	store := snapshot.NewStore()

	// Инициализируем сервисы и use cases
	availabilitySvc := availability.NewService(store, svcJournal, svcMetrics, log)

	loadCalendarUseCase := loadCalendarUC.NewUseCase(
		source,
		gridCache,
		store,
		ucJournal,
		ucMetrics,
		loadCalendarUC.Defaults{
			SpreadsheetID: cfg.Calendar.SpreadsheetID,
			SheetName:     cfg.Calendar.SheetName,
			DateStartCell: cfg.Calendar.DateStartCell,
			DateStart:     cfg.Calendar.DateStart,
			Year:          cfg.Calendar.Year,
		},
		log,
	)

	// Загружаем календарь при старте (если настроено), ошибка не останавливает сервис
	if cfg.Calendar.LoadOnStartup {
		loadCtx, cancel := context.WithTimeout(context.Background(), googleTimeout)
		if _, err := loadCalendarUseCase.Execute(loadCtx, &loadCalendarUC.Request{}); err != nil {
			log.Error("Initial calendar load failed: %v", err)
		}
		cancel()
	}

	// Инициализируем handlers
	health := healthHandler.NewHandler(availabilitySvc)
	checkConnection := checkConnectionHandler.NewHandler(sheetsClient, cfg.Calendar.SpreadsheetID, log)
	loadCalendar := loadCalendarHandler.NewHandler(loadCalendarUseCase, log)
	getCalendarInfo := getCalendarInfoHandler.NewHandler(availabilitySvc, log)
	getLoadHistory := getLoadHistoryHandler.NewHandler(availabilitySvc, log)
	getAvailableRooms := getAvailableRoomsHandler.NewHandler(availabilitySvc, log)
	checkRoom := checkRoomHandler.NewHandler(availabilitySvc, log)
	getAvailableCategories := getAvailableCategoriesHandler.NewHandler(availabilitySvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	r.HandleFunc("/health", health.Handle).Methods(http.MethodGet)

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	protected := api.PathPrefix("").Subrouter()

	// ============================================================
	// AUTH ROUTES (без аутентификации)
	// ============================================================

	if cfg.Auth.Enabled {
		tokens := jwtauth.NewManager(jwtauth.Config{
			Username:      cfg.Auth.Username,
			Password:      cfg.Auth.Password,
			AccessSecret:  cfg.Auth.AccessTokenSecret,
			RefreshSecret: cfg.Auth.RefreshTokenSecret,
			AccessTTL:     time.Duration(cfg.Auth.AccessTokenExpireMinutes) * time.Minute,
			RefreshTTL:    time.Duration(cfg.Auth.RefreshTokenExpireDays) * 24 * time.Hour,
		})

		api.HandleFunc("/auth/login", loginHandler.NewHandler(tokens, log).Handle).Methods(http.MethodPost)
		api.HandleFunc("/auth/refresh", refreshTokenHandler.NewHandler(tokens, log).Handle).Methods(http.MethodPost)

		protected.Use(middleware.Auth(tokens, log))
		log.Info("JWT authentication enabled (access=%dm, refresh=%dd)",
			cfg.Auth.AccessTokenExpireMinutes, cfg.Auth.RefreshTokenExpireDays)
	}

	// ============================================================
	// PROTECTED ROUTES (Authorization: Bearer, если авторизация включена)
	// ============================================================

	// --- Google Sheets ---
	protected.HandleFunc("/connection/check", checkConnection.Handle).Methods(http.MethodGet)

	// --- Календарь ---
	loadLimiter, err := middleware.NewRateLimiter(middleware.RateLimitConfig{
		PerMinute:      cfg.Server.LoadRatePerMinute,
		Burst:          cfg.Server.LoadBurst,
		IdleTTL:        time.Duration(cfg.Server.LoadLimiterIdleTTL) * time.Second,
		TrustedProxies: cfg.Server.TrustedProxies,
	}, log)
	if err != nil {
		log.Fatal("Failed to initialize rate limiter: %v", err)
	}
	protected.Handle("/calendar/load", loadLimiter.Middleware(http.HandlerFunc(loadCalendar.Handle))).Methods(http.MethodPost)
	protected.HandleFunc("/calendar/info", getCalendarInfo.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/calendar/loads", getLoadHistory.Handle).Methods(http.MethodGet)

	// --- Доступность номеров ---
	protected.HandleFunc("/rooms/available", getAvailableRooms.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/rooms/check", checkRoom.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/categories/available", getAvailableCategories.Handle).Methods(http.MethodPost)

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
