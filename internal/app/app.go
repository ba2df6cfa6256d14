package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jonboulle/clockwork"
	"github.com/rs/cors"

	"github.com/aidar/team-dao/internal/config"
	"github.com/aidar/team-dao/internal/events"
	"github.com/aidar/team-dao/internal/handler"
	"github.com/aidar/team-dao/internal/middleware"
	"github.com/aidar/team-dao/internal/repository"
	"github.com/aidar/team-dao/internal/repository/memory"
	"github.com/aidar/team-dao/internal/repository/postgres"
	"github.com/aidar/team-dao/internal/service"
)

// App представляет приложение со всеми зависимостями
type App struct {
	config    *config.Config
	db        *pgxpool.Pool
	server    *http.Server
	logger    *slog.Logger
	clock     clockwork.Clock
	publisher events.Publisher

	teams    repository.TeamRepository
	accounts repository.AccountRepository
	stats    repository.StatsRepository
}

// New создает новый экземпляр приложения
func New(cfg *config.Config) (*App, error) {
	// Инициализируем структурированный логгер (JSON формат)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	app := &App{
		config: cfg,
		logger: logger,
		clock:  clockwork.NewRealClock(),
	}

	return app, nil
}

// Initialize инициализирует все компоненты приложения
func (a *App) Initialize(ctx context.Context) error {
	// Подключаем хранилище команд и счетов
	if err := a.setupStorage(ctx); err != nil {
		return err
	}

	// Подключаем публикацию событий
	if err := a.setupPublisher(); err != nil {
		return err
	}

	// Настраиваем HTTP сервер и роутинг
	a.setupServer()

	a.logger.Info("Application initialized successfully", "storage", a.config.Storage.Driver)
	return nil
}

// setupStorage выбирает хранилище по STORAGE_DRIVER
func (a *App) setupStorage(ctx context.Context) error {
	if a.config.Storage.Driver == config.StorageDriverMemory {
		store := memory.NewStore()
		a.teams, a.accounts, a.stats = store, store, store
		a.logger.Warn("Using in-memory storage, state is lost on restart")

		// Начальные балансы кошельков из STORAGE_SEED_BALANCES
		for account, amount := range a.config.Storage.SeedBalances {
			if err := store.Credit(ctx, account, amount); err != nil {
				return fmt.Errorf("failed to seed account %s: %w", account, err)
			}
		}
		return nil
	}

	if len(a.config.Storage.SeedBalances) > 0 {
		a.logger.Warn("STORAGE_SEED_BALANCES is ignored for PostgreSQL storage, use the credit command")
	}

	if err := a.connectDB(ctx); err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	a.teams = postgres.NewTeamRepository(a.db)
	a.accounts = postgres.NewAccountRepository(a.db)
	a.stats = postgres.NewStatsRepository(a.db)
	return nil
}

// connectDB устанавливает подключение к PostgreSQL с connection pool
func (a *App) connectDB(ctx context.Context) error {
	pool, err := Connect(ctx, a.config.Database)
	if err != nil {
		return err
	}

	a.db = pool
	a.logger.Info("Connected to database")
	return nil
}

// Connect создает connection pool к PostgreSQL и проверяет подключение
func Connect(ctx context.Context, cfg config.DatabaseConfig) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config: %w", err)
	}

	// Настраиваем размеры connection pool
	poolConfig.MaxConns = cfg.MaxConns
	poolConfig.MinConns = cfg.MinConns

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	// Проверяем подключение к БД
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return pool, nil
}

// setupPublisher подключается к NATS или пишет события в лог
func (a *App) setupPublisher() error {
	if !a.config.NATS.Enabled() {
		a.publisher = events.NewLogPublisher(a.logger)
		return nil
	}

	publisher, err := events.NewNATSPublisher(events.NATSConfig{
		URL:           a.config.NATS.URL,
		SubjectPrefix: a.config.NATS.SubjectPrefix,
		MaxReconnects: a.config.NATS.MaxReconnects,
		ReconnectWait: a.config.NATS.ReconnectWait,
	}, a.logger)
	if err != nil {
		return fmt.Errorf("failed to connect to NATS: %w", err)
	}

	a.publisher = publisher
	a.logger.Info("Connected to NATS", "subject_prefix", a.config.NATS.SubjectPrefix)
	return nil
}

// setupServer инициализирует HTTP роутер и обработчики
func (a *App) setupServer() {
	deps := service.Deps{
		Teams:     a.teams,
		Clock:     a.clock,
		Publisher: a.publisher,
		Logger:    a.logger,
	}

	// Инициализируем слой сервисов (бизнес-логика)
	teamService := service.NewTeamService(deps, a.config.Team.MaxSize)
	tournamentService := service.NewTournamentService(deps)
	distributionService := service.NewDistributionService(deps)
	treasuryService := service.NewTreasuryService(deps, a.accounts)
	statsService := service.NewStatsService(a.stats)
	authService := service.NewAuthService(
		a.config.JWT.Secret,
		a.config.JWT.GetExpiration(),
		a.clock,
	)

	// Инициализируем HTTP обработчики
	authHandler := handler.NewAuthHandler(authService)
	teamHandler := handler.NewTeamHandler(teamService)
	tournamentHandler := handler.NewTournamentHandler(tournamentService)
	distributionHandler := handler.NewDistributionHandler(distributionService)
	treasuryHandler := handler.NewTreasuryHandler(treasuryService)
	statsHandler := handler.NewStatsHandler(statsService)

	// Инициализируем middleware для JWT авторизации
	authMiddleware := middleware.AuthMiddleware(authService)

	// Настраиваем роутер
	r := chi.NewRouter()

	// Глобальные middleware (применяются ко всем запросам)
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))
	r.Use(cors.New(cors.Options{
		AllowedOrigins: a.config.CORS.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	}).Handler)

	// Публичные эндпоинты (без авторизации)
	r.Route("/auth", func(r chi.Router) {
		r.Post("/login", authHandler.Login)
	})

	// Health check для мониторинга
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte(`{"status":"ok"}`)); err != nil {
			a.logger.Error("Failed to write health check response", "error", err)
		}
	})

	// Защищенные эндпоинты: вызывающий определяется по JWT токену
	r.Group(func(r chi.Router) {
		r.Use(authMiddleware)

		// Эндпоинты команд
		r.Post("/team/create", teamHandler.CreateTeam)
		r.Get("/team/get", teamHandler.GetTeam)
		r.Post("/team/addMember", teamHandler.AddMember)
		r.Post("/team/removeMember", teamHandler.RemoveMember)
		r.Post("/team/transferCaptain", teamHandler.TransferCaptain)
		r.Post("/team/leave", teamHandler.LeaveTeam)

		// Эндпоинты турнира
		r.Post("/tournament/init", tournamentHandler.InitTournament)
		r.Post("/tournament/vote", tournamentHandler.Vote)
		r.Post("/tournament/leave", tournamentHandler.Leave)

		// Эндпоинты распределения приза
		r.Post("/distribution/propose", distributionHandler.Propose)
		r.Post("/distribution/vote", distributionHandler.Vote)
		r.Post("/distribution/canJoin", distributionHandler.CanJoin)
		r.Get("/distribution/result", distributionHandler.Result)

		// Эндпоинты казны
		r.Post("/treasury/fund", treasuryHandler.Fund)
		r.Post("/treasury/claim", treasuryHandler.Claim)
		r.Get("/treasury/balance", treasuryHandler.Balance)
		r.Get("/treasury/claims", treasuryHandler.Claims)

		// Эндпоинты статистики
		r.Get("/stats", statsHandler.GetStats)
	})

	// Создаем HTTP сервер с настройками таймаутов
	addr := fmt.Sprintf("%s:%s", a.config.Server.Host, a.config.Server.Port)
	a.server = &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	a.logger.Info("HTTP server configured", "addr", addr)
}

// Handler возвращает корневой HTTP обработчик
func (a *App) Handler() http.Handler {
	return a.server.Handler
}

// Accounts возвращает хранилище счетов
func (a *App) Accounts() repository.AccountRepository {
	return a.accounts
}

// Run запускает HTTP сервер
func (a *App) Run() error {
	a.logger.Info("Starting HTTP server", "addr", a.server.Addr)
	return a.server.ListenAndServe()
}

// Shutdown корректно останавливает приложение
func (a *App) Shutdown(ctx context.Context) error {
	a.logger.Info("Shutting down application")

	// Останавливаем HTTP сервер (ждем завершения текущих запросов)
	if a.server != nil {
		if err := a.server.Shutdown(ctx); err != nil {
			return fmt.Errorf("failed to shutdown server: %w", err)
		}
	}

	// Отправляем оставшиеся события
	if a.publisher != nil {
		if err := a.publisher.Close(); err != nil {
			a.logger.Error("Failed to close event publisher", "error", err)
		}
	}

	// Закрываем подключения к базе данных
	if a.db != nil {
		a.db.Close()
	}

	a.logger.Info("Application stopped gracefully")
	return nil
}
