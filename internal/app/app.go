package app

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pressly/goose"
	promclient "github.com/prometheus/client_golang/prometheus"
	redisClient "github.com/redis/go-redis/v9"
	"github.com/sm8ta/motorcare_service/internal/adapter/handler/http"
	"github.com/sm8ta/motorcare_service/internal/adapter/logger"
	"github.com/sm8ta/motorcare_service/internal/adapter/memory"
	"github.com/sm8ta/motorcare_service/internal/adapter/postgres"
	"github.com/sm8ta/motorcare_service/internal/adapter/prometheus"
	"github.com/sm8ta/motorcare_service/internal/adapter/redis"
	"github.com/sm8ta/motorcare_service/internal/config"
	"github.com/sm8ta/motorcare_service/internal/core/ports"
	"github.com/sm8ta/motorcare_service/internal/core/services"

	_ "github.com/lib/pq"
)

type App struct {
	Config      *config.Container
	Logger      ports.LoggerPort
	DB          *sql.DB
	RedisClient *redisClient.Client
	Cache       ports.CachePort
	HTTPRouter  *http.Router
}

type repositories struct {
	users          ports.UserRepository
	motorcycles    ports.MotorcycleRepository
	serviceRecords ports.ServiceRecordRepository
	complaints     ports.ComplaintRepository
	reminders      ports.ReminderRepository
}

func New(ctx context.Context, cfg *config.Container) (*App, error) {
	// Set logger
	loggerAdapter := logger.NewLoggerAdapter(cfg.App.Env)
	loggerAdapter.Info("Starting the application", map[string]interface{}{
		"app":     cfg.App.Name,
		"env":     cfg.App.Env,
		"storage": cfg.Storage.Driver,
	})

	return build(ctx, cfg, loggerAdapter, promclient.DefaultRegisterer)
}

func build(ctx context.Context, cfg *config.Container, loggerAdapter ports.LoggerPort, reg promclient.Registerer) (*App, error) {
	a := &App{
		Config: cfg,
		Logger: loggerAdapter,
	}

	// Set cache
	if cfg.Redis.Address != "" {
		redisConn := redisClient.NewClient(&redisClient.Options{
			Addr:     cfg.Redis.Address,
			Password: cfg.Redis.Password,
			DB:       0,
		})
		if _, err := redisConn.Ping(ctx).Result(); err != nil {
			redisConn.Close()
			return nil, fmt.Errorf("failed to connect to Redis: %w", err)
		}
		a.RedisClient = redisConn
		a.Cache = redis.NewRedisAdapter(redisConn)
	} else {
		loggerAdapter.Warn("REDIS_ADDRESS not set, using in-process cache", nil)
		a.Cache = memory.NewCache()
	}

	// Set storage
	var repos repositories
	switch cfg.Storage.Driver {
	case config.StorageDriverMemory:
		store := memory.NewStore()
		repos = repositories{store, store, store, store, store}
	default:
		db, err := openPostgres(ctx, cfg.DB)
		if err != nil {
			a.close()
			return nil, err
		}
		a.DB = db
		repos = repositories{
			users:          postgres.NewUserRepository(db),
			motorcycles:    postgres.NewMotorcycleRepository(db),
			serviceRecords: postgres.NewServiceRecordRepository(db),
			complaints:     postgres.NewComplaintRepository(db),
			reminders:      postgres.NewReminderRepository(db),
		}
	}

	// Validate
	validate := services.NewValidator()

	// Observability
	metrics := prometheus.NewPrometheusAdapter(reg)

	// Services
	tokenService := http.NewJWTTokenService(cfg.Token.Secret, cfg.Token.Duration, loggerAdapter)
	userService := services.NewUserService(repos.users, tokenService, loggerAdapter, validate)
	motorcycleService := services.NewMotorcycleService(repos.motorcycles, repos.serviceRecords, repos.reminders, loggerAdapter, validate, a.Cache)
	reminderService := services.NewReminderService(repos.reminders, motorcycleService, loggerAdapter, validate)
	serviceRecordService := services.NewServiceRecordService(repos.serviceRecords, motorcycleService, reminderService, loggerAdapter, metrics, validate)
	complaintService := services.NewComplaintService(repos.complaints, motorcycleService, loggerAdapter, validate)

	// Init HTTP router
	router, err := http.NewRouter(
		cfg.HTTP,
		tokenService,
		http.NewAuthHandler(userService, loggerAdapter, metrics),
		http.NewMotorcycleHandler(motorcycleService, loggerAdapter, metrics),
		http.NewServiceRecordHandler(serviceRecordService, loggerAdapter, metrics),
		http.NewComplaintHandler(complaintService, loggerAdapter, metrics),
		http.NewReminderHandler(reminderService, loggerAdapter, metrics),
	)
	if err != nil {
		a.close()
		return nil, fmt.Errorf("failed to initialize router: %w", err)
	}
	a.HTTPRouter = router

	return a, nil
}

func openPostgres(ctx context.Context, cfg *config.DB) (*sql.DB, error) {
	db, err := sql.Open("postgres", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	// Migrate DB
	if err := goose.SetDialect("postgres"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to set migration dialect: %w", err)
	}
	if err := goose.Up(db, cfg.MigrationsDir); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	return db, nil
}

// Runs all services
func (a *App) Run() error {
	listenAddr := fmt.Sprintf("%s:%s", a.Config.HTTP.URL, a.Config.HTTP.Port)
	a.Logger.Info("Starting HTTP server", map[string]interface{}{
		"addr": listenAddr,
	})

	if err := a.HTTPRouter.Serve(listenAddr); err != nil {
		a.Logger.Error("HTTP server error", map[string]interface{}{
			"error": err.Error(),
		})
		return err
	}
	return nil
}

// Stops all services
func (a *App) Stop(ctx context.Context) error {
	a.Logger.Info("Shutting down gracefully...", nil)

	// Drain HTTP before closing the stores handlers still use.
	if err := a.HTTPRouter.Shutdown(ctx); err != nil {
		a.Logger.Error("HTTP server shutdown error", map[string]interface{}{
			"error": err.Error(),
		})
	}

	done := make(chan struct{})
	go func() {
		a.close()
		close(done)
	}()

	select {
	case <-done:
	case <-ctx.Done():
		return ctx.Err()
	}

	a.Logger.Info("Application stopped successfully", nil)
	return nil
}

func (a *App) close() {
	// Close database
	if a.DB != nil {
		if err := a.DB.Close(); err != nil {
			a.Logger.Error("Database close error", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}

	// Close Redis
	if a.RedisClient != nil {
		if err := a.RedisClient.Close(); err != nil {
			a.Logger.Error("Redis close error", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}
}
