package app

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/4nxiouz/thaitep-exam-booking/internal/config"
	"github.com/4nxiouz/thaitep-exam-booking/internal/handler"
	"github.com/4nxiouz/thaitep-exam-booking/internal/idempotency"
	"github.com/4nxiouz/thaitep-exam-booking/internal/middleware"
	"github.com/4nxiouz/thaitep-exam-booking/internal/notification"
	"github.com/4nxiouz/thaitep-exam-booking/internal/repository"
	"github.com/4nxiouz/thaitep-exam-booking/internal/router"
	"github.com/4nxiouz/thaitep-exam-booking/internal/scheduler"
	"github.com/4nxiouz/thaitep-exam-booking/internal/service"
	"github.com/4nxiouz/thaitep-exam-booking/internal/service/ports"
	"github.com/4nxiouz/thaitep-exam-booking/internal/storage"
	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"
	"github.com/redis/go-redis/v9"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/logger"
)

const migrationsDir = "migrations"

type App struct {
	cfg        *config.Config
	log        logger.Logger
	db         *dbpg.DB
	redis      *redis.Client
	httpServer *http.Server
	scheduler  *scheduler.Scheduler
}

func New(cfg *config.Config) (*App, error) {
	app := &App{cfg: cfg}

	log, err := logger.InitLogger(
		cfg.Logger.LogEngine(),
		"ExamBooker",
		cfg.Gin.Mode,
		logger.WithLevel(cfg.Logger.LogLevel()),
	)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	app.log = log

	if err = app.runMigrations(); err != nil {
		return nil, fmt.Errorf("migrations: %w", err)
	}

	if err = app.initDB(); err != nil {
		return nil, fmt.Errorf("init db: %w", err)
	}

	if err = app.initServices(); err != nil {
		return nil, fmt.Errorf("init services: %w", err)
	}

	return app, nil
}

func (a *App) initDB() error {
	db, err := OpenDB(a.cfg.Postgres)
	if err != nil {
		return err
	}

	a.db = db
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connected",
		logger.String("host", a.cfg.Postgres.Host),
		logger.Int("port", a.cfg.Postgres.Port),
		logger.String("database", a.cfg.Postgres.Database),
	)

	return nil
}

// OpenDB connects the dbpg pool and checks it is reachable.
func OpenDB(cfg config.PostgresConfig) (*dbpg.DB, error) {
	db, err := dbpg.New(
		cfg.DSN(),
		nil,
		&dbpg.Options{
			MaxOpenConns: cfg.MaxOpenConns,
			MaxIdleConns: cfg.MaxIdleConns,
		},
	)
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}
	db.Master.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	if err := db.Master.PingContext(context.Background()); err != nil {
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	return db, nil
}

func (a *App) initServices() error {
	ctx := context.Background()

	roundRepo := repository.NewRoundRepo(a.db)
	bookingRepo := repository.NewBookingRepo(a.db)
	orphanRepo := repository.NewOrphanRepo(a.db)

	evidence, err := storage.NewS3Storage(ctx, a.cfg.Storage)
	if err != nil {
		return fmt.Errorf("init storage: %w", err)
	}

	notifier, err := a.initNotifier(ctx)
	if err != nil {
		return fmt.Errorf("init notifier: %w", err)
	}

	catalogService := service.NewCatalogService(roundRepo, a.log)
	admissionService := service.NewAdmissionService(
		bookingRepo, roundRepo, evidence, orphanRepo, notifier, a.log,
		a.cfg.Storage.MaxUploadSize,
	)
	reviewService := service.NewReviewService(bookingRepo, notifier, a.log)
	orphanService := service.NewOrphanService(orphanRepo, evidence, a.log)

	a.scheduler = scheduler.New(
		orphanService,
		a.cfg.Scheduler.Interval,
		a.cfg.Scheduler.BatchSize,
		a.log,
	)

	var idem handler.IdempotencyStore
	if a.cfg.Redis.Addr != "" {
		a.redis = idempotency.NewClient(a.cfg.Redis)
		if err = a.redis.Ping(ctx).Err(); err != nil {
			a.log.Warn("redis ping failed, idempotency keys may be ignored",
				logger.String("addr", a.cfg.Redis.Addr),
				logger.String("error", err.Error()),
			)
		}
		idem = idempotency.NewStore(a.redis, a.cfg.Redis.IdempotencyTTL)
	} else {
		a.log.Warn("redis address is empty, idempotency keys disabled")
	}

	h := handler.NewHandler(catalogService, admissionService, reviewService, idem, a.log)
	r := router.InitRouter(
		a.cfg.Gin.Mode,
		h,
		middleware.AdminAuth(a.cfg.Admin.Token),
		middleware.RequestID(),
		middleware.RequestLogger(a.log),
		middleware.Metrics(),
		middleware.Recovery(a.log),
	)
	r.MaxMultipartMemory = a.cfg.Storage.MaxUploadSize

	a.httpServer = &http.Server{
		Addr:         a.cfg.Server.Addr,
		Handler:      r,
		ReadTimeout:  a.cfg.Server.ReadTimeout,
		WriteTimeout: a.cfg.Server.WriteTimeout,
		IdleTimeout:  a.cfg.Server.IdleTimeout,
	}

	return nil
}

// initNotifier собирает каналы: оператору в telegram, заявителю по email и sms.
func (a *App) initNotifier(ctx context.Context) (*notification.Fanout, error) {
	channels := make([]ports.BookingNotifier, 0, 3)

	tg, err := notification.NewTelegramNotifier(a.cfg.Telegram.BotToken, a.cfg.Telegram.ChatID, a.log)
	if err != nil {
		return nil, err
	}
	channels = append(channels, tg)

	if a.cfg.Email.Enabled {
		email, err := notification.NewEmailNotifier(ctx, a.cfg.Email.Region, a.cfg.Email.Sender, a.log)
		if err != nil {
			return nil, err
		}
		channels = append(channels, email)
	}

	if a.cfg.SMS.Enabled {
		sms, err := notification.NewSMSNotifier(ctx, a.cfg.SMS.Region, a.log)
		if err != nil {
			return nil, err
		}
		channels = append(channels, sms)
	}

	return notification.NewFanout(channels...), nil
}

func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go a.scheduler.Start(ctx)

	errCh := make(chan error, 1)
	go func() {
		a.log.LogAttrs(ctx, logger.InfoLevel, "HTTP server starting",
			logger.String("addr", a.httpServer.Addr),
		)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutdown signal received")
	case err := <-errCh:
		return err
	}

	return a.shutdown()
}

func (a *App) shutdown() error {
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutting down...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		a.cfg.Server.WriteTimeout,
	)
	defer cancel()

	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "HTTP server stopped")

	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			a.log.Warn("failed to close redis", logger.String("error", err.Error()))
		}
	}

	if err := a.db.Master.Close(); err != nil {
		return fmt.Errorf("close db: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connection closed")

	a.log.LogAttrs(context.Background(), logger.InfoLevel, "app stopped")

	return nil
}

func (a *App) runMigrations() error {
	db, err := sql.Open("postgres", a.cfg.Postgres.DSN())
	if err != nil {
		return fmt.Errorf("open db for migrations: %w", err)
	}
	defer db.Close()

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("goose dialect: %w", err)
	}

	if err := goose.Up(db, migrationsDir); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}

	a.log.Info("migrations applied successfully")
	return nil
}
