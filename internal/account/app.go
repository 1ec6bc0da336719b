// Package account initializes and runs the account service: configuration,
// Postgres (with embedded migrations), Redis staging, the Kafka mailer
// channel, and the gRPC endpoint.
package account

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/ddmitrenko/tools/internal/account/config"
	"github.com/ddmitrenko/tools/internal/account/migrations"
	"github.com/ddmitrenko/tools/internal/account/notifier"
	"github.com/ddmitrenko/tools/internal/account/password"
	"github.com/ddmitrenko/tools/internal/account/repositories/accounts"
	"github.com/ddmitrenko/tools/internal/account/service"
	"github.com/ddmitrenko/tools/internal/account/staging"
	"github.com/ddmitrenko/tools/internal/account/token"
	"github.com/ddmitrenko/tools/internal/logging"
	"github.com/pressly/goose/v3"
	"github.com/redis/go-redis/v9"

	gs "github.com/ddmitrenko/tools/internal/account/grpc"
	_ "github.com/jackc/pgx/v5/stdlib"
)

type App struct {
	config  *config.Config
	logger  logging.Logger
	db      *sql.DB
	redis   *redis.Client
	mailPub *notifier.KafkaPublisher
	service *service.Service
}

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stdout, nil))).
		With("app", cfg.AppName, "service", cfg.ServiceName)

	db, err := sql.Open("pgx", cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	if err := runMigrations(ctx, db); err != nil {
		return nil, fmt.Errorf("db migration error: %w", err)
	}

	redisOpts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		return nil, fmt.Errorf("redis init error: %w", err)
	}
	redisClient := redis.NewClient(redisOpts)

	mailPub := notifier.NewKafkaPublisher(cfg.KafkaAddrs, cfg.MailerTopic)

	svc := service.NewService(
		accounts.NewPostgresRepository(db),
		staging.NewRedisStore(redisClient),
		mailPub,
		password.New(cfg.HashSecret),
		token.NewService(cfg.JWTSecret),
		logger,
	)

	return &App{
		config:  cfg,
		logger:  logger,
		db:      db,
		redis:   redisClient,
		mailPub: mailPub,
		service: svc,
	}, nil
}

func runMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("pgx"); err != nil {
		return err
	}
	return goose.UpContext(ctx, db, ".")
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startGRPCServer(ctx context.Context, cancelFunc context.CancelFunc) {
	s := gs.NewGRPCServer(app.config.ServiceAddr, app.logger, app.service)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) Run(ctx context.Context) {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...",
		"mode", app.config.AppMode, "address", app.config.ServiceAddr)

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startGRPCServer(ctx, cancelFunc)
	}()

	wg.Wait()

	app.close(ctx)
}

func (app *App) close(ctx context.Context) {
	if err := app.mailPub.Close(); err != nil {
		app.logger.Error(ctx, "closing kafka writer", "error", err)
	}
	if err := app.redis.Close(); err != nil {
		app.logger.Error(ctx, "closing redis client", "error", err)
	}
	if err := app.db.Close(); err != nil {
		app.logger.Error(ctx, "closing db", "error", err)
	}
}
