package mailer

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"sync"
	"syscall"

	"github.com/ddmitrenko/tools/internal/logging"
	"github.com/ddmitrenko/tools/internal/mailer/config"
	"github.com/segmentio/kafka-go"
)

// App runs one consumer worker per CPU. The workers share a consumer group,
// so the broker spreads partitions across them.
type App struct {
	config  *config.Config
	logger  logging.Logger
	sender  Sender
	readers []*kafka.Reader
}

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stdout, nil))).
		With("app", cfg.AppName, "service", cfg.ServiceName)

	sender, err := NewSMTPSender(cfg)
	if err != nil {
		return nil, err
	}

	readers := make([]*kafka.Reader, runtime.NumCPU())
	for i := range readers {
		readers[i] = kafka.NewReader(kafka.ReaderConfig{
			Brokers: cfg.KafkaAddrs,
			GroupID: cfg.GroupID,
			Topic:   cfg.InputTopic,
		})
	}

	return &App{
		config:  cfg,
		logger:  logger,
		sender:  sender,
		readers: readers,
	}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) Run(ctx context.Context) {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...",
		"mode", app.config.AppMode, "topic", app.config.InputTopic,
		"workers", len(app.readers))

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	for i, reader := range app.readers {
		consumer := NewConsumer(reader, app.sender, app.logger.With("worker", i))

		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := consumer.Run(ctx); err != nil {
				app.logger.Error(ctx, err.Error())
				cancelFunc()
			}
		}()
	}

	wg.Wait()

	app.close(ctx)
}

func (app *App) close(ctx context.Context) {
	for _, reader := range app.readers {
		if err := reader.Close(); err != nil {
			app.logger.Error(ctx, "closing kafka reader", "error", err)
		}
	}
}
