package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"waterdelivery/cmd"
	"waterdelivery/internal/adapters/out/notify"
	"waterdelivery/internal/adapters/out/positions/memory"
	positionsredis "waterdelivery/internal/adapters/out/positions/redis"
	"waterdelivery/internal/adapters/out/postgres"
	"waterdelivery/internal/adapters/out/postgres/notificationrepo"
	"waterdelivery/internal/core/ports"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	goredis "github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const shutdownTimeout = 15 * time.Second

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, configs, logger); err != nil {
		log.Fatalf("water delivery service stopped: %v", err)
	}
}

func getConfigs() cmd.Config {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Fatalf("Error loading .env file: %v", err)
	}

	config, err := cmd.ConfigFromEnv(os.Getenv)
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	return config
}

func run(ctx context.Context, configs cmd.Config, logger *slog.Logger) error {
	gormDB, err := gorm.Open(postgresdriver.Open(configs.DSN()), &gorm.Config{})
	if err != nil {
		return fmt.Errorf("connect to postgres: %w", err)
	}
	if err = postgres.Migrate(gormDB); err != nil {
		return err
	}

	tracker, closeTracker, err := newPositionTracker(ctx, configs, logger)
	if err != nil {
		return err
	}
	defer closeTracker()

	sinks, closeSinks, err := newNotificationSinks(configs, gormDB, logger)
	if err != nil {
		return err
	}
	defer closeSinks()

	dispatcher := notify.NewDispatcher(logger, configs.NotifyQueueSize, sinks...)
	app := cmd.NewCompositionRoot(configs, gormDB, tracker, dispatcher)

	jobManager := app.CreateJobManager(logger)
	if err = jobManager.StartAll(); err != nil {
		return err
	}
	defer jobManager.StopAll()

	e := echo.New()
	e.HideBanner = true
	app.CreateHTTPServer(logger).RegisterRoutes(e)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return dispatcher.Run(gctx)
	})

	g.Go(func() error {
		err := e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort))
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("Shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return e.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

func newPositionTracker(
	ctx context.Context,
	configs cmd.Config,
	logger *slog.Logger,
) (ports.PositionTracker, func(), error) {
	if configs.PositionBackend != cmd.PositionBackendRedis {
		return memory.NewTracker(), func() {}, nil
	}

	client := goredis.NewClient(&goredis.Options{Addr: configs.RedisAddr})
	tracker := positionsredis.NewTracker(client,
		positionsredis.WithTTL(configs.PositionTTL),
		positionsredis.WithLogger(logger),
	)
	if err := tracker.Ping(ctx); err != nil {
		_ = client.Close()
		return nil, nil, err
	}

	return tracker, func() { _ = client.Close() }, nil
}

// newNotificationSinks always stores and logs notifications; Telegram and AMQP are added
// when configured.
func newNotificationSinks(
	configs cmd.Config,
	gormDB *gorm.DB,
	logger *slog.Logger,
) ([]ports.NotificationSink, func(), error) {
	sinks := []ports.NotificationSink{
		notify.NewStoreSink(notificationrepo.NewGormNotificationRepository(gormDB)),
		notify.NewLogSink(logger),
	}
	closers := make([]func(), 0)
	closeAll := func() {
		for _, c := range closers {
			c()
		}
	}

	if configs.TelegramBotToken != "" {
		bot, err := tgbotapi.NewBotAPI(configs.TelegramBotToken)
		if err != nil {
			return nil, nil, fmt.Errorf("telegram: %w", err)
		}
		sinks = append(sinks, notify.NewTelegramSink(bot, configs.TelegramChatID))
	}

	if configs.AMQPURL != "" {
		exchange := configs.AMQPExchange
		if exchange == "" {
			exchange = notify.DefaultExchange
		}

		conn, channel, err := notify.DialAMQP(configs.AMQPURL, exchange)
		if err != nil {
			closeAll()
			return nil, nil, err
		}
		closers = append(closers, func() { _ = conn.Close() })
		sinks = append(sinks, notify.NewAMQPSink(channel, exchange))
	}

	return sinks, closeAll, nil
}
