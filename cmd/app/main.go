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

	"restaurant/api"
	"restaurant/cmd"
	httpin "restaurant/internal/adapters/in/http"
	"restaurant/internal/adapters/out/eventlog"
	"restaurant/internal/adapters/out/postgres"
	"restaurant/internal/adapters/out/rabbitmq"
	"restaurant/internal/core/ports"
	"restaurant/internal/pkg/telemetry"

	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const serviceName = "restaurant"

func main() {
	configs, err := cmd.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: configs.SlogLevel()}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := telemetry.Setup(ctx, serviceName, configs.OTelEndpoint)
	if err != nil {
		log.Fatalf("Error setting up tracing: %v", err)
	}

	gormDB := mustGormOpen(configs)
	if err = postgres.Migrate(gormDB); err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}

	publisher, closePublisher, ping := mustEventPublisher(configs, gormDB, logger)

	app := cmd.NewCompositionRoot(configs, gormDB, publisher, logger)

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}

	e := mustRouter(ctx, &app, ping)
	startWebServer(ctx, e, configs.HTTPPort, logger)

	jobManager.StopAll()
	closePublisher()

	flushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err = shutdownTracing(flushCtx); err != nil {
		logger.Error("tracing shutdown failed", "error", err)
	}
}

func mustGormOpen(configs cmd.Config) *gorm.DB {
	gormDB, err := gorm.Open(gormpostgres.Open(configs.DSN()), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}
	return gormDB
}

// mustEventPublisher selects the broker publisher when AMQP_URL is set and the
// log-only publisher otherwise. ping backs the health probe.
func mustEventPublisher(
	configs cmd.Config,
	gormDB *gorm.DB,
	logger *slog.Logger,
) (ports.EventPublisher, func(), func(context.Context) error) {
	pingDB := func(ctx context.Context) error {
		sqlDB, err := gormDB.DB()
		if err != nil {
			return err
		}
		return sqlDB.PingContext(ctx)
	}

	if configs.AMQPURL == "" {
		logger.Info("AMQP_URL is not set, domain events are only logged")
		return eventlog.NewPublisher(logger), func() {}, pingDB
	}

	publisher, err := rabbitmq.Dial(configs.AMQPURL, configs.AMQPExchange, logger)
	if err != nil {
		log.Fatalf("Error connecting to RabbitMQ: %v", err)
	}

	closePublisher := func() {
		if err := publisher.Close(); err != nil {
			logger.Warn("rabbitmq close failed", "error", err)
		}
	}
	ping := func(ctx context.Context) error {
		return errors.Join(pingDB(ctx), publisher.Ping())
	}
	return publisher, closePublisher, ping
}

func mustRouter(
	ctx context.Context,
	app *cmd.CompositionRoot,
	ping func(context.Context) error,
) *echo.Echo {
	doc, err := httpin.LoadOpenAPI(ctx, api.OpenAPI)
	if err != nil {
		log.Fatalf("Error loading OpenAPI document: %v", err)
	}

	return app.CreateRouter(doc, ping)
}

func startWebServer(ctx context.Context, e *echo.Echo, port string, logger *slog.Logger) {
	go func() {
		logger.Info("http server listening", "port", port)
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", port)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Error starting http server: %v", err)
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown failed", "error", err)
	}
}
