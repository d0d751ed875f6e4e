package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"warehouse/cmd"
	httpin "warehouse/internal/adapters/in/http"
	postgres_adapter "warehouse/internal/adapters/out/postgres"
	redis_adapter "warehouse/internal/adapters/out/redis"
	"warehouse/internal/pkg/logger"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func main() {
	configs, err := cmd.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}

	appLogger, err := logger.New(logger.Config{
		Level:       configs.LogLevel,
		Development: configs.IsDevelopment(),
	})
	if err != nil {
		log.Fatalf("Error creating logger: %v", err)
	}
	defer func() {
		_ = appLogger.Sync()
	}()

	if err := run(configs, appLogger); err != nil {
		appLogger.Fatal("Application stopped with error", zap.Error(err))
	}
}

func run(configs cmd.Config, appLogger *logger.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	gormDB, err := gorm.Open(postgres.Open(configs.DSN()), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	if err := postgres_adapter.Migrate(ctx, gormDB); err != nil {
		return fmt.Errorf("migrate database: %w", err)
	}

	redisClient, err := redis_adapter.NewClient(ctx, configs.RedisAddr)
	if err != nil {
		return err
	}
	defer func() {
		_ = redisClient.Close()
	}()

	publisher, err := redis_adapter.NewEventPublisher(redisClient, configs.RedisChannel)
	if err != nil {
		return err
	}

	app := cmd.NewCompositionRoot(configs, gormDB, publisher, appLogger)

	jobManager, err := app.CreateJobManager()
	if err != nil {
		return err
	}
	if err := jobManager.StartAll(); err != nil {
		return err
	}
	defer jobManager.StopAll()

	return startWebServer(ctx, app, configs.HTTPPort, appLogger)
}

func startWebServer(ctx context.Context, app cmd.CompositionRoot, port string, appLogger *logger.Logger) error {
	e := echo.New()
	e.HideBanner = true
	e.Logger.SetLevel(log.INFO)
	e.Use(middleware.Recover())
	e.Use(httpin.RequestLogger(appLogger.WithComponent("http")))

	doc, err := httpin.LoadOpenAPI(ctx)
	if err != nil {
		return err
	}
	validator, err := httpin.OpenAPIValidator(doc)
	if err != nil {
		return err
	}
	e.Use(validator)

	app.CreateHTTPServer().RegisterRoutes(e)
	if err := httpin.RegisterDocs(e, doc); err != nil {
		return err
	}

	errCh := make(chan error, 1)
	go func() {
		appLogger.Info("HTTP server starting", zap.String("port", port))
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", port)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	appLogger.Info("Shutting down HTTP server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown HTTP server: %w", err)
	}

	appLogger.Info("HTTP server stopped")
	return nil
}
