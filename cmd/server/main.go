package main

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"

	httpadapter "github.com/omrawal/blackrock-challenge/internal/adapter/http"
)

const (
	defaultPort     = "5477"
	shutdownTimeout = 5 * time.Second
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer func() { _ = logger.Sync() }()

	port := os.Getenv("PORT")
	if port == "" {
		port = defaultPort
	}

	app := fiber.New(fiber.Config{
		AppName:               "blackrock-retirement-api",
		DisableStartupMessage: true,
	})
	app.Use(recover.New())

	server := httpadapter.NewServer(logger)
	server.RegisterRoutes(app)

	go func() {
		logger.Info("http server listening", zap.String("port", port))

		if err := app.Listen(":" + port); err != nil {
			logger.Fatal("http server failed", zap.Error(err))
		}
	}()

	waitForShutdown(app, logger)
}

// waitForShutdown blocks until SIGTERM or SIGINT, then drains in-flight
// requests before exiting.
func waitForShutdown(app *fiber.App, logger *zap.Logger) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)

	sig := <-sigChan
	logger.Info("shutting down", zap.String("signal", sig.String()))

	if err := app.ShutdownWithTimeout(shutdownTimeout); err != nil {
		logger.Error("shutdown failed", zap.Error(err))
	}

	logger.Info("http server stopped")
}
