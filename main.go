package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/anvaya/crm/internal/config"
	"github.com/anvaya/crm/internal/infra"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

const DefaultShutdownTimeout = 10 * time.Second
const DefaultConnectTimeout = 5 * time.Second

func main() {
	cfg, err := config.Build()
	if err != nil {
		logrus.Fatal(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), DefaultConnectTimeout)
	defer cancel()

	mongoClient, err := infra.Mongodb(ctx, cfg.MongoCfg)
	if err != nil {
		logrus.Fatalf("failed to establish connection to mongodb - %v", err)
	}
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			logrus.Errorf("failed to disconnect from mongodb - %v", err)
		}
	}()

	db := mongoClient.Database(cfg.MongoCfg.Database)
	if err := infra.EnsureIndexes(ctx, db); err != nil {
		logrus.Fatalf("failed to create indexes - %v", err)
	}

	redisClient, err := infra.Redis(ctx, cfg.RedisCfg)
	if err != nil {
		logrus.Fatalf("failed to establish connection to redis - %v", err)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logrus.Errorf("failed to close redis client - %v", err)
		}
	}()

	app, err := infra.Router(db, redisClient)
	if err != nil {
		logrus.Fatalf("failed to build application - %v", err)
	}

	start(app, cfg.ServerCfg.Port)
}

func start(app *echo.Echo, port int) {
	shutdownCh := make(chan os.Signal, 1)
	errorCh := make(chan error, 1)
	signal.Notify(shutdownCh, os.Interrupt)

	go func() {
		errorCh <- app.Start(fmt.Sprintf(":%d", port))
	}()

	select {
	case <-shutdownCh:
		ctx, cancel := context.WithTimeout(context.Background(), DefaultShutdownTimeout)
		defer cancel()

		logrus.Info("shutdown signal has been sent, stopping the server...")
		if err := app.Shutdown(ctx); err != nil {
			logrus.Fatalf("failed to stop server gracefully - %s", err)
		}
	case err := <-errorCh:
		if !errors.Is(err, http.ErrServerClosed) {
			logrus.Fatalf("shutting down the server, unexpected error occurred - %s", err)
		}
	}
}
