package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"purchasing/cmd"
	"purchasing/internal/adapters/out/kafka"
	"purchasing/internal/adapters/out/postgres"
	"purchasing/internal/core/ports"
	"purchasing/internal/pkg/logger"

	"go.uber.org/zap"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	configs, err := cmd.LoadConfig(".env")
	if err != nil {
		return err
	}

	log, err := logger.New(configs.AppEnv)
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	gormDB, err := gorm.Open(postgresdriver.Open(configs.DSN()), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	if err = postgres.Migrate(gormDB); err != nil {
		return fmt.Errorf("migrate database: %w", err)
	}

	app := cmd.NewCompositionRoot(configs, gormDB, log)

	var publisher ports.EventPublisher
	if configs.KafkaEnabled() {
		producer, producerErr := kafka.NewSyncProducer(configs.KafkaHost)
		if producerErr != nil {
			return producerErr
		}
		orderEvents, publisherErr := kafka.NewOrderEventPublisher(producer, configs.KafkaOrderChangedTopic)
		if publisherErr != nil {
			_ = producer.Close()
			return publisherErr
		}
		defer func() {
			if closeErr := orderEvents.Close(); closeErr != nil {
				log.Warn("Failed to close Kafka producer", zap.Error(closeErr))
			}
		}()
		publisher = orderEvents
	} else {
		log.Warn("KAFKA_HOST is not set, order events stay in the outbox")
	}

	jobManager, err := app.CreateJobManager(publisher)
	if err != nil {
		return err
	}
	if err = jobManager.StartAll(); err != nil {
		return err
	}
	defer jobManager.StopAll()

	router, err := app.CreateRouter()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	serverErr := make(chan error, 1)
	go func() {
		address := fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)
		log.Info("HTTP server started", zap.String("address", address))
		if startErr := router.Start(address); startErr != nil && !errors.Is(startErr, http.ErrServerClosed) {
			serverErr <- startErr
		}
		close(serverErr)
	}()

	select {
	case err = <-serverErr:
		return err
	case <-ctx.Done():
	}

	log.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err = router.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}
	return nil
}
