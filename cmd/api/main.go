package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/a4co/transportista-service/internal/api"
	"github.com/a4co/transportista-service/internal/core/ports"
	"github.com/a4co/transportista-service/internal/core/service"
	"github.com/a4co/transportista-service/internal/infrastructure/broker/kafka"
	"github.com/a4co/transportista-service/internal/infrastructure/config"
	"github.com/a4co/transportista-service/internal/infrastructure/db/memory"
	"github.com/a4co/transportista-service/internal/infrastructure/db/mongo"
	"github.com/a4co/transportista-service/internal/infrastructure/db/redis"
	"github.com/a4co/transportista-service/internal/infrastructure/http/handlers"
	"github.com/a4co/transportista-service/internal/infrastructure/queue"
	"github.com/a4co/transportista-service/pkg/logger"
)

func main() {
	// A missing .env is fine; the environment may already be populated.
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  !cfg.IsProduction(),
		Service: cfg.ServiceName,
	})

	if err := run(ctx, cfg, log); err != nil {
		log.Fatal().Err(err).Msg("service stopped")
	}
}

func run(ctx context.Context, cfg *config.Config, log zerolog.Logger) error {
	checks := map[string]handlers.CheckFunc{}

	var (
		carriers  ports.CarrierRepository
		shipments ports.ShipmentRepository
	)
	switch cfg.StorageDriver {
	case config.StorageMongo:
		client, db, err := mongo.Connect(ctx, mongo.Config{
			URI:      cfg.Mongo.URI,
			Database: cfg.Mongo.Database,
			AppName:  cfg.ServiceName,
		})
		if err != nil {
			return err
		}
		defer func() { _ = client.Disconnect(context.Background()) }()

		carrierRepo := mongo.NewCarrierRepository(db)
		shipmentRepo := mongo.NewShipmentRepository(db)
		if err := carrierRepo.EnsureIndexes(ctx); err != nil {
			return err
		}
		if err := shipmentRepo.EnsureIndexes(ctx); err != nil {
			return err
		}
		carriers, shipments = carrierRepo, shipmentRepo
		checks["mongo"] = func(ctx context.Context) error { return client.Ping(ctx, readpref.Primary()) }
		log.Info().Str("database", cfg.Mongo.Database).Msg("using mongo storage")
	default:
		carriers, shipments = memory.NewCarrierRepository(), memory.NewShipmentRepository()
		log.Info().Msg("using in-memory storage")
	}

	var (
		cache ports.TrackingCache
		dedup service.DedupChecker = memory.NewDedupChecker(cfg.Redis.EventDedupTTL)
	)
	if cfg.Redis.Addr != "" {
		client, err := redis.Connect(ctx, redis.Config{
			Addr:         cfg.Redis.Addr,
			Password:     cfg.Redis.Password,
			DB:           cfg.Redis.DB,
			PoolSize:     cfg.Redis.PoolSize,
			DialTimeout:  cfg.Redis.DialTimeout,
			ReadTimeout:  cfg.Redis.ReadTimeout,
			WriteTimeout: cfg.Redis.WriteTimeout,
		})
		if err != nil {
			return err
		}
		defer func() { _ = client.Close() }()

		cache = redis.NewTrackingCache(client, cfg.Redis.TrackingCacheTTL)
		dedup = redis.NewDedupChecker(client, cfg.Redis.EventDedupTTL)
		checks["redis"] = func(ctx context.Context) error { return client.Ping(ctx).Err() }
		log.Info().Str("addr", cfg.Redis.Addr).Msg("redis cache and dedup enabled")
	}

	var publisher ports.StatusPublisher
	if len(cfg.Kafka.Brokers) > 0 {
		p := kafka.NewStatusPublisher(cfg.Kafka.Brokers, cfg.Kafka.StatusTopic)
		defer func() { _ = p.Close() }()
		publisher = p
		log.Info().Strs("brokers", cfg.Kafka.Brokers).Str("topic", cfg.Kafka.StatusTopic).Msg("status publishing enabled")
	}

	shipmentSvc := service.NewShipmentService(shipments, carriers, cache, publisher, log)
	carrierSvc := service.NewCarrierService(carriers, log)
	eventSvc := service.NewEventService(shipmentSvc, dedup, log)

	workerCtx, cancelWorkers := context.WithCancel(context.Background())
	dispatcher := queue.NewDispatcher(cfg.Events.Workers, eventSvc, log)
	dispatcher.Start(workerCtx)

	e := api.NewRouter(api.Deps{
		Carriers:     carrierSvc,
		Shipments:    shipmentSvc,
		Events:       dispatcher,
		Checks:       checks,
		Logger:       log,
		ServiceName:  cfg.ServiceName,
		StrictStatus: cfg.StrictStatus,
	})

	serveErr := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.Port).Msg("http server listening")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case <-ctx.Done():
		log.Info().Msg("shutdown signal received")
	case err := <-serveErr:
		if err != nil {
			drainCtx, stop := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
			_ = dispatcher.Shutdown(drainCtx)
			stop()
			cancelWorkers()
			dispatcher.Wait()
			return fmt.Errorf("http server: %w", err)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	err := e.Shutdown(shutdownCtx)

	if derr := dispatcher.Shutdown(shutdownCtx); derr != nil {
		log.Warn().Err(derr).Msg("event dispatcher did not drain")
	}
	cancelWorkers()
	dispatcher.Wait()
	log.Info().Msg("shutdown complete")
	if err != nil {
		return fmt.Errorf("http shutdown: %w", err)
	}
	return nil
}
