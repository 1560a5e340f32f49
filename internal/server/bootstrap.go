package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"krishiseva/internal/cache"
	"krishiseva/internal/config"
	"krishiseva/internal/database"
	"krishiseva/internal/metrics"
	"krishiseva/internal/prices"
	"krishiseva/internal/repositories"
	"krishiseva/internal/services"
	"krishiseva/pkg/rabbitmq"

	"github.com/streadway/amqp"
	"go.uber.org/zap"
)

// Runtime holds the connected dependencies of a running server.
type Runtime struct {
	Deps
	broker  *rabbitmq.Client
	closers []func() error
	log     *zap.Logger
}

// Bootstrap connects the store, cache and broker selected by cfg.
// The returned Runtime must be closed.
func Bootstrap(ctx context.Context, cfg *config.Config, log *zap.Logger) (*Runtime, error) {
	rt := &Runtime{
		Deps: Deps{
			Log:           log,
			Metrics:       metrics.New(),
			JWTSecret:     cfg.JWTSecret,
			TokenTTL:      cfg.TokenTTL,
			PriceCacheTTL: cfg.PriceCacheTTL,
			CORSOrigins:   cfg.CORSOrigins,
		},
		log: log,
	}

	if err := rt.openStore(ctx, cfg); err != nil {
		_ = rt.Close()
		return nil, err
	}
	if err := rt.openCache(ctx, cfg); err != nil {
		_ = rt.Close()
		return nil, err
	}
	rt.openBroker(cfg)

	if cfg.UsesDemoPrices() {
		log.Info("no DATA_GOV_API_KEY configured, serving demo crop prices")
		rt.PriceSource = prices.NewDemo()
	} else {
		rt.PriceSource = prices.NewAgmarknet(prices.AgmarknetOptions{APIKey: cfg.DataGovAPIKey})
	}

	return rt, nil
}

func (rt *Runtime) openStore(ctx context.Context, cfg *config.Config) error {
	switch cfg.StoreDriver {
	case "memory":
		rt.Users = repositories.NewMemoryUserRepository()
		rt.Orders = repositories.NewMemoryOrderRepository()
	case "mongo":
		client, db, err := database.ConnectMongo(ctx, cfg.MongoURI, cfg.MongoDatabase)
		if err != nil {
			return err
		}
		rt.closers = append(rt.closers, func() error { return client.Disconnect(context.Background()) })
		if err := repositories.EnsureMongoIndexes(ctx, db); err != nil {
			return err
		}
		rt.Users = repositories.NewMongoUserRepository(db)
		rt.Orders = repositories.NewMongoOrderRepository(db)
	default:
		db, err := database.OpenGORM(cfg.StoreDriver, cfg.DatabaseDSN, rt.log)
		if err != nil {
			return err
		}
		sqlDB, err := db.DB()
		if err != nil {
			return fmt.Errorf("failed to get database handle: %w", err)
		}
		rt.closers = append(rt.closers, sqlDB.Close)
		if err := database.Migrate(db); err != nil {
			return err
		}
		rt.Users = repositories.NewGORMUserRepository(db)
		rt.Orders = repositories.NewGORMOrderRepository(db)
	}
	rt.log.Info("store ready", zap.String("driver", cfg.StoreDriver))
	return nil
}

func (rt *Runtime) openCache(ctx context.Context, cfg *config.Config) error {
	if cfg.CacheDriver != "redis" {
		rt.Cache = cache.NewMemory()
		return nil
	}
	redisCache, err := cache.NewRedis(ctx, cache.RedisOptions{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
		Prefix:   "krishiseva:",
	})
	if err != nil {
		return err
	}
	rt.closers = append(rt.closers, redisCache.Close)
	rt.Cache = redisCache
	rt.log.Info("cache ready", zap.String("driver", "redis"), zap.String("addr", cfg.RedisAddr))
	return nil
}

// openBroker connects to RabbitMQ when configured. A broker that cannot be
// reached only disables order events.
func (rt *Runtime) openBroker(cfg *config.Config) {
	if cfg.RabbitMQURL == "" {
		rt.log.Info("RABBITMQ_URL not set, order events disabled")
		return
	}
	client, err := rabbitmq.NewClient(rabbitmq.Config{URL: cfg.RabbitMQURL, Queue: cfg.RabbitMQQueue}, rt.log.Named("rabbitmq"))
	if err != nil {
		rt.log.Warn("RabbitMQ unavailable, order events disabled", zap.Error(err))
		return
	}
	rt.broker = client
	rt.Publisher = client
	rt.closers = append(rt.closers, client.Close)
}

// StartEventConsumer logs every order event from the broker queue. It is a
// no-op when no broker is connected.
func (rt *Runtime) StartEventConsumer() error {
	if rt.broker == nil {
		return nil
	}
	return rt.broker.ConsumeOrderEvents(OrderEventLogger(rt.log.Named("events")))
}

// OrderEventLogger returns a delivery handler that records order events.
// Malformed messages are rejected.
func OrderEventLogger(log *zap.Logger) func(amqp.Delivery) error {
	return func(msg amqp.Delivery) error {
		var event services.OrderEvent
		if err := json.Unmarshal(msg.Body, &event); err != nil {
			return fmt.Errorf("failed to decode order event: %w", err)
		}
		if event.OrderID == "" {
			return errors.New("order event without order id")
		}
		log.Info("order event",
			zap.String("event", event.Event),
			zap.String("routing_key", msg.RoutingKey),
			zap.String("order_id", event.OrderID),
			zap.String("buyer_id", event.BuyerID),
			zap.String("status", string(event.Status)),
			zap.Float64("total_amount", event.TotalAmount),
			zap.Time("occurred_at", event.OccurredAt))
		return nil
	}
}

// Close releases every connection in reverse order of opening.
func (rt *Runtime) Close() error {
	var errs []error
	for i := len(rt.closers) - 1; i >= 0; i-- {
		if err := rt.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	rt.closers = nil
	return errors.Join(errs...)
}

// Migrate prepares the schema of the configured store and exits.
func Migrate(ctx context.Context, cfg *config.Config, log *zap.Logger) error {
	switch cfg.StoreDriver {
	case "memory":
		log.Info("memory store needs no migration")
		return nil
	case "mongo":
		client, db, err := database.ConnectMongo(ctx, cfg.MongoURI, cfg.MongoDatabase)
		if err != nil {
			return err
		}
		defer func() { _ = client.Disconnect(context.Background()) }()
		if err := repositories.EnsureMongoIndexes(ctx, db); err != nil {
			return err
		}
	default:
		db, err := database.OpenGORM(cfg.StoreDriver, cfg.DatabaseDSN, log)
		if err != nil {
			return err
		}
		if sqlDB, err := db.DB(); err == nil {
			defer sqlDB.Close()
		}
		if err := database.Migrate(db); err != nil {
			return err
		}
	}
	log.Info("migration complete", zap.String("driver", cfg.StoreDriver))
	return nil
}
