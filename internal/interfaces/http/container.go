package http

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/cbnu/subscribe-service/internal/application/ledger"
	ledgerUsecases "github.com/cbnu/subscribe-service/internal/application/ledger/usecases"
	subscriptionApp "github.com/cbnu/subscribe-service/internal/application/subscription"
	"github.com/cbnu/subscribe-service/internal/domain/shared/events"
	"github.com/cbnu/subscribe-service/internal/infrastructure/cache"
	"github.com/cbnu/subscribe-service/internal/infrastructure/config"
	"github.com/cbnu/subscribe-service/internal/infrastructure/metrics"
	"github.com/cbnu/subscribe-service/internal/infrastructure/pubsub"
	"github.com/cbnu/subscribe-service/internal/infrastructure/ratelimit"
	"github.com/cbnu/subscribe-service/internal/infrastructure/repository"
	"github.com/cbnu/subscribe-service/internal/interfaces/http/handlers"
	"github.com/cbnu/subscribe-service/internal/shared/db"
	"github.com/cbnu/subscribe-service/internal/shared/logger"
)

const eventBufferSize = 256

// Container holds the infrastructure components, application services and
// handlers, and is responsible for wiring them together. Shutdown releases
// everything the container started.
type Container struct {
	// Core infrastructure
	engine *gin.Engine
	db     *gorm.DB
	cfg    *config.Config
	log    logger.Interface
	redis  *redis.Client

	metrics    *metrics.Metrics
	dispatcher *events.InMemoryEventDispatcher
	eventBus   *pubsub.RedisEventBus

	// Application services
	ledger        *ledger.Service
	subscriptions *subscriptionApp.Service

	rateLimiter ratelimit.RateLimiter

	// Handlers
	pointHandler        *handlers.PointHandler
	subscriptionHandler *handlers.SubscriptionHandler
	healthHandler       *handlers.HealthHandler
}

// NewContainer wires repositories, services and handlers on top of db.
// The event dispatcher is started before the container is returned.
func NewContainer(db *gorm.DB, cfg *config.Config, log logger.Interface) (*Container, error) {
	c := &Container{
		engine: gin.New(),
		db:     db,
		cfg:    cfg,
		log:    log,
	}

	if err := c.initInfrastructure(); err != nil {
		return nil, err
	}
	c.initServices()
	if err := c.initEvents(); err != nil {
		return nil, err
	}
	if err := c.initHandlers(); err != nil {
		return nil, err
	}

	return c, nil
}

func (c *Container) initInfrastructure() error {
	c.metrics = metrics.New()

	if !c.cfg.Redis.Enabled {
		if c.cfg.RateLimit.Enabled {
			c.log.Warnw("rate limiting requires redis, disabled")
		}
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     c.cfg.Redis.GetAddr(),
		Password: c.cfg.Redis.Password,
		DB:       c.cfg.Redis.DB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return fmt.Errorf("failed to connect to redis at %s: %w", c.cfg.Redis.GetAddr(), err)
	}
	c.redis = client
	c.log.Infow("redis connected", "addr", c.cfg.Redis.GetAddr())

	if c.cfg.RateLimit.Enabled {
		c.rateLimiter = ratelimit.NewRedisRateLimiter(client)
	}
	return nil
}

func (c *Container) initServices() {
	walletRepo := repository.NewWalletRepository(c.db, c.log)
	historyRepo := repository.NewPointHistoryRepository(c.db, c.log)
	subscriptionRepo := repository.NewSubscriptionRepository(c.db, c.log)
	txMgr := db.NewTransactionManager(c.db)

	policy := db.RetryPolicy{
		MaxRetries: c.cfg.Ledger.MaxRetries,
		Backoff:    c.cfg.Ledger.RetryBackoff(),
	}

	c.ledger = ledger.NewService(walletRepo, historyRepo, txMgr, c.log)
	c.ledger.SetRetryPolicy(policy)
	c.ledger.SetBalanceCache(c.balanceCache())

	c.subscriptions = subscriptionApp.NewService(subscriptionRepo, c.ledger, txMgr, c.log)
	c.subscriptions.SetRetryPolicy(policy)
}

func (c *Container) balanceCache() ledgerUsecases.BalanceCache {
	if c.redis != nil {
		return cache.NewRedisBalanceCache(c.redis, c.log)
	}
	return cache.NewLRUBalanceCache(c.cfg.Cache.Size, c.cfg.Cache.TTL())
}

func (c *Container) initEvents() error {
	c.dispatcher = events.NewInMemoryEventDispatcher(eventBufferSize, c.log)

	if err := metrics.NewEventCollector(c.metrics).Register(c.dispatcher); err != nil {
		return fmt.Errorf("failed to register metrics event collector: %w", err)
	}
	if c.redis != nil {
		c.eventBus = pubsub.NewRedisEventBus(c.redis, pubsub.DefaultChannel, c.log)
		if err := c.eventBus.Register(c.dispatcher); err != nil {
			return fmt.Errorf("failed to register event bus: %w", err)
		}
	}

	if err := c.dispatcher.Start(); err != nil {
		return fmt.Errorf("failed to start event dispatcher: %w", err)
	}
	c.ledger.SetEventPublisher(c.dispatcher)
	c.subscriptions.SetEventPublisher(c.dispatcher)
	return nil
}

func (c *Container) initHandlers() error {
	sqlDB, err := c.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get sql.DB: %w", err)
	}

	var redisPinger handlers.Pinger
	if c.redis != nil {
		redisPinger = handlers.PingFunc(func(ctx context.Context) error {
			return c.redis.Ping(ctx).Err()
		})
	}

	c.pointHandler = handlers.NewPointHandler(c.ledger, c.log)
	c.subscriptionHandler = handlers.NewSubscriptionHandler(c.subscriptions, c.log)
	c.healthHandler = handlers.NewHealthHandler(sqlDB, redisPinger)
	return nil
}

// Ledger returns the wallet ledger service.
func (c *Container) Ledger() *ledger.Service {
	return c.ledger
}

// Subscriptions returns the subscription service.
func (c *Container) Subscriptions() *subscriptionApp.Service {
	return c.subscriptions
}

// EventBus returns the redis event bus, or nil when redis is disabled.
func (c *Container) EventBus() *pubsub.RedisEventBus {
	return c.eventBus
}

// Shutdown drains pending events and closes the redis client.
func (c *Container) Shutdown() {
	if c.dispatcher != nil {
		if err := c.dispatcher.Stop(); err != nil {
			c.log.Warnw("failed to stop event dispatcher", "error", err)
		}
	}
	if c.redis != nil {
		if err := c.redis.Close(); err != nil {
			c.log.Warnw("failed to close redis client", "error", err)
		}
	}
}
