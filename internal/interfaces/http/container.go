package http

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/civicdesk/civicdesk/internal/domain/shared/events"
	"github.com/civicdesk/civicdesk/internal/infrastructure/cache"
	"github.com/civicdesk/civicdesk/internal/infrastructure/config"
	"github.com/civicdesk/civicdesk/internal/interfaces/http/middleware"
	"github.com/civicdesk/civicdesk/internal/shared/logger"
)

// Container holds all infrastructure components, repositories, use cases and
// handlers, wires them together and owns their shutdown.
type Container struct {
	// Core infrastructure
	engine *gin.Engine
	db     *gorm.DB
	cfg    *config.Config
	log    logger.Interface
	redis  *redis.Client

	repos *repositories
	svcs  *services
	ucs   *allUseCases
	hdlrs *allHandlers

	// Middlewares
	authMiddleware       *middleware.AuthMiddleware
	permissionMiddleware *middleware.PermissionMiddleware
	rateLimiter          *middleware.RateLimiter

	dispatcher *events.InMemoryEventDispatcher
}

// NewContainer builds the object graph. The event dispatcher is started here and
// stopped by Shutdown.
func NewContainer(db *gorm.DB, cfg *config.Config, log logger.Interface) (*Container, error) {
	c := &Container{
		engine: gin.New(),
		db:     db,
		cfg:    cfg,
		log:    log,
	}
	c.engine.MaxMultipartMemory = int64(cfg.Storage.MaxUploadMB) << 20

	// Section 1: Infrastructure - Redis, Repositories
	if err := c.initInfrastructure(); err != nil {
		return nil, err
	}
	c.initRepositories()

	// Section 2: Services - auth, storage, permissions, notifier
	if err := c.initServices(); err != nil {
		return nil, err
	}

	// Section 3: Use cases and handlers
	c.initUseCases()
	c.initHandlers()

	// Section 4: Middlewares
	c.authMiddleware = middleware.NewAuthMiddleware(c.svcs.jwt, c.svcs.sessions, log)
	c.permissionMiddleware = middleware.NewPermissionMiddleware(c.svcs.enforcer, log)
	c.rateLimiter = middleware.NewRateLimiter(c.svcs.rateLimiter, log)

	if err := c.dispatcher.Start(); err != nil {
		return nil, fmt.Errorf("failed to start event dispatcher: %w", err)
	}

	return c, nil
}

func (c *Container) initInfrastructure() error {
	if !c.cfg.Redis.Enabled {
		c.log.Infow("redis disabled, using in-process rate limiter and oauth state store")
		return nil
	}

	client, err := cache.NewRedisClient(context.Background(), &c.cfg.Redis)
	if err != nil {
		return err
	}
	c.redis = client
	return nil
}

// Shutdown drains queued notifications and releases connections.
func (c *Container) Shutdown() {
	if c.dispatcher != nil {
		if err := c.dispatcher.Stop(); err != nil {
			c.log.Errorw("failed to stop event dispatcher", "error", err)
		}
	}

	if c.redis != nil {
		if err := c.redis.Close(); err != nil {
			c.log.Errorw("failed to close redis client", "error", err)
		}
	}
}
