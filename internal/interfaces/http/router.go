// Package http wires the HTTP surface: routes, middleware and handler
// construction.
package http

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	lineitemUC "github.com/loopcart-io/loopcart/internal/application/lineitem/usecases"
	subscriptionUC "github.com/loopcart-io/loopcart/internal/application/subscription/usecases"
	"github.com/loopcart-io/loopcart/internal/domain/lineitem"
	"github.com/loopcart-io/loopcart/internal/infrastructure/cache"
	"github.com/loopcart-io/loopcart/internal/infrastructure/config"
	"github.com/loopcart-io/loopcart/internal/infrastructure/ordering"
	"github.com/loopcart-io/loopcart/internal/infrastructure/repository"
	"github.com/loopcart-io/loopcart/internal/interfaces/http/handlers"
	"github.com/loopcart-io/loopcart/internal/interfaces/http/middleware"
	"github.com/loopcart-io/loopcart/internal/shared/db"
	"github.com/loopcart-io/loopcart/internal/shared/logger"
)

type Router struct {
	engine      *gin.Engine
	db          *gorm.DB
	redisClient *redis.Client
	cfg         *config.Config
	logger      logger.Interface
}

// NewRouter builds the router. redisClient may be nil; the catalog cache is
// skipped and previews read straight from the database.
func NewRouter(gdb *gorm.DB, redisClient *redis.Client, cfg *config.Config, log logger.Interface) *Router {
	return &Router{
		engine:      gin.New(),
		db:          gdb,
		redisClient: redisClient,
		cfg:         cfg,
		logger:      log,
	}
}

func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}

func (r *Router) SetupRoutes() {
	r.engine.Use(middleware.Recovery())
	r.engine.Use(middleware.RequestLogger(r.logger))
	if len(r.cfg.Server.AllowedOrigins) > 0 {
		r.engine.Use(middleware.CORS(r.cfg.Server.AllowedOrigins))
	}

	r.engine.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	lineItemRepo := repository.NewLineItemRepository(r.db, r.logger)
	subscribableRepo := repository.NewSubscribableRepository(r.db, r.logger)
	subscriptionRepo := repository.NewSubscriptionRepository(r.db, r.logger)
	eventRepo := repository.NewSubscriptionEventRepository(r.db, r.logger)
	orderRepo := repository.NewOrderRepository(r.db, r.logger)
	userRepo := repository.NewUserRepository(r.db, r.logger)
	txManager := db.NewTransactionManager(r.db)

	var catalogCache cache.CatalogCache
	if r.redisClient != nil {
		ttl := time.Duration(r.cfg.Catalog.CacheTTLSeconds) * time.Second
		catalogCache = cache.NewRedisCatalogCache(r.redisClient, ttl, r.logger)
	}

	var builder lineitem.OrderLineBuilder = ordering.NewLineBuilder(subscribableRepo, catalogCache, r.logger)

	lineItemHandler := handlers.NewLineItemHandler(
		lineitemUC.NewCreateLineItemUseCase(lineItemRepo, subscribableRepo, subscriptionRepo, eventRepo, txManager, r.logger),
		lineitemUC.NewUpdateLineItemUseCase(lineItemRepo, eventRepo, txManager, r.logger),
		lineitemUC.NewGetLineItemUseCase(lineItemRepo, r.logger),
		lineitemUC.NewListLineItemsUseCase(lineItemRepo, r.logger),
		lineitemUC.NewDeleteLineItemUseCase(lineItemRepo, eventRepo, txManager, r.logger),
		lineitemUC.NewPreviewLineItemUseCase(lineItemRepo, subscriptionRepo, orderRepo, userRepo, builder, r.logger),
	)

	eventHandler := handlers.NewSubscriptionEventHandler(
		subscriptionUC.NewListSubscriptionEventsUseCase(subscriptionRepo, eventRepo, r.logger),
	)

	api := r.engine.Group("/api/v1")

	lineItems := api.Group("/line-items")
	{
		lineItems.POST("", lineItemHandler.CreateLineItem)
		lineItems.GET("", lineItemHandler.ListLineItems)
		lineItems.GET("/:id", lineItemHandler.GetLineItem)
		lineItems.PUT("/:id", lineItemHandler.UpdateLineItem)
		lineItems.DELETE("/:id", lineItemHandler.DeleteLineItem)
		lineItems.GET("/:id/preview", lineItemHandler.PreviewLineItem)
	}

	subscriptions := api.Group("/subscriptions")
	{
		subscriptions.GET("/:id/events", eventHandler.ListEvents)
	}
}
