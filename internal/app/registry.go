package app

import (
	"net/http"

	"go-pet-storefront/internal/backend"
	"go-pet-storefront/internal/cart"
	"go-pet-storefront/internal/config"
	"go-pet-storefront/internal/counter"
	"go-pet-storefront/internal/coupon"
	"go-pet-storefront/internal/messaging/kafka/producer"
	"go-pet-storefront/internal/middleware"
	"go-pet-storefront/internal/order"
	"go-pet-storefront/internal/session"
	"go-pet-storefront/internal/wishlist"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

type infra struct {
	cfg     *config.Config
	logger  *zap.Logger
	redis   *redis.Client
	kafka   *kafka.Writer
	backend *backend.Client
}

func sessionCookie(cfg *config.Config) session.Cookie {
	return session.Cookie{
		Name:   cfg.SessionCookie,
		MaxAge: cfg.SessionTTL,
		Secure: cfg.AppEnv != "development",
	}
}

func newCounterService(in infra, sessionStore session.Store, hub *counter.Hub) (counter.Service, counter.Cache) {
	cache := counter.NewRedisCache(in.redis, counter.RedisCacheConfig{
		TTL: 4 * in.cfg.CountPollInterval,
	})
	svc := counter.NewService(counter.Deps{
		Source: in.backend,
		Tokens: sessionStore,
		Cache:  cache,
		Hub:    hub,
		Logger: in.logger.Named("counter"),
	})
	return svc, cache
}

func registerModules(router *gin.Engine, in infra) *counter.Hub {
	cookie := sessionCookie(in.cfg)

	// --- Stores ---
	sessionStore := session.NewRedisStore(in.redis)
	couponStore := coupon.NewRedisStore(in.redis)
	cartLocker := cart.NewRedisLocker(in.redis, cart.RedisLockerConfig{})
	hub := counter.NewHub(in.redis, in.logger.Named("hub"))

	// --- Services ---
	sessionService := session.NewService(session.Deps{
		Store:  sessionStore,
		Auth:   in.backend,
		TTL:    in.cfg.SessionTTL,
		Logger: in.logger.Named("session"),
	})
	counterService, _ := newCounterService(in, sessionStore, hub)
	cartService := cart.NewService(cart.Deps{
		Repo:      in.backend,
		Locker:    cartLocker,
		Refresher: counterService,
		Logger:    in.logger.Named("cart"),
	})
	couponService := coupon.NewService(coupon.Deps{
		Repo:   in.backend,
		Store:  couponStore,
		TTL:    in.cfg.CheckoutSessionTTL,
		Logger: in.logger.Named("coupon"),
	})
	orderService := order.NewService(order.Deps{
		Repo:      in.backend,
		Coupons:   couponService,
		Publisher: producer.NewPublisher(in.kafka),
		Refresher: counterService,
		Logger:    in.logger.Named("order"),
	})
	wishlistService := wishlist.NewService(wishlist.Deps{
		Repo:      in.backend,
		Refresher: counterService,
		Logger:    in.logger.Named("wishlist"),
	})

	// --- Middleware ---
	requireSession := middleware.RequireSession(sessionService, middleware.SessionConfig{
		Cookie:   cookie,
		LoginURL: in.cfg.LoginURL,
		Logger:   in.logger.Named("auth"),
	})
	optionalSession := middleware.OptionalSession(sessionService, cookie)

	// --- Handlers ---
	sessionHandler := session.NewHandler(sessionService, cookie)
	cartHandler := cart.NewHandler(cartService)
	couponHandler := coupon.NewHandler(couponService)
	orderHandler := order.NewHandler(orderService, in.logger.Named("order"))
	wishlistHandler := wishlist.NewHandler(wishlistService)
	counterHandler := counter.NewHandler(counterService)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		session.RegisterRoutes(api, sessionHandler)
		cart.RegisterRoutes(api, cartHandler, requireSession)
		coupon.RegisterRoutes(api, couponHandler, requireSession)
		order.RegisterRoutes(api, orderHandler, requireSession, in.redis)
		wishlist.RegisterRoutes(api, wishlistHandler, requireSession, optionalSession)
		counter.RegisterRoutes(api, counterHandler, requireSession)
	}

	return hub
}
