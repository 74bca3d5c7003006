package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/giftidea/gift-catalog-api/docs"
	"github.com/giftidea/gift-catalog-api/internal/api/handler"
	"github.com/giftidea/gift-catalog-api/internal/api/middleware"
	"github.com/giftidea/gift-catalog-api/internal/core/domain"
	"github.com/giftidea/gift-catalog-api/internal/core/service"
	"github.com/giftidea/gift-catalog-api/internal/infrastructure/config"
	mongostore "github.com/giftidea/gift-catalog-api/internal/infrastructure/db/mongo"
	redisstore "github.com/giftidea/gift-catalog-api/internal/infrastructure/db/redis"
	"github.com/giftidea/gift-catalog-api/internal/token"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg *config.Config, db *mongo.Database, rdb *redis.Client, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("giftcatalog"))

	// --- Dependencies ---
	codec := token.NewCodec(cfg.JWTSecret, cfg.TokenTTL)
	hasher := service.NewBcryptHasher(cfg.BcryptCost)

	identityRepo := mongostore.NewIdentityRepository(db)
	giftRepo := mongostore.NewGiftRepository(db)
	cartRepo := mongostore.NewCartRepository(db)
	wishlistRepo := mongostore.NewWishlistRepository(db)

	authService := service.NewAuthService(identityRepo, hasher, codec, log)
	guard := service.NewAccessGuard(codec, identityRepo, log)
	giftService := service.NewGiftService(giftRepo, log)
	cartService := service.NewCartService(cartRepo, giftRepo, log)
	wishlistService := service.NewWishlistService(wishlistRepo, giftRepo, log)
	userService := service.NewUserService(identityRepo, log)

	limiter := redisstore.NewLoginLimiter(rdb, cfg.Login.MaxAttempts, cfg.Login.Window)

	authHandler := handler.NewAuthHandler(authService, limiter, log)
	giftHandler := handler.NewGiftHandler(giftService)
	cartHandler := handler.NewCartHandler(cartService)
	wishlistHandler := handler.NewWishlistHandler(wishlistService)
	userHandler := handler.NewUserHandler(userService)

	authenticated := middleware.Authenticate(guard)
	adminOnly := middleware.RequireRole(domain.RoleAdmin)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)

	// --- Gift catalog (reads public, writes admin) ---
	e.GET("/v1/gifts", giftHandler.List)
	e.GET("/v1/gifts/favorites", giftHandler.Favorites)
	e.GET("/v1/gifts/:id", giftHandler.Get)
	e.POST("/v1/gifts", giftHandler.Create, authenticated, adminOnly)
	e.PUT("/v1/gifts/:id", giftHandler.Update, authenticated, adminOnly)
	e.DELETE("/v1/gifts/:id", giftHandler.Delete, authenticated, adminOnly)
	e.PUT("/v1/gifts/:id/favorite", giftHandler.ToggleFavorite, authenticated, adminOnly)

	// --- Cart (owner-scoped) ---
	cart := e.Group("/v1/cart", authenticated)
	cart.GET("", cartHandler.List)
	cart.POST("", cartHandler.Add)
	cart.PUT("/:id", cartHandler.Update)
	cart.DELETE("/:id", cartHandler.Remove)
	cart.DELETE("", cartHandler.Clear)

	// --- Wishlist (owner-scoped) ---
	wishlist := e.Group("/v1/wishlist", authenticated)
	wishlist.GET("", wishlistHandler.List)
	wishlist.POST("", wishlistHandler.Add)
	wishlist.DELETE("/:id", wishlistHandler.Remove)

	// --- Users ---
	users := e.Group("/v1/users", authenticated)
	users.GET("", userHandler.List, adminOnly)
	users.GET("/profile", userHandler.Profile)
	users.GET("/:id", userHandler.Get)
	users.DELETE("/:id", userHandler.Delete)

	// --- Observability and docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	return e
}
