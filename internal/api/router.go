package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/boardhq/board-api/internal/api/handler"
	"github.com/boardhq/board-api/internal/api/middleware"
	"github.com/boardhq/board-api/internal/core/service"
	mongodb "github.com/boardhq/board-api/internal/infrastructure/db/mongo"
	redisdb "github.com/boardhq/board-api/internal/infrastructure/db/redis"
	"github.com/boardhq/board-api/internal/pkg/config"
	"github.com/boardhq/board-api/internal/pkg/token"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("board"))

	// --- Dependencies ---
	tokens := token.NewManager(cfg.JWTSecret, cfg.TokenTTL)

	userRepo := mongodb.NewUserRepository(db)
	authService := service.NewAuthService(userRepo, tokens, log)
	authHandler := handler.NewAuthHandler(authService)

	cardRepo := mongodb.NewCardRepository(db)
	idemStore := redisdb.NewIdempotencyStore(rdb)
	cardService := service.NewCardService(cardRepo, idemStore, log)
	cardHandler := handler.NewCardHandler(cardService)

	authMiddleware := middleware.Auth(tokens)

	// --- Auth routes ---
	e.POST("/signup", authHandler.Signup)
	e.POST("/signin", authHandler.Signin)
	e.POST("/forgotpassword", authHandler.ForgotPassword)

	// --- Board routes (token required) ---
	e.POST("/addcard", cardHandler.Add, authMiddleware)
	e.GET("/listboard", cardHandler.List, authMiddleware)

	// --- Operational endpoints (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
