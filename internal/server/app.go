// Package server assembles the HTTP application and its dependencies.
package server

import (
	"errors"
	"time"

	"krishiseva/internal/cache"
	"krishiseva/internal/handlers"
	"krishiseva/internal/metrics"
	"krishiseva/internal/middleware"
	"krishiseva/internal/prices"
	"krishiseva/internal/repositories"
	"krishiseva/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"
)

// Version is reported by the root health endpoint.
const Version = "1.0.0"

// Deps are the components the HTTP application is built from.
type Deps struct {
	Log       *zap.Logger
	Metrics   *metrics.Registry
	Users     repositories.UserRepository
	Orders    repositories.OrderRepository
	Cache     cache.Cache
	Publisher services.EventPublisher // nil disables order events

	JWTSecret     string
	TokenTTL      time.Duration
	PriceSource   prices.Source
	PriceCacheTTL time.Duration
	CORSOrigins   string
}

// NewApp builds the Fiber application with every route mounted.
func NewApp(d Deps) *fiber.App {
	log := d.Log
	if log == nil {
		log = zap.NewNop()
	}
	reg := d.Metrics
	if reg == nil {
		reg = metrics.New()
	}
	demo := prices.NewDemo()
	priceSource := d.PriceSource
	if priceSource == nil {
		priceSource = demo
	}
	priceCache := d.Cache
	if priceCache == nil {
		priceCache = cache.NewMemory()
	}

	tokens := services.NewTokenService(d.JWTSecret, d.TokenTTL)
	authService := services.NewAuthService(d.Users, tokens, log.Named("auth"))
	orderService := services.NewOrderService(d.Orders, d.Users, d.Publisher, reg, log.Named("orders"))
	priceService := services.NewPriceService(priceCache, priceSource, demo, d.PriceCacheTTL, reg, log.Named("prices"))

	authHandler := handlers.NewAuthHandler(authService, log)
	orderHandler := handlers.NewOrderHandler(orderService, log)
	priceHandler := handlers.NewPriceHandler(priceService, log)

	app := fiber.New(fiber.Config{
		AppName:      "KrishiSeva API",
		ErrorHandler: errorHandler(log),
	})

	app.Use(recover.New())
	app.Use(cors.New(corsConfig(d.CORSOrigins)))
	app.Use(middleware.RequestLogger(log.Named("http")))
	app.Use(reg.Middleware())

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "KrishiSeva API is running!",
			"status":  "Active",
			"version": Version,
		})
	})
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})
	app.Get("/metrics", reg.Handler())

	requireAuth := middleware.AuthRequired(tokens)
	api := app.Group("/api")
	authHandler.RegisterRoutes(api, requireAuth)
	orderHandler.RegisterRoutes(api, requireAuth)
	priceHandler.RegisterRoutes(api)

	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"error":   "Route not found",
		})
	})

	return app
}

func corsConfig(origins string) cors.Config {
	cfg := cors.Config{
		AllowOrigins:     origins,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowMethods:     "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		AllowCredentials: true,
	}
	// Fiber refuses credentials with a wildcard origin.
	if origins == "" || origins == "*" {
		cfg.AllowOrigins = "*"
		cfg.AllowCredentials = false
	}
	return cfg
}

// errorHandler renders errors that escape the handlers in the standard envelope.
func errorHandler(log *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		message := "Something went wrong!"

		var fe *fiber.Error
		if errors.As(err, &fe) {
			code = fe.Code
			message = fe.Message
			if code == fiber.StatusNotFound {
				message = "Route not found"
			}
		} else {
			log.Error("unhandled error", zap.String("path", c.Path()), zap.Error(err))
		}

		return c.Status(code).JSON(fiber.Map{
			"success": false,
			"error":   message,
		})
	}
}
