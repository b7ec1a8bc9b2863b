package server

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/redis/go-redis/v9"
	"github.com/tripxplo/booking-api/internal/config"
	"github.com/tripxplo/booking-api/internal/handler"
	"github.com/tripxplo/booking-api/internal/middleware"
	"github.com/tripxplo/booking-api/internal/repository"
	"github.com/tripxplo/booking-api/internal/service"
	"github.com/tripxplo/booking-api/internal/telemetry"
	"go.mongodb.org/mongo-driver/mongo"
)

// AppDependencies holds the dependencies required to start the application
type AppDependencies struct {
	Config      *config.Config
	MongoDB     *mongo.Database
	RedisClient *redis.Client
}

// NewApp creates and configures the Fiber application with the given dependencies
func NewApp(deps AppDependencies) *fiber.App {
	// Initialize repositories
	pkgRepo := repository.NewMongoPackageRepository(deps.MongoDB)
	roomRepo := repository.NewMongoHotelRoomRepository(deps.MongoDB)
	vehicleRepo := repository.NewMongoVehicleRepository(deps.MongoDB)
	bookingRepo := repository.NewMongoBookingRepository(deps.MongoDB)
	cacheRepo := repository.NewRedisCacheRepository(deps.RedisClient)

	// Initialize services
	quoteService := service.NewQuoteService(pkgRepo, roomRepo, vehicleRepo, cacheRepo, deps.Config.Cache.QuoteTTL)
	packageService := service.NewPackageService(pkgRepo, cacheRepo, deps.Config.Cache.PackageListTTL)
	bookingService := service.NewBookingService(quoteService, bookingRepo)

	// Initialize handlers
	packageHandler := handler.NewPackageHandler(packageService, quoteService)
	bookingHandler := handler.NewBookingHandler(bookingService)

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "TripXplo Booking API",
		ErrorHandler: customErrorHandler,
	})

	// Global middleware
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization, X-Correlation-ID",
		AllowMethods: "GET, POST, PUT, DELETE, OPTIONS",
	}))
	if deps.Config.OTEL.Enabled {
		app.Use(telemetry.FiberMiddleware())
	}

	// Health check endpoint
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "healthy",
			"service": "tripxplo-booking-api",
		})
	})

	// API v1 routes
	v1 := app.Group("/v1")

	// Package browsing and quoting (public)
	packages := v1.Group("/packages")
	packages.Get("/", packageHandler.ListPackages)
	packages.Get("/:id", packageHandler.GetPackageQuote)

	// Bookings (require a valid access token)
	bookings := v1.Group("/bookings")
	bookings.Use(middleware.VerifyAccessToken(deps.Config.JWT.Secret))
	bookings.Post("/", middleware.IdempotencyMiddleware(deps.RedisClient, deps.Config.Cache.IdempotencyTTL), bookingHandler.CreateBooking)
	bookings.Get("/", bookingHandler.ListBookings)
	bookings.Get("/:id", bookingHandler.GetBooking)
	bookings.Patch("/:id/cancel", bookingHandler.CancelBooking)

	return app
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}
	log.Printf("Error: %v", err)
	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
	})
}
