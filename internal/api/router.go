package api

import (
	"ai-booking-assistant/internal/api/handlers"
	"ai-booking-assistant/pkg/auth"
	"ai-booking-assistant/pkg/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"

	_ "ai-booking-assistant/docs"
)

// Router wires handlers to routes and owns the fiber app configuration.
type Router struct {
	authHandler     *handlers.AuthHandler
	chatHandler     *handlers.ChatHandler
	documentHandler *handlers.DocumentHandler
	bookingHandler  *handlers.BookingHandler
	jwtManager      *auth.JWTManager
	logger          *zap.Logger
}

func NewRouter(
	authHandler *handlers.AuthHandler,
	chatHandler *handlers.ChatHandler,
	documentHandler *handlers.DocumentHandler,
	bookingHandler *handlers.BookingHandler,
	jwtManager *auth.JWTManager,
	logger *zap.Logger,
) *Router {
	return &Router{
		authHandler:     authHandler,
		chatHandler:     chatHandler,
		documentHandler: documentHandler,
		bookingHandler:  bookingHandler,
		jwtManager:      jwtManager,
		logger:          logger,
	}
}

func (r *Router) Setup() *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:   "ai-booking-assistant",
		BodyLimit: 50 * 1024 * 1024,
	})

	app.Use(recover.New())
	app.Use(cors.New())
	app.Use(fiberlogger.New())

	app.Get("/swagger/*", swagger.HandlerDefault)
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	userAuth := app.Group("/user/auth")
	userAuth.Post("/register", r.authHandler.Register)
	userAuth.Post("/login", r.authHandler.Login)

	v1 := app.Group("/api/v1")
	v1.Post("/chat", r.chatHandler.Chat)

	directory := v1.Group("/directory")
	directory.Post("/book", r.bookingHandler.BookAppointment)
	directory.Post("/cancel", r.bookingHandler.CancelAppointment)
	directory.Get("/faq", r.bookingHandler.FAQ)

	protected := v1.Group("", middleware.AuthMiddleware(r.jwtManager, r.logger))
	protected.Post("/documents/ingest", r.documentHandler.Ingest)
	protected.Get("/bookings", middleware.AdminOnly(), r.bookingHandler.List)

	return app
}
