package routes

import (
	"time"

	"github.com/devconnect/backend/internal/config"
	"github.com/devconnect/backend/internal/handlers"
	"github.com/devconnect/backend/internal/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	authHandler *handlers.AuthHandler,
	userHandler *handlers.UserHandler,
	profileHandler *handlers.ProfileHandler,
	healthHandler *handlers.HealthHandler,
) {
	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	api.Get("/health", healthHandler.Check)

	// Credential endpoints get a stricter limit: 10 req/min per IP
	authLimiter := limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	})

	api.Post("/users", authLimiter, userHandler.Register)
	api.Post("/auth", authLimiter, authHandler.Login)
	api.Get("/auth", middleware.Protected(cfg), authHandler.GetCurrentUser)

	profile := api.Group("/profile")
	profile.Get("/", profileHandler.List)
	profile.Get("/me", middleware.Protected(cfg), profileHandler.GetMyProfile)
	profile.Get("/user/:user_id", profileHandler.GetByUserID)
	profile.Post("/", middleware.Protected(cfg), profileHandler.Upsert)
	profile.Delete("/", middleware.Protected(cfg), profileHandler.DeleteAccount)
	profile.Put("/experience", middleware.Protected(cfg), profileHandler.AddExperience)
	profile.Delete("/experience/:exp_id", middleware.Protected(cfg), profileHandler.RemoveExperience)
	profile.Put("/education", middleware.Protected(cfg), profileHandler.AddEducation)
	profile.Delete("/education/:edu_id", middleware.Protected(cfg), profileHandler.RemoveEducation)
}
