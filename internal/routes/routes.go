package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/resonate-app/resonate-backend/internal/config"
	"github.com/resonate-app/resonate-backend/internal/handlers"
	"github.com/resonate-app/resonate-backend/internal/middleware"
	"gorm.io/gorm"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	db *gorm.DB,
	authHandler *handlers.AuthHandler,
	healthHandler *handlers.HealthHandler,
	moderationHandler *handlers.ModerationHandler,
	suspensionHandler *handlers.SuspensionHandler,
	statsHandler *handlers.StatsHandler,
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

	// Auth is public with a stricter rate limit: 10 req/min per IP
	auth := api.Group("/auth")
	auth.Use(limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)
	auth.Post("/refresh", authHandler.Refresh)
	api.Post("/auth/logout", middleware.JWTProtected(cfg), authHandler.Logout)

	// Reporting and blocking, any authenticated user
	api.Post("/reports", middleware.JWTProtected(cfg), moderationHandler.SubmitReport)
	api.Post("/comment-reports", middleware.JWTProtected(cfg), moderationHandler.SubmitCommentReport)
	api.Post("/blocks", middleware.JWTProtected(cfg), moderationHandler.BlockUser)
	api.Delete("/blocks/:id", middleware.JWTProtected(cfg), moderationHandler.UnblockUser)
	api.Get("/blocks", middleware.JWTProtected(cfg), moderationHandler.ListBlocks)
	api.Get("/me/reports", middleware.JWTProtected(cfg), moderationHandler.MyReports)
	api.Get("/me/suspension", middleware.JWTProtected(cfg), suspensionHandler.MyStatus)

	// Moderation panel (JWT + moderator required)
	mod := api.Group("/moderation", middleware.JWTProtected(cfg), middleware.ModeratorRequired(db, cfg))
	mod.Get("/reports", moderationHandler.ListReports)
	mod.Post("/reports/:id/escalate", moderationHandler.EscalateReport)
	mod.Post("/reports/:id/resolve", moderationHandler.ResolveReport)
	mod.Post("/comment-reports/:id/resolve", moderationHandler.ResolveCommentReport)
	mod.Delete("/reports/:id", moderationHandler.DeleteReport)
	mod.Put("/users/:id/reputation", moderationHandler.SetReputation)

	mod.Post("/suspensions", suspensionHandler.Create)
	mod.Post("/suspensions/automatic", suspensionHandler.CreateAutomatic)
	mod.Put("/suspensions/:id", suspensionHandler.Review)
	mod.Get("/users/:id/suspensions", suspensionHandler.ListForUser)
	mod.Get("/users/:id/suspension-status", suspensionHandler.Status)

	mod.Get("/stats/reports", statsHandler.ReportStats)
	mod.Get("/stats/suspensions", statsHandler.SuspensionStats)
}
