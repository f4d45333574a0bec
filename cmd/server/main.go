package main

import (
	"log"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"github.com/polyglotdesk/marketplace-backend/internal/database"
	"github.com/polyglotdesk/marketplace-backend/internal/handlers"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	// Initialize database
	if err := database.Connect(); err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer database.Disconnect()

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: os.Getenv("FRONTEND_URL"),
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PUT, DELETE",
	}))
	app.Use(limiter.New(limiter.Config{
		Max:        100,
		Expiration: 1 * time.Minute,
	}))

	// Routes
	api := app.Group("/api/v1")

	// Auth routes
	auth := api.Group("/auth")
	auth.Post("/signup", handlers.Signup)
	auth.Post("/login", handlers.Login)
	auth.Get("/me", handlers.AuthMiddleware, handlers.Me)

	// Protected routes
	api.Use(handlers.AuthMiddleware)

	// Quote routes
	api.Post("/quote", handlers.Quote)
	api.Post("/quote/document", handlers.QuoteDocument)

	// Order routes
	api.Post("/orders", handlers.CreateOrder)
	api.Get("/orders", handlers.GetOrders)
	api.Post("/orders/:id/assign", handlers.AssignOrder)
	api.Post("/orders/:id/complete", handlers.CompleteOrder)
	api.Get("/orders/:id/recommendations", handlers.GetRecommendations)

	// Translator routes
	api.Post("/translators", handlers.RegisterTranslator)
	api.Get("/translators", handlers.GetTranslators)

	// Review routes
	api.Post("/reviews", handlers.SubmitReview)
	api.Get("/reviews/:translatorId", handlers.GetReviews)

	// Admin routes (protected by Auth + Admin middleware)
	admin := api.Group("/admin")
	admin.Use(handlers.AdminMiddleware)
	admin.Get("/stats", handlers.GetAdminStats)
	admin.Get("/reviews", handlers.GetAllReviews)
	admin.Get("/users", handlers.GetAllUsers)

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("GROQ_API_KEY present: %v", os.Getenv("GROQ_API_KEY") != "")

	log.Printf("Server starting on port %s", port)
	log.Fatal(app.Listen(":" + port))
}
