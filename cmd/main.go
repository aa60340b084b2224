package main

import (
	"log"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"

	"github.com/ormeredost-cmd/withdraw-server/internal/database"
	"github.com/ormeredost-cmd/withdraw-server/internal/handlers"
	"github.com/ormeredost-cmd/withdraw-server/internal/routes"
	"github.com/ormeredost-cmd/withdraw-server/internal/services"
	"github.com/ormeredost-cmd/withdraw-server/internal/store"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  No .env file found, using environment variables")
	}

	// Connect to database
	db, err := database.Connect()
	if err != nil {
		log.Fatal("❌ Failed to connect to database:", err)
	}
	defer database.Close(db)

	// Run migrations
	if err := database.Migrate(db); err != nil {
		log.Fatal("❌ Failed to migrate database:", err)
	}
	log.Println("✅ Database connected and migrated successfully")

	// Wire stores, services and handlers
	st := store.New(db)
	emails := services.NewEmailService()
	bankService := services.NewBankService(st.Banks, st.Users, emails)
	withdrawalService := services.NewWithdrawalService(st.Withdrawals, st.Users, bankService, emails)

	bankHandler := handlers.NewBankHandler(bankService)
	withdrawalHandler := handlers.NewWithdrawalHandler(withdrawalService)

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:   "Wallet Withdraw API v1.0",
		BodyLimit: 10 * 1024 * 1024,
	})

	// Middleware
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${method} ${path} (${latency})\n",
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization, X-Admin-ID",
		AllowMethods: "GET, POST, PUT, DELETE, OPTIONS",
	}))

	// Health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":    "ok",
			"service":   "wallet-withdraw",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
			"endpoints": []string{
				"GET /api/bank-details/:profileId",
				"PUT /api/admin/verify-bank/:profileId",
				"PUT /api/admin/reject-bank/:profileId",
				"GET /api/admin/all-banks",
				"GET /api/admin/user-banks/:userId",
				"POST /api/withdraw-request",
				"GET /api/admin/withdraw-requests",
				"PUT /api/admin/withdraw-status/:id",
				"DELETE /api/admin/withdraw/:id",
			},
		})
	})

	// Application routes
	routes.Setup(app, bankHandler, withdrawalHandler)

	// Fallback for unknown endpoints
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Endpoint not found",
		})
	})

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "5003"
	}

	log.Printf("🚀 Wallet withdraw server starting on http://localhost:%s", port)
	log.Fatal(app.Listen(":" + port))
}
