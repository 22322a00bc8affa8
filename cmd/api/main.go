package main

import (
	"os"
	"os/signal"
	"syscall"

	"go-stock-api/internal/handler"
	"go-stock-api/internal/middleware"
	"go-stock-api/internal/model"
	"go-stock-api/internal/repository"
	"go-stock-api/internal/service"
	"go-stock-api/internal/ws"
	"go-stock-api/pkg/database"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

func main() {
	// 1. Load Env
	if err := godotenv.Load(); err != nil {
		log.Warn().Msg(".env file not found, relying on system env")
	}

	// 2. Setup Database
	db := database.ConnectDB()
	if err := db.AutoMigrate(&model.Item{}, &model.Inventory{}, &model.Order{}, &model.User{}); err != nil {
		log.Fatal().Err(err).Msg("Migration failed")
	}

	// 3. Seed default admin user
	seedAdmin(db)

	// 4. Setup WebSocket Hub
	wsHub := ws.NewHub()
	go wsHub.Run()

	// 5. Dependency Injection (Wiring Layers)
	itemRepo := repository.NewItemRepo(db)
	invRepo := repository.NewInventoryRepo(db)
	orderRepo := repository.NewOrderRepo(db)
	userRepo := repository.NewUserRepo(db)
	stockStore := repository.NewStockStore(db)

	stockService := service.NewStockService(itemRepo, invRepo, orderRepo, stockStore, wsHub)
	authService := service.NewAuthService(userRepo)

	itemHandler := handler.NewItemHandler(stockService)
	invHandler := handler.NewInventoryHandler(stockService)
	orderHandler := handler.NewOrderHandler(stockService)
	dashHandler := handler.NewDashboardHandler(stockService)
	authHandler := handler.NewAuthHandler(authService)

	// 6. Setup Fiber
	app := fiber.New(fiber.Config{
		AppName: "Stock Service v1.0",
	})

	// Middleware
	app.Use(logger.New())  // Logging request
	app.Use(recover.New()) // Panic recovery
	app.Use(cors.New())    // CORS

	// 7. Routes
	api := app.Group("/api/v1")

	// ============ PUBLIC ROUTES ============
	auth := api.Group("/auth")
	auth.Post("/login", authHandler.Login)
	auth.Post("/validate-token", authHandler.ValidateToken)

	api.Get("/items", itemHandler.GetItems)
	api.Get("/items/:id", itemHandler.GetItem)
	api.Get("/inventory", invHandler.GetTransactions)
	api.Get("/inventory/:id", invHandler.GetTransaction)
	api.Get("/orders", orderHandler.GetOrders)
	api.Get("/orders/:id", orderHandler.GetOrder)
	api.Get("/dashboard/stats", dashHandler.GetDashboardStats)
	api.Get("/dashboard/stock-movement", dashHandler.GetStockMovement)

	// ============ PROTECTED ROUTES ============
	// Every mutation requires authentication
	protected := api.Group("", middleware.RequireAuth(userRepo))

	protected.Post("/items", itemHandler.CreateItem)
	protected.Put("/items/:id", itemHandler.UpdateItem)
	protected.Delete("/items/:id", itemHandler.DeleteItem)

	protected.Post("/inventory", invHandler.AddInventory)
	protected.Put("/inventory/:id", invHandler.UpdateInventory)
	protected.Delete("/inventory/:id", invHandler.DeleteInventory)

	protected.Post("/orders", orderHandler.PlaceOrder)
	protected.Put("/orders/:id", orderHandler.UpdateOrder)
	protected.Delete("/orders/:id", orderHandler.DeleteOrder)

	// WebSocket Route
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return c.SendStatus(fiber.StatusUpgradeRequired)
	})
	app.Get("/ws", websocket.New(func(c *websocket.Conn) {
		wsHub.Register <- c
		defer func() { wsHub.Unregister <- c }()

		for {
			// Keep alive loop
			if _, _, err := c.ReadMessage(); err != nil {
				break
			}
		}
	}))

	// 8. Graceful Shutdown
	go func() {
		port := os.Getenv("PORT")
		if port == "" {
			port = "3000"
		}
		if err := app.Listen(":" + port); err != nil {
			log.Panic().Err(err).Msg("Server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}

// seedAdmin creates the default admin user if it doesn't exist
func seedAdmin(db *gorm.DB) {
	userRepo := repository.NewUserRepo(db)

	email := os.Getenv("ADMIN_EMAIL")
	if email == "" {
		email = "admin@example.com"
	}

	if _, err := userRepo.FindByEmail(email); err == nil {
		return
	}

	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "admin123"
	}

	admin := &model.User{
		Email:    email,
		FullName: "Administrator",
		IsActive: true,
	}
	if err := admin.SetPassword(password); err != nil {
		log.Warn().Err(err).Msg("Failed to hash admin password")
		return
	}

	if err := userRepo.Create(admin); err != nil {
		log.Warn().Err(err).Msg("Failed to create admin user")
	} else {
		log.Info().Str("email", email).Msg("✅ Admin user created")
	}
}
