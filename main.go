package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/spf13/viper"
	"github.com/streadway/amqp"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"bazar/internal/handlers"
	"bazar/internal/models"
	"bazar/internal/notification"
	"bazar/internal/repositories"
	"bazar/internal/services"
	"bazar/internal/social"
	"bazar/pkg/rabbitmq"
)

func main() {
	// --- Configuration ---
	viper.SetDefault("APP_PORT", ":5001")
	viper.SetDefault("JWT_SECRET", "dev-secret-change-me")
	viper.SetDefault("DATABASE_URL", "")
	viper.SetDefault("RABBITMQ_URL", "")
	viper.SetDefault("GOOGLE_TOKENINFO_URL", "https://oauth2.googleapis.com/tokeninfo")
	viper.AutomaticEnv()

	appPort := viper.GetString("APP_PORT")
	jwtSecret := viper.GetString("JWT_SECRET")
	databaseURL := viper.GetString("DATABASE_URL")
	rabbitMQURL := viper.GetString("RABBITMQ_URL")
	tokenInfoURL := viper.GetString("GOOGLE_TOKENINFO_URL")

	// --- Persistent backend (optional) ---
	// Without DATABASE_URL the server runs entirely on the in-memory
	// fallback stores, which reset on restart.
	var db *gorm.DB
	var sqlDB *sql.DB
	if databaseURL != "" {
		var err error
		db, err = gorm.Open(postgres.Open(databaseURL), &gorm.Config{})
		if err != nil {
			log.Printf("Warning: could not connect to database, falling back to in-memory stores: %v", err)
			db = nil
		} else {
			if err := db.AutoMigrate(&models.User{}, &models.Product{}, &models.Order{}); err != nil {
				log.Fatalf("Failed to migrate database schema: %v", err)
			}
			sqlDB, err = db.DB()
			if err != nil {
				log.Fatalf("Failed to access underlying sql.DB: %v", err)
			}
		}
	} else {
		log.Println("No DATABASE_URL configured, running with in-memory stores")
	}

	// Health is probed on every store call, never cached, so the backends
	// can flip mid-session. Records do not migrate between them.
	healthy := func() bool {
		if sqlDB == nil {
			return false
		}
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		return sqlDB.PingContext(ctx) == nil
	}

	// --- Repositories ---
	memoryUsers := repositories.NewMemoryUserRepository()
	memoryProducts := repositories.NewMemoryProductRepository()
	memoryOrders := repositories.NewMemoryOrderRepository()
	seedProducts(memoryProducts)

	var userRepo repositories.UserRepository = memoryUsers
	var productRepo repositories.ProductRepository = memoryProducts
	var orderRepo repositories.OrderRepository = memoryOrders
	if db != nil {
		userRepo = repositories.NewFallbackUserRepository(repositories.NewGORMUserRepository(db), memoryUsers, healthy)
		productRepo = repositories.NewFallbackProductRepository(repositories.NewGORMProductRepository(db), memoryProducts, healthy)
		orderRepo = repositories.NewFallbackOrderRepository(repositories.NewGORMOrderRepository(db), memoryOrders, healthy)
	}

	// --- Notification channel ---
	var notifier notification.Notifier = notification.NewConsoleNotifier()
	var mqClient *rabbitmq.Client
	if rabbitMQURL != "" {
		var err error
		mqClient, err = rabbitmq.NewClient(rabbitmq.Config{URL: rabbitMQURL})
		if err != nil {
			log.Printf("Warning: RabbitMQ unavailable, confirmations go to the console: %v", err)
		} else {
			defer mqClient.Close()
			notifier = notification.NewQueueNotifier(mqClient)

			// Delivery worker: drains the queue and hands each message to
			// the (mock) gateway.
			err := mqClient.Consume(func(msg amqp.Delivery) error {
				var m notification.Message
				if err := json.Unmarshal(msg.Body, &m); err != nil {
					return err
				}
				notification.Deliver(m)
				return nil
			})
			if err != nil {
				log.Printf("Warning: failed to start notification consumer: %v", err)
			}
		}
	}

	// --- Services ---
	authService := services.NewAuthService(userRepo, jwtSecret)
	productService := services.NewProductService(productRepo)
	orderService := services.NewOrderService(orderRepo, notifier)

	// --- Handlers ---
	verifier := social.NewHTTPVerifier(tokenInfoURL)
	authHandler := handlers.NewAuthHandler(authService, verifier)
	productHandler := handlers.NewProductHandler(productService, authService)
	orderHandler := handlers.NewOrderHandler(orderService, authService)

	// --- Fiber app ---
	app := fiber.New()
	app.Use(logger.New())
	app.Use(cors.New())

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Bharat Super Bazar API is Running")
	})
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status":   "healthy",
			"time":     time.Now().Format(time.RFC3339),
			"database": healthy(),
		})
	})

	api := app.Group("/api")
	authHandler.RegisterRoutes(api)
	productHandler.RegisterRoutes(api)
	orderHandler.RegisterRoutes(api)

	// --- Start HTTP server ---
	log.Printf("Starting server on port %s", appPort)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := app.Listen(appPort); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	<-quit
	log.Println("Shutting down server...")

	if err := app.Shutdown(); err != nil {
		log.Printf("Error during Fiber shutdown: %v", err)
	}
	log.Println("Server gracefully stopped")
}
