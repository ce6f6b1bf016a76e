package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"gorm.io/gorm"

	"github.com/AgtechDS/menuserve/cart"
	"github.com/AgtechDS/menuserve/config"
	"github.com/AgtechDS/menuserve/middlewares"
	"github.com/AgtechDS/menuserve/models"
	"github.com/AgtechDS/menuserve/router"
	"github.com/AgtechDS/menuserve/services"
	"github.com/AgtechDS/menuserve/storage"
	"github.com/AgtechDS/menuserve/utils"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found or error loading: %v", err)
	}

	utils.InitLogger()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		utils.ErrorLogger.Fatalf("Invalid configuration: %v", err)
	}

	db, err := config.InitDB(cfg)
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to connect to database: %v", err)
	}

	ginMode := os.Getenv("GIN_MODE")
	if ginMode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	autoMigrate(db)

	store := storage.NewGormStore(db)
	seedMenu(db)

	// Cart sessions live in Redis when available, otherwise in memory.
	var carts cart.Store
	if cfg.RedisAddr != "" {
		carts = cart.NewRedisStore(cfg.RedisAddr)
		utils.InfoLogger.Printf("Using Redis cart store at %s", cfg.RedisAddr)
	} else {
		carts = cart.NewMemoryStore()
		utils.InfoLogger.Println("REDIS_ADDR not set, carts will not survive restarts")
	}

	gateway := services.NewStripeGateway(cfg.StripeSecretKey, cfg.StripeWebhookSecret)
	checkout := services.NewCheckoutService(store, carts, gateway)
	mailer := services.NewMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword,
		cfg.OperatorEmail, cfg.OperatorEmail)

	r := router.SetupRouter(router.Deps{
		Store:        store,
		Carts:        carts,
		Checkout:     checkout,
		Gateway:      gateway,
		Sender:       mailer,
		ContactPhone: cfg.ContactPhone,
	})

	rateLimiter := middlewares.NewRateLimiter(50, 1)
	r.Use(rateLimiter.RateLimit())
	r.SetTrustedProxies([]string{"127.0.0.1", "localhost"})

	utils.InfoLogger.Printf("Listening on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		utils.ErrorLogger.Fatal(err)
	}
}

func autoMigrate(db *gorm.DB) {
	err := db.AutoMigrate(
		&models.MenuItem{},
		&models.Order{},
	)
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to AutoMigrate: %v", err)
	}
	utils.InfoLogger.Println("AutoMigrate completed.")
}
