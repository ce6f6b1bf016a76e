package config

import (
	"fmt"
	"os"
	"strconv"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Config holds every runtime setting, loaded from environment variables.
type Config struct {
	Port     string
	DBDriver string // "mysql" or "sqlite"
	DBDSN    string

	RedisAddr string

	StripeSecretKey     string
	StripeWebhookSecret string

	SMTPHost      string
	SMTPPort      int
	SMTPUser      string
	SMTPPassword  string
	OperatorEmail string
	ContactPhone  string
}

func Load() Config {
	return Config{
		Port:     getenv("PORT", "8080"),
		DBDriver: getenv("DB_DRIVER", "sqlite"),
		DBDSN:    getenv("DB_DSN", "menuserve.db"),

		RedisAddr: os.Getenv("REDIS_ADDR"),

		StripeSecretKey:     os.Getenv("STRIPE_SECRET_KEY"),
		StripeWebhookSecret: os.Getenv("STRIPE_WEBHOOK_SECRET"),

		SMTPHost:      getenv("SMTP_HOST", "localhost"),
		SMTPPort:      getenvInt("SMTP_PORT", 587),
		SMTPUser:      os.Getenv("SMTP_USER"),
		SMTPPassword:  os.Getenv("SMTP_PASSWORD"),
		OperatorEmail: getenv("OPERATOR_EMAIL", "info@bellavista.it"),
		ContactPhone:  getenv("CONTACT_PHONE", "+39 06 1234 5678"),
	}
}

// Validate checks the settings that the server cannot run without.
// Missing processor credentials are a startup failure, not a
// per-request condition.
func (c Config) Validate() error {
	if c.StripeSecretKey == "" {
		return fmt.Errorf("missing required Stripe secret: STRIPE_SECRET_KEY")
	}
	return nil
}

// InitDB opens the database connection for the configured driver.
func InitDB(c Config) (*gorm.DB, error) {
	switch c.DBDriver {
	case "mysql":
		return gorm.Open(mysql.Open(c.DBDSN), &gorm.Config{})
	case "sqlite":
		return gorm.Open(sqlite.Open(c.DBDSN), &gorm.Config{})
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER: %s", c.DBDriver)
	}
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
