package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// DefaultTaxRate is the French standard VAT rate, used when TAX_RATE is unset.
const DefaultTaxRate = 0.20

type Config struct {
	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string
	AppPort    string
	AppEnv     string
	JWTSecret  string
	TaxRate    float64

	// Back-office credentials. The configurator has a single operator
	// account; the hash is provisioned, never computed at runtime.
	AdminEmail        string
	AdminPasswordHash string
}

func LoadConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		DBHost:     os.Getenv("DB_HOST"),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     os.Getenv("DB_NAME"),
		DBPort:     os.Getenv("DB_PORT"),
		AppPort:    os.Getenv("APP_PORT"),
		AppEnv:     os.Getenv("APP_ENV"),
		JWTSecret:  os.Getenv("JWT_SECRET"),
		TaxRate:    loadTaxRate(),

		AdminEmail:        os.Getenv("ADMIN_EMAIL"),
		AdminPasswordHash: os.Getenv("ADMIN_PASSWORD_HASH"),
	}

	if cfg.DBHost == "" {
		log.Fatal("Environment variables not loaded properly")
	}

	return cfg
}

// loadTaxRate reads TAX_RATE as a fraction (0.20 = 20%). The rate is
// injectable so deployments in another jurisdiction never touch code.
func loadTaxRate() float64 {
	raw := os.Getenv("TAX_RATE")
	if raw == "" {
		return DefaultTaxRate
	}

	rate, err := strconv.ParseFloat(raw, 64)
	if err != nil || rate < 0 {
		log.Printf("Invalid TAX_RATE %q, falling back to %.2f", raw, DefaultTaxRate)
		return DefaultTaxRate
	}

	return rate
}
