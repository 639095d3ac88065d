package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DB      DBConfig
	Redis   RedisConfig
	Auth    AuthConfig
	Billing BillingConfig
}

type DBConfig struct {
	Driver   string
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

type AuthConfig struct {
	Secret     string
	Issuer     string
	AccessTTL  time.Duration
	RefreshTTL time.Duration
}

// BillingConfig carries the pricing knobs of the billing calculator so they
// can be tuned per deployment instead of living in the code.
type BillingConfig struct {
	TaxRate    float64
	LaborRate  float64
	WashPrices map[int]float64
}

func LoadConfig() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	accessTTL, _ := strconv.Atoi(getEnv("JWT_ACCESS_TTL_HOURS", "24"))
	refreshTTL, _ := strconv.Atoi(getEnv("JWT_REFRESH_TTL_HOURS", "168"))
	taxRate, _ := strconv.ParseFloat(getEnv("BILLING_TAX_RATE", "0.14"), 64)
	laborRate, _ := strconv.ParseFloat(getEnv("BILLING_LABOR_RATE", "50"), 64)

	return Config{
		DB: DBConfig{
			Driver:   getEnv("DB_DRIVER", "mysql"),
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "3306"),
			User:     getEnv("DB_USER", "root"),
			Password: getEnv("DB_PASSWORD", ""),
			Name:     getEnv("DB_NAME", "car_service"),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", ""),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       0,
		},
		Auth: AuthConfig{
			Secret:     getEnv("JWT_SECRET", "dev-secret-change-me"),
			Issuer:     getEnv("JWT_ISSUER", "car-service-backend"),
			AccessTTL:  time.Duration(accessTTL) * time.Hour,
			RefreshTTL: time.Duration(refreshTTL) * time.Hour,
		},
		Billing: BillingConfig{
			TaxRate:    taxRate,
			LaborRate:  laborRate,
			WashPrices: parseWashPrices(getEnv("BILLING_WASH_PRICES", "1:30,2:25,3:50,4:75")),
		},
	}
}

// parseWashPrices reads "code:price" pairs separated by commas.
func parseWashPrices(raw string) map[int]float64 {
	prices := make(map[int]float64)
	for _, pair := range strings.Split(raw, ",") {
		parts := strings.SplitN(strings.TrimSpace(pair), ":", 2)
		if len(parts) != 2 {
			continue
		}
		code, err := strconv.Atoi(parts[0])
		if err != nil {
			continue
		}
		price, err := strconv.ParseFloat(parts[1], 64)
		if err != nil {
			continue
		}
		prices[code] = price
	}
	return prices
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
