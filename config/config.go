package config

import (
	"fmt"
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"school-payments-api/internal/models"
)

type Config struct {
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	JWTSecret string
}

func LoadConfig() (*Config, error) {
	return &Config{
		DBHost:     os.Getenv("DB_HOST"),
		DBPort:     os.Getenv("DB_PORT"),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     os.Getenv("DB_NAME"),
		JWTSecret:  os.Getenv("JWT_SECRET"),
	}, nil
}

// GatewayConfig holds the payment-gateway collaborator settings.
// FallbackSchoolID is used when a webhook references an unknown order
// without naming a school.
type GatewayConfig struct {
	APIURL           string
	PgKey            string
	APIKey           string
	FallbackSchoolID string
}

func LoadGatewayConfig() (*GatewayConfig, error) {
	cfg := &GatewayConfig{
		APIURL:           os.Getenv("PG_API_URL"),
		PgKey:            os.Getenv("PG_KEY"),
		APIKey:           os.Getenv("PG_API_KEY"),
		FallbackSchoolID: os.Getenv("SCHOOL_ID"),
	}
	if cfg.APIURL == "" {
		return nil, fmt.Errorf("PG_API_URL is not configured")
	}
	return cfg, nil
}

func InitDatabase(cfg *Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=UTC",
		cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	err = db.AutoMigrate(&models.User{}, &models.Order{}, &models.OrderStatus{}, &models.WebhookLog{})
	if err != nil {
		return nil, err
	}

	return db, nil
}
