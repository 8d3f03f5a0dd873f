package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/Aashu-1911/Fitness-traker/models"
)

type Config struct {
	Port      string
	JWTSecret string
	LogLevel  string
	DB        DBConfig
}

type DBConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// Load reads configuration from the environment, with .env as an
// optional overlay for local development.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Port:      getEnvOrDefault("PORT", "8080"),
		JWTSecret: os.Getenv("JWT_SECRET"),
		LogLevel:  getEnvOrDefault("LOG_LEVEL", "info"),
		DB: DBConfig{
			Host:     getEnvOrDefault("DB_HOST", "localhost"),
			Port:     getEnvOrDefault("DB_PORT", "5432"),
			User:     getEnvOrDefault("DB_USER", "postgres"),
			Password: getEnvOrDefault("DB_PASSWORD", "postgres"),
			Name:     getEnvOrDefault("DB_NAME", "fitness_tracker"),
		},
	}

	if cfg.JWTSecret == "" {
		return nil, errors.New("JWT_SECRET not set")
	}

	return cfg, nil
}

// OpenDB connects to Postgres and migrates the schema. TranslateError is
// on so unique-constraint violations surface as gorm.ErrDuplicatedKey,
// which the get-or-create paths rely on.
func OpenDB(cfg DBConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		cfg.Host,
		cfg.User,
		cfg.Password,
		cfg.Name,
		cfg.Port,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.HealthProfile{},
		&models.DailyLog{},
		&models.Workout{},
		&models.Challenge{},
	)
	if err != nil {
		return nil, fmt.Errorf("automigrate failed: %w", err)
	}

	return db, nil
}
