package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config holds everything the process reads from the environment.
type Config struct {
	AppPort string

	DBDriver   string // "sqlite" (default) or "postgres"
	DBPath     string // sqlite database file
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string
	DBTimeZone string

	JWTSecret string

	AdminUsername string
	AdminPassword string

	IsProd bool
}

// LoadConfig loads configuration from the environment, with a .env file
// picked up if present.
func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found – relying on env vars")
	}

	return &Config{
		AppPort: getEnv("APP_PORT", "8080"),

		DBDriver:   getEnv("DB_DRIVER", "sqlite"),
		DBPath:     getEnv("DB_PATH", "cars.db"),
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", "password"),
		DBName:     getEnv("DB_NAME", "cars"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),
		DBTimeZone: getEnv("DB_TIMEZONE", "UTC"),

		JWTSecret: getEnv("JWT_SECRET", "supersecret"),

		AdminUsername: getEnv("ADMIN_USERNAME", "admin"),
		AdminPassword: getEnv("ADMIN_PASSWORD", "admin123"),

		IsProd: os.Getenv("IS_PROD") == "true",
	}
}

// getEnv reads an environment variable or returns the provided default
func getEnv(key, defaultValue string) string {
	if v, exists := os.LookupEnv(key); exists {
		return v
	}
	return defaultValue
}
