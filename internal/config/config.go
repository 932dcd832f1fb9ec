package config

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config holds the backend server configuration loaded from the environment.
type Config struct {
	ServerPort string
	JWTSecret  string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	LogLevel string
}

// Load reads .env if present and builds the configuration. Critical values
// without a safe default panic when missing.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, relying on environment")
	}
	return &Config{
		ServerPort:    getEnvOr("SERVER_PORT", "8000"),
		JWTSecret:     getEnv("JWT_SECRET"),
		DBHost:        getEnvOr("DB_HOST", "localhost"),
		DBPort:        getEnvOr("DB_PORT", "5432"),
		DBUser:        getEnv("DB_USER"),
		DBPassword:    getEnv("DB_PASSWORD"),
		DBName:        getEnvOr("DB_NAME", "mealplanner"),
		RedisAddr:     getEnvOr("REDIS_ADDR", "localhost:6379"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		RedisDB:       0,
		LogLevel:      getEnvOr("LOG_LEVEL", "info"),
	}
}

// DSN builds the Postgres connection string.
func (c *Config) DSN() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		c.DBHost, c.DBUser, c.DBPassword, c.DBName, c.DBPort)
}

func getEnv(key string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	panic("critical config missing: " + key)
}

func getEnvOr(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
