package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string
	AppPort    string
	JWTSecret  string
	AppEnv     string
}

// requiredVars must all be set for the server to come up. APP_ENV is
// optional; it only switches the logger profile.
var requiredVars = []string{
	"DB_HOST",
	"DB_USER",
	"DB_PASSWORD",
	"DB_NAME",
	"DB_PORT",
	"APP_PORT",
	"JWT_SECRET",
}

// firstMissing returns the name of the first unset required variable, or "".
func firstMissing() string {
	for _, name := range requiredVars {
		if os.Getenv(name) == "" {
			return name
		}
	}
	return ""
}

func LoadConfig() *Config {
	_ = godotenv.Load()

	if name := firstMissing(); name != "" {
		log.Fatalf("missing required environment variable: %s", name)
	}

	return &Config{
		DBHost:     os.Getenv("DB_HOST"),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     os.Getenv("DB_NAME"),
		DBPort:     os.Getenv("DB_PORT"),
		AppPort:    os.Getenv("APP_PORT"),
		JWTSecret:  os.Getenv("JWT_SECRET"),
		AppEnv:     os.Getenv("APP_ENV"),
	}
}
