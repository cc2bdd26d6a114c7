package configs

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port       string
	DBSource   string
	JWTSecret  string
	CookieName string
	CookieTTL  time.Duration

	SessionBackend string // "db" | "redis"
	RedisAddr      string

	University string

	SeedOwnerEmail    string
	SeedOwnerPassword string
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using environment")
	}

	return &Config{
		Port:       getEnv("PORT", "3000"),
		DBSource:   getEnv("DB_SOURCE", "campus-eats.db"),
		JWTSecret:  getEnv("JWT_SECRET", "super-secret-key"),
		CookieName: getEnv("COOKIE_NAME", "campus_session"),
		CookieTTL:  24 * time.Hour,

		SessionBackend: getEnv("SESSION_BACKEND", "db"),
		RedisAddr:      getEnv("REDIS_ADDR", "127.0.0.1:6379"),

		University: getEnv("UNIVERSITY", "Gitam University"),

		SeedOwnerEmail:    os.Getenv("SEED_OWNER_EMAIL"),
		SeedOwnerPassword: os.Getenv("SEED_OWNER_PASSWORD"),
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}
