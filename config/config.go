package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds everything read from the environment at startup.
type Config struct {
	Port      string
	DBSource  string
	JWTSecret []byte
	JWTTTL    time.Duration
	GinMode   string
}

// Load reads .env when present, then falls back to process env and defaults.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using environment variables")
	}

	return &Config{
		Port:      getEnv("PORT", "8080"),
		DBSource:  getEnv("DB_SOURCE", "quickbite.db"),
		JWTSecret: []byte(getEnv("JWT_SECRET", "quickbite_super_secret_2024")),
		JWTTTL:    24 * time.Hour,
		GinMode:   getEnv("GIN_MODE", ""),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
