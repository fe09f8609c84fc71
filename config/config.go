package config

import (
	"os"

	"github.com/joho/godotenv"
)

func Config(key string) string {
	// .env is optional; real deployments set env directly
	_ = godotenv.Load(".env")
	return os.Getenv(key)
}

func ConfigOr(key, fallback string) string {
	if v := Config(key); v != "" {
		return v
	}
	return fallback
}
