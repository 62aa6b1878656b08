package main

import (
	"os"

	"github.com/joho/godotenv"
)

// loadEnvFiles seeds the environment from .env. Variables already set by
// the caller are not overridden.
func loadEnvFiles() {
	_ = godotenv.Load(".env")
}

// envOr returns the value of key, or def when it is unset or empty.
func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
