package config

import (
	"os"

	"github.com/joho/godotenv"
)

// LoadDotEnv pulls a .env file from the working directory into the process
// environment. Missing files are fine, explicit environment always wins.
func LoadDotEnv() {
	_ = godotenv.Load()
}

func getEnvDefault(key string, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
