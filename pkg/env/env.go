package env

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

func LoadEnv() {
	err := godotenv.Load()

	if err != nil {
		log.Println("⚠️  No .env file found, using system envs")
	}
}

func GetEnv(key string, fallback string) string {
	if value, exist := os.LookupEnv(key); exist {
		return value
	}
	return fallback
}

// GetEnvFloat parses a float env var, returning fallback when the variable
// is unset or malformed.
func GetEnvFloat(key string, fallback float64) float64 {
	value, exist := os.LookupEnv(key)
	if !exist {
		return fallback
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		log.Printf("⚠️  Invalid float for %s: %q, using %v", key, value, fallback)
		return fallback
	}
	return f
}

// GetEnvBool parses a boolean env var ("true", "1", "y", ...), returning
// fallback when unset or malformed.
func GetEnvBool(key string, fallback bool) bool {
	value, exist := os.LookupEnv(key)
	if !exist {
		return fallback
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		switch value {
		case "y", "Y", "yes", "Yes":
			return true
		case "n", "N", "no", "No":
			return false
		}
		log.Printf("⚠️  Invalid bool for %s: %q, using %v", key, value, fallback)
		return fallback
	}
	return b
}
