package config

import (
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	JWTSecret  string
	ServerPort string

	// Tokens issued by POST /jwt and POST /login carry different
	// lifetimes. Both are configuration, not something to unify.
	TokenTTL      time.Duration
	LoginTokenTTL time.Duration

	AllowedOrigins string
}

func LoadConfig() (*Config, error) {
	err := godotenv.Load()
	if err != nil {
		log.Println("Error loading .env file, using environment variables")
	}

	return &Config{
		DBHost:         getEnv("DB_HOST", "localhost"),
		DBPort:         getEnv("DB_PORT", "5432"),
		DBUser:         getEnv("DB_USER", "postgres"),
		DBPassword:     getEnv("DB_PASSWORD", "postgres"),
		DBName:         getEnv("DB_NAME", "academix"),
		JWTSecret:      getEnv("ACCESS_TOKEN_SECRET", "secret"),
		ServerPort:     getEnv("SERVER_PORT", "5000"),
		TokenTTL:       getDurationEnv("TOKEN_TTL", 30*time.Minute),
		LoginTokenTTL:  getDurationEnv("LOGIN_TOKEN_TTL", time.Hour),
		AllowedOrigins: getEnv("ALLOWED_ORIGINS", "http://localhost:5173"),
	}, nil
}

// Origins returns the allowed origins as a comma-joined string ready for
// the CORS middleware, trimming any stray whitespace from the env value.
func (c *Config) Origins() string {
	parts := strings.Split(c.AllowedOrigins, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return strings.Join(parts, ", ")
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
		log.Printf("Invalid duration in %s, using default %s", key, defaultValue)
	}
	return defaultValue
}
