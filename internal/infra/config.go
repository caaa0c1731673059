package infra

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config is built once at process start and injected into every component
// that needs it. Fields are never mutated after LoadConfig returns.
type Config struct {
	Port string

	DBHost     string
	DBPort     int
	DBName     string
	DBUser     string
	DBPassword string

	RedisAddr     string
	RedisPassword string

	FoursquareAPIKey string
	FoursquareURL    string

	OpenTripMapAPIKey string
	OpenTripMapURL    string

	NominatimURL string

	JWTSecret          []byte
	TokenExpireMinutes int
}

func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: No .env file found, using system environment variables")
	}

	cfg := &Config{
		Port:              getEnv("PORT", "8000"),
		DBHost:            strings.TrimSpace(os.Getenv("PLACE_DB_HOST")),
		DBName:            os.Getenv("PLACE_DB_NAME"),
		DBUser:            os.Getenv("PLACE_DB_USER"),
		DBPassword:        os.Getenv("PLACE_DB_PASSWORD"),
		RedisAddr:         os.Getenv("REDIS_URL"),
		RedisPassword:     os.Getenv("REDIS_PASSWORD"),
		FoursquareAPIKey:  os.Getenv("FOURSQUARE_API_KEY"),
		FoursquareURL:     os.Getenv("FOURSQUARE_URL"),
		OpenTripMapAPIKey: os.Getenv("OPENTRIPMAP_API_KEY"),
		OpenTripMapURL:    os.Getenv("OPENTRIPMAP_URL"),
		NominatimURL:      getEnv("NOMINATIM_URL", "https://nominatim.openstreetmap.org"),
		JWTSecret:         []byte(os.Getenv("JWT_SECRET")),
	}

	port, err := strconv.Atoi(getEnv("PLACE_DB_PORT", "5432"))
	if err != nil || port < 1 || port > 65535 {
		return nil, fmt.Errorf("PLACE_DB_PORT must be between 1 and 65535")
	}
	cfg.DBPort = port

	expire, err := strconv.Atoi(getEnv("ACCESS_TOKEN_EXPIRE_MINUTES", "60"))
	if err != nil || expire < 1 {
		return nil, fmt.Errorf("ACCESS_TOKEN_EXPIRE_MINUTES must be a positive integer")
	}
	cfg.TokenExpireMinutes = expire

	if cfg.DBHost == "" {
		return nil, fmt.Errorf("PLACE_DB_HOST must not be empty")
	}
	if cfg.DBHost != "localhost" && cfg.DBHost != "127.0.0.1" && !strings.Contains(cfg.DBHost, ".") {
		return nil, fmt.Errorf("PLACE_DB_HOST must be a valid hostname or IP")
	}
	if strings.TrimSpace(cfg.DBPassword) == "" {
		return nil, fmt.Errorf("PLACE_DB_PASSWORD must not be empty")
	}
	if len(cfg.JWTSecret) == 0 {
		return nil, fmt.Errorf("JWT_SECRET must not be empty")
	}

	// Missing provider credentials are deliberately not fatal here: the
	// gateway surfaces them as a per-request configuration error.
	return cfg, nil
}

func (c *Config) PostgresDSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
