package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"melodia/internal/assets"
)

// Config contains application-wide settings sourced from the environment.
type Config struct {
	DatabaseURL    string
	Addr           string
	AllowedOrigins []string
	JWTSecret      string
	LogLevel       string
	LogFormat      string
	SeedDemoData   bool
	Assets         assets.Config
}

func loadConfig() (Config, error) {
	_ = godotenv.Load("config/local.env")

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		return Config{}, errors.New("DATABASE_URL env var is required")
	}

	addr := fmt.Sprintf(":%s", envOrDefault("PORT", "8080"))

	origins := parseAllowedOrigins(envOrDefault("CORS_ALLOWED_ORIGINS", "http://localhost:5173"))

	return Config{
		DatabaseURL:    dsn,
		Addr:           addr,
		AllowedOrigins: origins,
		JWTSecret:      os.Getenv("JWT_SECRET"),
		LogLevel:       envOrDefault("LOG_LEVEL", "info"),
		LogFormat:      envOrDefault("LOG_FORMAT", "json"),
		SeedDemoData:   envOrDefault("SEED_DEMO_DATA", "true") == "true",
		Assets: assets.Config{
			Endpoint:        os.Getenv("ASSET_ENDPOINT"),
			Region:          envOrDefault("ASSET_REGION", "us-east-1"),
			Bucket:          os.Getenv("ASSET_BUCKET"),
			AccessKeyID:     os.Getenv("ASSET_ACCESS_KEY_ID"),
			SecretAccessKey: os.Getenv("ASSET_SECRET_ACCESS_KEY"),
			PublicBaseURL:   os.Getenv("ASSET_PUBLIC_BASE_URL"),
		},
	}, nil
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func parseAllowedOrigins(raw string) []string {
	parts := strings.Split(raw, ",")
	var origins []string
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}
