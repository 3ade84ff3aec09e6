package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port         string
	JWTSecret    string
	MongoURI     string
	DBName       string
	SkipAuth     bool
	Environment  string
	AppId        string
	UpstreamURL  string // Base URL of the HRMS REST API
	AssetURL     string // Base URL for tenant branding assets (logos, favicons)
	RefCacheCron string // Cron spec for reference-data refresh
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	} else {
		log.Println("Loaded .env file successfully")
	}

	return &Config{
		Port:         getEnv("PORT", "8080"),
		JWTSecret:    getEnv("JWT_SECRET", "secret"),
		MongoURI:     getEnv("MONGO_URI", "mongodb://localhost:27017"),
		DBName:       getEnv("DB_NAME", "hrms-console"),
		SkipAuth:     getEnv("SKIP_AUTH", "false") == "true",
		Environment:  getEnv("ENVIRONMENT", "development"),
		AppId:        getEnv("APP_ID", "hrms-console"),
		UpstreamURL:  getEnv("UPSTREAM_API_URL", "http://localhost:9000/api"),
		AssetURL:     getEnv("ASSET_BASE_URL", "http://localhost:9000/assets"),
		RefCacheCron: getEnv("REFCACHE_CRON", "@every 5m"),
	}, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
