package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

var AppEnv Config

// Backend selects which product repository implementation main wires up.
const (
	BackendMongo = "mongo"
	BackendREST  = "rest"
)

type Config struct {
	Port    string
	Backend string

	MongoURI string
	DBName   string

	// Upstream catalog API, used when Backend is "rest".
	APIBaseURL string
	APIToken   string

	// Origin used to resolve server-relative image paths before rendering.
	PublicBaseURL string
	UploadDir     string

	JWTSecret      string
	AccessTokenTTL time.Duration

	AdminEmail        string
	AdminPasswordHash string

	ContactPhone    string
	ContactEmail    string
	ContactWhatsApp string

	// BCP 47 tag for catalog-facing text ("en" or "ta").
	Locale string
}

func Load() {
	if err := godotenv.Load(); err != nil {
		log.Println(".env not loaded:", err)
	}
	AppEnv = Config{
		Port:    getEnvOrDefault("PORT", "8080"),
		Backend: strings.ToLower(getEnvOrDefault("CATALOG_BACKEND", BackendMongo)),

		MongoURI: getEnvOrDefault("MONGO_URI", ""),
		DBName:   getEnvOrDefault("DB_NAME", "rocatalog"),

		APIBaseURL: getEnvOrDefault("API_BASE_URL", ""),
		APIToken:   getEnvOrDefault("API_TOKEN", ""),

		PublicBaseURL: getEnvOrDefault("PUBLIC_BASE_URL", "http://localhost:8080"),
		UploadDir:     getEnvOrDefault("UPLOAD_DIR", "./public/uploads/products"),

		JWTSecret:      getEnvOrDefault("JWT_SECRET", ""),
		AccessTokenTTL: getDurationEnv("ACCESS_TOKEN_TTL", 60, time.Minute),

		AdminEmail:        getEnvOrDefault("ADMIN_EMAIL", ""),
		AdminPasswordHash: getEnvOrDefault("ADMIN_PASSWORD_HASH", ""),

		ContactPhone:    getEnvOrDefault("CONTACT_PHONE", "+919597794387"),
		ContactEmail:    getEnvOrDefault("CONTACT_EMAIL", "ponsrienterprises@gmail.com"),
		ContactWhatsApp: getEnvOrDefault("CONTACT_WHATSAPP", "919597794387"),

		Locale: getEnvOrDefault("CATALOG_LOCALE", "en"),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue int, unit time.Duration) time.Duration {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil && parsed > 0 {
			return time.Duration(parsed) * unit
		}
	}
	return time.Duration(defaultValue) * unit
}
