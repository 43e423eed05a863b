package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	DefaultPort             = "8080"
	DefaultMongoDBName      = "tidytask"
	DefaultTokenExpiryHours = 24
	DefaultFrontendURL      = "http://localhost:5173"
	DefaultUploadDir        = "./uploads"
	DefaultSMTPPort         = 587
)

type Config struct {
	Env              string
	Port             string
	MongoURI         string
	MongoDBName      string
	JWTSecret        string
	TokenExpiryHours int
	FrontendURL      string
	UploadDir        string

	SMTPHost string
	SMTPPort int
	SMTPUser string
	SMTPPass string
	SMTPFrom string

	GoogleClientID     string
	GoogleClientSecret string
	GoogleRedirectURL  string
}

// Load reads config/.env.dev or config/.env.prod depending on ENV, then lets
// real environment variables override the file values. Missing MONGO_URI or
// JWT_SECRET is fatal: the process must not start without them.
func Load() *Config {
	env := getEnv("ENV", "development")

	envFile := "config/.env.dev"
	if env == "production" {
		envFile = "config/.env.prod"
	}
	if err := godotenv.Load(envFile); err != nil {
		log.Printf("No %s file found, relying on environment variables", envFile)
	}

	return &Config{
		Env:              env,
		Port:             getEnv("PORT", DefaultPort),
		MongoURI:         mustGetEnv("MONGO_URI"),
		MongoDBName:      getEnv("MONGO_DB", DefaultMongoDBName),
		JWTSecret:        mustGetEnv("JWT_SECRET"),
		TokenExpiryHours: getEnvAsInt("TOKEN_EXPIRY_HOURS", DefaultTokenExpiryHours),
		FrontendURL:      getEnv("FRONTEND_URL", DefaultFrontendURL),
		UploadDir:        getEnv("UPLOAD_DIR", DefaultUploadDir),

		SMTPHost: getEnv("SMTP_HOST", ""),
		SMTPPort: getEnvAsInt("SMTP_PORT", DefaultSMTPPort),
		SMTPUser: getEnv("SMTP_USER", ""),
		SMTPPass: getEnv("SMTP_PASS", ""),
		SMTPFrom: getEnv("SMTP_FROM", ""),

		GoogleClientID:     getEnv("GOOGLE_CLIENT_ID", ""),
		GoogleClientSecret: getEnv("GOOGLE_CLIENT_SECRET", ""),
		GoogleRedirectURL:  getEnv("GOOGLE_REDIRECT_URL", ""),
	}
}

func getEnv(key string, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultVal
}

func mustGetEnv(key string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	log.Fatalf("Missing required config: %s", key)
	return ""
}

func getEnvAsInt(key string, defaultVal int) int {
	valStr := os.Getenv(key)
	if valStr == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(valStr)
	if err != nil {
		log.Printf("Invalid value for %s, using default %d", key, defaultVal)
		return defaultVal
	}
	return val
}
