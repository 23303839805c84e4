package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Port     string
	DBDriver string // postgres, mysql or sqlite
	DBHost   string
	DBUser   string
	DBPass   string
	DBName   string
	DBPort   string

	JWTKey           string
	SaltRound        int
	TokenExpiryHours int

	UploadDir string

	// When true, a user must be enrolled in a course before marking
	// one of its sections complete.
	RequireEnrollment bool

	EmailSender   string
	EmailPassword string // SMTP Password

	ReconcileSpec string // cron spec for the enrolled-counter reconciler
}

// AppConfig is a global variable to access configuration
var AppConfig *Config

// LoadConfig initializes configuration from environment variables or defaults
func LoadConfig() {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found. Using system environment variables.")
	}

	AppConfig = &Config{
		Port:     getEnv("PORT", "5000"),
		DBDriver: getEnv("DB_DRIVER", "postgres"),
		DBHost:   getEnv("DB_HOST", "localhost"),
		DBUser:   getEnv("DB_USER", "postgres"),
		DBPass:   getEnv("DB_PASSWORD", ""),
		DBName:   getEnv("DB_NAME", "learnify"),
		DBPort:   getEnv("DB_PORT", "5432"),

		JWTKey:           getEnv("JWT_SECRET_KEY", "defaultSecret"),
		SaltRound:        getEnvInt("SALT_ROUND", 10),
		TokenExpiryHours: getEnvInt("TOKEN_EXPIRY_HOURS", 24),

		UploadDir: getEnv("UPLOAD_DIR", "uploads"),

		RequireEnrollment: getEnvBool("REQUIRE_ENROLLMENT", false),

		EmailSender:   getEnv("EMAIL_SENDER", ""),
		EmailPassword: getEnv("EMAIL_PASSWORD", ""),

		ReconcileSpec: getEnv("RECONCILE_SPEC", "@every 15m"),
	}

	// bcrypt below 10 rounds is too cheap for stored credentials
	if AppConfig.SaltRound < 10 {
		log.Printf("Warning: SALT_ROUND %d is below the minimum, using 10.", AppConfig.SaltRound)
		AppConfig.SaltRound = 10
	}

	// Validate critical configuration
	if AppConfig.JWTKey == "defaultSecret" {
		log.Println("Warning: Using default JWT_SECRET_KEY. Update it in your environment.")
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvInt retrieves an environment variable as an integer or returns the default integer value
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Error converting environment variable %s to int: %v", key, err)
		return defaultValue
	}
	return intValue
}

// getEnvBool retrieves an environment variable as a boolean or returns the default value
func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	boolValue, err := strconv.ParseBool(value)
	if err != nil {
		log.Printf("Error converting environment variable %s to bool: %v", key, err)
		return defaultValue
	}
	return boolValue
}
