package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment-backed configuration, loaded once at startup
var (
	ServerPort string
	ClientUrl  string

	PostgresHost     string
	PostgresPort     string
	PostgresUser     string
	PostgresPassword string
	PostgresDB       string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	JWTSecret       string
	DefaultPassword string

	MailHost     string
	MailPort     string
	MailUsername string
	MailPassword string

	OpenAIAPIKey    string
	OpenAIBaseURL   string
	OpenAIModel     string
	OpenAIMaxTokens int
)

// Load reads the .env file if present and populates the configuration
// variables from the environment
func Load() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	ServerPort = getEnv("SERVER_PORT", "8080")
	ClientUrl = getEnv("CLIENT_URL", "http://localhost:5173")

	PostgresHost = getEnv("POSTGRES_HOST", "localhost")
	PostgresPort = getEnv("POSTGRES_PORT", "5432")
	PostgresUser = getEnv("POSTGRES_USER", "minduel")
	PostgresPassword = getEnv("POSTGRES_PASSWORD", "minduel")
	PostgresDB = getEnv("POSTGRES_DB", "minduel")

	RedisAddr = getEnv("REDIS_ADDR", "localhost:6379")
	RedisPassword = getEnv("REDIS_PASSWORD", "")
	RedisDB = getEnvAsInt("REDIS_DB", 0)

	JWTSecret = getEnv("JWT_SECRET", "change-me")
	DefaultPassword = getEnv("DEFAULT_ADMIN_PASSWORD", "")

	MailHost = getEnv("MAIL_HOST", "")
	MailPort = getEnv("MAIL_PORT", "587")
	MailUsername = getEnv("MAIL_USERNAME", "")
	MailPassword = getEnv("MAIL_PASSWORD", "")

	OpenAIAPIKey = getEnv("OPENAI_API_KEY", "")
	OpenAIBaseURL = getEnv("OPENAI_BASE_URL", "https://api.openai.com/v1")
	OpenAIModel = getEnv("OPENAI_MODEL", "gpt-4o-mini")
	OpenAIMaxTokens = getEnvAsInt("OPENAI_MAX_TOKENS", 300)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return n
}
