package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"verbum-app/internal/logger"

	"github.com/sirupsen/logrus"
)

// AppConfig holds all application configuration
type AppConfig struct {
	Server     ServerConfig
	Postgres   PostgresConfig
	ClickHouse ClickHouseConfig
	LLM        LLMConfig
	Auth       AuthConfig
	Content    ContentConfig
	Routes     *RouteConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port string
}

// PostgresConfig holds the relational database connection configuration
type PostgresConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

// ClickHouseConfig holds the analytics event store connection configuration
type ClickHouseConfig struct {
	Host     string
	Port     int
	Name     string
	User     string
	Password string
}

// LLMConfig holds upstream model provider configuration
type LLMConfig struct {
	Provider     string // "openrouter" or "openai"
	APIKey       string
	BaseURL      string
	Referrer     string
	AppTitle     string
	SystemPrompt string
}

// AuthConfig holds authentication configuration
type AuthConfig struct {
	JWTSecret       []byte
	TokenExpiration time.Duration
}

// ContentConfig holds paths to the static content datasets
type ContentConfig struct {
	SaintsPath   string
	ReadingsPath string
}

// LoadConfig loads and validates application configuration from environment
func LoadConfig() (*AppConfig, error) {
	config := &AppConfig{}

	config.Server = ServerConfig{
		Port: getEnvOrDefault("SERVER_PORT", "8080"),
	}

	config.Postgres = PostgresConfig{
		Host:     getEnvOrDefault("DB_HOST", "postgres"),
		Port:     getEnvOrDefault("DB_PORT", "5432"),
		User:     getEnvOrDefault("DB_USER", "postgres"),
		Password: getEnvOrDefault("DB_PASSWORD", "postgres"),
		Name:     getEnvOrDefault("DB_NAME", "verbum"),
		SSLMode:  getEnvOrDefault("DB_SSLMODE", "disable"),
	}

	config.ClickHouse = ClickHouseConfig{
		Host:     getEnvOrDefault("CLICKHOUSE_HOST", "clickhouse"),
		Port:     getEnvAsInt("CLICKHOUSE_PORT", 9000),
		Name:     getEnvOrDefault("CLICKHOUSE_DB_NAME", "verbum"),
		User:     getEnvOrDefault("CLICKHOUSE_USERNAME", "default"),
		Password: os.Getenv("CLICKHOUSE_PASSWORD"),
	}

	apiKey := os.Getenv("LLM_API_KEY")
	if apiKey == "" {
		logger.Log.Warn("LLM_API_KEY environment variable not set")
	}

	config.LLM = LLMConfig{
		Provider:     getEnvOrDefault("LLM_PROVIDER", "openrouter"),
		APIKey:       apiKey,
		BaseURL:      getEnvOrDefault("LLM_BASE_URL", "https://openrouter.ai/api/v1"),
		Referrer:     getEnvOrDefault("LLM_HTTP_REFERRER", "https://verbum.app"),
		AppTitle:     getEnvOrDefault("LLM_APP_TITLE", "Verbum"),
		SystemPrompt: getEnvOrDefault("LLM_SYSTEM_PROMPT", defaultSystemPrompt),
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET environment variable must be set")
	}
	if len(jwtSecret) < 32 {
		return nil, fmt.Errorf("JWT_SECRET must be at least 32 characters (current length: %d)", len(jwtSecret))
	}

	config.Auth = AuthConfig{
		JWTSecret:       []byte(jwtSecret),
		TokenExpiration: getEnvAsDuration("JWT_TOKEN_EXPIRATION", 24*time.Hour),
	}

	config.Content = ContentConfig{
		SaintsPath:   getEnvOrDefault("SAINTS_DATA_PATH", filepath.Join("data", "saints.json")),
		ReadingsPath: getEnvOrDefault("READINGS_DATA_PATH", filepath.Join("data", "readings.json")),
	}

	routesPath := getEnvOrDefault("ROUTES_CONFIG_PATH", filepath.Join("config", "routes.json"))
	routes, err := NewRouteConfig(routesPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load route config: %w", err)
	}
	config.Routes = routes

	return config, nil
}

// GetDSN returns the Postgres connection string
func (c *PostgresConfig) GetDSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode,
	)
}

// Addr returns the ClickHouse native protocol address
func (c *ClickHouseConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

const defaultSystemPrompt = `You are a knowledgeable and charitable Catholic assistant for the Verbum web application. Answer questions about the Catholic faith faithfully to the Catechism of the Catholic Church, Sacred Scripture, and the Church's magisterial teaching. When a question falls outside faith and morals, answer helpfully and honestly. Be warm, clear, and concise, and never present personal speculation as Church teaching.`

// Helper functions for environment variable parsing

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		logger.Log.WithFields(logrus.Fields{"key": key, "default": defaultValue}).Warn("Invalid integer value, using default")
		return defaultValue
	}
	return value
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := time.ParseDuration(valueStr)
	if err != nil {
		logger.Log.WithFields(logrus.Fields{"key": key, "default": defaultValue}).Warn("Invalid duration value, using default")
		return defaultValue
	}
	return value
}
