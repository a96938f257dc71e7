package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all configuration for both binaries
type Config struct {
	AppMode  string
	Port     string
	Database DatabaseConfig
	JWT      JWTConfig
	Client   ClientConfig
}

// DatabaseConfig holds database configuration. Driver is "sqlite"
// (default, self-contained) or "mysql".
type DatabaseConfig struct {
	Driver     string
	SQLitePath string
	Host       string
	Port       string
	User       string
	Password   string
	DBName     string
}

// JWTConfig holds token signing configuration
type JWTConfig struct {
	Secret      string
	ExpiryHours int
}

// ClientConfig holds terminal-client configuration
type ClientConfig struct {
	APIBaseURL  string
	SessionFile string
}

// Load reads configuration from .env file and environment variables
func Load() (*Config, error) {
	// Load .env file (ignore error if file doesn't exist in production)
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using environment variables")
	}

	appMode := strings.TrimSpace(getEnv("APP_MODE", "dev"))
	if appMode != "dev" && appMode != "prod" {
		return nil, fmt.Errorf("invalid APP_MODE: '%s' (must be 'dev' or 'prod')", appMode)
	}

	port := getEnv("PORT", "8080")
	expiryHours, _ := strconv.Atoi(getEnv("TOKEN_EXPIRY_HOURS", "24"))

	config := &Config{
		AppMode: appMode,
		Port:    port,
		Database: DatabaseConfig{
			Driver:     getEnv("DB_DRIVER", "sqlite"),
			SQLitePath: getEnv("SQLITE_PATH", "dimec-inventory.db"),
			Host:       getEnv("DB_HOST", "localhost"),
			Port:       getEnv("DB_PORT", "3306"),
			User:       getEnv("DB_USER", "root"),
			Password:   getEnv("DB_PASS", ""),
			DBName:     getEnv("DB_NAME", "dimec_inventory"),
		},
		JWT: JWTConfig{
			Secret:      getEnv("JWT_SECRET", "dimec-inventory-secret"),
			ExpiryHours: expiryHours,
		},
		Client: ClientConfig{
			APIBaseURL:  getEnv("API_BASE_URL", "http://localhost:"+port+"/api"),
			SessionFile: getEnv("SESSION_FILE", defaultSessionFile()),
		},
	}

	return config, nil
}

// defaultSessionFile places the durable session under the user home,
// falling back to the working directory when home is unavailable.
func defaultSessionFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".dimec-session.json"
	}
	return filepath.Join(home, ".dimec-inventory", "session.json")
}

// getEnv gets environment variable with default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// IsDev returns true if running in development mode
func (c *Config) IsDev() bool {
	return c.AppMode == "dev"
}

// IsProd returns true if running in production mode
func (c *Config) IsProd() bool {
	return c.AppMode == "prod"
}
