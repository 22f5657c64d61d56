package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	Database DatabaseConfig
	App      AppConfig
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Type       string // sqlite, postgres or mysql
	SQLitePath string
	Host       string
	Port       string
	User       string
	Password   string
	DBName     string
	SSLMode    string
}

// AppConfig holds application configuration
type AppConfig struct {
	Environment string
	Port        string
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		// It's okay if .env doesn't exist in production
		fmt.Println("No .env file found")
	}

	dbType := getEnv("DB_TYPE", "sqlite")

	config := &Config{
		Database: DatabaseConfig{
			Type:       dbType,
			SQLitePath: getEnv("DB_SQLITE_PATH", "data/epos.db"),
			Host:       getEnv("DB_HOST", "localhost"),
			Port:       getEnv("DB_PORT", defaultPort(dbType)),
			User:       getEnv("DB_USER", defaultUser(dbType)),
			Password:   getEnv("DB_PASSWORD", ""),
			DBName:     getEnv("DB_NAME", "epos_db"),
			SSLMode:    getEnv("DB_SSLMODE", "disable"),
		},
		App: AppConfig{
			Environment: getEnv("APP_ENV", "development"),
			Port:        getEnv("APP_PORT", "8080"),
		},
	}

	return config, nil
}

// GetDSN returns the database connection string for the configured dialect
func (c *DatabaseConfig) GetDSN() string {
	switch c.Type {
	case "postgres", "postgresql":
		return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
			c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
	case "mysql":
		return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
			c.User, c.Password, c.Host, c.Port, c.DBName)
	default:
		return c.SQLitePath
	}
}

// defaultPort returns the conventional port for a database type
func defaultPort(dbType string) string {
	if dbType == "mysql" {
		return "3306"
	}
	return "5432"
}

// defaultUser returns the conventional superuser for a database type
func defaultUser(dbType string) string {
	if dbType == "mysql" {
		return "root"
	}
	return "postgres"
}

// getEnv gets an environment variable with a fallback value
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
