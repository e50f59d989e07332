// Package config provides configuration management for the sitecms application.
// It handles loading and validation of configuration values from environment variables,
// with support for required variables, default values, and collective error reporting:
// every problem found while loading is reported in a single aggregated error rather
// than failing on the first one.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Environment names recognized in APP_ENV.
const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// DBConfig represents configuration for the database connection pool.
type DBConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	PoolSize int
}

// AuthConfig holds authentication-related configuration.
type AuthConfig struct {
	JWTSecret     string        // Secret key for signing bearer tokens
	TokenDuration time.Duration // Lifetime of issued tokens
}

// ServerConfig holds HTTP server related configuration.
type ServerConfig struct {
	Port        string // Port for the HTTP server
	Environment string // development or production
	ClientURL   string // Origin of the SPA front end, used for CORS
}

// IsProduction reports whether the server runs in production configuration.
// Error responses suppress internal detail in production.
func (s *ServerConfig) IsProduction() bool {
	return s.Environment == EnvProduction
}

// AppConfig is the top-level configuration structure for the application.
type AppConfig struct {
	DB     *DBConfig
	Auth   *AuthConfig
	Server *ServerConfig
}

// getRequiredEnv reads a required environment variable, appending to the
// collected errors when it is missing.
func getRequiredEnv(key string, errors *[]string) string {
	value, exists := os.LookupEnv(key)
	if !exists {
		*errors = append(*errors, fmt.Sprintf("missing required environment variable: %s", key))
		return ""
	}
	return value
}

// getOptionalEnv reads an environment variable with a default string value.
func getOptionalEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getOptionalEnvInt reads an environment variable parsed as an int.
// Uses defaultValue if not set; appends an error if parsing fails.
func getOptionalEnvInt(key string, defaultValue int, errors *[]string) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	valueInt, err := strconv.Atoi(valueStr)
	if err != nil {
		*errors = append(*errors, fmt.Sprintf("invalid value for %s: expected integer, got '%s': %v", key, valueStr, err))
		return defaultValue
	}
	return valueInt
}

// getOptionalEnvDuration reads an environment variable parsed as time.Duration
// (a string like "15m" or "168h"). Uses defaultValue if not set; appends an
// error if parsing fails.
func getOptionalEnvDuration(key string, defaultValue time.Duration, errors *[]string) time.Duration {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	valueDuration, err := time.ParseDuration(valueStr)
	if err != nil {
		*errors = append(*errors, fmt.Sprintf("invalid value for %s: expected duration string, got '%s': %v", key, valueStr, err))
		return defaultValue
	}
	return valueDuration
}

// clampPoolSize keeps the connection pool size within reasonable bounds.
func clampPoolSize(size int, errors *[]string) int {
	if size < 2 {
		*errors = append(*errors, fmt.Sprintf("pool size %d is less than minimum 2, clamping to 2", size))
		return 2
	}
	if size > 50 {
		*errors = append(*errors, fmt.Sprintf("pool size %d is greater than maximum 50, clamping to 50", size))
		return 50
	}
	return size
}

// LoadConfig creates and returns an AppConfig by reading and validating environment variables.
// It collects all errors encountered during loading and returns a single error if any exist.
func LoadConfig() (*AppConfig, error) {
	var errors []string

	// Database configuration
	dbUser := getRequiredEnv("DB_USER", &errors)
	dbPassword := getRequiredEnv("DB_PASSWORD", &errors)
	dbName := getRequiredEnv("DB_NAME", &errors)
	dbHost := getOptionalEnv("DB_HOST", "localhost")
	dbPort := getOptionalEnvInt("DB_PORT", 5432, &errors)
	poolSize := clampPoolSize(getOptionalEnvInt("DB_POOL_SIZE", 10, &errors), &errors)

	dbConfig := &DBConfig{
		Host:     dbHost,
		Port:     dbPort,
		User:     dbUser,
		Password: dbPassword,
		DBName:   dbName,
		PoolSize: poolSize,
	}

	// Auth configuration. Tokens live for 7 days unless configured otherwise.
	jwtSecret := getRequiredEnv("JWT_SECRET", &errors)
	tokenDuration := getOptionalEnvDuration("JWT_TOKEN_DURATION", 168*time.Hour, &errors)

	authConfig := &AuthConfig{
		JWTSecret:     jwtSecret,
		TokenDuration: tokenDuration,
	}

	// Server configuration
	environment := getOptionalEnv("APP_ENV", EnvDevelopment)
	if environment != EnvDevelopment && environment != EnvProduction {
		errors = append(errors, fmt.Sprintf("invalid APP_ENV: expected %q or %q, got %q", EnvDevelopment, EnvProduction, environment))
	}
	serverConfig := &ServerConfig{
		Port:        getOptionalEnv("PORT", "8080"),
		Environment: environment,
		ClientURL:   getOptionalEnv("CLIENT_URL", "http://localhost:3000"),
	}

	if len(errors) > 0 {
		return nil, fmt.Errorf("configuration errors:\n- %s", strings.Join(errors, "\n- "))
	}

	return &AppConfig{
		DB:     dbConfig,
		Auth:   authConfig,
		Server: serverConfig,
	}, nil
}
