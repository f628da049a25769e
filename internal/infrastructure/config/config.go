package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	usecasecontract "github.com/mihretgelan/TasteReel/internal/usecase/contract"
)

// Config holds application configuration values.
type Config struct {
	AppBaseURL         string
	TokenExpiry        time.Duration
	CORSAllowedOrigins []string
	VideoBucketName    string
}

// NewConfig creates a new Config instance, loading values from environment variables.
func NewConfig() usecasecontract.IConfigProvider {
	return &Config{
		AppBaseURL:         getEnv("APP_BASE_URL", "http://localhost:8080"),
		TokenExpiry:        time.Hour * time.Duration(getEnvAsInt("TOKEN_EXPIRY_HOURS", 168)), // 7 days
		CORSAllowedOrigins: getEnvAsSlice("CORS_ALLOWED_ORIGINS", []string{"http://localhost:5173"}),
		VideoBucketName:    getEnv("VIDEO_BUCKET_NAME", "tastereel-videos"),
	}
}

// GetAppBaseURL returns the base URL of the application.
func (c *Config) GetAppBaseURL() string {
	return c.AppBaseURL
}

// GetTokenExpiry returns the expiry duration for auth-cookie tokens.
func (c *Config) GetTokenExpiry() time.Duration {
	return c.TokenExpiry
}

// GetCORSAllowedOrigins returns the origins allowed to send credentialed requests.
func (c *Config) GetCORSAllowedOrigins() []string {
	return c.CORSAllowedOrigins
}

// GetVideoBucketName returns the object-storage bucket for uploaded videos.
func (c *Config) GetVideoBucketName() string {
	return c.VideoBucketName
}

// Helper function to get an environment variable or return a default value.
func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// Helper function to get an environment variable as an integer or return a default value.
func getEnvAsInt(name string, fallback int) int {
	valueStr := getEnv(name, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return fallback
}

// Helper function to get a comma-separated environment variable as a slice.
func getEnvAsSlice(name string, fallback []string) []string {
	valueStr := getEnv(name, "")
	if valueStr == "" {
		return fallback
	}
	parts := strings.Split(valueStr, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}
