package config_test

import (
	"testing"
	"time"

	"github.com/mihretgelan/TasteReel/internal/infrastructure/config"
	"github.com/stretchr/testify/assert"
)

func TestNewConfigDefaults(t *testing.T) {
	cfg := config.NewConfig()

	assert.Equal(t, "http://localhost:8080", cfg.GetAppBaseURL())
	assert.Equal(t, 168*time.Hour, cfg.GetTokenExpiry())
	assert.Equal(t, []string{"http://localhost:5173"}, cfg.GetCORSAllowedOrigins())
	assert.Equal(t, "tastereel-videos", cfg.GetVideoBucketName())
}

func TestNewConfigFromEnv(t *testing.T) {
	t.Setenv("APP_BASE_URL", "https://tastereel.example.com")
	t.Setenv("TOKEN_EXPIRY_HOURS", "24")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://app.example.com, https://admin.example.com")
	t.Setenv("VIDEO_BUCKET_NAME", "videos-prod")

	cfg := config.NewConfig()

	assert.Equal(t, "https://tastereel.example.com", cfg.GetAppBaseURL())
	assert.Equal(t, 24*time.Hour, cfg.GetTokenExpiry())
	assert.Equal(t, []string{"https://app.example.com", "https://admin.example.com"}, cfg.GetCORSAllowedOrigins())
	assert.Equal(t, "videos-prod", cfg.GetVideoBucketName())
}

func TestNewConfigBadExpiryFallsBack(t *testing.T) {
	t.Setenv("TOKEN_EXPIRY_HOURS", "not-a-number")

	cfg := config.NewConfig()

	assert.Equal(t, 168*time.Hour, cfg.GetTokenExpiry())
}
