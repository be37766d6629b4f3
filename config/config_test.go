package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("DATABASE_PATH", "")
	t.Setenv("UPLOAD_STORAGE_PATH", "")
	t.Setenv("MAX_UPLOAD_MB", "")
	t.Setenv("JWT_SECRET", "")
	t.Setenv("CORS_ALLOWED_ORIGINS", "")
	t.Setenv("PUBLIC_BASE_URL", "")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "steel_website.db", cfg.DatabasePath)
	assert.Equal(t, int64(16*1024*1024), cfg.MaxUploadBytes)
	assert.Equal(t, 24, cfg.JWTExpirationHours)
	assert.NotEmpty(t, cfg.JWTSecret)
	assert.Equal(t, []string{"http://localhost:5173"}, cfg.AllowedOrigins)
	assert.Equal(t, "http://localhost:8080", cfg.PublicBaseURL)
	assert.Equal(t, "admin", cfg.DefaultAdminUsername)

	assert.True(t, filepath.IsAbs(cfg.UploadStoragePath))
	assert.Equal(t, filepath.Join(cfg.UploadStoragePath, DefaultProjectsSubDir), cfg.ProjectsPath)
	assert.Equal(t, filepath.Join(cfg.UploadStoragePath, DefaultGallerySubDir), cfg.GalleryPath)
}

func TestLoadConfigOverrides(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("DATABASE_PATH", filepath.Join(dir, "site.db"))
	t.Setenv("UPLOAD_STORAGE_PATH", filepath.Join(dir, "media"))
	t.Setenv("MAX_UPLOAD_MB", "32")
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("JWT_EXPIRATION_HOURS", "2")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example.com, https://b.example.com")
	t.Setenv("PUBLIC_BASE_URL", "https://cdn.example.com/")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, int64(32*1024*1024), cfg.MaxUploadBytes)
	assert.Equal(t, "test-secret", cfg.JWTSecret)
	assert.Equal(t, 2, cfg.JWTExpirationHours)
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.AllowedOrigins)
	// trailing slash is trimmed so URL joining stays predictable
	assert.Equal(t, "https://cdn.example.com", cfg.PublicBaseURL)
}

func TestLoadConfigInvalidInt(t *testing.T) {
	t.Setenv("MAX_UPLOAD_MB", "not-a-number")
	t.Setenv("JWT_SECRET", "test-secret")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, int64(16*1024*1024), cfg.MaxUploadBytes)
}
