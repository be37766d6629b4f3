package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

const (
	DefaultProjectsSubDir = "projects"
	DefaultGallerySubDir  = "gallery"
)

const (
	defaultMaxUploadMB        = 16
	defaultJWTExpirationHours = 24
	defaultPublicBaseURL      = "http://localhost:8080"
)

type Config struct {
	// database path
	DatabasePath string

	// upload storage configuration
	UploadStoragePath string // primary root for uploaded assets
	ProjectsPath      string // full-calculated path for project images
	GalleryPath       string // full-calculated path for hero gallery images

	// upload limits
	MaxUploadBytes int64

	// auth settings
	JWTSecret          string
	JWTExpirationHours int

	// default admin account, seeded on first start
	DefaultAdminUsername string
	DefaultAdminPassword string

	// public URL settings
	PublicBaseURL  string
	AllowedOrigins []string
}

func getEnvOrDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvIntOrDefault(envVar string, defaultVal int) int {
	valStr := os.Getenv(envVar)
	if valStr == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(valStr)
	if err != nil || val <= 0 {
		log.Printf("Warning: Invalid %s '%s'. Using default %d. Error: %v", envVar, valStr, defaultVal, err)
		return defaultVal
	}
	return val
}

func LoadConfig() (Config, error) {
	dbPath := getEnvOrDefault("DATABASE_PATH", "steel_website.db")

	uploadStorage := getEnvOrDefault("UPLOAD_STORAGE_PATH", filepath.Join(".", "uploads"))
	absUploadStorage, err := filepath.Abs(uploadStorage)
	if err != nil {
		return Config{}, fmt.Errorf("failed to get absolute path for upload storage '%s': %w", uploadStorage, err)
	}

	projectsSubDir := getEnvOrDefault("PROJECTS_SUBDIR", DefaultProjectsSubDir)
	absProjectsPath := filepath.Join(absUploadStorage, projectsSubDir)

	gallerySubDir := getEnvOrDefault("GALLERY_SUBDIR", DefaultGallerySubDir)
	absGalleryPath := filepath.Join(absUploadStorage, gallerySubDir)

	maxUploadMB := getEnvIntOrDefault("MAX_UPLOAD_MB", defaultMaxUploadMB)

	jwtSecret := getEnvOrDefault("JWT_SECRET", "")
	if jwtSecret == "" {
		jwtSecret = "dev-only-insecure-secret"
		log.Printf("Warning: JWT_SECRET not set, using an insecure development secret")
	}
	jwtExpiration := getEnvIntOrDefault("JWT_EXPIRATION_HOURS", defaultJWTExpirationHours)

	origins := getEnvOrDefault("CORS_ALLOWED_ORIGINS", "http://localhost:5173")
	allowedOrigins := strings.Split(origins, ",")
	for i := range allowedOrigins {
		allowedOrigins[i] = strings.TrimSpace(allowedOrigins[i])
	}

	cfg := Config{
		DatabasePath:         dbPath,
		UploadStoragePath:    absUploadStorage,
		ProjectsPath:         absProjectsPath,
		GalleryPath:          absGalleryPath,
		MaxUploadBytes:       int64(maxUploadMB) * 1024 * 1024,
		JWTSecret:            jwtSecret,
		JWTExpirationHours:   jwtExpiration,
		DefaultAdminUsername: getEnvOrDefault("DEFAULT_ADMIN_USERNAME", "admin"),
		DefaultAdminPassword: getEnvOrDefault("DEFAULT_ADMIN_PASSWORD", "admin123"),
		PublicBaseURL:        strings.TrimRight(getEnvOrDefault("PUBLIC_BASE_URL", defaultPublicBaseURL), "/"),
		AllowedOrigins:       allowedOrigins,
	}

	return cfg, nil
}
