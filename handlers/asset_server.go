package handlers

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// UploadServer creates a handler serving stored upload files from the upload
// storage directory. Example usage in main.go:
//
//	r.Get("/uploads/*", UploadServer(cfg.UploadStoragePath))
//
// Request paths are relative to the storage root, e.g.
// /uploads/projects/<uuid>_photo.jpg.
func UploadServer(baseStoragePath string) http.HandlerFunc {
	uploadDirPath := filepath.Clean(baseStoragePath)

	return func(w http.ResponseWriter, r *http.Request) {
		relativePath := strings.TrimPrefix(r.URL.Path, "/uploads/")

		if relativePath == "" || strings.Contains(relativePath, "..") {
			http.Error(w, "Invalid upload path", http.StatusBadRequest)
			return
		}

		requestedPath := filepath.Clean(filepath.Join(uploadDirPath, relativePath))
		if !strings.HasPrefix(requestedPath, uploadDirPath) {
			http.Error(w, "Forbidden", http.StatusForbidden)
			return
		}

		if _, err := os.Stat(requestedPath); os.IsNotExist(err) {
			http.NotFound(w, r)
			return
		} else if err != nil {
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}

		cacheDuration := 24 * time.Hour
		w.Header().Set("Cache-Control", fmt.Sprintf("public, max-age=%d", int(cacheDuration.Seconds())))
		w.Header().Set("Expires", time.Now().Add(cacheDuration).Format(http.TimeFormat))

		http.ServeFile(w, r, requestedPath)
	}
}
