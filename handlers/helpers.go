package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/s-steel/steelsitebackend/config"
)

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			log.Printf("Error encoding JSON response: %v", err)
		}
	}
}

// idParam parses a numeric chi URL parameter
func idParam(r *http.Request, name string) (uint, error) {
	raw := chi.URLParam(r, name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

// uploadURL turns a stored relative path into the public URL the frontend
// uses unchanged to fetch the asset
func uploadURL(cfg config.Config, relativePath string) string {
	return cfg.PublicBaseURL + "/uploads/" + relativePath
}
