package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/s-steel/steelsitebackend/config"
	"github.com/s-steel/steelsitebackend/media"
	"github.com/s-steel/steelsitebackend/models"
	"github.com/s-steel/steelsitebackend/realtime"
	"github.com/s-steel/steelsitebackend/settings"
)

type HomeContentHandler struct {
	Settings *settings.Store
	Gallery  *media.Gallery
	Hub      *realtime.Hub
	Cfg      config.Config
}

type heroImageResponse struct {
	ID  uint   `json:"id"`
	URL string `json:"url"`
	Alt string `json:"alt"`
}

// heroPlaceholders are served until an admin uploads real hero images.
func heroPlaceholders() []heroImageResponse {
	return []heroImageResponse{
		{ID: 1, URL: "/api/placeholder/800/600", Alt: "Steel Construction Project 1"},
		{ID: 2, URL: "/api/placeholder/800/600", Alt: "Steel Construction Project 2"},
		{ID: 3, URL: "/api/placeholder/800/600", Alt: "Steel Construction Project 3"},
	}
}

func statValue(content map[string]string, key string, fallback int) int {
	if raw, ok := content[key]; ok {
		if n, err := strconv.Atoi(strings.TrimSpace(raw)); err == nil {
			return n
		}
	}
	return fallback
}

// GetHomeContent serves the landing-page payload: hero images, company
// description and headline stats. Shared by the public site and the admin
// panel.
func (h *HomeContentHandler) GetHomeContent(w http.ResponseWriter, r *http.Request) {
	rows, err := h.Settings.Repo.ListByPrefix("")
	if err != nil {
		writeDomainError(w, err, "")
		return
	}
	content := make(map[string]string, len(rows))
	for _, row := range rows {
		content[row.Key] = row.Value
	}

	assets, err := h.Gallery.ListAssets(models.HeroGalleryOwner)
	if err != nil {
		writeDomainError(w, err, "")
		return
	}

	heroImages := make([]heroImageResponse, 0, len(assets))
	for _, asset := range assets {
		alt := fmt.Sprintf("Hero Image %d", asset.ID)
		if asset.AltText != nil && *asset.AltText != "" {
			alt = *asset.AltText
		}
		heroImages = append(heroImages, heroImageResponse{
			ID:  asset.ID,
			URL: uploadURL(h.Cfg, asset.RelativePath),
			Alt: alt,
		})
	}
	if len(heroImages) == 0 {
		heroImages = heroPlaceholders()
	}

	description := content["company_description"]
	if description == "" {
		description = "S-Steel Construction is a leading provider of steel construction services."
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"heroImages":         heroImages,
		"companyDescription": description,
		"stats": map[string]int{
			"yearsExperience":    statValue(content, "years_experience", 15),
			"projectsCompleted":  statValue(content, "projects_completed", 500),
			"teamMembers":        statValue(content, "team_members", 50),
			"clientSatisfaction": statValue(content, "client_satisfaction", 99),
		},
	})
}

// UpdateDescription stores the company description shown on the landing page.
func (h *HomeContentHandler) UpdateDescription(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Description string `json:"description"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		WriteAPIError(w, http.StatusBadRequest, CodeInvalidArgument, "Invalid request body")
		return
	}

	if err := h.Settings.SetMany(settings.Company, map[string]interface{}{
		"description": payload.Description,
	}); err != nil {
		writeDomainError(w, err, "")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Company description updated successfully"})
}

// UpdateStats stores the headline stats. Stats without a value in the payload
// are left untouched.
func (h *HomeContentHandler) UpdateStats(w http.ResponseWriter, r *http.Request) {
	var payload map[string]interface{}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		WriteAPIError(w, http.StatusBadRequest, CodeInvalidArgument, "Invalid request body")
		return
	}

	// payload keys are camelCase, storage keys are snake_case
	statKeys := map[string]string{
		"yearsExperience":    "years_experience",
		"projectsCompleted":  "projects_completed",
		"teamMembers":        "team_members",
		"clientSatisfaction": "client_satisfaction",
	}
	for payloadKey, storageKey := range statKeys {
		raw, ok := payload[payloadKey]
		if !ok || raw == nil {
			continue
		}
		value := strings.TrimSpace(fmt.Sprintf("%v", raw))
		if value == "" {
			continue
		}
		if f, isFloat := raw.(float64); isFloat {
			value = strconv.FormatInt(int64(f), 10)
		}
		if err := h.Settings.Repo.Upsert(storageKey, value); err != nil {
			writeDomainError(w, err, "")
			return
		}
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Statistics updated successfully"})
}

// UploadHeroImages accepts hero uploads under either the images field
// (multiple) or the image field (single). Hero images never carry a main flag.
func (h *HomeContentHandler) UploadHeroImages(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.Cfg.MaxUploadBytes)
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		WriteAPIError(w, http.StatusBadRequest, CodeInvalidArgument, "Invalid multipart form: "+err.Error())
		return
	}

	fileHeaders := r.MultipartForm.File["images"]
	if len(fileHeaders) == 0 {
		fileHeaders = r.MultipartForm.File["image"]
	}
	if len(fileHeaders) == 0 {
		WriteAPIError(w, http.StatusBadRequest, CodeInvalidArgument, "No image files provided")
		return
	}

	uploads := make([]media.Upload, 0, len(fileHeaders))
	for i, header := range fileHeaders {
		file, err := header.Open()
		if err != nil {
			WriteAPIError(w, http.StatusBadRequest, CodeInvalidArgument, "Could not read uploaded file "+header.Filename)
			return
		}
		defer file.Close()
		alt := fmt.Sprintf("Hero Image %d", i+1)
		uploads = append(uploads, media.Upload{Filename: header.Filename, Data: file, AltText: &alt})
	}

	stored, err := h.Gallery.UploadBatch(models.HeroGalleryOwner, uploads, false)
	if err != nil {
		writeDomainError(w, err, "")
		return
	}
	if len(stored) == 0 {
		WriteAPIError(w, http.StatusBadRequest, CodeInvalidArgument, "No valid image files were uploaded")
		return
	}

	images := make([]map[string]interface{}, len(stored))
	for i, asset := range stored {
		alt := ""
		if asset.AltText != nil {
			alt = *asset.AltText
		}
		images[i] = map[string]interface{}{
			"id":       asset.ID,
			"url":      uploadURL(h.Cfg, asset.RelativePath),
			"alt":      alt,
			"filename": asset.RelativePath,
		}
	}

	h.Hub.Notify(realtime.EventGalleryChanged, models.HeroGalleryOwner, "uploaded")
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message": fmt.Sprintf("%d image(s) uploaded successfully", len(stored)),
		"images":  images,
	})
}

// DeleteHeroImage removes a hero image row and best-effort deletes its file.
func (h *HomeContentHandler) DeleteHeroImage(w http.ResponseWriter, r *http.Request) {
	imageID, err := idParam(r, "image_id")
	if err != nil {
		WriteAPIError(w, http.StatusBadRequest, CodeInvalidArgument, "Invalid image id")
		return
	}

	if err := h.Gallery.DeleteAsset(models.HeroGalleryOwner, imageID); err != nil {
		writeDomainError(w, err, "Image not found")
		return
	}

	h.Hub.Notify(realtime.EventGalleryChanged, models.HeroGalleryOwner, "deleted")
	writeJSON(w, http.StatusOK, map[string]string{"message": "Image deleted successfully"})
}
