package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/s-steel/steelsitebackend/config"
	"github.com/s-steel/steelsitebackend/media"
	"github.com/s-steel/steelsitebackend/models"
	"github.com/s-steel/steelsitebackend/realtime"
	"github.com/s-steel/steelsitebackend/repository"
)

type ProjectHandler struct {
	Projects repository.ProjectRepositoryInterface
	Assets   repository.AssetRepositoryInterface
	Gallery  *media.Gallery
	Hub      *realtime.Hub
	Cfg      config.Config
}

// projectListItem is a project row plus its main-image URL for listings
type projectListItem struct {
	models.Project
	MainImage *string `json:"main_image"`
	Image     *string `json:"image"`
}

// imageResponse is the wire shape of a media asset
type imageResponse struct {
	ID        uint   `json:"id"`
	URL       string `json:"url"`
	Path      string `json:"path"`
	Name      string `json:"name"`
	IsMain    bool   `json:"is_main"`
	CreatedAt int64  `json:"created_at"`
}

func assetResponse(cfg config.Config, asset models.MediaAsset) imageResponse {
	return imageResponse{
		ID:        asset.ID,
		URL:       uploadURL(cfg, asset.RelativePath),
		Path:      asset.RelativePath,
		Name:      asset.OriginalName,
		IsMain:    asset.IsMain,
		CreatedAt: asset.CreatedAt,
	}
}

type projectPayload struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Location    string `json:"location"`
	Size        string `json:"size"`
	Year        string `json:"year"`
	Featured    bool   `json:"featured"`
	Status      string `json:"status"`
}

// ListProjects serves the public project listing with optional featured,
// category and limit filters; each item carries its main-image URL.
func (h *ProjectHandler) ListProjects(w http.ResponseWriter, r *http.Request) {
	filter := repository.ProjectFilter{
		FeaturedOnly: r.URL.Query().Get("featured") != "",
		Category:     r.URL.Query().Get("category"),
	}
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		if limit, err := strconv.Atoi(limitStr); err == nil && limit > 0 {
			filter.Limit = limit
		}
	}

	projects, err := h.Projects.ListActive(filter)
	if err != nil {
		writeDomainError(w, err, "")
		return
	}

	ownerRefs := make([]string, len(projects))
	for i, p := range projects {
		ownerRefs[i] = models.ProjectOwnerRef(p.ID)
	}
	mains, err := h.Assets.MainByOwnerRefs(ownerRefs)
	if err != nil {
		writeDomainError(w, err, "")
		return
	}

	items := make([]projectListItem, len(projects))
	for i, p := range projects {
		item := projectListItem{Project: p}
		if main, ok := mains[models.ProjectOwnerRef(p.ID)]; ok {
			url := uploadURL(h.Cfg, main.RelativePath)
			item.MainImage = &url
			item.Image = &url
		}
		items[i] = item
	}
	writeJSON(w, http.StatusOK, items)
}

// GetProject serves a single active project with its full image set.
func (h *ProjectHandler) GetProject(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "project_id")
	if err != nil {
		WriteAPIError(w, http.StatusBadRequest, CodeInvalidArgument, "Invalid project id")
		return
	}

	project, err := h.Projects.GetActiveByID(id)
	if err != nil {
		writeDomainError(w, err, "Project not found")
		return
	}

	assets, err := h.Gallery.ListAssets(models.ProjectOwnerRef(project.ID))
	if err != nil {
		writeDomainError(w, err, "")
		return
	}

	images := make([]imageResponse, len(assets))
	var mainImage *string
	for i, asset := range assets {
		images[i] = assetResponse(h.Cfg, asset)
		if asset.IsMain {
			url := images[i].URL
			mainImage = &url
		}
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"id":          project.ID,
		"title":       project.Title,
		"description": project.Description,
		"category":    project.Category,
		"location":    project.Location,
		"size":        project.Size,
		"year":        project.Year,
		"featured":    project.Featured,
		"status":      project.Status,
		"created_at":  project.CreatedAt,
		"updated_at":  project.UpdatedAt,
		"images":      images,
		"main_image":  mainImage,
	})
}

// CreateProject creates a project without images.
func (h *ProjectHandler) CreateProject(w http.ResponseWriter, r *http.Request) {
	var payload projectPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		WriteAPIError(w, http.StatusBadRequest, CodeInvalidArgument, "Invalid request body")
		return
	}
	if strings.TrimSpace(payload.Title) == "" {
		WriteAPIError(w, http.StatusBadRequest, CodeInvalidArgument, "Missing required field: title")
		return
	}

	project := models.Project{
		Title:       payload.Title,
		Description: payload.Description,
		Category:    payload.Category,
		Location:    payload.Location,
		Size:        payload.Size,
		Year:        payload.Year,
		Featured:    payload.Featured,
		Status:      payload.Status,
	}
	if err := h.Projects.Create(&project); err != nil {
		writeDomainError(w, err, "")
		return
	}

	h.Hub.Notify(realtime.EventProjectChanged, models.ProjectOwnerRef(project.ID), "created")
	writeJSON(w, http.StatusCreated, project)
}

// UpdateProject updates an existing project's fields.
func (h *ProjectHandler) UpdateProject(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "project_id")
	if err != nil {
		WriteAPIError(w, http.StatusBadRequest, CodeInvalidArgument, "Invalid project id")
		return
	}

	var payload projectPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		WriteAPIError(w, http.StatusBadRequest, CodeInvalidArgument, "Invalid request body")
		return
	}
	if strings.TrimSpace(payload.Title) == "" {
		WriteAPIError(w, http.StatusBadRequest, CodeInvalidArgument, "Missing required field: title")
		return
	}

	status := payload.Status
	if status == "" {
		status = models.ProjectStatusActive
	}
	project := models.Project{
		ID:          id,
		Title:       payload.Title,
		Description: payload.Description,
		Category:    payload.Category,
		Location:    payload.Location,
		Size:        payload.Size,
		Year:        payload.Year,
		Featured:    payload.Featured,
		Status:      status,
	}
	if err := h.Projects.Update(&project); err != nil {
		writeDomainError(w, err, "Project not found")
		return
	}

	h.Hub.Notify(realtime.EventProjectChanged, models.ProjectOwnerRef(id), "updated")
	writeJSON(w, http.StatusOK, map[string]string{"message": "Project updated successfully"})
}

// DeleteProject removes a project together with its asset rows and files.
// Row deletions are authoritative; file removal is best-effort.
func (h *ProjectHandler) DeleteProject(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "project_id")
	if err != nil {
		WriteAPIError(w, http.StatusBadRequest, CodeInvalidArgument, "Invalid project id")
		return
	}

	if _, err := h.Projects.GetByID(id); err != nil {
		writeDomainError(w, err, "Project not found")
		return
	}

	if err := h.Gallery.DeleteOwner(models.ProjectOwnerRef(id)); err != nil {
		writeDomainError(w, err, "")
		return
	}
	if err := h.Projects.Delete(id); err != nil {
		writeDomainError(w, err, "Project not found")
		return
	}

	h.Hub.Notify(realtime.EventProjectChanged, models.ProjectOwnerRef(id), "deleted")
	writeJSON(w, http.StatusOK, map[string]string{"message": "Project deleted successfully"})
}
