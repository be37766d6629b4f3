package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/s-steel/steelsitebackend/media"
	"github.com/s-steel/steelsitebackend/models"
	"github.com/s-steel/steelsitebackend/realtime"
)

// UploadProjectImages accepts a multipart batch under the "files" field plus
// an optional is_main form value. Files are processed in input order; invalid
// files are skipped and only the stored subset is returned.
func (h *ProjectHandler) UploadProjectImages(w http.ResponseWriter, r *http.Request) {
	projectID, err := idParam(r, "project_id")
	if err != nil {
		WriteAPIError(w, http.StatusBadRequest, CodeInvalidArgument, "Invalid project id")
		return
	}

	if _, err := h.Projects.GetByID(projectID); err != nil {
		writeDomainError(w, err, "Project not found")
		return
	}

	// cap payload size before any storage happens
	r.Body = http.MaxBytesReader(w, r.Body, h.Cfg.MaxUploadBytes)
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		WriteAPIError(w, http.StatusBadRequest, CodeInvalidArgument, "Invalid multipart form: "+err.Error())
		return
	}

	fileHeaders := r.MultipartForm.File["files"]
	if len(fileHeaders) == 0 {
		WriteAPIError(w, http.StatusBadRequest, CodeInvalidArgument, "No files uploaded")
		return
	}
	requestedMain := strings.EqualFold(r.FormValue("is_main"), "true")

	uploads := make([]media.Upload, 0, len(fileHeaders))
	for _, header := range fileHeaders {
		file, err := header.Open()
		if err != nil {
			WriteAPIError(w, http.StatusBadRequest, CodeInvalidArgument, "Could not read uploaded file "+header.Filename)
			return
		}
		defer file.Close()
		uploads = append(uploads, media.Upload{Filename: header.Filename, Data: file})
	}

	ownerRef := models.ProjectOwnerRef(projectID)
	stored, err := h.Gallery.UploadBatch(ownerRef, uploads, requestedMain)
	if err != nil {
		writeDomainError(w, err, "")
		return
	}
	if len(stored) == 0 {
		WriteAPIError(w, http.StatusUnsupportedMediaType, CodeUnsupportedMediaType, "No supported image files were uploaded")
		return
	}

	files := make([]imageResponse, len(stored))
	for i, asset := range stored {
		files[i] = assetResponse(h.Cfg, asset)
	}

	h.Hub.Notify(realtime.EventGalleryChanged, ownerRef, "uploaded")
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message": fmt.Sprintf("%d files uploaded successfully", len(stored)),
		"files":   files,
	})
}

// ListProjectImages returns all images for a project, main image first.
func (h *ProjectHandler) ListProjectImages(w http.ResponseWriter, r *http.Request) {
	projectID, err := idParam(r, "project_id")
	if err != nil {
		WriteAPIError(w, http.StatusBadRequest, CodeInvalidArgument, "Invalid project id")
		return
	}

	assets, err := h.Gallery.ListAssets(models.ProjectOwnerRef(projectID))
	if err != nil {
		writeDomainError(w, err, "")
		return
	}

	images := make([]imageResponse, len(assets))
	for i, asset := range assets {
		images[i] = assetResponse(h.Cfg, asset)
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"images": images})
}

// DeleteProjectImage removes one image row and best-effort deletes its file.
// Deleting the main image leaves the project with no main image.
func (h *ProjectHandler) DeleteProjectImage(w http.ResponseWriter, r *http.Request) {
	projectID, err := idParam(r, "project_id")
	if err != nil {
		WriteAPIError(w, http.StatusBadRequest, CodeInvalidArgument, "Invalid project id")
		return
	}
	imageID, err := idParam(r, "image_id")
	if err != nil {
		WriteAPIError(w, http.StatusBadRequest, CodeInvalidArgument, "Invalid image id")
		return
	}

	ownerRef := models.ProjectOwnerRef(projectID)
	if err := h.Gallery.DeleteAsset(ownerRef, imageID); err != nil {
		writeDomainError(w, err, "Image not found")
		return
	}

	h.Hub.Notify(realtime.EventGalleryChanged, ownerRef, "deleted")
	writeJSON(w, http.StatusOK, map[string]string{"message": "Image deleted successfully"})
}

// SetMainProjectImage designates an image as the project's main image.
func (h *ProjectHandler) SetMainProjectImage(w http.ResponseWriter, r *http.Request) {
	projectID, err := idParam(r, "project_id")
	if err != nil {
		WriteAPIError(w, http.StatusBadRequest, CodeInvalidArgument, "Invalid project id")
		return
	}
	imageID, err := idParam(r, "image_id")
	if err != nil {
		WriteAPIError(w, http.StatusBadRequest, CodeInvalidArgument, "Invalid image id")
		return
	}

	ownerRef := models.ProjectOwnerRef(projectID)
	if err := h.Gallery.SetMain(ownerRef, imageID); err != nil {
		writeDomainError(w, err, "Image not found")
		return
	}

	h.Hub.Notify(realtime.EventGalleryChanged, ownerRef, "main_changed")
	writeJSON(w, http.StatusOK, map[string]string{"message": "Main image updated successfully"})
}
