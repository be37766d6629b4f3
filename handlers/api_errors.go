package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"gorm.io/gorm"

	"github.com/s-steel/steelsitebackend/media"
	"github.com/s-steel/steelsitebackend/settings"
)

// Error codes used in API responses. They map the internal error kinds:
// invalid_argument, unsupported_media_type, not_found, storage_failure.
const (
	CodeInvalidArgument      = "invalid_argument"
	CodeUnsupportedMediaType = "unsupported_media_type"
	CodeNotFound             = "not_found"
	CodeStorageFailure       = "storage_failure"
	CodeUnauthorized         = "unauthorized"
)

// APIErrorDetail represents a single error in the standardized error response.
type APIErrorDetail struct {
	Code   string `json:"code"`
	Status string `json:"status"`
	Detail string `json:"detail"`
}

// APIErrorResponse represents the standardized error response body.
type APIErrorResponse struct {
	Errors []APIErrorDetail `json:"errors"`
}

// WriteAPIError writes a standardized error response with the given HTTP status, code, and detail.
func WriteAPIError(w http.ResponseWriter, httpStatus int, code string, detail string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(httpStatus)

	resp := APIErrorResponse{
		Errors: []APIErrorDetail{
			{
				Code:   code,
				Status: strconv.Itoa(httpStatus),
				Detail: detail,
			},
		},
	}

	_ = json.NewEncoder(w).Encode(resp)
}

// writeDomainError maps an error from the repositories or the media layer to
// the right HTTP status. Anything unrecognized is a storage failure.
func writeDomainError(w http.ResponseWriter, err error, notFoundDetail string) {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		WriteAPIError(w, http.StatusNotFound, CodeNotFound, notFoundDetail)
	case errors.Is(err, media.ErrUnsupportedType):
		WriteAPIError(w, http.StatusUnsupportedMediaType, CodeUnsupportedMediaType, err.Error())
	case errors.Is(err, settings.ErrEmptyPayload):
		WriteAPIError(w, http.StatusBadRequest, CodeInvalidArgument, "No data provided")
	default:
		log.Printf("handlers: internal error: %v", err)
		WriteAPIError(w, http.StatusInternalServerError, CodeStorageFailure, "Internal server error")
	}
}
