package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/s-steel/steelsitebackend/models"
	"github.com/s-steel/steelsitebackend/realtime"
	"github.com/s-steel/steelsitebackend/repository"
)

type ContactHandler struct {
	Contacts repository.ContactRepositoryInterface
	Hub      *realtime.Hub
}

func NewContactHandler(contacts repository.ContactRepositoryInterface, hub *realtime.Hub) *ContactHandler {
	return &ContactHandler{Contacts: contacts, Hub: hub}
}

type contactPayload struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Company string `json:"company"`
	Message string `json:"message"`
}

// SubmitContact records a public contact-form inquiry with status new.
func (h *ContactHandler) SubmitContact(w http.ResponseWriter, r *http.Request) {
	var payload contactPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		WriteAPIError(w, http.StatusBadRequest, CodeInvalidArgument, "Invalid request body")
		return
	}
	if strings.TrimSpace(payload.Name) == "" || strings.TrimSpace(payload.Email) == "" {
		WriteAPIError(w, http.StatusBadRequest, CodeInvalidArgument, "Missing required fields: name, email")
		return
	}

	contact := models.Contact{
		Name:    payload.Name,
		Email:   payload.Email,
		Phone:   payload.Phone,
		Company: payload.Company,
		Message: payload.Message,
	}
	if err := h.Contacts.Create(&contact); err != nil {
		writeDomainError(w, err, "")
		return
	}

	h.Hub.Notify(realtime.EventContactReceived, "", contact.Name)
	writeJSON(w, http.StatusCreated, map[string]string{"message": "Contact form submitted successfully"})
}

// ListContacts returns all inquiries, newest first.
func (h *ContactHandler) ListContacts(w http.ResponseWriter, r *http.Request) {
	contacts, err := h.Contacts.ListAll()
	if err != nil {
		writeDomainError(w, err, "")
		return
	}
	writeJSON(w, http.StatusOK, contacts)
}

// UpdateContactStatus changes an inquiry's workflow status.
func (h *ContactHandler) UpdateContactStatus(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "contact_id")
	if err != nil {
		WriteAPIError(w, http.StatusBadRequest, CodeInvalidArgument, "Invalid contact id")
		return
	}

	var payload struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		WriteAPIError(w, http.StatusBadRequest, CodeInvalidArgument, "Invalid request body")
		return
	}
	if strings.TrimSpace(payload.Status) == "" {
		WriteAPIError(w, http.StatusBadRequest, CodeInvalidArgument, "Missing required field: status")
		return
	}

	if err := h.Contacts.UpdateStatus(id, payload.Status); err != nil {
		writeDomainError(w, err, "Contact not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Contact status updated successfully"})
}

// DeleteContact removes an inquiry.
func (h *ContactHandler) DeleteContact(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "contact_id")
	if err != nil {
		WriteAPIError(w, http.StatusBadRequest, CodeInvalidArgument, "Invalid contact id")
		return
	}

	if err := h.Contacts.Delete(id); err != nil {
		writeDomainError(w, err, "Contact not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Contact deleted successfully"})
}
