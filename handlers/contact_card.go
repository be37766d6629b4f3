package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/s-steel/steelsitebackend/models"
	"github.com/s-steel/steelsitebackend/repository"
)

type ContactCardHandler struct {
	Cards repository.ContactCardRepositoryInterface
}

func NewContactCardHandler(cards repository.ContactCardRepositoryInterface) *ContactCardHandler {
	return &ContactCardHandler{Cards: cards}
}

type contactCardPayload struct {
	Title        string `json:"title"`
	Details      string `json:"details"`
	SubDetails   string `json:"sub_details"`
	ContactType  string `json:"contact_type"`
	IconEmoji    string `json:"icon_emoji"`
	DisplayOrder int    `json:"display_order"`
	IsActive     *bool  `json:"is_active"`
}

func (p contactCardPayload) toModel() models.ContactCard {
	active := true
	if p.IsActive != nil {
		active = *p.IsActive
	}
	return models.ContactCard{
		Title:        p.Title,
		Details:      p.Details,
		SubDetails:   p.SubDetails,
		ContactType:  p.ContactType,
		IconEmoji:    p.IconEmoji,
		DisplayOrder: p.DisplayOrder,
		IsActive:     active,
	}
}

// ListPublicContactCards serves the active cards in display order, in the
// shape the public contact page renders.
func (h *ContactCardHandler) ListPublicContactCards(w http.ResponseWriter, r *http.Request) {
	cards, err := h.Cards.ListActive()
	if err != nil {
		writeDomainError(w, err, "")
		return
	}

	items := make([]map[string]interface{}, len(cards))
	for i, c := range cards {
		emoji := c.IconEmoji
		if emoji == "" {
			emoji = "📞"
		}
		items[i] = map[string]interface{}{
			"id":         c.ID,
			"title":      c.Title,
			"details":    c.Details,
			"subDetails": c.SubDetails,
			"emoji":      emoji,
			"gradient":   "from-blue-500 to-purple-600",
			"verified":   true,
		}
	}
	writeJSON(w, http.StatusOK, items)
}

// ListContactCards returns every card, active or not, for the admin panel.
func (h *ContactCardHandler) ListContactCards(w http.ResponseWriter, r *http.Request) {
	cards, err := h.Cards.ListAll()
	if err != nil {
		writeDomainError(w, err, "")
		return
	}
	writeJSON(w, http.StatusOK, cards)
}

// CreateContactCard adds a contact card.
func (h *ContactCardHandler) CreateContactCard(w http.ResponseWriter, r *http.Request) {
	var payload contactCardPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		WriteAPIError(w, http.StatusBadRequest, CodeInvalidArgument, "Invalid request body")
		return
	}
	if strings.TrimSpace(payload.Title) == "" {
		WriteAPIError(w, http.StatusBadRequest, CodeInvalidArgument, "Missing required field: title")
		return
	}

	card := payload.toModel()
	if err := h.Cards.Create(&card); err != nil {
		writeDomainError(w, err, "")
		return
	}
	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "Contact card created successfully",
		"id":      card.ID,
	})
}

// UpdateContactCard replaces a card's fields.
func (h *ContactCardHandler) UpdateContactCard(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "card_id")
	if err != nil {
		WriteAPIError(w, http.StatusBadRequest, CodeInvalidArgument, "Invalid card id")
		return
	}

	var payload contactCardPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		WriteAPIError(w, http.StatusBadRequest, CodeInvalidArgument, "Invalid request body")
		return
	}
	if strings.TrimSpace(payload.Title) == "" {
		WriteAPIError(w, http.StatusBadRequest, CodeInvalidArgument, "Missing required field: title")
		return
	}

	card := payload.toModel()
	card.ID = id
	if err := h.Cards.Update(&card); err != nil {
		writeDomainError(w, err, "Contact card not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Contact card updated successfully"})
}

// DeleteContactCard removes a card.
func (h *ContactCardHandler) DeleteContactCard(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "card_id")
	if err != nil {
		WriteAPIError(w, http.StatusBadRequest, CodeInvalidArgument, "Invalid card id")
		return
	}

	if err := h.Cards.Delete(id); err != nil {
		writeDomainError(w, err, "Contact card not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Contact card deleted successfully"})
}
