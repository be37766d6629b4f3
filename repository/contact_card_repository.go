package repository

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/s-steel/steelsitebackend/models"
)

// ContactCardRepository handles database operations for ContactCard entities
type ContactCardRepository struct {
	DB *gorm.DB
}

// NewContactCardRepository creates a new instance of ContactCardRepository
func NewContactCardRepository(db *gorm.DB) *ContactCardRepository {
	return &ContactCardRepository{DB: db}
}

// Create inserts a new contact card
func (r *ContactCardRepository) Create(card *models.ContactCard) error {
	card.CreatedAt = time.Now().Unix()
	if err := r.DB.Create(card).Error; err != nil {
		return fmt.Errorf("failed to create contact card %q: %w", card.Title, err)
	}
	return nil
}

// GetByID retrieves a contact card by id
func (r *ContactCardRepository) GetByID(id uint) (*models.ContactCard, error) {
	var card models.ContactCard
	err := r.DB.First(&card, id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get contact card %d: %w", id, err)
	}
	return &card, nil
}

// ListActive returns cards shown on the public site, in display order
func (r *ContactCardRepository) ListActive() ([]models.ContactCard, error) {
	cards := []models.ContactCard{}
	err := r.DB.Where("is_active = ?", true).
		Order("display_order ASC, title ASC").
		Find(&cards).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list active contact cards: %w", err)
	}
	return cards, nil
}

// ListAll returns every card for admin management
func (r *ContactCardRepository) ListAll() ([]models.ContactCard, error) {
	cards := []models.ContactCard{}
	err := r.DB.Order("display_order ASC, title ASC").Find(&cards).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list contact cards: %w", err)
	}
	return cards, nil
}

// Update persists changes to an existing card
func (r *ContactCardRepository) Update(card *models.ContactCard) error {
	result := r.DB.Model(&models.ContactCard{}).Where("id = ?", card.ID).Updates(map[string]interface{}{
		"title":         card.Title,
		"details":       card.Details,
		"sub_details":   card.SubDetails,
		"contact_type":  card.ContactType,
		"icon_emoji":    card.IconEmoji,
		"display_order": card.DisplayOrder,
		"is_active":     card.IsActive,
	})
	if result.Error != nil {
		return fmt.Errorf("failed to update contact card %d: %w", card.ID, result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete removes a contact card row
func (r *ContactCardRepository) Delete(id uint) error {
	result := r.DB.Delete(&models.ContactCard{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete contact card %d: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
