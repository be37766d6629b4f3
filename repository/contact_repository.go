package repository

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/s-steel/steelsitebackend/models"
)

// ContactRepository handles database operations for contact inquiries
type ContactRepository struct {
	DB *gorm.DB
}

// NewContactRepository creates a new instance of ContactRepository
func NewContactRepository(db *gorm.DB) *ContactRepository {
	return &ContactRepository{DB: db}
}

// Create inserts a new inquiry with status "new"
func (r *ContactRepository) Create(contact *models.Contact) error {
	contact.CreatedAt = time.Now().Unix()
	if contact.Status == "" {
		contact.Status = models.ContactStatusNew
	}
	if err := r.DB.Create(contact).Error; err != nil {
		return fmt.Errorf("failed to create contact inquiry from %q: %w", contact.Email, err)
	}
	return nil
}

// ListAll returns all inquiries, newest first
func (r *ContactRepository) ListAll() ([]models.Contact, error) {
	contacts := []models.Contact{}
	err := r.DB.Order("created_at DESC, id DESC").Find(&contacts).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list contact inquiries: %w", err)
	}
	return contacts, nil
}

// UpdateStatus changes the triage status of an inquiry
func (r *ContactRepository) UpdateStatus(id uint, status string) error {
	result := r.DB.Model(&models.Contact{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		return fmt.Errorf("failed to update contact %d status: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete removes an inquiry
func (r *ContactRepository) Delete(id uint) error {
	result := r.DB.Delete(&models.Contact{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete contact %d: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
