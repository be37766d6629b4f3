package repository

import (
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/s-steel/steelsitebackend/models"
)

// SettingRepository handles database operations for Setting rows
type SettingRepository struct {
	DB *gorm.DB
}

// NewSettingRepository creates a new instance of SettingRepository
func NewSettingRepository(db *gorm.DB) *SettingRepository {
	return &SettingRepository{DB: db}
}

// ListByPrefix returns all rows whose key starts with the given prefix.
// An empty prefix returns every row.
func (r *SettingRepository) ListByPrefix(prefix string) ([]models.Setting, error) {
	var settings []models.Setting
	query := r.DB.Order("key ASC")
	if prefix != "" {
		query = query.Where("key LIKE ?", prefix+"%")
	}
	if err := query.Find(&settings).Error; err != nil {
		return nil, fmt.Errorf("failed to list settings with prefix %q: %w", prefix, err)
	}
	return settings, nil
}

// Upsert updates the row for key, inserting it when it does not exist.
func (r *SettingRepository) Upsert(key, value string) error {
	setting := models.Setting{
		Key:       key,
		Value:     value,
		UpdatedAt: time.Now().Unix(),
	}
	err := r.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&setting).Error
	if err != nil {
		return fmt.Errorf("failed to upsert setting %q: %w", key, err)
	}
	return nil
}

// Get retrieves a single setting row by its full key.
func (r *SettingRepository) Get(key string) (*models.Setting, error) {
	var setting models.Setting
	err := r.DB.Where("key = ?", key).First(&setting).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get setting %q: %w", key, err)
	}
	return &setting, nil
}
