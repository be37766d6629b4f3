package repository

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/s-steel/steelsitebackend/models"
)

// UserRepository handles database operations for admin user accounts
type UserRepository struct {
	DB *gorm.DB
}

// NewUserRepository creates a new instance of UserRepository
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

// Create inserts a new admin user
func (r *UserRepository) Create(user *models.User) error {
	now := time.Now().Unix()
	user.CreatedAt = now
	user.UpdatedAt = now
	if err := r.DB.Create(user).Error; err != nil {
		return fmt.Errorf("failed to create user %q: %w", user.Username, err)
	}
	return nil
}

// GetByID retrieves a user by id
func (r *UserRepository) GetByID(id uint) (*models.User, error) {
	var user models.User
	err := r.DB.First(&user, id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get user %d: %w", id, err)
	}
	return &user, nil
}

// GetByUsername retrieves a user by username
func (r *UserRepository) GetByUsername(username string) (*models.User, error) {
	var user models.User
	err := r.DB.Where("username = ?", username).First(&user).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get user %q: %w", username, err)
	}
	return &user, nil
}
