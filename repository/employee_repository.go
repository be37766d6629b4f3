package repository

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/s-steel/steelsitebackend/models"
)

// EmployeeRepository handles database operations for Employee entities
type EmployeeRepository struct {
	DB *gorm.DB
}

// NewEmployeeRepository creates a new instance of EmployeeRepository
func NewEmployeeRepository(db *gorm.DB) *EmployeeRepository {
	return &EmployeeRepository{DB: db}
}

// Create inserts a new employee
func (r *EmployeeRepository) Create(employee *models.Employee) error {
	employee.CreatedAt = time.Now().Unix()
	if err := r.DB.Create(employee).Error; err != nil {
		return fmt.Errorf("failed to create employee %q: %w", employee.Name, err)
	}
	return nil
}

// GetByID retrieves an employee by id
func (r *EmployeeRepository) GetByID(id uint) (*models.Employee, error) {
	var employee models.Employee
	err := r.DB.First(&employee, id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get employee %d: %w", id, err)
	}
	return &employee, nil
}

// ListActive returns employees shown on the public site, in display order
func (r *EmployeeRepository) ListActive() ([]models.Employee, error) {
	employees := []models.Employee{}
	err := r.DB.Where("is_active = ?", true).
		Order("display_order ASC, name ASC").
		Find(&employees).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list active employees: %w", err)
	}
	return employees, nil
}

// ListAll returns every employee for admin management
func (r *EmployeeRepository) ListAll() ([]models.Employee, error) {
	employees := []models.Employee{}
	err := r.DB.Order("display_order ASC, name ASC").Find(&employees).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	return employees, nil
}

// Update persists changes to an existing employee
func (r *EmployeeRepository) Update(employee *models.Employee) error {
	result := r.DB.Model(&models.Employee{}).Where("id = ?", employee.ID).Updates(map[string]interface{}{
		"name":             employee.Name,
		"role":             employee.Role,
		"experience_years": employee.ExperienceYears,
		"specialty":        employee.Specialty,
		"bio":              employee.Bio,
		"email":            employee.Email,
		"phone":            employee.Phone,
		"avatar_url":       employee.AvatarURL,
		"display_order":    employee.DisplayOrder,
		"is_active":        employee.IsActive,
	})
	if result.Error != nil {
		return fmt.Errorf("failed to update employee %d: %w", employee.ID, result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete removes an employee row
func (r *EmployeeRepository) Delete(id uint) error {
	result := r.DB.Delete(&models.Employee{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete employee %d: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
