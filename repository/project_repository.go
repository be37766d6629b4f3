package repository

import (
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"gorm.io/gorm"

	"github.com/s-steel/steelsitebackend/models"
)

// sqlite uses ? placeholders
var sb = sq.StatementBuilder.PlaceholderFormat(sq.Question)

// ProjectRepository handles database operations for Project entities
type ProjectRepository struct {
	DB *gorm.DB
}

// NewProjectRepository creates a new instance of ProjectRepository
func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{DB: db}
}

// Create inserts a new project
func (r *ProjectRepository) Create(project *models.Project) error {
	now := time.Now().Unix()
	project.CreatedAt = now
	project.UpdatedAt = now
	if project.Status == "" {
		project.Status = models.ProjectStatusActive
	}
	if err := r.DB.Create(project).Error; err != nil {
		return fmt.Errorf("failed to create project %q: %w", project.Title, err)
	}
	return nil
}

// GetByID retrieves a project regardless of status (admin view)
func (r *ProjectRepository) GetByID(id uint) (*models.Project, error) {
	var project models.Project
	err := r.DB.First(&project, id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get project %d: %w", id, err)
	}
	return &project, nil
}

// GetActiveByID retrieves a project visible on the public site
func (r *ProjectRepository) GetActiveByID(id uint) (*models.Project, error) {
	var project models.Project
	err := r.DB.Where("id = ? AND status = ?", id, models.ProjectStatusActive).First(&project).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get active project %d: %w", id, err)
	}
	return &project, nil
}

// ListActive returns active projects, newest first, narrowed by the filter.
// The query is assembled dynamically with squirrel and run through GORM.
func (r *ProjectRepository) ListActive(filter ProjectFilter) ([]models.Project, error) {
	queryBuilder := sb.Select("id", "title", "description", "category", "location",
		"size", "year", "featured", "status", "created_at", "updated_at").
		From("projects").
		Where(sq.Eq{"status": models.ProjectStatusActive}).
		OrderBy("created_at DESC, id DESC")

	if filter.FeaturedOnly {
		queryBuilder = queryBuilder.Where(sq.Eq{"featured": true})
	}
	if filter.Category != "" && filter.Category != "all" {
		queryBuilder = queryBuilder.Where(sq.Eq{"category": filter.Category})
	}
	if filter.Limit > 0 {
		queryBuilder = queryBuilder.Limit(uint64(filter.Limit))
	}

	sqlStr, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build SQL for ListActive: %w", err)
	}

	projects := []models.Project{}
	if err := r.DB.Raw(sqlStr, args...).Scan(&projects).Error; err != nil {
		return nil, fmt.Errorf("failed to execute ListActive query: %w", err)
	}
	return projects, nil
}

// Update persists changes to an existing project
func (r *ProjectRepository) Update(project *models.Project) error {
	project.UpdatedAt = time.Now().Unix()
	result := r.DB.Model(&models.Project{}).Where("id = ?", project.ID).Updates(map[string]interface{}{
		"title":       project.Title,
		"description": project.Description,
		"category":    project.Category,
		"location":    project.Location,
		"size":        project.Size,
		"year":        project.Year,
		"featured":    project.Featured,
		"status":      project.Status,
		"updated_at":  project.UpdatedAt,
	})
	if result.Error != nil {
		return fmt.Errorf("failed to update project %d: %w", project.ID, result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete removes a project row. Associated media assets are handled by the
// gallery engine, not here.
func (r *ProjectRepository) Delete(id uint) error {
	result := r.DB.Delete(&models.Project{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete project %d: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
