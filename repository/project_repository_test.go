package repository

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/s-steel/steelsitebackend/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "repo_test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Project{}))
	return db
}

func seedProject(t *testing.T, repo *ProjectRepository, title, category, status string, featured bool) *models.Project {
	t.Helper()
	p := &models.Project{Title: title, Category: category, Status: status, Featured: featured}
	require.NoError(t, repo.Create(p))
	return p
}

func TestCreateDefaultsStatusActive(t *testing.T) {
	repo := NewProjectRepository(newTestDB(t))

	p := &models.Project{Title: "Warehouse Frame"}
	require.NoError(t, repo.Create(p))
	require.NotZero(t, p.ID)

	loaded, err := repo.GetByID(p.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ProjectStatusActive, loaded.Status)
	assert.NotZero(t, loaded.CreatedAt)
}

func TestListActiveFilters(t *testing.T) {
	repo := NewProjectRepository(newTestDB(t))

	seedProject(t, repo, "Bridge", "infrastructure", models.ProjectStatusActive, true)
	seedProject(t, repo, "Mall", "commercial", models.ProjectStatusActive, false)
	seedProject(t, repo, "Plant", "industrial", models.ProjectStatusActive, true)
	seedProject(t, repo, "Old Tower", "commercial", "archived", true)

	all, err := repo.ListActive(ProjectFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	featured, err := repo.ListActive(ProjectFilter{FeaturedOnly: true})
	require.NoError(t, err)
	require.Len(t, featured, 2)
	for _, p := range featured {
		assert.True(t, p.Featured)
	}

	commercial, err := repo.ListActive(ProjectFilter{Category: "commercial"})
	require.NoError(t, err)
	require.Len(t, commercial, 1)
	assert.Equal(t, "Mall", commercial[0].Title)

	limited, err := repo.ListActive(ProjectFilter{Limit: 2})
	require.NoError(t, err)
	assert.Len(t, limited, 2)
}

func TestGetActiveByIDExcludesArchived(t *testing.T) {
	repo := NewProjectRepository(newTestDB(t))

	archived := seedProject(t, repo, "Old Tower", "commercial", "archived", false)

	_, err := repo.GetActiveByID(archived.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	loaded, err := repo.GetByID(archived.ID)
	require.NoError(t, err)
	assert.Equal(t, "archived", loaded.Status)
}

func TestUpdateMissingProject(t *testing.T) {
	repo := NewProjectRepository(newTestDB(t))

	err := repo.Update(&models.Project{ID: 12345, Title: "Ghost"})
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestDeleteProject(t *testing.T) {
	repo := NewProjectRepository(newTestDB(t))

	p := seedProject(t, repo, "Bridge", "infrastructure", models.ProjectStatusActive, false)
	require.NoError(t, repo.Delete(p.ID))

	_, err := repo.GetByID(p.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	assert.ErrorIs(t, repo.Delete(p.ID), gorm.ErrRecordNotFound)
}
