package database

import (
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"

	"github.com/s-steel/steelsitebackend/models"
)

// defaultHomeContent is inserted on first start so the public site has
// something to render before an admin edits anything.
var defaultHomeContent = map[string]string{
	"company_description": "S-Steel Construction is a leading provider of steel construction services with over 15 years of experience in delivering high-quality projects.",
	"years_experience":    "15",
	"projects_completed":  "500",
	"team_members":        "50",
	"client_satisfaction": "99",
}

// SeedDefaults inserts the default admin account and the default home-content
// settings rows when they are absent. Existing rows are never overwritten.
func SeedDefaults(db *gorm.DB, adminUsername, adminPassword string) error {
	now := time.Now().Unix()

	for key, value := range defaultHomeContent {
		setting := models.Setting{Key: key, Value: value, UpdatedAt: now}
		result := db.Where(models.Setting{Key: key}).Attrs(setting).FirstOrCreate(&setting)
		if result.Error != nil {
			return fmt.Errorf("failed to seed setting %s: %w", key, result.Error)
		}
	}

	var count int64
	if err := db.Model(&models.User{}).Where("username = ?", adminUsername).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check for admin user: %w", err)
	}
	if count == 0 {
		admin := models.User{Username: adminUsername, CreatedAt: now, UpdatedAt: now}
		if err := admin.SetPassword(adminPassword); err != nil {
			return fmt.Errorf("failed to hash default admin password: %w", err)
		}
		if err := db.Create(&admin).Error; err != nil {
			return fmt.Errorf("failed to create default admin user: %w", err)
		}
		log.Printf("Created default admin user '%s'", adminUsername)
	}

	return nil
}
