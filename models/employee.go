package models

// Employee represents a team member shown on the public site.
// It corresponds to the 'employees' table.
type Employee struct {
	ID              uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name            string `gorm:"not null" json:"name"`
	Role            string `gorm:"" json:"role"`
	ExperienceYears *int   `gorm:"" json:"experience_years,omitempty"` // Nullable
	Specialty       string `gorm:"" json:"specialty"`
	Bio             string `gorm:"" json:"bio"`
	Email           string `gorm:"" json:"email"`
	Phone           string `gorm:"" json:"phone"`
	AvatarURL       string `gorm:"" json:"avatar_url"`
	DisplayOrder    int    `gorm:"not null;default:0" json:"display_order"`
	IsActive        bool   `gorm:"not null;default:true" json:"is_active"`
	CreatedAt       int64  `gorm:"not null" json:"created_at"` // Unix timestamp
}

// TableName explicitly sets the table name for GORM.
func (Employee) TableName() string {
	return "employees"
}
