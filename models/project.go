package models

// ProjectStatusActive is the status public listings filter on.
const ProjectStatusActive = "active"

// Project represents a construction project in the database.
// It corresponds to the 'projects' table. A project owns zero or more
// MediaAsset rows keyed by ProjectOwnerRef(ID); asset rows and files are
// removed together with the project (application-level cascade, because
// filesystem cleanup has to happen in the same logical operation).
type Project struct {
	ID          uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Title       string `gorm:"not null" json:"title"`
	Description string `gorm:"" json:"description"`
	Category    string `gorm:"" json:"category"`
	Location    string `gorm:"" json:"location"`
	Size        string `gorm:"" json:"size"`
	Year        string `gorm:"" json:"year"`
	Featured    bool   `gorm:"not null;default:false" json:"featured"`
	Status      string `gorm:"not null;default:active" json:"status"`
	CreatedAt   int64  `gorm:"not null" json:"created_at"` // Unix timestamp
	UpdatedAt   int64  `gorm:"not null" json:"updated_at"` // Unix timestamp
}

// TableName explicitly sets the table name for GORM.
func (Project) TableName() string {
	return "projects"
}
