package models

import "fmt"

// HeroGalleryOwner is the owner ref of the site-wide hero image gallery,
// which has no owning entity row.
const HeroGalleryOwner = "gallery"

// MediaAsset is a stored upload belonging to an owner's image set.
// It corresponds to the 'media_assets' table.
type MediaAsset struct {
	ID           uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	OwnerRef     string  `gorm:"not null;index" json:"-"`
	RelativePath string  `gorm:"not null" json:"path"` // relative to the upload storage root
	OriginalName string  `gorm:"not null" json:"name"`
	AltText      *string `gorm:"" json:"alt_text,omitempty"` // Nullable, hero images only
	IsMain       bool    `gorm:"not null;default:false" json:"is_main"`
	DisplayOrder int     `gorm:"not null;default:0" json:"display_order"`
	CreatedAt    int64   `gorm:"not null" json:"created_at"` // Unix timestamp
}

// TableName explicitly sets the table name for GORM.
func (MediaAsset) TableName() string {
	return "media_assets"
}

// ProjectOwnerRef builds the owner ref for a project's image set.
func ProjectOwnerRef(projectID uint) string {
	return fmt.Sprintf("project:%d", projectID)
}
