package models

// ContactCard is a card shown on the public contact page (phone, email,
// office address and so on). It corresponds to the 'contact_cards' table.
type ContactCard struct {
	ID           uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Title        string `gorm:"not null" json:"title"`
	Details      string `gorm:"" json:"details"`
	SubDetails   string `gorm:"" json:"sub_details"`
	ContactType  string `gorm:"" json:"contact_type"`
	IconEmoji    string `gorm:"" json:"icon_emoji"`
	DisplayOrder int    `gorm:"not null;default:0" json:"display_order"`
	IsActive     bool   `gorm:"not null;default:true" json:"is_active"`
	CreatedAt    int64  `gorm:"not null" json:"created_at"` // Unix timestamp
}

// TableName explicitly sets the table name for GORM.
func (ContactCard) TableName() string {
	return "contact_cards"
}
