package models

// ContactStatusNew is the status assigned to freshly submitted inquiries.
const ContactStatusNew = "new"

// Contact is a contact-form inquiry submitted through the public site.
// It corresponds to the 'contacts' table.
type Contact struct {
	ID        uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string `gorm:"not null" json:"name"`
	Email     string `gorm:"not null" json:"email"`
	Phone     string `gorm:"" json:"phone"`
	Company   string `gorm:"" json:"company"`
	Message   string `gorm:"" json:"message"`
	Status    string `gorm:"not null;default:new" json:"status"`
	CreatedAt int64  `gorm:"not null" json:"created_at"` // Unix timestamp
}

// TableName explicitly sets the table name for GORM.
func (Contact) TableName() string {
	return "contacts"
}
