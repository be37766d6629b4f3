package models

// Setting is a single site-settings row. Values are always stored as strings;
// namespacing is encoded as a key prefix (company_, footer_, dashboard_), not
// as a separate column, so existing stored data stays wire-compatible.
type Setting struct {
	Key       string `gorm:"primaryKey;size:191" json:"key"`
	Value     string `gorm:"type:text;not null" json:"value"`
	UpdatedAt int64  `gorm:"not null" json:"updated_at"` // Unix timestamp
}

// TableName explicitly sets the table name for GORM.
func (Setting) TableName() string {
	return "settings"
}
