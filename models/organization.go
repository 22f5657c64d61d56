package models

import "time"

// Organization represents organizations table
type Organization struct {
	OrganizationID string    `gorm:"primaryKey;column:organization_id;type:varchar(50)" json:"organization_id"`
	BusinessName   string    `gorm:"type:varchar(255);not null" json:"business_name"`
	BusinessType   string    `gorm:"type:varchar(100)" json:"business_type"`
	TaxID          *string   `gorm:"type:varchar(50)" json:"tax_id,omitempty"`
	Status         string    `gorm:"type:varchar(20);default:active" json:"status"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`

	// Relationships - commented out to avoid circular dependency issues during migration
	// Locations []Location `gorm:"foreignKey:OrganizationID" json:"locations,omitempty"`
}

// TableName specifies the table name for Organization
func (Organization) TableName() string {
	return "organizations"
}
