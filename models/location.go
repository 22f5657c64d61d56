package models

import "time"

// Location represents locations table
type Location struct {
	LocationID     string    `gorm:"primaryKey;column:location_id;type:varchar(50)" json:"location_id"`
	OrganizationID string    `gorm:"type:varchar(50);not null" json:"organization_id"`
	LocationName   string    `gorm:"type:varchar(255);not null" json:"location_name"`
	LocationType   string    `gorm:"type:varchar(50)" json:"location_type"`
	City           string    `gorm:"type:varchar(100)" json:"city"`
	Address        *string   `gorm:"type:varchar(255)" json:"address,omitempty"`
	PostalCode     *string   `gorm:"type:varchar(20)" json:"postal_code,omitempty"`
	Timezone       string    `gorm:"type:varchar(50);default:Europe/London" json:"timezone"`
	Status         string    `gorm:"type:varchar(20);default:active" json:"status"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`

	// Relationships
	Organization Organization `gorm:"foreignKey:OrganizationID" json:"organization,omitempty"`
	// Reverse relationships - commented out to avoid circular dependency issues during migration
	// Employees    []Employee    `gorm:"foreignKey:LocationID" json:"employees,omitempty"`
	// Transactions []Transaction `gorm:"foreignKey:LocationID" json:"transactions,omitempty"`
}

// TableName specifies the table name for Location
func (Location) TableName() string {
	return "locations"
}
