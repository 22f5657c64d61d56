package models

import "time"

// Employee represents employees table
type Employee struct {
	EmployeeID string    `gorm:"primaryKey;column:employee_id;type:varchar(50)" json:"employee_id"`
	FirstName  string    `gorm:"type:varchar(100);not null" json:"first_name"`
	LastName   string    `gorm:"type:varchar(100);not null" json:"last_name"`
	Role       string    `gorm:"type:varchar(50)" json:"role"`
	LocationID string    `gorm:"type:varchar(50)" json:"location_id"`
	Status     string    `gorm:"type:varchar(20);default:active" json:"status"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	// Relationships
	Location Location `gorm:"foreignKey:LocationID" json:"location,omitempty"`
	// Reverse relationships - commented out to avoid circular dependency issues during migration
	// Transactions []Transaction `gorm:"foreignKey:EmployeeID" json:"transactions,omitempty"`
}

// TableName specifies the table name for Employee
func (Employee) TableName() string {
	return "employees"
}
