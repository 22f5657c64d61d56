package models

import "time"

// TransactionItem represents transaction_items table
type TransactionItem struct {
	ItemID         uint      `gorm:"primaryKey;column:item_id;autoIncrement" json:"item_id"`
	TransactionID  string    `gorm:"type:varchar(50);not null" json:"transaction_id"`
	ProductID      string    `gorm:"type:varchar(50);not null" json:"product_id"`
	Quantity       float64   `gorm:"type:decimal(10,3);not null;check:quantity > 0" json:"quantity"`
	UnitPrice      float64   `gorm:"type:decimal(10,2);not null" json:"unit_price"`
	ItemSubtotal   float64   `gorm:"type:decimal(10,2);not null" json:"item_subtotal"`
	DiscountAmount float64   `gorm:"type:decimal(10,2);default:0" json:"discount_amount"`
	TaxAmount      float64   `gorm:"type:decimal(10,2);not null" json:"tax_amount"`
	ItemTotal      float64   `gorm:"type:decimal(10,2);not null" json:"item_total"`
	LineNumber     int       `gorm:"not null" json:"line_number"`
	CreatedAt      time.Time `json:"created_at"`

	// Relationships
	Transaction Transaction `gorm:"foreignKey:TransactionID" json:"transaction,omitempty"`
	Product     Product     `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

// TableName specifies the table name for TransactionItem
func (TransactionItem) TableName() string {
	return "transaction_items"
}
