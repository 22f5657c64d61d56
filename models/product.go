package models

import "time"

// Product represents products table
type Product struct {
	ProductID       string    `gorm:"primaryKey;column:product_id;type:varchar(50)" json:"product_id"`
	ProductName     string    `gorm:"type:varchar(255);not null" json:"product_name"`
	ProductCategory string    `gorm:"type:varchar(100)" json:"product_category"`
	SKU             string    `gorm:"column:sku;type:varchar(100);unique" json:"sku"`
	BasePrice       float64   `gorm:"type:decimal(10,2);not null;check:base_price >= 0" json:"base_price"`
	CostPrice       float64   `gorm:"type:decimal(10,2)" json:"cost_price"`
	TaxRate         float64   `gorm:"type:decimal(5,4)" json:"tax_rate"`
	IsTaxable       bool      `gorm:"default:true" json:"is_taxable"`
	Status          string    `gorm:"type:varchar(20);default:active" json:"status"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`

	// Reverse relationships - commented out to avoid circular dependency issues during migration
	// TransactionItems []TransactionItem `gorm:"foreignKey:ProductID" json:"transaction_items,omitempty"`
}

// TableName specifies the table name for Product
func (Product) TableName() string {
	return "products"
}
