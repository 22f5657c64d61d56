package models

import "time"

// TransactionStatus type for transaction lifecycle states
type TransactionStatus string

const (
	StatusCompleted TransactionStatus = "completed"
	StatusRefunded  TransactionStatus = "refunded"
	StatusVoided    TransactionStatus = "voided"
	StatusError     TransactionStatus = "error"
)

// PaymentStatus type for payment outcomes
type PaymentStatus string

const (
	PaymentCaptured PaymentStatus = "captured"
	PaymentRefunded PaymentStatus = "refunded"
	PaymentFailed   PaymentStatus = "failed"
	PaymentVoided   PaymentStatus = "voided"
)

// PaymentMethod type for payment methods
type PaymentMethod string

const (
	MethodCreditCard    PaymentMethod = "credit_card"
	MethodDebitCard     PaymentMethod = "debit_card"
	MethodCash          PaymentMethod = "cash"
	MethodMobilePayment PaymentMethod = "mobile_payment"
	MethodGiftCard      PaymentMethod = "gift_card"
)

// Transaction represents transactions table
type Transaction struct {
	TransactionID     string    `gorm:"primaryKey;column:transaction_id;type:varchar(50)" json:"transaction_id"`
	TransactionNumber string    `gorm:"type:varchar(50);not null;unique" json:"transaction_number"`
	Timestamp         time.Time `gorm:"not null" json:"timestamp"`
	TransactionDate   time.Time `gorm:"type:date;not null" json:"transaction_date"`
	TransactionTime   string    `gorm:"type:varchar(8);not null" json:"transaction_time"`

	// Foreign keys
	LocationID string  `gorm:"type:varchar(50);not null" json:"location_id"`
	EmployeeID string  `gorm:"type:varchar(50);not null" json:"employee_id"`
	DeviceID   *string `gorm:"type:varchar(50)" json:"device_id,omitempty"`

	// Amounts
	Subtotal      float64 `gorm:"type:decimal(10,2);not null" json:"subtotal"`
	TaxTotal      float64 `gorm:"type:decimal(10,2);not null" json:"tax_total"`
	DiscountTotal float64 `gorm:"type:decimal(10,2);default:0" json:"discount_total"`
	TipAmount     float64 `gorm:"type:decimal(10,2);default:0" json:"tip_amount"`
	TotalAmount   float64 `gorm:"type:decimal(10,2);not null" json:"total_amount"`

	// Status
	TransactionStatus TransactionStatus `gorm:"type:varchar(20);not null" json:"transaction_status"`
	PaymentStatus     PaymentStatus     `gorm:"type:varchar(20);not null" json:"payment_status"`
	PaymentMethod     PaymentMethod     `gorm:"type:varchar(20);not null" json:"payment_method"`

	// Payment details
	CardLastFour      *string `gorm:"type:varchar(4)" json:"card_last_four,omitempty"`
	AuthorizationCode *string `gorm:"type:varchar(50)" json:"authorization_code,omitempty"`

	NumItems  int       `json:"num_items"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relationships
	Location Location `gorm:"foreignKey:LocationID" json:"location,omitempty"`
	Employee Employee `gorm:"foreignKey:EmployeeID" json:"employee,omitempty"`
	// Reverse relationships - commented out to avoid circular dependency issues during migration
	// Items []TransactionItem `gorm:"foreignKey:TransactionID" json:"items,omitempty"`
}

// TableName specifies the table name for Transaction
func (Transaction) TableName() string {
	return "transactions"
}
