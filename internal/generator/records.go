package generator

import "time"

// Location is one generated venue
type Location struct {
	LocationID   string
	LocationName string
	LocationType string
	City         string
	Timezone     string
	Address      string
	PostalCode   string
}

// Product is one generated catalog entry
type Product struct {
	ProductID       string
	ProductName     string
	ProductCategory string
	BasePrice       float64
	CostPrice       float64
	SKU             string
	IsTaxable       bool
	TaxRate         float64
}

// Employee is one generated staff member
type Employee struct {
	EmployeeID string
	FirstName  string
	LastName   string
	Role       string
	LocationID string
}

// Transaction is one synthesized summary record. Product fields carry the
// first sampled product only; all sampled products feed the totals.
type Transaction struct {
	TransactionID     string
	TransactionNumber string
	Timestamp         time.Time
	TransactionDate   string
	TransactionTime   string
	LocationID        string
	LocationName      string
	LocationType      string
	City              string
	DeviceID          string
	EmployeeID        string
	EmployeeName      string
	NumItems          int
	ProductID         string
	ProductName       string
	ProductCategory   string
	Quantity          int
	UnitPrice         float64
	Subtotal          float64
	TaxTotal          float64
	DiscountTotal     float64
	TipAmount         float64
	TotalAmount       float64
	PaymentMethod     string
	PaymentStatus     string
	TransactionStatus string
	CardLastFour      string
	AuthorizationCode string
}

// Dataset is the complete output of one generation run
type Dataset struct {
	Locations    []Location
	Products     []Product
	Employees    []Employee
	Transactions []Transaction
}
