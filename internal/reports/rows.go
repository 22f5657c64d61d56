package reports

// DailySalesRow is one day of sales aggregation
type DailySalesRow struct {
	TransactionDate     string  `json:"transaction_date"`
	TransactionCount    int64   `json:"transaction_count"`
	TotalRevenue        float64 `json:"total_revenue"`
	AvgTransactionValue float64 `json:"avg_transaction_value"`
	CompletedRevenue    float64 `json:"completed_revenue"`
	RefundedAmount      float64 `json:"refunded_amount"`
}

// LocationPerformanceRow is completed-sales performance for one location
type LocationPerformanceRow struct {
	LocationName        string  `json:"location_name"`
	City                string  `json:"city"`
	LocationType        string  `json:"location_type"`
	TransactionCount    int64   `json:"transaction_count"`
	TotalRevenue        float64 `json:"total_revenue"`
	AvgTransactionValue float64 `json:"avg_transaction_value"`
	TotalTips           float64 `json:"total_tips"`
}

// CategoryAnalysisRow is completed sales grouped by product category
type CategoryAnalysisRow struct {
	ProductCategory  string  `json:"product_category"`
	TransactionCount int64   `json:"transaction_count"`
	TotalRevenue     float64 `json:"total_revenue"`
	AvgPrice         float64 `json:"avg_price"`
	TotalQuantity    int64   `json:"total_quantity"`
}

// HourlySalesRow is completed sales for one hour of the day
type HourlySalesRow struct {
	Hour                int     `json:"hour"`
	TransactionCount    int64   `json:"transaction_count"`
	TotalRevenue        float64 `json:"total_revenue"`
	AvgTransactionValue float64 `json:"avg_transaction_value"`
}

// EmployeePerformanceRow is sales performance for one employee
type EmployeePerformanceRow struct {
	EmployeeID          string  `json:"employee_id"`
	EmployeeName        string  `json:"employee_name"`
	Role                string  `json:"role"`
	TransactionCount    int64   `json:"transaction_count"`
	TotalRevenue        float64 `json:"total_revenue"`
	AvgTransactionValue float64 `json:"avg_transaction_value"`
	RefundCount         int64   `json:"refund_count"`
}

// PaymentMethodRow is the completed-sales share of one payment method
type PaymentMethodRow struct {
	PaymentMethod       string  `json:"payment_method"`
	TransactionCount    int64   `json:"transaction_count"`
	TotalRevenue        float64 `json:"total_revenue"`
	AvgTransactionValue float64 `json:"avg_transaction_value"`
	Percentage          float64 `json:"percentage"`
}

// TopProductRow is one product ranked by completed revenue
type TopProductRow struct {
	ProductName     string  `json:"product_name"`
	ProductCategory string  `json:"product_category"`
	TimesSold       int64   `json:"times_sold"`
	TotalQuantity   int64   `json:"total_quantity"`
	TotalRevenue    float64 `json:"total_revenue"`
	AvgPrice        float64 `json:"avg_price"`
}

// RefundAnalysisRow is refund volume for one location
type RefundAnalysisRow struct {
	LocationName   string  `json:"location_name"`
	RefundCount    int64   `json:"refund_count"`
	RefundAmount   float64 `json:"refund_amount"`
	AvgRefundValue float64 `json:"avg_refund_value"`
}

// MonthlyTrendRow is one month of completed revenue
type MonthlyTrendRow struct {
	Month               string  `json:"month"`
	TransactionCount    int64   `json:"transaction_count"`
	TotalRevenue        float64 `json:"total_revenue"`
	AvgTransactionValue float64 `json:"avg_transaction_value"`
}
