package reports

import (
	"fmt"

	"gorm.io/gorm"
)

// Service runs the analytics reports against the relational store.
// Every report is read-only.
type Service struct {
	db *gorm.DB
}

// NewService creates a report service on the given database handle
func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// hasTransactionItems reports whether line-item detail has been loaded.
// The items table is maintained externally, so the item-level reports
// must fall back to transaction-level figures when it is empty.
func (s *Service) hasTransactionItems() (bool, error) {
	var count int64
	if err := s.db.Table("transaction_items").Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to count transaction_items: %w", err)
	}
	return count > 0, nil
}

// DailySales aggregates every transaction by calendar day
func (s *Service) DailySales() ([]DailySalesRow, error) {
	d := dialectFor(s.db)
	day := d.DayOf("transaction_date")

	query := fmt.Sprintf(`
		SELECT
			%s AS transaction_date,
			COUNT(*) AS transaction_count,
			SUM(total_amount) AS total_revenue,
			AVG(total_amount) AS avg_transaction_value,
			SUM(CASE WHEN transaction_status = 'completed' THEN total_amount ELSE 0 END) AS completed_revenue,
			SUM(CASE WHEN transaction_status = 'refunded' THEN total_amount ELSE 0 END) AS refunded_amount
		FROM transactions
		GROUP BY %s
		ORDER BY transaction_date`, day, day)

	var rows []DailySalesRow
	if err := s.db.Raw(query).Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to run daily sales report: %w", err)
	}
	return rows, nil
}

// LocationPerformance ranks locations by completed revenue
func (s *Service) LocationPerformance() ([]LocationPerformanceRow, error) {
	query := `
		SELECT
			l.location_name,
			l.city,
			l.location_type,
			COUNT(t.transaction_id) AS transaction_count,
			SUM(t.total_amount) AS total_revenue,
			AVG(t.total_amount) AS avg_transaction_value,
			SUM(t.tip_amount) AS total_tips
		FROM locations l
		LEFT JOIN transactions t ON l.location_id = t.location_id
		WHERE t.transaction_status = 'completed'
		GROUP BY l.location_id, l.location_name, l.city, l.location_type
		ORDER BY total_revenue DESC`

	var rows []LocationPerformanceRow
	if err := s.db.Raw(query).Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to run location performance report: %w", err)
	}
	return rows, nil
}

// CategoryAnalysis aggregates completed sales by product category.
// Without line items it degrades to a single transaction-level row.
func (s *Service) CategoryAnalysis() ([]CategoryAnalysisRow, error) {
	hasItems, err := s.hasTransactionItems()
	if err != nil {
		return nil, err
	}

	var query string
	if hasItems {
		query = `
			SELECT
				COALESCE(p.product_category, 'Uncategorized') AS product_category,
				COUNT(DISTINCT t.transaction_id) AS transaction_count,
				SUM(ti.item_total) AS total_revenue,
				AVG(ti.item_total) AS avg_price,
				SUM(ti.quantity) AS total_quantity
			FROM transaction_items ti
			JOIN transactions t ON ti.transaction_id = t.transaction_id
			LEFT JOIN products p ON ti.product_id = p.product_id
			WHERE t.transaction_status = 'completed'
			GROUP BY COALESCE(p.product_category, 'Uncategorized')
			ORDER BY total_revenue DESC`
	} else {
		query = `
			SELECT
				'All Products (Transaction-level)' AS product_category,
				COUNT(*) AS transaction_count,
				COALESCE(SUM(total_amount), 0) AS total_revenue,
				COALESCE(AVG(total_amount), 0) AS avg_price,
				COALESCE(SUM(num_items), 0) AS total_quantity
			FROM transactions
			WHERE transaction_status = 'completed'`
	}

	var rows []CategoryAnalysisRow
	if err := s.db.Raw(query).Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to run category analysis report: %w", err)
	}
	return rows, nil
}

// HourlySalesPattern aggregates completed sales by hour of day
func (s *Service) HourlySalesPattern() ([]HourlySalesRow, error) {
	d := dialectFor(s.db)
	hour := d.HourOf("timestamp")

	query := fmt.Sprintf(`
		SELECT
			%s AS hour,
			COUNT(*) AS transaction_count,
			SUM(total_amount) AS total_revenue,
			AVG(total_amount) AS avg_transaction_value
		FROM transactions
		WHERE transaction_status = 'completed'
		GROUP BY %s
		ORDER BY hour`, hour, hour)

	var rows []HourlySalesRow
	if err := s.db.Raw(query).Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to run hourly sales report: %w", err)
	}
	return rows, nil
}

// EmployeePerformance ranks employees by completed and refunded volume
func (s *Service) EmployeePerformance() ([]EmployeePerformanceRow, error) {
	d := dialectFor(s.db)

	query := fmt.Sprintf(`
		SELECT
			e.employee_id,
			%s AS employee_name,
			e.role,
			COUNT(t.transaction_id) AS transaction_count,
			SUM(t.total_amount) AS total_revenue,
			AVG(t.total_amount) AS avg_transaction_value,
			SUM(CASE WHEN t.transaction_status = 'refunded' THEN 1 ELSE 0 END) AS refund_count
		FROM employees e
		LEFT JOIN transactions t ON e.employee_id = t.employee_id
		WHERE t.transaction_status IN ('completed', 'refunded')
		GROUP BY e.employee_id, %s, e.role
		ORDER BY total_revenue DESC`, d.FullName("e.first_name", "e.last_name"), d.FullName("e.first_name", "e.last_name"))

	var rows []EmployeePerformanceRow
	if err := s.db.Raw(query).Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to run employee performance report: %w", err)
	}
	return rows, nil
}

// PaymentMethodBreakdown shows the completed-sales share per payment method
func (s *Service) PaymentMethodBreakdown() ([]PaymentMethodRow, error) {
	query := `
		SELECT
			payment_method,
			COUNT(*) AS transaction_count,
			SUM(total_amount) AS total_revenue,
			AVG(total_amount) AS avg_transaction_value,
			ROUND(COUNT(*) * 100.0 / (SELECT COUNT(*) FROM transactions WHERE transaction_status = 'completed'), 2) AS percentage
		FROM transactions
		WHERE transaction_status = 'completed'
		GROUP BY payment_method
		ORDER BY transaction_count DESC`

	var rows []PaymentMethodRow
	if err := s.db.Raw(query).Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to run payment method report: %w", err)
	}
	return rows, nil
}

// TopProducts lists the twenty products with the highest completed revenue.
// Without line items it degrades to a single transaction-level row.
func (s *Service) TopProducts() ([]TopProductRow, error) {
	hasItems, err := s.hasTransactionItems()
	if err != nil {
		return nil, err
	}

	var query string
	if hasItems {
		query = `
			SELECT
				p.product_name,
				p.product_category,
				COUNT(ti.item_id) AS times_sold,
				SUM(ti.quantity) AS total_quantity,
				SUM(ti.item_total) AS total_revenue,
				AVG(ti.item_total) AS avg_price
			FROM transaction_items ti
			JOIN transactions t ON ti.transaction_id = t.transaction_id
			JOIN products p ON ti.product_id = p.product_id
			WHERE t.transaction_status = 'completed'
			GROUP BY p.product_id, p.product_name, p.product_category
			ORDER BY total_revenue DESC
			LIMIT 20`
	} else {
		query = `
			SELECT
				'Product-level data not available' AS product_name,
				'See transaction-level reports' AS product_category,
				COUNT(*) AS times_sold,
				COALESCE(SUM(num_items), 0) AS total_quantity,
				COALESCE(SUM(total_amount), 0) AS total_revenue,
				COALESCE(AVG(total_amount), 0) AS avg_price
			FROM transactions
			WHERE transaction_status = 'completed'`
	}

	var rows []TopProductRow
	if err := s.db.Raw(query).Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to run top products report: %w", err)
	}
	return rows, nil
}

// RefundAnalysis aggregates refunded transactions by location
func (s *Service) RefundAnalysis() ([]RefundAnalysisRow, error) {
	query := `
		SELECT
			l.location_name,
			COUNT(*) AS refund_count,
			SUM(t.total_amount) AS refund_amount,
			AVG(t.total_amount) AS avg_refund_value
		FROM transactions t
		JOIN locations l ON t.location_id = l.location_id
		WHERE t.transaction_status = 'refunded'
		GROUP BY l.location_id, l.location_name
		ORDER BY refund_count DESC`

	var rows []RefundAnalysisRow
	if err := s.db.Raw(query).Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to run refund analysis report: %w", err)
	}
	return rows, nil
}

// MonthlyTrend aggregates completed revenue by calendar month
func (s *Service) MonthlyTrend() ([]MonthlyTrendRow, error) {
	d := dialectFor(s.db)
	month := d.MonthOf("transaction_date")

	query := fmt.Sprintf(`
		SELECT
			%s AS month,
			COUNT(*) AS transaction_count,
			SUM(total_amount) AS total_revenue,
			AVG(total_amount) AS avg_transaction_value
		FROM transactions
		WHERE transaction_status = 'completed'
		GROUP BY %s
		ORDER BY month`, month, month)

	var rows []MonthlyTrendRow
	if err := s.db.Raw(query).Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to run monthly trend report: %w", err)
	}
	return rows, nil
}
