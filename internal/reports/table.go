package reports

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"
)

// Order lists the report names in menu order
var Order = []string{
	"daily", "location", "category", "hourly", "employee",
	"payment", "products", "refunds", "monthly",
}

var titles = map[string]string{
	"daily":    "Daily Sales Report",
	"location": "Location Performance",
	"category": "Product Category Analysis",
	"hourly":   "Hourly Sales Pattern",
	"employee": "Employee Performance",
	"payment":  "Payment Method Breakdown",
	"products": "Top Performing Products",
	"refunds":  "Refund Analysis",
	"monthly":  "Monthly Revenue Trend",
}

// Title returns the display title for a report name, or the name itself
// when it is unknown
func Title(name string) string {
	if title, ok := titles[name]; ok {
		return title
	}
	return name
}

// Table is a rendered report: a title, a header row and string cells
type Table struct {
	Name    string
	Title   string
	Headers []string
	Rows    [][]string
}

// Table runs the named report and renders it as string cells
func (s *Service) Table(name string) (*Table, error) {
	t := &Table{Name: name, Title: Title(name)}

	switch name {
	case "daily":
		rows, err := s.DailySales()
		if err != nil {
			return nil, err
		}
		t.Headers = []string{"transaction_date", "transaction_count", "total_revenue", "avg_transaction_value", "completed_revenue", "refunded_amount"}
		for _, r := range rows {
			t.Rows = append(t.Rows, []string{r.TransactionDate, count(r.TransactionCount), money(r.TotalRevenue), money(r.AvgTransactionValue), money(r.CompletedRevenue), money(r.RefundedAmount)})
		}
	case "location":
		rows, err := s.LocationPerformance()
		if err != nil {
			return nil, err
		}
		t.Headers = []string{"location_name", "city", "location_type", "transaction_count", "total_revenue", "avg_transaction_value", "total_tips"}
		for _, r := range rows {
			t.Rows = append(t.Rows, []string{r.LocationName, r.City, r.LocationType, count(r.TransactionCount), money(r.TotalRevenue), money(r.AvgTransactionValue), money(r.TotalTips)})
		}
	case "category":
		rows, err := s.CategoryAnalysis()
		if err != nil {
			return nil, err
		}
		t.Headers = []string{"product_category", "transaction_count", "total_revenue", "avg_price", "total_quantity"}
		for _, r := range rows {
			t.Rows = append(t.Rows, []string{r.ProductCategory, count(r.TransactionCount), money(r.TotalRevenue), money(r.AvgPrice), count(r.TotalQuantity)})
		}
	case "hourly":
		rows, err := s.HourlySalesPattern()
		if err != nil {
			return nil, err
		}
		t.Headers = []string{"hour", "transaction_count", "total_revenue", "avg_transaction_value"}
		for _, r := range rows {
			t.Rows = append(t.Rows, []string{strconv.Itoa(r.Hour), count(r.TransactionCount), money(r.TotalRevenue), money(r.AvgTransactionValue)})
		}
	case "employee":
		rows, err := s.EmployeePerformance()
		if err != nil {
			return nil, err
		}
		t.Headers = []string{"employee_id", "employee_name", "role", "transaction_count", "total_revenue", "avg_transaction_value", "refund_count"}
		for _, r := range rows {
			t.Rows = append(t.Rows, []string{r.EmployeeID, r.EmployeeName, r.Role, count(r.TransactionCount), money(r.TotalRevenue), money(r.AvgTransactionValue), count(r.RefundCount)})
		}
	case "payment":
		rows, err := s.PaymentMethodBreakdown()
		if err != nil {
			return nil, err
		}
		t.Headers = []string{"payment_method", "transaction_count", "total_revenue", "avg_transaction_value", "percentage"}
		for _, r := range rows {
			t.Rows = append(t.Rows, []string{r.PaymentMethod, count(r.TransactionCount), money(r.TotalRevenue), money(r.AvgTransactionValue), money(r.Percentage)})
		}
	case "products":
		rows, err := s.TopProducts()
		if err != nil {
			return nil, err
		}
		t.Headers = []string{"product_name", "product_category", "times_sold", "total_quantity", "total_revenue", "avg_price"}
		for _, r := range rows {
			t.Rows = append(t.Rows, []string{r.ProductName, r.ProductCategory, count(r.TimesSold), count(r.TotalQuantity), money(r.TotalRevenue), money(r.AvgPrice)})
		}
	case "refunds":
		rows, err := s.RefundAnalysis()
		if err != nil {
			return nil, err
		}
		t.Headers = []string{"location_name", "refund_count", "refund_amount", "avg_refund_value"}
		for _, r := range rows {
			t.Rows = append(t.Rows, []string{r.LocationName, count(r.RefundCount), money(r.RefundAmount), money(r.AvgRefundValue)})
		}
	case "monthly":
		rows, err := s.MonthlyTrend()
		if err != nil {
			return nil, err
		}
		t.Headers = []string{"month", "transaction_count", "total_revenue", "avg_transaction_value"}
		for _, r := range rows {
			t.Rows = append(t.Rows, []string{r.Month, count(r.TransactionCount), money(r.TotalRevenue), money(r.AvgTransactionValue)})
		}
	default:
		return nil, fmt.Errorf("unknown report %q", name)
	}

	return t, nil
}

// Render writes the table as aligned text between banner lines
func (t *Table) Render(w io.Writer) error {
	fmt.Fprintln(w, strings.Repeat("=", 80))
	fmt.Fprintf(w, "  %s\n", strings.ToUpper(t.Title))
	fmt.Fprintln(w, strings.Repeat("=", 80))

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(t.Headers, "\t"))
	for _, row := range t.Rows {
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	fmt.Fprintln(w, strings.Repeat("=", 80))
	return nil
}

func count(n int64) string {
	return strconv.FormatInt(n, 10)
}

func money(v float64) string {
	return fmt.Sprintf("%.2f", v)
}
