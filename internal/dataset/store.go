package dataset

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/Rishi4227/epos-data-pipeline/internal/generator"
)

// File names inside a dataset directory
const (
	TransactionsFile = "epos_transactions.csv"
	LocationsFile    = "locations.csv"
	ProductsFile     = "products.csv"
	EmployeesFile    = "employees.csv"
	ManifestFile     = "manifest.json"
)

const timestampFormat = "2006-01-02 15:04:05"

var (
	locationHeader = []string{
		"location_id", "location_name", "location_type", "city", "timezone",
		"address", "postal_code",
	}
	productHeader = []string{
		"product_id", "product_name", "product_category", "base_price",
		"cost_price", "sku", "is_taxable", "tax_rate",
	}
	employeeHeader = []string{
		"employee_id", "first_name", "last_name", "role", "location_id",
	}
	transactionHeader = []string{
		"transaction_id", "transaction_number", "timestamp", "transaction_date",
		"transaction_time", "location_id", "location_name", "location_type",
		"city", "device_id", "employee_id", "employee_name", "num_items",
		"product_id", "product_name", "product_category", "quantity",
		"unit_price", "subtotal", "tax_total", "discount_total", "tip_amount",
		"total_amount", "payment_method", "payment_status", "transaction_status",
		"card_last_four", "authorization_code",
	}
)

// Store reads and writes generated datasets under one base directory
type Store struct {
	dir string
}

// NewStore creates a store rooted at dir
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Dir returns the store's base directory
func (s *Store) Dir() string {
	return s.dir
}

// Write persists the full dataset plus its manifest
func (s *Store) Write(ds *generator.Dataset, m Manifest) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory %s: %w", s.dir, err)
	}

	if err := s.writeLocations(ds.Locations); err != nil {
		return err
	}
	if err := s.writeProducts(ds.Products); err != nil {
		return err
	}
	if err := s.writeEmployees(ds.Employees); err != nil {
		return err
	}
	if err := s.writeTransactions(ds.Transactions); err != nil {
		return err
	}

	return s.WriteManifest(m)
}

func (s *Store) writeLocations(locations []generator.Location) error {
	return s.writeCSV(LocationsFile, locationHeader, len(locations), func(i int) []string {
		l := locations[i]
		return []string{
			l.LocationID, l.LocationName, l.LocationType, l.City, l.Timezone,
			l.Address, l.PostalCode,
		}
	})
}

func (s *Store) writeProducts(products []generator.Product) error {
	return s.writeCSV(ProductsFile, productHeader, len(products), func(i int) []string {
		p := products[i]
		return []string{
			p.ProductID, p.ProductName, p.ProductCategory,
			money(p.BasePrice), money(p.CostPrice), p.SKU,
			strconv.FormatBool(p.IsTaxable),
			// tax_rate keeps four decimals, matching the DECIMAL(5,4) column
			strconv.FormatFloat(p.TaxRate, 'f', 4, 64),
		}
	})
}

func (s *Store) writeEmployees(employees []generator.Employee) error {
	return s.writeCSV(EmployeesFile, employeeHeader, len(employees), func(i int) []string {
		e := employees[i]
		return []string{e.EmployeeID, e.FirstName, e.LastName, e.Role, e.LocationID}
	})
}

func (s *Store) writeTransactions(transactions []generator.Transaction) error {
	return s.writeCSV(TransactionsFile, transactionHeader, len(transactions), func(i int) []string {
		t := transactions[i]
		return []string{
			t.TransactionID,
			t.TransactionNumber,
			t.Timestamp.Format(timestampFormat),
			t.TransactionDate,
			t.TransactionTime,
			t.LocationID,
			t.LocationName,
			t.LocationType,
			t.City,
			t.DeviceID,
			t.EmployeeID,
			t.EmployeeName,
			strconv.Itoa(t.NumItems),
			t.ProductID,
			t.ProductName,
			t.ProductCategory,
			strconv.Itoa(t.Quantity),
			money(t.UnitPrice),
			money(t.Subtotal),
			money(t.TaxTotal),
			money(t.DiscountTotal),
			money(t.TipAmount),
			money(t.TotalAmount),
			t.PaymentMethod,
			t.PaymentStatus,
			t.TransactionStatus,
			t.CardLastFour,
			t.AuthorizationCode,
		}
	})
}

// writeCSV streams rows through one csv.Writer with a fixed header
func (s *Store) writeCSV(name string, header []string, rows int, row func(i int) []string) error {
	f, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", name, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return fmt.Errorf("failed to write %s header: %w", name, err)
	}

	for i := 0; i < rows; i++ {
		if err := w.Write(row(i)); err != nil {
			return fmt.Errorf("failed to write %s row %d: %w", name, i, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to flush %s: %w", name, err)
	}

	return nil
}

func money(v float64) string {
	return fmt.Sprintf("%.2f", v)
}
