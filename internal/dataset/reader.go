package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/Rishi4227/epos-data-pipeline/internal/generator"
)

// Read loads a previously written dataset plus its manifest
func (s *Store) Read() (*generator.Dataset, *Manifest, error) {
	manifest, err := s.ReadManifest()
	if err != nil {
		return nil, nil, err
	}

	locations, err := s.readLocations()
	if err != nil {
		return nil, nil, err
	}
	products, err := s.readProducts()
	if err != nil {
		return nil, nil, err
	}
	employees, err := s.readEmployees()
	if err != nil {
		return nil, nil, err
	}
	transactions, err := s.readTransactions()
	if err != nil {
		return nil, nil, err
	}

	ds := &generator.Dataset{
		Locations:    locations,
		Products:     products,
		Employees:    employees,
		Transactions: transactions,
	}

	return ds, manifest, nil
}

func (s *Store) readLocations() ([]generator.Location, error) {
	var locations []generator.Location
	err := s.readCSV(LocationsFile, len(locationHeader), func(r []string) error {
		locations = append(locations, generator.Location{
			LocationID:   r[0],
			LocationName: r[1],
			LocationType: r[2],
			City:         r[3],
			Timezone:     r[4],
			Address:      r[5],
			PostalCode:   r[6],
		})
		return nil
	})
	return locations, err
}

func (s *Store) readProducts() ([]generator.Product, error) {
	var products []generator.Product
	err := s.readCSV(ProductsFile, len(productHeader), func(r []string) error {
		basePrice, err := parseFloat("base_price", r[3])
		if err != nil {
			return err
		}
		costPrice, err := parseFloat("cost_price", r[4])
		if err != nil {
			return err
		}
		isTaxable, err := strconv.ParseBool(r[6])
		if err != nil {
			return fmt.Errorf("failed to parse is_taxable %q: %w", r[6], err)
		}
		taxRate, err := parseFloat("tax_rate", r[7])
		if err != nil {
			return err
		}

		products = append(products, generator.Product{
			ProductID:       r[0],
			ProductName:     r[1],
			ProductCategory: r[2],
			BasePrice:       basePrice,
			CostPrice:       costPrice,
			SKU:             r[5],
			IsTaxable:       isTaxable,
			TaxRate:         taxRate,
		})
		return nil
	})
	return products, err
}

func (s *Store) readEmployees() ([]generator.Employee, error) {
	var employees []generator.Employee
	err := s.readCSV(EmployeesFile, len(employeeHeader), func(r []string) error {
		employees = append(employees, generator.Employee{
			EmployeeID: r[0],
			FirstName:  r[1],
			LastName:   r[2],
			Role:       r[3],
			LocationID: r[4],
		})
		return nil
	})
	return employees, err
}

func (s *Store) readTransactions() ([]generator.Transaction, error) {
	var transactions []generator.Transaction
	err := s.readCSV(TransactionsFile, len(transactionHeader), func(r []string) error {
		timestamp, err := time.Parse(timestampFormat, r[2])
		if err != nil {
			return fmt.Errorf("failed to parse timestamp %q: %w", r[2], err)
		}
		numItems, err := strconv.Atoi(r[12])
		if err != nil {
			return fmt.Errorf("failed to parse num_items %q: %w", r[12], err)
		}
		quantity, err := strconv.Atoi(r[16])
		if err != nil {
			return fmt.Errorf("failed to parse quantity %q: %w", r[16], err)
		}

		unitPrice, err := parseFloat("unit_price", r[17])
		if err != nil {
			return err
		}
		subtotal, err := parseFloat("subtotal", r[18])
		if err != nil {
			return err
		}
		taxTotal, err := parseFloat("tax_total", r[19])
		if err != nil {
			return err
		}
		discountTotal, err := parseFloat("discount_total", r[20])
		if err != nil {
			return err
		}
		tipAmount, err := parseFloat("tip_amount", r[21])
		if err != nil {
			return err
		}
		totalAmount, err := parseFloat("total_amount", r[22])
		if err != nil {
			return err
		}

		transactions = append(transactions, generator.Transaction{
			TransactionID:     r[0],
			TransactionNumber: r[1],
			Timestamp:         timestamp,
			TransactionDate:   r[3],
			TransactionTime:   r[4],
			LocationID:        r[5],
			LocationName:      r[6],
			LocationType:      r[7],
			City:              r[8],
			DeviceID:          r[9],
			EmployeeID:        r[10],
			EmployeeName:      r[11],
			NumItems:          numItems,
			ProductID:         r[13],
			ProductName:       r[14],
			ProductCategory:   r[15],
			Quantity:          quantity,
			UnitPrice:         unitPrice,
			Subtotal:          subtotal,
			TaxTotal:          taxTotal,
			DiscountTotal:     discountTotal,
			TipAmount:         tipAmount,
			TotalAmount:       totalAmount,
			PaymentMethod:     r[23],
			PaymentStatus:     r[24],
			TransactionStatus: r[25],
			CardLastFour:      r[26],
			AuthorizationCode: r[27],
		})
		return nil
	})
	return transactions, err
}

// readCSV streams a file row by row, skipping the header
func (s *Store) readCSV(name string, fields int, row func(r []string) error) error {
	f, err := os.Open(filepath.Join(s.dir, name))
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", name, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = fields

	// Skip header
	if _, err := reader.Read(); err != nil {
		return fmt.Errorf("failed to read %s header: %w", name, err)
	}

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read %s row: %w", name, err)
		}
		if err := row(record); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}

	return nil
}

func parseFloat(field, value string) (float64, error) {
	v, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse %s %q: %w", field, value, err)
	}
	return v, nil
}
