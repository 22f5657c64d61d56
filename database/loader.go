package database

import (
	"fmt"
	"strings"
	"time"

	"github.com/Rishi4227/epos-data-pipeline/config"
	"github.com/Rishi4227/epos-data-pipeline/internal/dataset"
	"github.com/Rishi4227/epos-data-pipeline/internal/generator"
	"github.com/Rishi4227/epos-data-pipeline/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// DefaultBatchSize is the transaction insert batch size
const DefaultBatchSize = 1000

// The single seeded organization every location hangs off
const (
	defaultOrganizationID = "ORG-001"
	defaultBusinessName   = "UK Hospitality Group"
	defaultBusinessType   = "Restaurant & Bar Chain"
	defaultTaxID          = "GB123456789"
)

// Loader moves a generated dataset into the relational store
type Loader struct {
	db        *gorm.DB
	store     *dataset.Store
	batchSize int
}

// NewLoader creates a loader. The store is only consulted by LoadAll and
// may be nil when datasets are loaded directly.
func NewLoader(db *gorm.DB, store *dataset.Store, batchSize int) *Loader {
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}
	return &Loader{db: db, store: store, batchSize: batchSize}
}

// LoadAll reads the dataset from the store and loads it
func (l *Loader) LoadAll(skipTransactions bool) error {
	ds, _, err := l.store.Read()
	if err != nil {
		return fmt.Errorf("failed to read dataset: %w", err)
	}
	return l.LoadDataset(ds, skipTransactions)
}

// LoadDataset runs the ETL in dependency order: organization, locations,
// employees, products, transactions
func (l *Loader) LoadDataset(ds *generator.Dataset, skipTransactions bool) error {
	log := config.GetLogger()

	log.Info(strings.Repeat("=", 60))
	log.Info("STARTING ETL PROCESS")
	log.Info(strings.Repeat("=", 60))

	if err := l.loadOrganization(); err != nil {
		return err
	}
	if err := l.loadLocations(ds.Locations); err != nil {
		return err
	}
	if err := l.loadEmployees(ds.Employees); err != nil {
		return err
	}
	if err := l.loadProducts(ds.Products); err != nil {
		return err
	}

	if skipTransactions {
		log.Info("Skipping transactions (masters only)")
	} else if err := l.loadTransactions(ds.Transactions); err != nil {
		return err
	}

	log.Info(strings.Repeat("=", 60))
	log.Info("✅ ETL PROCESS COMPLETED SUCCESSFULLY!")
	log.Info(strings.Repeat("=", 60))

	return l.PrintSummary()
}

func (l *Loader) loadOrganization() error {
	log := config.GetLogger()
	log.Info("Loading organization...")

	org := models.Organization{
		OrganizationID: defaultOrganizationID,
		BusinessName:   defaultBusinessName,
		BusinessType:   defaultBusinessType,
		TaxID:          strPtrOrNil(defaultTaxID),
		Status:         "active",
	}

	if err := l.db.Clauses(clause.OnConflict{UpdateAll: true}).Create(&org).Error; err != nil {
		return fmt.Errorf("failed to load organization: %w", err)
	}

	log.Info("✅ Organization loaded")
	return nil
}

func (l *Loader) loadLocations(locations []generator.Location) error {
	log := config.GetLogger()
	log.Info("Loading locations...")

	rows := make([]models.Location, 0, len(locations))
	for _, loc := range locations {
		rows = append(rows, models.Location{
			LocationID:     loc.LocationID,
			OrganizationID: defaultOrganizationID,
			LocationName:   loc.LocationName,
			LocationType:   loc.LocationType,
			City:           loc.City,
			Address:        strPtrOrNil(loc.Address),
			PostalCode:     strPtrOrNil(loc.PostalCode),
			Timezone:       loc.Timezone,
			Status:         "active",
		})
	}

	if err := l.db.Clauses(clause.OnConflict{UpdateAll: true}).Create(&rows).Error; err != nil {
		return fmt.Errorf("failed to load locations: %w", err)
	}

	log.Infof("✅ Loaded %d locations", len(rows))
	return nil
}

func (l *Loader) loadEmployees(employees []generator.Employee) error {
	log := config.GetLogger()
	log.Info("Loading employees...")

	rows := make([]models.Employee, 0, len(employees))
	for _, e := range employees {
		rows = append(rows, models.Employee{
			EmployeeID: e.EmployeeID,
			FirstName:  e.FirstName,
			LastName:   e.LastName,
			Role:       e.Role,
			LocationID: e.LocationID,
			Status:     "active",
		})
	}

	if err := l.db.Clauses(clause.OnConflict{UpdateAll: true}).Create(&rows).Error; err != nil {
		return fmt.Errorf("failed to load employees: %w", err)
	}

	log.Infof("✅ Loaded %d employees", len(rows))
	return nil
}

func (l *Loader) loadProducts(products []generator.Product) error {
	log := config.GetLogger()
	log.Info("Loading products...")

	rows := make([]models.Product, 0, len(products))
	for _, p := range products {
		rows = append(rows, models.Product{
			ProductID:       p.ProductID,
			ProductName:     p.ProductName,
			ProductCategory: p.ProductCategory,
			SKU:             p.SKU,
			BasePrice:       p.BasePrice,
			CostPrice:       p.CostPrice,
			TaxRate:         p.TaxRate,
			IsTaxable:       p.IsTaxable,
			Status:          "active",
		})
	}

	if err := l.db.Clauses(clause.OnConflict{UpdateAll: true}).Create(&rows).Error; err != nil {
		return fmt.Errorf("failed to load products: %w", err)
	}

	log.Infof("✅ Loaded %d products", len(rows))
	return nil
}

func (l *Loader) loadTransactions(transactions []generator.Transaction) error {
	log := config.GetLogger()
	log.Info("Loading transactions...")

	// Clear existing transactions first; the load is a full replace
	if err := l.db.Exec("DELETE FROM transactions").Error; err != nil {
		return fmt.Errorf("failed to clear transactions: %w", err)
	}
	log.Info("Cleared existing transactions")

	unique, dropped := dedupTransactions(transactions)
	if dropped > 0 {
		log.Warnf("Removed %d duplicate transaction numbers", dropped)
	}
	log.Infof("Found %d unique transactions to load", len(unique))

	rows := make([]models.Transaction, 0, len(unique))
	for _, t := range unique {
		date, err := time.Parse("2006-01-02", t.TransactionDate)
		if err != nil {
			return fmt.Errorf("failed to parse transaction_date %q: %w", t.TransactionDate, err)
		}

		rows = append(rows, models.Transaction{
			TransactionID:     t.TransactionID,
			TransactionNumber: t.TransactionNumber,
			Timestamp:         t.Timestamp,
			TransactionDate:   date,
			TransactionTime:   t.TransactionTime,
			LocationID:        t.LocationID,
			EmployeeID:        t.EmployeeID,
			DeviceID:          strPtrOrNil(t.DeviceID),
			Subtotal:          t.Subtotal,
			TaxTotal:          t.TaxTotal,
			DiscountTotal:     t.DiscountTotal,
			TipAmount:         t.TipAmount,
			TotalAmount:       t.TotalAmount,
			TransactionStatus: models.TransactionStatus(t.TransactionStatus),
			PaymentStatus:     models.PaymentStatus(t.PaymentStatus),
			PaymentMethod:     models.PaymentMethod(t.PaymentMethod),
			CardLastFour:      strPtrOrNil(t.CardLastFour),
			AuthorizationCode: strPtrOrNil(t.AuthorizationCode),
			NumItems:          t.NumItems,
		})
	}

	if err := l.db.CreateInBatches(&rows, l.batchSize).Error; err != nil {
		return fmt.Errorf("failed to insert transactions: %w", err)
	}

	log.Infof("✅ Loaded %d transactions", len(rows))
	return nil
}

// dedupTransactions drops records repeating an earlier transaction_number,
// keeping the first occurrence
func dedupTransactions(transactions []generator.Transaction) ([]generator.Transaction, int) {
	seen := make(map[string]bool, len(transactions))
	unique := make([]generator.Transaction, 0, len(transactions))

	for _, t := range transactions {
		if seen[t.TransactionNumber] {
			continue
		}
		seen[t.TransactionNumber] = true
		unique = append(unique, t)
	}

	return unique, len(transactions) - len(unique)
}

// PrintSummary prints table counts and completed revenue
func (l *Loader) PrintSummary() error {
	var orgCount, locationCount, employeeCount, productCount, transactionCount int64

	l.db.Model(&models.Organization{}).Count(&orgCount)
	l.db.Model(&models.Location{}).Count(&locationCount)
	l.db.Model(&models.Employee{}).Count(&employeeCount)
	l.db.Model(&models.Product{}).Count(&productCount)
	l.db.Model(&models.Transaction{}).Count(&transactionCount)

	var completedRevenue float64
	err := l.db.Model(&models.Transaction{}).
		Where("transaction_status = ?", models.StatusCompleted).
		Select("COALESCE(SUM(total_amount), 0)").
		Scan(&completedRevenue).Error
	if err != nil {
		return fmt.Errorf("failed to compute completed revenue: %w", err)
	}

	fmt.Println()
	fmt.Println(strings.Repeat("=", 60))
	fmt.Println("DATABASE SUMMARY")
	fmt.Println(strings.Repeat("=", 60))
	fmt.Printf("Organizations: %d\n", orgCount)
	fmt.Printf("Locations: %d\n", locationCount)
	fmt.Printf("Employees: %d\n", employeeCount)
	fmt.Printf("Products: %d\n", productCount)
	fmt.Printf("Transactions: %d\n", transactionCount)
	fmt.Printf("\nTotal Revenue (Completed): £%.2f\n", completedRevenue)
	fmt.Println(strings.Repeat("=", 60))

	return nil
}

// strPtrOrNil maps empty CSV fields onto SQL NULL
func strPtrOrNil(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
