package database

import (
	"fmt"
	"strings"

	"github.com/Rishi4227/epos-data-pipeline/config"
	"github.com/Rishi4227/epos-data-pipeline/models"
	"gorm.io/gorm"
)

// AutoMigrate runs auto migration for all models
func AutoMigrate(db *gorm.DB) error {
	log := config.GetLogger()
	log.Info("Starting GORM AutoMigrate...")

	// Get all models in dependency order
	allModels := models.AllModels()

	// First pass: Create all tables
	log.Info("Creating tables...")
	migrator := db.Migrator()

	for _, model := range allModels {
		tableName := migrator.CurrentDatabase()
		stmt := &gorm.Statement{DB: db}
		if err := stmt.Parse(model); err == nil {
			tableName = stmt.Schema.Table
		}

		if !migrator.HasTable(model) {
			if err := migrator.CreateTable(model); err != nil {
				log.Warnf("  ⚠ Warning: Could not create table %s: %v", tableName, err)
				continue
			}
			log.Infof("  ✓ Created table: %s", tableName)
		} else {
			log.Infof("  ✓ Table already exists: %s", tableName)
		}
	}

	// Second pass: Create foreign key constraints manually
	log.Info("Creating foreign key constraints...")
	if err := CreateForeignKeys(db); err != nil {
		log.Warnf("Warning: Some foreign keys could not be created: %v", err)
	}

	// Create indexes
	log.Info("Creating indexes...")
	if err := CreateIndexes(db); err != nil {
		log.Warnf("Warning: Some indexes could not be created: %v", err)
	}

	log.Info("GORM AutoMigrate completed successfully")
	return nil
}

// CheckConnection verifies the database connection
func CheckConnection(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database instance: %w", err)
	}

	if err := sqlDB.Ping(); err != nil {
		return fmt.Errorf("failed to ping database: %w", err)
	}

	return nil
}

// CreateForeignKeys creates all foreign key constraints
func CreateForeignKeys(db *gorm.DB) error {
	log := config.GetLogger()

	// sqlite cannot add constraints to existing tables; GORM already created
	// the references inline during CreateTable
	if db.Dialector.Name() == "sqlite" {
		log.Info("  ✓ Skipping foreign key pass (sqlite creates references inline)")
		return nil
	}

	foreignKeys := []struct {
		table     string
		name      string
		column    string
		refTable  string
		refColumn string
	}{
		// Locations
		{"locations", "fk_locations_organization", "organization_id", "organizations", "organization_id"},

		// Employees
		{"employees", "fk_employees_location", "location_id", "locations", "location_id"},

		// Transactions
		{"transactions", "fk_transactions_location", "location_id", "locations", "location_id"},
		{"transactions", "fk_transactions_employee", "employee_id", "employees", "employee_id"},

		// Transaction items
		{"transaction_items", "fk_transaction_items_transaction", "transaction_id", "transactions", "transaction_id"},
		{"transaction_items", "fk_transaction_items_product", "product_id", "products", "product_id"},
	}

	for _, fk := range foreignKeys {
		// Check if foreign key already exists
		var count int64
		db.Raw(`
			SELECT COUNT(*) FROM information_schema.table_constraints
			WHERE constraint_type = 'FOREIGN KEY'
			AND table_name = ?
			AND constraint_name = ?
		`, fk.table, fk.name).Scan(&count)

		if count > 0 {
			log.Infof("  ✓ Foreign key already exists: %s", fk.name)
			continue
		}

		query := fmt.Sprintf(
			"ALTER TABLE %s ADD CONSTRAINT %s FOREIGN KEY (%s) REFERENCES %s(%s)",
			fk.table, fk.name, fk.column, fk.refTable, fk.refColumn,
		)

		if err := db.Exec(query).Error; err != nil {
			if strings.Contains(err.Error(), "already exists") || strings.Contains(err.Error(), "Duplicate") {
				log.Infof("  ✓ Foreign key already exists: %s", fk.name)
			} else {
				log.Warnf("  ⚠ Failed to create foreign key %s: %v", fk.name, err)
			}
		} else {
			log.Infof("  ✓ Created foreign key: %s", fk.name)
		}
	}

	return nil
}

// CreateIndexes creates performance indexes
func CreateIndexes(db *gorm.DB) error {
	log := config.GetLogger()

	indexes := []struct {
		name  string
		query string
	}{
		// Location indexes
		{"idx_location_org", "CREATE INDEX IF NOT EXISTS idx_location_org ON locations(organization_id)"},
		{"idx_location_city", "CREATE INDEX IF NOT EXISTS idx_location_city ON locations(city)"},

		// Employee indexes
		{"idx_employee_location", "CREATE INDEX IF NOT EXISTS idx_employee_location ON employees(location_id)"},

		// Product indexes
		{"idx_product_category", "CREATE INDEX IF NOT EXISTS idx_product_category ON products(product_category)"},

		// Transaction indexes
		{"idx_transaction_date", "CREATE INDEX IF NOT EXISTS idx_transaction_date ON transactions(transaction_date)"},
		{"idx_transaction_location", "CREATE INDEX IF NOT EXISTS idx_transaction_location ON transactions(location_id)"},
		{"idx_transaction_status", "CREATE INDEX IF NOT EXISTS idx_transaction_status ON transactions(transaction_status)"},
		{"idx_transaction_timestamp", "CREATE INDEX IF NOT EXISTS idx_transaction_timestamp ON transactions(timestamp)"},
		{"idx_transaction_location_date", "CREATE INDEX IF NOT EXISTS idx_transaction_location_date ON transactions(location_id, transaction_date)"},

		// Transaction item indexes
		{"idx_item_transaction", "CREATE INDEX IF NOT EXISTS idx_item_transaction ON transaction_items(transaction_id)"},
		{"idx_item_product", "CREATE INDEX IF NOT EXISTS idx_item_product ON transaction_items(product_id)"},
	}

	// mysql has no CREATE INDEX IF NOT EXISTS
	isMySQL := db.Dialector.Name() == "mysql"

	successCount := 0
	for _, idx := range indexes {
		query := idx.query
		if isMySQL {
			query = strings.Replace(query, "IF NOT EXISTS ", "", 1)
		}

		if err := db.Exec(query).Error; err != nil {
			if strings.Contains(err.Error(), "Duplicate") || strings.Contains(err.Error(), "already exists") {
				log.Infof("  ✓ Index already exists: %s", idx.name)
				continue
			}
			log.Warnf("  ⚠ Failed to create index %s: %v", idx.name, err)
		} else {
			log.Infof("  ✓ Created index: %s", idx.name)
			successCount++
		}
	}

	if successCount > 0 {
		log.Infof("Successfully created %d indexes", successCount)
	}

	return nil
}

// DropAllTables drops every managed table, children first
func DropAllTables(db *gorm.DB) error {
	log := config.GetLogger()

	allModels := models.AllModels()

	// Reverse order so child tables go before their parents
	for i := len(allModels) - 1; i >= 0; i-- {
		model := allModels[i]
		stmt := &gorm.Statement{DB: db}
		tableName := ""
		if err := stmt.Parse(model); err == nil {
			tableName = stmt.Schema.Table
		}

		if err := db.Migrator().DropTable(model); err != nil {
			log.Warnf("  ⚠ Failed to drop table %s: %v", tableName, err)
		} else {
			log.Infof("  ✓ Dropped table: %s", tableName)
		}
	}

	return nil
}
