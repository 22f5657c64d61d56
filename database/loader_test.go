package database

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/Rishi4227/epos-data-pipeline/internal/dataset"
	"github.com/Rishi4227/epos-data-pipeline/internal/genconfig"
	"github.com/Rishi4227/epos-data-pipeline/internal/generator"
	"github.com/Rishi4227/epos-data-pipeline/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openLoaderDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "loader_test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, AutoMigrate(db))
	return db
}

func loaderFixture() *generator.Dataset {
	mk := func(id, number, locID, empID string, day, hour int, status, payment, method, card, auth string, total float64) generator.Transaction {
		stamp := time.Date(2024, 3, day, hour, 30, 0, 0, time.UTC)
		return generator.Transaction{
			TransactionID:     id,
			TransactionNumber: number,
			Timestamp:         stamp,
			TransactionDate:   stamp.Format("2006-01-02"),
			TransactionTime:   stamp.Format("15:04:05"),
			LocationID:        locID,
			LocationName:      "Downtown Taproom",
			LocationType:      "bar",
			City:              "Manchester",
			DeviceID:          "DEV-" + locID + "-01",
			EmployeeID:        empID,
			EmployeeName:      "Oliver Taylor",
			NumItems:          1,
			ProductID:         "PRD-00001",
			ProductName:       "Blackwater IPA",
			ProductCategory:   "Beer",
			Quantity:          1,
			UnitPrice:         total,
			Subtotal:          total,
			TaxTotal:          0.00,
			TotalAmount:       total,
			PaymentMethod:     method,
			PaymentStatus:     payment,
			TransactionStatus: status,
			CardLastFour:      card,
			AuthorizationCode: auth,
		}
	}

	return &generator.Dataset{
		Locations: []generator.Location{
			{LocationID: "LOC-001", LocationName: "Downtown Taproom", LocationType: "bar", City: "Manchester", Timezone: "Europe/London", Address: "12 High Street", PostalCode: "M1 4AB"},
			{LocationID: "LOC-002", LocationName: "Riverside Bistro", LocationType: "restaurant", City: "Bristol", Timezone: "Europe/London"},
		},
		Products: []generator.Product{
			{ProductID: "PRD-00001", ProductName: "Blackwater IPA", ProductCategory: "Beer", BasePrice: 4.50, CostPrice: 1.20, SKU: "SKU-00001", IsTaxable: true, TaxRate: 0.20},
			{ProductID: "PRD-00002", ProductName: "Burger", ProductCategory: "Main Course", BasePrice: 14.00, CostPrice: 4.10, SKU: "SKU-00002", IsTaxable: true, TaxRate: 0.20},
		},
		Employees: []generator.Employee{
			{EmployeeID: "EMP-0001", FirstName: "Oliver", LastName: "Taylor", Role: "cashier", LocationID: "LOC-001"},
			{EmployeeID: "EMP-0002", FirstName: "Amelia", LastName: "Brown", Role: "manager", LocationID: "LOC-002"},
		},
		Transactions: []generator.Transaction{
			mk("TXN-00000001", "#100001", "LOC-001", "EMP-0001", 5, 12, "completed", "captured", "credit_card", "4242", "AUTH-123456", 50.00),
			mk("TXN-00000002", "#100002", "LOC-001", "EMP-0001", 5, 18, "completed", "captured", "cash", "", "AUTH-234567", 30.00),
			mk("TXN-00000003", "#100003", "LOC-002", "EMP-0002", 6, 19, "refunded", "refunded", "debit_card", "1111", "", 40.00),
			mk("TXN-00000004", "#100004", "LOC-002", "EMP-0002", 7, 21, "voided", "voided", "cash", "", "", 15.00),
		},
	}
}

func TestDedupTransactionsKeepsFirstOccurrence(t *testing.T) {
	transactions := []generator.Transaction{
		{TransactionID: "TXN-00000001", TransactionNumber: "#100001"},
		{TransactionID: "TXN-00000002", TransactionNumber: "#100002"},
		{TransactionID: "TXN-00000003", TransactionNumber: "#100001"},
		{TransactionID: "TXN-00000004", TransactionNumber: "#100001"},
	}

	unique, dropped := dedupTransactions(transactions)

	assert.Equal(t, 2, dropped)
	require.Len(t, unique, 2)
	assert.Equal(t, "TXN-00000001", unique[0].TransactionID)
	assert.Equal(t, "TXN-00000002", unique[1].TransactionID)
}

func TestStrPtrOrNil(t *testing.T) {
	assert.Nil(t, strPtrOrNil(""))

	got := strPtrOrNil("4242")
	require.NotNil(t, got)
	assert.Equal(t, "4242", *got)
}

func TestLoadDatasetPopulatesAllTables(t *testing.T) {
	db := openLoaderDB(t)
	loader := NewLoader(db, nil, 2)

	require.NoError(t, loader.LoadDataset(loaderFixture(), false))

	var orgs, locations, employees, products, transactions int64
	db.Model(&models.Organization{}).Count(&orgs)
	db.Model(&models.Location{}).Count(&locations)
	db.Model(&models.Employee{}).Count(&employees)
	db.Model(&models.Product{}).Count(&products)
	db.Model(&models.Transaction{}).Count(&transactions)

	assert.EqualValues(t, 1, orgs)
	assert.EqualValues(t, 2, locations)
	assert.EqualValues(t, 2, employees)
	assert.EqualValues(t, 2, products)
	assert.EqualValues(t, 4, transactions)

	var org models.Organization
	require.NoError(t, db.First(&org, "organization_id = ?", "ORG-001").Error)
	assert.Equal(t, "UK Hospitality Group", org.BusinessName)
	assert.Equal(t, "active", org.Status)

	var card models.Transaction
	require.NoError(t, db.First(&card, "transaction_id = ?", "TXN-00000001").Error)
	require.NotNil(t, card.CardLastFour)
	assert.Equal(t, "4242", *card.CardLastFour)
	require.NotNil(t, card.AuthorizationCode)
	assert.Equal(t, "AUTH-123456", *card.AuthorizationCode)
	require.NotNil(t, card.DeviceID)
	assert.Equal(t, "DEV-LOC-001-01", *card.DeviceID)
	assert.Equal(t, "2024-03-05", card.TransactionDate.Format("2006-01-02"))
	assert.Equal(t, models.StatusCompleted, card.TransactionStatus)

	var cash models.Transaction
	require.NoError(t, db.First(&cash, "transaction_id = ?", "TXN-00000004").Error)
	assert.Nil(t, cash.CardLastFour)
	assert.Nil(t, cash.AuthorizationCode)
}

func TestLoadDatasetReplacesExistingTransactions(t *testing.T) {
	db := openLoaderDB(t)
	loader := NewLoader(db, nil, DefaultBatchSize)
	ds := loaderFixture()

	require.NoError(t, loader.LoadDataset(ds, false))
	require.NoError(t, loader.LoadDataset(ds, false))

	var locations, transactions int64
	db.Model(&models.Location{}).Count(&locations)
	db.Model(&models.Transaction{}).Count(&transactions)

	assert.EqualValues(t, 2, locations, "masters must upsert, not duplicate")
	assert.EqualValues(t, 4, transactions, "transactions must replace, not accumulate")
}

func TestLoadDatasetSkipsTransactionsWhenAsked(t *testing.T) {
	db := openLoaderDB(t)
	loader := NewLoader(db, nil, DefaultBatchSize)

	require.NoError(t, loader.LoadDataset(loaderFixture(), true))

	var products, transactions int64
	db.Model(&models.Product{}).Count(&products)
	db.Model(&models.Transaction{}).Count(&transactions)

	assert.EqualValues(t, 2, products)
	assert.Zero(t, transactions)
}

func TestLoadDatasetDropsDuplicateTransactionNumbers(t *testing.T) {
	db := openLoaderDB(t)
	loader := NewLoader(db, nil, DefaultBatchSize)

	ds := loaderFixture()
	dup := ds.Transactions[0]
	dup.TransactionID = "TXN-00000099"
	dup.TotalAmount = 999.00
	ds.Transactions = append(ds.Transactions, dup)

	require.NoError(t, loader.LoadDataset(ds, false))

	var transactions int64
	db.Model(&models.Transaction{}).Count(&transactions)
	assert.EqualValues(t, 4, transactions)

	var kept models.Transaction
	require.NoError(t, db.First(&kept, "transaction_number = ?", "#100001").Error)
	assert.Equal(t, "TXN-00000001", kept.TransactionID, "first occurrence wins")
}

func TestLoadAllReadsDatasetFromStore(t *testing.T) {
	db := openLoaderDB(t)

	cfg := genconfig.Default()
	cfg.Transactions = 4
	cfg.Locations = 2
	cfg.Products = 2
	cfg.Employees = 2

	store := dataset.NewStore(t.TempDir())
	require.NoError(t, store.Write(loaderFixture(), dataset.NewManifest(cfg)))

	loader := NewLoader(db, store, 0)
	require.NoError(t, loader.LoadAll(false))

	var locations, transactions int64
	db.Model(&models.Location{}).Count(&locations)
	db.Model(&models.Transaction{}).Count(&transactions)

	assert.EqualValues(t, 2, locations)
	assert.EqualValues(t, 4, transactions)
}
