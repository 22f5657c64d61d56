package dataset_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Rishi4227/epos-data-pipeline/internal/dataset"
	"github.com/Rishi4227/epos-data-pipeline/internal/genconfig"
	"github.com/Rishi4227/epos-data-pipeline/internal/generator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func smallConfig() *genconfig.Config {
	cfg := genconfig.Default()
	cfg.Transactions = 3
	cfg.Locations = 2
	cfg.Products = 2
	cfg.Employees = 2
	cfg.Seed = 42
	return cfg
}

// fixtureDataset is handcrafted with two-decimal amounts and whole-second
// timestamps, so the CSV round trip must be lossless
func fixtureDataset() *generator.Dataset {
	return &generator.Dataset{
		Locations: []generator.Location{
			{LocationID: "LOC-001", LocationName: "Downtown Taproom", LocationType: "bar", City: "Manchester", Timezone: "Europe/London", Address: "12 High Street", PostalCode: "M1 4AB"},
			{LocationID: "LOC-002", LocationName: "Riverside Bistro", LocationType: "restaurant", City: "Bristol", Timezone: "Europe/London", Address: "3 Mill Lane", PostalCode: "BS2 8XY"},
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
			{
				TransactionID:     "TXN-00000001",
				TransactionNumber: "#100001",
				Timestamp:         time.Date(2024, 3, 5, 12, 30, 0, 0, time.UTC),
				TransactionDate:   "2024-03-05",
				TransactionTime:   "12:30:00",
				LocationID:        "LOC-001",
				LocationName:      "Downtown Taproom",
				LocationType:      "bar",
				City:              "Manchester",
				DeviceID:          "DEV-LOC-001-01",
				EmployeeID:        "EMP-0001",
				EmployeeName:      "Oliver Taylor",
				NumItems:          2,
				ProductID:         "PRD-00001",
				ProductName:       "Blackwater IPA",
				ProductCategory:   "Beer",
				Quantity:          2,
				UnitPrice:         4.50,
				Subtotal:          9.00,
				TaxTotal:          1.80,
				DiscountTotal:     0.00,
				TipAmount:         0.00,
				TotalAmount:       10.80,
				PaymentMethod:     "credit_card",
				PaymentStatus:     "captured",
				TransactionStatus: "completed",
				CardLastFour:      "4242",
				AuthorizationCode: "AUTH-123456",
			},
			{
				TransactionID:     "TXN-00000002",
				TransactionNumber: "#100002",
				Timestamp:         time.Date(2024, 3, 6, 19, 45, 30, 0, time.UTC),
				TransactionDate:   "2024-03-06",
				TransactionTime:   "19:45:30",
				LocationID:        "LOC-002",
				LocationName:      "Riverside Bistro",
				LocationType:      "restaurant",
				City:              "Bristol",
				DeviceID:          "DEV-LOC-002-03",
				EmployeeID:        "EMP-0002",
				EmployeeName:      "Amelia Brown",
				NumItems:          1,
				ProductID:         "PRD-00002",
				ProductName:       "Burger",
				ProductCategory:   "Main Course",
				Quantity:          1,
				UnitPrice:         14.00,
				Subtotal:          14.00,
				TaxTotal:          2.80,
				DiscountTotal:     1.40,
				TipAmount:         2.10,
				TotalAmount:       17.50,
				PaymentMethod:     "cash",
				PaymentStatus:     "voided",
				TransactionStatus: "voided",
				CardLastFour:      "",
				AuthorizationCode: "",
			},
		},
	}
}

func TestWriteThenReadRoundTrips(t *testing.T) {
	store := dataset.NewStore(t.TempDir())
	ds := fixtureDataset()
	manifest := dataset.NewManifest(smallConfig())

	require.NoError(t, store.Write(ds, manifest))

	got, gotManifest, err := store.Read()
	require.NoError(t, err)

	assert.Equal(t, ds.Locations, got.Locations)
	assert.Equal(t, ds.Products, got.Products)
	assert.Equal(t, ds.Employees, got.Employees)
	assert.Equal(t, ds.Transactions, got.Transactions)

	assert.Equal(t, manifest.RunID, gotManifest.RunID)
	assert.Equal(t, manifest.Seed, gotManifest.Seed)
	assert.Equal(t, manifest.Transactions, gotManifest.Transactions)
	assert.Equal(t, manifest.StartDate, gotManifest.StartDate)
	assert.Equal(t, manifest.EndDate, gotManifest.EndDate)
	assert.Equal(t, manifest.OpenHour, gotManifest.OpenHour)
	assert.Equal(t, manifest.CloseHour, gotManifest.CloseHour)
	assert.WithinDuration(t, manifest.GeneratedAt, gotManifest.GeneratedAt, time.Second)
}

func TestWriteCreatesDatasetFiles(t *testing.T) {
	dir := t.TempDir()
	store := dataset.NewStore(dir)

	require.NoError(t, store.Write(fixtureDataset(), dataset.NewManifest(smallConfig())))

	for _, name := range []string{
		dataset.TransactionsFile,
		dataset.LocationsFile,
		dataset.ProductsFile,
		dataset.EmployeesFile,
		dataset.ManifestFile,
	} {
		_, err := os.Stat(filepath.Join(dir, name))
		assert.NoError(t, err, "missing %s", name)
	}
}

func TestWriteCreatesMissingDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "raw")
	store := dataset.NewStore(dir)

	require.NoError(t, store.Write(fixtureDataset(), dataset.NewManifest(smallConfig())))

	_, err := os.Stat(filepath.Join(dir, dataset.ManifestFile))
	assert.NoError(t, err)
}

func TestReadFailsWithoutManifest(t *testing.T) {
	store := dataset.NewStore(t.TempDir())

	_, _, err := store.Read()
	require.Error(t, err)
	assert.Contains(t, err.Error(), dataset.ManifestFile)
}

func TestReadRejectsMalformedRows(t *testing.T) {
	dir := t.TempDir()
	store := dataset.NewStore(dir)
	require.NoError(t, store.Write(fixtureDataset(), dataset.NewManifest(smallConfig())))

	corrupt := "product_id,product_name,product_category,base_price,cost_price,sku,is_taxable,tax_rate\n" +
		"PRD-00001,Lager,Beer,notanumber,1.20,SKU-00001,true,0.20\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, dataset.ProductsFile), []byte(corrupt), 0o644))

	_, _, err := store.Read()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "base_price")
}

func TestGeneratedDatasetSurvivesRoundTrip(t *testing.T) {
	cfg := smallConfig()
	cfg.Transactions = 250
	cfg.Products = 10
	cfg.Employees = 4

	g, err := generator.New(cfg)
	require.NoError(t, err)
	ds, err := g.Generate()
	require.NoError(t, err)

	store := dataset.NewStore(t.TempDir())
	require.NoError(t, store.Write(ds, dataset.NewManifest(cfg)))

	got, _, err := store.Read()
	require.NoError(t, err)

	require.Equal(t, ds.Locations, got.Locations)
	require.Equal(t, ds.Products, got.Products)
	require.Equal(t, ds.Employees, got.Employees)
	require.Equal(t, ds.Transactions, got.Transactions)
}
