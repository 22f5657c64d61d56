package genconfig_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Rishi4227/epos-data-pipeline/internal/genconfig"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigValidates(t *testing.T) {
	require.NoError(t, genconfig.Default().Validate())
}

func TestValidateRejectsBadConfigs(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(cfg *genconfig.Config)
		wantErr string
	}{
		{
			name:    "zero transactions",
			mutate:  func(cfg *genconfig.Config) { cfg.Transactions = 0 },
			wantErr: "transactions must be positive",
		},
		{
			name:    "negative locations",
			mutate:  func(cfg *genconfig.Config) { cfg.Locations = -1 },
			wantErr: "locations must be positive",
		},
		{
			name:    "zero products",
			mutate:  func(cfg *genconfig.Config) { cfg.Products = 0 },
			wantErr: "products must be positive",
		},
		{
			name:    "zero employees",
			mutate:  func(cfg *genconfig.Config) { cfg.Employees = 0 },
			wantErr: "employees must be positive",
		},
		{
			name:    "window runs backwards",
			mutate:  func(cfg *genconfig.Config) { cfg.EndDate = "2023-12-31" },
			wantErr: "is before start_date",
		},
		{
			name:    "malformed start date",
			mutate:  func(cfg *genconfig.Config) { cfg.StartDate = "01/01/2024" },
			wantErr: "invalid start_date",
		},
		{
			name: "opening after closing",
			mutate: func(cfg *genconfig.Config) {
				cfg.OpenHour = 18
				cfg.CloseHour = 9
			},
			wantErr: "invalid business hours",
		},
		{
			name:    "closing hour past midnight",
			mutate:  func(cfg *genconfig.Config) { cfg.CloseHour = 24 },
			wantErr: "invalid business hours",
		},
		{
			name:    "hour weights too short",
			mutate:  func(cfg *genconfig.Config) { cfg.HourWeights = []float64{1, 1, 1} },
			wantErr: "hour_weights covers",
		},
		{
			name:    "no categories",
			mutate:  func(cfg *genconfig.Config) { cfg.Categories = nil },
			wantErr: "categories must not be empty",
		},
		{
			name:    "no location profiles",
			mutate:  func(cfg *genconfig.Config) { cfg.Profiles = nil },
			wantErr: "profiles must not be empty",
		},
		{
			name:    "no status weights",
			mutate:  func(cfg *genconfig.Config) { cfg.StatusWeights = nil },
			wantErr: "status_weights must not be empty",
		},
		{
			name: "negative status weight",
			mutate: func(cfg *genconfig.Config) {
				cfg.StatusWeights = []genconfig.Weight{{Value: "completed", Weight: -1}}
			},
			wantErr: "has negative weight",
		},
		{
			name: "all-zero payment weights",
			mutate: func(cfg *genconfig.Config) {
				cfg.PaymentWeights = []genconfig.Weight{{Value: "cash", Weight: 0}}
			},
			wantErr: "payment_weights must contain a positive weight",
		},
		{
			name:    "all-zero item weights",
			mutate:  func(cfg *genconfig.Config) { cfg.ItemWeights = []float64{0, 0} },
			wantErr: "item_weights must contain a positive weight",
		},
		{
			name:    "no quantity weights",
			mutate:  func(cfg *genconfig.Config) { cfg.QuantityWeights = nil },
			wantErr: "quantity_weights must contain a positive weight",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := genconfig.Default()
			tc.mutate(cfg)

			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestWindowParsesConfiguredDates(t *testing.T) {
	cfg := genconfig.Default()
	start, end, err := cfg.Window()
	require.NoError(t, err)

	assert.Equal(t, cfg.StartDate, start.Format(genconfig.DateFormat))
	assert.Equal(t, cfg.EndDate, end.Format(genconfig.DateFormat))
	assert.True(t, end.After(start))
}

func TestLoadWithoutFileReturnsDefaults(t *testing.T) {
	cfg, err := genconfig.Load("")
	require.NoError(t, err)

	want := genconfig.Default()
	assert.Equal(t, want.Transactions, cfg.Transactions)
	assert.Equal(t, want.Seed, cfg.Seed)
	assert.Equal(t, want.StartDate, cfg.StartDate)
	assert.Equal(t, want.Categories, cfg.Categories)
	assert.Equal(t, want.OutputDir, cfg.OutputDir)
}

func TestLoadAppliesYAMLOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "generation.yaml")
	yaml := `transactions: 500
seed: 7
start_date: "2025-02-01"
end_date: "2025-02-28"
open_hour: 9
close_hour: 17
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o644))

	cfg, err := genconfig.Load(path)
	require.NoError(t, err)

	assert.Equal(t, 500, cfg.Transactions)
	assert.Equal(t, int64(7), cfg.Seed)
	assert.Equal(t, "2025-02-01", cfg.StartDate)
	assert.Equal(t, "2025-02-28", cfg.EndDate)
	assert.Equal(t, 9, cfg.OpenHour)
	assert.Equal(t, 17, cfg.CloseHour)

	// Untouched keys keep their defaults
	assert.Equal(t, genconfig.Default().Locations, cfg.Locations)
	assert.Len(t, cfg.Categories, len(genconfig.Default().Categories))
}

func TestLoadHonorsEnvironmentOverrides(t *testing.T) {
	t.Setenv("EPOS_TRANSACTIONS", "321")
	t.Setenv("EPOS_SEED", "9")
	t.Setenv("EPOS_OUTPUT_DIR", "data/alt")

	cfg, err := genconfig.Load("")
	require.NoError(t, err)

	assert.Equal(t, 321, cfg.Transactions)
	assert.Equal(t, int64(9), cfg.Seed)
	assert.Equal(t, "data/alt", cfg.OutputDir)
}

func TestLoadRejectsMissingFile(t *testing.T) {
	_, err := genconfig.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLookupsTolerateLowercasedKeys(t *testing.T) {
	cfg := genconfig.Default()

	// viper lowercases map keys when they come from a YAML file
	lowerRanges := make(map[string]genconfig.PriceRange, len(cfg.PriceRanges))
	for k, v := range cfg.PriceRanges {
		lowerRanges[strings.ToLower(k)] = v
	}
	cfg.PriceRanges = lowerRanges

	lowerPools := make(map[string][]string, len(cfg.NamePools))
	for k, v := range cfg.NamePools {
		lowerPools[strings.ToLower(k)] = v
	}
	cfg.NamePools = lowerPools

	lowerBrands := make(map[string][]string, len(cfg.BrandPools))
	for k, v := range cfg.BrandPools {
		lowerBrands[strings.ToLower(k)] = v
	}
	cfg.BrandPools = lowerBrands

	r, ok := cfg.PriceRangeFor("Main Course")
	require.True(t, ok)
	assert.Equal(t, 12.00, r.Min)
	assert.Equal(t, 28.00, r.Max)

	pool, ok := cfg.NamePoolFor("Beer")
	require.True(t, ok)
	assert.NotEmpty(t, pool)

	brands, ok := cfg.BrandPoolFor("Wine")
	require.True(t, ok)
	assert.NotEmpty(t, brands)

	_, ok = cfg.PriceRangeFor("Unknown Category")
	assert.False(t, ok)
}
