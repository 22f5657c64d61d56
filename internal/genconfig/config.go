package genconfig

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// DateFormat is the wire format for the generation window bounds
const DateFormat = "2006-01-02"

// Weight pairs an outcome with its relative weight. Samplers walk the table
// in slice order, so the order here is part of the seeded stream.
type Weight struct {
	Value  string  `mapstructure:"value"`
	Weight float64 `mapstructure:"weight"`
}

// PriceRange bounds a category's base price, inclusive
type PriceRange struct {
	Min float64 `mapstructure:"min"`
	Max float64 `mapstructure:"max"`
}

// LocationProfile describes one venue template
type LocationProfile struct {
	Name     string `mapstructure:"name"`
	Type     string `mapstructure:"type"`
	City     string `mapstructure:"city"`
	Timezone string `mapstructure:"timezone"`
}

// Config holds every knob of a generation run. Built once at startup and
// treated as immutable from then on.
type Config struct {
	Transactions int   `mapstructure:"transactions"`
	Locations    int   `mapstructure:"locations"`
	Products     int   `mapstructure:"products"`
	Employees    int   `mapstructure:"employees"`
	Seed         int64 `mapstructure:"seed"`

	StartDate string `mapstructure:"start_date"`
	EndDate   string `mapstructure:"end_date"`

	// Business hours, inclusive on both ends
	OpenHour  int `mapstructure:"open_hour"`
	CloseHour int `mapstructure:"close_hour"`

	StatusWeights  []Weight `mapstructure:"status_weights"`
	PaymentWeights []Weight `mapstructure:"payment_weights"`

	// HourWeights covers the full day; the sampler slices [OpenHour..CloseHour]
	HourWeights []float64 `mapstructure:"hour_weights"`
	// ItemWeights[i] is the weight of a transaction with i+1 line items
	ItemWeights []float64 `mapstructure:"item_weights"`
	// QuantityWeights[i] is the weight of quantity i+1 for a single item
	QuantityWeights []float64 `mapstructure:"quantity_weights"`

	DiscountRate float64 `mapstructure:"discount_rate"`
	DiscountMin  float64 `mapstructure:"discount_min"`
	DiscountMax  float64 `mapstructure:"discount_max"`
	TipRate      float64 `mapstructure:"tip_rate"`
	TipMin       float64 `mapstructure:"tip_min"`
	TipMax       float64 `mapstructure:"tip_max"`

	TaxRate float64 `mapstructure:"tax_rate"`

	Categories  []string              `mapstructure:"categories"`
	PriceRanges map[string]PriceRange `mapstructure:"price_ranges"`
	NamePools   map[string][]string   `mapstructure:"name_pools"`
	BrandPools  map[string][]string   `mapstructure:"brand_pools"`
	Profiles    []LocationProfile     `mapstructure:"profiles"`

	FirstNames    []string `mapstructure:"first_names"`
	LastNames     []string `mapstructure:"last_names"`
	Streets       []string `mapstructure:"streets"`
	PostcodeAreas []string `mapstructure:"postcode_areas"`

	OutputDir string `mapstructure:"output_dir"`
}

// Load builds the configuration from defaults, an optional YAML file and
// EPOS_-prefixed environment variables (scalars only)
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("EPOS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Window parses the configured date range
func (c *Config) Window() (start, end time.Time, err error) {
	start, err = time.Parse(DateFormat, c.StartDate)
	if err != nil {
		return start, end, fmt.Errorf("invalid start_date %q: %w", c.StartDate, err)
	}
	end, err = time.Parse(DateFormat, c.EndDate)
	if err != nil {
		return start, end, fmt.Errorf("invalid end_date %q: %w", c.EndDate, err)
	}
	return start, end, nil
}

// Validate rejects configurations that cannot produce a complete run
func (c *Config) Validate() error {
	if c.Transactions <= 0 {
		return fmt.Errorf("transactions must be positive, got %d", c.Transactions)
	}
	if c.Locations <= 0 {
		return fmt.Errorf("locations must be positive, got %d", c.Locations)
	}
	if c.Products <= 0 {
		return fmt.Errorf("products must be positive, got %d", c.Products)
	}
	if c.Employees <= 0 {
		return fmt.Errorf("employees must be positive, got %d", c.Employees)
	}

	start, end, err := c.Window()
	if err != nil {
		return err
	}
	if end.Before(start) {
		return fmt.Errorf("end_date %s is before start_date %s", c.EndDate, c.StartDate)
	}

	if c.OpenHour < 0 || c.CloseHour > 23 || c.OpenHour > c.CloseHour {
		return fmt.Errorf("invalid business hours %d..%d", c.OpenHour, c.CloseHour)
	}
	if len(c.HourWeights) < c.CloseHour+1 {
		return fmt.Errorf("hour_weights covers %d hours, need at least %d", len(c.HourWeights), c.CloseHour+1)
	}

	if len(c.Categories) == 0 {
		return fmt.Errorf("categories must not be empty")
	}
	if len(c.Profiles) == 0 {
		return fmt.Errorf("profiles must not be empty")
	}

	for _, table := range []struct {
		name    string
		weights []Weight
	}{
		{"status_weights", c.StatusWeights},
		{"payment_weights", c.PaymentWeights},
	} {
		if err := validateWeights(table.name, table.weights); err != nil {
			return err
		}
	}

	if sumFloats(c.ItemWeights) <= 0 {
		return fmt.Errorf("item_weights must contain a positive weight")
	}
	if sumFloats(c.QuantityWeights) <= 0 {
		return fmt.Errorf("quantity_weights must contain a positive weight")
	}

	return nil
}

// PriceRangeFor returns the price range of a category, tolerating the
// lowercased map keys viper produces from YAML files
func (c *Config) PriceRangeFor(category string) (PriceRange, bool) {
	if r, ok := c.PriceRanges[category]; ok {
		return r, true
	}
	r, ok := c.PriceRanges[strings.ToLower(category)]
	return r, ok
}

// NamePoolFor returns the name fragments of a category, same key tolerance
func (c *Config) NamePoolFor(category string) ([]string, bool) {
	if p, ok := c.NamePools[category]; ok {
		return p, true
	}
	p, ok := c.NamePools[strings.ToLower(category)]
	return p, ok
}

// BrandPoolFor returns the brand tokens of a category, same key tolerance
func (c *Config) BrandPoolFor(category string) ([]string, bool) {
	if p, ok := c.BrandPools[category]; ok {
		return p, true
	}
	p, ok := c.BrandPools[strings.ToLower(category)]
	return p, ok
}

func validateWeights(name string, weights []Weight) error {
	if len(weights) == 0 {
		return fmt.Errorf("%s must not be empty", name)
	}
	total := 0.0
	for _, w := range weights {
		if w.Weight < 0 {
			return fmt.Errorf("%s has negative weight for %q", name, w.Value)
		}
		total += w.Weight
	}
	if total <= 0 {
		return fmt.Errorf("%s must contain a positive weight", name)
	}
	return nil
}

func sumFloats(values []float64) float64 {
	total := 0.0
	for _, v := range values {
		total += v
	}
	return total
}
