package generator

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/Rishi4227/epos-data-pipeline/config"
	"github.com/Rishi4227/epos-data-pipeline/internal/genconfig"
)

// Generator produces a full synthetic dataset from one seeded RNG stream
type Generator struct {
	cfg *genconfig.Config
	rng *rand.Rand
	smp *Sampler

	start time.Time
	end   time.Time
	days  int

	locations []Location
	products  []Product
	employees []Employee

	staffByLocation map[string][]int
}

// New validates the configuration and builds the master data
func New(cfg *genconfig.Config) (*Generator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	start, end, err := cfg.Window()
	if err != nil {
		return nil, err
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	g := &Generator{
		cfg:   cfg,
		rng:   rng,
		smp:   NewSampler(rng),
		start: start,
		end:   end,
		days:  int(end.Sub(start).Hours() / 24),
	}

	// Master data consumes the seeded stream first, in a fixed order
	g.locations = g.generateLocations()
	g.products = g.generateProducts()
	g.employees = g.generateEmployees()

	g.staffByLocation = make(map[string][]int)
	for i, e := range g.employees {
		g.staffByLocation[e.LocationID] = append(g.staffByLocation[e.LocationID], i)
	}

	config.GetLogger().Infof("Initialized generator with %d locations, %d products, %d employees",
		len(g.locations), len(g.products), len(g.employees))

	return g, nil
}

// Generate runs the synthesis loop and returns the complete dataset
func (g *Generator) Generate() (*Dataset, error) {
	if len(g.locations) == 0 {
		return nil, fmt.Errorf("no locations available")
	}
	if len(g.products) == 0 {
		return nil, fmt.Errorf("no products available")
	}
	if len(g.employees) == 0 {
		return nil, fmt.Errorf("no employees available")
	}

	log := config.GetLogger()
	log.Infof("Generating %d transactions...", g.cfg.Transactions)

	transactions := make([]Transaction, 0, g.cfg.Transactions)
	for i := 0; i < g.cfg.Transactions; i++ {
		transactions = append(transactions, g.synthesizeTransaction(i))

		if (i+1)%10000 == 0 {
			log.Infof("  ... %d/%d transactions", i+1, g.cfg.Transactions)
		}
	}

	log.Infof("Generated %d transactions", len(transactions))

	return &Dataset{
		Locations:    g.locations,
		Products:     g.products,
		Employees:    g.employees,
		Transactions: transactions,
	}, nil
}
