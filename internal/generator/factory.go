package generator

import (
	"fmt"

	"github.com/Rishi4227/epos-data-pipeline/internal/genconfig"
)

const postcodeLetters = "ABDEFGHJLNPRSTUWXYZ"

// generateLocations builds the venue list from the configured profiles.
// Counts beyond the profile table reuse profiles with numbered names.
func (g *Generator) generateLocations() []Location {
	profiles := g.cfg.Profiles
	locations := make([]Location, 0, g.cfg.Locations)

	for i := 0; i < g.cfg.Locations; i++ {
		profile := profiles[i%len(profiles)]
		name := profile.Name
		if round := i / len(profiles); round > 0 {
			name = fmt.Sprintf("%s %d", profile.Name, round+1)
		}

		locations = append(locations, Location{
			LocationID:   fmt.Sprintf("LOC-%03d", i+1),
			LocationName: name,
			LocationType: profile.Type,
			City:         profile.City,
			Timezone:     profile.Timezone,
			Address:      g.randomAddress(),
			PostalCode:   g.randomPostcode(),
		})
	}

	return locations
}

// generateProducts builds the catalog, spreading products round-robin
// across the configured categories
func (g *Generator) generateProducts() []Product {
	products := make([]Product, 0, g.cfg.Products)

	for i := 0; i < g.cfg.Products; i++ {
		category := g.cfg.Categories[i%len(g.cfg.Categories)]
		priceRange, ok := g.cfg.PriceRangeFor(category)
		if !ok {
			priceRange = genconfig.PriceRange{Min: 2.00, Max: 10.00}
		}

		name := g.productName(category)
		basePrice := Round2(g.smp.UniformFloat(priceRange.Min, priceRange.Max))
		costPrice := Round2(g.smp.UniformFloat(priceRange.Min*0.3, priceRange.Min*0.6))

		products = append(products, Product{
			ProductID:       fmt.Sprintf("PRD-%05d", i+1),
			ProductName:     name,
			ProductCategory: category,
			BasePrice:       basePrice,
			CostPrice:       costPrice,
			SKU:             fmt.Sprintf("SKU-%05d", i+1),
			IsTaxable:       true,
			TaxRate:         g.cfg.TaxRate,
		})
	}

	return products
}

// generateEmployees builds the staff roster. Location assignment is uniform
// and independent per employee, so locations can end up with no staff.
func (g *Generator) generateEmployees() []Employee {
	employees := make([]Employee, 0, g.cfg.Employees)

	for i := 0; i < g.cfg.Employees; i++ {
		first := g.smp.PickString(g.cfg.FirstNames)
		last := g.smp.PickString(g.cfg.LastNames)

		// Three cashiers for every manager
		role := "cashier"
		if g.smp.IntBetween(1, 4) == 4 {
			role = "manager"
		}

		location := g.locations[g.smp.IntBetween(0, len(g.locations)-1)]

		employees = append(employees, Employee{
			EmployeeID: fmt.Sprintf("EMP-%04d", i+1),
			FirstName:  first,
			LastName:   last,
			Role:       role,
			LocationID: location.LocationID,
		})
	}

	return employees
}

// productName samples a category fragment, optionally fronted by a brand
// token. Unknown categories fall back to the category name itself.
func (g *Generator) productName(category string) string {
	pool, ok := g.cfg.NamePoolFor(category)
	if !ok || len(pool) == 0 {
		pool = []string{category}
	}
	name := g.smp.PickString(pool)

	if brands, ok := g.cfg.BrandPoolFor(category); ok && len(brands) > 0 {
		name = g.smp.PickString(brands) + " " + name
	}

	return name
}

func (g *Generator) randomAddress() string {
	return fmt.Sprintf("%d %s", g.smp.IntBetween(1, 180), g.smp.PickString(g.cfg.Streets))
}

func (g *Generator) randomPostcode() string {
	area := g.smp.PickString(g.cfg.PostcodeAreas)
	l1 := postcodeLetters[g.smp.IntBetween(0, len(postcodeLetters)-1)]
	l2 := postcodeLetters[g.smp.IntBetween(0, len(postcodeLetters)-1)]
	return fmt.Sprintf("%s%d %d%c%c", area, g.smp.IntBetween(1, 9), g.smp.IntBetween(0, 9), l1, l2)
}
