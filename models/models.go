package models

// AllModels returns all model structs for auto-migration
// IMPORTANT: Order matters! Parent tables must be created before child tables
func AllModels() []interface{} {
	return []interface{}{
		// 1. Independent tables (no foreign keys)
		&Organization{},
		&Product{},

		// 2. Tables with single dependencies
		&Location{}, // depends on: Organization
		&Employee{}, // depends on: Location

		// 3. Fact tables
		&Transaction{},     // depends on: Location, Employee
		&TransactionItem{}, // depends on: Transaction, Product
	}
}
