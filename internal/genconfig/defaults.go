package genconfig

import "github.com/spf13/viper"

// Default returns the stock configuration: a year of trading across eight
// UK hospitality venues
func Default() *Config {
	return &Config{
		Transactions: 100000,
		Locations:    8,
		Products:     150,
		Employees:    25,
		Seed:         42,

		StartDate: "2024-01-01",
		EndDate:   "2024-12-31",

		OpenHour:  10,
		CloseHour: 23,

		StatusWeights: []Weight{
			{Value: "completed", Weight: 92},
			{Value: "refunded", Weight: 5},
			{Value: "voided", Weight: 2},
			{Value: "error", Weight: 1},
		},
		PaymentWeights: []Weight{
			{Value: "credit_card", Weight: 45},
			{Value: "debit_card", Weight: 30},
			{Value: "cash", Weight: 15},
			{Value: "mobile_payment", Weight: 8},
			{Value: "gift_card", Weight: 2},
		},

		// Lunch bump at 12-13, evening peak at 16-19
		HourWeights: []float64{
			0.5, 0.5, 0.5, 0.5, 0.5, 0.5, 0.5, 0.5, 0.5, 0.5,
			2, 2,
			1, 1,
			0.5, 0.5,
			3, 3, 3, 3,
			1, 1, 1, 1,
		},
		ItemWeights:     []float64{30, 30, 20, 10, 7, 3},
		QuantityWeights: []float64{70, 20, 10},

		DiscountRate: 0.10,
		DiscountMin:  0.05,
		DiscountMax:  0.20,
		TipRate:      0.30,
		TipMin:       0.10,
		TipMax:       0.20,

		TaxRate: 0.20, // UK VAT

		Categories: []string{
			"Beer",
			"Wine",
			"Spirits",
			"Cocktails",
			"Soft Drinks",
			"Appetizers",
			"Main Course",
			"Desserts",
			"Sides",
			"Hot Beverages",
		},
		PriceRanges: map[string]PriceRange{
			"Beer":          {Min: 3.50, Max: 7.00},
			"Wine":          {Min: 5.00, Max: 12.00},
			"Spirits":       {Min: 4.00, Max: 15.00},
			"Cocktails":     {Min: 8.00, Max: 16.00},
			"Soft Drinks":   {Min: 2.00, Max: 4.50},
			"Appetizers":    {Min: 5.00, Max: 12.00},
			"Main Course":   {Min: 12.00, Max: 28.00},
			"Desserts":      {Min: 5.00, Max: 9.00},
			"Sides":         {Min: 3.00, Max: 7.00},
			"Hot Beverages": {Min: 2.50, Max: 5.00},
		},
		NamePools: map[string][]string{
			"Beer":          {"Lager", "IPA", "Pale Ale", "Stout", "Pilsner"},
			"Wine":          {"Chardonnay", "Merlot", "Pinot Noir", "Sauvignon Blanc", "Rosé"},
			"Spirits":       {"Vodka", "Gin", "Rum", "Whisky", "Tequila", "Bourbon"},
			"Cocktails":     {"Mojito", "Margarita", "Old Fashioned", "Martini", "Cosmopolitan", "Manhattan"},
			"Soft Drinks":   {"Cola", "Lemonade", "Orange Juice", "Tonic Water", "Ginger Ale"},
			"Appetizers":    {"Chicken Wings", "Nachos", "Garlic Bread", "Calamari", "Mozzarella Sticks"},
			"Main Course":   {"Burger", "Steak", "Fish & Chips", "Pasta", "Pizza", "Salad Bowl"},
			"Desserts":      {"Chocolate Cake", "Ice Cream", "Cheesecake", "Brownie", "Apple Pie"},
			"Sides":         {"Fries", "Coleslaw", "Onion Rings", "Side Salad", "Vegetables"},
			"Hot Beverages": {"Espresso", "Cappuccino", "Latte", "Tea", "Hot Chocolate"},
		},
		// Beer and wine names carry a brand token in front of the fragment
		BrandPools: map[string][]string{
			"Beer": {"Blackwater", "Stonegate", "Whitmoor", "Kingsford", "Old Wharf", "Redbrick", "Harbourside", "Millhouse"},
			"Wine": {"Ashworth", "Caldwell", "Hargreaves", "Pemberton", "Whitfield", "Davenport"},
		},
		Profiles: []LocationProfile{
			{Name: "Downtown Taproom", Type: "bar", City: "Manchester", Timezone: "Europe/London"},
			{Name: "Riverside Bistro", Type: "restaurant", City: "Bristol", Timezone: "Europe/London"},
			{Name: "The Oak & Barrel", Type: "pub", City: "Leeds", Timezone: "Europe/London"},
			{Name: "Sunset Lounge", Type: "bar", City: "Birmingham", Timezone: "Europe/London"},
			{Name: "Garden Terrace", Type: "restaurant", City: "Liverpool", Timezone: "Europe/London"},
			{Name: "The Craft House", Type: "bar", City: "Edinburgh", Timezone: "Europe/London"},
			{Name: "Harbour View", Type: "restaurant", City: "Brighton", Timezone: "Europe/London"},
			{Name: "The Local Tavern", Type: "pub", City: "Oxford", Timezone: "Europe/London"},
		},

		FirstNames: []string{
			"Oliver", "Amelia", "George", "Isla", "Harry", "Emily", "Jack", "Sophie",
			"Thomas", "Grace", "Charlie", "Ella", "James", "Poppy", "Daniel", "Chloe",
			"William", "Lucy", "Henry", "Mia", "Edward", "Holly", "Samuel", "Ruby",
		},
		LastNames: []string{
			"Taylor", "Brown", "Wilson", "Evans", "Thomas", "Johnson", "Walker", "Wright",
			"Robinson", "Thompson", "White", "Hughes", "Edwards", "Green", "Hall", "Wood",
			"Harris", "Martin", "Jackson", "Clarke",
		},
		Streets: []string{
			"High Street", "Station Road", "Church Lane", "Bridge Street", "Market Square",
			"Castle Hill", "Victoria Road", "Mill Lane", "Queensway", "Albion Place",
		},
		PostcodeAreas: []string{"M", "BS", "LS", "B", "L", "EH", "BN", "OX"},

		OutputDir: "data/raw",
	}
}

// setDefaults registers every key so env overrides are visible to Unmarshal
func setDefaults(v *viper.Viper) {
	d := Default()

	v.SetDefault("transactions", d.Transactions)
	v.SetDefault("locations", d.Locations)
	v.SetDefault("products", d.Products)
	v.SetDefault("employees", d.Employees)
	v.SetDefault("seed", d.Seed)

	v.SetDefault("start_date", d.StartDate)
	v.SetDefault("end_date", d.EndDate)
	v.SetDefault("open_hour", d.OpenHour)
	v.SetDefault("close_hour", d.CloseHour)

	v.SetDefault("status_weights", d.StatusWeights)
	v.SetDefault("payment_weights", d.PaymentWeights)
	v.SetDefault("hour_weights", d.HourWeights)
	v.SetDefault("item_weights", d.ItemWeights)
	v.SetDefault("quantity_weights", d.QuantityWeights)

	v.SetDefault("discount_rate", d.DiscountRate)
	v.SetDefault("discount_min", d.DiscountMin)
	v.SetDefault("discount_max", d.DiscountMax)
	v.SetDefault("tip_rate", d.TipRate)
	v.SetDefault("tip_min", d.TipMin)
	v.SetDefault("tip_max", d.TipMax)
	v.SetDefault("tax_rate", d.TaxRate)

	v.SetDefault("categories", d.Categories)
	v.SetDefault("price_ranges", d.PriceRanges)
	v.SetDefault("name_pools", d.NamePools)
	v.SetDefault("brand_pools", d.BrandPools)
	v.SetDefault("profiles", d.Profiles)

	v.SetDefault("first_names", d.FirstNames)
	v.SetDefault("last_names", d.LastNames)
	v.SetDefault("streets", d.Streets)
	v.SetDefault("postcode_areas", d.PostcodeAreas)

	v.SetDefault("output_dir", d.OutputDir)
}
