package generator

import (
	"fmt"
	"strings"
	"time"

	"github.com/Rishi4227/epos-data-pipeline/models"
)

// Registers per venue for device stamping
const registersPerLocation = 3

// synthesizeTransaction builds record i. The sampler call order below is
// fixed; reordering it changes every seeded run.
func (g *Generator) synthesizeTransaction(i int) Transaction {
	// Timestamp: uniform date in window, weighted hour, uniform minute/second
	date := g.start.AddDate(0, 0, g.smp.IntBetween(0, g.days))
	hour := g.cfg.OpenHour + g.smp.PickIndex(g.cfg.HourWeights[g.cfg.OpenHour:g.cfg.CloseHour+1])
	minute := g.smp.IntBetween(0, 59)
	second := g.smp.IntBetween(0, 59)
	timestamp := time.Date(date.Year(), date.Month(), date.Day(), hour, minute, second, 0, time.UTC)

	// Master entity selection
	location := g.locations[g.smp.IntBetween(0, len(g.locations)-1)]
	employee := g.pickEmployee(location.LocationID)

	// Line items: k distinct products, per-item quantity, running totals
	numItems := g.smp.PickIndex(g.cfg.ItemWeights) + 1
	picked := g.pickDistinctProducts(numItems)
	numItems = len(picked)

	subtotal := 0.0
	taxTotal := 0.0
	for _, p := range picked {
		quantity := g.smp.PickIndex(g.cfg.QuantityWeights) + 1
		lineSubtotal := float64(quantity) * p.BasePrice
		subtotal += lineSubtotal
		if p.IsTaxable {
			taxTotal += lineSubtotal * p.TaxRate
		}
	}

	// Discount gate
	discountTotal := 0.0
	if g.smp.Bernoulli(g.cfg.DiscountRate) {
		discountTotal = Round2(subtotal * g.smp.UniformFloat(g.cfg.DiscountMin, g.cfg.DiscountMax))
	}

	// Tip gate: restaurants only, the draw is skipped elsewhere
	tipAmount := 0.0
	if location.LocationType == "restaurant" && g.smp.Bernoulli(g.cfg.TipRate) {
		tipAmount = Round2(subtotal * g.smp.UniformFloat(g.cfg.TipMin, g.cfg.TipMax))
	}

	totalAmount := Round2(subtotal + taxTotal - discountTotal + tipAmount)

	// Status pair and payment method
	status := g.smp.Pick(g.cfg.StatusWeights)
	method := g.smp.Pick(g.cfg.PaymentWeights)
	paymentStatus := paymentStatusFor(status)

	// Payment artifacts
	transactionNumber := fmt.Sprintf("#%06d", g.smp.IntBetween(100000, 999999))
	deviceID := fmt.Sprintf("DEV-%s-%02d", location.LocationID, g.smp.IntBetween(1, registersPerLocation))

	cardLastFour := ""
	if strings.Contains(method, "card") {
		cardLastFour = fmt.Sprintf("%04d", g.smp.IntBetween(1000, 9999))
	}

	authorizationCode := ""
	if paymentStatus == string(models.PaymentCaptured) {
		authorizationCode = fmt.Sprintf("AUTH-%06d", g.smp.IntBetween(100000, 999999))
	}

	// The record keeps the first sampled product only; all of them fed the totals
	primary := picked[0]

	return Transaction{
		TransactionID:     fmt.Sprintf("TXN-%08d", i+1),
		TransactionNumber: transactionNumber,
		Timestamp:         timestamp,
		TransactionDate:   date.Format("2006-01-02"),
		TransactionTime:   timestamp.Format("15:04:05"),
		LocationID:        location.LocationID,
		LocationName:      location.LocationName,
		LocationType:      location.LocationType,
		City:              location.City,
		DeviceID:          deviceID,
		EmployeeID:        employee.EmployeeID,
		EmployeeName:      employee.FirstName + " " + employee.LastName,
		NumItems:          numItems,
		ProductID:         primary.ProductID,
		ProductName:       primary.ProductName,
		ProductCategory:   primary.ProductCategory,
		Quantity:          numItems,
		UnitPrice:         primary.BasePrice,
		Subtotal:          Round2(subtotal),
		TaxTotal:          Round2(taxTotal),
		DiscountTotal:     Round2(discountTotal),
		TipAmount:         Round2(tipAmount),
		TotalAmount:       totalAmount,
		PaymentMethod:     method,
		PaymentStatus:     paymentStatus,
		TransactionStatus: status,
		CardLastFour:      cardLastFour,
		AuthorizationCode: authorizationCode,
	}
}

// pickEmployee draws uniformly from the location's staff, or from the whole
// roster when the location has nobody assigned
func (g *Generator) pickEmployee(locationID string) Employee {
	staff := g.staffByLocation[locationID]
	if len(staff) == 0 {
		return g.employees[g.smp.IntBetween(0, len(g.employees)-1)]
	}
	return g.employees[staff[g.smp.IntBetween(0, len(staff)-1)]]
}

// pickDistinctProducts samples k products without replacement, clamping k
// to the catalog size
func (g *Generator) pickDistinctProducts(k int) []*Product {
	if k > len(g.products) {
		k = len(g.products)
	}

	picked := make([]*Product, 0, k)
	seen := make(map[int]bool, k)
	for len(picked) < k {
		idx := g.smp.IntBetween(0, len(g.products)-1)
		if seen[idx] {
			continue
		}
		seen[idx] = true
		picked = append(picked, &g.products[idx])
	}

	return picked
}

// paymentStatusFor maps the transaction status to its payment status:
// completed becomes captured, refunded stays refunded, error becomes
// failed, anything else is voided
func paymentStatusFor(status string) string {
	switch status {
	case string(models.StatusCompleted):
		return string(models.PaymentCaptured)
	case string(models.StatusRefunded):
		return string(models.PaymentRefunded)
	case string(models.StatusError):
		return string(models.PaymentFailed)
	default:
		return string(models.PaymentVoided)
	}
}
