package seeder

import (
	"time"

	"github.com/Rana718/seedcart/internal/model"
	"github.com/shopspring/decimal"
)

var (
	paymentMethods = []string{"Credit Card", "Debit Card", "PayPal", "Bank Transfer"}
	carriers       = []string{"FedEx", "UPS", "DHL", "USPS"}
)

const (
	paymentWindowDays  = 365
	shipmentWindowDays = 10
	discountMin        = 5.0
	discountMax        = 100.0
	discountPattern    = "DISCOUNT-????"
)

// DerivePayments emits one payment per paid order. The amount is the order total.
func DerivePayments(g *DataGenerator, orders []model.Order) []model.Payment {
	var payments []model.Payment
	for _, o := range orders {
		if !o.Status.Payable() {
			continue
		}
		payments = append(payments, model.Payment{
			ID:          len(payments) + 1,
			OrderID:     o.ID,
			Method:      g.pick(paymentMethods),
			Amount:      o.TotalAmount,
			PaymentDate: g.DateWithin(o.OrderDate, paymentWindowDays),
		})
	}
	return payments
}

// DeriveShipments emits one shipment per shipped or delivered order.
func DeriveShipments(g *DataGenerator, orders []model.Order) ([]model.Shipment, error) {
	var shipments []model.Shipment
	for _, o := range orders {
		if !o.Status.Shippable() {
			continue
		}
		date := g.DateWithin(o.OrderDate, shipmentWindowDays)
		carrier := g.pick(carriers)
		tracking, err := g.UUID()
		if err != nil {
			return nil, err
		}
		shipments = append(shipments, model.Shipment{
			ID:             len(shipments) + 1,
			OrderID:        o.ID,
			ShipmentDate:   date,
			Carrier:        carrier,
			TrackingNumber: tracking,
		})
	}
	return shipments, nil
}

// PurchaseIndex maps a product ID to the customers who ordered it, in first-order order.
type PurchaseIndex map[int][]int

// BuildPurchaseIndex inverts orders into product → customers in a single pass.
func BuildPurchaseIndex(orders []model.Order) PurchaseIndex {
	index := make(PurchaseIndex)
	seen := make(map[[2]int]bool, len(orders))
	for _, o := range orders {
		key := [2]int{o.ProductID, o.CustomerID}
		if seen[key] {
			continue
		}
		seen[key] = true
		index[o.ProductID] = append(index[o.ProductID], o.CustomerID)
	}
	return index
}

// DeriveReviews draws between min and max reviews per product. Each reviewer is picked
// from the customers who ordered that product; products nobody ordered get no reviews.
func DeriveReviews(g *DataGenerator, products []model.Product, index PurchaseIndex, min, max int, today time.Time) []model.Review {
	var reviews []model.Review
	start := Day(today).AddDate(-1, 0, 0)
	for _, p := range products {
		draws := g.IntBetween(min, max)
		buyers := index[p.ID]
		for i := 0; i < draws; i++ {
			if len(buyers) == 0 {
				continue
			}
			reviews = append(reviews, model.Review{
				ID:         len(reviews) + 1,
				ProductID:  p.ID,
				CustomerID: buyers[g.rand.Intn(len(buyers))],
				Rating:     g.IntBetween(1, 5),
				Comment:    g.Sentence(),
				ReviewDate: g.DateBetween(start, today),
			})
		}
	}
	return reviews
}

// DeriveDiscounts attaches a discount to each order with probability rate.
// The discount never exceeds the order total.
func DeriveDiscounts(g *DataGenerator, orders []model.Order, rate float64) []model.Discount {
	var discounts []model.Discount
	for _, o := range orders {
		if !g.Chance(rate) {
			continue
		}
		amount := decimal.Min(g.Amount(discountMin, discountMax), o.TotalAmount)
		discounts = append(discounts, model.Discount{
			ID:      len(discounts) + 1,
			OrderID: o.ID,
			Amount:  amount,
			Code:    g.Lexify(discountPattern),
		})
	}
	return discounts
}
