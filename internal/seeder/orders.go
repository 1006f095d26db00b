package seeder

import (
	"time"

	"github.com/Rana718/seedcart/internal/model"
	"github.com/shopspring/decimal"
)

// orderWindowYears bounds how far back order dates reach.
const orderWindowYears = 2

// GenerateOrders samples customer and product uniformly for every order. The total is
// always quantity × unit price, and the order date never precedes the customer's
// registration or the product's listing.
func GenerateOrders(g *DataGenerator, n int, customers []model.Customer, products []model.Product, maxQuantity int, today time.Time) []model.Order {
	if n == 0 {
		return nil
	}

	windowStart := Day(today).AddDate(-orderWindowYears, 0, 0)
	orders := make([]model.Order, 0, n)
	for i := 1; i <= n; i++ {
		customer := customers[g.rand.Intn(len(customers))]
		product := products[g.rand.Intn(len(products))]
		quantity := g.IntBetween(1, maxQuantity)

		earliest := latest(windowStart, customer.DateRegistered, product.DateAdded)

		orders = append(orders, model.Order{
			ID:          i,
			CustomerID:  customer.ID,
			ProductID:   product.ID,
			Quantity:    quantity,
			TotalAmount: product.Price.Mul(decimal.NewFromInt(int64(quantity))),
			OrderDate:   g.DateBetween(earliest, today),
			Status:      model.Statuses[g.rand.Intn(len(model.Statuses))],
		})
	}
	return orders
}

func latest(first time.Time, rest ...time.Time) time.Time {
	out := first
	for _, t := range rest {
		if t.After(out) {
			out = t
		}
	}
	return out
}
