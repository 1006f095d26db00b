package seeder

import (
	"time"

	"github.com/Rana718/seedcart/internal/catalog"
	"github.com/Rana718/seedcart/internal/model"
)

func GenerateCustomers(g *DataGenerator, n int, today time.Time) []model.Customer {
	customers := make([]model.Customer, 0, n)
	for i := 1; i <= n; i++ {
		first, last := g.FirstName(), g.LastName()
		customers = append(customers, model.Customer{
			ID:             i,
			FirstName:      first,
			LastName:       last,
			Gender:         g.Gender(),
			Email:          g.Email(first, last),
			Phone:          g.Phone(),
			Address:        g.StreetAddress(),
			City:           g.City(),
			State:          g.State(),
			Country:        g.Country(),
			DateRegistered: g.DateBetween(today.AddDate(-5, 0, 0), today),
		})
	}
	return customers
}

func GenerateCategories(c *catalog.Catalog) []model.Category {
	categories := make([]model.Category, 0, c.Len())
	for _, cat := range c.Categories() {
		categories = append(categories, model.Category{ID: cat.ID, Name: cat.Name})
	}
	return categories
}

func GenerateSuppliers(g *DataGenerator, n int) []model.Supplier {
	suppliers := make([]model.Supplier, 0, n)
	for i := 1; i <= n; i++ {
		company := g.Company()
		suppliers = append(suppliers, model.Supplier{
			ID:          i,
			Name:        company,
			ContactName: g.Name(),
			Phone:       g.Phone(),
			Email:       g.Email("sales", company),
			Address:     g.FullAddress(),
		})
	}
	return suppliers
}

// GenerateProducts assigns every product a uniformly chosen category and supplier.
// Name and price follow the category's catalog entry.
func GenerateProducts(g *DataGenerator, n int, c *catalog.Catalog, suppliers []model.Supplier, today time.Time) []model.Product {
	products := make([]model.Product, 0, n)
	for i := 1; i <= n; i++ {
		cat := c.At(g.rand.Intn(c.Len()))
		supplier := suppliers[g.rand.Intn(len(suppliers))]

		var name string
		if len(cat.Items) > 0 {
			name = g.Word() + " " + cat.Items[g.rand.Intn(len(cat.Items))]
		} else {
			name = g.Word() + " " + g.Word()
		}

		products = append(products, model.Product{
			ID:          i,
			Name:        name,
			CategoryID:  cat.ID,
			SupplierID:  supplier.ID,
			Price:       g.Amount(cat.Price.Min, cat.Price.Max),
			Description: g.Sentence(),
			DateAdded:   g.DateBetween(today.AddDate(-3, 0, 0), today),
		})
	}
	return products
}

// GenerateInventory emits one stock record per product, keyed by the product ID.
func GenerateInventory(g *DataGenerator, products []model.Product) []model.Inventory {
	inventory := make([]model.Inventory, 0, len(products))
	for _, p := range products {
		inventory = append(inventory, model.Inventory{
			ID:              p.ID,
			ProductID:       p.ID,
			QuantityInStock: g.IntBetween(0, 500),
			ReorderLevel:    g.IntBetween(10, 50),
		})
	}
	return inventory
}
