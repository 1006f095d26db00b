package seeder

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/Rana718/seedcart/internal/catalog"
	"github.com/Rana718/seedcart/internal/model"
	"github.com/fatih/color"
)

// Generator builds a complete dataset in dependency order: independent entities,
// then orders, then everything derived from orders.
type Generator struct {
	opts    Options
	catalog *catalog.Catalog
	data    *DataGenerator
}

// NewGenerator validates opts and the catalog up front so that bad configuration
// fails here rather than halfway through generation.
func NewGenerator(opts Options, rng *rand.Rand) (*Generator, error) {
	if rng == nil {
		return nil, fmt.Errorf("%w: random source is nil", ErrInvalidOptions)
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	c, err := catalog.New(opts.Catalog)
	if err != nil {
		return nil, err
	}

	opts.Today = Day(opts.Today)
	return &Generator{
		opts:    opts,
		catalog: c,
		data:    NewDataGenerator(rng),
	}, nil
}

func (gen *Generator) Generate() (*model.Dataset, error) {
	g := gen.data
	opts := gen.opts

	gen.progress("🌱 Generating dataset (reference date %s)...", opts.Today.Format("2006-01-02"))

	ds := &model.Dataset{}
	ds.Customers = GenerateCustomers(g, opts.Customers, opts.Today)
	gen.step(model.TableCustomers, len(ds.Customers))

	ds.Categories = GenerateCategories(gen.catalog)
	gen.step(model.TableCategories, len(ds.Categories))

	ds.Suppliers = GenerateSuppliers(g, opts.Suppliers)
	gen.step(model.TableSuppliers, len(ds.Suppliers))

	ds.Products = GenerateProducts(g, opts.Products, gen.catalog, ds.Suppliers, opts.Today)
	gen.step(model.TableProducts, len(ds.Products))

	ds.Inventory = GenerateInventory(g, ds.Products)
	gen.step(model.TableInventory, len(ds.Inventory))

	ds.Orders = GenerateOrders(g, opts.Orders, ds.Customers, ds.Products, opts.MaxQuantity, opts.Today)
	gen.step(model.TableOrders, len(ds.Orders))

	ds.Payments = DerivePayments(g, ds.Orders)
	gen.step(model.TablePayments, len(ds.Payments))

	shipments, err := DeriveShipments(g, ds.Orders)
	if err != nil {
		return nil, fmt.Errorf("failed to derive shipments: %w", err)
	}
	ds.Shipments = shipments
	gen.step(model.TableShipments, len(ds.Shipments))

	index := BuildPurchaseIndex(ds.Orders)
	ds.Reviews = DeriveReviews(g, ds.Products, index, opts.ReviewsMin, opts.ReviewsMax, opts.Today)
	gen.step(model.TableReviews, len(ds.Reviews))

	ds.Discounts = DeriveDiscounts(g, ds.Orders, opts.DiscountRate)
	gen.step(model.TableDiscounts, len(ds.Discounts))

	if !opts.Quiet {
		graph := NewDependencyGraph()
		for _, table := range ds.Tables() {
			graph.AddTable(table)
		}
		if order, err := graph.BuildInsertionOrder(); err == nil {
			color.Cyan("📋 Dependency order: %s", strings.Join(order, " → "))
		}
	}

	return ds, nil
}

func (gen *Generator) progress(format string, args ...interface{}) {
	if gen.opts.Quiet {
		return
	}
	color.Cyan(format, args...)
}

func (gen *Generator) step(table string, count int) {
	if gen.opts.Quiet {
		return
	}
	color.Green("  ✅ %-10s %d records", table, count)
}
