// Package integrity checks a dataset for referential and semantic consistency.
package integrity

import (
	"fmt"
	"time"

	"github.com/Rana718/seedcart/internal/model"
	"github.com/shopspring/decimal"
)

const (
	paymentWindow  = 365 * 24 * time.Hour
	shipmentWindow = 10 * 24 * time.Hour
)

// Rule names a consistency property.
type Rule string

const (
	RuleSequentialID     Rule = "sequential-id"
	RuleForeignKey       Rule = "foreign-key"
	RuleOrderTotal       Rule = "order-total"
	RuleOrderDate        Rule = "order-date"
	RulePaymentStatus    Rule = "payment-status"
	RulePaymentAmount    Rule = "payment-amount"
	RulePaymentDate      Rule = "payment-date"
	RuleShipmentStatus   Rule = "shipment-status"
	RuleShipmentDate     Rule = "shipment-date"
	RuleReviewerPurchase Rule = "reviewer-purchase"
	RuleReviewRating     Rule = "review-rating"
	RuleDiscountAmount   Rule = "discount-amount"
	RuleUniqueDerived    Rule = "unique-derived"
)

type Violation struct {
	Table  string
	ID     int
	Rule   Rule
	Detail string
}

func (v Violation) String() string {
	return fmt.Sprintf("%s #%d [%s] %s", v.Table, v.ID, v.Rule, v.Detail)
}

type Report struct {
	Violations []Violation
}

func (r *Report) OK() bool {
	return len(r.Violations) == 0
}

// ByRule groups violation counts by rule.
func (r *Report) ByRule() map[Rule]int {
	out := make(map[Rule]int)
	for _, v := range r.Violations {
		out[v.Rule]++
	}
	return out
}

func (r *Report) add(table string, id int, rule Rule, format string, args ...any) {
	r.Violations = append(r.Violations, Violation{
		Table:  table,
		ID:     id,
		Rule:   rule,
		Detail: fmt.Sprintf(format, args...),
	})
}

// Check evaluates every consistency rule over ds.
func Check(ds *model.Dataset) *Report {
	r := &Report{}
	c := newChecker(ds, r)

	c.checkSequentialIDs()
	c.checkProducts()
	c.checkOrders()
	c.checkPayments()
	c.checkShipments()
	c.checkReviews()
	c.checkInventory()
	c.checkDiscounts()

	return r
}

type checker struct {
	ds *model.Dataset
	r  *Report

	customers  map[int]model.Customer
	categories map[int]bool
	suppliers  map[int]bool
	products   map[int]model.Product
	orders     map[int]model.Order
	purchases  map[[2]int]bool
}

func newChecker(ds *model.Dataset, r *Report) *checker {
	c := &checker{
		ds:         ds,
		r:          r,
		customers:  make(map[int]model.Customer, len(ds.Customers)),
		categories: make(map[int]bool, len(ds.Categories)),
		suppliers:  make(map[int]bool, len(ds.Suppliers)),
		products:   make(map[int]model.Product, len(ds.Products)),
		orders:     make(map[int]model.Order, len(ds.Orders)),
		purchases:  make(map[[2]int]bool),
	}
	for _, cu := range ds.Customers {
		c.customers[cu.ID] = cu
	}
	for _, cat := range ds.Categories {
		c.categories[cat.ID] = true
	}
	for _, s := range ds.Suppliers {
		c.suppliers[s.ID] = true
	}
	for _, p := range ds.Products {
		c.products[p.ID] = p
	}
	for _, o := range ds.Orders {
		c.orders[o.ID] = o
		c.purchases[[2]int{o.CustomerID, o.ProductID}] = true
	}
	return c
}

// checkSequentialIDs requires IDs 1..N in order for every collection except categories,
// whose IDs come from the catalog and only need to be unique.
func (c *checker) checkSequentialIDs() {
	for _, table := range c.ds.Tables() {
		seen := make(map[int]bool, len(table.Rows))
		for i, row := range table.Rows {
			id, _ := row[0].(int)
			if table.Name == model.TableCategories {
				if seen[id] {
					c.r.add(table.Name, id, RuleSequentialID, "duplicate id")
				}
				seen[id] = true
				continue
			}
			if id != i+1 {
				c.r.add(table.Name, id, RuleSequentialID, "expected id %d at position %d", i+1, i+1)
			}
		}
	}
}

func (c *checker) checkProducts() {
	for _, p := range c.ds.Products {
		if !c.categories[p.CategoryID] {
			c.r.add(model.TableProducts, p.ID, RuleForeignKey, "unknown category %d", p.CategoryID)
		}
		if !c.suppliers[p.SupplierID] {
			c.r.add(model.TableProducts, p.ID, RuleForeignKey, "unknown supplier %d", p.SupplierID)
		}
	}
}

func (c *checker) checkOrders() {
	for _, o := range c.ds.Orders {
		customer, okCustomer := c.customers[o.CustomerID]
		if !okCustomer {
			c.r.add(model.TableOrders, o.ID, RuleForeignKey, "unknown customer %d", o.CustomerID)
		}
		product, okProduct := c.products[o.ProductID]
		if !okProduct {
			c.r.add(model.TableOrders, o.ID, RuleForeignKey, "unknown product %d", o.ProductID)
			continue
		}

		want := product.Price.Mul(decimalFromInt(o.Quantity))
		if !o.TotalAmount.Equal(want) {
			c.r.add(model.TableOrders, o.ID, RuleOrderTotal, "total %s != %d x %s",
				o.TotalAmount.StringFixed(2), o.Quantity, product.Price.StringFixed(2))
		}
		if o.OrderDate.Before(product.DateAdded) {
			c.r.add(model.TableOrders, o.ID, RuleOrderDate, "ordered %s before product was added %s",
				day(o.OrderDate), day(product.DateAdded))
		}
		if okCustomer && o.OrderDate.Before(customer.DateRegistered) {
			c.r.add(model.TableOrders, o.ID, RuleOrderDate, "ordered %s before customer registered %s",
				day(o.OrderDate), day(customer.DateRegistered))
		}
	}
}

func (c *checker) checkPayments() {
	paid := make(map[int]bool, len(c.ds.Payments))
	for _, p := range c.ds.Payments {
		if paid[p.OrderID] {
			c.r.add(model.TablePayments, p.ID, RuleUniqueDerived, "order %d paid more than once", p.OrderID)
		}
		paid[p.OrderID] = true

		o, ok := c.orders[p.OrderID]
		if !ok {
			c.r.add(model.TablePayments, p.ID, RuleForeignKey, "unknown order %d", p.OrderID)
			continue
		}
		if !o.Status.Payable() {
			c.r.add(model.TablePayments, p.ID, RulePaymentStatus, "order %d is %s", o.ID, o.Status)
		}
		if !p.Amount.Equal(o.TotalAmount) {
			c.r.add(model.TablePayments, p.ID, RulePaymentAmount, "amount %s != order total %s",
				p.Amount.StringFixed(2), o.TotalAmount.StringFixed(2))
		}
		if p.PaymentDate.Before(o.OrderDate) || p.PaymentDate.After(o.OrderDate.Add(paymentWindow)) {
			c.r.add(model.TablePayments, p.ID, RulePaymentDate, "paid %s outside window of order date %s",
				day(p.PaymentDate), day(o.OrderDate))
		}
	}
}

func (c *checker) checkShipments() {
	shipped := make(map[int]bool, len(c.ds.Shipments))
	for _, s := range c.ds.Shipments {
		if shipped[s.OrderID] {
			c.r.add(model.TableShipments, s.ID, RuleUniqueDerived, "order %d shipped more than once", s.OrderID)
		}
		shipped[s.OrderID] = true

		o, ok := c.orders[s.OrderID]
		if !ok {
			c.r.add(model.TableShipments, s.ID, RuleForeignKey, "unknown order %d", s.OrderID)
			continue
		}
		if !o.Status.Shippable() {
			c.r.add(model.TableShipments, s.ID, RuleShipmentStatus, "order %d is %s", o.ID, o.Status)
		}
		if s.ShipmentDate.Before(o.OrderDate) || s.ShipmentDate.After(o.OrderDate.Add(shipmentWindow)) {
			c.r.add(model.TableShipments, s.ID, RuleShipmentDate, "shipped %s outside window of order date %s",
				day(s.ShipmentDate), day(o.OrderDate))
		}
	}
}

func (c *checker) checkReviews() {
	for _, rv := range c.ds.Reviews {
		if _, ok := c.products[rv.ProductID]; !ok {
			c.r.add(model.TableReviews, rv.ID, RuleForeignKey, "unknown product %d", rv.ProductID)
		}
		if _, ok := c.customers[rv.CustomerID]; !ok {
			c.r.add(model.TableReviews, rv.ID, RuleForeignKey, "unknown customer %d", rv.CustomerID)
		}
		if !c.purchases[[2]int{rv.CustomerID, rv.ProductID}] {
			c.r.add(model.TableReviews, rv.ID, RuleReviewerPurchase, "customer %d never ordered product %d",
				rv.CustomerID, rv.ProductID)
		}
		if rv.Rating < 1 || rv.Rating > 5 {
			c.r.add(model.TableReviews, rv.ID, RuleReviewRating, "rating %d outside 1..5", rv.Rating)
		}
	}
}

func (c *checker) checkInventory() {
	for _, inv := range c.ds.Inventory {
		if _, ok := c.products[inv.ProductID]; !ok {
			c.r.add(model.TableInventory, inv.ID, RuleForeignKey, "unknown product %d", inv.ProductID)
		}
	}
}

func (c *checker) checkDiscounts() {
	for _, d := range c.ds.Discounts {
		o, ok := c.orders[d.OrderID]
		if !ok {
			c.r.add(model.TableDiscounts, d.ID, RuleForeignKey, "unknown order %d", d.OrderID)
			continue
		}
		if d.Amount.GreaterThan(o.TotalAmount) {
			c.r.add(model.TableDiscounts, d.ID, RuleDiscountAmount, "discount %s exceeds order total %s",
				d.Amount.StringFixed(2), o.TotalAmount.StringFixed(2))
		}
	}
}

func decimalFromInt(n int) decimal.Decimal {
	return decimal.NewFromInt(int64(n))
}

func day(t time.Time) string {
	return t.Format(time.DateOnly)
}
