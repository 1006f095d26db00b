package seeder

import (
	"errors"
	"fmt"
	"time"

	"github.com/Rana718/seedcart/internal/catalog"
)

// ErrInvalidOptions is wrapped by every option validation failure.
var ErrInvalidOptions = errors.New("invalid generator options")

// Options controls the size and shape of a generated dataset.
type Options struct {
	Customers int
	Suppliers int
	Products  int
	Orders    int

	ReviewsMin int // Reviews drawn per product, inclusive bounds
	ReviewsMax int

	MaxQuantity  int     // Upper bound on units per order
	DiscountRate float64 // Probability that an order carries a discount

	Catalog []catalog.Category
	Today   time.Time // Reference date; all generated dates are on or around it
	Quiet   bool      // Suppress progress output
}

// DefaultOptions mirrors the cardinalities of the reference dataset.
func DefaultOptions() Options {
	return Options{
		Customers:    1200,
		Suppliers:    20,
		Products:     150,
		Orders:       60000,
		ReviewsMin:   25,
		ReviewsMax:   35,
		MaxQuantity:  5,
		DiscountRate: 0.2,
		Catalog:      catalog.Default(),
	}
}

func (o Options) Validate() error {
	if o.Customers <= 0 {
		return fmt.Errorf("%w: customers must be positive, got %d", ErrInvalidOptions, o.Customers)
	}
	if o.Suppliers <= 0 {
		return fmt.Errorf("%w: suppliers must be positive, got %d", ErrInvalidOptions, o.Suppliers)
	}
	if o.Products <= 0 {
		return fmt.Errorf("%w: products must be positive, got %d", ErrInvalidOptions, o.Products)
	}
	if o.Orders < 0 {
		return fmt.Errorf("%w: orders cannot be negative, got %d", ErrInvalidOptions, o.Orders)
	}
	if o.ReviewsMin < 0 || o.ReviewsMax < o.ReviewsMin {
		return fmt.Errorf("%w: review range [%d, %d] is invalid", ErrInvalidOptions, o.ReviewsMin, o.ReviewsMax)
	}
	if o.MaxQuantity < 1 {
		return fmt.Errorf("%w: max quantity must be at least 1, got %d", ErrInvalidOptions, o.MaxQuantity)
	}
	if o.DiscountRate < 0 || o.DiscountRate > 1 {
		return fmt.Errorf("%w: discount rate must be within [0, 1], got %g", ErrInvalidOptions, o.DiscountRate)
	}
	if o.Today.IsZero() {
		return fmt.Errorf("%w: reference date is not set", ErrInvalidOptions)
	}
	return nil
}

type LoadOptions struct {
	Batch    int  // Rows per INSERT statement
	Create   bool // Create tables before loading
	Truncate bool // Clear tables before loading
	Verify   bool // Compare row counts after loading
}
