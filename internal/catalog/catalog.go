package catalog

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrInvalidCatalog is wrapped by every validation failure returned from New.
var ErrInvalidCatalog = errors.New("invalid catalog")

// Default price bounds used when a category does not configure its own range.
const (
	DefaultMinPrice = 10.0
	DefaultMaxPrice = 1000.0
)

type PriceRange struct {
	Min float64 `yaml:"min" mapstructure:"min"`
	Max float64 `yaml:"max" mapstructure:"max"`
}

// IsZero reports whether the range was left unset.
func (r PriceRange) IsZero() bool {
	return r.Min == 0 && r.Max == 0
}

// Category describes one product category and how products in it are named and priced.
// A category without Items falls back to random two-word product names.
type Category struct {
	ID    int        `yaml:"id" mapstructure:"id"`
	Name  string     `yaml:"name" mapstructure:"name"`
	Items []string   `yaml:"items,omitempty" mapstructure:"items"`
	Price PriceRange `yaml:"price,omitempty" mapstructure:"price"`
}

// Catalog is a validated, ID-ordered set of categories.
type Catalog struct {
	categories []Category
	byID       map[int]int
}

// New validates the given categories and returns them as a Catalog sorted by ID.
// Categories without a price range receive the default range.
func New(categories []Category) (*Catalog, error) {
	if len(categories) == 0 {
		return nil, fmt.Errorf("%w: no categories configured", ErrInvalidCatalog)
	}

	sorted := make([]Category, len(categories))
	copy(sorted, categories)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].ID < sorted[j].ID })

	c := &Catalog{
		categories: sorted,
		byID:       make(map[int]int, len(sorted)),
	}

	for i := range sorted {
		cat := &sorted[i]
		if cat.ID <= 0 {
			return nil, fmt.Errorf("%w: category %q has non-positive id %d", ErrInvalidCatalog, cat.Name, cat.ID)
		}
		if _, dup := c.byID[cat.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate category id %d", ErrInvalidCatalog, cat.ID)
		}
		if strings.TrimSpace(cat.Name) == "" {
			return nil, fmt.Errorf("%w: category %d has an empty name", ErrInvalidCatalog, cat.ID)
		}
		for _, item := range cat.Items {
			if strings.TrimSpace(item) == "" {
				return nil, fmt.Errorf("%w: category %q has an empty item name", ErrInvalidCatalog, cat.Name)
			}
		}
		if cat.Price.IsZero() {
			cat.Price = PriceRange{Min: DefaultMinPrice, Max: DefaultMaxPrice}
		}
		if cat.Price.Min <= 0 || cat.Price.Max < cat.Price.Min {
			return nil, fmt.Errorf("%w: category %q has invalid price range [%.2f, %.2f]",
				ErrInvalidCatalog, cat.Name, cat.Price.Min, cat.Price.Max)
		}
		c.byID[cat.ID] = i
	}

	return c, nil
}

func (c *Catalog) Len() int {
	return len(c.categories)
}

// Categories returns the categories ordered by ID.
func (c *Catalog) Categories() []Category {
	out := make([]Category, len(c.categories))
	copy(out, c.categories)
	return out
}

func (c *Catalog) At(i int) Category {
	return c.categories[i]
}

func (c *Catalog) Get(id int) (Category, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Category{}, false
	}
	return c.categories[i], true
}
