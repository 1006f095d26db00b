package seeder

import (
	"fmt"

	"github.com/Rana718/seedcart/internal/model"
)

// DependencyGraph orders tables so that every table comes after the tables its
// foreign keys reference. Ties keep the order in which tables were added.
type DependencyGraph struct {
	tables map[string][]string
	names  []string
	order  []string
}

func NewDependencyGraph() *DependencyGraph {
	return &DependencyGraph{
		tables: make(map[string][]string),
	}
}

func (g *DependencyGraph) AddTable(table model.Table) {
	if _, exists := g.tables[table.Name]; !exists {
		g.names = append(g.names, table.Name)
	}
	g.tables[table.Name] = table.Dependencies()
}

func (g *DependencyGraph) BuildInsertionOrder() ([]string, error) {
	visited := make(map[string]bool)
	temp := make(map[string]bool)
	var order []string

	var visit func(string) error
	visit = func(tableName string) error {
		if temp[tableName] {
			return fmt.Errorf("circular dependency detected involving table: %s", tableName)
		}
		if visited[tableName] {
			return nil
		}

		deps, ok := g.tables[tableName]
		if !ok {
			return fmt.Errorf("table %s is referenced but was never added", tableName)
		}

		temp[tableName] = true
		for _, dep := range deps {
			if err := visit(dep); err != nil {
				return err
			}
		}
		temp[tableName] = false
		visited[tableName] = true
		order = append(order, tableName)
		return nil
	}

	for _, tableName := range g.names {
		if err := visit(tableName); err != nil {
			return nil, err
		}
	}

	g.order = order
	return order, nil
}

func (g *DependencyGraph) GetOrder() []string {
	return g.order
}
