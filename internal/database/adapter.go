package database

import (
	"context"

	"github.com/Rana718/seedcart/internal/model"
)

// DatabaseAdapter is the minimal surface needed to load a generated dataset.
type DatabaseAdapter interface {
	Connect(ctx context.Context, url string) error
	Close() error
	Ping(ctx context.Context) error

	// Schema operations
	CreateTable(ctx context.Context, table model.Table) error
	TruncateTable(ctx context.Context, tableName string) error

	// Data operations
	InsertRows(ctx context.Context, tableName string, columns []string, rows [][]any) error
	CountRows(ctx context.Context, tableName string) (int64, error)
}
