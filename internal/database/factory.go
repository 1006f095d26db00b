package database

import (
	"fmt"

	"github.com/Rana718/seedcart/internal/database/mysql"
	"github.com/Rana718/seedcart/internal/database/postgres"
	"github.com/Rana718/seedcart/internal/database/sqlite"
)

// SupportedProviders lists every accepted value of database.provider.
var SupportedProviders = []string{"postgresql", "postgres", "mysql", "sqlite", "sqlite3"}

func NewAdapter(provider string) (DatabaseAdapter, error) {
	switch provider {
	case "postgresql", "postgres":
		return postgres.New(), nil
	case "mysql":
		return mysql.New(), nil
	case "sqlite", "sqlite3":
		return sqlite.New(), nil
	default:
		return nil, fmt.Errorf("unsupported database provider: %s. Supported providers: %v", provider, SupportedProviders)
	}
}
