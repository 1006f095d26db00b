package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rana718/seedcart/internal/model"
)

func TestCreateTableSQLQuotesMixedCase(t *testing.T) {
	query, err := CreateTableSQL(model.Table{Name: model.TableOrders, Columns: model.OrderColumns})
	require.NoError(t, err)

	assert.Contains(t, query, `CREATE TABLE IF NOT EXISTS "orders"`)
	assert.Contains(t, query, `"TotalAmount" NUMERIC(12,2) NOT NULL`)
	assert.Contains(t, query, `"OrderDate" DATE NOT NULL`)
	assert.Contains(t, query, `FOREIGN KEY ("CustomerID") REFERENCES "customers" ("CustomerID")`)
	assert.Contains(t, query, `FOREIGN KEY ("ProductID") REFERENCES "products" ("ProductID")`)
}
