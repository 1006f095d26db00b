package common

import (
	"context"
	"database/sql"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/Rana718/seedcart/internal/model"
	"github.com/shopspring/decimal"
)

// validIdentifier guards table and column names that are spliced into SQL text.
var validIdentifier = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)

func ValidateIdentifiers(names ...string) error {
	for _, name := range names {
		if !validIdentifier.MatchString(name) {
			return fmt.Errorf("invalid identifier: %q", name)
		}
	}
	return nil
}

// Dialect describes how a SQL engine spells column types and quotes identifiers.
type Dialect struct {
	Quote func(string) string
	Types map[model.ColumnType]string
}

// CreateTableSQL renders a CREATE TABLE IF NOT EXISTS statement with the first
// column as primary key and a FOREIGN KEY clause per referencing column.
func CreateTableSQL(d Dialect, table model.Table) (string, error) {
	if err := ValidateIdentifiers(table.Name); err != nil {
		return "", err
	}
	if len(table.Columns) == 0 {
		return "", fmt.Errorf("table %s has no columns", table.Name)
	}

	defs := make([]string, 0, len(table.Columns)+2)
	for _, col := range table.Columns {
		if err := ValidateIdentifiers(col.Name); err != nil {
			return "", err
		}
		defs = append(defs, fmt.Sprintf("%s %s NOT NULL", d.Quote(col.Name), d.Types[col.Type]))
	}
	defs = append(defs, fmt.Sprintf("PRIMARY KEY (%s)", d.Quote(table.Columns[0].Name)))

	for _, col := range table.Columns {
		if col.References == "" {
			continue
		}
		if err := ValidateIdentifiers(col.References); err != nil {
			return "", err
		}
		defs = append(defs, fmt.Sprintf("FOREIGN KEY (%s) REFERENCES %s (%s)",
			d.Quote(col.Name), d.Quote(col.References), d.Quote(col.Name)))
	}

	return fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (\n\t%s\n)", d.Quote(table.Name), strings.Join(defs, ",\n\t")), nil
}

// NormalizeRow converts model values into driver-friendly ones. Money becomes float64,
// and dates become ISO strings when the engine has no native date type.
func NormalizeRow(row []any, datesAsText bool) []any {
	out := make([]any, len(row))
	for i, v := range row {
		switch val := v.(type) {
		case decimal.Decimal:
			out[i] = val.InexactFloat64()
		case time.Time:
			if datesAsText {
				out[i] = val.Format(time.DateOnly)
			} else {
				out[i] = val
			}
		case model.Status:
			out[i] = string(val)
		default:
			out[i] = v
		}
	}
	return out
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// InsertRows writes rows as one multi-row INSERT inside a transaction.
func InsertRows(ctx context.Context, db *sql.DB, qb squirrel.StatementBuilderType, quote func(string) string,
	tableName string, columns []string, rows [][]any, datesAsText bool) error {
	if len(rows) == 0 {
		return nil
	}
	if err := ValidateIdentifiers(append([]string{tableName}, columns...)...); err != nil {
		return err
	}

	quoted := make([]string, len(columns))
	for i, c := range columns {
		quoted[i] = quote(c)
	}

	insert := qb.Insert(quote(tableName)).Columns(quoted...)
	for _, row := range rows {
		insert = insert.Values(NormalizeRow(row, datesAsText)...)
	}

	query, args, err := insert.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build insert for %s: %w", tableName, err)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := exec(ctx, tx, query, args...); err != nil {
		return fmt.Errorf("failed to insert into %s: %w", tableName, err)
	}
	return tx.Commit()
}

func exec(ctx context.Context, e execer, query string, args ...any) error {
	_, err := e.ExecContext(ctx, query, args...)
	return err
}

// DeleteAll removes every row of a table.
func DeleteAll(ctx context.Context, db *sql.DB, qb squirrel.StatementBuilderType, quote func(string) string, tableName string) error {
	if err := ValidateIdentifiers(tableName); err != nil {
		return err
	}
	query, args, err := qb.Delete(quote(tableName)).ToSql()
	if err != nil {
		return err
	}
	return exec(ctx, db, query, args...)
}

func CountRows(ctx context.Context, db *sql.DB, qb squirrel.StatementBuilderType, quote func(string) string, tableName string) (int64, error) {
	if err := ValidateIdentifiers(tableName); err != nil {
		return 0, err
	}
	query, args, err := qb.Select("COUNT(*)").From(quote(tableName)).ToSql()
	if err != nil {
		return 0, err
	}

	var count int64
	if err := db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count rows in %s: %w", tableName, err)
	}
	return count, nil
}
