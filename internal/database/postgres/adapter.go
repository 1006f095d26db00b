package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/Rana718/seedcart/internal/database/common"
	"github.com/Rana718/seedcart/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

type Adapter struct {
	pool *pgxpool.Pool
	qb   squirrel.StatementBuilderType
}

var dialect = common.Dialect{
	Quote: pq.QuoteIdentifier,
	Types: map[model.ColumnType]string{
		model.Integer: "INTEGER",
		model.Text:    "TEXT",
		model.Money:   "NUMERIC(12,2)",
		model.Date:    "DATE",
	},
}

func New() *Adapter {
	return &Adapter{
		qb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func (p *Adapter) Connect(ctx context.Context, url string) error {
	config, err := pgxpool.ParseConfig(url)
	if err != nil {
		return fmt.Errorf("failed to parse connection URL: %w", err)
	}

	config.MaxConns = 4
	config.MinConns = 0
	config.MaxConnLifetime = 15 * time.Minute
	config.MaxConnIdleTime = 3 * time.Minute
	config.HealthCheckPeriod = 30 * time.Second

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return fmt.Errorf("failed to create connection pool: %w", err)
	}

	p.pool = pool
	return nil
}

func (p *Adapter) Close() error {
	if p.pool != nil {
		p.pool.Close()
	}
	return nil
}

func (p *Adapter) Ping(ctx context.Context) error {
	return p.pool.Ping(ctx)
}

func (p *Adapter) CreateTable(ctx context.Context, table model.Table) error {
	query, err := CreateTableSQL(table)
	if err != nil {
		return err
	}
	_, err = p.pool.Exec(ctx, query)
	return err
}

// CreateTableSQL renders the PostgreSQL DDL for a table. Identifiers are quoted so
// the mixed-case column names survive.
func CreateTableSQL(table model.Table) (string, error) {
	return common.CreateTableSQL(dialect, table)
}

func (p *Adapter) TruncateTable(ctx context.Context, tableName string) error {
	if err := common.ValidateIdentifiers(tableName); err != nil {
		return err
	}
	_, err := p.pool.Exec(ctx, fmt.Sprintf("TRUNCATE TABLE %s RESTART IDENTITY CASCADE", pq.QuoteIdentifier(tableName)))
	return err
}

// InsertRows streams rows with the COPY protocol.
func (p *Adapter) InsertRows(ctx context.Context, tableName string, columns []string, rows [][]any) error {
	if len(rows) == 0 {
		return nil
	}
	if err := common.ValidateIdentifiers(append([]string{tableName}, columns...)...); err != nil {
		return err
	}

	normalized := make([][]any, len(rows))
	for i, row := range rows {
		normalized[i] = common.NormalizeRow(row, false)
	}

	copied, err := p.pool.CopyFrom(ctx, pgx.Identifier{tableName}, columns, pgx.CopyFromRows(normalized))
	if err != nil {
		return fmt.Errorf("failed to copy into %s: %w", tableName, err)
	}
	if copied != int64(len(rows)) {
		return fmt.Errorf("copied %d of %d rows into %s", copied, len(rows), tableName)
	}
	return nil
}

func (p *Adapter) CountRows(ctx context.Context, tableName string) (int64, error) {
	if err := common.ValidateIdentifiers(tableName); err != nil {
		return 0, err
	}
	query, args, err := p.qb.Select("COUNT(*)").From(pq.QuoteIdentifier(tableName)).ToSql()
	if err != nil {
		return 0, err
	}

	var count int64
	if err := p.pool.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count rows in %s: %w", tableName, err)
	}
	return count, nil
}
