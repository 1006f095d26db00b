package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/Rana718/seedcart/internal/database/common"
	"github.com/Rana718/seedcart/internal/model"
	_ "github.com/mattn/go-sqlite3"
)

type Adapter struct {
	db   *sql.DB
	qb   squirrel.StatementBuilderType
	path string
}

var dialect = common.Dialect{
	Quote: quote,
	Types: map[model.ColumnType]string{
		model.Integer: "INTEGER",
		model.Text:    "TEXT",
		model.Money:   "NUMERIC",
		model.Date:    "TEXT",
	},
}

func quote(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

func New() *Adapter {
	return &Adapter{
		qb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question),
	}
}

// Path returns the database file the adapter is connected to.
func (s *Adapter) Path() string {
	return s.path
}

func (s *Adapter) Connect(ctx context.Context, url string) error {
	dbPath := strings.TrimPrefix(url, "sqlite://")
	s.path = dbPath
	if idx := strings.Index(s.path, "?"); idx > 0 {
		s.path = s.path[:idx]
	}
	if !strings.Contains(dbPath, "?") {
		dbPath += "?_foreign_keys=on&_journal_mode=WAL"
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return fmt.Errorf("failed to open SQLite connection: %w", err)
	}

	// A single writer avoids "database is locked" during bulk inserts.
	db.SetMaxOpenConns(1)
	db.SetConnMaxIdleTime(5 * time.Minute)

	s.db = db
	return nil
}

func (s *Adapter) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *Adapter) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *Adapter) CreateTable(ctx context.Context, table model.Table) error {
	query, err := common.CreateTableSQL(dialect, table)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx, query)
	return err
}

func (s *Adapter) TruncateTable(ctx context.Context, tableName string) error {
	return common.DeleteAll(ctx, s.db, s.qb, quote, tableName)
}

// InsertRows stores dates as ISO text, which is how SQLite compares them correctly.
func (s *Adapter) InsertRows(ctx context.Context, tableName string, columns []string, rows [][]any) error {
	return common.InsertRows(ctx, s.db, s.qb, quote, tableName, columns, rows, true)
}

func (s *Adapter) CountRows(ctx context.Context, tableName string) (int64, error) {
	return common.CountRows(ctx, s.db, s.qb, quote, tableName)
}
