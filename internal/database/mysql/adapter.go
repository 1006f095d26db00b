package mysql

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/Rana718/seedcart/internal/database/common"
	"github.com/Rana718/seedcart/internal/model"
	driver "github.com/go-sql-driver/mysql"
)

type Adapter struct {
	db *sql.DB
	qb squirrel.StatementBuilderType
}

var dialect = common.Dialect{
	Quote: quote,
	Types: map[model.ColumnType]string{
		model.Integer: "INT",
		model.Text:    "VARCHAR(255)",
		model.Money:   "DECIMAL(12,2)",
		model.Date:    "DATE",
	},
}

func quote(name string) string {
	return "`" + strings.ReplaceAll(name, "`", "``") + "`"
}

func New() *Adapter {
	return &Adapter{
		qb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question),
	}
}

// NewWithDB wraps an already opened connection.
func NewWithDB(db *sql.DB) *Adapter {
	a := New()
	a.db = db
	return a
}

// ParseURL accepts either a native DSN or a mysql:// URL and returns a DSN with
// time parsing enabled.
func ParseURL(url string) (string, error) {
	dsn := url
	if strings.HasPrefix(url, "mysql://") {
		dsn = strings.TrimPrefix(url, "mysql://")

		if at := strings.LastIndex(dsn, "@"); at > 0 {
			credentials := dsn[:at]
			remainder := dsn[at+1:]
			if slash := strings.Index(remainder, "/"); slash > 0 {
				hostPort := remainder[:slash]
				dbAndParams := remainder[slash+1:]
				dsn = fmt.Sprintf("%s@tcp(%s)/%s", credentials, hostPort, dbAndParams)
			}
		}
	}

	cfg, err := driver.ParseDSN(dsn)
	if err != nil {
		return "", fmt.Errorf("failed to parse MySQL DSN: %w", err)
	}
	cfg.ParseTime = true
	return cfg.FormatDSN(), nil
}

func (m *Adapter) Connect(ctx context.Context, url string) error {
	dsn, err := ParseURL(url)
	if err != nil {
		return err
	}

	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return fmt.Errorf("failed to open MySQL connection: %w", err)
	}

	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(2)
	db.SetConnMaxLifetime(15 * time.Minute)

	m.db = db
	return nil
}

func (m *Adapter) Close() error {
	if m.db != nil {
		return m.db.Close()
	}
	return nil
}

func (m *Adapter) Ping(ctx context.Context) error {
	return m.db.PingContext(ctx)
}

func (m *Adapter) CreateTable(ctx context.Context, table model.Table) error {
	query, err := common.CreateTableSQL(dialect, table)
	if err != nil {
		return err
	}
	_, err = m.db.ExecContext(ctx, query)
	return err
}

// TruncateTable deletes rather than truncates: MySQL refuses TRUNCATE on a table
// that other tables reference, even when they are empty.
func (m *Adapter) TruncateTable(ctx context.Context, tableName string) error {
	return common.DeleteAll(ctx, m.db, m.qb, quote, tableName)
}

func (m *Adapter) InsertRows(ctx context.Context, tableName string, columns []string, rows [][]any) error {
	return common.InsertRows(ctx, m.db, m.qb, quote, tableName, columns, rows, false)
}

func (m *Adapter) CountRows(ctx context.Context, tableName string) (int64, error) {
	return common.CountRows(ctx, m.db, m.qb, quote, tableName)
}
