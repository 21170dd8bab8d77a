package database

import (
	"database/sql"
	"regexp"
	"strconv"
	"time"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
)

// Dialect abstracts the differences between the supported databases so
// repositories can write one query in ? placeholder style.
type Dialect interface {
	// DriverName returns the driver name for sql.Open
	DriverName() string

	// DSN returns the data source name for the connection
	DSN(config DialectConfig) string

	// RewriteQuery converts placeholder syntax if needed (? to $1 for postgres)
	RewriteQuery(query string) string

	// SupportsLastInsertId returns true if the driver supports LastInsertId()
	SupportsLastInsertId() bool

	// ConfigureConnection applies database-specific connection settings
	ConfigureConnection(db *sql.DB) error

	// MigrationsSubdir returns the migrations subdirectory for this dialect
	MigrationsSubdir() string

	// CreateMigrationsTableQuery returns the SQL for the migrations tracking table
	CreateMigrationsTableQuery() string
}

// DialectConfig holds connection parameters; Path for SQLite, URL otherwise.
type DialectConfig struct {
	Path string
	URL  string
}

var placeholderRegexp = regexp.MustCompile(`\?`)

// rewritePlaceholdersToNumbered converts ? placeholders to $1, $2, etc.
func rewritePlaceholdersToNumbered(query string) string {
	counter := 0
	return placeholderRegexp.ReplaceAllStringFunc(query, func(string) string {
		counter++
		return "$" + strconv.Itoa(counter)
	})
}

// configurePool applies the shared connection pool settings.
func configurePool(db *sql.DB) {
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)
	db.SetConnMaxIdleTime(1 * time.Minute)
}

// SQLiteDialect implements Dialect for SQLite, the default backend.
type SQLiteDialect struct{}

func NewSQLiteDialect() *SQLiteDialect { return &SQLiteDialect{} }

func (d *SQLiteDialect) DriverName() string { return "sqlite3" }

func (d *SQLiteDialect) DSN(config DialectConfig) string { return config.Path }

func (d *SQLiteDialect) RewriteQuery(query string) string { return query }

func (d *SQLiteDialect) SupportsLastInsertId() bool { return true }

func (d *SQLiteDialect) ConfigureConnection(db *sql.DB) error {
	configurePool(db)

	// WAL keeps observers reading while the host writes.
	if _, err := db.Exec("PRAGMA journal_mode=WAL;"); err != nil {
		return err
	}
	if _, err := db.Exec("PRAGMA foreign_keys=ON;"); err != nil {
		return err
	}
	return nil
}

func (d *SQLiteDialect) MigrationsSubdir() string { return "sqlite" }

func (d *SQLiteDialect) CreateMigrationsTableQuery() string {
	return `
		CREATE TABLE IF NOT EXISTS migrations (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			filename TEXT UNIQUE NOT NULL,
			executed_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
	`
}

// PostgresDialect implements Dialect for PostgreSQL
type PostgresDialect struct{}

func NewPostgresDialect() *PostgresDialect { return &PostgresDialect{} }

func (d *PostgresDialect) DriverName() string { return "postgres" }

func (d *PostgresDialect) DSN(config DialectConfig) string { return config.URL }

func (d *PostgresDialect) RewriteQuery(query string) string {
	return rewritePlaceholdersToNumbered(query)
}

// PostgreSQL has no LastInsertId; inserts append a RETURNING clause instead.
func (d *PostgresDialect) SupportsLastInsertId() bool { return false }

func (d *PostgresDialect) ConfigureConnection(db *sql.DB) error {
	configurePool(db)
	return nil
}

func (d *PostgresDialect) MigrationsSubdir() string { return "postgres" }

func (d *PostgresDialect) CreateMigrationsTableQuery() string {
	return `
		CREATE TABLE IF NOT EXISTS migrations (
			id BIGSERIAL PRIMARY KEY,
			filename TEXT UNIQUE NOT NULL,
			executed_at TIMESTAMPTZ DEFAULT CURRENT_TIMESTAMP
		);
	`
}

// MySQLDialect implements Dialect for MySQL
type MySQLDialect struct{}

func NewMySQLDialect() *MySQLDialect { return &MySQLDialect{} }

func (d *MySQLDialect) DriverName() string { return "mysql" }

func (d *MySQLDialect) DSN(config DialectConfig) string { return config.URL }

func (d *MySQLDialect) RewriteQuery(query string) string { return query }

func (d *MySQLDialect) SupportsLastInsertId() bool { return true }

func (d *MySQLDialect) ConfigureConnection(db *sql.DB) error {
	configurePool(db)

	if _, err := db.Exec("SET FOREIGN_KEY_CHECKS = 1;"); err != nil {
		return err
	}
	return nil
}

func (d *MySQLDialect) MigrationsSubdir() string { return "mysql" }

func (d *MySQLDialect) CreateMigrationsTableQuery() string {
	return `
		CREATE TABLE IF NOT EXISTS migrations (
			id BIGINT AUTO_INCREMENT PRIMARY KEY,
			filename VARCHAR(255) UNIQUE NOT NULL,
			executed_at DATETIME(6) DEFAULT CURRENT_TIMESTAMP(6)
		);
	`
}
