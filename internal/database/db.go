package database

import (
	"database/sql"
	"fmt"
	"log"
	"strings"

	"kelaskata/internal/config"
)

// DB wraps sql.DB with a dialect so repositories stay database-agnostic.
type DB struct {
	*sql.DB
	dialect Dialect
}

// Open opens a database connection using the application config.
func Open(cfg *config.Config) (*DB, error) {
	var dialect Dialect

	switch strings.ToLower(cfg.DatabaseType) {
	case "sqlite", "sqlite3", "":
		dialect = NewSQLiteDialect()
	case "postgres", "postgresql":
		dialect = NewPostgresDialect()
	case "mysql":
		dialect = NewMySQLDialect()
	default:
		return nil, fmt.Errorf("unsupported database type: %s", cfg.DatabaseType)
	}

	return OpenWithDialect(dialect, DialectConfig{
		Path: cfg.DatabasePath,
		URL:  cfg.DatabaseURL,
	})
}

// OpenWithDialect opens a database connection for a specific dialect.
func OpenWithDialect(dialect Dialect, dc DialectConfig) (*DB, error) {
	sqlDB, err := sql.Open(dialect.DriverName(), dialect.DSN(dc))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := sqlDB.Ping(); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if err := dialect.ConfigureConnection(sqlDB); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("failed to configure connection: %w", err)
	}

	log.Printf("Connected to %s database", dialect.DriverName())

	return &DB{DB: sqlDB, dialect: dialect}, nil
}

// Dialect returns the active dialect.
func (db *DB) Dialect() Dialect {
	return db.dialect
}

// Query rewrites placeholders for the active dialect before querying.
func (db *DB) Query(query string, args ...interface{}) (*sql.Rows, error) {
	return db.DB.Query(db.dialect.RewriteQuery(query), args...)
}

// QueryRow rewrites placeholders for the active dialect before querying.
func (db *DB) QueryRow(query string, args ...interface{}) *sql.Row {
	return db.DB.QueryRow(db.dialect.RewriteQuery(query), args...)
}

// Exec rewrites placeholders for the active dialect before executing.
func (db *DB) Exec(query string, args ...interface{}) (sql.Result, error) {
	return db.DB.Exec(db.dialect.RewriteQuery(query), args...)
}

// ExecReturningID runs an INSERT and returns the new row id regardless of
// whether the driver supports LastInsertId. The query must not already
// contain a RETURNING clause.
func (db *DB) ExecReturningID(query string, args ...interface{}) (int64, error) {
	if db.dialect.SupportsLastInsertId() {
		result, err := db.Exec(query, args...)
		if err != nil {
			return 0, err
		}
		return result.LastInsertId()
	}

	var id int64
	query = trimForReturning(query) + " RETURNING id"
	if err := db.QueryRow(query, args...).Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

func trimForReturning(query string) string {
	return strings.TrimRight(strings.TrimSpace(query), "; \t\n")
}
