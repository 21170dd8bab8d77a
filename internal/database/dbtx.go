package database

import "database/sql"

// DBTX is the subset of operations shared by DB and Tx so repository
// methods can run inside or outside a transaction.
type DBTX interface {
	Query(query string, args ...interface{}) (*sql.Rows, error)
	QueryRow(query string, args ...interface{}) *sql.Row
	Exec(query string, args ...interface{}) (sql.Result, error)
	ExecReturningID(query string, args ...interface{}) (int64, error)
}

// Tx wraps sql.Tx with the same placeholder rewriting as DB.
type Tx struct {
	tx      *sql.Tx
	dialect Dialect
}

// Begin starts a transaction.
func (db *DB) Begin() (*Tx, error) {
	tx, err := db.DB.Begin()
	if err != nil {
		return nil, err
	}
	return &Tx{tx: tx, dialect: db.dialect}, nil
}

func (t *Tx) Query(query string, args ...interface{}) (*sql.Rows, error) {
	return t.tx.Query(t.dialect.RewriteQuery(query), args...)
}

func (t *Tx) QueryRow(query string, args ...interface{}) *sql.Row {
	return t.tx.QueryRow(t.dialect.RewriteQuery(query), args...)
}

func (t *Tx) Exec(query string, args ...interface{}) (sql.Result, error) {
	return t.tx.Exec(t.dialect.RewriteQuery(query), args...)
}

func (t *Tx) ExecReturningID(query string, args ...interface{}) (int64, error) {
	if t.dialect.SupportsLastInsertId() {
		result, err := t.Exec(query, args...)
		if err != nil {
			return 0, err
		}
		return result.LastInsertId()
	}

	var id int64
	query = trimForReturning(query) + " RETURNING id"
	if err := t.QueryRow(query, args...).Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

func (t *Tx) Commit() error   { return t.tx.Commit() }
func (t *Tx) Rollback() error { return t.tx.Rollback() }
