package database

import "testing"

func TestDialectBasics(t *testing.T) {
	tests := []struct {
		name                 string
		dialect              Dialect
		driverName           string
		supportsLastInsertId bool
		migrationsSubdir     string
	}{
		{"sqlite", NewSQLiteDialect(), "sqlite3", true, "sqlite"},
		{"postgres", NewPostgresDialect(), "postgres", false, "postgres"},
		{"mysql", NewMySQLDialect(), "mysql", true, "mysql"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.dialect.DriverName(); got != tt.driverName {
				t.Errorf("DriverName() = %q, want %q", got, tt.driverName)
			}
			if got := tt.dialect.SupportsLastInsertId(); got != tt.supportsLastInsertId {
				t.Errorf("SupportsLastInsertId() = %v, want %v", got, tt.supportsLastInsertId)
			}
			if got := tt.dialect.MigrationsSubdir(); got != tt.migrationsSubdir {
				t.Errorf("MigrationsSubdir() = %q, want %q", got, tt.migrationsSubdir)
			}
		})
	}
}

func TestRewriteQuery(t *testing.T) {
	tests := []struct {
		name    string
		dialect Dialect
		query   string
		want    string
	}{
		{
			name:    "sqlite passthrough",
			dialect: NewSQLiteDialect(),
			query:   "SELECT * FROM drill_sessions WHERE code = ? AND is_active = ?",
			want:    "SELECT * FROM drill_sessions WHERE code = ? AND is_active = ?",
		},
		{
			name:    "mysql passthrough",
			dialect: NewMySQLDialect(),
			query:   "INSERT INTO assessment_results (session_id, item_id) VALUES (?, ?)",
			want:    "INSERT INTO assessment_results (session_id, item_id) VALUES (?, ?)",
		},
		{
			name:    "postgres numbered",
			dialect: NewPostgresDialect(),
			query:   "UPDATE drill_sessions SET current_index = ?, updated_at = ? WHERE id = ?",
			want:    "UPDATE drill_sessions SET current_index = $1, updated_at = $2 WHERE id = $3",
		},
		{
			name:    "postgres no placeholders",
			dialect: NewPostgresDialect(),
			query:   "SELECT COUNT(*) FROM migrations",
			want:    "SELECT COUNT(*) FROM migrations",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.dialect.RewriteQuery(tt.query); got != tt.want {
				t.Errorf("RewriteQuery() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTrimForReturning(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"INSERT INTO t (a) VALUES (?)", "INSERT INTO t (a) VALUES (?)"},
		{"INSERT INTO t (a) VALUES (?);", "INSERT INTO t (a) VALUES (?)"},
		{"  INSERT INTO t (a) VALUES (?) ;  ", "INSERT INTO t (a) VALUES (?)"},
	}

	for _, tt := range tests {
		if got := trimForReturning(tt.in); got != tt.want {
			t.Errorf("trimForReturning(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
