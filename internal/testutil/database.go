package testutil

import (
	"database/sql"
	"testing"

	_ "modernc.org/sqlite" // Test Package
)

// SetupTestDB creates an in-memory SQLite database for testing.
// The database is automatically cleaned up when the test completes.
//
// Example usage:
//
//	func TestSomething(t *testing.T) {
//	    db := testutil.SetupTestDB(t)
//	    // db is ready to use with schema created
//	}
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	// In-memory database (destroyed when connection closes)
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	// Test connection
	if err := db.Ping(); err != nil {
		t.Fatalf("Failed to ping test database: %v", err)
	}

	// Configure SQLite for testing
	pragmas := []string{
		"PRAGMA foreign_keys = ON",
		"PRAGMA journal_mode = MEMORY", // Faster for tests
	}

	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			t.Fatalf("Failed to set pragma: %v", err)
		}
	}

	// Create schema
	if err := createTestSchema(db); err != nil {
		t.Fatalf("Failed to create test schema: %v", err)
	}

	// Cleanup when test ends
	t.Cleanup(func() {
		db.Close()
	})

	return db
}

// createTestSchema creates all database tables for testing.
// Schema is synchronized with the embedded goose migrations.
func createTestSchema(db *sql.DB) error {
	schema := `
		-- Normalized trade records from both exchanges
		CREATE TABLE IF NOT EXISTS trade_record (
			id VARCHAR(36) NOT NULL PRIMARY KEY,
			exchange VARCHAR(10) NOT NULL,
			trade_date VARCHAR(10) NOT NULL,
			trade_time VARCHAR(8),
			identifier VARCHAR(12) NOT NULL,
			issuer_details TEXT,
			maturity_date VARCHAR(10),
			amount REAL NOT NULL,
			price REAL,
			yield TEXT,
			status TEXT,
			deal_type TEXT,
			rating TEXT,
			created_at TEXT NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_trade_record_trade_date ON trade_record(trade_date);
		CREATE INDEX IF NOT EXISTS idx_trade_record_identifier ON trade_record(identifier);

		-- Securities master, keyed by identifier
		CREATE TABLE IF NOT EXISTS security_record (
			identifier VARCHAR(12) NOT NULL PRIMARY KEY,
			issuer TEXT,
			rating TEXT,
			updated_at TEXT NOT NULL
		);

		-- Single-row upstream sync configuration
		CREATE TABLE IF NOT EXISTS sync_settings (
			id INTEGER NOT NULL PRIMARY KEY CHECK (id = 1),
			base_url TEXT,
			token_encrypted TEXT,
			auto_sync_enabled BOOLEAN NOT NULL DEFAULT FALSE,
			last_sync_at TEXT,
			updated_at TEXT NOT NULL
		);
	`

	_, err := db.Exec(schema)
	return err
}
