package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/smartboxadvisors-cell/mutual-funds-sub001/internal/model"
)

// SecurityRepository provides data access methods for the securities
// master (security_record table).
type SecurityRepository struct {
	db *sql.DB
}

// NewSecurityRepository creates a new SecurityRepository with the provided database connection.
func NewSecurityRepository(db *sql.DB) *SecurityRepository {
	return &SecurityRepository{db: db}
}

// UpsertSecurities writes master entries with last-write-wins semantics on
// the identifier, matching how repeated identifiers behave within one
// ingestion run.
func (r *SecurityRepository) UpsertSecurities(ctx context.Context, securities map[string]model.SecurityRecord) error {
	if len(securities) == 0 {
		return nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO security_record (identifier, issuer, rating, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(identifier) DO UPDATE SET
			issuer = excluded.issuer,
			rating = excluded.rating,
			updated_at = excluded.updated_at
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare upsert: %w", err)
	}
	defer stmt.Close()

	now := time.Now().UTC().Format(time.RFC3339)
	for _, sec := range securities {
		if _, err := stmt.ExecContext(ctx, sec.Identifier, sec.Issuer, sec.Rating, now); err != nil {
			return fmt.Errorf("failed to upsert security %s: %w", sec.Identifier, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit securities: %w", err)
	}
	return nil
}

// GetAll returns the full master as a lookup map keyed by identifier.
func (r *SecurityRepository) GetAll() (map[string]model.SecurityRecord, error) {
	rows, err := r.db.Query(`SELECT identifier, issuer, rating FROM security_record`)
	if err != nil {
		return nil, fmt.Errorf("failed to query security_record table: %w", err)
	}
	defer rows.Close()

	securities := make(map[string]model.SecurityRecord)
	for rows.Next() {
		var sec model.SecurityRecord
		if err := rows.Scan(&sec.Identifier, &sec.Issuer, &sec.Rating); err != nil {
			return nil, fmt.Errorf("failed to scan security_record results: %w", err)
		}
		securities[sec.Identifier] = sec
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating security_record table: %w", err)
	}
	return securities, nil
}

// List returns the master entries ordered by identifier for API responses.
func (r *SecurityRepository) List() ([]model.SecurityRecord, error) {
	rows, err := r.db.Query(`SELECT identifier, issuer, rating FROM security_record ORDER BY identifier ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query security_record table: %w", err)
	}
	defer rows.Close()

	securities := []model.SecurityRecord{}
	for rows.Next() {
		var sec model.SecurityRecord
		if err := rows.Scan(&sec.Identifier, &sec.Issuer, &sec.Rating); err != nil {
			return nil, fmt.Errorf("failed to scan security_record results: %w", err)
		}
		securities = append(securities, sec)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating security_record table: %w", err)
	}
	return securities, nil
}
