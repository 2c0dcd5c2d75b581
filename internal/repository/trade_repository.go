package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/smartboxadvisors-cell/mutual-funds-sub001/internal/ingest"
	"github.com/smartboxadvisors-cell/mutual-funds-sub001/internal/model"
)

// TradeRepository provides data access methods for the trade_record table.
type TradeRepository struct {
	db *sql.DB
}

// NewTradeRepository creates a new TradeRepository with the provided database connection.
func NewTradeRepository(db *sql.DB) *TradeRepository {
	return &TradeRepository{db: db}
}

// InsertTradeRecords persists a batch of records in one transaction.
// Records without an ID are assigned one. Returns the number inserted.
func (r *TradeRepository) InsertTradeRecords(ctx context.Context, records []model.TradeRecord) (int, error) {
	if len(records) == 0 {
		return 0, nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO trade_record (
			id, exchange, trade_date, trade_time, identifier, issuer_details,
			maturity_date, amount, price, yield, status, deal_type, rating, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return 0, fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	now := time.Now().UTC().Format(time.RFC3339)
	for _, rec := range records {
		id := rec.ID
		if id == "" {
			id = uuid.New().String()
		}
		if _, err := stmt.ExecContext(ctx,
			id,
			rec.Exchange,
			rec.TradeDate,
			rec.TradeTime,
			rec.Identifier,
			rec.IssuerDetails,
			rec.MaturityDate,
			rec.Amount,
			rec.Price,
			rec.Yield,
			rec.Status,
			rec.DealType,
			rec.Rating,
			now,
		); err != nil {
			return 0, fmt.Errorf("failed to insert trade record: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit trade records: %w", err)
	}
	return len(records), nil
}

// ListTradeRecords retrieves every stored record with rating parts
// re-derived, pre-ordered to match the canonical sort so downstream
// passes start from a deterministic base.
func (r *TradeRepository) ListTradeRecords() ([]model.TradeRecord, error) {
	query := `
		SELECT id, exchange, trade_date, trade_time, identifier, issuer_details,
		       maturity_date, amount, price, yield, status, deal_type, rating, created_at
		FROM trade_record
		ORDER BY trade_date DESC, exchange ASC, identifier ASC
	`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query trade_record table: %w", err)
	}
	defer rows.Close()

	records := []model.TradeRecord{}
	for rows.Next() {
		var rec model.TradeRecord
		var createdAtStr string

		err := rows.Scan(
			&rec.ID,
			&rec.Exchange,
			&rec.TradeDate,
			&rec.TradeTime,
			&rec.Identifier,
			&rec.IssuerDetails,
			&rec.MaturityDate,
			&rec.Amount,
			&rec.Price,
			&rec.Yield,
			&rec.Status,
			&rec.DealType,
			&rec.Rating,
			&createdAtStr,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan trade_record results: %w", err)
		}

		rec.CreatedAt, err = ParseTime(createdAtStr)
		if err != nil {
			return nil, fmt.Errorf("failed to parse created_at: %w", err)
		}

		rec.RatingParts = ingest.SplitRatingParts(rec.Rating)
		records = append(records, rec)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating trade_record table: %w", err)
	}

	return records, nil
}

// DeleteAll clears the trade store. Used when a fresh ingestion run
// replaces the previous preview.
func (r *TradeRepository) DeleteAll(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM trade_record`); err != nil {
		return fmt.Errorf("failed to clear trade_record table: %w", err)
	}
	return nil
}

// Count returns the number of stored trade records.
func (r *TradeRepository) Count() (int, error) {
	var n int
	if err := r.db.QueryRow(`SELECT COUNT(*) FROM trade_record`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count trade records: %w", err)
	}
	return n, nil
}
