package testutil

import (
	"context"
	"database/sql"
	"testing"

	"github.com/smartboxadvisors-cell/mutual-funds-sub001/internal/model"
	"github.com/smartboxadvisors-cell/mutual-funds-sub001/internal/repository"
)

// TradeRecordBuilder provides a fluent interface for creating test trade records.
//
// Example usage:
//
//	// Simple creation with defaults
//	record := testutil.NewTradeRecord().Build(t, db)
//
//	// Customized record
//	record := testutil.NewTradeRecord().
//	    OnExchange(model.ExchangeBSE).
//	    WithAmount(150).
//	    WithRating("AA+;CRISIL AAA").
//	    Build(t, db)
type TradeRecordBuilder struct {
	record model.TradeRecord
}

// NewTradeRecord creates a TradeRecordBuilder with sensible defaults.
func NewTradeRecord() *TradeRecordBuilder {
	return &TradeRecordBuilder{
		record: model.TradeRecord{
			ID:            MakeID(),
			Exchange:      model.ExchangeNSE,
			TradeDate:     "2024-03-15",
			TradeTime:     "10:30:00",
			Identifier:    MakeISIN("IN"),
			IssuerDetails: "Test Issuer Ltd",
			MaturityDate:  "2027-06-30",
			Amount:        25,
			Price:         101.5,
			Yield:         "7.85",
			Status:        "SETTLED",
			DealType:      "BROKERED",
			Rating:        "AA+",
		},
	}
}

// WithID sets a custom ID.
func (b *TradeRecordBuilder) WithID(id string) *TradeRecordBuilder {
	b.record.ID = id
	return b
}

// OnExchange sets the source exchange.
func (b *TradeRecordBuilder) OnExchange(exchange string) *TradeRecordBuilder {
	b.record.Exchange = exchange
	return b
}

// OnDate sets the trade date (YYYY-MM-DD).
func (b *TradeRecordBuilder) OnDate(date string) *TradeRecordBuilder {
	b.record.TradeDate = date
	return b
}

// WithIdentifier sets the security identifier.
func (b *TradeRecordBuilder) WithIdentifier(identifier string) *TradeRecordBuilder {
	b.record.Identifier = identifier
	return b
}

// WithIssuer sets the issuer details.
func (b *TradeRecordBuilder) WithIssuer(issuer string) *TradeRecordBuilder {
	b.record.IssuerDetails = issuer
	return b
}

// WithMaturity sets the maturity date (YYYY-MM-DD).
func (b *TradeRecordBuilder) WithMaturity(maturity string) *TradeRecordBuilder {
	b.record.MaturityDate = maturity
	return b
}

// WithAmount sets the trade amount in lacs.
func (b *TradeRecordBuilder) WithAmount(amount float64) *TradeRecordBuilder {
	b.record.Amount = amount
	return b
}

// WithPrice sets the trade price.
func (b *TradeRecordBuilder) WithPrice(price float64) *TradeRecordBuilder {
	b.record.Price = price
	return b
}

// WithYield sets the yield display string.
func (b *TradeRecordBuilder) WithYield(yield string) *TradeRecordBuilder {
	b.record.Yield = yield
	return b
}

// WithStatus sets the settlement status.
func (b *TradeRecordBuilder) WithStatus(status string) *TradeRecordBuilder {
	b.record.Status = status
	return b
}

// WithDealType sets the deal type.
func (b *TradeRecordBuilder) WithDealType(dealType string) *TradeRecordBuilder {
	b.record.DealType = dealType
	return b
}

// WithRating sets the raw rating string.
func (b *TradeRecordBuilder) WithRating(rating string) *TradeRecordBuilder {
	b.record.Rating = rating
	return b
}

// Record returns the built record without persisting it. Useful for
// exercising the pure sort/filter/aggregation engine.
func (b *TradeRecordBuilder) Record() model.TradeRecord {
	return b.record
}

// Build persists the record and returns it.
func (b *TradeRecordBuilder) Build(t *testing.T, db *sql.DB) model.TradeRecord {
	t.Helper()

	repo := repository.NewTradeRepository(db)
	if _, err := repo.InsertTradeRecords(context.Background(), []model.TradeRecord{b.record}); err != nil {
		t.Fatalf("Failed to insert test trade record: %v", err)
	}
	return b.record
}

// SecurityBuilder provides a fluent interface for creating securities-master
// entries in tests.
//
// Example usage:
//
//	security := testutil.NewSecurity().
//	    WithIdentifier("INE001A01001").
//	    WithRating("AAA").
//	    Build(t, db)
type SecurityBuilder struct {
	record model.SecurityRecord
}

// NewSecurity creates a SecurityBuilder with sensible defaults.
func NewSecurity() *SecurityBuilder {
	return &SecurityBuilder{
		record: model.SecurityRecord{
			Identifier: MakeISIN("IN"),
			Issuer:     "Test Issuer Ltd",
			Rating:     "AAA",
		},
	}
}

// WithIdentifier sets the identifier.
func (b *SecurityBuilder) WithIdentifier(identifier string) *SecurityBuilder {
	b.record.Identifier = identifier
	return b
}

// WithIssuer sets the issuer.
func (b *SecurityBuilder) WithIssuer(issuer string) *SecurityBuilder {
	b.record.Issuer = issuer
	return b
}

// WithRating sets the rating.
func (b *SecurityBuilder) WithRating(rating string) *SecurityBuilder {
	b.record.Rating = rating
	return b
}

// Record returns the built entry without persisting it.
func (b *SecurityBuilder) Record() model.SecurityRecord {
	return b.record
}

// Build persists the entry and returns it.
func (b *SecurityBuilder) Build(t *testing.T, db *sql.DB) model.SecurityRecord {
	t.Helper()

	repo := repository.NewSecurityRepository(db)
	securities := map[string]model.SecurityRecord{b.record.Identifier: b.record}
	if err := repo.UpsertSecurities(context.Background(), securities); err != nil {
		t.Fatalf("Failed to insert test security: %v", err)
	}
	return b.record
}
