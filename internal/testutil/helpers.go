package testutil

import (
	"database/sql"
	"math/rand"
	"testing"

	"github.com/google/uuid"

	"github.com/smartboxadvisors-cell/mutual-funds-sub001/internal/repository"
	"github.com/smartboxadvisors-cell/mutual-funds-sub001/internal/service"
	"github.com/smartboxadvisors-cell/mutual-funds-sub001/internal/upstream"
)

// TestTokenKey is a fixed base64 fernet key for tests that exercise the
// encrypted sync-token custody.
const TestTokenKey = "cw_0x689RpI-jtRR7oE8h_eQsKImvJapLeSbXpwF4e4="

func NewTestIngestService(t *testing.T, db *sql.DB) *service.IngestService {
	t.Helper()

	tradeRepo := repository.NewTradeRepository(db)
	securityRepo := repository.NewSecurityRepository(db)

	return service.NewIngestService(
		tradeRepo,
		securityRepo,
	)
}

func NewTestTransactionService(t *testing.T, db *sql.DB) *service.TransactionService {
	t.Helper()

	tradeRepo := repository.NewTradeRepository(db)

	return service.NewTransactionService(
		tradeRepo,
	)
}

func NewTestAggregationService(t *testing.T, db *sql.DB) *service.AggregationService {
	t.Helper()

	return service.NewAggregationService(
		NewTestTransactionService(t, db),
	)
}

func NewTestMasterService(t *testing.T, db *sql.DB) *service.MasterService {
	t.Helper()

	securityRepo := repository.NewSecurityRepository(db)

	return service.NewMasterService(
		securityRepo,
	)
}

func NewTestSystemService(t *testing.T, db *sql.DB) *service.SystemService {
	t.Helper()

	return service.NewSystemService(db)
}

// NewTestSyncService creates a SyncService backed by the provided upstream
// client, typically a MockUpstreamClient.
func NewTestSyncService(t *testing.T, db *sql.DB, client upstream.Client) *service.SyncService {
	t.Helper()

	tradeRepo := repository.NewTradeRepository(db)
	securityRepo := repository.NewSecurityRepository(db)
	settingsRepo, err := repository.NewSettingsRepository(db, TestTokenKey)
	if err != nil {
		t.Fatalf("Failed to create settings repository: %v", err)
	}

	return service.NewSyncService(
		settingsRepo,
		tradeRepo,
		securityRepo,
		client,
	)
}

// MakeID generates a UUID string for use in tests.
//
// Example usage:
//
//	id := testutil.MakeID()
//	// Returns: "550e8400-e29b-41d4-a716-446655440000"
func MakeID() string {
	return uuid.New().String()
}

// MakeISIN generates a realistic ISIN code for testing.
//
// Example usage:
//
//	isin := testutil.MakeISIN("IN")
//	// Returns: "IN1A2B3C4D5E"
func MakeISIN(prefix string) string {
	if prefix == "" {
		prefix = "IN"
	}
	return prefix + randomAlphanumeric(10)
}

// randomAlphanumeric generates a random alphanumeric string of specified length.
func randomAlphanumeric(length int) string {
	const charset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	result := make([]byte, length)
	for i := range result {
		//nolint:gosec // G404: Using math/rand for test data generation is acceptable
		result[i] = charset[rand.Intn(len(charset))]
	}
	return string(result)
}
