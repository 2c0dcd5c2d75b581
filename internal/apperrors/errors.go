// Package apperrors defines the sentinel errors shared across the
// service, repository and handler layers.
package apperrors

import "errors"

// Domain entity errors represent missing or invalid entities in the system.
var (
	// ErrTradeRecordNotFound indicates that a trade record with the given ID does not exist.
	ErrTradeRecordNotFound = errors.New("trade record not found")

	// ErrSecurityNotFound indicates that a securities-master entry does not exist.
	ErrSecurityNotFound = errors.New("security not found")

	// ErrSyncNotConfigured indicates the upstream sync has not been set up.
	ErrSyncNotConfigured = errors.New("upstream sync not configured")
)

// Ingestion errors represent upload-level failures. Per-file parse errors
// are not errors at this level; they travel inside the preview result.
var (
	// ErrNoFiles indicates an upload request carried no files.
	ErrNoFiles = errors.New("no files provided")

	// ErrAllFilesFailed indicates every file in an upload failed to parse.
	ErrAllFilesFailed = errors.New("no file could be parsed")
)

// Business logic errors represent validation failures or constraint violations.
var (
	// ErrInvalidDateRange indicates that the provided date range is invalid
	// (e.g., start date is after end date).
	ErrInvalidDateRange = errors.New("invalid date range")

	// ErrInvalidPagination indicates page or pageSize is out of range.
	ErrInvalidPagination = errors.New("invalid pagination parameters")

	// ErrInvalidNumericRange indicates a numeric filter bound failed to parse.
	ErrInvalidNumericRange = errors.New("invalid numeric range")

	// ErrMissingToken indicates a sync configuration without an API token.
	ErrMissingToken = errors.New("missing upstream API token")

	// ErrTokenKeyNotSet indicates the fernet key for token custody is absent.
	ErrTokenKeyNotSet = errors.New("SYNC_TOKEN_KEY is not configured")
)

// Retrieval-failure messages surfaced by handlers.
var (
	ErrFailedToRetrieveTrades     = errors.New("failed to retrieve trade records")
	ErrFailedToRetrieveSecurities = errors.New("failed to retrieve securities")
	ErrFailedToBuildPreview       = errors.New("failed to build trade preview")
)
