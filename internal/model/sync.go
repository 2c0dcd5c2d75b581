package model

import "time"

// SyncConfig describes the stored configuration for pulling pre-normalized
// transactions from the upstream fund-data API. The access token is held
// fernet-encrypted at rest and never leaves the service; API responses
// expose only TokenSet.
type SyncConfig struct {
	Configured      bool       `json:"configured"`
	BaseURL         string     `json:"baseUrl,omitempty"`
	TokenSet        bool       `json:"tokenSet"`
	AutoSyncEnabled bool       `json:"autoSyncEnabled"`
	LastSyncAt      *time.Time `json:"lastSyncAt,omitempty"`
	UpdatedAt       time.Time  `json:"updatedAt"`
}

// SyncResult summarizes one upstream pull.
type SyncResult struct {
	Fetched  int       `json:"fetched"`
	Imported int       `json:"imported"`
	Skipped  int       `json:"skipped"`
	SyncedAt time.Time `json:"syncedAt"`
}
