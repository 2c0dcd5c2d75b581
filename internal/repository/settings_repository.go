package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/fernet/fernet-go"

	"github.com/smartboxadvisors-cell/mutual-funds-sub001/internal/apperrors"
	"github.com/smartboxadvisors-cell/mutual-funds-sub001/internal/model"
)

// SettingsRepository stores the upstream-sync configuration. The API token
// is fernet-encrypted before it touches the database and decrypted only
// when a sync run needs it.
type SettingsRepository struct {
	db  *sql.DB
	key *fernet.Key
}

// NewSettingsRepository creates a SettingsRepository. tokenKey is the
// base64 fernet key; it may be empty, in which case saving a token fails
// with ErrTokenKeyNotSet.
func NewSettingsRepository(db *sql.DB, tokenKey string) (*SettingsRepository, error) {
	repo := &SettingsRepository{db: db}
	if tokenKey != "" {
		key, err := fernet.DecodeKey(tokenKey)
		if err != nil {
			return nil, fmt.Errorf("invalid sync token key: %w", err)
		}
		repo.key = key
	}
	return repo, nil
}

// SaveSyncConfig stores the upstream base URL and encrypted token.
func (r *SettingsRepository) SaveSyncConfig(ctx context.Context, baseURL, token string, autoSync bool) error {
	if r.key == nil {
		return apperrors.ErrTokenKeyNotSet
	}
	encrypted, err := fernet.EncryptAndSign([]byte(token), r.key)
	if err != nil {
		return fmt.Errorf("failed to encrypt token: %w", err)
	}

	now := time.Now().UTC().Format(time.RFC3339)
	_, err = r.db.ExecContext(ctx, `
		INSERT INTO sync_settings (id, base_url, token_encrypted, auto_sync_enabled, updated_at)
		VALUES (1, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			base_url = excluded.base_url,
			token_encrypted = excluded.token_encrypted,
			auto_sync_enabled = excluded.auto_sync_enabled,
			updated_at = excluded.updated_at
	`, baseURL, string(encrypted), autoSync, now)
	if err != nil {
		return fmt.Errorf("failed to save sync settings: %w", err)
	}
	return nil
}

// GetSyncConfig returns the stored configuration without the token.
func (r *SettingsRepository) GetSyncConfig() (model.SyncConfig, error) {
	var cfg model.SyncConfig
	var baseURL, tokenEncrypted, lastSyncAt sql.NullString
	var updatedAt string

	err := r.db.QueryRow(`
		SELECT base_url, token_encrypted, auto_sync_enabled, last_sync_at, updated_at
		FROM sync_settings WHERE id = 1
	`).Scan(&baseURL, &tokenEncrypted, &cfg.AutoSyncEnabled, &lastSyncAt, &updatedAt)
	if err == sql.ErrNoRows {
		return model.SyncConfig{}, nil
	}
	if err != nil {
		return model.SyncConfig{}, fmt.Errorf("failed to read sync settings: %w", err)
	}

	cfg.Configured = true
	cfg.BaseURL = baseURL.String
	cfg.TokenSet = tokenEncrypted.Valid && tokenEncrypted.String != ""
	if lastSyncAt.Valid {
		if t, err := ParseTime(lastSyncAt.String); err == nil {
			cfg.LastSyncAt = &t
		}
	}
	cfg.UpdatedAt, err = ParseTime(updatedAt)
	if err != nil {
		return model.SyncConfig{}, fmt.Errorf("failed to parse updated_at: %w", err)
	}
	return cfg, nil
}

// Token decrypts and returns the stored upstream API token.
func (r *SettingsRepository) Token() (string, error) {
	if r.key == nil {
		return "", apperrors.ErrTokenKeyNotSet
	}

	var tokenEncrypted sql.NullString
	err := r.db.QueryRow(`SELECT token_encrypted FROM sync_settings WHERE id = 1`).Scan(&tokenEncrypted)
	if err == sql.ErrNoRows || (err == nil && !tokenEncrypted.Valid) {
		return "", apperrors.ErrSyncNotConfigured
	}
	if err != nil {
		return "", fmt.Errorf("failed to read sync token: %w", err)
	}

	token := fernet.VerifyAndDecrypt([]byte(tokenEncrypted.String), 0, []*fernet.Key{r.key})
	if token == nil {
		return "", fmt.Errorf("failed to decrypt sync token")
	}
	return string(token), nil
}

// MarkSynced records the completion time of an upstream pull.
func (r *SettingsRepository) MarkSynced(ctx context.Context, at time.Time) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE sync_settings SET last_sync_at = ? WHERE id = 1`,
		at.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("failed to record sync time: %w", err)
	}
	return nil
}
