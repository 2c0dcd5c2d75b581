package service

import (
	"context"
	"fmt"
	"time"

	"github.com/smartboxadvisors-cell/mutual-funds-sub001/internal/apperrors"
	"github.com/smartboxadvisors-cell/mutual-funds-sub001/internal/ingest"
	"github.com/smartboxadvisors-cell/mutual-funds-sub001/internal/model"
	"github.com/smartboxadvisors-cell/mutual-funds-sub001/internal/repository"
	"github.com/smartboxadvisors-cell/mutual-funds-sub001/internal/upstream"
)

// SyncService pulls pre-normalized transactions from the upstream
// fund-data API, re-normalizes them into canonical trade records and
// persists them alongside file-ingested ones.
type SyncService struct {
	settingsRepo *repository.SettingsRepository
	tradeRepo    *repository.TradeRepository
	securityRepo *repository.SecurityRepository
	client       upstream.Client
}

// NewSyncService creates a new SyncService with the provided dependencies.
func NewSyncService(
	settingsRepo *repository.SettingsRepository,
	tradeRepo *repository.TradeRepository,
	securityRepo *repository.SecurityRepository,
	client upstream.Client,
) *SyncService {
	return &SyncService{
		settingsRepo: settingsRepo,
		tradeRepo:    tradeRepo,
		securityRepo: securityRepo,
		client:       client,
	}
}

// Configure stores the upstream base URL, API token (encrypted at rest)
// and auto-sync flag.
func (s *SyncService) Configure(ctx context.Context, baseURL, token string, autoSync bool) error {
	if token == "" {
		return apperrors.ErrMissingToken
	}
	return s.settingsRepo.SaveSyncConfig(ctx, baseURL, token, autoSync)
}

// Config returns the stored configuration with the token redacted.
func (s *SyncService) Config() (model.SyncConfig, error) {
	return s.settingsRepo.GetSyncConfig()
}

// maxSyncPages bounds a single pull so a misbehaving upstream cannot spin
// the service forever.
const maxSyncPages = 200

// Run performs one upstream pull: page through the transaction query,
// map every row through the normalizers, join against the stored
// securities master and persist. Rows failing the identifier gate are
// counted as skipped, never as errors.
func (s *SyncService) Run(ctx context.Context) (model.SyncResult, error) {
	cfg, err := s.settingsRepo.GetSyncConfig()
	if err != nil {
		return model.SyncResult{}, err
	}
	if !cfg.Configured || !cfg.TokenSet {
		return model.SyncResult{}, apperrors.ErrSyncNotConfigured
	}

	token, err := s.settingsRepo.Token()
	if err != nil {
		return model.SyncResult{}, err
	}

	var records []model.TradeRecord
	fetched, skipped := 0, 0
	for page := 1; page <= maxSyncPages; page++ {
		batch, err := s.client.FetchTransactions(ctx, cfg.BaseURL, token, page)
		if err != nil {
			return model.SyncResult{}, fmt.Errorf("upstream fetch failed on page %d: %w", page, err)
		}
		if len(batch.Transactions) == 0 {
			break
		}
		fetched += len(batch.Transactions)
		for _, st := range batch.Transactions {
			rec, ok := upstream.MapTransaction(st)
			if !ok {
				skipped++
				continue
			}
			records = append(records, rec)
		}
		if batch.Total > 0 && fetched >= batch.Total {
			break
		}
	}

	master, err := s.securityRepo.GetAll()
	if err != nil {
		return model.SyncResult{}, err
	}
	ingest.JoinMaster(records, master)

	imported, err := s.tradeRepo.InsertTradeRecords(ctx, records)
	if err != nil {
		return model.SyncResult{}, err
	}

	syncedAt := time.Now().UTC()
	if err := s.settingsRepo.MarkSynced(ctx, syncedAt); err != nil {
		return model.SyncResult{}, err
	}

	return model.SyncResult{
		Fetched:  fetched,
		Imported: imported,
		Skipped:  skipped,
		SyncedAt: syncedAt,
	}, nil
}
