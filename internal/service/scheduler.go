package service

import (
	"context"
	"log"

	"github.com/robfig/cron/v3"

	"github.com/smartboxadvisors-cell/mutual-funds-sub001/internal/config"
)

// Scheduler drives the background jobs: the ingest inbox sweep and the
// optional upstream auto-sync. Jobs run on the cron's goroutine; each run
// logs its outcome and never crashes the process.
type Scheduler struct {
	cron          *cron.Cron
	ingestService *IngestService
	syncService   *SyncService
	cfg           *config.Config
}

// NewScheduler creates a Scheduler. Call Start to register and begin jobs.
func NewScheduler(ingestService *IngestService, syncService *SyncService, cfg *config.Config) *Scheduler {
	return &Scheduler{
		cron:          cron.New(),
		ingestService: ingestService,
		syncService:   syncService,
		cfg:           cfg,
	}
}

// Start registers the configured jobs and starts the cron loop.
func (s *Scheduler) Start() error {
	if dir := s.cfg.Ingest.InboxDir; dir != "" {
		_, err := s.cron.AddFunc(s.cfg.Ingest.InboxSchedule, func() {
			if err := s.ingestService.ScanInbox(context.Background(), dir); err != nil {
				log.Printf("inbox scan failed: %v", err)
			}
		})
		if err != nil {
			return err
		}
		log.Printf("Scheduled inbox scan of %s (%s)", dir, s.cfg.Ingest.InboxSchedule)
	}

	_, err := s.cron.AddFunc(s.cfg.Sync.AutoSchedule, func() {
		cfg, err := s.syncService.Config()
		if err != nil || !cfg.AutoSyncEnabled {
			return
		}
		result, err := s.syncService.Run(context.Background())
		if err != nil {
			log.Printf("auto-sync failed: %v", err)
			return
		}
		log.Printf("auto-sync imported %d of %d record(s)", result.Imported, result.Fetched)
	})
	if err != nil {
		return err
	}

	s.cron.Start()
	return nil
}

// Stop stops the cron loop, waiting for running jobs to finish.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}
