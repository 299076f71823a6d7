// Package scheduler runs periodic platform syncs on a cron schedule.
package scheduler

import (
	"context"
	"fmt"
	"log"

	"github.com/robfig/cron/v3"

	"github.com/bwhitmire55/cryptfolio/internal/app"
)

// Scheduler drives the app's platform syncs.
type Scheduler struct {
	Cron *cron.Cron
	App  *app.App
	Ctx  context.Context
}

// New creates a Scheduler for the given app.
func New(ctx context.Context, a *app.App) *Scheduler {
	return &Scheduler{
		Cron: cron.New(cron.WithSeconds()),
		App:  a,
		Ctx:  ctx,
	}
}

// Register adds the periodic sync task.
func (s *Scheduler) Register(syncCron string) error {
	if _, err := s.Cron.AddFunc(syncCron, s.syncTask); err != nil {
		return fmt.Errorf("register sync task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Println("[INFO] scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	s.Cron.Stop()
	log.Println("[INFO] scheduler stopped")
}

// RunSyncNow executes the sync task immediately (for sync-on-start).
func (s *Scheduler) RunSyncNow() {
	s.syncTask()
}

func (s *Scheduler) syncTask() {
	log.Println("[INFO] running platform sync")
	s.App.SyncAll(s.Ctx)
}
