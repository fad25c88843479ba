package roster

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

// Scheduler flushes the store to durable storage on two independent cadences:
// a frequent working snapshot and an infrequent backup snapshot, written to
// distinct paths. Snapshot failures are logged and never fatal.
type Scheduler struct {
	c *cron.Cron
}

// NewScheduler registers the two snapshot jobs. Start must be called to begin
// flushing.
func NewScheduler(store *Store, workingPath, backupPath string, saveEvery, backupEvery time.Duration) (*Scheduler, error) {
	c := cron.New()

	save := func(path, kind string) {
		if err := store.Save(path); err != nil {
			slog.Error("Roster snapshot failed", "kind", kind, "path", path, "error", err)
			return
		}
		slog.Debug("Roster snapshot written", "kind", kind, "path", path)
	}

	if _, err := c.AddFunc(fmt.Sprintf("@every %s", saveEvery), func() { save(workingPath, "working") }); err != nil {
		return nil, fmt.Errorf("failed to schedule working snapshot: %w", err)
	}
	if _, err := c.AddFunc(fmt.Sprintf("@every %s", backupEvery), func() { save(backupPath, "backup") }); err != nil {
		return nil, fmt.Errorf("failed to schedule backup snapshot: %w", err)
	}

	return &Scheduler{c: c}, nil
}

// Start begins the snapshot timers.
func (s *Scheduler) Start() {
	s.c.Start()
}

// Stop halts the timers; a job already running is allowed to finish.
func (s *Scheduler) Stop() {
	ctx := s.c.Stop()
	<-ctx.Done()
}
