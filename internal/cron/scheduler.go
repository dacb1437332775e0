package cronjob

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/autofounder/deck-backend/internal/deck/repository"
)

type Scheduler struct {
	archive   *repository.ArchiveRepo
	retention time.Duration
}

func NewScheduler(archive *repository.ArchiveRepo, retention time.Duration) *Scheduler {
	return &Scheduler{archive: archive, retention: retention}
}

// Start initializes cron tasks
func (s *Scheduler) Start() {
	c := cron.New(cron.WithSeconds())

	// (3:00 AM)
	_, err := c.AddFunc("0 0 3 * * *", func() {
		s.pruneArchive()
	})

	if err != nil {
		log.Printf("Failed to create cron job: %v", err)
		return
	}

	log.Println("Cron scheduler started (pruning archive nightly at 3:00AM)")
	c.Start()
}

func (s *Scheduler) pruneArchive() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	n, err := s.archive.PruneOlderThan(ctx, s.retention)
	if err != nil {
		log.Printf("Archive prune failed: %v", err)
		return
	}
	log.Printf("Archive prune removed %d decks older than %s", n, s.retention)
}
