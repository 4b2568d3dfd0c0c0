package service

import (
	"log"
	"time"

	"randevu/internal/session"
)

// JobService runs the periodic maintenance work scheduled from main.
type JobService struct {
	Store session.Store
	Now   func() time.Time
}

func NewJobService(store session.Store) *JobService {
	return &JobService{Store: store, Now: time.Now}
}

// SweepStaleSessions drops sessions that have been idle longer than ttl.
// Abandoned conversations otherwise stay in memory forever; the state
// machine itself never evicts.
func (s *JobService) SweepStaleSessions(ttl time.Duration) int {
	cutoff := s.Now().Add(-ttl)
	removed := s.Store.DeleteIdleBefore(cutoff)
	if removed > 0 {
		log.Printf("Cron Job: removed %d stale sessions (idle since before %s)", removed, cutoff.Format(time.RFC3339))
	}
	return removed
}
