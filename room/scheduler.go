package room

import (
	"context"
	"time"

	"github.com/brickrockler/superpong/protocol"
)

// Scheduler drives every Playing room from one fixed-rate ticker. Rooms
// in Lobby or Finished are skipped outright, and delivery into a room's
// inbox is non-blocking: a room that cannot keep up misses ticks instead
// of accumulating a backlog.
type Scheduler struct {
	mgr *Manager
	hz  int
}

func NewScheduler(mgr *Manager, hz int) *Scheduler {
	if hz <= 0 {
		hz = protocol.SimTickHz
	}
	return &Scheduler{mgr: mgr, hz: hz}
}

func (s *Scheduler) Run(ctx context.Context) error {
	ticker := time.NewTicker(time.Second / time.Duration(s.hz))
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			for _, r := range s.mgr.Rooms() {
				if r.Status() != StatusPlaying {
					continue
				}
				select {
				case r.Inbox <- Tick{}:
				default:
				}
			}
		}
	}
}
