package store

import (
	"context"

	"github.com/Sorin-PSP/EatWise-sub000/client"
	"github.com/Sorin-PSP/EatWise-sub000/models"

	"go.uber.org/zap"
)

// SyncTrigger pushes offline-created log entries to the backend when a
// session becomes available. The push is one-shot and fire-and-forget:
// there is no retry, no idempotency key, and a second trigger before the
// first finishes can duplicate entries. That matches the shipped behavior;
// reconciliation is an open product question.
type SyncTrigger struct {
	backend client.Backend
	daylog  *DayLog
	log     *zap.Logger
}

func NewSyncTrigger(backend client.Backend, daylog *DayLog, logger *zap.Logger) *SyncTrigger {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SyncTrigger{backend: backend, daylog: daylog, log: logger}
}

// Attach registers the trigger on the client's auth-change feed. Sign-in
// starts a background push; sign-out does nothing.
func (s *SyncTrigger) Attach(c *client.Client) {
	c.OnAuthChange(func(session *client.Session) {
		if session == nil {
			return
		}
		go s.Push(context.Background())
	})
}

// Push sends every local-only entry upstream, replacing each with the
// backend's version as it lands. Failures are logged and skipped.
func (s *SyncTrigger) Push(ctx context.Context) {
	if !s.backend.Authenticated() || s.backend.Offline() {
		return
	}

	locals := s.daylog.LocalEntries()
	if len(locals) == 0 {
		return
	}
	s.log.Info("pushing offline log entries", zap.Int("count", len(locals)))

	pushed := 0
	for _, e := range locals {
		// entries pointing at local-only foods stay local; their food has
		// no backend identity to reference
		if models.IsLocalID(e.FoodID) {
			continue
		}
		remote, err := s.backend.InsertLogEntry(ctx, e.Date, e.MealType, e.FoodID, e.Quantity)
		if err != nil {
			s.log.Warn("offline entry push failed",
				zap.String("id", e.ID),
				zap.String("food", e.FoodName),
				zap.Error(err))
			continue
		}
		s.daylog.replaceEntry(e.ID, remote)
		pushed++
	}
	s.log.Info("offline push finished", zap.Int("pushed", pushed), zap.Int("total", len(locals)))
}
