package ledger

import (
	"time"

	"investledger/internal/models"
)

const adminID int64 = 900

// fixedClock returns a clock stuck at t plus a function to move it.
func fixedClock(t time.Time) (func() time.Time, func(time.Duration)) {
	now := t
	return func() time.Time { return now }, func(d time.Duration) { now = now.Add(d) }
}

func newTestStore(opts ...Option) *Store {
	return New(append([]Option{WithAdmins(adminID)}, opts...)...)
}

func register(s *Store, ids ...int64) {
	for _, id := range ids {
		s.GetOrCreateUser(id, models.Profile{})
	}
}
