package ledger

import (
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"investledger/internal/models"
)

var vipDailyRate = decimal.RequireFromString("0.70")

// EnqueueVIP appends a VIP entry. The amount is not checked against the VIP
// plan. The entry's manager is whoever referred the user at this moment.
func (s *Store) EnqueueVIP(userID int64, amount decimal.Decimal) models.VIPEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, _ := s.ensureUser(userID)
	entry := models.VIPEntry{
		Position:   len(s.vipQueue) + 1,
		UserID:     userID,
		Amount:     amount,
		EnqueuedAt: s.now(),
	}
	if u.ReferredBy != nil {
		m := *u.ReferredBy
		entry.ManagerID = &m
	}
	s.vipQueue = append(s.vipQueue, entry)

	s.log.Info("VIP enqueued",
		zap.Int64("userID", userID),
		zap.Int("position", entry.Position),
		zap.String("amount", amount.String()),
	)
	return entry.Clone()
}

// LastVIPDailyPayout is 70% of the most recent VIP entry's amount, or zero
// for an empty queue. Earlier entries earn nothing through this figure.
func (s *Store) LastVIPDailyPayout() decimal.Decimal {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.lastVIPDailyPayout()
}

func (s *Store) lastVIPDailyPayout() decimal.Decimal {
	if len(s.vipQueue) == 0 {
		return decimal.Zero
	}
	return s.vipQueue[len(s.vipQueue)-1].Amount.Mul(vipDailyRate)
}

// LastVIPManager returns the manager entitled to the current daily payout.
// ok is false when the queue is empty or the last VIP had no referrer.
func (s *Store) LastVIPManager() (managerID int64, payout decimal.Decimal, ok bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(s.vipQueue) == 0 {
		return 0, decimal.Zero, false
	}
	last := s.vipQueue[len(s.vipQueue)-1]
	if last.ManagerID == nil {
		return 0, decimal.Zero, false
	}
	return *last.ManagerID, s.lastVIPDailyPayout(), true
}

// VIPQueue returns the newest limit entries in queue order; limit <= 0
// returns the whole queue.
func (s *Store) VIPQueue(limit int) []models.VIPEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	start := 0
	if limit > 0 && limit < len(s.vipQueue) {
		start = len(s.vipQueue) - limit
	}
	out := make([]models.VIPEntry, 0, len(s.vipQueue)-start)
	for _, e := range s.vipQueue[start:] {
		out = append(out, e.Clone())
	}
	return out
}
