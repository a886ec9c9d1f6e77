package worker

import (
	"context"
	"time"

	"go.uber.org/zap"

	"investledger/internal/models"
)

type InvestmentSource interface {
	InvestmentsByStatus(status models.InvestmentStatus) []models.Investment
}

// MaturityChecker reports active investments whose end date has passed so an
// admin can settle them. It never changes an investment's status.
type MaturityChecker struct {
	src      InvestmentSource
	log      *zap.Logger
	interval time.Duration
	now      func() time.Time

	reported map[string]struct{}
}

func NewMaturityChecker(src InvestmentSource, log *zap.Logger, interval time.Duration) *MaturityChecker {
	return &MaturityChecker{
		src:      src,
		log:      log,
		interval: interval,
		now:      time.Now,
		reported: make(map[string]struct{}),
	}
}

// Start runs a check immediately and then on every tick until ctx is done.
func (c *MaturityChecker) Start(ctx context.Context) {
	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()
	c.log.Info("Maturity checker started", zap.Duration("interval", c.interval))

	c.Check()
	for {
		select {
		case <-ctx.Done():
			c.log.Info("Maturity checker stopped")
			return
		case <-ticker.C:
			c.Check()
		}
	}
}

// Check returns the investments that matured since the previous call. Each
// investment is reported once per process. Check is not safe for concurrent
// use: once Start is running, it is the only caller.
func (c *MaturityChecker) Check() []models.Investment {
	now := c.now()
	var due []models.Investment
	for _, inv := range c.src.InvestmentsByStatus(models.StatusActive) {
		if inv.EndDate.After(now) {
			continue
		}
		if _, seen := c.reported[inv.ID]; seen {
			continue
		}
		c.reported[inv.ID] = struct{}{}
		due = append(due, inv)
		c.log.Info("Investment matured, awaiting settlement",
			zap.String("investmentID", inv.ID),
			zap.Int64("userID", inv.UserID),
			zap.String("expectedReturn", inv.ExpectedReturn.String()),
			zap.Time("endDate", inv.EndDate),
		)
	}
	return due
}
