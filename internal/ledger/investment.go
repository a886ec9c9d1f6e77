package ledger

import (
	"fmt"
	"sort"
	"time"

	"go.uber.org/zap"

	"investledger/internal/models"
)

// CreateInvestment records a commitment to planID with status
// awaiting_payment. Balances are left alone; money only moves when an admin
// approves the payment.
func (s *Store) CreateInvestment(userID int64, planID string) (models.Investment, error) {
	plan, ok := models.LookupPlan(planID)
	if !ok {
		return models.Investment{}, fmt.Errorf("%w: %q", ErrUnknownPlan, planID)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	u, _ := s.ensureUser(userID)
	start := s.now()
	inv := &models.Investment{
		ID:             s.nextInvestmentID(userID, start),
		UserID:         userID,
		PlanID:         plan.ID,
		PlanName:       plan.Name,
		AmountUSD:      plan.Amount,
		AmountLocal:    plan.Amount.Mul(s.exchangeRate),
		ExpectedReturn: plan.Return,
		Profit:         plan.Profit(),
		Status:         models.StatusAwaitingPayment,
		StartDate:      start,
		EndDate:        start.AddDate(0, 0, plan.Days),
		UpdatedAt:      start,
	}
	s.investments[inv.ID] = inv
	u.Investments = append(u.Investments, inv.ID)

	s.log.Info("Investment created",
		zap.String("investmentID", inv.ID),
		zap.Int64("userID", userID),
		zap.String("plan", plan.Name),
	)
	return *inv, nil
}

// nextInvestmentID must be called with s.mu held for writing.
func (s *Store) nextInvestmentID(userID int64, at time.Time) string {
	base := fmt.Sprintf("INV%d%d", userID, at.Unix())
	id := base
	for n := 2; ; n++ {
		if _, taken := s.investments[id]; !taken {
			return id
		}
		id = fmt.Sprintf("%s-%d", base, n)
	}
}

func (s *Store) Investment(id string) (models.Investment, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	inv, ok := s.investments[id]
	if !ok {
		return models.Investment{}, false
	}
	return *inv, true
}

// UserInvestments lists a user's investments in creation order.
func (s *Store) UserInvestments(userID int64) []models.Investment {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[userID]
	if !ok {
		return nil
	}
	out := make([]models.Investment, 0, len(u.Investments))
	for _, id := range u.Investments {
		if inv, ok := s.investments[id]; ok {
			out = append(out, *inv)
		}
	}
	return out
}

// InvestmentsByStatus returns every investment currently in status, oldest first.
func (s *Store) InvestmentsByStatus(status models.InvestmentStatus) []models.Investment {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.Investment
	for _, inv := range s.investments {
		if inv.Status == status {
			out = append(out, *inv)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].StartDate.Equal(out[j].StartDate) {
			return out[i].ID < out[j].ID
		}
		return out[i].StartDate.Before(out[j].StartDate)
	})
	return out
}
