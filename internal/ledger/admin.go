package ledger

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"investledger/internal/models"
)

// SetInvestmentStatus is the hook for the manual payment review. Activation
// adds the principal to the owner's invested total and completion adds the
// profit to their earned total. The cash balance is only moved by CreditBalance.
func (s *Store) SetInvestmentStatus(actorID int64, investmentID string, status models.InvestmentStatus) (models.Investment, error) {
	if !s.IsAdmin(actorID) {
		return models.Investment{}, ErrNotAdmin
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	inv, ok := s.investments[investmentID]
	if !ok {
		return models.Investment{}, fmt.Errorf("%w: %s", ErrUnknownInvestment, investmentID)
	}
	if !inv.Status.CanTransition(status) {
		return models.Investment{}, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, inv.Status, status)
	}

	prev := inv.Status
	inv.Status = status
	inv.UpdatedAt = s.now()
	owner, _ := s.ensureUser(inv.UserID)
	switch status {
	case models.StatusActive:
		owner.TotalInvested = owner.TotalInvested.Add(inv.AmountUSD)
	case models.StatusCompleted:
		owner.TotalEarned = owner.TotalEarned.Add(inv.Profit)
	}

	s.log.Info("Investment status changed",
		zap.String("investmentID", investmentID),
		zap.String("from", string(prev)),
		zap.String("to", string(status)),
		zap.Int64("adminID", actorID),
	)
	return *inv, nil
}

// CreditBalance adds amount to a user's cash balance and keeps an audit record.
func (s *Store) CreditBalance(actorID, userID int64, amount decimal.Decimal, note string) (models.Credit, error) {
	if !s.IsAdmin(actorID) {
		return models.Credit{}, ErrNotAdmin
	}
	if !amount.IsPositive() {
		return models.Credit{}, fmt.Errorf("%w: %s", ErrInvalidAmount, amount)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[userID]
	if !ok {
		return models.Credit{}, fmt.Errorf("%w: %d", ErrUnknownUser, userID)
	}
	u.Balance = u.Balance.Add(amount)

	c := models.Credit{
		ID:         uuid.New().String(),
		UserID:     userID,
		Amount:     amount,
		ApprovedBy: actorID,
		Note:       note,
		CreatedAt:  s.now(),
	}
	s.credits[userID] = append(s.credits[userID], c)

	s.log.Info("Balance credited",
		zap.Int64("userID", userID),
		zap.String("amount", amount.String()),
		zap.String("balance", u.Balance.String()),
		zap.Int64("adminID", actorID),
	)
	return c, nil
}

func (s *Store) Credits(userID int64) []models.Credit {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]models.Credit(nil), s.credits[userID]...)
}

func (s *Store) PromoteAgent(actorID, userID int64) (models.User, error) {
	return s.promote(actorID, userID, func(u *models.User) {
		u.IsAgent = true
		u.AgentCode = AgentCode(u.ID)
	})
}

func (s *Store) PromoteManager(actorID, userID int64) (models.User, error) {
	return s.promote(actorID, userID, func(u *models.User) {
		u.IsManager = true
		u.ManagerCode = ManagerCode(u.ID)
	})
}

func (s *Store) promote(actorID, userID int64, apply func(*models.User)) (models.User, error) {
	if !s.IsAdmin(actorID) {
		return models.User{}, ErrNotAdmin
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[userID]
	if !ok {
		return models.User{}, fmt.Errorf("%w: %d", ErrUnknownUser, userID)
	}
	apply(u)

	s.log.Info("User promoted",
		zap.Int64("userID", userID),
		zap.Bool("agent", u.IsAgent),
		zap.Bool("manager", u.IsManager),
		zap.Int64("adminID", actorID),
	)
	return u.Clone(), nil
}
