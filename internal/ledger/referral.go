package ledger

import (
	"fmt"

	"go.uber.org/zap"

	"investledger/internal/models"
)

// AttributeReferral credits the owner of code with the referral bonus and
// links newUserID to them. It returns false, without touching state, when the
// attribution is rejected for any reason.
//
// The bonus is paid at attribution time, not on the invitee's first
// investment.
func (s *Store) AttributeReferral(code string, newUserID int64) bool {
	err := s.TryAttributeReferral(code, newUserID)
	if err != nil {
		s.log.Debug("Referral ignored", zap.String("code", code), zap.Int64("userID", newUserID), zap.Error(err))
		return false
	}
	return true
}

// TryAttributeReferral is AttributeReferral with the rejection reason.
func (s *Store) TryAttributeReferral(code string, newUserID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	referrerID, ok := s.byCode[code]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownReferralCode, code)
	}
	if referrerID == newUserID {
		return ErrSelfReferral
	}
	invitee, ok := s.users[newUserID]
	if !ok {
		return fmt.Errorf("%w: %d", ErrUnknownUser, newUserID)
	}
	if invitee.ReferredBy != nil {
		return fmt.Errorf("%w: by %d", ErrAlreadyReferred, *invitee.ReferredBy)
	}
	// Anyone upstream of the referrer has at least one referral, so this also
	// rules out cycles.
	if len(invitee.Referrals) > 0 || len(invitee.Investments) > 0 {
		return fmt.Errorf("%w: %d", ErrNotNewUser, newUserID)
	}

	referrer := s.users[referrerID]
	referrer.Referrals = append(referrer.Referrals, newUserID)
	referrer.ReferralEarnings = referrer.ReferralEarnings.Add(s.referralBonus)
	invitee.ReferredBy = &referrerID

	s.referrals[referrerID] = append(s.referrals[referrerID], models.ReferralTransaction{
		ReferrerID:    referrerID,
		InvitedUserID: newUserID,
		Amount:        s.referralBonus,
		CreatedAt:     s.now(),
	})

	s.log.Info("Referral attributed",
		zap.Int64("referrerID", referrerID),
		zap.Int64("userID", newUserID),
		zap.String("bonus", s.referralBonus.String()),
	)
	return nil
}

func (s *Store) ReferralHistory(referrerID int64) []models.ReferralTransaction {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]models.ReferralTransaction(nil), s.referrals[referrerID]...)
}

