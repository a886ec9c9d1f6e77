package ledger

import "errors"

var (
	ErrUnknownPlan       = errors.New("unknown plan")
	ErrUnknownUser       = errors.New("unknown user")
	ErrUnknownInvestment = errors.New("unknown investment")

	// Referral attribution failures. AttributeReferral swallows these and
	// returns false so onboarding is never interrupted by a bad code.
	ErrUnknownReferralCode = errors.New("unknown referral code")
	ErrSelfReferral        = errors.New("self referral")
	ErrAlreadyReferred     = errors.New("user already referred")
	ErrNotNewUser          = errors.New("user already active")

	ErrNotAdmin          = errors.New("admin access required")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrInvalidAmount     = errors.New("amount must be positive")
)
