package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type ReferralTransaction struct {
	ReferrerID    int64
	InvitedUserID int64
	Amount        decimal.Decimal
	CreatedAt     time.Time
}
