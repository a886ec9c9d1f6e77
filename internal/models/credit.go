package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Credit records a balance top-up applied by an admin after manual review.
type Credit struct {
	ID         string
	UserID     int64
	Amount     decimal.Decimal
	ApprovedBy int64
	Note       string
	CreatedAt  time.Time
}
