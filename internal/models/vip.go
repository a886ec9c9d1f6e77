package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type VIPEntry struct {
	Position   int
	UserID     int64
	Amount     decimal.Decimal
	ManagerID  *int64
	EnqueuedAt time.Time
}

func (e VIPEntry) Clone() VIPEntry {
	c := e
	if e.ManagerID != nil {
		m := *e.ManagerID
		c.ManagerID = &m
	}
	return c
}

// Summary is the aggregate view shown on the admin panel.
type Summary struct {
	Users         int
	Investments   int
	VIPs          int
	Agents        int
	Managers      int
	TotalInvested decimal.Decimal
	TotalEarned   decimal.Decimal
	LastVIPDaily  decimal.Decimal
}
