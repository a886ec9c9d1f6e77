package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type User struct {
	ID               int64
	Name             string
	Username         string
	Phone            string
	Balance          decimal.Decimal
	TotalInvested    decimal.Decimal
	TotalEarned      decimal.Decimal
	ReferralCode     string
	Referrals        []int64
	ReferralEarnings decimal.Decimal
	IsAgent          bool
	IsManager        bool
	AgentCode        string
	ManagerCode      string
	ReferredBy       *int64 // agent who brought this user in
	VIPLevel         int
	Investments      []string
	CreatedAt        time.Time
	LastActive       time.Time
}

// Profile carries the identity fields sent with every inbound command.
type Profile struct {
	Name     string
	Username string
	Phone    string
}

// Clone returns a copy that shares no slices or pointers with u.
func (u User) Clone() User {
	c := u
	c.Referrals = append([]int64(nil), u.Referrals...)
	c.Investments = append([]string(nil), u.Investments...)
	if u.ReferredBy != nil {
		ref := *u.ReferredBy
		c.ReferredBy = &ref
	}
	return c
}
