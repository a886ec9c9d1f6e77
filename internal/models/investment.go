package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type InvestmentStatus string

const (
	StatusAwaitingPayment InvestmentStatus = "awaiting_payment"
	StatusActive          InvestmentStatus = "active"
	StatusCompleted       InvestmentStatus = "completed"
	StatusRejected        InvestmentStatus = "rejected"
)

var statusTransitions = map[InvestmentStatus][]InvestmentStatus{
	StatusAwaitingPayment: {StatusActive, StatusRejected},
	StatusActive:          {StatusCompleted},
}

// CanTransition reports whether an admin may move an investment from s to next.
func (s InvestmentStatus) CanTransition(next InvestmentStatus) bool {
	for _, allowed := range statusTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Investment amounts are copied from the plan at creation and never re-read.
type Investment struct {
	ID             string
	UserID         int64
	PlanID         string
	PlanName       string
	AmountUSD      decimal.Decimal
	AmountLocal    decimal.Decimal
	ExpectedReturn decimal.Decimal
	Profit         decimal.Decimal
	Status         InvestmentStatus
	StartDate      time.Time
	EndDate        time.Time // informational, nothing expires automatically
	UpdatedAt      time.Time
}
