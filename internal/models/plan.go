package models

import "github.com/shopspring/decimal"

type Plan struct {
	ID     string
	Name   string
	Amount decimal.Decimal
	Return decimal.Decimal
	Days   int
}

// Profit is the promised return minus the principal.
func (p Plan) Profit() decimal.Decimal {
	return p.Return.Sub(p.Amount)
}

const VIPPlanID = "vip"

var planCatalog = []Plan{
	{ID: "1", Name: "STARTER", Amount: decimal.NewFromInt(20), Return: decimal.NewFromInt(80), Days: 10},
	{ID: "2", Name: "PREMIUM", Amount: decimal.NewFromInt(50), Return: decimal.NewFromInt(100), Days: 10},
	{ID: "3", Name: "GOLD", Amount: decimal.NewFromInt(100), Return: decimal.NewFromInt(200), Days: 10},
	{ID: VIPPlanID, Name: "VIP", Amount: decimal.NewFromInt(1000), Return: decimal.NewFromInt(5000), Days: 10},
}

func LookupPlan(id string) (Plan, bool) {
	for _, p := range planCatalog {
		if p.ID == id {
			return p, true
		}
	}
	return Plan{}, false
}

// Plans returns the catalog in display order.
func Plans() []Plan {
	return append([]Plan(nil), planCatalog...)
}
