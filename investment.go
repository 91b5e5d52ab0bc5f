package financeai

import (
	"errors"
	"fmt"
	"time"
)

// InvestmentTypes is the fixed set of asset classes offered when recording
// an investment.
var InvestmentTypes = []string{
	"Renda Fixa (CDB/Tesouro)",
	"Ações",
	"Fundos Imobiliários",
	"Criptomoedas",
	"Previdência Privada",
	"Outros",
}

// Investment is a held asset with invested vs. current value. Profit is
// always derived, never stored.
type Investment struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Type           string    `json:"type"`
	InvestedAmount Money     `json:"investedAmount"`
	CurrentAmount  Money     `json:"currentAmount"`
	LastUpdated    time.Time `json:"lastUpdated"`
}

// Validate checks the investment for correctness before it enters the store.
// It stamps LastUpdated when the caller left it zero.
func (v Investment) Validate() (Investment, error) {
	if v.Name == "" {
		return v, errors.New("investment name is missing")
	}
	if v.Type == "" {
		v.Type = InvestmentTypes[0]
	}
	if v.InvestedAmount.IsNegative() {
		return v, fmt.Errorf("invested amount must not be negative, got %s", v.InvestedAmount)
	}
	if v.CurrentAmount.IsNegative() {
		return v, fmt.Errorf("current amount must not be negative, got %s", v.CurrentAmount)
	}
	if v.LastUpdated.IsZero() {
		v.LastUpdated = time.Now()
	}
	return v, nil
}

// Profit returns the gain (or loss, negative) since the investment was made.
func (v Investment) Profit() Money { return v.CurrentAmount.Sub(v.InvestedAmount) }

// ProfitPercent returns the relative return, 0 when nothing was invested.
func (v Investment) ProfitPercent() Percent {
	return v.Profit().PercentOf(v.InvestedAmount)
}

// PortfolioSummary aggregates all investments of the portfolio.
type PortfolioSummary struct {
	Invested      Money
	Current       Money
	Profit        Money
	ProfitPercent Percent
}

// NewPortfolioSummary derives the portfolio totals from the raw collection.
func NewPortfolioSummary(investments []Investment) PortfolioSummary {
	var s PortfolioSummary
	for _, inv := range investments {
		s.Invested = s.Invested.Add(inv.InvestedAmount)
		s.Current = s.Current.Add(inv.CurrentAmount)
	}
	s.Profit = s.Current.Sub(s.Invested)
	s.ProfitPercent = s.Profit.PercentOf(s.Invested)
	return s
}
