package financeai

import "testing"

func TestInvestmentProfit(t *testing.T) {
	tests := []struct {
		name        string
		invested    float64
		current     float64
		wantProfit  float64
		wantPercent Percent
	}{
		{"gain", 1000, 1200, 200, 20},
		{"loss", 1000, 800, -200, -20},
		{"flat", 1000, 1000, 0, 0},
		{"nothing invested", 0, 150, 150, 0}, // percent must be 0, not NaN
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			v := Investment{Name: "test", InvestedAmount: BRL(tc.invested), CurrentAmount: BRL(tc.current)}
			if got := v.Profit(); !got.Equal(BRL(tc.wantProfit)) {
				t.Errorf("Profit() = %s, want %s", got, BRL(tc.wantProfit))
			}
			if got := v.ProfitPercent(); !got.Equal(tc.wantPercent) {
				t.Errorf("ProfitPercent() = %s, want %s", got, tc.wantPercent)
			}
		})
	}
}

func TestNewPortfolioSummary(t *testing.T) {
	investments := []Investment{
		{Name: "CDB", InvestedAmount: BRL(1000), CurrentAmount: BRL(1100)},
		{Name: "Ações", InvestedAmount: BRL(500), CurrentAmount: BRL(400)},
	}
	s := NewPortfolioSummary(investments)
	if !s.Invested.Equal(BRL(1500)) {
		t.Errorf("Invested = %s, want %s", s.Invested, BRL(1500))
	}
	if !s.Current.Equal(BRL(1500)) {
		t.Errorf("Current = %s, want %s", s.Current, BRL(1500))
	}
	if !s.Profit.IsZero() {
		t.Errorf("Profit = %s, want zero", s.Profit)
	}
	if !s.ProfitPercent.Equal(0) {
		t.Errorf("ProfitPercent = %s, want 0%%", s.ProfitPercent)
	}
}

func TestNewPortfolioSummary_Empty(t *testing.T) {
	s := NewPortfolioSummary(nil)
	if !s.ProfitPercent.Equal(0) {
		t.Errorf("empty portfolio percent = %s, want 0%%", s.ProfitPercent)
	}
}

func TestInvestmentValidate(t *testing.T) {
	v, err := Investment{Name: "CDB", InvestedAmount: BRL(100), CurrentAmount: BRL(100)}.Validate()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.Type != InvestmentTypes[0] {
		t.Errorf("empty type should default to %q, got %q", InvestmentTypes[0], v.Type)
	}
	if v.LastUpdated.IsZero() {
		t.Error("LastUpdated should be stamped")
	}

	if _, err := (Investment{InvestedAmount: BRL(100)}).Validate(); err == nil {
		t.Error("expected error for missing name")
	}
	if _, err := (Investment{Name: "x", InvestedAmount: BRL(-1)}).Validate(); err == nil {
		t.Error("expected error for negative invested amount")
	}
}
