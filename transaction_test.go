package financeai

import "testing"

func TestTransactionValidate(t *testing.T) {
	tests := []struct {
		name string
		tx   Transaction
		err  bool
	}{
		{"valid", Transaction{Description: "mercado", Type: Expense, Amount: BRL(50)}, false},
		{"missing description", Transaction{Type: Expense, Amount: BRL(50)}, true},
		{"bad type", Transaction{Description: "x", Type: "transfer", Amount: BRL(50)}, true},
		{"negative amount", Transaction{Description: "x", Type: Income, Amount: BRL(-1)}, true},
		{"zero amount is allowed", Transaction{Description: "x", Type: Income, Amount: BRL(0)}, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.tx.Validate()
			if tc.err {
				if err == nil {
					t.Error("expected a validation error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected validation error: %v", err)
			}
			if got.Date.IsZero() {
				t.Error("zero date should default to today")
			}
			if got.Category == "" {
				t.Error("empty category should default")
			}
		})
	}
}

func TestParseTransactionType(t *testing.T) {
	if _, err := ParseTransactionType("income"); err != nil {
		t.Errorf("income: %v", err)
	}
	if _, err := ParseTransactionType("expense"); err != nil {
		t.Errorf("expense: %v", err)
	}
	if _, err := ParseTransactionType("transfer"); err == nil {
		t.Error("transfer should not parse")
	}
}

func TestTransactionTypeLabel(t *testing.T) {
	if Income.Label() != "Receita" || Expense.Label() != "Despesa" {
		t.Errorf("labels = %q/%q", Income.Label(), Expense.Label())
	}
}
