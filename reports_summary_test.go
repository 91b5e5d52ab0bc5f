package financeai

import "testing"

func TestNewMonthlySummary(t *testing.T) {
	transactions := []Transaction{
		tx("2025-01-05", Income, 1000, "Salário"),
		tx("2025-01-10", Expense, 200, "Lazer"),
		tx("2025-02-01", Income, 5000, "Salário"),  // other month
		tx("2024-01-15", Expense, 9999, "Compras"), // other year, same month
	}

	s := NewMonthlySummary(transactions, MustParseDate("2025-01-20"))

	if !s.Income.Equal(BRL(1000)) {
		t.Errorf("Income = %s, want %s", s.Income, BRL(1000))
	}
	if !s.Expenses.Equal(BRL(200)) {
		t.Errorf("Expenses = %s, want %s", s.Expenses, BRL(200))
	}
	if !s.Balance.Equal(BRL(800)) {
		t.Errorf("Balance = %s, want %s", s.Balance, BRL(800))
	}
	if !s.SavingsRate.Equal(80) {
		t.Errorf("SavingsRate = %s, want 80%%", s.SavingsRate)
	}
}

func TestNewMonthlySummary_ZeroIncome(t *testing.T) {
	transactions := []Transaction{
		tx("2025-01-10", Expense, 200, "Lazer"),
	}
	s := NewMonthlySummary(transactions, MustParseDate("2025-01-20"))

	if !s.SavingsRate.Equal(0) {
		t.Errorf("SavingsRate with no income = %s, want 0%%", s.SavingsRate)
	}
	if !s.Balance.Equal(BRL(-200)) {
		t.Errorf("Balance = %s, want %s", s.Balance, BRL(-200))
	}
}

func TestNewMonthlySummary_Empty(t *testing.T) {
	s := NewMonthlySummary(nil, MustParseDate("2025-01-20"))
	if !s.Income.IsZero() || !s.Expenses.IsZero() || !s.Balance.IsZero() || !s.SavingsRate.Equal(0) {
		t.Errorf("empty collection should derive all-zero summary, got %+v", s)
	}
}
