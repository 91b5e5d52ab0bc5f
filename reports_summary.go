package financeai

import "github.com/menezesjss/financeai/date"

// MonthlySummary provides the at-a-glance figures for one calendar month.
type MonthlySummary struct {
	Date        Date // any day of the summarized month
	Income      Money
	Expenses    Money
	Balance     Money
	SavingsRate Percent
}

// NewMonthlySummary derives the summary of on's calendar month from the raw
// transaction collection. The savings rate is 0 when there is no income;
// it never divides by zero.
func NewMonthlySummary(transactions []Transaction, on Date) MonthlySummary {
	s := MonthlySummary{Date: on}
	for _, tx := range transactions {
		if !date.SameMonth(tx.Date, on) {
			continue
		}
		switch tx.Type {
		case Income:
			s.Income = s.Income.Add(tx.Amount)
		case Expense:
			s.Expenses = s.Expenses.Add(tx.Amount)
		}
	}
	s.Balance = s.Income.Sub(s.Expenses)
	s.SavingsRate = s.Balance.PercentOf(s.Income)
	return s
}
