package financeai

import (
	"time"

	"github.com/menezesjss/financeai/date"
)

// MonthlyFlow is the income/expense total of one calendar month.
type MonthlyFlow struct {
	Year     int
	Month    time.Month
	Income   Money
	Expenses Money
}

// SixMonthTrend returns exactly six entries, oldest first, covering on's
// month and the five before it. Year boundaries roll over: queried in
// February the trend spans the prior September through February.
func SixMonthTrend(transactions []Transaction, on Date) []MonthlyFlow {
	trend := make([]MonthlyFlow, 0, 6)
	for i := 5; i >= 0; i-- {
		m := on.StartOfMonth().AddMonths(-i)
		flow := MonthlyFlow{Year: m.Year(), Month: m.Month()}
		for _, tx := range transactions {
			if !date.SameMonth(tx.Date, m) {
				continue
			}
			switch tx.Type {
			case Income:
				flow.Income = flow.Income.Add(tx.Amount)
			case Expense:
				flow.Expenses = flow.Expenses.Add(tx.Amount)
			}
		}
		trend = append(trend, flow)
	}
	return trend
}
