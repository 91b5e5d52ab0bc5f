package financeai

import (
	"fmt"

	"github.com/menezesjss/financeai/date"
)

// TypeFilter selects which transactions contribute to a daily series.
type TypeFilter int

const (
	FilterAll TypeFilter = iota
	FilterIncome
	FilterExpense
)

func (f TypeFilter) String() string {
	switch f {
	case FilterAll:
		return "all"
	case FilterIncome:
		return "income"
	case FilterExpense:
		return "expense"
	default:
		return "unknown"
	}
}

// ParseTypeFilter parses a string into a TypeFilter.
func ParseTypeFilter(s string) (TypeFilter, error) {
	switch s {
	case "all", "":
		return FilterAll, nil
	case "income":
		return FilterIncome, nil
	case "expense":
		return FilterExpense, nil
	default:
		return FilterAll, fmt.Errorf("unknown filter: %q", s)
	}
}

// DailyPoint is the aggregated value for one day of the month.
type DailyPoint struct {
	Day   int
	Value Money
}

// DailySeries produces one point per day of on's calendar month, month
// length and leap years included. With FilterAll the value is the signed
// net (income − expense) of the day; otherwise the sum of the matching
// type. Days without transactions yield a zero point.
func DailySeries(transactions []Transaction, on Date, filter TypeFilter) []DailyPoint {
	days := date.DaysIn(on.Year(), on.Month())
	series := make([]DailyPoint, days)
	for i := range series {
		series[i].Day = i + 1
	}
	for _, tx := range transactions {
		if !date.SameMonth(tx.Date, on) {
			continue
		}
		p := &series[tx.Date.Day()-1]
		switch filter {
		case FilterAll:
			if tx.Type == Income {
				p.Value = p.Value.Add(tx.Amount)
			} else {
				p.Value = p.Value.Sub(tx.Amount)
			}
		case FilterIncome:
			if tx.Type == Income {
				p.Value = p.Value.Add(tx.Amount)
			}
		case FilterExpense:
			if tx.Type == Expense {
				p.Value = p.Value.Add(tx.Amount)
			}
		}
	}
	return series
}
