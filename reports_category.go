package financeai

import "sort"

// CategoryTotal is the summed expense amount of one category.
type CategoryTotal struct {
	Category string
	Amount   Money
}

// CategoryBreakdown sums expense transactions by category, descending by
// amount. Income transactions are excluded entirely. Categories with equal
// totals keep their encounter order in the collection.
func CategoryBreakdown(transactions []Transaction) []CategoryTotal {
	index := make(map[string]int)
	var totals []CategoryTotal
	for _, tx := range transactions {
		if tx.Type != Expense {
			continue
		}
		i, ok := index[tx.Category]
		if !ok {
			i = len(totals)
			index[tx.Category] = i
			totals = append(totals, CategoryTotal{Category: tx.Category})
		}
		totals[i].Amount = totals[i].Amount.Add(tx.Amount)
	}
	sort.SliceStable(totals, func(i, j int) bool {
		return totals[j].Amount.LessThan(totals[i].Amount)
	})
	return totals
}
