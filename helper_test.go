package financeai

// BRL is a helper for tests to create money from a const.
func BRL(v float64) Money { return M(v) }

// tx is a helper for tests to create a transaction in one line.
func tx(day string, typ TransactionType, amount float64, category string) Transaction {
	return Transaction{
		Date:        MustParseDate(day),
		Description: "test",
		Category:    category,
		Type:        typ,
		Amount:      BRL(amount),
	}
}

// MustParseDate is a test helper that panics on malformed dates.
func MustParseDate(day string) Date {
	d, err := ParseDate(day)
	if err != nil {
		panic(err.Error())
	}
	return d
}
