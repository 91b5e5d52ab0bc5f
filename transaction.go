package financeai

import (
	"errors"
	"fmt"
	"slices"
)

// TransactionType discriminates the direction of a transaction. The amount
// itself is always stored non-negative.
type TransactionType string

const (
	Income  TransactionType = "income"
	Expense TransactionType = "expense"
)

// ParseTransactionType parses a string into a TransactionType.
func ParseTransactionType(s string) (TransactionType, error) {
	switch TransactionType(s) {
	case Income:
		return Income, nil
	case Expense:
		return Expense, nil
	default:
		return "", fmt.Errorf("unknown transaction type: %q", s)
	}
}

// Label returns the user-facing name of the type.
func (t TransactionType) Label() string {
	if t == Income {
		return "Receita"
	}
	return "Despesa"
}

// Categories is the fixed set offered when recording a transaction.
// Imported statements may carry free-text categories beyond this list.
var Categories = []string{
	"Alimentação",
	"Aluguel/Moradia",
	"Salário",
	"Contas Fixas",
	"Lazer",
	"Transporte",
	"Saúde",
	"Educação",
	"Compras",
	"Investimentos",
	"Outros",
}

// DefaultCategory is used when no category is given.
const DefaultCategory = "Outros"

// Transaction is a single recorded income or expense event.
//
// The ID is opaque, unique within the collection, and immutable for the
// record's lifetime.
type Transaction struct {
	ID          string          `json:"id"`
	Date        Date            `json:"date"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Type        TransactionType `json:"type"`
	Amount      Money           `json:"amount"`
}

// Validate checks the transaction for correctness before it enters the
// store. It fills a zero date with today and an empty category with the
// default one, and returns the validated (potentially modified) record.
func (t Transaction) Validate() (Transaction, error) {
	if t.Date.IsZero() {
		t.Date = Today()
	}
	if t.Category == "" {
		t.Category = DefaultCategory
	}
	if t.Description == "" {
		return t, errors.New("transaction description is missing")
	}
	if t.Type != Income && t.Type != Expense {
		return t, fmt.Errorf("unknown transaction type: %q", t.Type)
	}
	if t.Amount.IsNegative() {
		return t, fmt.Errorf("transaction amount must not be negative, got %s", t.Amount)
	}
	return t, nil
}

// Equal reports whether both transactions carry the same values.
func (t Transaction) Equal(o Transaction) bool {
	return t.ID == o.ID &&
		t.Date == o.Date &&
		t.Description == o.Description &&
		t.Category == o.Category &&
		t.Type == o.Type &&
		t.Amount.Equal(o.Amount)
}

// KnownCategory reports whether the category belongs to the fixed set.
func KnownCategory(category string) bool {
	return slices.Contains(Categories, category)
}
