package financeai

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/PaesslerAG/jsonpath"
	"github.com/menezesjss/financeai/date"
)

// this file contains functions to import transactions from bank exports.
// Banks disagree on everything, so the mapping is a set of jsonpath
// expressions provided by the user.

// StatementMapping configures how a JSON bank export maps onto transactions.
//
// Records locates the list of raw records in the document; the remaining
// expressions are evaluated against each record. Type is optional: when it
// is empty, the sign of the amount decides (negative means expense) and the
// stored amount is the absolute value.
type StatementMapping struct {
	Records     string `json:"records"`
	Date        string `json:"date"`
	Description string `json:"description"`
	Category    string `json:"category,omitempty"`
	Type        string `json:"type,omitempty"`
	Amount      string `json:"amount"`
}

// LoadMapping reads a StatementMapping from its JSON form.
func LoadMapping(r io.Reader) (StatementMapping, error) {
	var m StatementMapping
	if err := json.NewDecoder(r).Decode(&m); err != nil {
		return m, fmt.Errorf("cannot parse statement mapping: %w", err)
	}
	if m.Records == "" || m.Date == "" || m.Description == "" || m.Amount == "" {
		return m, fmt.Errorf("statement mapping needs records, date, description and amount expressions")
	}
	return m, nil
}

// ImportStatement reads a JSON bank export from r and maps every record to
// a validated transaction, in document order. Ids are not assigned here;
// the store does that when the batch is added.
func ImportStatement(r io.Reader, mapping StatementMapping) ([]Transaction, error) {
	var jobj any
	if err := json.NewDecoder(r).Decode(&jobj); err != nil {
		return nil, fmt.Errorf("cannot parse statement: %w", err)
	}

	jval, err := jsonpath.Get(mapping.Records, jobj)
	if err != nil {
		return nil, fmt.Errorf("error evaluating records path %q: %w", mapping.Records, err)
	}
	records, ok := jval.([]any)
	if !ok {
		// a path matching a single object yields that object, not a list of 1.
		records = []any{jval}
	}

	var txs []Transaction
	for i, record := range records {
		tx, err := mapRecord(record, mapping)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		tx, err = tx.Validate()
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		txs = append(txs, tx)
	}
	return txs, nil
}

func mapRecord(record any, mapping StatementMapping) (Transaction, error) {
	var tx Transaction

	day, err := pathString(record, mapping.Date)
	if err != nil {
		return tx, err
	}
	// tolerate full timestamps by keeping the date part only.
	if len(day) > len(date.DateFormat) {
		day = day[:len(date.DateFormat)]
	}
	tx.Date, err = date.Parse(day)
	if err != nil {
		return tx, err
	}

	tx.Description, err = pathString(record, mapping.Description)
	if err != nil {
		return tx, err
	}

	if mapping.Category != "" {
		tx.Category, err = pathString(record, mapping.Category)
		if err != nil {
			return tx, err
		}
	}

	amount, err := pathFloat(record, mapping.Amount)
	if err != nil {
		return tx, err
	}

	if mapping.Type != "" {
		label, err := pathString(record, mapping.Type)
		if err != nil {
			return tx, err
		}
		tx.Type, err = parseTypeLabel(label)
		if err != nil {
			return tx, err
		}
		if amount < 0 {
			amount = -amount
		}
	} else {
		tx.Type = Income
		if amount < 0 {
			tx.Type = Expense
			amount = -amount
		}
	}
	tx.Amount = M(amount)
	return tx, nil
}

// parseTypeLabel accepts the labels banks commonly use for the direction.
func parseTypeLabel(label string) (TransactionType, error) {
	switch strings.ToLower(strings.TrimSpace(label)) {
	case "income", "receita", "credit", "credito", "crédito":
		return Income, nil
	case "expense", "despesa", "debit", "debito", "débito":
		return Expense, nil
	default:
		return "", fmt.Errorf("unknown transaction type label: %q", label)
	}
}

func pathString(record any, path string) (string, error) {
	jval, err := get(record, path)
	if err != nil {
		return "", err
	}
	s, ok := jval.(string)
	if !ok {
		return "", fmt.Errorf("path %q: not a string: %v", path, jval)
	}
	return s, nil
}

func pathFloat(record any, path string) (float64, error) {
	jval, err := get(record, path)
	if err != nil {
		return 0, err
	}
	f, ok := jval.(float64)
	if !ok {
		return 0, fmt.Errorf("path %q: not a number: %v", path, jval)
	}
	return f, nil
}

func get(record any, path string) (any, error) {
	jval, err := jsonpath.Get(path, record)
	if err != nil {
		return nil, fmt.Errorf("error evaluating %q: %w", path, err)
	}
	// because jsonpath is never clear about whether it returns a list of 1
	// answer, or a single answer: keep the first one if any.
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}
	return jval, nil
}
