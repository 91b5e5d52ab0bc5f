package renderer

import (
	"bytes"

	financeai "github.com/menezesjss/financeai"
	md "github.com/nao1215/markdown"
)

// Transactions renders the transaction list, in collection order (newest first).
func Transactions(transactions []financeai.Transaction) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Transações")
	if len(transactions) == 0 {
		doc.PlainText("Nenhuma transação registrada.")
		doc.Build()
		return buf.String()
	}

	rows := make([][]string, 0, len(transactions))
	for _, tx := range transactions {
		amount := tx.Amount.String()
		if tx.Type == financeai.Expense {
			amount = "-" + amount
		}
		rows = append(rows, []string{
			tx.Date.String(),
			tx.Description,
			tx.Category,
			tx.Type.Label(),
			amount,
			tx.ID,
		})
	}
	doc.Table(md.TableSet{
		Header: []string{"Data", "Descrição", "Categoria", "Tipo", "Valor", "ID"},
		Rows:   rows,
	})

	doc.Build()
	return buf.String()
}
