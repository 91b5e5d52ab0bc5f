package renderer

import (
	"bytes"

	financeai "github.com/menezesjss/financeai"
	md "github.com/nao1215/markdown"
)

// Investments renders the asset list and the portfolio totals.
func Investments(investments []financeai.Investment) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Investimentos & Patrimônio")
	if len(investments) == 0 {
		doc.PlainText("Nenhum ativo registrado.")
		doc.Build()
		return buf.String()
	}

	totals := financeai.NewPortfolioSummary(investments)
	doc.Table(md.TableSet{
		Header: []string{"Total Investido", "Valor Atual", "Rentabilidade", "Retorno"},
		Rows: [][]string{{
			totals.Invested.String(),
			totals.Current.String(),
			totals.Profit.SignedString(),
			totals.ProfitPercent.SignedString(),
		}},
	})

	rows := make([][]string, 0, len(investments))
	for _, v := range investments {
		rows = append(rows, []string{
			v.Name,
			v.Type,
			v.InvestedAmount.String(),
			v.CurrentAmount.String(),
			v.Profit().SignedString(),
			v.ProfitPercent().SignedString(),
			v.LastUpdated.Format("2006-01-02"),
			v.ID,
		})
	}
	doc.H2("Ativos")
	doc.Table(md.TableSet{
		Header: []string{"Ativo", "Tipo", "Investido", "Atual", "Rentabilidade", "Retorno", "Atualizado", "ID"},
		Rows:   rows,
	})

	doc.Build()
	return buf.String()
}
