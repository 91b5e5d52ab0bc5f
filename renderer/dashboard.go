package renderer

import (
	"bytes"
	"fmt"

	financeai "github.com/menezesjss/financeai"
	md "github.com/nao1215/markdown"
)

// Dashboard renders the monthly overview: KPIs, daily performance, the
// six-month trend and the expense category breakdown.
func Dashboard(summary financeai.MonthlySummary, daily []financeai.DailyPoint, trend []financeai.MonthlyFlow, categories []financeai.CategoryTotal) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Visão Geral Financeira")
	doc.PlainTextf("%s %d", MonthName(summary.Date.Month()), summary.Date.Year())

	doc.Table(md.TableSet{
		Header: []string{"Saldo Atual", "Receita no Mês", "Despesas no Mês", "Taxa de Economia"},
		Rows: [][]string{{
			summary.Balance.String(),
			summary.Income.String(),
			summary.Expenses.String(),
			summary.SavingsRate.String(),
		}},
	})

	doc.H2("Desempenho Diário")
	dailyRows := make([][]string, 0, len(daily))
	for _, p := range daily {
		if p.Value.IsZero() {
			continue // days without activity would drown the table
		}
		dailyRows = append(dailyRows, []string{fmt.Sprintf("%02d", p.Day), p.Value.SignedString()})
	}
	if len(dailyRows) == 0 {
		doc.PlainText("Sem movimentações neste mês.")
	} else {
		doc.Table(md.TableSet{
			Header: []string{"Dia", "Valor"},
			Rows:   dailyRows,
		})
	}

	doc.H2("Crescimento (Últimos 6 Meses)")
	trendRows := make([][]string, 0, len(trend))
	for _, flow := range trend {
		trendRows = append(trendRows, []string{
			fmt.Sprintf("%s %d", MonthName(flow.Month), flow.Year),
			flow.Income.String(),
			flow.Expenses.String(),
		})
	}
	doc.Table(md.TableSet{
		Header: []string{"Mês", "Receita", "Despesa"},
		Rows:   trendRows,
	})

	doc.H2("Gastos por Categoria")
	if len(categories) == 0 {
		doc.PlainText("Nenhuma despesa registrada.")
	} else {
		catRows := make([][]string, 0, len(categories))
		for _, c := range categories {
			catRows = append(catRows, []string{c.Category, c.Amount.String()})
		}
		doc.Table(md.TableSet{
			Header: []string{"Categoria", "Total"},
			Rows:   catRows,
		})
	}

	doc.Build()
	return buf.String()
}
