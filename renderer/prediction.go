package renderer

import (
	"bytes"

	financeai "github.com/menezesjss/financeai"
	"github.com/menezesjss/financeai/predict"
	md "github.com/nao1215/markdown"
)

// Prediction renders a forecast result.
func Prediction(p predict.PredictionData) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Previsão Financeira")
	doc.Table(md.TableSet{
		Header: []string{"3 Meses", "6 Meses", "12 Meses"},
		Rows: [][]string{{
			financeai.M(p.Forecast3Months).String(),
			financeai.M(p.Forecast6Months).String(),
			financeai.M(p.Forecast12Months).String(),
		}},
	})

	doc.H2("Insight")
	doc.PlainText(p.Insight)

	if len(p.Risks) > 0 {
		doc.H2("Riscos Identificados")
		doc.BulletList(p.Risks...)
	}

	doc.Build()
	return buf.String()
}

// Simulation renders a what-if result.
func Simulation(r predict.SimulationResult) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Simulação de Cenário")
	doc.PlainText(r.Scenario)
	doc.H2("Impacto Estimado em 6 Meses")
	doc.PlainText(financeai.M(r.NewForecast).SignedString())
	doc.H2("Por quê")
	doc.PlainText(r.ImpactDescription)

	doc.Build()
	return buf.String()
}
