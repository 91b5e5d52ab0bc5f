// Package predict is a thin adapter around the Gemini API for financial
// forecasts and what-if simulations. It consumes the raw transaction
// collection and returns strictly-typed results; it never persists anything.
package predict

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	financeai "github.com/menezesjss/financeai"
	"google.golang.org/genai"
)

const model = "gemini-2.5-flash"

// Transaction windows sent to the model. The collection is newest first,
// so the window is the head of the slice.
const (
	forecastWindow   = 50
	simulationWindow = 30
)

// PredictionData is the schema-validated forecast response.
type PredictionData struct {
	Forecast3Months  float64  `json:"forecast3Months"`
	Forecast6Months  float64  `json:"forecast6Months"`
	Forecast12Months float64  `json:"forecast12Months"`
	Insight          string   `json:"insight"`
	Risks            []string `json:"risks"`
}

// SimulationResult is the schema-validated what-if response.
type SimulationResult struct {
	Scenario          string  `json:"scenario"`
	NewForecast       float64 `json:"newForecast"`
	ImpactDescription string  `json:"impactDescription"`
}

// Client wraps the Gemini client.
type Client struct {
	genai *genai.Client
}

// NewClient creates a new prediction client. The service credential is read
// from the ambient GEMINI_API_KEY environment variable by the SDK.
func NewClient(ctx context.Context) (*Client, error) {
	c, err := genai.NewClient(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("could not initialize Gemini client: %w", err)
	}
	return &Client{genai: c}, nil
}

// fallbackPrediction is returned whenever the forecast call or its response
// cannot be completed; the caller keeps working with degraded data.
func fallbackPrediction() PredictionData {
	return PredictionData{
		Insight: "Não foi possível gerar insights no momento.",
		Risks:   []string{"Erro na API"},
	}
}

var forecastSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"forecast3Months":  {Type: genai.TypeNumber},
		"forecast6Months":  {Type: genai.TypeNumber},
		"forecast12Months": {Type: genai.TypeNumber},
		"insight":          {Type: genai.TypeString},
		"risks":            {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
	},
	Required: []string{"forecast3Months", "forecast6Months", "forecast12Months", "insight", "risks"},
}

var simulationSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"scenario":          {Type: genai.TypeString},
		"newForecast":       {Type: genai.TypeNumber},
		"impactDescription": {Type: genai.TypeString},
	},
	Required: []string{"scenario", "newForecast", "impactDescription"},
}

// Forecast asks the model for 3/6/12 month balance forecasts from the most
// recent transactions. On any transport or parse failure it degrades to the
// fallback record instead of propagating the error.
func (c *Client) Forecast(ctx context.Context, transactions []financeai.Transaction) PredictionData {
	summary := forecastSummary(recentWindow(transactions, forecastWindow))
	payload, err := json.Marshal(summary)
	if err != nil {
		log.Printf("warning: could not encode forecast payload: %v", err)
		return fallbackPrediction()
	}

	prompt := fmt.Sprintf(`Com base nas últimas transações financeiras, preveja o futuro financeiro do usuário.
Responda em Português do Brasil.
Retorne um objeto JSON com:
- forecast3Months: Saldo estimado em 3 meses.
- forecast6Months: Saldo estimado em 6 meses.
- forecast12Months: Saldo estimado em 12 meses.
- insight: Um conselho financeiro profissional curto e direto.
- risks: Uma lista de riscos financeiros identificados (ex: gastos altos em lazer).

Dados das Transações: %s`, payload)

	resp, err := c.genai.Models.GenerateContent(ctx, model, genai.Text(prompt), &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   forecastSchema,
	})
	if err != nil {
		log.Printf("warning: forecast request failed: %v", err)
		return fallbackPrediction()
	}

	var data PredictionData
	if err := json.Unmarshal([]byte(resp.Text()), &data); err != nil {
		log.Printf("warning: forecast response is not valid JSON: %v", err)
		return fallbackPrediction()
	}
	return data
}

// Simulate asks the model for the impact of a hypothetical scenario on the
// user's balance. Unlike Forecast, failures propagate to the caller so the
// UI can surface them.
func (c *Client) Simulate(ctx context.Context, transactions []financeai.Transaction, scenario string) (SimulationResult, error) {
	var result SimulationResult

	summary := simulationSummary(recentWindow(transactions, simulationWindow))
	payload, err := json.Marshal(summary)
	if err != nil {
		return result, fmt.Errorf("could not encode simulation payload: %w", err)
	}

	prompt := fmt.Sprintf(`Analise este cenário financeiro: %q
Dado o padrão de gastos atual: %s
Calcule o resultado potencial em Português do Brasil.
Retorne um objeto JSON com:
- scenario: O cenário reescrito de forma clara.
- newForecast: O impacto líquido estimado no saldo após 6 meses.
- impactDescription: Explicação detalhada do porquê disso acontecer.`, scenario, payload)

	resp, err := c.genai.Models.GenerateContent(ctx, model, genai.Text(prompt), &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   simulationSchema,
	})
	if err != nil {
		return result, fmt.Errorf("simulation request failed: %w", err)
	}
	if err := json.Unmarshal([]byte(resp.Text()), &result); err != nil {
		return result, fmt.Errorf("simulation response is not valid JSON: %w", err)
	}
	return result, nil
}

// recentWindow returns the n most recent transactions. The collection is
// ordered newest first, so that is the head of the slice.
func recentWindow(transactions []financeai.Transaction, n int) []financeai.Transaction {
	if len(transactions) <= n {
		return transactions
	}
	return transactions[:n]
}

// txSummary is the per-transaction record sent to the model, in the
// pt-BR field names the prompt refers to.
type txSummary struct {
	Data      string  `json:"data,omitempty"`
	Tipo      string  `json:"tipo"`
	Valor     float64 `json:"valor"`
	Categoria string  `json:"categoria"`
}

func forecastSummary(transactions []financeai.Transaction) []txSummary {
	summary := make([]txSummary, 0, len(transactions))
	for _, tx := range transactions {
		summary = append(summary, txSummary{
			Data:      tx.Date.String(),
			Tipo:      tx.Type.Label(),
			Valor:     tx.Amount.AsFloat(),
			Categoria: tx.Category,
		})
	}
	return summary
}

// simulationSummary omits the date: the scenario impact depends on the
// spending pattern, not on when each transaction happened.
func simulationSummary(transactions []financeai.Transaction) []txSummary {
	summary := make([]txSummary, 0, len(transactions))
	for _, tx := range transactions {
		summary = append(summary, txSummary{
			Tipo:      string(tx.Type),
			Valor:     tx.Amount.AsFloat(),
			Categoria: tx.Category,
		})
	}
	return summary
}
