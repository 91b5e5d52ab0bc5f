package renderer

import (
	"bytes"
	"fmt"
	"strings"

	financeai "github.com/menezesjss/financeai"
	md "github.com/nao1215/markdown"
)

// progressBar draws a ten-cell text gauge for a whole percentage.
func progressBar(progress int) string {
	filled := progress / 10
	return strings.Repeat("█", filled) + strings.Repeat("░", 10-filled)
}

// Goals renders the goal list with derived progress.
func Goals(goals []financeai.Goal) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Metas de Economia")
	if len(goals) == 0 {
		doc.PlainText("Nenhuma meta definida.")
		doc.Build()
		return buf.String()
	}

	rows := make([][]string, 0, len(goals))
	for _, g := range goals {
		status := fmt.Sprintf("%s %d%%", progressBar(g.Progress()), g.Progress())
		if g.IsCompleted() {
			status = "✅ " + status
		}
		rows = append(rows, []string{
			g.Title,
			g.CurrentAmount.String(),
			g.TargetAmount.String(),
			g.Deadline.String(),
			status,
			g.ID,
		})
	}
	doc.Table(md.TableSet{
		Header: []string{"Meta", "Acumulado", "Objetivo", "Prazo", "Progresso", "ID"},
		Rows:   rows,
	})

	doc.Build()
	return buf.String()
}
