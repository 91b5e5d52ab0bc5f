// Package renderer turns reports into markdown for terminal display.
// Formatting choices live here; the aggregation engine stays numeric.
package renderer

import "time"

// monthNames holds the pt-BR month abbreviations used on chart axes.
var monthNames = [...]string{
	"Jan", "Fev", "Mar", "Abr", "Mai", "Jun",
	"Jul", "Ago", "Set", "Out", "Nov", "Dez",
}

// MonthName returns the pt-BR abbreviation of the month.
func MonthName(m time.Month) string { return monthNames[m-1] }
