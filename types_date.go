package financeai

import (
	"time"

	"github.com/menezesjss/financeai/date"
)

// Date is re-exported from the date package so that callers of this package
// rarely need a second import.
type Date = date.Date

// DateFormat is the format used to represent dates as strings in ISO-8601 format.
const DateFormat = date.DateFormat

// NewDate returns a normalized Date for the given year, month, and day.
func NewDate(year int, month time.Month, day int) Date { return date.New(year, month, day) }

// Today returns the current date.
func Today() Date { return date.Today() }

// ParseDate parses a Date from a string. It is lenient and accepts formats like "2025-7-1".
func ParseDate(str string) (Date, error) { return date.Parse(str) }
