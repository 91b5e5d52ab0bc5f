package financeai

import "fmt"

// Percent is a ratio expressed in percent points, as produced by the
// aggregation engine for savings rates and investment returns.
type Percent float64

func (p Percent) Equal(q Percent) bool {
	// it has to be compared with some precision
	const precision = 0.0001
	diff := p - q
	if diff < 0 {
		diff = -diff
	}
	return diff < precision
}

func (p Percent) String() string {
	return fmt.Sprintf("%.2f%%", p)
}

// SignedString renders the percent with an explicit sign, or "-" when it
// rounds to zero. Used for investment returns, where the sign matters.
func (p Percent) SignedString() string {
	res := fmt.Sprintf("%+.2f%%", p)
	if res == "+0.00%" {
		return "-"
	}
	return res
}
