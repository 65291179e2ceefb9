package foliomail

import "fmt"

// Percent is a percentage value, e.g. Percent(1.5) is +1.50%.
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

// SignedString returns the percentage with an explicit sign; zero renders
// as "-".
func (p Percent) SignedString() string {
	res := fmt.Sprintf("%+.2f%%", p)
	if res == "+0.00%" {
		return "-"
	}
	return res
}

// Class returns the visual class for the value's sign: "positive" for zero
// or better, "negative" otherwise.
func (p Percent) Class() string {
	if p < 0 {
		return "negative"
	}
	return "positive"
}
