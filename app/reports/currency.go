package reports

import (
	"math"
	"strconv"
)

// FormatDZD renders an amount the way the dashboard does everywhere else:
// en-DZ locale, DZD currency, zero fractional digits ("DA 1,500,000").
// Both renderers must go through this one function so their outputs never
// disagree. NaN and infinities collapse to the zero display.
func FormatDZD(amount float64) string {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		amount = 0
	}
	neg := amount < 0
	n := int64(math.Round(math.Abs(amount)))

	s := strconv.FormatInt(n, 10)
	out := make([]byte, 0, len(s)+len(s)/3)
	for i, c := range []byte(s) {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, c)
	}

	if neg && n != 0 {
		return "-DA " + string(out)
	}
	return "DA " + string(out)
}

// FormatPercent renders a share with one decimal ("42.5%").
func FormatPercent(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		v = 0
	}
	return strconv.FormatFloat(v, 'f', 1, 64) + "%"
}
