package browse

import "strconv"

// FormatScore renders a motif score with three decimals, e.g. 0.827419 -> "0.827".
func FormatScore(v float64) string {
	return strconv.FormatFloat(v, 'f', 3, 64)
}
