// SPDX-License-Identifier: MIT

package dashboard

import (
	"math"
	"strconv"
)

// roundTo rounds v half away from zero to the given number of decimals.
func roundTo(v float64, decimals int) float64 {
	p := math.Pow(10, float64(decimals))

	return math.Round(v*p) / p
}

// percent renders a ratio as a percentage with two decimals: 0.7512 → "75.12%".
func percent(ratio float64) string {
	return strconv.FormatFloat(ratio*100, 'f', 2, 64) + "%"
}

// fixed renders v with the given number of decimals.
func fixed(v float64, decimals int) string {
	return strconv.FormatFloat(v, 'f', decimals, 64)
}
