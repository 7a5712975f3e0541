package utils

import (
	"math"
	"strings"

	"github.com/dustin/go-humanize"
)

// FCurrency formats an amount with thousands separators, the way prices are
// shown to the storefront ("31,000").
func FCurrency(n float64) string {
	if n == 0 {
		return "0"
	}

	rounded := math.Round(n*100) / 100
	formatted := humanize.CommafWithDigits(rounded, 2)

	return strings.TrimSpace(formatted)
}
