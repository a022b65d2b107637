package utils

import (
	"fmt"
	"math"
	"strings"
)

// FormatCurrency renders amounts the way receipts print them: "$ 15.000,50".
// Whole amounts drop the decimal part; negatives keep a leading minus.
func FormatCurrency(amount float64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = math.Abs(amount)
	}

	formatted := fmt.Sprintf("%.2f", amount)
	parts := strings.Split(formatted, ".")
	integerPart := parts[0]
	decimalPart := parts[1]

	var groups []string
	for i := len(integerPart); i > 0; i -= 3 {
		start := i - 3
		if start < 0 {
			start = 0
		}
		groups = append([]string{integerPart[start:i]}, groups...)
	}

	result := strings.Join(groups, ".")
	if decimalPart != "00" {
		result += "," + decimalPart
	}
	return fmt.Sprintf("%s$ %s", sign, result)
}
