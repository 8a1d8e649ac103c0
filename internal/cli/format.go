// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"strconv"
)

// FormatMoney formats an amount with exactly two decimal places.
// Every money value in the final report goes through this.
func FormatMoney(amount float64) string {
	return fmt.Sprintf("$%.2f", amount)
}

// FormatPercent formats a percentage value, dropping trailing zeros.
// e.g., 10 -> "10%", 12.5 -> "12.5%"
func FormatPercent(pct float64) string {
	return strconv.FormatFloat(pct, 'f', -1, 64) + "%"
}

// FormatCount pluralizes a noun with its count.
// e.g., (1, "item") -> "1 item", (3, "item") -> "3 items"
func FormatCount(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
