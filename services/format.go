package services

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatUSD formats an amount as US dollars with thousands separators and
// exactly 2 decimal places (e.g., $1,234,567.89).
func FormatUSD(amount float64) string {
	negative := false
	if amount < 0 {
		negative = true
		amount = -amount
	}

	raw := fmt.Sprintf("%.2f", amount)
	parts := strings.SplitN(raw, ".", 2)

	result := "$" + applyThousandsGrouping(parts[0]) + "." + parts[1]
	if negative && result != "$0.00" {
		result = "-" + result
	}
	return result
}

// applyThousandsGrouping inserts a comma before every group of 3 digits,
// counting from the right.
func applyThousandsGrouping(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}

	var b strings.Builder
	lead := n % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < n; i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}

// FormatHours prints hours without trailing zeros: 16, 2.5, 0.375.
func FormatHours(h float64) string {
	return strconv.FormatFloat(h, 'f', -1, 64)
}

// FormatSubtotal prints an unrounded hour subtotal with 2 decimals.
func FormatSubtotal(h float64) string {
	return fmt.Sprintf("%.2f", h)
}
