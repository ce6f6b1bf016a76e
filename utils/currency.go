package utils

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// FormatCurrencyEUR formats a decimal amount as a euro string,
// e.g. 1499.5 -> "€ 1.499,50".
func FormatCurrencyEUR(amount decimal.Decimal) string {
	fixed := amount.StringFixed(2)

	parts := strings.Split(fixed, ".")
	integerPart := parts[0]
	decimalPart := parts[1]

	negative := strings.HasPrefix(integerPart, "-")
	if negative {
		integerPart = integerPart[1:]
	}

	var groups []string
	for i := len(integerPart); i > 0; i -= 3 {
		start := i - 3
		if start < 0 {
			start = 0
		}
		groups = append([]string{integerPart[start:i]}, groups...)
	}

	formatted := strings.Join(groups, ".") + "," + decimalPart
	if negative {
		formatted = "-" + formatted
	}
	return fmt.Sprintf("€ %s", formatted)
}
