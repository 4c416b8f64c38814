package utils

import (
	"strings"

	"github.com/shopspring/decimal"
)

// DisplayPrecision is the number of decimals amounts are shown with on tickets and reports.
const DisplayPrecision = 2

// groupSeparator is the narrow no-break space fr-FR uses between thousands.
const groupSeparator = "\u202f"

// FormatAmount formats an amount the way the counter displays it:
// two decimals, comma as decimal mark, thousands grouped, symbol appended.
// Example: 125000 with "FC" returns "125 000,00 FC".
func FormatAmount(amount decimal.Decimal, symbol string) string {
	fixed := amount.StringFixed(DisplayPrecision)

	negative := strings.HasPrefix(fixed, "-")
	fixed = strings.TrimPrefix(fixed, "-")

	intPart, fracPart, _ := strings.Cut(fixed, ".")
	var b strings.Builder
	if negative {
		b.WriteString("-")
	}
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteString(groupSeparator)
		}
		b.WriteRune(r)
	}
	b.WriteString(",")
	b.WriteString(fracPart)

	if symbol == "" {
		return b.String()
	}
	return b.String() + " " + symbol
}
