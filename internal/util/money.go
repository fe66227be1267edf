// Package util holds small formatting helpers shared by the stores.
package util

import (
	"strings"

	"github.com/shopspring/decimal"
)

const poundSign = "£"

// FormatPence renders an amount in pence as en-GB pounds sterling,
// e.g. 123456 -> "£1,234.56" and -250 -> "-£2.50".
func FormatPence(pence int64) string {
	return formatPounds(pence, groupThousands)
}

// FormatPencePlain is FormatPence without thousands separators,
// e.g. 123456 -> "£1234.56".
func FormatPencePlain(pence int64) string {
	return formatPounds(pence, func(digits string) string { return digits })
}

func formatPounds(pence int64, group func(string) string) string {
	amount := decimal.New(pence, -2)

	sign := ""
	if amount.IsNegative() {
		sign = "-"
		amount = amount.Abs()
	}

	fixed := amount.StringFixed(2)
	whole, fraction, _ := strings.Cut(fixed, ".")

	return sign + poundSign + group(whole) + "." + fraction
}

// SumPence multiplies each price by its quantity and adds them up.
func SumPence[T any](items []T, price func(T) int64, quantity func(T) int) int64 {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(decimal.NewFromInt(price(item)).Mul(decimal.NewFromInt(int64(quantity(item)))))
	}

	return total.IntPart()
}

func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}

	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}

	return b.String()
}
