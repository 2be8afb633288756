// Package format renders money and dates the way the dashboard displays them
package format

import (
	"math"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.AmericanEnglish)

// Currency formats amount as US dollars with thousands grouping,
// e.g. "$1,234.50" or "-$5.00"
func Currency(amount float64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = math.Abs(amount)
	}
	return sign + "$" + printer.Sprintf("%.2f", amount)
}

// Date formats t as "Oct 14, 2026"
func Date(t time.Time) string {
	return t.Format("Jan 2, 2006")
}

// MonthName returns the English month name of t, the form payroll periods use
func MonthName(t time.Time) string {
	return t.Month().String()
}
