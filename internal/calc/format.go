package calc

import (
	"fmt"
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// currencyPrinter adds thousands separators; the engine itself never rounds,
// these helpers are display-only.
var currencyPrinter = message.NewPrinter(language.English)

// FormatCurrency renders an amount as dollars with two decimals.
func FormatCurrency(amount float64) string {
	return currencyPrinter.Sprintf("$%.2f", amount)
}

// FormatArea renders square meters with two decimals.
func FormatArea(area float64) string {
	return fmt.Sprintf("%.2f m²", area)
}

// FormatVolume renders litres with two decimals.
func FormatVolume(volume float64) string {
	return fmt.Sprintf("%.2f L", volume)
}

// FormatTime renders minutes as "Xh Ym", or "Ym" under an hour.
func FormatTime(minutes float64) string {
	hours := int(minutes / 60)
	mins := int(math.Round(math.Mod(minutes, 60)))
	if hours > 0 {
		return fmt.Sprintf("%dh %dm", hours, mins)
	}
	return fmt.Sprintf("%dm", mins)
}
