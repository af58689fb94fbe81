package render

import (
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// The deployment is Kenyan: en-KE digit grouping, KES currency code.
var kesPrinter = message.NewPrinter(language.MustParse("en-KE"))

// FormatKES formats an amount in Kenyan-shilling style with the requested
// number of fraction digits. Receipt documents use two fraction digits, list
// views use zero; callers must keep that asymmetry.
func FormatKES(amount decimal.Decimal, fractionDigits int) string {
	value, _ := amount.Float64()
	if fractionDigits <= 0 {
		return kesPrinter.Sprintf("KES %.0f", value)
	}
	return kesPrinter.Sprintf("KES %.2f", value)
}

// FormatLongDate renders a stored receipt date as a long localized date,
// e.g. "17 March 2025". Dates arrive either as plain dates or RFC3339 strings.
func FormatLongDate(date string) string {
	parsed, err := time.Parse("2006-01-02", date)
	if err != nil {
		parsed, err = time.Parse(time.RFC3339, date)
	}
	if err != nil {
		return date
	}
	return parsed.Format("2 January 2006")
}
