package currency

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// noDecimalCodes always render with zero fraction digits: everyday amounts in
// these currencies are large integers.
var noDecimalCodes = map[string]struct{}{
	"JPY": {}, "KRW": {}, "HUF": {}, "VND": {}, "IDR": {}, "CLP": {}, "TWD": {},
}

// decimalCodes always render with exactly two fraction digits.
var decimalCodes = map[string]struct{}{
	"USD": {}, "EUR": {}, "GBP": {}, "AUD": {}, "CAD": {}, "CHF": {}, "CNY": {}, "NZD": {},
	"SGD": {}, "HKD": {}, "BRL": {}, "ZAR": {}, "TRY": {}, "SAR": {}, "AED": {}, "THB": {},
	"MYR": {}, "PHP": {}, "PLN": {}, "ILS": {}, "NOK": {}, "DKK": {}, "MXN": {}, "SEK": {},
}

var printer = message.NewPrinter(language.AmericanEnglish)

// Format converts a base-currency amount into the target currency and renders
// it with en-US grouping. Fraction digits follow the per-currency sets above;
// for other currencies, converted values under 100 keep two decimals and the
// rest drop them. The currency symbol is not included; callers prepend it.
func Format(amountBase float64, c Currency) string {
	value := amountBase * c.Rate
	digits := fractionDigits(value, c.Code)
	return printer.Sprint(number.Decimal(value,
		number.MinFractionDigits(digits),
		number.MaxFractionDigits(digits)))
}

func fractionDigits(value float64, code string) int {
	if _, ok := noDecimalCodes[code]; ok {
		return 0
	}
	if _, ok := decimalCodes[code]; ok {
		return 2
	}
	if value > 0 && value < 100 {
		return 2
	}
	return 0
}
