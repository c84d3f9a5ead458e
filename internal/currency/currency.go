// Package currency holds the static currency reference table and the display
// formatter. All persisted amounts are in the base currency (INR); the rates
// here derive display values and are never applied at write time.
package currency

import "math"

// Currency is a static reference entry: never created or mutated at runtime.
type Currency struct {
	Code   string
	Symbol string
	Name   string
	Rate   float64 // conversion rate relative to the base currency
}

// BaseCode is the currency in which all amounts are persisted.
const BaseCode = "INR"

var table = []Currency{
	{Code: "INR", Symbol: "₹", Rate: 1, Name: "Indian Rupee"},
	{Code: "USD", Symbol: "$", Rate: 0.012, Name: "US Dollar"},
	{Code: "EUR", Symbol: "€", Rate: 0.011, Name: "Euro"},
	{Code: "GBP", Symbol: "£", Rate: 0.0094, Name: "British Pound"},
	{Code: "JPY", Symbol: "¥", Rate: 1.76, Name: "Japanese Yen"},
	{Code: "AUD", Symbol: "A$", Rate: 0.018, Name: "Australian Dollar"},
	{Code: "CAD", Symbol: "C$", Rate: 0.016, Name: "Canadian Dollar"},
	{Code: "CHF", Symbol: "Fr", Rate: 0.010, Name: "Swiss Franc"},
	{Code: "CNY", Symbol: "¥", Rate: 0.086, Name: "Chinese Yuan"},
	{Code: "SEK", Symbol: "kr", Rate: 0.12, Name: "Swedish Krona"},
	{Code: "NZD", Symbol: "NZ$", Rate: 0.019, Name: "New Zealand Dollar"},
	{Code: "MXN", Symbol: "$", Rate: 0.20, Name: "Mexican Peso"},
	{Code: "SGD", Symbol: "S$", Rate: 0.016, Name: "Singapore Dollar"},
	{Code: "HKD", Symbol: "HK$", Rate: 0.093, Name: "Hong Kong Dollar"},
	{Code: "KRW", Symbol: "₩", Rate: 15.80, Name: "South Korean Won"},
	{Code: "BRL", Symbol: "R$", Rate: 0.060, Name: "Brazilian Real"},
	{Code: "RUB", Symbol: "₽", Rate: 1.15, Name: "Russian Ruble"},
	{Code: "ZAR", Symbol: "R", Rate: 0.22, Name: "South African Rand"},
	{Code: "TRY", Symbol: "₺", Rate: 0.40, Name: "Turkish Lira"},
	{Code: "SAR", Symbol: "﷼", Rate: 0.045, Name: "Saudi Riyal"},
	{Code: "AED", Symbol: "dh", Rate: 0.044, Name: "UAE Dirham"},
	{Code: "THB", Symbol: "฿", Rate: 0.40, Name: "Thai Baht"},
	{Code: "IDR", Symbol: "Rp", Rate: 190, Name: "Indonesian Rupiah"},
	{Code: "MYR", Symbol: "RM", Rate: 0.052, Name: "Malaysian Ringgit"},
	{Code: "PHP", Symbol: "₱", Rate: 0.69, Name: "Philippine Peso"},
	{Code: "VND", Symbol: "₫", Rate: 300, Name: "Vietnamese Dong"},
	{Code: "PLN", Symbol: "zł", Rate: 0.047, Name: "Polish Zloty"},
	{Code: "ILS", Symbol: "₪", Rate: 0.043, Name: "Israeli New Shekel"},
	{Code: "NOK", Symbol: "kr", Rate: 0.13, Name: "Norwegian Krone"},
	{Code: "DKK", Symbol: "kr", Rate: 0.082, Name: "Danish Krone"},
}

// All returns a copy of the currency table, base currency first.
func All() []Currency {
	out := make([]Currency, len(table))
	copy(out, table)
	return out
}

// Lookup returns the currency for the given code, falling back to the base
// currency when the code is unknown.
func Lookup(code string) Currency {
	for _, c := range table {
		if c.Code == code {
			return c
		}
	}
	return table[0]
}

// Known reports whether a currency code exists in the table.
func Known(code string) bool {
	for _, c := range table {
		if c.Code == code {
			return true
		}
	}
	return false
}

// Convert returns the display-currency value of a base-currency amount,
// rounded to two decimals.
func Convert(amountBase float64, c Currency) float64 {
	return math.Round(amountBase*c.Rate*100) / 100
}
