package metrics

// currencySymbols maps the display currencies the dashboard offers to their
// symbols. Symbol formatting only: there is no conversion between currencies.
var currencySymbols = map[string]string{
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
	"JPY": "¥",
	"INR": "₹",
}

// CurrencySymbol returns the display symbol for a currency code, falling
// back to "$" for anything unknown.
func CurrencySymbol(code string) string {
	if symbol, ok := currencySymbols[code]; ok {
		return symbol
	}
	return "$"
}

// IsSupportedCurrency reports whether the code is one of the display
// currencies the dashboard can format.
func IsSupportedCurrency(code string) bool {
	_, ok := currencySymbols[code]
	return ok
}
