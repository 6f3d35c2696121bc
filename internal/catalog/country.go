package catalog

// keyByCode maps the 2-letter ISO codes the UI speaks to the internal
// warehouse/pricing keys the stock and price tables are indexed by.
var keyByCode = map[string]string{
	"AE": "UAE",
	"SA": "KSA",
	"OM": "Oman",
	"BH": "Bahrain",
	"IN": "India",
	"KW": "Kuwait",
	"QA": "Qatar",
	"PK": "Pakistan",
	"JO": "Jordan",
	"US": "USA",
	"GB": "UK",
	"CA": "Canada",
	"AU": "Australia",
}

var codeByKey = func() map[string]string {
	m := make(map[string]string, len(keyByCode))
	for code, key := range keyByCode {
		m[key] = code
	}
	return m
}()

var currencyByKey = map[string]string{
	"UAE":       "AED",
	"KSA":       "SAR",
	"Oman":      "OMR",
	"Bahrain":   "BHD",
	"India":     "INR",
	"Kuwait":    "KWD",
	"Qatar":     "QAR",
	"Pakistan":  "PKR",
	"Jordan":    "JOD",
	"USA":       "USD",
	"UK":        "GBP",
	"Canada":    "CAD",
	"Australia": "AUD",
}

// CountryKey converts a 2-letter code to its warehouse key. Unmapped codes
// pass through unchanged so future country keys keep working end to end.
func CountryKey(code string) string {
	if key, ok := keyByCode[code]; ok {
		return key
	}
	return code
}

// CountryCode is the inverse of CountryKey, with the same pass-through rule.
func CountryCode(key string) string {
	if code, ok := codeByKey[key]; ok {
		return code
	}
	return key
}

// CurrencyFor returns the display currency for a warehouse key, SAR for
// anything unknown.
func CurrencyFor(key string) string {
	if cur, ok := currencyByKey[key]; ok {
		return cur
	}
	return "SAR"
}
