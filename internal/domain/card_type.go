package domain

// Gateway numeric card brand codes. The table is case-sensitive and accepts
// both "AMEX" and "AMERICAN EXPRESS" for brand code 003. JCB is supported
// as code 007.
var cardTypeCodes = map[string]string{
	"VISA":             "001",
	"MASTERCARD":       "002",
	"AMEX":             "003",
	"AMERICAN EXPRESS": "003",
	"DISCOVER":         "004",
	"JCB":              "007",
}

// CardTypeCode maps a card-brand name to the gateway's numeric brand code.
// The second return value is false for brands the gateway does not support,
// letting callers short-circuit before building a request.
func CardTypeCode(brand string) (string, bool) {
	code, ok := cardTypeCodes[brand]
	return code, ok
}
