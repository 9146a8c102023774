package domain

// MerchantProfile holds the per-merchant credentials and currency included on
// every gateway request. Profiles are resolved by name from an externally
// owned configuration store and treated as immutable snapshots once loaded.
type MerchantProfile struct {
	// MerchantID is the gateway-assigned merchant identifier.
	MerchantID string `json:"merchant_id"`

	// TransactionKey authenticates the SOAP request (WSSE password).
	TransactionKey string `json:"transaction_key"`

	// Currency is the ISO 4217 code applied to every request amount.
	Currency string `json:"currency"`

	// ClientLibraryVersion is reported to the gateway for diagnostics.
	ClientLibraryVersion string `json:"client_library_version"`
}

// IsUsable reports whether the profile carries everything a request needs.
// A populated-but-partial profile is invalid-for-use, same as an absent one.
func (p *MerchantProfile) IsUsable() bool {
	if p == nil {
		return false
	}
	return p.MerchantID != "" && p.TransactionKey != "" && p.Currency != ""
}
