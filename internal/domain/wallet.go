package domain

import (
	"encoding/base64"
	"encoding/json"
)

// WalletType classifies a decoded device-wallet payload
type WalletType string

const (
	WalletTypeApplePay     WalletType = "apple_pay"
	WalletTypeAndroidPay   WalletType = "android_pay"
	WalletTypeUnrecognized WalletType = "unrecognized"
)

// DetectPaymentType classifies a base64-encoded wallet payload by the keys
// present in its decoded JSON body. Apple Pay payloads carry both "header"
// and "signature"; Android Pay payloads carry "publicKeyHash". The Apple Pay
// check runs first. Pure function, no network.
func DetectPaymentType(encoded string) (WalletType, error) {
	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return WalletTypeUnrecognized, WrapError(ErrorCodeWalletInvalidEncoding, "wallet payload is not valid base64", err)
	}

	var payload map[string]json.RawMessage
	if err := json.Unmarshal(raw, &payload); err != nil {
		return WalletTypeUnrecognized, WrapError(ErrorCodeWalletInvalidPayload, "wallet payload is not valid JSON", err)
	}

	_, hasHeader := payload["header"]
	_, hasSignature := payload["signature"]
	if hasHeader && hasSignature {
		return WalletTypeApplePay, nil
	}

	if _, ok := payload["publicKeyHash"]; ok {
		return WalletTypeAndroidPay, nil
	}

	return WalletTypeUnrecognized, nil
}
