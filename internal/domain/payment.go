package domain

import (
	"strconv"

	"github.com/shopspring/decimal"
)

// RequestKind identifies which gateway service a request exercises
type RequestKind string

const (
	KindAuthorize           RequestKind = "authorize"
	KindAuthorizeApplePay   RequestKind = "authorize_apple_pay"
	KindAuthorizeAndroidPay RequestKind = "authorize_android_pay"
	KindCapture             RequestKind = "capture"
	KindRefund              RequestKind = "refund"
	KindVoid                RequestKind = "void"
	KindCredit              RequestKind = "credit"
	KindAuthReversal        RequestKind = "auth_reversal"
	KindCreateToken         RequestKind = "create_token"
	KindRetrieveToken       RequestKind = "retrieve_token"
	KindDeleteToken         RequestKind = "delete_token"
)

// Card contains payment card details for card-present authorizations
// and token creation.
type Card struct {
	Number          string
	ExpirationMonth string // two digits, e.g. "12"
	ExpirationYear  string // four digits, e.g. "2027"
	Brand           string // brand name resolved through CardTypeCode
}

// BillingAddress is the optional billTo section on authorization-style
// requests. No client-side validation beyond presence is performed.
type BillingAddress struct {
	FirstName  string
	LastName   string
	Street     string
	City       string
	State      string
	PostalCode string
	Country    string
	Email      string
}

// IsZero reports whether every billing field is empty, in which case the
// billTo section is omitted from the request document entirely.
func (b *BillingAddress) IsZero() bool {
	if b == nil {
		return true
	}
	return *b == BillingAddress{}
}

// LineItem is an order line embedded in capture and refund requests.
// Item order is preserved in the serialized document.
type LineItem struct {
	ID        string
	UnitPrice decimal.Decimal
	Quantity  int
}

// ReferenceCodeFromInt coerces an integer order identifier to the decimal
// string form the gateway expects.
func ReferenceCodeFromInt(n int64) string {
	return strconv.FormatInt(n, 10)
}

// ValidateReferenceCode rejects empty merchant reference codes before any
// request document is built.
func ValidateReferenceCode(code string) error {
	if code == "" {
		return ErrOrderIDInvalid
	}
	return nil
}

// AuthorizeParams carries the fields for a card-present authorization.
type AuthorizeParams struct {
	ReferenceCode string
	Amount        decimal.Decimal
	Card          Card
	BillTo        *BillingAddress
}

// WalletAuthorizeParams carries the fields for an Apple Pay or Android Pay
// authorization. EncryptedPayload is the base64 blob handed over by the
// device wallet; it is classified before the request is built.
type WalletAuthorizeParams struct {
	ReferenceCode    string
	Amount           decimal.Decimal
	Brand            string
	EncryptedPayload string
	BillTo           *BillingAddress
}

// CaptureParams captures a prior authorization identified by AuthRequestID.
type CaptureParams struct {
	ReferenceCode string
	AuthRequestID string
	Amount        decimal.Decimal
	Items         []LineItem
}

// RefundParams refunds a prior capture identified by CaptureRequestID.
type RefundParams struct {
	ReferenceCode    string
	CaptureRequestID string
	Amount           decimal.Decimal
	Items            []LineItem
	Reason           string
}

// VoidParams voids a prior capture or credit before settlement.
type VoidParams struct {
	ReferenceCode string
	VoidRequestID string
}

// CreditParams issues a follow-on credit against a prior capture.
type CreditParams struct {
	ReferenceCode    string
	CaptureRequestID string
	Amount           decimal.Decimal
	BillTo           *BillingAddress
}

// ReverseAuthParams releases the hold placed by a prior authorization.
type ReverseAuthParams struct {
	ReferenceCode string
	AuthRequestID string
	Amount        decimal.Decimal
}

// CreateTokenParams stores a card on file and returns a subscription id.
type CreateTokenParams struct {
	ReferenceCode string
	Card          Card
	BillTo        *BillingAddress
}

// RetrieveTokenParams fetches a stored card by subscription id.
type RetrieveTokenParams struct {
	ReferenceCode  string
	SubscriptionID string
}

// DeleteTokenParams removes a stored card by subscription id.
type DeleteTokenParams struct {
	ReferenceCode  string
	SubscriptionID string
}
