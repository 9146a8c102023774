package cybersource

import (
	"encoding/xml"
	"fmt"

	"github.com/kevin07696/cybersource-gateway/internal/domain"
	"go.uber.org/zap"
)

// RequestBuilder composes merchant configuration, operation parameters,
// optional line items, and optional billing info into a serialized SOAP
// request document. One build method per request kind; all of them validate
// required fields before serializing so no partial document is ever produced
// for known-invalid input.
type RequestBuilder struct {
	logger *zap.Logger
}

// NewRequestBuilder creates a request builder
func NewRequestBuilder(logger *zap.Logger) *RequestBuilder {
	return &RequestBuilder{logger: logger}
}

// Authorize builds a card-present ccAuthService request.
func (b *RequestBuilder) Authorize(profile *domain.MerchantProfile, p domain.AuthorizeParams) ([]byte, error) {
	msg, err := b.newRequestMessage(profile, p.ReferenceCode)
	if err != nil {
		return nil, err
	}

	cardType, ok := domain.CardTypeCode(p.Card.Brand)
	if !ok {
		return nil, domain.NewDomainError(domain.ErrorCodeCardTypeNotFound, "card brand is not supported by the gateway").WithDetail("brand", p.Card.Brand)
	}

	msg.BillTo = buildBillTo(p.BillTo)
	msg.PurchaseTotals = &purchaseTotals{Currency: profile.Currency, GrandTotalAmount: p.Amount.String()}
	msg.Card = &card{
		AccountNumber:   p.Card.Number,
		ExpirationMonth: p.Card.ExpirationMonth,
		ExpirationYear:  p.Card.ExpirationYear,
		CardType:        cardType,
	}
	msg.CCAuthService = &ccAuthService{Run: runServiceValue}

	return b.serialize(profile, msg, domain.KindAuthorize)
}

// AuthorizeApplePay builds an encryptedPayment authorization with the
// Apple Pay payment solution code.
func (b *RequestBuilder) AuthorizeApplePay(profile *domain.MerchantProfile, p domain.WalletAuthorizeParams) ([]byte, error) {
	return b.authorizeWallet(profile, p, paymentSolutionApplePay, domain.KindAuthorizeApplePay)
}

// AuthorizeAndroidPay builds an encryptedPayment authorization with the
// Android Pay payment solution code.
func (b *RequestBuilder) AuthorizeAndroidPay(profile *domain.MerchantProfile, p domain.WalletAuthorizeParams) ([]byte, error) {
	return b.authorizeWallet(profile, p, paymentSolutionAndroidPay, domain.KindAuthorizeAndroidPay)
}

func (b *RequestBuilder) authorizeWallet(profile *domain.MerchantProfile, p domain.WalletAuthorizeParams, solution string, kind domain.RequestKind) ([]byte, error) {
	msg, err := b.newRequestMessage(profile, p.ReferenceCode)
	if err != nil {
		return nil, err
	}

	cardType, ok := domain.CardTypeCode(p.Brand)
	if !ok {
		return nil, domain.NewDomainError(domain.ErrorCodeCardTypeNotFound, "card brand is not supported by the gateway").WithDetail("brand", p.Brand)
	}

	msg.BillTo = buildBillTo(p.BillTo)
	msg.PurchaseTotals = &purchaseTotals{Currency: profile.Currency, GrandTotalAmount: p.Amount.String()}
	msg.Card = &card{CardType: cardType}
	msg.EncryptedPayment = &encryptedPayment{Data: p.EncryptedPayload}
	msg.CCAuthService = &ccAuthService{Run: runServiceValue}
	msg.PaymentSolution = solution

	return b.serialize(profile, msg, kind)
}

// Capture builds a ccCaptureService request against a prior authorization.
func (b *RequestBuilder) Capture(profile *domain.MerchantProfile, p domain.CaptureParams) ([]byte, error) {
	msg, err := b.newRequestMessage(profile, p.ReferenceCode)
	if err != nil {
		return nil, err
	}
	if p.AuthRequestID == "" {
		return nil, domain.NewDomainError(domain.ErrorCodeRequestIDRequired, "prior request id is required for follow-on operations").WithDetail("kind", string(domain.KindCapture))
	}

	msg.Items = buildItems(p.Items)
	msg.PurchaseTotals = &purchaseTotals{Currency: profile.Currency, GrandTotalAmount: p.Amount.String()}
	msg.CCCaptureService = &ccCaptureService{Run: runServiceValue, AuthRequestID: p.AuthRequestID}

	return b.serialize(profile, msg, domain.KindCapture)
}

// Refund builds a ccCreditService request against a prior capture, with
// optional line items and a free-text reason carried in the comments field.
func (b *RequestBuilder) Refund(profile *domain.MerchantProfile, p domain.RefundParams) ([]byte, error) {
	msg, err := b.newRequestMessage(profile, p.ReferenceCode)
	if err != nil {
		return nil, err
	}
	if p.CaptureRequestID == "" {
		return nil, domain.NewDomainError(domain.ErrorCodeRequestIDRequired, "prior request id is required for follow-on operations").WithDetail("kind", string(domain.KindRefund))
	}

	msg.Items = buildItems(p.Items)
	msg.PurchaseTotals = &purchaseTotals{Currency: profile.Currency, GrandTotalAmount: p.Amount.String()}
	msg.Comments = p.Reason
	msg.CCCreditService = &ccCreditService{Run: runServiceValue, CaptureRequestID: p.CaptureRequestID}

	return b.serialize(profile, msg, domain.KindRefund)
}

// Void builds a voidService request against a prior capture or credit.
func (b *RequestBuilder) Void(profile *domain.MerchantProfile, p domain.VoidParams) ([]byte, error) {
	msg, err := b.newRequestMessage(profile, p.ReferenceCode)
	if err != nil {
		return nil, err
	}
	if p.VoidRequestID == "" {
		return nil, domain.NewDomainError(domain.ErrorCodeRequestIDRequired, "prior request id is required for follow-on operations").WithDetail("kind", string(domain.KindVoid))
	}

	msg.VoidService = &voidService{Run: runServiceValue, VoidRequestID: p.VoidRequestID}

	return b.serialize(profile, msg, domain.KindVoid)
}

// Credit builds a follow-on ccCreditService request.
func (b *RequestBuilder) Credit(profile *domain.MerchantProfile, p domain.CreditParams) ([]byte, error) {
	msg, err := b.newRequestMessage(profile, p.ReferenceCode)
	if err != nil {
		return nil, err
	}
	if p.CaptureRequestID == "" {
		return nil, domain.NewDomainError(domain.ErrorCodeRequestIDRequired, "prior request id is required for follow-on operations").WithDetail("kind", string(domain.KindCredit))
	}

	msg.BillTo = buildBillTo(p.BillTo)
	msg.PurchaseTotals = &purchaseTotals{Currency: profile.Currency, GrandTotalAmount: p.Amount.String()}
	msg.CCCreditService = &ccCreditService{Run: runServiceValue, CaptureRequestID: p.CaptureRequestID}

	return b.serialize(profile, msg, domain.KindCredit)
}

// ReverseAuth builds a ccAuthReversalService request releasing an auth hold.
func (b *RequestBuilder) ReverseAuth(profile *domain.MerchantProfile, p domain.ReverseAuthParams) ([]byte, error) {
	msg, err := b.newRequestMessage(profile, p.ReferenceCode)
	if err != nil {
		return nil, err
	}
	if p.AuthRequestID == "" {
		return nil, domain.NewDomainError(domain.ErrorCodeRequestIDRequired, "prior request id is required for follow-on operations").WithDetail("kind", string(domain.KindAuthReversal))
	}

	msg.PurchaseTotals = &purchaseTotals{Currency: profile.Currency, GrandTotalAmount: p.Amount.String()}
	msg.CCAuthReversalService = &ccAuthReversalService{Run: runServiceValue, AuthRequestID: p.AuthRequestID}

	return b.serialize(profile, msg, domain.KindAuthReversal)
}

// CreateToken builds a paySubscriptionCreateService request storing a card
// on file with an on-demand frequency.
func (b *RequestBuilder) CreateToken(profile *domain.MerchantProfile, p domain.CreateTokenParams) ([]byte, error) {
	msg, err := b.newRequestMessage(profile, p.ReferenceCode)
	if err != nil {
		return nil, err
	}

	cardType, ok := domain.CardTypeCode(p.Card.Brand)
	if !ok {
		return nil, domain.NewDomainError(domain.ErrorCodeCardTypeNotFound, "card brand is not supported by the gateway").WithDetail("brand", p.Card.Brand)
	}

	msg.BillTo = buildBillTo(p.BillTo)
	msg.PurchaseTotals = &purchaseTotals{Currency: profile.Currency}
	msg.Card = &card{
		AccountNumber:   p.Card.Number,
		ExpirationMonth: p.Card.ExpirationMonth,
		ExpirationYear:  p.Card.ExpirationYear,
		CardType:        cardType,
	}
	msg.RecurringSubscriptionInfo = &recurringSubscriptionInfo{Frequency: "on-demand"}
	msg.PaySubscriptionCreateService = &runService{Run: runServiceValue}

	return b.serialize(profile, msg, domain.KindCreateToken)
}

// RetrieveToken builds a paySubscriptionRetrieveService request.
func (b *RequestBuilder) RetrieveToken(profile *domain.MerchantProfile, p domain.RetrieveTokenParams) ([]byte, error) {
	msg, err := b.newRequestMessage(profile, p.ReferenceCode)
	if err != nil {
		return nil, err
	}
	if p.SubscriptionID == "" {
		return nil, domain.NewDomainError(domain.ErrorCodeRequestIDRequired, "prior request id is required for follow-on operations").WithDetail("kind", string(domain.KindRetrieveToken))
	}

	msg.RecurringSubscriptionInfo = &recurringSubscriptionInfo{SubscriptionID: p.SubscriptionID}
	msg.PaySubscriptionRetrieveService = &runService{Run: runServiceValue}

	return b.serialize(profile, msg, domain.KindRetrieveToken)
}

// DeleteToken builds a paySubscriptionDeleteService request.
func (b *RequestBuilder) DeleteToken(profile *domain.MerchantProfile, p domain.DeleteTokenParams) ([]byte, error) {
	msg, err := b.newRequestMessage(profile, p.ReferenceCode)
	if err != nil {
		return nil, err
	}
	if p.SubscriptionID == "" {
		return nil, domain.NewDomainError(domain.ErrorCodeRequestIDRequired, "prior request id is required for follow-on operations").WithDetail("kind", string(domain.KindDeleteToken))
	}

	msg.RecurringSubscriptionInfo = &recurringSubscriptionInfo{SubscriptionID: p.SubscriptionID}
	msg.PaySubscriptionDeleteService = &runService{Run: runServiceValue}

	return b.serialize(profile, msg, domain.KindDeleteToken)
}

// newRequestMessage validates the shared preconditions and seeds the fields
// every request kind carries.
func (b *RequestBuilder) newRequestMessage(profile *domain.MerchantProfile, referenceCode string) (*requestMessage, error) {
	if !profile.IsUsable() {
		return nil, domain.ErrMerchantConfigMissing
	}
	if err := domain.ValidateReferenceCode(referenceCode); err != nil {
		return nil, err
	}

	return &requestMessage{
		NS:                    transactionNS,
		MerchantID:            profile.MerchantID,
		MerchantReferenceCode: referenceCode,
		ClientLibrary:         clientLibrary,
		ClientLibraryVersion:  profile.ClientLibraryVersion,
	}, nil
}

func (b *RequestBuilder) serialize(profile *domain.MerchantProfile, msg *requestMessage, kind domain.RequestKind) ([]byte, error) {
	env := envelope{
		SoapNS: soapEnvelopeNS,
		Header: soapHeader{
			Security: wsseSecurity{
				WsseNS:         wsseNS,
				MustUnderstand: "1",
				UsernameToken: usernameToken{
					Username: profile.MerchantID,
					Password: wssePassword{Type: passwordTextNS, Value: profile.TransactionKey},
				},
			},
		},
		Body: soapBody{Request: *msg},
	}

	out, err := xml.Marshal(env)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize %s request: %w", kind, err)
	}

	b.logger.Debug("Built gateway request document",
		zap.String("kind", string(kind)),
		zap.String("merchant_reference_code", msg.MerchantReferenceCode),
		zap.Int("body_length", len(out)),
	)

	return append([]byte(xml.Header), out...), nil
}

func buildBillTo(addr *domain.BillingAddress) *billTo {
	if addr.IsZero() {
		return nil
	}
	return &billTo{
		FirstName:  addr.FirstName,
		LastName:   addr.LastName,
		Street1:    addr.Street,
		City:       addr.City,
		State:      addr.State,
		PostalCode: addr.PostalCode,
		Country:    addr.Country,
		Email:      addr.Email,
	}
}

func buildItems(lines []domain.LineItem) []item {
	if len(lines) == 0 {
		return nil
	}
	items := make([]item, 0, len(lines))
	for _, line := range lines {
		items = append(items, item{
			ID:        line.ID,
			UnitPrice: line.UnitPrice.String(),
			Quantity:  line.Quantity,
		})
	}
	return items
}
