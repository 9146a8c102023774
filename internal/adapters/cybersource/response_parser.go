package cybersource

import (
	"encoding/xml"
	"strconv"

	"github.com/kevin07696/cybersource-gateway/internal/domain"
	"github.com/shopspring/decimal"
)

// Inbound SOAP reply structs. Tags carry local names only, so unmarshaling
// matches elements regardless of the namespace prefix the gateway uses.

type replyEnvelope struct {
	XMLName xml.Name  `xml:"Envelope"`
	Body    replyBody `xml:"Body"`
}

type replyBody struct {
	Fault *faultXML        `xml:"Fault"`
	Reply *replyMessageXML `xml:"replyMessage"`
}

type faultXML struct {
	Code    string `xml:"faultcode"`
	Message string `xml:"faultstring"`
}

type replyMessageXML struct {
	MerchantReferenceCode string `xml:"merchantReferenceCode"`
	RequestID             string `xml:"requestID"`
	Decision              string `xml:"decision"`
	ReasonCode            string `xml:"reasonCode"`
	RequestToken          string `xml:"requestToken"`

	CCAuthReply         *ccAuthReplyXML         `xml:"ccAuthReply"`
	CCCaptureReply      *ccCaptureReplyXML      `xml:"ccCaptureReply"`
	CCAuthReversalReply *ccAuthReversalReplyXML `xml:"ccAuthReversalReply"`
	VoidReply           *voidReplyXML           `xml:"voidReply"`
	CCCreditReply       *ccCreditReplyXML       `xml:"ccCreditReply"`

	PaySubscriptionCreateReply   *subscriptionCreateReplyXML   `xml:"paySubscriptionCreateReply"`
	PaySubscriptionRetrieveReply *subscriptionRetrieveReplyXML `xml:"paySubscriptionRetrieveReply"`
	PaySubscriptionDeleteReply   *subscriptionDeleteReplyXML   `xml:"paySubscriptionDeleteReply"`
}

type ccAuthReplyXML struct {
	ReasonCode        string `xml:"reasonCode"`
	Amount            string `xml:"amount"`
	AuthorizationCode string `xml:"authorizationCode"`
	AVSCode           string `xml:"avsCode"`
	ProcessorResponse string `xml:"processorResponse"`
	AuthorizedDate    string `xml:"authorizedDateTime"`
}

type ccCaptureReplyXML struct {
	ReasonCode       string `xml:"reasonCode"`
	Amount           string `xml:"amount"`
	RequestDate      string `xml:"requestDateTime"`
	ReconciliationID string `xml:"reconciliationID"`
}

type ccAuthReversalReplyXML struct {
	ReasonCode        string `xml:"reasonCode"`
	Amount            string `xml:"amount"`
	ProcessorResponse string `xml:"processorResponse"`
}

type voidReplyXML struct {
	ReasonCode  string `xml:"reasonCode"`
	Amount      string `xml:"amount"`
	Currency    string `xml:"currency"`
	RequestDate string `xml:"requestDateTime"`
}

type ccCreditReplyXML struct {
	ReasonCode       string `xml:"reasonCode"`
	Amount           string `xml:"amount"`
	RequestDate      string `xml:"requestDateTime"`
	ReconciliationID string `xml:"reconciliationID"`
}

type subscriptionCreateReplyXML struct {
	ReasonCode     string `xml:"reasonCode"`
	SubscriptionID string `xml:"subscriptionID"`
}

type subscriptionRetrieveReplyXML struct {
	ReasonCode          string `xml:"reasonCode"`
	SubscriptionID      string `xml:"subscriptionID"`
	CardAccountNumber   string `xml:"cardAccountNumber"`
	CardExpirationMonth string `xml:"cardExpirationMonth"`
	CardExpirationYear  string `xml:"cardExpirationYear"`
	Currency            string `xml:"currency"`
}

type subscriptionDeleteReplyXML struct {
	ReasonCode     string `xml:"reasonCode"`
	SubscriptionID string `xml:"subscriptionID"`
}

// ParseResponse parses the SOAP reply body into a GatewayReply. Any subset
// of the known reply blocks may be absent; absence is never an error. A
// fault block is captured independently of the decision fields.
func ParseResponse(body []byte) (*domain.GatewayReply, error) {
	var env replyEnvelope
	if err := xml.Unmarshal(body, &env); err != nil {
		return nil, domain.WrapError(domain.ErrorCodeResponseMalformed, "payment gateway returned malformed XML", err)
	}

	reply := &domain.GatewayReply{}

	if env.Body.Fault != nil {
		reply.Fault = &domain.Fault{
			Code:    env.Body.Fault.Code,
			Message: env.Body.Fault.Message,
		}
	}

	msg := env.Body.Reply
	if msg == nil {
		return reply, nil
	}

	reply.MerchantReferenceCode = msg.MerchantReferenceCode
	reply.RequestID = msg.RequestID
	reply.Decision = msg.Decision
	reply.ReasonCode = coerceInt(msg.ReasonCode)
	reply.RequestToken = msg.RequestToken

	if r := msg.CCAuthReply; r != nil {
		reply.AuthReply = &domain.AuthReply{
			ReasonCode:        coerceInt(r.ReasonCode),
			Amount:            coerceDecimal(r.Amount),
			AuthorizationCode: r.AuthorizationCode,
			AVSCode:           r.AVSCode,
			ProcessorResponse: r.ProcessorResponse,
			AuthorizedDate:    r.AuthorizedDate,
		}
	}
	if r := msg.CCCaptureReply; r != nil {
		reply.CaptureReply = &domain.CaptureReply{
			ReasonCode:       coerceInt(r.ReasonCode),
			Amount:           coerceDecimal(r.Amount),
			RequestDate:      r.RequestDate,
			ReconciliationID: r.ReconciliationID,
		}
	}
	if r := msg.CCAuthReversalReply; r != nil {
		reply.AuthReversalReply = &domain.AuthReversalReply{
			ReasonCode:        coerceInt(r.ReasonCode),
			Amount:            coerceDecimal(r.Amount),
			ProcessorResponse: r.ProcessorResponse,
		}
	}
	if r := msg.VoidReply; r != nil {
		reply.VoidReply = &domain.VoidReply{
			ReasonCode:  coerceInt(r.ReasonCode),
			Amount:      coerceDecimal(r.Amount),
			Currency:    r.Currency,
			RequestDate: r.RequestDate,
		}
	}
	if r := msg.CCCreditReply; r != nil {
		reply.CreditReply = &domain.CreditReply{
			ReasonCode:       coerceInt(r.ReasonCode),
			Amount:           coerceDecimal(r.Amount),
			RequestDate:      r.RequestDate,
			ReconciliationID: r.ReconciliationID,
		}
	}
	if r := msg.PaySubscriptionCreateReply; r != nil {
		reply.SubscriptionCreateReply = &domain.SubscriptionCreateReply{
			ReasonCode:     coerceInt(r.ReasonCode),
			SubscriptionID: r.SubscriptionID,
		}
	}
	if r := msg.PaySubscriptionRetrieveReply; r != nil {
		reply.SubscriptionRetrieveReply = &domain.SubscriptionRetrieveReply{
			ReasonCode:          coerceInt(r.ReasonCode),
			SubscriptionID:      r.SubscriptionID,
			CardAccountNumber:   r.CardAccountNumber,
			CardExpirationMonth: coerceInt(r.CardExpirationMonth),
			CardExpirationYear:  coerceInt(r.CardExpirationYear),
			Currency:            r.Currency,
		}
	}
	if r := msg.PaySubscriptionDeleteReply; r != nil {
		reply.SubscriptionDeleteReply = &domain.SubscriptionDeleteReply{
			ReasonCode:     coerceInt(r.ReasonCode),
			SubscriptionID: r.SubscriptionID,
		}
	}

	return reply, nil
}

// coerceInt converts a numeric reply field, treating absent or malformed
// values as zero rather than erroring.
func coerceInt(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}

// coerceDecimal converts an amount field, treating absent or malformed
// values as zero.
func coerceDecimal(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}
