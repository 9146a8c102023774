package domain

import "github.com/shopspring/decimal"

// Gateway decision literals as they appear in replyMessage.
const (
	DecisionAccept = "ACCEPT"
	DecisionReject = "REJECT"
	DecisionError  = "ERROR"
)

// GatewayReply aggregates every reply section the gateway can return for any
// operation kind. Exactly one nested block is populated per real response;
// every field is optional to accommodate the union.
type GatewayReply struct {
	MerchantReferenceCode string
	RequestID             string
	Decision              string
	ReasonCode            int
	RequestToken          string

	AuthReply                 *AuthReply
	CaptureReply              *CaptureReply
	AuthReversalReply         *AuthReversalReply
	VoidReply                 *VoidReply
	CreditReply               *CreditReply
	SubscriptionCreateReply   *SubscriptionCreateReply
	SubscriptionRetrieveReply *SubscriptionRetrieveReply
	SubscriptionDeleteReply   *SubscriptionDeleteReply

	// Fault is captured independently of the decision fields. Faults and
	// decisions are structural siblings in the envelope even though only one
	// is semantically active per real response.
	Fault *Fault
}

// Fault is a protocol-level SOAP error, distinct from a business reject.
type Fault struct {
	Code    string
	Message string
}

// AuthReply is the ccAuthReply block.
type AuthReply struct {
	ReasonCode        int
	Amount            decimal.Decimal
	AuthorizationCode string
	AVSCode           string
	ProcessorResponse string
	AuthorizedDate    string
}

// CaptureReply is the ccCaptureReply block.
type CaptureReply struct {
	ReasonCode       int
	Amount           decimal.Decimal
	RequestDate      string
	ReconciliationID string
}

// AuthReversalReply is the ccAuthReversalReply block.
type AuthReversalReply struct {
	ReasonCode        int
	Amount            decimal.Decimal
	ProcessorResponse string
}

// VoidReply is the voidReply block.
type VoidReply struct {
	ReasonCode  int
	Amount      decimal.Decimal
	Currency    string
	RequestDate string
}

// CreditReply is the ccCreditReply block.
type CreditReply struct {
	ReasonCode       int
	Amount           decimal.Decimal
	RequestDate      string
	ReconciliationID string
}

// SubscriptionCreateReply is the paySubscriptionCreateReply block.
type SubscriptionCreateReply struct {
	ReasonCode     int
	SubscriptionID string
}

// SubscriptionRetrieveReply is the paySubscriptionRetrieveReply block.
type SubscriptionRetrieveReply struct {
	ReasonCode          int
	SubscriptionID      string
	CardAccountNumber   string
	CardExpirationMonth int
	CardExpirationYear  int
	Currency            string
}

// SubscriptionDeleteReply is the paySubscriptionDeleteReply block.
type SubscriptionDeleteReply struct {
	ReasonCode     int
	SubscriptionID string
}

// OutcomeStatus classifies a parsed reply into a terminal result.
type OutcomeStatus string

const (
	OutcomeAccepted OutcomeStatus = "accepted"
	OutcomeRejected OutcomeStatus = "rejected"
	OutcomeFault    OutcomeStatus = "fault"
	OutcomeUnknown  OutcomeStatus = "unknown"
)

// Outcome is the final success/failure result derived from a GatewayReply.
type Outcome struct {
	Status OutcomeStatus
	Reply  *GatewayReply

	// ReasonCode is set for rejected outcomes.
	ReasonCode int

	// FaultCode and FaultMessage are set for fault outcomes.
	FaultCode    string
	FaultMessage string
}
