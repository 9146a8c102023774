package cybersource

import (
	"github.com/kevin07696/cybersource-gateway/internal/domain"
)

// ResolveOutcome maps a parsed reply to its terminal result.
//
// Precedence: a non-empty decision always wins over fault evaluation.
// ACCEPT yields an accepted outcome; REJECT and ERROR yield a rejection
// carrying the reason code; any other decision literal is classified as
// unknown rather than falling through. With no decision, a non-empty
// faultcode yields a fault outcome; otherwise the response is unknown.
func ResolveOutcome(reply *domain.GatewayReply) domain.Outcome {
	if reply.Decision != "" {
		switch reply.Decision {
		case domain.DecisionAccept:
			return domain.Outcome{Status: domain.OutcomeAccepted, Reply: reply}
		case domain.DecisionReject, domain.DecisionError:
			return domain.Outcome{
				Status:     domain.OutcomeRejected,
				Reply:      reply,
				ReasonCode: reply.ReasonCode,
			}
		default:
			return domain.Outcome{Status: domain.OutcomeUnknown, Reply: reply}
		}
	}

	if reply.Fault != nil && reply.Fault.Code != "" {
		return domain.Outcome{
			Status:       domain.OutcomeFault,
			Reply:        reply,
			FaultCode:    reply.Fault.Code,
			FaultMessage: reply.Fault.Message,
		}
	}

	return domain.Outcome{Status: domain.OutcomeUnknown, Reply: reply}
}

// ReasonCodeInfo contains detailed information about a gateway reason code
type ReasonCodeInfo struct {
	Code        int
	Description string
	IsRetriable bool
}

// Reason code map for gateway decisions. Used for logging and caller UX;
// outcome classification depends only on the decision literal.
var reasonCodes = map[int]ReasonCodeInfo{
	100: {Code: 100, Description: "Successful transaction"},
	101: {Code: 101, Description: "Request is missing one or more required fields"},
	102: {Code: 102, Description: "One or more fields contains invalid data"},
	150: {Code: 150, Description: "General system failure", IsRetriable: true},
	151: {Code: 151, Description: "Server timeout; the transaction may have been completed", IsRetriable: true},
	152: {Code: 152, Description: "Service did not finish in time; the transaction may have been completed", IsRetriable: true},
	201: {Code: 201, Description: "Issuing bank has questions about the request"},
	202: {Code: 202, Description: "Expired card"},
	203: {Code: 203, Description: "General decline by the issuing bank"},
	204: {Code: 204, Description: "Insufficient funds", IsRetriable: true},
	208: {Code: 208, Description: "Card is inactive or not authorized for card-not-present transactions"},
	231: {Code: 231, Description: "Invalid account number"},
	233: {Code: 233, Description: "General decline by the processor"},
	234: {Code: 234, Description: "Merchant account configuration problem"},
	241: {Code: 241, Description: "Request id is invalid for this follow-on operation"},
	481: {Code: 481, Description: "Transaction rejected by the fraud screen"},
	520: {Code: 520, Description: "Authorization rejected by merchant smart settings"},
}

// LookupReasonCode returns detail for a gateway reason code. Unknown codes
// return ok=false; callers fall back to the bare numeric code.
func LookupReasonCode(code int) (ReasonCodeInfo, bool) {
	info, ok := reasonCodes[code]
	return info, ok
}
