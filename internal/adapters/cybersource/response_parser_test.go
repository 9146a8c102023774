package cybersource

import (
	"testing"

	"github.com/kevin07696/cybersource-gateway/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const captureReplyXML = `<?xml version="1.0" encoding="utf-8"?>
<soap:Envelope xmlns:soap="http://schemas.xmlsoap.org/soap/envelope/">
  <soap:Body>
    <c:replyMessage xmlns:c="urn:schemas-cybersource-com:transaction-data-1.151">
      <c:merchantReferenceCode>ORD-1</c:merchantReferenceCode>
      <c:requestID>800456</c:requestID>
      <c:decision>ACCEPT</c:decision>
      <c:reasonCode>100</c:reasonCode>
      <c:requestToken>AhjzbwSTE4</c:requestToken>
      <c:ccCaptureReply>
        <c:reasonCode>100</c:reasonCode>
        <c:requestDateTime>2026-08-30T10:15:00Z</c:requestDateTime>
        <c:amount>19.98</c:amount>
        <c:reconciliationID>718104</c:reconciliationID>
      </c:ccCaptureReply>
    </c:replyMessage>
  </soap:Body>
</soap:Envelope>`

const faultReplyXML = `<?xml version="1.0" encoding="utf-8"?>
<soap:Envelope xmlns:soap="http://schemas.xmlsoap.org/soap/envelope/">
  <soap:Body>
    <soap:Fault>
      <faultcode>soap:Client</faultcode>
      <faultstring>Security Data : UsernameToken authentication failed.</faultstring>
    </soap:Fault>
  </soap:Body>
</soap:Envelope>`

func TestParseResponse_CaptureReplyOnly(t *testing.T) {
	reply, err := ParseResponse([]byte(captureReplyXML))
	require.NoError(t, err)

	assert.Equal(t, "ORD-1", reply.MerchantReferenceCode)
	assert.Equal(t, "800456", reply.RequestID)
	assert.Equal(t, "ACCEPT", reply.Decision)
	assert.Equal(t, 100, reply.ReasonCode)
	assert.Equal(t, "AhjzbwSTE4", reply.RequestToken)

	require.NotNil(t, reply.CaptureReply)
	assert.True(t, decimal.RequireFromString("19.98").Equal(reply.CaptureReply.Amount))
	assert.Equal(t, 100, reply.CaptureReply.ReasonCode)
	assert.Equal(t, "718104", reply.CaptureReply.ReconciliationID)

	// every other block stays absent
	assert.Nil(t, reply.AuthReply)
	assert.Nil(t, reply.AuthReversalReply)
	assert.Nil(t, reply.VoidReply)
	assert.Nil(t, reply.CreditReply)
	assert.Nil(t, reply.SubscriptionCreateReply)
	assert.Nil(t, reply.SubscriptionRetrieveReply)
	assert.Nil(t, reply.SubscriptionDeleteReply)
	assert.Nil(t, reply.Fault)
}

func TestParseResponse_AuthReply(t *testing.T) {
	body := `<soap:Envelope xmlns:soap="http://schemas.xmlsoap.org/soap/envelope/">
  <soap:Body>
    <c:replyMessage xmlns:c="urn:schemas-cybersource-com:transaction-data-1.151">
      <c:merchantReferenceCode>ORD-2</c:merchantReferenceCode>
      <c:requestID>700123</c:requestID>
      <c:decision>ACCEPT</c:decision>
      <c:reasonCode>100</c:reasonCode>
      <c:ccAuthReply>
        <c:reasonCode>100</c:reasonCode>
        <c:amount>49.95</c:amount>
        <c:authorizationCode>831000</c:authorizationCode>
        <c:avsCode>Y</c:avsCode>
        <c:processorResponse>00</c:processorResponse>
      </c:ccAuthReply>
    </c:replyMessage>
  </soap:Body>
</soap:Envelope>`

	reply, err := ParseResponse([]byte(body))
	require.NoError(t, err)

	require.NotNil(t, reply.AuthReply)
	assert.Equal(t, "831000", reply.AuthReply.AuthorizationCode)
	assert.Equal(t, "Y", reply.AuthReply.AVSCode)
	assert.True(t, decimal.RequireFromString("49.95").Equal(reply.AuthReply.Amount))
}

func TestParseResponse_SubscriptionRetrieveReply(t *testing.T) {
	body := `<soap:Envelope xmlns:soap="http://schemas.xmlsoap.org/soap/envelope/">
  <soap:Body>
    <c:replyMessage xmlns:c="urn:schemas-cybersource-com:transaction-data-1.151">
      <c:decision>ACCEPT</c:decision>
      <c:reasonCode>100</c:reasonCode>
      <c:paySubscriptionRetrieveReply>
        <c:reasonCode>100</c:reasonCode>
        <c:subscriptionID>sub-123</c:subscriptionID>
        <c:cardAccountNumber>411111XXXXXX1111</c:cardAccountNumber>
        <c:cardExpirationMonth>12</c:cardExpirationMonth>
        <c:cardExpirationYear>2031</c:cardExpirationYear>
        <c:currency>USD</c:currency>
      </c:paySubscriptionRetrieveReply>
    </c:replyMessage>
  </soap:Body>
</soap:Envelope>`

	reply, err := ParseResponse([]byte(body))
	require.NoError(t, err)

	require.NotNil(t, reply.SubscriptionRetrieveReply)
	assert.Equal(t, "sub-123", reply.SubscriptionRetrieveReply.SubscriptionID)
	assert.Equal(t, 12, reply.SubscriptionRetrieveReply.CardExpirationMonth)
	assert.Equal(t, 2031, reply.SubscriptionRetrieveReply.CardExpirationYear)
}

func TestParseResponse_Fault(t *testing.T) {
	reply, err := ParseResponse([]byte(faultReplyXML))
	require.NoError(t, err)

	require.NotNil(t, reply.Fault)
	assert.Equal(t, "soap:Client", reply.Fault.Code)
	assert.Equal(t, "Security Data : UsernameToken authentication failed.", reply.Fault.Message)
	assert.Empty(t, reply.Decision)
}

func TestParseResponse_MalformedXML(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "truncated document", body: "<soap:Envelope><soap:Body>"},
		{name: "not xml at all", body: "502 Bad Gateway"},
		{name: "empty body", body: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseResponse([]byte(tt.body))

			require.Error(t, err)
			assert.True(t, domain.IsDomainError(err, domain.ErrorCodeResponseMalformed))
		})
	}
}

func TestParseResponse_CoercesMalformedNumbers(t *testing.T) {
	body := `<soap:Envelope xmlns:soap="http://schemas.xmlsoap.org/soap/envelope/">
  <soap:Body>
    <c:replyMessage xmlns:c="urn:schemas-cybersource-com:transaction-data-1.151">
      <c:decision>REJECT</c:decision>
      <c:reasonCode>not-a-number</c:reasonCode>
      <c:ccCaptureReply>
        <c:amount>garbage</c:amount>
      </c:ccCaptureReply>
    </c:replyMessage>
  </soap:Body>
</soap:Envelope>`

	reply, err := ParseResponse([]byte(body))
	require.NoError(t, err)

	assert.Equal(t, 0, reply.ReasonCode)
	require.NotNil(t, reply.CaptureReply)
	assert.True(t, reply.CaptureReply.Amount.IsZero())
}
