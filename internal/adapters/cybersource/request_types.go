package cybersource

import "encoding/xml"

// Outbound SOAP document structs. Field order mirrors the order the
// transaction schema expects, since encoding/xml serializes struct fields
// in declaration order.

const (
	soapEnvelopeNS  = "http://schemas.xmlsoap.org/soap/envelope/"
	wsseNS          = "http://docs.oasis-open.org/wss/2004/01/oasis-200401-wss-wssecurity-secext-1.0.xsd"
	passwordTextNS  = "http://docs.oasis-open.org/wss/2004/01/oasis-200401-wss-username-token-profile-1.0#PasswordText"
	transactionNS   = "urn:schemas-cybersource-com:transaction-data-1.151"
	clientLibrary   = "cybersource-gateway-go"
	runServiceValue = "true"

	// paymentSolution codes for wallet authorizations
	paymentSolutionApplePay   = "001"
	paymentSolutionAndroidPay = "006"
)

type envelope struct {
	XMLName xml.Name `xml:"soapenv:Envelope"`
	SoapNS  string   `xml:"xmlns:soapenv,attr"`
	Header  soapHeader
	Body    soapBody
}

type soapHeader struct {
	XMLName  xml.Name `xml:"soapenv:Header"`
	Security wsseSecurity
}

type wsseSecurity struct {
	XMLName        xml.Name `xml:"wsse:Security"`
	WsseNS         string   `xml:"xmlns:wsse,attr"`
	MustUnderstand string   `xml:"soapenv:mustUnderstand,attr"`
	UsernameToken  usernameToken
}

type usernameToken struct {
	XMLName  xml.Name `xml:"wsse:UsernameToken"`
	Username string   `xml:"wsse:Username"`
	Password wssePassword
}

type wssePassword struct {
	XMLName xml.Name `xml:"wsse:Password"`
	Type    string   `xml:"Type,attr"`
	Value   string   `xml:",chardata"`
}

type soapBody struct {
	XMLName xml.Name `xml:"soapenv:Body"`
	Request requestMessage
}

type requestMessage struct {
	XMLName xml.Name `xml:"requestMessage"`
	NS      string   `xml:"xmlns,attr"`

	MerchantID            string `xml:"merchantID"`
	MerchantReferenceCode string `xml:"merchantReferenceCode"`
	ClientLibrary         string `xml:"clientLibrary,omitempty"`
	ClientLibraryVersion  string `xml:"clientLibraryVersion,omitempty"`

	BillTo         *billTo         `xml:"billTo,omitempty"`
	Items          []item          `xml:"item,omitempty"`
	PurchaseTotals *purchaseTotals `xml:"purchaseTotals,omitempty"`
	Card           *card           `xml:"card,omitempty"`

	EncryptedPayment *encryptedPayment `xml:"encryptedPayment,omitempty"`

	Comments string `xml:"comments,omitempty"`

	RecurringSubscriptionInfo *recurringSubscriptionInfo `xml:"recurringSubscriptionInfo,omitempty"`

	CCAuthService         *ccAuthService         `xml:"ccAuthService,omitempty"`
	CCCaptureService      *ccCaptureService      `xml:"ccCaptureService,omitempty"`
	CCCreditService       *ccCreditService       `xml:"ccCreditService,omitempty"`
	CCAuthReversalService *ccAuthReversalService `xml:"ccAuthReversalService,omitempty"`
	VoidService           *voidService           `xml:"voidService,omitempty"`

	PaySubscriptionCreateService   *runService `xml:"paySubscriptionCreateService,omitempty"`
	PaySubscriptionRetrieveService *runService `xml:"paySubscriptionRetrieveService,omitempty"`
	PaySubscriptionDeleteService   *runService `xml:"paySubscriptionDeleteService,omitempty"`

	PaymentSolution string `xml:"paymentSolution,omitempty"`
}

type billTo struct {
	FirstName  string `xml:"firstName,omitempty"`
	LastName   string `xml:"lastName,omitempty"`
	Street1    string `xml:"street1,omitempty"`
	City       string `xml:"city,omitempty"`
	State      string `xml:"state,omitempty"`
	PostalCode string `xml:"postalCode,omitempty"`
	Country    string `xml:"country,omitempty"`
	Email      string `xml:"email,omitempty"`
}

type item struct {
	ID        string `xml:"id,attr"`
	UnitPrice string `xml:"unitPrice"`
	Quantity  int    `xml:"quantity"`
}

type purchaseTotals struct {
	Currency         string `xml:"currency"`
	GrandTotalAmount string `xml:"grandTotalAmount,omitempty"`
}

type card struct {
	AccountNumber   string `xml:"accountNumber,omitempty"`
	ExpirationMonth string `xml:"expirationMonth,omitempty"`
	ExpirationYear  string `xml:"expirationYear,omitempty"`
	CardType        string `xml:"cardType,omitempty"`
}

type encryptedPayment struct {
	Data string `xml:"data"`
}

type recurringSubscriptionInfo struct {
	SubscriptionID string `xml:"subscriptionID,omitempty"`
	Frequency      string `xml:"frequency,omitempty"`
}

type runService struct {
	Run string `xml:"run,attr"`
}

type ccAuthService struct {
	Run string `xml:"run,attr"`
}

type ccCaptureService struct {
	Run           string `xml:"run,attr"`
	AuthRequestID string `xml:"authRequestID,omitempty"`
}

type ccCreditService struct {
	Run              string `xml:"run,attr"`
	CaptureRequestID string `xml:"captureRequestID,omitempty"`
}

type ccAuthReversalService struct {
	Run           string `xml:"run,attr"`
	AuthRequestID string `xml:"authRequestID,omitempty"`
}

type voidService struct {
	Run           string `xml:"run,attr"`
	VoidRequestID string `xml:"voidRequestID,omitempty"`
}
