package domain

import (
	"errors"
	"fmt"
)

// ErrorCode represents a machine-readable error code
type ErrorCode string

const (
	// Request validation errors (REQUEST_*)
	ErrorCodeOrderIDInvalid    ErrorCode = "REQUEST_ORDER_ID_INVALID"
	ErrorCodeRequestIDRequired ErrorCode = "REQUEST_PRIOR_ID_REQUIRED"

	// Wallet payload errors (WALLET_*)
	ErrorCodeWalletInvalidEncoding ErrorCode = "WALLET_INVALID_ENCODING"
	ErrorCodeWalletInvalidPayload  ErrorCode = "WALLET_INVALID_PAYLOAD"
	ErrorCodeWalletTypeMismatch    ErrorCode = "WALLET_TYPE_MISMATCH"

	// Card errors (CARD_*)
	ErrorCodeCardTypeNotFound ErrorCode = "CARD_TYPE_NOT_FOUND"

	// Merchant configuration errors (MERCHANT_*)
	ErrorCodeMerchantConfigMissing ErrorCode = "MERCHANT_CONFIG_MISSING"

	// Gateway errors (GATEWAY_*)
	ErrorCodeConnectionFailed  ErrorCode = "GATEWAY_CONNECTION_FAILED"
	ErrorCodeGatewayTimeout    ErrorCode = "GATEWAY_TIMEOUT"
	ErrorCodeResponseMalformed ErrorCode = "GATEWAY_RESPONSE_MALFORMED"
	ErrorCodeGatewayRejected   ErrorCode = "GATEWAY_REJECTED"
	ErrorCodeGatewayFault      ErrorCode = "GATEWAY_FAULT"
	ErrorCodeUnknownResponse   ErrorCode = "GATEWAY_UNKNOWN_RESPONSE"
)

// DomainError represents a structured domain error with error code and context
type DomainError struct {
	Err     error
	Details map[string]interface{}
	Code    ErrorCode
	Message string
}

// Error implements the error interface
func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error for errors.Is/As support
func (e *DomainError) Unwrap() error {
	return e.Err
}

// WithDetail adds a detail field to the error
func (e *DomainError) WithDetail(key string, value interface{}) *DomainError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// NewDomainError creates a new domain error
func NewDomainError(code ErrorCode, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// WrapError wraps an existing error with a domain error code
func WrapError(code ErrorCode, message string, err error) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Err:     err,
	}
}

// IsDomainError checks if an error is a DomainError with the given code
func IsDomainError(err error, code ErrorCode) bool {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Code == code
	}
	return false
}

// GetErrorCode extracts the error code from an error, returns empty string if not a DomainError
func GetErrorCode(err error) ErrorCode {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Code
	}
	return ""
}

// IsTransportError checks if an error occurred before any gateway response was read
func IsTransportError(err error) bool {
	code := GetErrorCode(err)
	return code == ErrorCodeConnectionFailed || code == ErrorCodeGatewayTimeout
}

// IsValidationError checks if an error was raised before the request left the process
func IsValidationError(err error) bool {
	code := GetErrorCode(err)
	return code == ErrorCodeOrderIDInvalid ||
		code == ErrorCodeRequestIDRequired ||
		code == ErrorCodeWalletInvalidEncoding ||
		code == ErrorCodeWalletInvalidPayload ||
		code == ErrorCodeWalletTypeMismatch ||
		code == ErrorCodeCardTypeNotFound ||
		code == ErrorCodeMerchantConfigMissing
}

// Structured error instances
var (
	ErrOrderIDInvalid    = NewDomainError(ErrorCodeOrderIDInvalid, "merchant reference code must be a non-empty string")
	ErrRequestIDRequired = NewDomainError(ErrorCodeRequestIDRequired, "prior request id is required for follow-on operations")

	ErrWalletInvalidEncoding = NewDomainError(ErrorCodeWalletInvalidEncoding, "wallet payload is not valid base64")
	ErrWalletInvalidPayload  = NewDomainError(ErrorCodeWalletInvalidPayload, "wallet payload is not valid JSON")
	ErrWalletTypeMismatch    = NewDomainError(ErrorCodeWalletTypeMismatch, "wallet payload does not match the requested payment scheme")

	ErrCardTypeNotFound = NewDomainError(ErrorCodeCardTypeNotFound, "card brand is not supported by the gateway")

	ErrMerchantConfigMissing = NewDomainError(ErrorCodeMerchantConfigMissing, "merchant profile is not configured")

	ErrConnectionFailed  = NewDomainError(ErrorCodeConnectionFailed, "failed to reach the payment gateway")
	ErrGatewayTimeout    = NewDomainError(ErrorCodeGatewayTimeout, "payment gateway request timed out")
	ErrResponseMalformed = NewDomainError(ErrorCodeResponseMalformed, "payment gateway returned malformed XML")
	ErrUnknownResponse   = NewDomainError(ErrorCodeUnknownResponse, "payment gateway response carried no decision or fault")
)
