// Package errors defines the error taxonomy shared by the gateway client.
// Every failure surfaced to callers is a *GatewayError with one of four
// kinds, so retry policy can be decided without string matching.
package errors

import (
	stderrors "errors"
	"fmt"
)

type Kind string

const (
	// KindValidation - caller-supplied data is malformed; never retry
	// without changing the input.
	KindValidation Kind = "VALIDATION"
	// KindGatewayRejected - the bank explicitly declined; retry only with a
	// materially different request.
	KindGatewayRejected Kind = "GATEWAY_REJECTED"
	// KindTransport - network/HTTP failure; safe to retry with backoff.
	KindTransport Kind = "TRANSPORT"
	// KindMalformedResponse - the gateway violated its own wire contract;
	// log loudly, do not retry automatically.
	KindMalformedResponse Kind = "MALFORMED_RESPONSE"
)

type GatewayError struct {
	Kind     Kind
	Message  string
	BankCode string
	Cause    error
}

func (e *GatewayError) Error() string {
	if e.BankCode != "" {
		return fmt.Sprintf("%s: %s (bank code %s)", e.Kind, e.Message, e.BankCode)
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *GatewayError) Unwrap() error {
	return e.Cause
}

func Validation(message string) *GatewayError {
	return &GatewayError{Kind: KindValidation, Message: message}
}

func Validationf(format string, args ...interface{}) *GatewayError {
	return &GatewayError{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

func GatewayRejected(message, bankCode string) *GatewayError {
	return &GatewayError{Kind: KindGatewayRejected, Message: message, BankCode: bankCode}
}

func Transport(message string, cause error) *GatewayError {
	return &GatewayError{Kind: KindTransport, Message: message, Cause: cause}
}

func MalformedResponse(message string, cause error) *GatewayError {
	return &GatewayError{Kind: KindMalformedResponse, Message: message, Cause: cause}
}

// KindOf reports the kind of err, or "" when err is not a *GatewayError.
func KindOf(err error) Kind {
	var ge *GatewayError
	if stderrors.As(err, &ge) {
		return ge.Kind
	}
	return ""
}

func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}
