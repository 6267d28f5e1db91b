package errors

import (
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/status"
)

// Domain identifies this module in structured error details.
const Domain = "github.com/industry-digital/flux-game-sub010"

// Error carries a machine-readable code alongside the internal message,
// optional metadata for message templating, and an optional wrapped cause.
// The message is for logs and telemetry; user-facing text comes from the
// i18n catalog keyed by Code.
type Error struct {
	Code     Code
	Message  string
	Metadata map[string]string
	Cause    error
}

func (e *Error) Error() string { return e.Message }

// Unwrap exposes the wrapped cause to errors.Is/As chains.
func (e *Error) Unwrap() error { return e.Cause }

// Is matches by code, so sentinel comparisons work across instances.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && e.Code == t.Code
}

// New builds an error from a code and an internal message.
func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// WithMetadata builds an error whose metadata feeds message templates.
func WithMetadata(code Code, message string, metadata map[string]string) *Error {
	return &Error{Code: code, Message: message, Metadata: metadata}
}

// Wrap builds an error around an underlying cause.
func Wrap(code Code, message string, cause error) *Error {
	return &Error{Code: code, Message: message, Cause: cause}
}

// ToGRPCStatus renders the error as a gRPC status. The status message keeps
// the internal text; the localized detail carries the user-facing message.
func (e *Error) ToGRPCStatus(locale, localized string) error {
	st := status.New(e.Code.GRPCCode(), e.Message)

	info := &errdetails.ErrorInfo{
		Reason:   string(e.Code),
		Domain:   Domain,
		Metadata: e.Metadata,
	}
	msg := &errdetails.LocalizedMessage{Locale: locale, Message: localized}

	detailed, err := st.WithDetails(info, msg)
	if err != nil {
		// Details are best-effort; the bare status still carries the code.
		return st.Err()
	}
	return detailed.Err()
}
