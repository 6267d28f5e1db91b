package errors

import (
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/industry-digital/flux-game-sub010/internal/errors/i18n"
)

// DefaultLocale is the catalog locale assumed when the caller does not
// negotiate one.
const DefaultLocale = "en-US"

// HandleError turns any error into a gRPC status error at a host boundary.
// Domain errors pick up a localized user message from the i18n catalog;
// anything else maps to Internal with a generic message so internals never
// leak to players.
func HandleError(err error, locale string) error {
	if err == nil {
		return nil
	}

	var domainErr *Error
	if !errors.As(err, &domainErr) {
		return status.Error(codes.Internal, "an unexpected error occurred")
	}

	if locale == "" {
		locale = DefaultLocale
	}
	catalog := i18n.GetCatalog(locale)
	message := catalog.Format(string(domainErr.Code), domainErr.Metadata)
	return domainErr.ToGRPCStatus(catalog.Locale(), message)
}

// GetCode reads the domain code off an error chain. Chains without a
// domain error report CodeUnknown.
func GetCode(err error) Code {
	var domainErr *Error
	if !errors.As(err, &domainErr) {
		return CodeUnknown
	}
	return domainErr.Code
}

// IsCode reports whether the error chain carries the given code.
func IsCode(err error, code Code) bool {
	return GetCode(err) == code
}

// GetMetadata reads template metadata off an error chain, nil when absent.
func GetMetadata(err error) map[string]string {
	var domainErr *Error
	if !errors.As(err, &domainErr) {
		return nil
	}
	return domainErr.Metadata
}
