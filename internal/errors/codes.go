// Package errors provides structured error handling with i18n support.
package errors

import "google.golang.org/grpc/codes"

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown is the fallback when no specific code applies.
	CodeUnknown Code = "UNKNOWN"

	// Resolution errors
	CodeInvalidSyntax Code = "INVALID_SYNTAX"
	CodeInvalidAction Code = "INVALID_ACTION"
	CodeInvalidTarget Code = "INVALID_TARGET"
	CodeInvalidAmount Code = "INVALID_AMOUNT"

	// Routing errors
	CodeNotFound Code = "NOT_FOUND"

	// Workbench session errors
	CodeInvalidSession Code = "INVALID_SESSION"

	// Shell errors
	CodeShellNotFound Code = "SHELL_NOT_FOUND"

	// Combat movement errors
	CodeNotInCombat         Code = "NOT_IN_COMBAT"
	CodeDistanceNotPositive Code = "DISTANCE_NOT_POSITIVE"
	CodeAPNotPositive       Code = "AP_NOT_POSITIVE"
	CodeAPExceeded          Code = "AP_EXCEEDED"
	CodeInsufficientAP      Code = "INSUFFICIENT_AP"
	CodeOutOfBounds         Code = "OUT_OF_BOUNDS"
	CodePathBlocked         Code = "PATH_BLOCKED"
	CodeNoMovement          Code = "NO_MOVEMENT"
)

// GRPCCode maps domain codes to gRPC status codes.
func (c Code) GRPCCode() codes.Code {
	switch c {
	// The command itself was malformed.
	case CodeInvalidSyntax,
		CodeInvalidAction,
		CodeInvalidTarget,
		CodeInvalidAmount,
		CodeDistanceNotPositive,
		CodeAPNotPositive:
		return codes.InvalidArgument

	// The command was well-formed but the world state rejects it.
	case CodeInvalidSession,
		CodeNotInCombat,
		CodeAPExceeded,
		CodeInsufficientAP,
		CodeOutOfBounds,
		CodePathBlocked,
		CodeNoMovement:
		return codes.FailedPrecondition

	// The named resource does not exist.
	case CodeNotFound,
		CodeShellNotFound:
		return codes.NotFound

	default:
		return codes.Internal
	}
}
