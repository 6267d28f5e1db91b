package i18n

// Error codes must match the codes defined in internal/errors/codes.go.
// These are duplicated as strings to avoid an import cycle.
const (
	CodeInvalidSyntax       = "INVALID_SYNTAX"
	CodeInvalidAction       = "INVALID_ACTION"
	CodeInvalidTarget       = "INVALID_TARGET"
	CodeInvalidAmount       = "INVALID_AMOUNT"
	CodeNotFound            = "NOT_FOUND"
	CodeInvalidSession      = "INVALID_SESSION"
	CodeShellNotFound       = "SHELL_NOT_FOUND"
	CodeNotInCombat         = "NOT_IN_COMBAT"
	CodeDistanceNotPositive = "DISTANCE_NOT_POSITIVE"
	CodeAPNotPositive       = "AP_NOT_POSITIVE"
	CodeAPExceeded          = "AP_EXCEEDED"
	CodeInsufficientAP      = "INSUFFICIENT_AP"
	CodeOutOfBounds         = "OUT_OF_BOUNDS"
	CodePathBlocked         = "PATH_BLOCKED"
	CodeNoMovement          = "NO_MOVEMENT"
)

var enUSCatalog = &Catalog{
	locale: "en-US",
	messages: map[Code]string{
		// Resolution errors
		CodeInvalidSyntax: "Malformed command syntax",
		CodeInvalidAction: "Unknown action {{.Action}}",
		CodeInvalidTarget: "Invalid target {{.Target}}",
		CodeInvalidAmount: "Invalid amount {{.Amount}}",

		// Routing errors
		CodeNotFound: "No command matched that input",

		// Workbench session errors
		CodeInvalidSession: "No active workbench session",

		// Shell errors
		CodeShellNotFound: "Shell {{.Shell}} not found",

		// Combat movement errors
		CodeNotInCombat:         "You are not in combat",
		CodeDistanceNotPositive: "Distance must be positive",
		CodeAPNotPositive:       "AP must be positive",
		CodeAPExceeded:          "Requested AP {{.Need}} exceeds current AP {{.Have}}",
		CodeInsufficientAP:      "Insufficient AP: have {{.Have}}, need {{.Need}}",
		CodeOutOfBounds:         "Destination {{.Target}} is outside the battlefield",
		CodePathBlocked:         "Path is blocked by another combatant",
		CodeNoMovement:          "No movement possible",
	},
}
