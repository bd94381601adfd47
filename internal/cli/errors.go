package cli

// Error codes for structured error responses.
// These codes are stable and can be relied upon by scripts.
const (
	// Ruleset errors
	ErrRulesetNotFound = "RULESET_NOT_FOUND"
	ErrRulesetInvalid  = "RULESET_INVALID"

	// Settings errors
	ErrSettingsInvalid = "SETTINGS_INVALID"

	// File errors
	ErrFileReadError  = "FILE_READ_ERROR"
	ErrFileWriteError = "FILE_WRITE_ERROR"

	// Input errors
	ErrInvalidInput    = "INVALID_INPUT"
	ErrMissingArgument = "MISSING_ARGUMENT"

	// General errors
	ErrInternal = "INTERNAL_ERROR"
)

// Warning codes for non-fatal issues.
const (
	WarnJournalFailed = "JOURNAL_WRITE_FAILED"
	WarnNoMoveActions = "NO_MOVE_ACTIONS"
	WarnNoLocations   = "NO_LOCATIONS"
)
