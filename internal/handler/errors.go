package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgUnknownError          = "Unknown error"
	ErrMsgGenericServerError    = "Something went wrong"

	// Catalog lookup error messages
	ErrMsgBusinessNotFound    = "Business not found"
	ErrMsgUpgradeNotFound     = "Upgrade not found"
	ErrMsgJobNotFound         = "Job not found"
	ErrMsgAchievementNotFound = "Achievement not found"

	// No-op explanation surfaced alongside applied=false
	ErrMsgNotApplied = "Action not applied"

	// Persistence error messages
	ErrMsgSnapshotNotFound    = "No save found for that slot"
	ErrMsgSnapshotUnsupported = "Save was written by a newer version"
	ErrMsgSaveFailed          = "Failed to save game"
	ErrMsgLoadFailed          = "Failed to load game"
)
