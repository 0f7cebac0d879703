package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Catalog errors
	ErrMsgUnknownBusiness    = "unknown business"
	ErrMsgUnknownUpgrade     = "unknown upgrade"
	ErrMsgUnknownJob         = "unknown job"
	ErrMsgUnknownAchievement = "unknown achievement"
	ErrMsgInvalidCatalog     = "invalid catalog"

	// Snapshot errors
	ErrMsgSnapshotNotFound    = "snapshot not found"
	ErrMsgSnapshotUnsupported = "unsupported snapshot schema version"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors.
// Reducer precondition failures (insufficient funds, already purchased, job
// on cooldown, ...) are deliberately NOT errors: those actions are total and
// report a no-op by returning applied=false. These sentinels cover genuinely
// exceptional paths: unknown catalog ids, store I/O, malformed input.
var (
	ErrUnknownBusiness    = errors.New(ErrMsgUnknownBusiness)
	ErrUnknownUpgrade     = errors.New(ErrMsgUnknownUpgrade)
	ErrUnknownJob         = errors.New(ErrMsgUnknownJob)
	ErrUnknownAchievement = errors.New(ErrMsgUnknownAchievement)
	ErrInvalidCatalog     = errors.New(ErrMsgInvalidCatalog)

	ErrSnapshotNotFound    = errors.New(ErrMsgSnapshotNotFound)
	ErrSnapshotUnsupported = errors.New(ErrMsgSnapshotUnsupported)

	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)
