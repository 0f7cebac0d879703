package engine

// Log messages
const (
	LogMsgEventPublishFailed = "failed to publish engine event"
	LogMsgGameReset          = "game state reset to defaults"
	LogMsgStateHydrated      = "player state hydrated from snapshot"
	LogMsgSnapshotRejected   = "snapshot rejected during hydration"
)
