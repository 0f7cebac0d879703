package achievement

// Log messages
const (
	LogMsgEvaluationPanic = "achievement evaluation panicked"
	LogMsgUnlockFailed    = "failed to unlock achievement"
)
