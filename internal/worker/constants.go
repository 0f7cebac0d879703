package worker

// LogMsgWorkerJobFailed is logged when a worker fails to process a job
const LogMsgWorkerJobFailed = "Worker job failed"

// Log messages for the engine tick jobs
const (
	LogMsgAutosaveFailed    = "Autosave failed"
	LogMsgAutosaveCompleted = "Autosave completed"
)
