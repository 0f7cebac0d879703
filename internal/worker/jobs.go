package worker

import (
	"context"

	"github.com/S-Moreira06/buisness-tycoon-sub000/internal/engine"
	"github.com/S-Moreira06/buisness-tycoon-sub000/internal/logger"
	"github.com/S-Moreira06/buisness-tycoon-sub000/internal/metrics"
	"github.com/S-Moreira06/buisness-tycoon-sub000/internal/store"
)

// PassiveIncomeJob credits one tick of passive income.
type PassiveIncomeJob struct {
	Engine *engine.Engine
}

func (j *PassiveIncomeJob) Process(ctx context.Context) error {
	j.Engine.AddPassiveIncome(ctx)
	return nil
}

// PlaytimeJob advances the play-time counter by one second. Scheduled at a
// one-second interval alongside the income tick.
type PlaytimeJob struct {
	Engine *engine.Engine
}

func (j *PlaytimeJob) Process(ctx context.Context) error {
	j.Engine.TickPlayTime(ctx)
	return nil
}

// AutosaveJob snapshots the engine and writes it to the save store.
type AutosaveJob struct {
	Engine *engine.Engine
	Store  *store.Store
	Slot   string
}

func (j *AutosaveJob) Process(ctx context.Context) error {
	snap := j.Engine.Snapshot()
	if err := j.Store.SaveSnapshot(ctx, j.Slot, snap); err != nil {
		logger.FromContext(ctx).Error(LogMsgAutosaveFailed, "slot", j.Slot, "error", err)
		return err
	}
	metrics.SnapshotsSaved.Inc()
	logger.FromContext(ctx).Debug(LogMsgAutosaveCompleted, "slot", j.Slot, "saved_at_ms", snap.SavedAtMS)
	return nil
}
