package engine

import (
	"context"

	"github.com/S-Moreira06/buisness-tycoon-sub000/internal/domain"
	"github.com/S-Moreira06/buisness-tycoon-sub000/internal/event"
	"github.com/S-Moreira06/buisness-tycoon-sub000/internal/logger"
)

// Hydrate replaces the live state with a saved snapshot, reconciling it
// against the current catalog and the progress accumulated since the save:
//
//   - resource scalars and owned instances come from the snapshot
//   - entries for ids no longer in the catalog are dropped; catalog entries
//     missing from the snapshot are seeded at defaults
//   - the achievement set is unioned so an unlock can never be lost
//   - lifetime stats merge by max per counter
//   - PlayerLevel and TotalPassiveIncome are recomputed, never trusted
//
// Hydrating the engine's own snapshot is an identity operation.
func (e *Engine) Hydrate(ctx context.Context, snap domain.Snapshot) error {
	if snap.SchemaVersion > domain.SnapshotSchemaVersion {
		logger.FromContext(ctx).Warn(LogMsgSnapshotRejected, "schema_version", snap.SchemaVersion)
		return domain.ErrSnapshotUnsupported
	}

	e.transition(ctx, func(s *domain.PlayerState, pending *[]event.Event) bool {
		in := snap.Player

		merged := e.initialState(maxResetCount(s.TimesReset, in.TimesReset))
		merged.Money = in.Money
		merged.Reputation = in.Reputation
		merged.Experience = in.Experience
		merged.CurrentCombo = in.CurrentCombo
		merged.LastClickAtMS = in.LastClickAtMS

		// Instances: snapshot wins for known ids, unknown ids are dropped.
		for id, b := range in.Businesses {
			if _, ok := e.cat.Business(id); ok {
				merged.Businesses[id] = b
			}
		}
		for id, u := range in.Upgrades {
			if _, ok := e.cat.Upgrade(id); ok {
				merged.Upgrades[id] = u
			}
		}
		for id, u := range in.ClickUpgrades {
			if _, ok := e.cat.ClickUpgrade(id); ok {
				merged.ClickUpgrades[id] = u
			}
		}

		for id := range s.UnlockedAchievements {
			merged.UnlockedAchievements[id] = true
		}
		for id, unlocked := range in.UnlockedAchievements {
			if !unlocked {
				continue
			}
			if _, ok := e.cat.Achievement(id); ok {
				merged.UnlockedAchievements[id] = true
			}
		}
		merged.SessionNewAchievements = append([]string(nil), s.SessionNewAchievements...)

		for id, run := range in.ActiveJobs {
			if _, ok := e.cat.Job(id); ok {
				merged.ActiveJobs[id] = run
			}
		}
		for id, last := range in.JobCooldowns {
			if _, ok := e.cat.Job(id); ok {
				merged.JobCooldowns[id] = last
			}
		}

		merged.Stats = s.Stats
		merged.Stats.MergeMax(in.Stats)
		merged.Stats.AchievementsUnlocked = len(merged.UnlockedAchievements)
		if merged.Stats.UniqueBusinessesOwned == 0 {
			for _, b := range merged.Businesses {
				if b.Owned {
					merged.Stats.UniqueBusinessesOwned++
				}
			}
		}

		if merged.Money > merged.Stats.MaxMoney {
			merged.Stats.MaxMoney = merged.Money
		}

		recomputePassiveIncome(&merged)
		merged.PlayerLevel = e.curve.LevelFromXP(merged.Experience)
		if merged.PlayerLevel > e.cat.Settings.MaxLevel {
			merged.PlayerLevel = e.cat.Settings.MaxLevel
		}

		*s = merged

		*pending = append(*pending, event.Event{
			Version: event.EventSchemaVersion,
			Type:    event.StateHydrated,
			Payload: nil,
		})
		return true
	})

	logger.FromContext(ctx).Info(LogMsgStateHydrated, "saved_at_ms", snap.SavedAtMS)
	return nil
}

func maxResetCount(a, b int) int {
	if a > b {
		return a
	}
	return b
}
