package engine

import (
	"context"

	"github.com/S-Moreira06/buisness-tycoon-sub000/internal/domain"
	"github.com/S-Moreira06/buisness-tycoon-sub000/internal/event"
	"github.com/S-Moreira06/buisness-tycoon-sub000/internal/metrics"
)

// UnlockAchievement marks an achievement unlocked exactly once and credits
// its reward. Re-unlocking is a no-op, which makes the achievement monitor
// idempotent by construction.
func (e *Engine) UnlockAchievement(ctx context.Context, id string, reward domain.Reward) (bool, error) {
	spec, ok := e.cat.Achievement(id)
	if !ok {
		return false, domain.ErrUnknownAchievement
	}

	applied := e.transition(ctx, func(s *domain.PlayerState, pending *[]event.Event) bool {
		if s.UnlockedAchievements[id] {
			return false
		}

		s.UnlockedAchievements[id] = true
		s.SessionNewAchievements = append(s.SessionNewAchievements, id)
		s.Stats.AchievementsUnlocked = len(s.UnlockedAchievements)
		if s.Stats.FirstAchievementAtMS == 0 {
			s.Stats.FirstAchievementAtMS = e.now().UnixMilli()
		}

		e.applyReward(s, reward, pending)

		*pending = append(*pending, event.NewAchievementUnlockedEvent(id, spec.Title, spec.Icon, reward))
		return true
	})

	if applied {
		metrics.AchievementsUnlocked.Inc()
	}
	return applied, nil
}

// ConsumeNewAchievements drains the session notification queue, returning
// the unlocked ids in unlock order. A second call returns nil until new
// unlocks happen.
func (e *Engine) ConsumeNewAchievements(ctx context.Context) []string {
	var drained []string
	e.transition(ctx, func(s *domain.PlayerState, pending *[]event.Event) bool {
		if len(s.SessionNewAchievements) == 0 {
			return false
		}
		drained = s.SessionNewAchievements
		s.SessionNewAchievements = nil
		return true
	})
	return drained
}
