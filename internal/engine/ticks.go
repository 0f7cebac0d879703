package engine

import (
	"context"

	"github.com/S-Moreira06/buisness-tycoon-sub000/internal/domain"
	"github.com/S-Moreira06/buisness-tycoon-sub000/internal/event"
	"github.com/S-Moreira06/buisness-tycoon-sub000/internal/metrics"
)

// AddPassiveIncome credits one tick of aggregate passive income. Called by
// the scheduler once per tick interval; a zero aggregate still counts as an
// applied transition so subscribers see a consistent heartbeat.
func (e *Engine) AddPassiveIncome(ctx context.Context) float64 {
	var gained float64
	e.transition(ctx, func(s *domain.PlayerState, pending *[]event.Event) bool {
		gained = s.TotalPassiveIncome
		if gained > 0 {
			earnMoney(s, gained, &s.Stats.MoneyFromPassive)
		}
		return true
	})

	metrics.PassiveTicks.Inc()
	metrics.MoneyEarned.Add(gained)
	return gained
}

// TickPlayTime advances the play-time counter by one second.
func (e *Engine) TickPlayTime(ctx context.Context) {
	e.transition(ctx, func(s *domain.PlayerState, pending *[]event.Event) bool {
		s.Stats.PlayTimeSeconds++
		return true
	})
}
