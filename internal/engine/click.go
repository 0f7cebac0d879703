package engine

import (
	"context"

	"github.com/S-Moreira06/buisness-tycoon-sub000/internal/domain"
	"github.com/S-Moreira06/buisness-tycoon-sub000/internal/event"
	"github.com/S-Moreira06/buisness-tycoon-sub000/internal/metrics"
	"github.com/S-Moreira06/buisness-tycoon-sub000/internal/power"
)

// ClickOutcome reports what a single tap produced.
type ClickOutcome struct {
	MoneyGained      float64 `json:"money_gained"`
	Critical         bool    `json:"critical"`
	XPGained         float64 `json:"xp_gained"`
	ReputationGained float64 `json:"reputation_gained"`
	Combo            int     `json:"combo"`
}

// Click processes one manual tap: derives the current click power, rolls for
// a critical hit, credits money/XP/reputation and advances the combo
// counter. A tap always applies.
func (e *Engine) Click(ctx context.Context) ClickOutcome {
	var out ClickOutcome

	e.transition(ctx, func(s *domain.PlayerState, pending *[]event.Event) bool {
		p := power.Compute(*s, e.cat)

		gain := p.MoneyPerClick
		crit := e.rnd() < p.CritChance
		if crit {
			gain *= p.CritMultiplier
		}

		nowMS := e.now().UnixMilli()
		if s.LastClickAtMS > 0 && nowMS-s.LastClickAtMS <= e.cat.Settings.ComboWindowMS {
			s.CurrentCombo++
		} else {
			s.CurrentCombo = 1
		}
		s.LastClickAtMS = nowMS
		if s.CurrentCombo > s.Stats.MaxCombo {
			s.Stats.MaxCombo = s.CurrentCombo
		}

		earnMoney(s, gain, &s.Stats.MoneyFromClicks)
		s.Reputation += e.cat.Settings.ReputationPerClick
		e.gainXP(s, e.cat.Settings.XPPerClick, pending)

		s.Stats.TotalClicks++
		if crit {
			s.Stats.CriticalClicks++
			*pending = append(*pending, event.Event{
				Version: event.EventSchemaVersion,
				Type:    event.ClickCritical,
				Payload: event.ClickCriticalPayloadV1{
					Gain:       gain,
					Multiplier: p.CritMultiplier,
					Combo:      s.CurrentCombo,
				},
			})
		}

		out = ClickOutcome{
			MoneyGained:      gain,
			Critical:         crit,
			XPGained:         e.cat.Settings.XPPerClick,
			ReputationGained: e.cat.Settings.ReputationPerClick,
			Combo:            s.CurrentCombo,
		}
		return true
	})

	metrics.ClicksTotal.Inc()
	if out.Critical {
		metrics.CriticalClicksTotal.Inc()
	}
	metrics.MoneyEarned.Add(out.MoneyGained)

	return out
}

// ApplyExternalGain credits a reward from outside the core loops, e.g. a
// promotional grant. Negative components are rejected.
func (e *Engine) ApplyExternalGain(ctx context.Context, reward domain.Reward) error {
	if reward.Money < 0 || reward.Reputation < 0 || reward.XP < 0 {
		return domain.ErrInvalidInput
	}

	e.transition(ctx, func(s *domain.PlayerState, pending *[]event.Event) bool {
		e.applyReward(s, reward, pending)
		return true
	})

	metrics.MoneyEarned.Add(reward.Money)
	return nil
}
