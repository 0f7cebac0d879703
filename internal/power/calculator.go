// Package power derives the current tap value from base click constants and
// every purchased click upgrade.
package power

import (
	"github.com/S-Moreira06/buisness-tycoon-sub000/internal/catalog"
	"github.com/S-Moreira06/buisness-tycoon-sub000/internal/domain"
)

// ClickPower is the fully derived tap profile for a state.
type ClickPower struct {
	MoneyPerClick  float64 `json:"money_per_click"`
	CritChance     float64 `json:"crit_chance"`
	CritMultiplier float64 `json:"crit_multiplier"`
}

// Compute applies purchased click upgrades to the base click constants.
// Upgrades apply in catalog file order; this ordering is load-bearing
// because synergy and scaling effects multiply the running money-per-click,
// not the original base.
func Compute(state domain.PlayerState, cat *catalog.Catalog) ClickPower {
	p := ClickPower{
		MoneyPerClick:  cat.Settings.Click.MoneyPerClick,
		CritChance:     cat.Settings.Click.CritChance,
		CritMultiplier: cat.Settings.Click.CritMultiplier,
	}

	for _, u := range cat.ClickUpgrades {
		inst, ok := state.ClickUpgrades[u.ID]
		if !ok || !inst.Purchased {
			continue
		}
		applyEffect(&p, u, state)
	}

	if p.CritChance > 1 {
		p.CritChance = 1
	}
	return p
}

func applyEffect(p *ClickPower, u catalog.ClickUpgradeSpec, state domain.PlayerState) {
	switch u.Effect {
	case catalog.EffectBaseMoney:
		p.MoneyPerClick += u.EffectValue
	case catalog.EffectCritChance:
		p.CritChance += u.EffectValue
	case catalog.EffectCritMultiplier:
		p.CritMultiplier += u.EffectValue
	case catalog.EffectBusinessSynergy:
		// Only businesses_owned scaling exists for synergy; the loader
		// rejects anything else.
		p.MoneyPerClick *= 1 + float64(state.TotalBusinessUnits())*u.EffectValue
	case catalog.EffectScaling:
		switch u.Scaling {
		case catalog.ScalingReputation:
			p.MoneyPerClick *= 1 + state.Reputation*u.ScalingFactor
		case catalog.ScalingTotalIncome:
			p.MoneyPerClick += state.TotalPassiveIncome * u.ScalingFactor
		case catalog.ScalingNone, catalog.ScalingBusinessesOwned:
			// Rejected at load time.
		}
	case catalog.EffectPassiveBoost:
		p.MoneyPerClick += state.TotalPassiveIncome * u.ScalingFactor
	}
}
