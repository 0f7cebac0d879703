// Package unlock evaluates typed unlock conditions against player state and
// reports fractional progress for UI consumption.
package unlock

import (
	"github.com/S-Moreira06/buisness-tycoon-sub000/internal/catalog"
	"github.com/S-Moreira06/buisness-tycoon-sub000/internal/domain"
)

// ConditionProgress is a human-readable progress record for one condition.
type ConditionProgress struct {
	Label    string  `json:"label"`
	Current  float64 `json:"current"`
	Required float64 `json:"required"`
	Progress float64 `json:"progress"`
}

// Result is the outcome of evaluating a condition list.
type Result struct {
	Unlocked bool                `json:"unlocked"`
	Progress float64             `json:"progress"`
	Missing  []ConditionProgress `json:"missing,omitempty"`
}

// Evaluate checks every condition against state. A condition is satisfied
// iff current >= required. Progress averages each condition's own capped
// ratio over ALL conditions (not only unmet ones) so the percentage rises
// smoothly. An empty list is always unlocked with progress 1.
func Evaluate(state domain.PlayerState, cat *catalog.Catalog, conditions []catalog.Condition) Result {
	if len(conditions) == 0 {
		return Result{Unlocked: true, Progress: 1}
	}

	res := Result{Unlocked: true}
	sum := 0.0
	for _, cond := range conditions {
		current := currentValue(state, cond)
		ratio := 1.0
		if cond.Required > 0 {
			ratio = current / cond.Required
			if ratio > 1 {
				ratio = 1
			}
		}
		sum += ratio

		if current < cond.Required {
			res.Unlocked = false
			res.Missing = append(res.Missing, ConditionProgress{
				Label:    conditionLabel(cat, cond),
				Current:  current,
				Required: cond.Required,
				Progress: ratio,
			})
		}
	}

	if res.Unlocked {
		res.Progress = 1
		return res
	}
	res.Progress = sum / float64(len(conditions))
	return res
}

// currentValue reads the state value a condition compares against. The
// switch is exhaustive over catalog.ConditionType.
func currentValue(state domain.PlayerState, cond catalog.Condition) float64 {
	switch cond.Type {
	case catalog.CondBusinessQuantity:
		if cond.Target == "" {
			return float64(state.TotalBusinessUnits())
		}
		return float64(state.Businesses[cond.Target].Quantity)
	case catalog.CondBusinessLevel:
		return float64(state.Businesses[cond.Target].Level)
	case catalog.CondUpgradesPurchased:
		return float64(state.UpgradesPurchasedCount())
	case catalog.CondPassiveIncome:
		return state.TotalPassiveIncome
	case catalog.CondPlayerLevel:
		return float64(state.PlayerLevel)
	case catalog.CondTotalClicks:
		return float64(state.Stats.TotalClicks)
	case catalog.CondComboReached:
		return float64(state.Stats.MaxCombo)
	}
	return 0
}

func conditionLabel(cat *catalog.Catalog, cond catalog.Condition) string {
	if cond.Label != "" {
		return cond.Label
	}
	switch cond.Type {
	case catalog.CondBusinessQuantity:
		if b, ok := cat.Business(cond.Target); ok {
			return b.Name + " owned"
		}
		return "Businesses owned"
	case catalog.CondBusinessLevel:
		if b, ok := cat.Business(cond.Target); ok {
			return b.Name + " level"
		}
		return "Business level"
	case catalog.CondUpgradesPurchased:
		return "Upgrades purchased"
	case catalog.CondPassiveIncome:
		return "Passive income"
	case catalog.CondPlayerLevel:
		return "Player level"
	case catalog.CondTotalClicks:
		return "Total clicks"
	case catalog.CondComboReached:
		return "Best combo"
	}
	return string(cond.Type)
}
