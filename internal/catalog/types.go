package catalog

import "github.com/S-Moreira06/buisness-tycoon-sub000/internal/domain"

// EffectType enumerates click-upgrade effects. The set is closed: every
// evaluation site switches exhaustively so an unhandled variant is a
// compile-time gap, not a silently ignored case.
type EffectType string

const (
	EffectBaseMoney       EffectType = "base_money"
	EffectCritChance      EffectType = "crit_chance"
	EffectCritMultiplier  EffectType = "crit_multiplier"
	EffectBusinessSynergy EffectType = "business_synergy"
	EffectScaling         EffectType = "scaling"
	EffectPassiveBoost    EffectType = "passive_boost"
)

// ScalingType selects the state value a scaling effect reads.
type ScalingType string

const (
	ScalingNone            ScalingType = ""
	ScalingBusinessesOwned ScalingType = "businesses_owned"
	ScalingReputation      ScalingType = "reputation"
	ScalingTotalIncome     ScalingType = "total_income"
)

// ClickBase is the baseline tap power before any purchased upgrades.
type ClickBase struct {
	MoneyPerClick  float64 `json:"money_per_click" validate:"gt=0"`
	CritChance     float64 `json:"crit_chance" validate:"gte=0,lte=1"`
	CritMultiplier float64 `json:"crit_multiplier" validate:"gte=1"`
}

// Settings holds the engine tuning constants shipped with the catalogs.
type Settings struct {
	StartingMoney      float64   `json:"starting_money" validate:"gte=0"`
	StartingReputation float64   `json:"starting_reputation" validate:"gte=0"`
	BaseXP             float64   `json:"base_xp" validate:"gt=0"`
	XPGrowth           float64   `json:"xp_growth" validate:"gt=1"`
	MaxLevel           int       `json:"max_level" validate:"gt=0"`
	XPPerClick         float64   `json:"xp_per_click" validate:"gte=0"`
	ReputationPerClick float64   `json:"reputation_per_click" validate:"gte=0"`
	LevelBoostFraction float64   `json:"level_boost_fraction" validate:"gt=0"`
	NewBusinessXPBonus float64   `json:"new_business_xp_bonus" validate:"gte=0"`
	ComboWindowMS      int64     `json:"combo_window_ms" validate:"gt=0"`
	Click              ClickBase `json:"click"`
}

// BusinessSpec describes a purchasable passive-income asset.
// UnlockLevel is optional; nil means available from level 1.
type BusinessSpec struct {
	ID             string  `json:"id" validate:"required"`
	Name           string  `json:"name"`
	BaseCost       float64 `json:"base_cost" validate:"gt=0"`
	CostMultiplier float64 `json:"cost_multiplier" validate:"gt=1"`
	BaseIncome     float64 `json:"base_income" validate:"gt=0"`
	UnlockLevel    *int    `json:"unlock_level,omitempty" validate:"omitempty,gte=1"`
}

// UpgradeSpec describes a one-time permanent income multiplier bought with
// reputation and applied to all owned units of its affected businesses.
type UpgradeSpec struct {
	ID                 string      `json:"id" validate:"required"`
	Name               string      `json:"name"`
	Cost               float64     `json:"cost" validate:"gt=0"`
	Multiplier         float64     `json:"multiplier" validate:"gt=1"`
	AffectedBusinesses []string    `json:"affected_businesses" validate:"min=1"`
	Tier               string      `json:"tier"`
	Conditions         []Condition `json:"conditions,omitempty" validate:"dive"`
}

// ClickUpgradeSpec describes a one-time permanent modifier to tap power.
// EffectValue feeds additive effects; ScalingFactor feeds scaling ones.
type ClickUpgradeSpec struct {
	ID            string      `json:"id" validate:"required"`
	Name          string      `json:"name"`
	Cost          float64     `json:"cost" validate:"gt=0"`
	Effect        EffectType  `json:"effect" validate:"required,oneof=base_money crit_chance crit_multiplier business_synergy scaling passive_boost"`
	EffectValue   float64     `json:"effect_value"`
	Scaling       ScalingType `json:"scaling,omitempty" validate:"omitempty,oneof=businesses_owned reputation total_income"`
	ScalingFactor float64     `json:"scaling_factor,omitempty"`
	Tier          string      `json:"tier"`
}

// JobSpec describes a timed mission.
type JobSpec struct {
	ID              string        `json:"id" validate:"required"`
	Name            string        `json:"name"`
	DurationSeconds int64         `json:"duration_seconds" validate:"gt=0"`
	CooldownSeconds int64         `json:"cooldown_seconds" validate:"gte=0"`
	UnlockLevel     int           `json:"unlock_level" validate:"gte=1"`
	Reward          domain.Reward `json:"reward"`
}

// AchievementSpec describes a one-time unlockable gated by conditions over
// the full player state. Conditions may be empty when the achievement is
// driven by a registered predicate instead.
type AchievementSpec struct {
	ID          string        `json:"id" validate:"required"`
	Title       string        `json:"title"`
	Icon        string        `json:"icon"`
	Description string        `json:"description"`
	Conditions  []Condition   `json:"conditions,omitempty" validate:"dive"`
	Reward      domain.Reward `json:"reward"`
}

// TierSpec is a reputation-threshold classification used to group upgrades.
type TierSpec struct {
	ID            string  `json:"id" validate:"required"`
	Name          string  `json:"name"`
	MinReputation float64 `json:"min_reputation" validate:"gte=0"`
}
