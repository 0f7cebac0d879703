package domain

// StatsBlock accumulates lifetime counters and milestones. Every mutating
// engine action updates its relevant counters in the same transition as the
// primary state change.
type StatsBlock struct {
	// Activity
	TotalClicks     int64 `json:"total_clicks"`
	CriticalClicks  int64 `json:"critical_clicks"`
	MaxCombo        int   `json:"max_combo"`
	PlayTimeSeconds int64 `json:"play_time_seconds"`

	// Economy, split by source bucket
	MoneyFromClicks   float64 `json:"money_from_clicks"`
	MoneyFromPassive  float64 `json:"money_from_passive"`
	MoneyFromExternal float64 `json:"money_from_external"`
	MoneySpent        float64 `json:"money_spent"`
	ReputationSpent   float64 `json:"reputation_spent"`
	MaxMoney          float64 `json:"max_money"`

	// Purchases
	TotalBusinessesBought  int64 `json:"total_businesses_bought"`
	UniqueBusinessesOwned  int   `json:"unique_businesses_owned"`
	BusinessLevelsBought   int64 `json:"business_levels_bought"`
	UpgradesPurchased      int64 `json:"upgrades_purchased"`
	ClickUpgradesPurchased int64 `json:"click_upgrades_purchased"`

	// Milestones (unix ms, zero until first occurrence)
	FirstBusinessAtMS    int64 `json:"first_business_at_ms"`
	FirstAchievementAtMS int64 `json:"first_achievement_at_ms"`

	AchievementsUnlocked int   `json:"achievements_unlocked"`
	JobsCompleted        int64 `json:"jobs_completed"`
}

// MergeMax folds another stats block into this one taking max per counter.
// Used by hydration so loading a stale snapshot can never lose progress
// recorded locally. Milestone timestamps take the earliest nonzero value.
func (s *StatsBlock) MergeMax(other StatsBlock) {
	s.TotalClicks = maxI64(s.TotalClicks, other.TotalClicks)
	s.CriticalClicks = maxI64(s.CriticalClicks, other.CriticalClicks)
	s.MaxCombo = maxInt(s.MaxCombo, other.MaxCombo)
	s.PlayTimeSeconds = maxI64(s.PlayTimeSeconds, other.PlayTimeSeconds)

	s.MoneyFromClicks = maxF64(s.MoneyFromClicks, other.MoneyFromClicks)
	s.MoneyFromPassive = maxF64(s.MoneyFromPassive, other.MoneyFromPassive)
	s.MoneyFromExternal = maxF64(s.MoneyFromExternal, other.MoneyFromExternal)
	s.MoneySpent = maxF64(s.MoneySpent, other.MoneySpent)
	s.ReputationSpent = maxF64(s.ReputationSpent, other.ReputationSpent)
	s.MaxMoney = maxF64(s.MaxMoney, other.MaxMoney)

	s.TotalBusinessesBought = maxI64(s.TotalBusinessesBought, other.TotalBusinessesBought)
	s.BusinessLevelsBought = maxI64(s.BusinessLevelsBought, other.BusinessLevelsBought)
	s.UpgradesPurchased = maxI64(s.UpgradesPurchased, other.UpgradesPurchased)
	s.ClickUpgradesPurchased = maxI64(s.ClickUpgradesPurchased, other.ClickUpgradesPurchased)

	s.FirstBusinessAtMS = earliestMS(s.FirstBusinessAtMS, other.FirstBusinessAtMS)
	s.FirstAchievementAtMS = earliestMS(s.FirstAchievementAtMS, other.FirstAchievementAtMS)

	s.JobsCompleted = maxI64(s.JobsCompleted, other.JobsCompleted)
}

func earliestMS(a, b int64) int64 {
	if a == 0 {
		return b
	}
	if b == 0 || a < b {
		return a
	}
	return b
}

func maxI64(a, b int64) int64 {
	if a > b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func maxF64(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
