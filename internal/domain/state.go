package domain

// JobStatus is the lifecycle state of a timed job.
type JobStatus string

const (
	JobAvailable  JobStatus = "available"
	JobInProgress JobStatus = "in_progress"
	JobCompleted  JobStatus = "completed"
	JobClaimed    JobStatus = "claimed"
)

// BusinessInstance is the player-owned slice of a catalog business.
// Income is per-unit and only ever increases (level boosts and upgrade
// multipliers compound on it).
type BusinessInstance struct {
	Quantity int     `json:"quantity"`
	Level    int     `json:"level"`
	Income   float64 `json:"income"`
	Owned    bool    `json:"owned"`
}

// UpgradeInstance wraps a business-targeted upgrade's purchase flag.
// The flag is one-way: false -> true.
type UpgradeInstance struct {
	Purchased bool `json:"purchased"`
}

// ClickUpgradeInstance wraps a click upgrade's purchase flag.
type ClickUpgradeInstance struct {
	Purchased bool `json:"purchased"`
}

// ActiveJob tracks a started job run. Timestamps are unix milliseconds.
// Status is authoritative only up to in_progress; completion is derived
// from the clock via StatusAt.
type ActiveJob struct {
	Status      JobStatus `json:"status"`
	StartedAtMS int64     `json:"started_at_ms"`
	EndTimeMS   int64     `json:"end_time_ms"`
}

// StatusAt reports the observed status for a wall-clock instant: a run whose
// deadline has passed is completed even though the stored field may lag.
func (j ActiveJob) StatusAt(nowMS int64) JobStatus {
	if j.Status == JobInProgress && nowMS >= j.EndTimeMS {
		return JobCompleted
	}
	return j.Status
}

// Reward is a lump-sum grant of the three progression resources.
type Reward struct {
	Money      float64 `json:"money"`
	Reputation float64 `json:"reputation"`
	XP         float64 `json:"xp"`
}

// PlayerState is the authoritative model of player progress. It is owned
// exclusively by the engine and mutated only through its actions.
//
// Invariants maintained by the engine:
//   - Money and Reputation never go negative; unaffordable actions are no-ops.
//   - PlayerLevel is always derivable from Experience via the XP curve.
//   - TotalPassiveIncome equals the sum over owned businesses of
//     Income * Quantity after every transition.
//   - Owned is true iff Quantity > 0.
type PlayerState struct {
	Money              float64 `json:"money"`
	Reputation         float64 `json:"reputation"`
	TotalPassiveIncome float64 `json:"total_passive_income"`
	PlayerLevel        int     `json:"player_level"`
	Experience         float64 `json:"experience"`

	Businesses    map[string]BusinessInstance     `json:"businesses"`
	Upgrades      map[string]UpgradeInstance      `json:"upgrades"`
	ClickUpgrades map[string]ClickUpgradeInstance `json:"click_upgrades"`

	UnlockedAchievements   map[string]bool `json:"unlocked_achievements"`
	SessionNewAchievements []string        `json:"session_new_achievements"`

	ActiveJobs   map[string]ActiveJob `json:"active_jobs"`
	JobCooldowns map[string]int64     `json:"job_cooldowns"` // jobID -> last claim, unix ms

	Stats StatsBlock `json:"stats"`

	// Click combo bookkeeping. LastClickAtMS is persisted so a reload does
	// not spuriously extend a combo.
	CurrentCombo  int   `json:"current_combo"`
	LastClickAtMS int64 `json:"last_click_at_ms"`

	// TimesReset survives ResetGame; everything else is restored to
	// catalog-derived defaults.
	TimesReset int `json:"times_reset"`
}

// Clone returns a deep copy of the state. Subscribers and snapshots always
// receive clones so no observer can see a mid-transition mutation.
func (s PlayerState) Clone() PlayerState {
	out := s

	out.Businesses = make(map[string]BusinessInstance, len(s.Businesses))
	for k, v := range s.Businesses {
		out.Businesses[k] = v
	}
	out.Upgrades = make(map[string]UpgradeInstance, len(s.Upgrades))
	for k, v := range s.Upgrades {
		out.Upgrades[k] = v
	}
	out.ClickUpgrades = make(map[string]ClickUpgradeInstance, len(s.ClickUpgrades))
	for k, v := range s.ClickUpgrades {
		out.ClickUpgrades[k] = v
	}
	out.UnlockedAchievements = make(map[string]bool, len(s.UnlockedAchievements))
	for k, v := range s.UnlockedAchievements {
		out.UnlockedAchievements[k] = v
	}
	out.SessionNewAchievements = append([]string(nil), s.SessionNewAchievements...)
	out.ActiveJobs = make(map[string]ActiveJob, len(s.ActiveJobs))
	for k, v := range s.ActiveJobs {
		out.ActiveJobs[k] = v
	}
	out.JobCooldowns = make(map[string]int64, len(s.JobCooldowns))
	for k, v := range s.JobCooldowns {
		out.JobCooldowns[k] = v
	}

	return out
}

// TotalBusinessUnits returns the count of owned business units across all
// businesses. Feeds the business_synergy click effect.
func (s PlayerState) TotalBusinessUnits() int {
	total := 0
	for _, b := range s.Businesses {
		total += b.Quantity
	}
	return total
}

// UpgradesPurchasedCount counts purchased upgrades of both kinds.
func (s PlayerState) UpgradesPurchasedCount() int {
	count := 0
	for _, u := range s.Upgrades {
		if u.Purchased {
			count++
		}
	}
	for _, u := range s.ClickUpgrades {
		if u.Purchased {
			count++
		}
	}
	return count
}
