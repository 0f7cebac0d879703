package unlock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/S-Moreira06/buisness-tycoon-sub000/internal/catalog"
	"github.com/S-Moreira06/buisness-tycoon-sub000/internal/domain"
)

func loadCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	cat, err := catalog.Load()
	require.NoError(t, err)
	return cat
}

func TestEvaluateEmptyConditions(t *testing.T) {
	cat := loadCatalog(t)
	res := Evaluate(domain.PlayerState{}, cat, nil)

	assert.True(t, res.Unlocked)
	assert.Equal(t, 1.0, res.Progress)
	assert.Empty(t, res.Missing)
}

func TestEvaluateAllMet(t *testing.T) {
	cat := loadCatalog(t)
	state := domain.PlayerState{PlayerLevel: 10}
	state.Stats.TotalClicks = 500

	res := Evaluate(state, cat, []catalog.Condition{
		{Type: catalog.CondPlayerLevel, Required: 5},
		{Type: catalog.CondTotalClicks, Required: 100},
	})

	assert.True(t, res.Unlocked)
	assert.Equal(t, 1.0, res.Progress)
	assert.Empty(t, res.Missing)
}

func TestEvaluateProgressAveragesAllConditions(t *testing.T) {
	cat := loadCatalog(t)
	state := domain.PlayerState{PlayerLevel: 10}
	state.Stats.TotalClicks = 50

	res := Evaluate(state, cat, []catalog.Condition{
		{Type: catalog.CondTotalClicks, Required: 100}, // ratio 0.5
		{Type: catalog.CondPlayerLevel, Required: 5},   // ratio capped at 1
	})

	assert.False(t, res.Unlocked)
	// Met conditions still count toward the average.
	assert.InDelta(t, 0.75, res.Progress, 1e-9)
	require.Len(t, res.Missing, 1)
	assert.Equal(t, 50.0, res.Missing[0].Current)
	assert.Equal(t, 100.0, res.Missing[0].Required)
}

func TestEvaluateConditionTypes(t *testing.T) {
	cat := loadCatalog(t)
	state := domain.PlayerState{
		PlayerLevel:        3,
		TotalPassiveIncome: 42,
		Businesses: map[string]domain.BusinessInstance{
			"lemonadeStand": {Quantity: 4, Level: 2, Owned: true},
			"coffeeMachine": {Quantity: 1, Owned: true},
		},
		Upgrades: map[string]domain.UpgradeInstance{
			"freshLemons": {Purchased: true},
		},
		ClickUpgrades: map[string]domain.ClickUpgradeInstance{
			"firmHandshake": {Purchased: true},
		},
	}
	state.Stats.TotalClicks = 250
	state.Stats.MaxCombo = 12

	cases := []struct {
		name string
		cond catalog.Condition
		met  bool
	}{
		{"business quantity targeted", catalog.Condition{Type: catalog.CondBusinessQuantity, Target: "lemonadeStand", Required: 4}, true},
		{"business quantity total", catalog.Condition{Type: catalog.CondBusinessQuantity, Required: 5}, true},
		{"business level", catalog.Condition{Type: catalog.CondBusinessLevel, Target: "lemonadeStand", Required: 3}, false},
		{"upgrades purchased counts both kinds", catalog.Condition{Type: catalog.CondUpgradesPurchased, Required: 2}, true},
		{"passive income", catalog.Condition{Type: catalog.CondPassiveIncome, Required: 100}, false},
		{"player level", catalog.Condition{Type: catalog.CondPlayerLevel, Required: 3}, true},
		{"total clicks", catalog.Condition{Type: catalog.CondTotalClicks, Required: 1000}, false},
		{"combo reached", catalog.Condition{Type: catalog.CondComboReached, Required: 10}, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res := Evaluate(state, cat, []catalog.Condition{tc.cond})
			assert.Equal(t, tc.met, res.Unlocked)
		})
	}
}

func TestEvaluateMissingLabels(t *testing.T) {
	cat := loadCatalog(t)

	res := Evaluate(domain.PlayerState{}, cat, []catalog.Condition{
		{Type: catalog.CondBusinessQuantity, Target: "coffeeMachine", Required: 5},
		{Type: catalog.CondTotalClicks, Required: 100, Label: "Keep tapping"},
	})

	require.Len(t, res.Missing, 2)
	assert.Equal(t, "Coffee Machine owned", res.Missing[0].Label)
	assert.Equal(t, "Keep tapping", res.Missing[1].Label)
}

func TestResultCache(t *testing.T) {
	cache := NewResultCache(8, time.Minute)

	res := Result{Unlocked: true, Progress: 1}
	cache.Set("first_taps", 3, res)

	got, ok := cache.Get("first_taps", 3)
	assert.True(t, ok)
	assert.Equal(t, res, got)

	// A different revision is a different key.
	_, ok = cache.Get("first_taps", 4)
	assert.False(t, ok)

	cache.Purge()
	_, ok = cache.Get("first_taps", 3)
	assert.False(t, ok)
}
