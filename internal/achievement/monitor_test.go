package achievement

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/S-Moreira06/buisness-tycoon-sub000/internal/catalog"
	"github.com/S-Moreira06/buisness-tycoon-sub000/internal/domain"
	"github.com/S-Moreira06/buisness-tycoon-sub000/internal/engine"
)

func newAttachedMonitor(t *testing.T) (*engine.Engine, *Monitor) {
	t.Helper()
	cat, err := catalog.Load()
	require.NoError(t, err)

	eng := engine.New(cat, nil)
	m := NewMonitor(eng)
	m.Attach()
	return eng, m
}

func TestMonitorUnlocksWhenConditionsMet(t *testing.T) {
	eng, _ := newAttachedMonitor(t)
	ctx := context.Background()

	// first_business requires one lemonade stand.
	require.NoError(t, eng.ApplyExternalGain(ctx, domain.Reward{Money: 100}))
	applied, err := eng.BuyBusiness(ctx, "lemonadeStand")
	require.NoError(t, err)
	require.True(t, applied)

	s := eng.State()
	assert.True(t, s.UnlockedAchievements["first_business"])
	// The catalog reward was credited exactly once.
	spec, _ := eng.Catalog().Achievement("first_business")
	assert.Contains(t, eng.ConsumeNewAchievements(ctx), "first_business")
	assert.GreaterOrEqual(t, s.Money, spec.Reward.Money)
}

func TestMonitorUnlocksExactlyOnce(t *testing.T) {
	eng, _ := newAttachedMonitor(t)
	ctx := context.Background()

	require.NoError(t, eng.ApplyExternalGain(ctx, domain.Reward{Money: 100}))
	_, err := eng.BuyBusiness(ctx, "lemonadeStand")
	require.NoError(t, err)

	// Further transitions re-sweep but must not duplicate the unlock.
	eng.TickPlayTime(ctx)
	eng.TickPlayTime(ctx)

	drained := eng.ConsumeNewAchievements(ctx)
	count := 0
	for _, id := range drained {
		if id == "first_business" {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestMonitorPanicIsolation(t *testing.T) {
	eng, m := newAttachedMonitor(t)
	ctx := context.Background()

	m.RegisterPredicate("first_business", func(state domain.PlayerState) bool {
		panic("boom")
	})

	// The panicking predicate must not take down the sweep or block other
	// achievements from unlocking in the same pass.
	require.NoError(t, eng.ApplyExternalGain(ctx, domain.Reward{Money: 100}))
	applied, err := eng.BuyBusiness(ctx, "lemonadeStand")
	require.NoError(t, err)
	require.True(t, applied)

	s := eng.State()
	assert.False(t, s.UnlockedAchievements["first_business"])

	// A sibling achievement with met conditions still unlocks.
	for i := 0; i < 100; i++ {
		eng.Click(ctx)
	}
	assert.True(t, eng.State().UnlockedAchievements["first_taps"])
}

func TestMonitorPredicateGates(t *testing.T) {
	eng, m := newAttachedMonitor(t)
	ctx := context.Background()

	allow := false
	m.RegisterPredicate("first_business", func(state domain.PlayerState) bool {
		return allow
	})

	require.NoError(t, eng.ApplyExternalGain(ctx, domain.Reward{Money: 100}))
	_, err := eng.BuyBusiness(ctx, "lemonadeStand")
	require.NoError(t, err)
	assert.False(t, eng.State().UnlockedAchievements["first_business"])

	allow = true
	eng.TickPlayTime(ctx)
	assert.True(t, eng.State().UnlockedAchievements["first_business"])
}

func TestMonitorProgress(t *testing.T) {
	eng, m := newAttachedMonitor(t)
	ctx := context.Background()

	for i := 0; i < 50; i++ {
		eng.Click(ctx)
	}

	progress := m.Progress()
	res, ok := progress["first_taps"]
	require.True(t, ok)
	assert.False(t, res.Unlocked)
	assert.InDelta(t, 0.5, res.Progress, 1e-9)

	// Unlocked achievements report full progress without re-evaluating.
	for i := 0; i < 50; i++ {
		eng.Click(ctx)
	}
	progress = m.Progress()
	assert.True(t, progress["first_taps"].Unlocked)
	assert.Equal(t, 1.0, progress["first_taps"].Progress)
}

func TestMonitorCacheServesRepeatEvaluations(t *testing.T) {
	eng, m := newAttachedMonitor(t)

	// Same revision, repeated reads: results must be stable.
	first := m.Progress()
	time.Sleep(10 * time.Millisecond)
	second := m.Progress()
	assert.Equal(t, first, second)
	require.Len(t, first, len(eng.Catalog().Achievements))
}
