package engine

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/S-Moreira06/buisness-tycoon-sub000/internal/domain"
)

func TestHydrateOwnSnapshotIsIdentity(t *testing.T) {
	e := newTestEngine(t)
	ctx := context.Background()

	grantMoney(t, e, 20_000)
	grantReputation(t, e, 20)
	for i := 0; i < 3; i++ {
		_, err := e.BuyBusiness(ctx, "coffeeMachine")
		require.NoError(t, err)
	}
	_, err := e.PurchaseUpgrade(ctx, "arabicaBeans")
	require.NoError(t, err)
	e.Click(ctx)
	_, err = e.StartJob(ctx, "courier_bike")
	require.NoError(t, err)
	_, err = e.UnlockAchievement(ctx, "first_taps", domain.Reward{Money: 50})
	require.NoError(t, err)

	before := e.State()
	require.NoError(t, e.Hydrate(ctx, e.Snapshot()))
	assert.Equal(t, before, e.State())
}

func TestHydrateStatsMergeByMax(t *testing.T) {
	e := newTestEngine(t)
	ctx := context.Background()

	// Local progress after the snapshot was taken.
	for i := 0; i < 5; i++ {
		e.Click(ctx)
	}

	snap := domain.Snapshot{
		SchemaVersion: domain.SnapshotSchemaVersion,
		Player: domain.PlayerState{
			Money: 1000,
			Stats: domain.StatsBlock{TotalClicks: 3, PlayTimeSeconds: 900},
		},
	}
	require.NoError(t, e.Hydrate(ctx, snap))

	s := e.State()
	// Scalars come from the snapshot; counters keep whichever side is ahead.
	assert.Equal(t, 1000.0, s.Money)
	assert.Equal(t, int64(5), s.Stats.TotalClicks)
	assert.Equal(t, int64(900), s.Stats.PlayTimeSeconds)
}

func TestHydrateUnionsAchievements(t *testing.T) {
	e := newTestEngine(t)
	ctx := context.Background()

	_, err := e.UnlockAchievement(ctx, "first_taps", domain.Reward{})
	require.NoError(t, err)

	snap := domain.Snapshot{
		SchemaVersion: domain.SnapshotSchemaVersion,
		Player: domain.PlayerState{
			UnlockedAchievements: map[string]bool{
				"combo_rookie": true,
				"ghost_badge":  true, // not in the catalog, must be dropped
			},
		},
	}
	require.NoError(t, e.Hydrate(ctx, snap))

	s := e.State()
	assert.True(t, s.UnlockedAchievements["first_taps"])
	assert.True(t, s.UnlockedAchievements["combo_rookie"])
	assert.False(t, s.UnlockedAchievements["ghost_badge"])
	assert.Equal(t, 2, s.Stats.AchievementsUnlocked)
}

func TestHydrateDropsUnknownIDsAndRecomputes(t *testing.T) {
	e := newTestEngine(t)
	ctx := context.Background()

	snap := domain.Snapshot{
		SchemaVersion: domain.SnapshotSchemaVersion,
		Player: domain.PlayerState{
			Experience:         215,
			PlayerLevel:        99,  // stale, must be recomputed from XP
			TotalPassiveIncome: 777, // stale, must be recomputed from holdings
			Businesses: map[string]domain.BusinessInstance{
				"coffeeMachine":  {Quantity: 2, Income: 4.2, Owned: true},
				"retiredVenture": {Quantity: 9, Income: 50, Owned: true},
			},
		},
	}
	require.NoError(t, e.Hydrate(ctx, snap))

	s := e.State()
	assert.Equal(t, 3, s.PlayerLevel)
	assert.InDelta(t, 8.4, s.TotalPassiveIncome, 1e-9)
	_, ok := s.Businesses["retiredVenture"]
	assert.False(t, ok)

	// Catalog entries missing from the snapshot are reseeded at defaults.
	lemonade, ok := s.Businesses["lemonadeStand"]
	require.True(t, ok)
	assert.Equal(t, 0, lemonade.Quantity)
	assert.Equal(t, 0.4, lemonade.Income)
}

func TestHydrateRejectsNewerSchema(t *testing.T) {
	e := newTestEngine(t)

	snap := domain.Snapshot{SchemaVersion: domain.SnapshotSchemaVersion + 1}
	err := e.Hydrate(context.Background(), snap)
	assert.ErrorIs(t, err, domain.ErrSnapshotUnsupported)
}

func TestHydrateRecomputesUniqueBusinessesOwned(t *testing.T) {
	e := newTestEngine(t)
	ctx := context.Background()

	snap := domain.Snapshot{
		SchemaVersion: domain.SnapshotSchemaVersion,
		Player: domain.PlayerState{
			Businesses: map[string]domain.BusinessInstance{
				"coffeeMachine": {Quantity: 1, Income: 4.2, Owned: true},
				"lemonadeStand": {Quantity: 2, Income: 0.4, Owned: true},
			},
		},
	}
	require.NoError(t, e.Hydrate(ctx, snap))
	assert.Equal(t, 2, e.State().Stats.UniqueBusinessesOwned)
}
