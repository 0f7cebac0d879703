package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/S-Moreira06/buisness-tycoon-sub000/internal/domain"
)

func TestLoadEmbeddedCatalog(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)

	assert.NotEmpty(t, c.Businesses)
	assert.NotEmpty(t, c.Upgrades)
	assert.NotEmpty(t, c.ClickUpgrades)
	assert.NotEmpty(t, c.Jobs)
	assert.NotEmpty(t, c.Achievements)
	assert.NotEmpty(t, c.Tiers)

	assert.Greater(t, c.Settings.BaseXP, 0.0)
	assert.Greater(t, c.Settings.XPGrowth, 1.0)
	assert.Greater(t, c.Settings.Click.MoneyPerClick, 0.0)
}

func TestCatalogLookups(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)

	b, ok := c.Business("coffeeMachine")
	require.True(t, ok)
	assert.Equal(t, 1250.0, b.BaseCost)
	assert.Equal(t, 4.2, b.BaseIncome)

	_, ok = c.Business("no_such_business")
	assert.False(t, ok)

	u, ok := c.Upgrade("arabicaBeans")
	require.True(t, ok)
	assert.Contains(t, u.AffectedBusinesses, "coffeeMachine")

	cu, ok := c.ClickUpgrade("luckyCufflinks")
	require.True(t, ok)
	assert.Equal(t, EffectCritChance, cu.Effect)

	j, ok := c.Job("courier_bike")
	require.True(t, ok)
	assert.Equal(t, int64(300), j.DurationSeconds)

	a, ok := c.Achievement("first_taps")
	require.True(t, ok)
	require.NotEmpty(t, a.Conditions)
	assert.Equal(t, CondTotalClicks, a.Conditions[0].Type)
}

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "Coffee Machine", DisplayName("coffeeMachine"))
	assert.Equal(t, "Courier Bike", DisplayName("courier_bike"))
	assert.Equal(t, "Lemonade Stand", DisplayName("lemonade-stand"))
	assert.Equal(t, "Tycoon", DisplayName("tycoon"))
}

func TestNamesBackfilledFromIDs(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)

	for _, b := range c.Businesses {
		assert.NotEmpty(t, b.Name, "business %s has no name", b.ID)
	}
	for _, a := range c.Achievements {
		assert.NotEmpty(t, a.Title, "achievement %s has no title", a.ID)
	}
}

func TestTierForReputation(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)

	tier, ok := c.TierForReputation(0)
	require.True(t, ok)
	assert.Equal(t, "street", tier.ID)

	tier, ok = c.TierForReputation(24.9)
	require.True(t, ok)
	assert.Equal(t, "street", tier.ID)

	tier, ok = c.TierForReputation(25)
	require.True(t, ok)
	assert.Equal(t, "local", tier.ID)

	tier, ok = c.TierForReputation(1e9)
	require.True(t, ok)
	assert.Equal(t, "global", tier.ID)

	_, ok = c.TierForReputation(-1)
	assert.False(t, ok)
}

func TestFinishRejectsUpgradeWithUnknownTarget(t *testing.T) {
	c := &Catalog{
		Settings: validSettings(),
		Businesses: []BusinessSpec{
			{ID: "stand", BaseCost: 10, CostMultiplier: 1.1, BaseIncome: 1},
		},
		Upgrades: []UpgradeSpec{
			{ID: "ghosts", Cost: 5, Multiplier: 1.5, AffectedBusinesses: []string{"missing"}},
		},
	}
	err := c.finish()
	require.ErrorIs(t, err, domain.ErrInvalidCatalog)
	assert.Contains(t, err.Error(), "unknown business")
}

func TestFinishRejectsDuplicateIDs(t *testing.T) {
	c := &Catalog{
		Settings: validSettings(),
		Businesses: []BusinessSpec{
			{ID: "stand", BaseCost: 10, CostMultiplier: 1.1, BaseIncome: 1},
			{ID: "stand", BaseCost: 20, CostMultiplier: 1.2, BaseIncome: 2},
		},
	}
	err := c.finish()
	require.ErrorIs(t, err, domain.ErrInvalidCatalog)
	assert.Contains(t, err.Error(), "duplicate business id")
}

func TestFinishRejectsMalformedEffectShape(t *testing.T) {
	cases := []struct {
		name string
		spec ClickUpgradeSpec
	}{
		{
			name: "additive effect without value",
			spec: ClickUpgradeSpec{ID: "bad", Cost: 1, Effect: EffectBaseMoney},
		},
		{
			name: "synergy without businesses_owned scaling",
			spec: ClickUpgradeSpec{ID: "bad", Cost: 1, Effect: EffectBusinessSynergy, EffectValue: 0.02},
		},
		{
			name: "scaling effect without factor",
			spec: ClickUpgradeSpec{ID: "bad", Cost: 1, Effect: EffectScaling, Scaling: ScalingReputation},
		},
		{
			name: "passive boost without factor",
			spec: ClickUpgradeSpec{ID: "bad", Cost: 1, Effect: EffectPassiveBoost},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := &Catalog{
				Settings:      validSettings(),
				ClickUpgrades: []ClickUpgradeSpec{tc.spec},
			}
			assert.ErrorIs(t, c.finish(), domain.ErrInvalidCatalog)
		})
	}
}

func validSettings() Settings {
	return Settings{
		BaseXP:             100,
		XPGrowth:           1.15,
		MaxLevel:           200,
		XPPerClick:         1,
		ReputationPerClick: 0.1,
		LevelBoostFraction: 0.1,
		ComboWindowMS:      2000,
		Click:              ClickBase{MoneyPerClick: 1, CritChance: 0.05, CritMultiplier: 2},
	}
}
