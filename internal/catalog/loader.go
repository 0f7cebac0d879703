package catalog

import (
	"embed"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/S-Moreira06/buisness-tycoon-sub000/internal/domain"
)

//go:embed data/*.json
var dataFS embed.FS

// Catalog bundles all static configuration tables. It is read-only for the
// lifetime of the process; slices preserve file order, which is the defined
// application order for click-upgrade effects.
type Catalog struct {
	Settings      Settings
	Businesses    []BusinessSpec
	Upgrades      []UpgradeSpec
	ClickUpgrades []ClickUpgradeSpec
	Jobs          []JobSpec
	Achievements  []AchievementSpec
	Tiers         []TierSpec

	businessByID     map[string]int
	upgradeByID      map[string]int
	clickUpgradeByID map[string]int
	jobByID          map[string]int
	achievementByID  map[string]int
}

// Load parses and validates the embedded catalog data.
func Load() (*Catalog, error) {
	c := &Catalog{}

	files := []struct {
		name string
		dst  interface{}
	}{
		{"data/settings.json", &c.Settings},
		{"data/businesses.json", &c.Businesses},
		{"data/upgrades.json", &c.Upgrades},
		{"data/click_upgrades.json", &c.ClickUpgrades},
		{"data/jobs.json", &c.Jobs},
		{"data/achievements.json", &c.Achievements},
		{"data/tiers.json", &c.Tiers},
	}

	for _, f := range files {
		raw, err := dataFS.ReadFile(f.name)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", f.name, err)
		}
		if err := json.Unmarshal(raw, f.dst); err != nil {
			return nil, fmt.Errorf("parse %s: %w", f.name, err)
		}
	}

	if err := c.finish(); err != nil {
		return nil, err
	}
	return c, nil
}

// finish validates every entry, backfills display names and builds indexes.
func (c *Catalog) finish() error {
	v := validator.New()

	if err := v.Struct(c.Settings); err != nil {
		return fmt.Errorf("%w: settings: %v", domain.ErrInvalidCatalog, err)
	}
	if err := v.Struct(c.Settings.Click); err != nil {
		return fmt.Errorf("%w: settings.click: %v", domain.ErrInvalidCatalog, err)
	}

	c.businessByID = make(map[string]int, len(c.Businesses))
	for i := range c.Businesses {
		b := &c.Businesses[i]
		if err := v.Struct(b); err != nil {
			return fmt.Errorf("%w: business %q: %v", domain.ErrInvalidCatalog, b.ID, err)
		}
		if _, dup := c.businessByID[b.ID]; dup {
			return fmt.Errorf("%w: duplicate business id %q", domain.ErrInvalidCatalog, b.ID)
		}
		if b.Name == "" {
			b.Name = DisplayName(b.ID)
		}
		c.businessByID[b.ID] = i
	}

	c.upgradeByID = make(map[string]int, len(c.Upgrades))
	for i := range c.Upgrades {
		u := &c.Upgrades[i]
		if err := v.Struct(u); err != nil {
			return fmt.Errorf("%w: upgrade %q: %v", domain.ErrInvalidCatalog, u.ID, err)
		}
		if _, dup := c.upgradeByID[u.ID]; dup {
			return fmt.Errorf("%w: duplicate upgrade id %q", domain.ErrInvalidCatalog, u.ID)
		}
		for _, bid := range u.AffectedBusinesses {
			if _, ok := c.businessByID[bid]; !ok {
				return fmt.Errorf("%w: upgrade %q targets unknown business %q", domain.ErrInvalidCatalog, u.ID, bid)
			}
		}
		if u.Name == "" {
			u.Name = DisplayName(u.ID)
		}
		c.upgradeByID[u.ID] = i
	}

	c.clickUpgradeByID = make(map[string]int, len(c.ClickUpgrades))
	for i := range c.ClickUpgrades {
		u := &c.ClickUpgrades[i]
		if err := v.Struct(u); err != nil {
			return fmt.Errorf("%w: click upgrade %q: %v", domain.ErrInvalidCatalog, u.ID, err)
		}
		if _, dup := c.clickUpgradeByID[u.ID]; dup {
			return fmt.Errorf("%w: duplicate click upgrade id %q", domain.ErrInvalidCatalog, u.ID)
		}
		if err := validateEffectShape(u); err != nil {
			return err
		}
		if u.Name == "" {
			u.Name = DisplayName(u.ID)
		}
		c.clickUpgradeByID[u.ID] = i
	}

	c.jobByID = make(map[string]int, len(c.Jobs))
	for i := range c.Jobs {
		j := &c.Jobs[i]
		if err := v.Struct(j); err != nil {
			return fmt.Errorf("%w: job %q: %v", domain.ErrInvalidCatalog, j.ID, err)
		}
		if _, dup := c.jobByID[j.ID]; dup {
			return fmt.Errorf("%w: duplicate job id %q", domain.ErrInvalidCatalog, j.ID)
		}
		if j.Name == "" {
			j.Name = DisplayName(j.ID)
		}
		c.jobByID[j.ID] = i
	}

	c.achievementByID = make(map[string]int, len(c.Achievements))
	for i := range c.Achievements {
		a := &c.Achievements[i]
		if err := v.Struct(a); err != nil {
			return fmt.Errorf("%w: achievement %q: %v", domain.ErrInvalidCatalog, a.ID, err)
		}
		if _, dup := c.achievementByID[a.ID]; dup {
			return fmt.Errorf("%w: duplicate achievement id %q", domain.ErrInvalidCatalog, a.ID)
		}
		if a.Title == "" {
			a.Title = DisplayName(a.ID)
		}
		c.achievementByID[a.ID] = i
	}

	// Tiers sorted ascending by threshold so TierForReputation can scan.
	sort.SliceStable(c.Tiers, func(i, j int) bool {
		return c.Tiers[i].MinReputation < c.Tiers[j].MinReputation
	})
	for i := range c.Tiers {
		t := &c.Tiers[i]
		if err := v.Struct(t); err != nil {
			return fmt.Errorf("%w: tier %q: %v", domain.ErrInvalidCatalog, t.ID, err)
		}
		if t.Name == "" {
			t.Name = DisplayName(t.ID)
		}
	}

	return nil
}

// validateEffectShape checks the effect/scaling field pairing the validator
// tags cannot express: scaling-style effects need a scaling type and factor,
// additive effects need a value.
func validateEffectShape(u *ClickUpgradeSpec) error {
	switch u.Effect {
	case EffectBaseMoney, EffectCritChance, EffectCritMultiplier:
		if u.EffectValue <= 0 {
			return fmt.Errorf("%w: click upgrade %q: effect %s requires effect_value > 0", domain.ErrInvalidCatalog, u.ID, u.Effect)
		}
	case EffectBusinessSynergy:
		if u.Scaling != ScalingBusinessesOwned {
			return fmt.Errorf("%w: click upgrade %q: business_synergy requires scaling businesses_owned", domain.ErrInvalidCatalog, u.ID)
		}
		if u.EffectValue <= 0 {
			return fmt.Errorf("%w: click upgrade %q: business_synergy requires effect_value > 0", domain.ErrInvalidCatalog, u.ID)
		}
	case EffectScaling:
		if u.Scaling != ScalingReputation && u.Scaling != ScalingTotalIncome {
			return fmt.Errorf("%w: click upgrade %q: scaling effect requires scaling reputation or total_income", domain.ErrInvalidCatalog, u.ID)
		}
		if u.ScalingFactor <= 0 {
			return fmt.Errorf("%w: click upgrade %q: scaling effect requires scaling_factor > 0", domain.ErrInvalidCatalog, u.ID)
		}
	case EffectPassiveBoost:
		if u.ScalingFactor <= 0 {
			return fmt.Errorf("%w: click upgrade %q: passive_boost requires scaling_factor > 0", domain.ErrInvalidCatalog, u.ID)
		}
	}
	return nil
}

// Business returns the spec for id.
func (c *Catalog) Business(id string) (BusinessSpec, bool) {
	i, ok := c.businessByID[id]
	if !ok {
		return BusinessSpec{}, false
	}
	return c.Businesses[i], true
}

// Upgrade returns the business-upgrade spec for id.
func (c *Catalog) Upgrade(id string) (UpgradeSpec, bool) {
	i, ok := c.upgradeByID[id]
	if !ok {
		return UpgradeSpec{}, false
	}
	return c.Upgrades[i], true
}

// ClickUpgrade returns the click-upgrade spec for id.
func (c *Catalog) ClickUpgrade(id string) (ClickUpgradeSpec, bool) {
	i, ok := c.clickUpgradeByID[id]
	if !ok {
		return ClickUpgradeSpec{}, false
	}
	return c.ClickUpgrades[i], true
}

// Job returns the job spec for id.
func (c *Catalog) Job(id string) (JobSpec, bool) {
	i, ok := c.jobByID[id]
	if !ok {
		return JobSpec{}, false
	}
	return c.Jobs[i], true
}

// Achievement returns the achievement spec for id.
func (c *Catalog) Achievement(id string) (AchievementSpec, bool) {
	i, ok := c.achievementByID[id]
	if !ok {
		return AchievementSpec{}, false
	}
	return c.Achievements[i], true
}

// TierForReputation returns the highest tier whose threshold the given
// reputation meets. ok is false when reputation is below every tier.
func (c *Catalog) TierForReputation(reputation float64) (TierSpec, bool) {
	var best TierSpec
	found := false
	for _, t := range c.Tiers {
		if reputation >= t.MinReputation {
			best = t
			found = true
		}
	}
	return best, found
}

var titleCaser = cases.Title(language.English)

// DisplayName derives a human label from a catalog id, splitting camelCase
// and snake_case: "coffeeMachine" -> "Coffee Machine".
func DisplayName(id string) string {
	var words []string
	var cur strings.Builder
	flush := func() {
		if cur.Len() > 0 {
			words = append(words, cur.String())
			cur.Reset()
		}
	}
	for _, r := range id {
		switch {
		case r == '_' || r == '-' || r == ' ':
			flush()
		case unicode.IsUpper(r):
			flush()
			cur.WriteRune(unicode.ToLower(r))
		default:
			cur.WriteRune(r)
		}
	}
	flush()
	return titleCaser.String(strings.Join(words, " "))
}
