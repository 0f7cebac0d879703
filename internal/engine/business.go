package engine

import (
	"context"

	"github.com/S-Moreira06/buisness-tycoon-sub000/internal/domain"
	"github.com/S-Moreira06/buisness-tycoon-sub000/internal/event"
	"github.com/S-Moreira06/buisness-tycoon-sub000/internal/metrics"
	"github.com/S-Moreira06/buisness-tycoon-sub000/internal/progression"
)

// BuyBusiness purchases one unit of a business at its current price. The
// purchase is a no-op when the player cannot afford it. A first purchase
// flips Owned and grants the one-time XP bonus.
func (e *Engine) BuyBusiness(ctx context.Context, id string) (bool, error) {
	spec, ok := e.cat.Business(id)
	if !ok {
		return false, domain.ErrUnknownBusiness
	}

	var price float64
	applied := e.transition(ctx, func(s *domain.PlayerState, pending *[]event.Event) bool {
		b := s.Businesses[id]
		price = progression.BusinessPrice(spec.BaseCost, spec.CostMultiplier, b.Quantity)
		if s.Money < price {
			return false
		}

		s.Money -= price
		s.Stats.MoneySpent += price

		first := !b.Owned
		b.Quantity++
		if first {
			b.Owned = true
			b.Income = spec.BaseIncome
			s.Stats.UniqueBusinessesOwned++
			if s.Stats.FirstBusinessAtMS == 0 {
				s.Stats.FirstBusinessAtMS = e.now().UnixMilli()
			}
		}
		s.Businesses[id] = b

		s.TotalPassiveIncome += b.Income
		s.Stats.TotalBusinessesBought++

		if first {
			e.gainXP(s, e.cat.Settings.NewBusinessXPBonus, pending)
		}

		*pending = append(*pending, event.NewBusinessPurchasedEvent(id, b.Quantity, price, first))
		return true
	})

	if applied {
		metrics.BusinessesPurchased.WithLabelValues(id).Inc()
		metrics.MoneySpent.Add(price)
	}
	return applied, nil
}

// UpgradeBusiness buys the next level of an owned business with money. Each
// level raises the per-unit income by the configured boost fraction of the
// current income, so repeated levels compound.
func (e *Engine) UpgradeBusiness(ctx context.Context, id string) (bool, error) {
	spec, ok := e.cat.Business(id)
	if !ok {
		return false, domain.ErrUnknownBusiness
	}

	var cost float64
	applied := e.transition(ctx, func(s *domain.PlayerState, pending *[]event.Event) bool {
		b := s.Businesses[id]
		if !b.Owned {
			return false
		}
		cost = progression.BusinessUpgradeCost(spec.BaseCost, b.Level)
		if s.Money < cost {
			return false
		}

		s.Money -= cost
		s.Stats.MoneySpent += cost

		boost := b.Income * e.cat.Settings.LevelBoostFraction
		b.Income += boost
		b.Level++
		s.Businesses[id] = b

		s.TotalPassiveIncome += boost * float64(b.Quantity)
		s.Stats.BusinessLevelsBought++

		*pending = append(*pending, event.NewBusinessUpgradedEvent(id, b.Level, b.Income))
		return true
	})

	if applied {
		metrics.MoneySpent.Add(cost)
	}
	return applied, nil
}

// PurchaseUpgrade buys a one-time business upgrade with reputation and
// applies its income multiplier to every owned affected business. The
// purchase is a no-op when already owned, unaffordable, or when none of the
// affected businesses is owned yet.
func (e *Engine) PurchaseUpgrade(ctx context.Context, id string) (bool, error) {
	spec, ok := e.cat.Upgrade(id)
	if !ok {
		return false, domain.ErrUnknownUpgrade
	}

	applied := e.transition(ctx, func(s *domain.PlayerState, pending *[]event.Event) bool {
		if s.Upgrades[id].Purchased {
			return false
		}
		if s.Reputation < spec.Cost {
			return false
		}

		anyOwned := false
		for _, bid := range spec.AffectedBusinesses {
			if s.Businesses[bid].Owned {
				anyOwned = true
				break
			}
		}
		if !anyOwned {
			return false
		}

		s.Reputation -= spec.Cost
		s.Stats.ReputationSpent += spec.Cost
		s.Upgrades[id] = domain.UpgradeInstance{Purchased: true}

		for _, bid := range spec.AffectedBusinesses {
			b := s.Businesses[bid]
			if !b.Owned {
				continue
			}
			old := b.Income
			b.Income *= spec.Multiplier
			s.Businesses[bid] = b
			s.TotalPassiveIncome += (b.Income - old) * float64(b.Quantity)
		}
		s.Stats.UpgradesPurchased++

		*pending = append(*pending, event.NewUpgradePurchasedEvent(id, "business", spec.Cost))
		return true
	})

	if applied {
		metrics.UpgradesPurchased.WithLabelValues("business").Inc()
	}
	return applied, nil
}

// PurchaseClickUpgrade buys a one-time click upgrade with reputation. The
// effect itself is not stored; the power calculator derives it from the
// purchase flag on every read.
func (e *Engine) PurchaseClickUpgrade(ctx context.Context, id string) (bool, error) {
	spec, ok := e.cat.ClickUpgrade(id)
	if !ok {
		return false, domain.ErrUnknownUpgrade
	}

	applied := e.transition(ctx, func(s *domain.PlayerState, pending *[]event.Event) bool {
		if s.ClickUpgrades[id].Purchased {
			return false
		}
		if s.Reputation < spec.Cost {
			return false
		}

		s.Reputation -= spec.Cost
		s.Stats.ReputationSpent += spec.Cost
		s.ClickUpgrades[id] = domain.ClickUpgradeInstance{Purchased: true}
		s.Stats.ClickUpgradesPurchased++

		*pending = append(*pending, event.NewUpgradePurchasedEvent(id, "click", spec.Cost))
		return true
	})

	if applied {
		metrics.UpgradesPurchased.WithLabelValues("click").Inc()
	}
	return applied, nil
}
