// Package engine owns the authoritative player state and exposes the
// reducer-style actions that mutate it. Every action is total: when a
// precondition fails (unaffordable, already purchased, not owned) the
// action reports applied=false and leaves the state bit-for-bit unchanged.
// Errors are reserved for unknown catalog ids and malformed input.
package engine

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/S-Moreira06/buisness-tycoon-sub000/internal/catalog"
	"github.com/S-Moreira06/buisness-tycoon-sub000/internal/domain"
	"github.com/S-Moreira06/buisness-tycoon-sub000/internal/event"
	"github.com/S-Moreira06/buisness-tycoon-sub000/internal/logger"
	"github.com/S-Moreira06/buisness-tycoon-sub000/internal/power"
	"github.com/S-Moreira06/buisness-tycoon-sub000/internal/progression"
)

// Subscriber receives a deep copy of the state after every completed
// transition. Subscribers run synchronously on the acting goroutine, after
// the engine mutex is released, so they may dispatch further actions.
type Subscriber func(state domain.PlayerState)

// Engine is the single owner of PlayerState. All mutation goes through its
// action methods, which execute atomically with respect to each other.
type Engine struct {
	mu       sync.Mutex
	state    domain.PlayerState
	revision uint64

	cat       *catalog.Catalog
	curve     progression.Curve
	publisher event.Bus

	subsMu sync.RWMutex
	subs   []Subscriber

	// Injected for deterministic tests.
	now func() time.Time
	rnd func() float64
}

// New creates an engine with a fresh catalog-derived initial state.
// publisher may be nil; events are then skipped.
func New(cat *catalog.Catalog, publisher event.Bus) *Engine {
	e := &Engine{
		cat:       cat,
		curve:     progression.Curve{BaseXP: cat.Settings.BaseXP, Growth: cat.Settings.XPGrowth},
		publisher: publisher,
		now:       time.Now,
		rnd:       rand.Float64,
	}
	e.state = e.initialState(0)
	return e
}

// Subscribe registers an observer for completed transitions.
func (e *Engine) Subscribe(sub Subscriber) {
	e.subsMu.Lock()
	defer e.subsMu.Unlock()
	e.subs = append(e.subs, sub)
}

// State returns a deep copy of the current state.
func (e *Engine) State() domain.PlayerState {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state.Clone()
}

// Revision returns the transition counter. It increments on every applied
// action and is the cache key for unlock-evaluation memoization.
func (e *Engine) Revision() uint64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.revision
}

// Snapshot returns the serializable form of the current state for the
// persistence collaborator. Taken between transitions, never mid-mutation.
func (e *Engine) Snapshot() domain.Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()
	return domain.Snapshot{
		SchemaVersion: domain.SnapshotSchemaVersion,
		SavedAtMS:     e.now().UnixMilli(),
		Player:        e.state.Clone(),
	}
}

// GetClickPower derives the current tap profile from the state.
func (e *Engine) GetClickPower() power.ClickPower {
	e.mu.Lock()
	state := e.state.Clone()
	e.mu.Unlock()
	return power.Compute(state, e.cat)
}

// NextBusinessPrice returns the price of the next unit of a business.
func (e *Engine) NextBusinessPrice(id string) (float64, error) {
	spec, ok := e.cat.Business(id)
	if !ok {
		return 0, domain.ErrUnknownBusiness
	}
	e.mu.Lock()
	qty := e.state.Businesses[id].Quantity
	e.mu.Unlock()
	return progression.BusinessPrice(spec.BaseCost, spec.CostMultiplier, qty), nil
}

// NextUpgradeCost returns the money cost of the next level upgrade for a
// business.
func (e *Engine) NextUpgradeCost(id string) (float64, error) {
	spec, ok := e.cat.Business(id)
	if !ok {
		return 0, domain.ErrUnknownBusiness
	}
	e.mu.Lock()
	level := e.state.Businesses[id].Level
	e.mu.Unlock()
	return progression.BusinessUpgradeCost(spec.BaseCost, level), nil
}

// Catalog exposes the immutable config tables to read-only collaborators.
func (e *Engine) Catalog() *catalog.Catalog {
	return e.cat
}

// transition runs mutate under the engine mutex. When mutate reports
// applied, the revision advances and subscribers receive a clone of the new
// state after the mutex is released; pending events publish at that point
// too. When mutate reports false the state must not have been touched.
func (e *Engine) transition(ctx context.Context, mutate func(s *domain.PlayerState, pending *[]event.Event) bool) bool {
	var pending []event.Event

	e.mu.Lock()
	applied := mutate(&e.state, &pending)
	var snap domain.PlayerState
	if applied {
		e.revision++
		snap = e.state.Clone()
	}
	e.mu.Unlock()

	if !applied {
		return false
	}

	if e.publisher != nil {
		for _, ev := range pending {
			if err := e.publisher.Publish(ctx, ev); err != nil {
				logger.FromContext(ctx).Warn(LogMsgEventPublishFailed, "event_type", ev.Type, "error", err)
			}
		}
	}
	e.notify(snap)
	return true
}

func (e *Engine) notify(snap domain.PlayerState) {
	e.subsMu.RLock()
	subs := make([]Subscriber, len(e.subs))
	copy(subs, e.subs)
	e.subsMu.RUnlock()

	for _, sub := range subs {
		sub(snap.Clone())
	}
}

// initialState builds the catalog-derived starting state. Every catalog
// entry gets a seeded instance so lookups never miss; business income
// starts at the catalog base income.
func (e *Engine) initialState(timesReset int) domain.PlayerState {
	s := domain.PlayerState{
		Money:         e.cat.Settings.StartingMoney,
		Reputation:    e.cat.Settings.StartingReputation,
		PlayerLevel:   1,
		Businesses:    make(map[string]domain.BusinessInstance, len(e.cat.Businesses)),
		Upgrades:      make(map[string]domain.UpgradeInstance, len(e.cat.Upgrades)),
		ClickUpgrades: make(map[string]domain.ClickUpgradeInstance, len(e.cat.ClickUpgrades)),

		UnlockedAchievements: make(map[string]bool),
		ActiveJobs:           make(map[string]domain.ActiveJob),
		JobCooldowns:         make(map[string]int64),

		TimesReset: timesReset,
	}
	for _, b := range e.cat.Businesses {
		s.Businesses[b.ID] = domain.BusinessInstance{Income: b.BaseIncome}
	}
	for _, u := range e.cat.Upgrades {
		s.Upgrades[u.ID] = domain.UpgradeInstance{}
	}
	for _, u := range e.cat.ClickUpgrades {
		s.ClickUpgrades[u.ID] = domain.ClickUpgradeInstance{}
	}
	return s
}

// ResetGame restores the catalog-derived defaults, preserving only the
// lifetime reset counter.
func (e *Engine) ResetGame(ctx context.Context) {
	e.transition(ctx, func(s *domain.PlayerState, pending *[]event.Event) bool {
		*s = e.initialState(s.TimesReset + 1)
		*pending = append(*pending, event.Event{
			Version: event.EventSchemaVersion,
			Type:    event.GameReset,
			Payload: nil,
		})
		return true
	})
	logger.FromContext(ctx).Info(LogMsgGameReset)
}

// earnMoney credits money into a stats bucket and maintains the max-money
// watermark. Callers hold the engine mutex.
func earnMoney(s *domain.PlayerState, amount float64, bucket *float64) {
	s.Money += amount
	*bucket += amount
	if s.Money > s.Stats.MaxMoney {
		s.Stats.MaxMoney = s.Money
	}
}

// gainXP credits experience and re-derives the level from the curve; the
// level field is never written from anywhere else.
func (e *Engine) gainXP(s *domain.PlayerState, xp float64, pending *[]event.Event) {
	if xp <= 0 {
		return
	}
	s.Experience += xp
	newLevel := e.curve.LevelFromXP(s.Experience)
	if newLevel > e.cat.Settings.MaxLevel {
		newLevel = e.cat.Settings.MaxLevel
	}
	if newLevel != s.PlayerLevel {
		old := s.PlayerLevel
		s.PlayerLevel = newLevel
		*pending = append(*pending, event.NewPlayerLevelUpEvent(old, newLevel, s.Experience))
	}
}

// applyReward credits a lump-sum reward, attributing money to the external
// bucket rather than clicks or passive income.
func (e *Engine) applyReward(s *domain.PlayerState, r domain.Reward, pending *[]event.Event) {
	if r.Money > 0 {
		earnMoney(s, r.Money, &s.Stats.MoneyFromExternal)
	}
	if r.Reputation > 0 {
		s.Reputation += r.Reputation
	}
	e.gainXP(s, r.XP, pending)
}

// recomputePassiveIncome re-derives the cached aggregate from scratch.
// Actions keep the aggregate incrementally; this is the authoritative
// recomputation used by hydration and reset paths.
func recomputePassiveIncome(s *domain.PlayerState) {
	total := 0.0
	for _, b := range s.Businesses {
		if b.Owned {
			total += b.Income * float64(b.Quantity)
		}
	}
	s.TotalPassiveIncome = total
}
