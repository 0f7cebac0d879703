// Package achievement watches engine transitions and unlocks achievements
// whose conditions are met. A faulty condition or predicate can never take
// the monitor down: each evaluation is isolated behind a recover.
package achievement

import (
	"context"
	"sync"
	"time"

	"github.com/S-Moreira06/buisness-tycoon-sub000/internal/catalog"
	"github.com/S-Moreira06/buisness-tycoon-sub000/internal/domain"
	"github.com/S-Moreira06/buisness-tycoon-sub000/internal/engine"
	"github.com/S-Moreira06/buisness-tycoon-sub000/internal/logger"
	"github.com/S-Moreira06/buisness-tycoon-sub000/internal/unlock"
)

// Predicate is a programmatic achievement check for conditions the declarative
// condition types cannot express. It runs on a state clone.
type Predicate func(state domain.PlayerState) bool

// Monitor evaluates achievement conditions after every engine transition.
type Monitor struct {
	eng   *engine.Engine
	cat   *catalog.Catalog
	cache *unlock.ResultCache

	mu         sync.RWMutex
	predicates map[string]Predicate
}

// NewMonitor creates a monitor bound to an engine. Call Attach to start
// receiving transitions.
func NewMonitor(eng *engine.Engine) *Monitor {
	return &Monitor{
		eng:        eng,
		cat:        eng.Catalog(),
		cache:      unlock.NewResultCache(512, 5*time.Minute),
		predicates: make(map[string]Predicate),
	}
}

// RegisterPredicate attaches a programmatic check to an achievement id. The
// achievement unlocks when its declared conditions AND the predicate pass.
func (m *Monitor) RegisterPredicate(id string, p Predicate) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.predicates[id] = p
}

// Attach subscribes the monitor to engine transitions.
func (m *Monitor) Attach() {
	m.eng.Subscribe(func(state domain.PlayerState) {
		m.sweep(context.Background(), state)
	})
}

// sweep checks every locked achievement against the given state. Unlocks
// dispatch back into the engine, which is reentrant from subscribers.
func (m *Monitor) sweep(ctx context.Context, state domain.PlayerState) {
	revision := m.eng.Revision()

	for _, spec := range m.cat.Achievements {
		if state.UnlockedAchievements[spec.ID] {
			continue
		}
		if !m.safeEval(ctx, spec, state, revision) {
			continue
		}
		if _, err := m.eng.UnlockAchievement(ctx, spec.ID, spec.Reward); err != nil {
			logger.FromContext(ctx).Error(LogMsgUnlockFailed, "achievement_id", spec.ID, "error", err)
		}
	}
}

// safeEval evaluates one achievement, treating a panic in a condition or
// predicate as "not met" and logging it.
func (m *Monitor) safeEval(ctx context.Context, spec catalog.AchievementSpec, state domain.PlayerState, revision uint64) (met bool) {
	defer func() {
		if r := recover(); r != nil {
			logger.FromContext(ctx).Error(LogMsgEvaluationPanic, "achievement_id", spec.ID, "panic", r)
			met = false
		}
	}()

	res, ok := m.cache.Get(spec.ID, revision)
	if !ok {
		res = unlock.Evaluate(state, m.cat, spec.Conditions)
		m.cache.Set(spec.ID, revision, res)
	}
	if !res.Unlocked {
		return false
	}

	m.mu.RLock()
	p, hasPredicate := m.predicates[spec.ID]
	m.mu.RUnlock()
	if hasPredicate && !p(state) {
		return false
	}
	return true
}

// Progress reports evaluation results for every achievement, keyed by id.
// Unlocked achievements report progress 1 without re-evaluating.
func (m *Monitor) Progress() map[string]unlock.Result {
	state := m.eng.State()
	revision := m.eng.Revision()

	out := make(map[string]unlock.Result, len(m.cat.Achievements))
	for _, spec := range m.cat.Achievements {
		if state.UnlockedAchievements[spec.ID] {
			out[spec.ID] = unlock.Result{Unlocked: true, Progress: 1}
			continue
		}
		res, ok := m.cache.Get(spec.ID, revision)
		if !ok {
			res = unlock.Evaluate(state, m.cat, spec.Conditions)
			m.cache.Set(spec.ID, revision, res)
		}
		out[spec.ID] = res
	}
	return out
}
