package engine

import (
	"context"

	"github.com/S-Moreira06/buisness-tycoon-sub000/internal/catalog"
	"github.com/S-Moreira06/buisness-tycoon-sub000/internal/domain"
	"github.com/S-Moreira06/buisness-tycoon-sub000/internal/event"
	"github.com/S-Moreira06/buisness-tycoon-sub000/internal/metrics"
)

// JobView is the read model for one catalog job combined with its current
// run state for this player.
type JobView struct {
	Spec        catalog.JobSpec  `json:"spec"`
	Status      domain.JobStatus `json:"status"`
	EndTimeMS   int64            `json:"end_time_ms,omitempty"`
	CooldownEnd int64            `json:"cooldown_end_ms,omitempty"`
}

// StartJob begins a timed job run. No-op when the player level is below the
// job's unlock level, a run is already active, or the cooldown from the last
// claim has not elapsed.
func (e *Engine) StartJob(ctx context.Context, id string) (bool, error) {
	spec, ok := e.cat.Job(id)
	if !ok {
		return false, domain.ErrUnknownJob
	}

	var endMS int64
	applied := e.transition(ctx, func(s *domain.PlayerState, pending *[]event.Event) bool {
		if s.PlayerLevel < spec.UnlockLevel {
			return false
		}
		if _, active := s.ActiveJobs[id]; active {
			return false
		}

		nowMS := e.now().UnixMilli()
		if last, ok := s.JobCooldowns[id]; ok && nowMS-last < spec.CooldownSeconds*1000 {
			return false
		}

		endMS = nowMS + spec.DurationSeconds*1000
		s.ActiveJobs[id] = domain.ActiveJob{
			Status:      domain.JobInProgress,
			StartedAtMS: nowMS,
			EndTimeMS:   endMS,
		}

		*pending = append(*pending, event.NewJobStartedEvent(id, endMS))
		return true
	})

	return applied, nil
}

// ClaimJobReward settles a finished job run: grants the reward, removes the
// run and starts the cooldown. No-op while the run is still in progress or
// when no run exists.
func (e *Engine) ClaimJobReward(ctx context.Context, id string) (bool, error) {
	spec, ok := e.cat.Job(id)
	if !ok {
		return false, domain.ErrUnknownJob
	}

	applied := e.transition(ctx, func(s *domain.PlayerState, pending *[]event.Event) bool {
		run, active := s.ActiveJobs[id]
		if !active {
			return false
		}

		nowMS := e.now().UnixMilli()
		if run.StatusAt(nowMS) != domain.JobCompleted {
			return false
		}

		delete(s.ActiveJobs, id)
		s.JobCooldowns[id] = nowMS
		s.Stats.JobsCompleted++

		e.applyReward(s, spec.Reward, pending)

		*pending = append(*pending, event.NewJobClaimedEvent(id, spec.Reward))
		return true
	})

	if applied {
		metrics.JobsClaimed.Inc()
		metrics.MoneyEarned.Add(spec.Reward.Money)
	}
	return applied, nil
}

// Jobs returns the read model for every catalog job in catalog order, with
// statuses derived against the current clock.
func (e *Engine) Jobs() []JobView {
	e.mu.Lock()
	state := e.state.Clone()
	e.mu.Unlock()

	nowMS := e.now().UnixMilli()
	views := make([]JobView, 0, len(e.cat.Jobs))
	for _, spec := range e.cat.Jobs {
		v := JobView{Spec: spec, Status: domain.JobAvailable}
		if run, ok := state.ActiveJobs[spec.ID]; ok {
			v.Status = run.StatusAt(nowMS)
			v.EndTimeMS = run.EndTimeMS
		} else if last, ok := state.JobCooldowns[spec.ID]; ok {
			cooldownEnd := last + spec.CooldownSeconds*1000
			if nowMS < cooldownEnd {
				v.Status = domain.JobClaimed
				v.CooldownEnd = cooldownEnd
			}
		}
		views = append(views, v)
	}
	return views
}
