package handler

import (
	"net/http"

	"github.com/S-Moreira06/buisness-tycoon-sub000/internal/achievement"
	"github.com/S-Moreira06/buisness-tycoon-sub000/internal/catalog"
	"github.com/S-Moreira06/buisness-tycoon-sub000/internal/engine"
	"github.com/S-Moreira06/buisness-tycoon-sub000/internal/unlock"
)

// AchievementView combines a catalog achievement with its unlock state and
// fractional progress.
type AchievementView struct {
	Spec     catalog.AchievementSpec `json:"spec"`
	Unlocked bool                    `json:"unlocked"`
	Progress unlock.Result           `json:"progress"`
}

// HandleGetAchievements lists every achievement with progress, in catalog
// order.
func HandleGetAchievements(eng *engine.Engine, monitor *achievement.Monitor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		state := eng.State()
		progress := monitor.Progress()

		cat := eng.Catalog()
		views := make([]AchievementView, 0, len(cat.Achievements))
		for _, spec := range cat.Achievements {
			views = append(views, AchievementView{
				Spec:     spec,
				Unlocked: state.UnlockedAchievements[spec.ID],
				Progress: progress[spec.ID],
			})
		}
		respondJSON(w, http.StatusOK, DataResponse{Data: views})
	}
}

// NotificationsResponse carries achievement unlocks not yet shown to the
// player. Draining is destructive: a second request returns an empty list.
type NotificationsResponse struct {
	Achievements []string `json:"achievements"`
}

// HandleDrainNotifications returns and clears pending unlock notifications.
func HandleDrainNotifications(eng *engine.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		drained := eng.ConsumeNewAchievements(r.Context())
		if drained == nil {
			drained = []string{}
		}
		respondJSON(w, http.StatusOK, NotificationsResponse{Achievements: drained})
	}
}
