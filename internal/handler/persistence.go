package handler

import (
	"net/http"

	"github.com/S-Moreira06/buisness-tycoon-sub000/internal/engine"
	"github.com/S-Moreira06/buisness-tycoon-sub000/internal/logger"
	"github.com/S-Moreira06/buisness-tycoon-sub000/internal/metrics"
	"github.com/S-Moreira06/buisness-tycoon-sub000/internal/store"
)

// HandleSaveGame writes the current snapshot to the save store immediately,
// outside the autosave cadence.
func HandleSaveGame(eng *engine.Engine, st *store.Store, slot string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		snap := eng.Snapshot()
		if err := st.SaveSnapshot(r.Context(), slot, snap); err != nil {
			log.Error("Failed to save game", "slot", slot, "error", err)
			respondError(w, http.StatusInternalServerError, ErrMsgSaveFailed)
			return
		}
		metrics.SnapshotsSaved.Inc()

		log.Info("Game saved", "slot", slot, "saved_at_ms", snap.SavedAtMS)
		respondJSON(w, http.StatusOK, SuccessResponse{Message: "Game saved"})
	}
}

// HandleLoadGame loads the stored snapshot for the slot and hydrates the
// engine from it.
func HandleLoadGame(eng *engine.Engine, st *store.Store, slot string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		snap, err := st.LoadSnapshot(r.Context(), slot)
		if err != nil {
			status, msg := mapServiceErrorToUserMessage(err)
			log.Warn("Failed to load game", "slot", slot, "error", err)
			respondError(w, status, msg)
			return
		}

		if err := eng.Hydrate(r.Context(), snap); err != nil {
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}

		log.Info("Game loaded", "slot", slot, "saved_at_ms", snap.SavedAtMS)
		respondJSON(w, http.StatusOK, SuccessResponse{Message: "Game loaded"})
	}
}
