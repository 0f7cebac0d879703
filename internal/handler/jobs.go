package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/S-Moreira06/buisness-tycoon-sub000/internal/engine"
	"github.com/S-Moreira06/buisness-tycoon-sub000/internal/logger"
)

// JobActionRequest identifies the job an action targets
type JobActionRequest struct {
	JobID string `json:"job_id" validate:"required,max=100"`
}

// HandleGetJobs lists every job with its derived status.
func HandleGetJobs(eng *engine.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, DataResponse{Data: eng.Jobs()})
	}
}

// HandleStartJob begins a timed job run.
func HandleStartJob(eng *engine.Engine) http.HandlerFunc {
	return decodeJobAction(func(r *http.Request, id string) (bool, error) {
		return eng.StartJob(r.Context(), id)
	})
}

// HandleClaimJob settles a finished job run.
func HandleClaimJob(eng *engine.Engine) http.HandlerFunc {
	return decodeJobAction(func(r *http.Request, id string) (bool, error) {
		return eng.ClaimJobReward(r.Context(), id)
	})
}

func decodeJobAction(action func(r *http.Request, id string) (bool, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req JobActionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("Failed to decode job action request", "error", err)
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
			return
		}
		if err := GetValidator().ValidateStruct(req); err != nil {
			log.Warn("Invalid request", "error", err)
			respondError(w, http.StatusBadRequest, fmt.Sprintf("%s: %v", ErrMsgInvalidRequestSummary, err))
			return
		}

		applied, err := action(r, req.JobID)
		if err != nil {
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}

		resp := ActionResponse{Applied: applied}
		if !applied {
			resp.Message = ErrMsgNotApplied
		}
		respondJSON(w, http.StatusOK, resp)
	}
}
