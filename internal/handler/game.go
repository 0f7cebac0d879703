package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/S-Moreira06/buisness-tycoon-sub000/internal/catalog"
	"github.com/S-Moreira06/buisness-tycoon-sub000/internal/domain"
	"github.com/S-Moreira06/buisness-tycoon-sub000/internal/engine"
	"github.com/S-Moreira06/buisness-tycoon-sub000/internal/logger"
)

// HandleGetState returns the full player state.
func HandleGetState(eng *engine.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, DataResponse{Data: eng.State()})
	}
}

// HandleClick processes one manual tap and returns its outcome.
func HandleClick(eng *engine.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		out := eng.Click(r.Context())
		respondJSON(w, http.StatusOK, DataResponse{Data: out})
	}
}

// HandleGetClickPower returns the derived tap profile.
func HandleGetClickPower(eng *engine.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, DataResponse{Data: eng.GetClickPower()})
	}
}

// BusinessActionRequest identifies the business an action targets
type BusinessActionRequest struct {
	BusinessID string `json:"business_id" validate:"required,max=100"`
}

// BusinessView combines a catalog business with the player's holdings and
// the prices of the next actions on it.
type BusinessView struct {
	Spec            catalog.BusinessSpec    `json:"spec"`
	Instance        domain.BusinessInstance `json:"instance"`
	NextPrice       float64                 `json:"next_price"`
	NextUpgradeCost float64                 `json:"next_upgrade_cost"`
}

// HandleGetBusinesses lists every business with holdings and prices.
func HandleGetBusinesses(eng *engine.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		state := eng.State()
		cat := eng.Catalog()

		views := make([]BusinessView, 0, len(cat.Businesses))
		for _, spec := range cat.Businesses {
			price, _ := eng.NextBusinessPrice(spec.ID)
			upgradeCost, _ := eng.NextUpgradeCost(spec.ID)
			views = append(views, BusinessView{
				Spec:            spec,
				Instance:        state.Businesses[spec.ID],
				NextPrice:       price,
				NextUpgradeCost: upgradeCost,
			})
		}
		respondJSON(w, http.StatusOK, DataResponse{Data: views})
	}
}

// HandleBuyBusiness purchases one unit of a business.
func HandleBuyBusiness(eng *engine.Engine) http.HandlerFunc {
	return decodeBusinessAction(func(r *http.Request, id string) (bool, error) {
		return eng.BuyBusiness(r.Context(), id)
	})
}

// HandleUpgradeBusiness buys the next level of an owned business.
func HandleUpgradeBusiness(eng *engine.Engine) http.HandlerFunc {
	return decodeBusinessAction(func(r *http.Request, id string) (bool, error) {
		return eng.UpgradeBusiness(r.Context(), id)
	})
}

// decodeBusinessAction shares the decode/validate/respond plumbing of the
// business action handlers.
func decodeBusinessAction(action func(r *http.Request, id string) (bool, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req BusinessActionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("Failed to decode business action request", "error", err)
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
			return
		}
		if err := GetValidator().ValidateStruct(req); err != nil {
			log.Warn("Invalid request", "error", err)
			respondError(w, http.StatusBadRequest, fmt.Sprintf("%s: %v", ErrMsgInvalidRequestSummary, err))
			return
		}

		applied, err := action(r, req.BusinessID)
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

// UpgradeActionRequest identifies the upgrade an action targets
type UpgradeActionRequest struct {
	UpgradeID string `json:"upgrade_id" validate:"required,max=100"`
}

// HandlePurchaseUpgrade buys a business-targeted upgrade with reputation.
func HandlePurchaseUpgrade(eng *engine.Engine) http.HandlerFunc {
	return decodeUpgradeAction(func(r *http.Request, id string) (bool, error) {
		return eng.PurchaseUpgrade(r.Context(), id)
	})
}

// HandlePurchaseClickUpgrade buys a click upgrade with reputation.
func HandlePurchaseClickUpgrade(eng *engine.Engine) http.HandlerFunc {
	return decodeUpgradeAction(func(r *http.Request, id string) (bool, error) {
		return eng.PurchaseClickUpgrade(r.Context(), id)
	})
}

func decodeUpgradeAction(action func(r *http.Request, id string) (bool, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req UpgradeActionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("Failed to decode upgrade action request", "error", err)
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
			return
		}
		if err := GetValidator().ValidateStruct(req); err != nil {
			log.Warn("Invalid request", "error", err)
			respondError(w, http.StatusBadRequest, fmt.Sprintf("%s: %v", ErrMsgInvalidRequestSummary, err))
			return
		}

		applied, err := action(r, req.UpgradeID)
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

// ExternalGainRequest credits progression resources from outside the core
// loops, e.g. a promotional grant.
type ExternalGainRequest struct {
	Money      float64 `json:"money" validate:"gte=0"`
	Reputation float64 `json:"reputation" validate:"gte=0"`
	XP         float64 `json:"xp" validate:"gte=0"`
}

// HandleExternalGain applies an external reward grant.
func HandleExternalGain(eng *engine.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req ExternalGainRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("Failed to decode external gain request", "error", err)
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
			return
		}
		if err := GetValidator().ValidateStruct(req); err != nil {
			log.Warn("Invalid request", "error", err)
			respondError(w, http.StatusBadRequest, fmt.Sprintf("%s: %v", ErrMsgInvalidRequestSummary, err))
			return
		}

		err := eng.ApplyExternalGain(r.Context(), domain.Reward{
			Money:      req.Money,
			Reputation: req.Reputation,
			XP:         req.XP,
		})
		if err != nil {
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}
		respondJSON(w, http.StatusOK, ActionResponse{Applied: true})
	}
}

// HandleResetGame restores the catalog-derived defaults.
func HandleResetGame(eng *engine.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		eng.ResetGame(r.Context())
		respondJSON(w, http.StatusOK, SuccessResponse{Message: "Game reset"})
	}
}

// TierResponse reports the player's current reputation tier.
type TierResponse struct {
	Tier       *catalog.TierSpec `json:"tier,omitempty"`
	Reputation float64           `json:"reputation"`
}

// HandleGetTier returns the reputation tier the player currently sits in.
func HandleGetTier(eng *engine.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		state := eng.State()
		resp := TierResponse{Reputation: state.Reputation}
		if tier, ok := eng.Catalog().TierForReputation(state.Reputation); ok {
			resp.Tier = &tier
		}
		respondJSON(w, http.StatusOK, DataResponse{Data: resp})
	}
}
