package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/S-Moreira06/buisness-tycoon-sub000/internal/catalog"
	"github.com/S-Moreira06/buisness-tycoon-sub000/internal/domain"
	"github.com/S-Moreira06/buisness-tycoon-sub000/internal/engine"
)

func newTestEngine(t *testing.T) *engine.Engine {
	t.Helper()
	cat, err := catalog.Load()
	require.NoError(t, err)
	return engine.New(cat, nil)
}

func postJSON(t *testing.T, h http.HandlerFunc, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func TestHandleClick(t *testing.T) {
	eng := newTestEngine(t)
	rec := postJSON(t, HandleClick(eng), "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	resp := decodeBody[struct {
		Data engine.ClickOutcome `json:"data"`
	}](t, rec)
	// The crit roll is live, so the gain is either the base or the crit value.
	assert.Contains(t, []float64{1.0, 2.0}, resp.Data.MoneyGained)
	assert.Equal(t, 1, resp.Data.Combo)
	assert.Equal(t, resp.Data.MoneyGained, eng.State().Money)
}

func TestHandleGetState(t *testing.T) {
	eng := newTestEngine(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/state", nil)
	rec := httptest.NewRecorder()
	HandleGetState(eng)(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	resp := decodeBody[struct {
		Data domain.PlayerState `json:"data"`
	}](t, rec)
	assert.Equal(t, 1, resp.Data.PlayerLevel)
	assert.Len(t, resp.Data.Businesses, len(eng.Catalog().Businesses))
}

func TestHandleBuyBusiness(t *testing.T) {
	eng := newTestEngine(t)
	require.NoError(t, eng.ApplyExternalGain(context.Background(), domain.Reward{Money: 100}))

	rec := postJSON(t, HandleBuyBusiness(eng), `{"business_id":"lemonadeStand"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decodeBody[ActionResponse](t, rec)
	assert.True(t, resp.Applied)
	assert.Empty(t, resp.Message)
	assert.True(t, eng.State().Businesses["lemonadeStand"].Owned)
}

func TestHandleBuyBusinessUnaffordable(t *testing.T) {
	eng := newTestEngine(t)

	rec := postJSON(t, HandleBuyBusiness(eng), `{"business_id":"lemonadeStand"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decodeBody[ActionResponse](t, rec)
	assert.False(t, resp.Applied)
	assert.Equal(t, ErrMsgNotApplied, resp.Message)
}

func TestHandleBuyBusinessUnknownID(t *testing.T) {
	eng := newTestEngine(t)

	rec := postJSON(t, HandleBuyBusiness(eng), `{"business_id":"no_such_business"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	resp := decodeBody[ErrorResponse](t, rec)
	assert.Equal(t, ErrMsgBusinessNotFound, resp.Error)
}

func TestHandleBuyBusinessMalformedBody(t *testing.T) {
	eng := newTestEngine(t)

	rec := postJSON(t, HandleBuyBusiness(eng), `{"business_id": 42`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleBuyBusinessMissingID(t *testing.T) {
	eng := newTestEngine(t)

	rec := postJSON(t, HandleBuyBusiness(eng), `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandlePurchaseUpgradeUnknownID(t *testing.T) {
	eng := newTestEngine(t)

	rec := postJSON(t, HandlePurchaseUpgrade(eng), `{"upgrade_id":"ghost_upgrade"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandleExternalGain(t *testing.T) {
	eng := newTestEngine(t)

	rec := postJSON(t, HandleExternalGain(eng), `{"money": 500, "reputation": 3, "xp": 10}`)
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decodeBody[ActionResponse](t, rec)
	assert.True(t, resp.Applied)

	s := eng.State()
	assert.Equal(t, 500.0, s.Money)
	assert.Equal(t, 3.0, s.Reputation)
	assert.Equal(t, 10.0, s.Experience)
}

func TestHandleExternalGainRejectsNegative(t *testing.T) {
	eng := newTestEngine(t)

	rec := postJSON(t, HandleExternalGain(eng), `{"money": -5}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, 0.0, eng.State().Money)
}

func TestHandleGetBusinesses(t *testing.T) {
	eng := newTestEngine(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/businesses", nil)
	rec := httptest.NewRecorder()
	HandleGetBusinesses(eng)(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeBody[struct {
		Data []BusinessView `json:"data"`
	}](t, rec)
	require.Len(t, resp.Data, len(eng.Catalog().Businesses))

	for _, v := range resp.Data {
		if v.Spec.ID == "lemonadeStand" {
			assert.Equal(t, 60.0, v.NextPrice)
			assert.Equal(t, 0, v.Instance.Quantity)
		}
	}
}

func TestHandleGetTier(t *testing.T) {
	eng := newTestEngine(t)
	require.NoError(t, eng.ApplyExternalGain(context.Background(), domain.Reward{Reputation: 30}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/tier", nil)
	rec := httptest.NewRecorder()
	HandleGetTier(eng)(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeBody[struct {
		Data TierResponse `json:"data"`
	}](t, rec)
	require.NotNil(t, resp.Data.Tier)
	assert.Equal(t, "local", resp.Data.Tier.ID)
	assert.Equal(t, 30.0, resp.Data.Reputation)
}

func TestHandleResetGame(t *testing.T) {
	eng := newTestEngine(t)
	require.NoError(t, eng.ApplyExternalGain(context.Background(), domain.Reward{Money: 100}))

	rec := postJSON(t, HandleResetGame(eng), "")
	require.Equal(t, http.StatusOK, rec.Code)

	s := eng.State()
	assert.Equal(t, 0.0, s.Money)
	assert.Equal(t, 1, s.TimesReset)
}
