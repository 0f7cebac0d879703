package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"sync"

	"github.com/S-Moreira06/buisness-tycoon-sub000/internal/domain"
)

// Standard response types for consistent API responses

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// ActionResponse reports the outcome of a state transition request. Applied
// is false when the action was a precondition no-op (unaffordable, already
// owned, still on cooldown).
type ActionResponse struct {
	Applied bool        `json:"applied"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// DataResponse represents a response with data payload
type DataResponse struct {
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data"`
}

var bufferPool = sync.Pool{
	New: func() interface{} { return new(bytes.Buffer) },
}

func getBuffer() *bytes.Buffer {
	buf := bufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	return buf
}

func putBuffer(buf *bytes.Buffer) {
	bufferPool.Put(buf)
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	buf := getBuffer()
	defer putBuffer(buf)

	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		slog.Error("Failed to encode JSON response", "error", err)
		return
	}
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// mapServiceErrorToUserMessage maps domain errors to HTTP status codes and
// messages safe to show a client.
func mapServiceErrorToUserMessage(err error) (int, string) {
	switch {
	case err == nil:
		return http.StatusInternalServerError, ErrMsgUnknownError
	case errors.Is(err, domain.ErrUnknownBusiness):
		return http.StatusNotFound, ErrMsgBusinessNotFound
	case errors.Is(err, domain.ErrUnknownUpgrade):
		return http.StatusNotFound, ErrMsgUpgradeNotFound
	case errors.Is(err, domain.ErrUnknownJob):
		return http.StatusNotFound, ErrMsgJobNotFound
	case errors.Is(err, domain.ErrUnknownAchievement):
		return http.StatusNotFound, ErrMsgAchievementNotFound
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, ErrMsgInvalidRequestSummary
	case errors.Is(err, domain.ErrSnapshotNotFound):
		return http.StatusNotFound, ErrMsgSnapshotNotFound
	case errors.Is(err, domain.ErrSnapshotUnsupported):
		return http.StatusBadRequest, ErrMsgSnapshotUnsupported
	}
	return http.StatusInternalServerError, ErrMsgGenericServerError
}
