package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"sync"

	"github.com/yumbiru/yumvalues/internal/domain"
	"github.com/yumbiru/yumvalues/internal/logger"
)

var bufferPool = sync.Pool{
	New: func() interface{} {
		return bytes.NewBuffer(make([]byte, 0, 512))
	},
}

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	buf := bufferPool.Get().(*bytes.Buffer)
	defer func() {
		buf.Reset()
		bufferPool.Put(buf)
	}()

	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		// headers are already sent
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

// respondServiceError logs a failed operation and writes the mapped user message
func respondServiceError(w http.ResponseWriter, r *http.Request, opName string, err error) {
	log := logger.FromContext(r.Context())
	status, msg := mapServiceErrorToUserMessage(err)
	if status >= http.StatusInternalServerError {
		log.Error(opName, "error", err, "status", status)
	} else {
		log.Warn(opName, "error", err, "status", status)
	}
	respondError(w, status, msg)
}

// User-facing error messages for service errors
const (
	ErrMsgGenericServerError = "Something went wrong"
	ErrMsgUnknownError       = "Unknown error"

	ErrMsgValidationError   = "Invalid input"
	ErrMsgInsufficientError = "Not enough in inventory"
	ErrMsgUnknownItemError  = "Unknown item"
	ErrMsgPersistenceError  = "The trade service is unavailable. Please try again."

	ErrMsgTradeNotFoundError   = "Trade not found"
	ErrMsgTradeNotPendingError = "Trade is no longer pending"
	ErrMsgNotTradeOwnerError   = "Only the player who proposed this trade can decline it"
	ErrMsgSessionNotFoundError = "Session not found. Open a new session."
)

// mapServiceErrorToUserMessage maps domain errors to an HTTP status and one
// human-readable message. Wrapped detail after the sentinel is kept for
// validation and inventory errors since it names the offending input.
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	switch {
	case errors.Is(err, domain.ErrInsufficientInventory):
		return http.StatusBadRequest, withDetail(err, domain.ErrMsgInsufficientInventory, ErrMsgInsufficientError)
	case errors.Is(err, domain.ErrUnknownItem):
		return http.StatusBadRequest, withDetail(err, domain.ErrMsgUnknownItem, ErrMsgUnknownItemError)
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest, withDetail(err, domain.ErrMsgValidation, ErrMsgValidationError)
	case errors.Is(err, domain.ErrTradeNotFound):
		return http.StatusNotFound, ErrMsgTradeNotFoundError
	case errors.Is(err, domain.ErrTradeNotPending):
		return http.StatusConflict, ErrMsgTradeNotPendingError
	case errors.Is(err, domain.ErrNotTradeOwner):
		return http.StatusForbidden, ErrMsgNotTradeOwnerError
	case errors.Is(err, domain.ErrSessionNotFound):
		return http.StatusNotFound, ErrMsgSessionNotFoundError
	case errors.Is(err, domain.ErrPersistence):
		return http.StatusBadGateway, ErrMsgPersistenceError
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}

// withDetail turns "<sentinel>: <detail>" into "<label>: <detail>". Errors
// wrapped more than once keep only the innermost detail.
func withDetail(err error, sentinel, label string) string {
	msg := err.Error()
	idx := strings.LastIndex(msg, sentinel+": ")
	if idx < 0 {
		return label
	}
	detail := strings.TrimSpace(msg[idx+len(sentinel)+2:])
	if detail == "" {
		return label
	}
	return label + ": " + detail
}
