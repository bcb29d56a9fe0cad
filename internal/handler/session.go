package handler

import (
	"context"
	"net/http"

	"github.com/yumbiru/yumvalues/internal/logger"
	"github.com/yumbiru/yumvalues/internal/session"
)

// SessionStore is the session registry the HTTP layer drives
type SessionStore interface {
	Open(ctx context.Context, sessionID, identity string) (*session.View, error)
	View(ctx context.Context, sessionID string) (*session.View, error)
	Dispatch(ctx context.Context, sessionID string, action session.Action) (*session.View, error)
	Close(sessionID string) bool
}

// OpenSessionRequest names the user a session acts for
type OpenSessionRequest struct {
	Identity string `json:"identity" validate:"required,max=64,excludesall=\x00\n\r\t"`
}

// HandleOpenSession creates a session, or resumes the one named by X-Session-ID
// @Summary Open a session
// @Description Creates a session for identity. Sending X-Session-ID resumes a live session or recreates it with its stored inventory.
// @Tags session
// @Accept json
// @Produce json
// @Param X-Session-ID header string false "Session to resume"
// @Param request body OpenSessionRequest true "Identity"
// @Success 200 {object} session.View
// @Failure 400 {object} ValidationErrorResponse
// @Security ApiKeyAuth
// @Router /api/v1/session [post]
func HandleOpenSession(store SessionStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req OpenSessionRequest
		if !decodeAndValidate(w, r, &req, ErrMsgOpenSessionFailed) {
			return
		}

		view, err := store.Open(r.Context(), r.Header.Get(HeaderSessionID), req.Identity)
		if err != nil {
			respondServiceError(w, r, ErrMsgOpenSessionFailed, err)
			return
		}

		log.Info(LogMsgSessionOpened, "session_id", view.SessionID, "identity", view.Identity)
		w.Header().Set(HeaderSessionID, view.SessionID)
		respondJSON(w, http.StatusOK, view)
	}
}

// HandleGetSession returns the current view of a session
// @Summary Get session view
// @Tags session
// @Produce json
// @Param X-Session-ID header string true "Session id"
// @Success 200 {object} session.View
// @Failure 404 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /api/v1/session [get]
func HandleGetSession(store SessionStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionID, ok := sessionIDFromHeader(w, r)
		if !ok {
			return
		}

		view, err := store.View(r.Context(), sessionID)
		if err != nil {
			respondServiceError(w, r, ErrMsgGetSessionFailed, err)
			return
		}
		respondJSON(w, http.StatusOK, view)
	}
}

// HandleSessionAction applies one action to a session and returns the new view
// @Summary Apply a session action
// @Description Applies one intent (search, filter, selection, inventory, trade desk, propose, accept, decline). A failed action leaves the session unchanged.
// @Tags session
// @Accept json
// @Produce json
// @Param X-Session-ID header string true "Session id"
// @Param request body session.Action true "Action"
// @Success 200 {object} session.View
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /api/v1/session/actions [post]
func HandleSessionAction(store SessionStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		sessionID, ok := sessionIDFromHeader(w, r)
		if !ok {
			return
		}

		var action session.Action
		if !decodeAndValidate(w, r, &action, ErrMsgActionFailed) {
			return
		}

		view, err := store.Dispatch(r.Context(), sessionID, action)
		if err != nil {
			respondServiceError(w, r, ErrMsgActionFailed, err)
			return
		}

		log.Debug(LogMsgActionDispatched, "session_id", sessionID, "action", action.Type, "item", action.ItemID)
		respondJSON(w, http.StatusOK, view)
	}
}

// HandleCloseSession drops a live session. Its inventory stays stored.
// @Summary Close a session
// @Tags session
// @Produce json
// @Param X-Session-ID header string true "Session id"
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /api/v1/session [delete]
func HandleCloseSession(store SessionStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionID, ok := sessionIDFromHeader(w, r)
		if !ok {
			return
		}

		if !store.Close(sessionID) {
			respondError(w, http.StatusNotFound, ErrMsgSessionNotFoundError)
			return
		}

		logger.FromContext(r.Context()).Info(LogMsgSessionClosed, "session_id", sessionID)
		respondJSON(w, http.StatusOK, SuccessResponse{Message: "Session closed"})
	}
}

func sessionIDFromHeader(w http.ResponseWriter, r *http.Request) (string, bool) {
	sessionID := r.Header.Get(HeaderSessionID)
	if sessionID == "" {
		logger.FromContext(r.Context()).Warn("Missing session header")
		respondError(w, http.StatusBadRequest, ErrMsgMissingSessionHeader)
		return "", false
	}
	return sessionID, true
}
