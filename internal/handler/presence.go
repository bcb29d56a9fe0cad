package handler

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/yumbiru/yumvalues/internal/logger"
	"github.com/yumbiru/yumvalues/internal/presence"
)

// PresenceTracker is the viewer registry behind the presence endpoints
type PresenceTracker interface {
	Join(ctx context.Context) (string, error)
	Heartbeat(ctx context.Context, id string) error
	Leave(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
	Config() presence.Config
}

// ViewerCountResponse reports the active viewer count
type ViewerCountResponse struct {
	Count int `json:"count"`
}

// Viewer socket message types
const (
	SocketMsgJoined  = "joined"
	SocketMsgCount   = "count"
	SocketMsgVisible = "visible"
	SocketMsgHidden  = "hidden"
)

// SocketMessage is exchanged on the viewer socket. Clients send visible and
// hidden; the server sends joined and count.
type SocketMessage struct {
	Type     string `json:"type"`
	ViewerID string `json:"viewer_id,omitempty"`
	Count    int    `json:"count"`
}

const socketWriteTimeout = 5 * time.Second

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// HandleGetViewerCount returns the number of viewers seen within the active window
// @Summary Active viewer count
// @Tags presence
// @Produce json
// @Success 200 {object} ViewerCountResponse
// @Failure 502 {object} ErrorResponse
// @Router /api/v1/presence [get]
func HandleGetViewerCount(tracker PresenceTracker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		n, err := tracker.Count(r.Context())
		if err != nil {
			respondServiceError(w, r, ErrMsgCountViewersFailed, err)
			return
		}
		respondJSON(w, http.StatusOK, ViewerCountResponse{Count: n})
	}
}

// HandleViewerSocket registers the connection as a viewer for its lifetime.
// While the client reports itself visible the server heartbeats its row and
// pushes the current count; coming back from hidden heartbeats at once. On
// disconnect the row is deleted.
// @Summary Live viewer socket
// @Tags presence
// @Router /api/v1/presence/ws [get]
func HandleViewerSocket(tracker PresenceTracker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			// Upgrade has already written the HTTP error
			log.Warn(LogMsgUpgradeFailed, "error", err)
			return
		}
		defer conn.Close()

		ctx, cancel := context.WithCancel(r.Context())
		defer cancel()

		id, err := tracker.Join(ctx)
		if err != nil {
			log.Error(ErrMsgJoinFailed, "error", err)
			_ = conn.WriteMessage(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseInternalServerErr, ErrMsgJoinFailed))
			return
		}
		log = log.With("viewer_id", id)
		log.Info(LogMsgViewerSocketOpen)
		defer func() {
			// detached so the row is removed after a client hangup
			leaveCtx, leaveCancel := context.WithTimeout(context.WithoutCancel(r.Context()), socketWriteTimeout)
			defer leaveCancel()
			if err := tracker.Leave(leaveCtx, id); err != nil {
				log.Warn(LogMsgLeaveFailed, "error", err)
			}
			log.Info(LogMsgViewerSocketClose)
		}()

		sock := &viewerSocket{conn: conn, visible: true, resumed: make(chan struct{}, 1)}
		if err := sock.send(SocketMessage{Type: SocketMsgJoined, ViewerID: id, Count: countOrZero(ctx, tracker)}); err != nil {
			log.Warn(LogMsgSocketWriteFailed, "error", err)
			return
		}

		go sock.readLoop(cancel)

		ticker := time.NewTicker(tracker.Config().HeartbeatInterval)
		defer ticker.Stop()
		beat := func() bool {
			if err := tracker.Heartbeat(ctx, id); err != nil {
				log.Warn(LogMsgHeartbeatFailed, "error", err)
				return true
			}
			if err := sock.send(SocketMessage{Type: SocketMsgCount, Count: countOrZero(ctx, tracker)}); err != nil {
				log.Warn(LogMsgSocketWriteFailed, "error", err)
				return false
			}
			return true
		}

		for {
			select {
			case <-ctx.Done():
				return
			case <-sock.resumed:
				if !beat() {
					return
				}
			case <-ticker.C:
				if !sock.isVisible() {
					continue
				}
				if !beat() {
					return
				}
			}
		}
	}
}

type viewerSocket struct {
	conn *websocket.Conn

	writeMu sync.Mutex
	mu      sync.Mutex
	visible bool
	// resumed fires on a hidden → visible transition
	resumed chan struct{}
}

func (s *viewerSocket) send(msg SocketMessage) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	_ = s.conn.SetWriteDeadline(time.Now().Add(socketWriteTimeout))
	return s.conn.WriteJSON(msg)
}

func (s *viewerSocket) isVisible() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.visible
}

// readLoop tracks visibility reports until the client goes away
func (s *viewerSocket) readLoop(done context.CancelFunc) {
	defer done()
	for {
		var msg SocketMessage
		if err := s.conn.ReadJSON(&msg); err != nil {
			return
		}
		s.mu.Lock()
		wasVisible := s.visible
		switch msg.Type {
		case SocketMsgVisible:
			s.visible = true
		case SocketMsgHidden:
			s.visible = false
		}
		s.mu.Unlock()

		if !wasVisible && msg.Type == SocketMsgVisible {
			select {
			case s.resumed <- struct{}{}:
			default:
			}
		}
	}
}

func countOrZero(ctx context.Context, tracker PresenceTracker) int {
	n, err := tracker.Count(ctx)
	if err != nil {
		logger.FromContext(ctx).Warn(ErrMsgCountViewersFailed, "error", err)
		return 0
	}
	return n
}
