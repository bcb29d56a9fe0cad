package presence

import (
	"errors"

	"github.com/yumbiru/yumvalues/internal/domain"
)

// Error messages
const (
	ErrMsgInsertViewerFmt = "failed to insert viewer: %v"
	ErrMsgDeleteViewerFmt = "failed to delete viewer: %v"
	ErrMsgHeartbeatFmt    = "failed to update viewer: %v"
	ErrMsgCountFmt        = "failed to count viewers: %v"
	ErrMsgPruneFmt        = "failed to prune viewers: %v"
)

// Log messages
const (
	LogMsgViewerJoined     = "Viewer joined"
	LogMsgViewerLeft       = "Viewer left"
	LogMsgPruneFailed      = "Failed to prune stale viewers"
	LogMsgPublishFailed    = "Failed to publish presence change"
	LogMsgListenerStopped  = "Presence change listener stopped"
	LogMsgListenerRetrying = "Presence change listener failed, retrying"
	LogMsgCountRefreshed   = "Viewer count refreshed"
)

func isNotFound(err error) bool {
	return errors.Is(err, domain.ErrViewerNotFound)
}
