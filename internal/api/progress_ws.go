package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/genome-ingest-server/internal/domain"
)

var wsUpgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// The REST API already allows any origin; the socket carries no
	// credentials beyond the session ID in the URL.
	CheckOrigin: func(r *http.Request) bool { return true },
}

const (
	wsPollInterval = time.Second
	wsWriteTimeout = 10 * time.Second
)

// handleProgressWS streams chunk milestones for a session over a websocket.
// A new frame is pushed whenever the latest milestone advances, and the
// connection closes once the final chunk is reported.
func (s *Server) handleProgressWS(c *gin.Context) {
	sessionID := c.Param("session")

	conn, err := wsUpgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// Upgrade already wrote the HTTP error response
		s.log.WithError(err).Debug("Websocket upgrade failed")
		return
	}
	defer conn.Close()

	ticker := time.NewTicker(wsPollInterval)
	defer ticker.Stop()

	ctx := c.Request.Context()
	lastSent := 0

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

		m, err := s.progress.LatestMilestone(ctx, sessionID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				continue
			}
			s.log.WithError(err).Warn("Progress lookup failed, closing stream")
			return
		}

		if m.ChunkIndex <= lastSent {
			continue
		}
		lastSent = m.ChunkIndex

		conn.SetWriteDeadline(time.Now().Add(wsWriteTimeout))
		if err := conn.WriteJSON(m); err != nil {
			return
		}

		if m.ChunkIndex >= m.TotalChunks {
			conn.SetWriteDeadline(time.Now().Add(wsWriteTimeout))
			conn.WriteMessage(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, "upload complete"))
			return
		}
	}
}
