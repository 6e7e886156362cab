package server

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/pdrpinto/waterjug/internal/cmdlogger"
)

const writeWait = 10 * time.Second

// handleStream upgrades to a websocket and sends one snapshot per expansion
// until the search is done, then removes the session. The optional
// intervalMs query parameter paces the messages.
func (s *Server) handleStream(c *gin.Context) {
	id := c.Param("id")
	sess, ok := s.lookupSession(c)
	if !ok {
		return
	}

	var interval time.Duration
	if v, err := strconv.Atoi(c.Query("intervalMs")); err == nil && v > 0 {
		interval = time.Duration(v) * time.Millisecond
	}

	ws, err := s.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		cmdlogger.Warnf("WebSocket upgrade failed: %v", err)
		return
	}
	defer ws.Close()

	puzzle := sess.stepper.Puzzle()
	for {
		snap := s.sessions.step(sess)

		if err := ws.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
			cmdlogger.Debugf("WebSocket deadline error: %v", err)
			return
		}
		if err := ws.WriteJSON(newSnapshotResponse(puzzle, snap)); err != nil {
			cmdlogger.Debugf("WebSocket write error: %v", err)
			return
		}
		if snap.Done {
			break
		}

		if interval > 0 {
			select {
			case <-time.After(interval):
			case <-s.ctx.Done():
				return
			case <-c.Request.Context().Done():
				return
			}
		} else if s.ctx.Err() != nil {
			return
		}
	}

	s.sessions.remove(id)

	if err := ws.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		cmdlogger.Debugf("WebSocket deadline error: %v", err)
		return
	}
	closeMessage := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "done")
	if err := ws.WriteMessage(websocket.CloseMessage, closeMessage); err != nil {
		cmdlogger.Debugf("WebSocket close error: %v", err)
	}
}
