package httpsrv

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/tutils/lcg/logger"
)

var (
	upgrader = websocket.Upgrader{
		ReadBufferSize:  4 << 10,
		WriteBufferSize: 4 << 10,
		CheckOrigin: func(r *http.Request) bool {
			return true
		},
	}
)

const writeWait = 10 * time.Second

// handleStream upgrades to a websocket and sends NextResponse batches of
// batch (>= 1) values until the client goes away, or until limit batches were sent
// when limit > 0. interval (ms) throttles the batches.
func (s *Server) handleStream(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}
	batch, err := queryCount(r, "batch", 100)
	if err == nil && batch < 1 {
		err = fmt.Errorf("batch must be at least 1, got %d", batch)
	}
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err)
		return
	}
	limit, err := queryCount(r, "limit", 0)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err)
		return
	}
	interval, err := queryCount(r, "interval", 0)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Warn("websocket upgrade failed", "remote", r.RemoteAddr, "error", err)
		return
	}
	defer conn.Close()
	logger.Info("stream started", "id", sess.ID, "remote", r.RemoteAddr, "batch", batch)

	// the read loop only notices the close handshake
	closed := make(chan struct{})
	go func() {
		defer close(closed)
		for {
			if _, _, err := conn.NextReader(); err != nil {
				return
			}
		}
	}()

	var ticker *time.Ticker
	if interval > 0 {
		ticker = time.NewTicker(time.Duration(interval) * time.Millisecond)
		defer ticker.Stop()
	}

	sent := 0
	for limit == 0 || sent < limit {
		select {
		case <-closed:
			logger.Info("stream closed by client", "id", sess.ID, "batches", sent)
			return
		case <-r.Context().Done():
			return
		default:
		}

		values := sess.gen.NextN(batch)
		s.generated.Add(int64(len(values)))
		conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := conn.WriteJSON(NextResponse{Values: values}); err != nil {
			logger.Debug("stream write failed", "id", sess.ID, "error", err)
			return
		}
		sent++

		if ticker != nil {
			select {
			case <-ticker.C:
			case <-closed:
				return
			}
		}
	}

	msg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "done")
	conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(writeWait))
	logger.Info("stream finished", "id", sess.ID, "batches", sent)
}
