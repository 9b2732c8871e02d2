package transport

import (
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const (
	pingInterval  = time.Second
	aliveDeadline = 5 * time.Second
	writeTimeout  = time.Second
)

// hub tracks live websocket subscribers and fans poll results out to them.
type hub struct {
	mx     sync.RWMutex
	active map[*websocket.Conn]struct{}
	logger *zap.Logger
}

func newHub(logger *zap.Logger) *hub {
	return &hub{
		active: make(map[*websocket.Conn]struct{}),
		logger: logger.Named("ws"),
	}
}

func (h *hub) add(conn *websocket.Conn) {
	h.mx.Lock()
	defer h.mx.Unlock()
	h.active[conn] = struct{}{}
}

func (h *hub) remove(conn *websocket.Conn) {
	h.mx.Lock()
	defer h.mx.Unlock()

	_ = conn.Close()
	delete(h.active, conn)
}

func (h *hub) count() int {
	h.mx.RLock()
	defer h.mx.RUnlock()
	return len(h.active)
}

// broadcast writes the payload to every subscriber, dropping connections that
// fail to accept it.
func (h *hub) broadcast(payload []byte) {
	h.mx.RLock()
	conns := make([]*websocket.Conn, 0, len(h.active))
	for conn := range h.active {
		conns = append(conns, conn)
	}
	h.mx.RUnlock()

	for _, conn := range conns {
		_ = conn.SetWriteDeadline(time.Now().Add(writeTimeout))
		if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			h.logger.Debug("dropping slow subscriber", zap.Error(err))
			h.remove(conn)
		}
	}
}

// keep owns the connection lifecycle: it pings on an interval, tracks pong
// liveness and discards inbound frames until the peer goes away.
func (h *hub) keep(conn *websocket.Conn) {
	defer h.remove(conn)

	pinger := time.NewTicker(pingInterval)
	defer pinger.Stop()

	lastAlive := time.Now()
	var aliveMx sync.Mutex

	ponger := conn.PongHandler()
	conn.SetPongHandler(func(appData string) error {
		aliveMx.Lock()
		lastAlive = time.Now()
		aliveMx.Unlock()
		return ponger(appData)
	})

	read := make(chan error, 1)
	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				read <- err
				return
			}
			aliveMx.Lock()
			lastAlive = time.Now()
			aliveMx.Unlock()
		}
	}()

	for {
		select {
		case <-read:
			return
		case <-pinger.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeTimeout)); err != nil {
				return
			}
			aliveMx.Lock()
			stale := time.Since(lastAlive) > aliveDeadline
			aliveMx.Unlock()
			if stale {
				return
			}
		}
	}
}
