// Package transport exposes the HTTP and websocket dashboard surface.
package transport

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/stakepulse/stakepulse-backend/internal/model"
	"github.com/stakepulse/stakepulse-backend/pkg/batcher"
)

const (
	broadcastBatchSize = 16
	broadcastInterval  = time.Second
	broadcastRPS       = 10
)

// Dashboard holds the latest poll result for the JSON endpoint and pushes
// updates to websocket subscribers. It is the poll loop's result sink.
type Dashboard struct {
	logger    *zap.Logger
	hub       *hub
	broadcast *batcher.Batcher[model.PollResult]
	upgrader  websocket.Upgrader

	mx     sync.RWMutex
	latest *model.PollResult
}

// NewDashboard builds the dashboard surface.
func NewDashboard(logger *zap.Logger) *Dashboard {
	d := &Dashboard{
		logger: logger,
		hub:    newHub(logger),
		upgrader: websocket.Upgrader{
			// the dashboard is same-host or CORS-fronted; origin checks add
			// nothing for a read-only stream
			CheckOrigin: func(*http.Request) bool { return true },
		},
	}
	d.broadcast = batcher.New(logger.Named("broadcast"), d.flush, broadcastBatchSize, broadcastInterval, broadcastRPS)
	return d
}

// Start begins the websocket broadcast loop.
func (d *Dashboard) Start(ctx context.Context) {
	d.broadcast.Start(ctx)
}

// Stop flushes and stops the broadcast loop.
func (d *Dashboard) Stop() {
	d.broadcast.Stop()
}

// Publish stores the result for HTTP reads and queues it for websocket push.
func (d *Dashboard) Publish(ctx context.Context, result model.PollResult) error {
	d.mx.Lock()
	d.latest = &result
	d.mx.Unlock()

	return d.broadcast.Add(ctx, result)
}

// Routes registers the dashboard endpoints on the mux.
func (d *Dashboard) Routes(mux *http.ServeMux) {
	mux.HandleFunc("/api/v1/dashboard", d.handleDashboard)
	mux.HandleFunc("/ws", d.handleWS)
}

func (d *Dashboard) handleDashboard(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	d.mx.RLock()
	latest := d.latest
	d.mx.RUnlock()

	if latest == nil {
		http.Error(w, "no poll completed yet", http.StatusServiceUnavailable)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(latest); err != nil {
		d.logger.Error("encode dashboard response", zap.Error(err))
	}
}

func (d *Dashboard) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := d.upgrader.Upgrade(w, r, nil)
	if err != nil {
		d.logger.Warn("websocket upgrade failed", zap.Error(err))
		return
	}

	// a fresh subscriber gets the current state without waiting a poll cycle;
	// it is sent before the conn joins the hub, so the broadcast goroutine
	// stays the sole data-frame writer once the conn is visible to it
	d.mx.RLock()
	latest := d.latest
	d.mx.RUnlock()
	if latest != nil {
		if payload, err := json.Marshal(latest); err == nil {
			_ = conn.SetWriteDeadline(time.Now().Add(writeTimeout))
			_ = conn.WriteMessage(websocket.TextMessage, payload)
		}
	}

	d.hub.add(conn)
	go d.hub.keep(conn)
}

func (d *Dashboard) flush(_ context.Context, results []model.PollResult) error {
	// subscribers only care about the freshest state
	payload, err := json.Marshal(results[len(results)-1])
	if err != nil {
		return err
	}
	d.hub.broadcast(payload)
	return nil
}
