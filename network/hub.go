// Package network streams arena snapshots to websocket spectators
package network

import (
	"context"
	"io"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/vi-arena/engine"
	"github.com/lixenwraith/vi-arena/event"
	"github.com/lixenwraith/vi-arena/game"
	"github.com/lixenwraith/vi-arena/status"
)

// ErrHubClosed is returned by ListenAndServe after Close
var ErrHubClosed = errors.New("spectator hub closed")

// Hub fans encoded frames out to every connected spectator
// Broadcasts never block on a slow peer
type Hub struct {
	cfg      *Config
	upgrader websocket.Upgrader
	logger   logrus.FieldLogger

	mu     sync.RWMutex
	peers  map[PeerID]*Peer
	nextID PeerID
	closed bool
	wg     sync.WaitGroup

	seq atomic.Uint64

	statPeers   *atomic.Int64
	statFrames  *atomic.Int64
	statDropped *atomic.Int64
}

// NewHub creates a hub; reg may be nil
func NewHub(cfg *Config, logger logrus.FieldLogger, reg *status.Registry) *Hub {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if logger == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		logger = l
	}
	if reg == nil {
		reg = status.NewRegistry()
	}
	return &Hub{
		cfg: cfg,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  cfg.ReadBufferSize,
			WriteBufferSize: cfg.WriteBufferSize,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
		logger:      logger.WithField("component", "spectator"),
		peers:       make(map[PeerID]*Peer),
		statPeers:   reg.Ints.Get("spectator.peers"),
		statFrames:  reg.Ints.Get("spectator.frames"),
		statDropped: reg.Ints.Get("spectator.dropped"),
	}
}

// ServeHTTP upgrades the request and runs the peer until it disconnects
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mu.RLock()
	full := h.closed || len(h.peers) >= h.cfg.MaxPeers
	h.mu.RUnlock()
	if full {
		http.Error(w, "spectator limit reached", http.StatusServiceUnavailable)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.WithError(err).Warn("websocket upgrade")
		return
	}

	p, ok := h.register(conn)
	if !ok {
		_ = conn.Close()
		return
	}
	h.logger.WithFields(logrus.Fields{"peer": p.ID, "addr": p.Addr}).Info("spectator connected")

	go func() {
		defer h.wg.Done()
		p.writePump(h.cfg)
	}()
	p.readPump(h.cfg)
	h.unregister(p)
}

func (h *Hub) register(conn *websocket.Conn) (*Peer, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed || len(h.peers) >= h.cfg.MaxPeers {
		return nil, false
	}
	h.nextID++
	p := newPeer(h.nextID, conn, h.cfg.SendQueueSize, h.logger)
	h.peers[p.ID] = p
	h.wg.Add(1)
	h.statPeers.Store(int64(len(h.peers)))
	return p, true
}

func (h *Hub) unregister(p *Peer) {
	p.Close()
	h.mu.Lock()
	if _, ok := h.peers[p.ID]; ok {
		delete(h.peers, p.ID)
		h.statPeers.Store(int64(len(h.peers)))
	}
	h.mu.Unlock()
	h.logger.WithFields(logrus.Fields{"peer": p.ID, "dropped": p.Dropped.Load()}).Info("spectator disconnected")
}

// Count returns the number of connected spectators
func (h *Hub) Count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.peers)
}

// BroadcastSnapshot encodes snap once and queues it for every peer
func (h *Hub) BroadcastSnapshot(snap game.Snapshot) error {
	return h.broadcast(&Envelope{Type: MsgSnapshot, Snapshot: &snap})
}

// BroadcastEvent forwards a game event to every peer
func (h *Hub) BroadcastEvent(ev event.GameEvent) error {
	return h.broadcast(&Envelope{Type: MsgEvent, Event: newEventMessage(ev)})
}

func (h *Hub) broadcast(env *Envelope) error {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if len(h.peers) == 0 {
		return nil
	}

	env.Seq = h.seq.Add(1)
	data, err := Encode(env)
	if err != nil {
		return errors.Wrap(err, "encode spectator frame")
	}

	for _, p := range h.peers {
		if !p.Send(data) {
			h.statDropped.Add(1)
			continue
		}
		h.statFrames.Add(1)
	}
	return nil
}

// EventForwarder returns a handler that forwards events of the given types to spectators
func (h *Hub) EventForwarder(types ...event.EventType) event.Handler[*engine.World] {
	return event.HandlerFunc[*engine.World]{
		Types: types,
		Fn: func(_ *engine.World, ev event.GameEvent) {
			if err := h.BroadcastEvent(ev); err != nil {
				h.logger.WithError(err).Warn("forward event")
			}
		},
	}
}

// ListenAndServe serves the websocket endpoint on cfg.Address until ctx ends
func (h *Hub) ListenAndServe(ctx context.Context) error {
	mux := http.NewServeMux()
	mux.Handle(h.cfg.Path, h)
	srv := &http.Server{
		Addr:              h.cfg.Address,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()
	h.logger.WithFields(logrus.Fields{"addr": h.cfg.Address, "path": h.cfg.Path}).Info("spectator stream listening")

	select {
	case err := <-errCh:
		return errors.Wrap(err, "spectator listen")
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), h.cfg.WriteTimeout)
	defer cancel()
	h.Close()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return errors.Wrap(err, "spectator shutdown")
	}
	return ErrHubClosed
}

// Close disconnects every peer and rejects new ones
func (h *Hub) Close() {
	h.mu.Lock()
	h.closed = true
	for _, p := range h.peers {
		p.Close()
	}
	h.mu.Unlock()
	h.wg.Wait()
}
