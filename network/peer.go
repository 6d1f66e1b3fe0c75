package network

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

// PeerID uniquely identifies a connected spectator
type PeerID uint32

// Peer is one spectator connection
// Frames go through a bounded queue; a full queue drops the frame rather than stall the tick
type Peer struct {
	ID      PeerID
	Addr    string
	Dropped atomic.Uint64

	conn   *websocket.Conn
	sendCh chan []byte
	logger logrus.FieldLogger

	closeCh   chan struct{}
	closeOnce sync.Once
}

func newPeer(id PeerID, conn *websocket.Conn, queueSize int, logger logrus.FieldLogger) *Peer {
	p := &Peer{
		ID:      id,
		conn:    conn,
		sendCh:  make(chan []byte, queueSize),
		closeCh: make(chan struct{}),
		logger:  logger,
	}
	if conn != nil {
		p.Addr = conn.RemoteAddr().String()
	}
	return p
}

// Send queues a frame, reporting false when the peer is closed or its queue is full
func (p *Peer) Send(data []byte) bool {
	select {
	case <-p.closeCh:
		return false
	default:
	}

	select {
	case p.sendCh <- data:
		return true
	default:
		p.Dropped.Add(1)
		return false
	}
}

// Close stops both pumps; safe to call more than once
func (p *Peer) Close() {
	p.closeOnce.Do(func() {
		close(p.closeCh)
	})
}

// Done is closed once the peer is closed
func (p *Peer) Done() <-chan struct{} {
	return p.closeCh
}

// readPump discards client frames and keeps the read deadline alive on pongs
func (p *Peer) readPump(cfg *Config) {
	defer p.Close()

	p.conn.SetReadLimit(512)
	if err := p.conn.SetReadDeadline(time.Now().Add(cfg.ReadTimeout)); err != nil {
		p.logger.WithError(err).Warn("set read deadline")
	}
	p.conn.SetPongHandler(func(string) error {
		return p.conn.SetReadDeadline(time.Now().Add(cfg.ReadTimeout))
	})

	for {
		if _, _, err := p.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				p.logger.WithError(err).Warn("spectator read")
			}
			return
		}
	}
}

// writePump drains the send queue and pings on PingPeriod
func (p *Peer) writePump(cfg *Config) {
	ticker := time.NewTicker(cfg.PingPeriod)
	defer func() {
		ticker.Stop()
		if err := p.conn.Close(); err != nil {
			p.logger.WithError(err).Debug("close spectator connection")
		}
	}()

	for {
		select {
		case data := <-p.sendCh:
			if err := p.conn.SetWriteDeadline(time.Now().Add(cfg.WriteTimeout)); err != nil {
				p.logger.WithError(err).Warn("set write deadline")
			}
			if err := p.conn.WriteMessage(websocket.BinaryMessage, data); err != nil {
				p.logger.WithError(err).Debug("spectator write")
				p.Close()
				return
			}

		case <-ticker.C:
			if err := p.conn.SetWriteDeadline(time.Now().Add(cfg.WriteTimeout)); err != nil {
				p.logger.WithError(err).Warn("set ping deadline")
			}
			if err := p.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				p.Close()
				return
			}

		case <-p.closeCh:
			deadline := time.Now().Add(cfg.WriteTimeout)
			_ = p.conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), deadline)
			return
		}
	}
}
