package network

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/vi-arena/config"
	"github.com/lixenwraith/vi-arena/event"
	"github.com/lixenwraith/vi-arena/game"
	"github.com/lixenwraith/vi-arena/status"
)

func dial(t *testing.T, srv *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func readEnvelope(t *testing.T, conn *websocket.Conn) *Envelope {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	mt, data, err := conn.ReadMessage()
	require.NoError(t, err)
	require.Equal(t, websocket.BinaryMessage, mt)
	env, err := Decode(data)
	require.NoError(t, err)
	return env
}

func TestSpectatorReceivesSnapshot(t *testing.T) {
	reg := status.NewRegistry()
	hub := NewHub(DefaultConfig(), nil, reg)
	srv := httptest.NewServer(hub)
	t.Cleanup(srv.Close)
	t.Cleanup(hub.Close)

	conn := dial(t, srv)
	require.Eventually(t, func() bool { return hub.Count() == 1 }, time.Second, 5*time.Millisecond)

	cfg := config.Default()
	cfg.Seed = 3
	sim, err := game.New(cfg)
	require.NoError(t, err)
	for range 40 {
		sim.Tick()
	}
	snap := sim.Snapshot()
	require.NoError(t, hub.BroadcastSnapshot(snap))

	env := readEnvelope(t, conn)
	assert.Equal(t, MsgSnapshot, env.Type)
	assert.Equal(t, uint64(1), env.Seq)
	require.NotNil(t, env.Snapshot)
	assert.Equal(t, int64(40), env.Snapshot.Tick)
	assert.Equal(t, "running", env.Snapshot.Phase)
	assert.Equal(t, snap.Actor, env.Snapshot.Actor)
	assert.Len(t, env.Snapshot.Adversaries, len(snap.Adversaries))
	assert.Equal(t, int64(1), reg.Ints.Get("spectator.frames").Load())
}

func TestSpectatorReceivesForwardedEvents(t *testing.T) {
	hub := NewHub(DefaultConfig(), nil, nil)
	srv := httptest.NewServer(hub)
	t.Cleanup(srv.Close)
	t.Cleanup(hub.Close)

	conn := dial(t, srv)
	require.Eventually(t, func() bool { return hub.Count() == 1 }, time.Second, 5*time.Millisecond)

	fwd := hub.EventForwarder(event.EventMilestoneReached)
	assert.Equal(t, []event.EventType{event.EventMilestoneReached}, fwd.EventTypes())
	fwd.HandleEvent(nil, event.GameEvent{Type: event.EventMilestoneReached, Tick: 77})

	env := readEnvelope(t, conn)
	assert.Equal(t, MsgEvent, env.Type)
	require.NotNil(t, env.Event)
	assert.Equal(t, event.EventMilestoneReached.String(), env.Event.Name)
	assert.Equal(t, int64(77), env.Event.Tick)
}

func TestHubRejectsOverLimit(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxPeers = 1
	hub := NewHub(cfg, nil, nil)
	srv := httptest.NewServer(hub)
	t.Cleanup(srv.Close)
	t.Cleanup(hub.Close)

	dial(t, srv)
	require.Eventually(t, func() bool { return hub.Count() == 1 }, time.Second, 5*time.Millisecond)

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	_, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, 503, resp.StatusCode)
}

func TestHubCloseDisconnects(t *testing.T) {
	hub := NewHub(DefaultConfig(), nil, nil)
	srv := httptest.NewServer(hub)
	t.Cleanup(srv.Close)

	conn := dial(t, srv)
	require.Eventually(t, func() bool { return hub.Count() == 1 }, time.Second, 5*time.Millisecond)

	hub.Close()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, _, err := conn.ReadMessage()
	assert.True(t, websocket.IsCloseError(err, websocket.CloseNormalClosure), "got %v", err)
	require.Eventually(t, func() bool { return hub.Count() == 0 }, time.Second, 5*time.Millisecond)
}

func TestPeerDropsWhenQueueFull(t *testing.T) {
	p := newPeer(1, nil, 1, nil)
	assert.True(t, p.Send([]byte{1}))
	assert.False(t, p.Send([]byte{2}))
	assert.Equal(t, uint64(1), p.Dropped.Load())

	p.Close()
	p.Close()
	assert.False(t, p.Send([]byte{3}))
	select {
	case <-p.Done():
	default:
		t.Fatal("peer not closed")
	}
}

func TestBroadcastWithoutPeers(t *testing.T) {
	hub := NewHub(DefaultConfig(), nil, nil)
	assert.NoError(t, hub.BroadcastSnapshot(game.Snapshot{}))
	assert.Zero(t, hub.seq.Load())
}
