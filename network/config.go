package network

import (
	"time"

	"github.com/lixenwraith/vi-arena/parameter"
)

// Config holds spectator stream settings
type Config struct {
	// Address to bind, empty disables the stream
	Address string

	// Path the websocket endpoint is served on
	Path string

	MaxPeers int

	// Timing
	WriteTimeout time.Duration
	ReadTimeout  time.Duration
	PingPeriod   time.Duration

	// Buffer sizes
	ReadBufferSize  int
	WriteBufferSize int
	SendQueueSize   int

	// EveryNTicks is the broadcast cadence in running ticks
	EveryNTicks int
}

// DefaultConfig returns the stream defaults with no address bound
func DefaultConfig() *Config {
	return &Config{
		Path:            "/spectate",
		MaxPeers:        16,
		WriteTimeout:    parameter.SpectatorWriteTimeout * time.Second,
		ReadTimeout:     parameter.SpectatorReadTimeout * time.Second,
		PingPeriod:      parameter.SpectatorPingPeriod * time.Second,
		ReadBufferSize:  1024,
		WriteBufferSize: 64 * 1024,
		SendQueueSize:   parameter.SpectatorSendQueue,
		EveryNTicks:     parameter.SpectatorEveryNTicks,
	}
}
