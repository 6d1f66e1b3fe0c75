package network

import (
	"github.com/vmihailenco/msgpack/v5"

	"github.com/lixenwraith/vi-arena/event"
	"github.com/lixenwraith/vi-arena/game"
)

// MessageType discriminates spectator frames
type MessageType uint8

const (
	MsgSnapshot MessageType = iota + 1
	MsgEvent
)

// Envelope is one binary websocket frame, msgpack encoded
type Envelope struct {
	Type     MessageType    `msgpack:"t"`
	Seq      uint64         `msgpack:"seq"`
	Snapshot *game.Snapshot `msgpack:"snap,omitempty"`
	Event    *EventMessage  `msgpack:"ev,omitempty"`
}

// EventMessage is the spectator view of a game event
type EventMessage struct {
	Name string `msgpack:"name"`
	Tick int64  `msgpack:"tick"`
}

func newEventMessage(ev event.GameEvent) *EventMessage {
	return &EventMessage{Name: ev.Type.String(), Tick: ev.Tick}
}

// Encode serializes an envelope
func Encode(env *Envelope) ([]byte, error) {
	return msgpack.Marshal(env)
}

// Decode parses a frame produced by Encode
func Decode(data []byte) (*Envelope, error) {
	var env Envelope
	if err := msgpack.Unmarshal(data, &env); err != nil {
		return nil, err
	}
	return &env, nil
}
