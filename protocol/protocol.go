package protocol

import (
	"encoding/json"
)

// Message types carried in the envelope's T field.
const (
	MsgHello   = "hello"
	MsgInput   = "input"
	MsgWelcome = "welcome"
	MsgState   = "state"
)

// SimTickHz is the server frame rate: a 20ms frame split into the sim's
// 100 sub-steps gives a 0.2ms physics step, deep inside the stable range
// for the chain constraint. Broadcasts go out every other frame;
// BroadcastHz must divide SimTickHz evenly.
const (
	SimTickHz   = 50
	BroadcastHz = 25
)

type Envelope struct {
	T string          `json:"t"`
	P json.RawMessage `json:"p"` // raw payload bytes
}
