package message

import (
	"encoding/json"
)

const (
	SnapshotRequest = "SNAPSHOT_REQUEST"
	Ping            = "PING"
	Pong            = "PONG"
)

// Message is a frame sent by a spectator. Payload is decoded by the handler
// registered for Type.
type Message struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}
