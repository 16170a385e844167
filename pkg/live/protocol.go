// Package live connects a router's history to a real browser tab over a
// WebSocket. The server side owns the route table and drives navigation;
// the client applies history operations and reports its location back.
//
// Messages are single JSON objects. Server to client:
//
//	{"type":"nav_push","seq":3,"path":"/be/over-ons"}
//	{"type":"nav_replace","seq":4,"path":"/be"}
//	{"type":"nav_back"}
//	{"type":"reload"}
//
// Client to server:
//
//	{"type":"ack","seq":3}
//	{"type":"location","path":"/be/over-ons"}
package live

import (
	"encoding/json"
	"fmt"
)

// Message types on the live socket.
const (
	// Server to client.
	MsgNavPush    = "nav_push"
	MsgNavReplace = "nav_replace"
	MsgNavBack    = "nav_back"
	MsgReload     = "reload"

	// Client to server.
	MsgAck      = "ack"
	MsgLocation = "location"
)

// Message is one frame on the live socket. Fields not used by a given
// message type are omitted on the wire.
type Message struct {
	Type  string `json:"type"`
	Seq   uint64 `json:"seq,omitempty"`
	Path  string `json:"path,omitempty"`
	State any    `json:"state,omitempty"`
}

// EncodeMessage serializes a message for the socket.
func EncodeMessage(msg Message) ([]byte, error) {
	if !validType(msg.Type) {
		return nil, fmt.Errorf("live: unknown message type %q", msg.Type)
	}
	return json.Marshal(msg)
}

// DecodeMessage parses a frame received from the socket.
func DecodeMessage(data []byte) (Message, error) {
	var msg Message
	if err := json.Unmarshal(data, &msg); err != nil {
		return Message{}, fmt.Errorf("live: malformed message: %w", err)
	}
	if !validType(msg.Type) {
		return Message{}, fmt.Errorf("live: unknown message type %q", msg.Type)
	}
	return msg, nil
}

func validType(t string) bool {
	switch t {
	case MsgNavPush, MsgNavReplace, MsgNavBack, MsgReload, MsgAck, MsgLocation:
		return true
	}
	return false
}
