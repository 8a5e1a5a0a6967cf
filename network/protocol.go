package network

import (
	"fmt"

	"github.com/lixenwraith/flicknfire/component"
	"github.com/lixenwraith/flicknfire/game"
	"github.com/lixenwraith/flicknfire/gesture"
	"github.com/lixenwraith/flicknfire/parameter"
)

// Client message kinds, JSON text frames
const (
	ClientPose     = "pose"
	ClientRestart  = "restart"
	ClientPurchase = "purchase"
	ClientPause    = "pause"
	ClientResume   = "resume"
)

// ClientMessage is one inbound text frame
type ClientMessage struct {
	Type    string        `json:"type"`
	Hands   []HandMessage `json:"hands,omitempty"`
	Upgrade string        `json:"upgrade,omitempty"`
}

// HandMessage carries one detected hand as the pose pipeline reports it
type HandMessage struct {
	Label     string             `json:"label"`
	Landmarks []gesture.Landmark `json:"landmarks"`
}

// MessageType identifies an outbound binary frame
type MessageType uint8

const (
	MsgStateSync MessageType = 0x11 // Full snapshot
	MsgEvent     MessageType = 0x12 // Gameplay notification
)

// ServerMessage is one outbound msgpack binary frame
type ServerMessage struct {
	Type     MessageType    `msgpack:"t"`
	Seq      uint32         `msgpack:"seq"`
	Snapshot *game.Snapshot `msgpack:"snap,omitempty"`
	Event    string         `msgpack:"ev,omitempty"`
	Payload  any            `msgpack:"p,omitempty"`
}

// ToFrame converts a pose message into engine input
func (m *ClientMessage) ToFrame() (gesture.Frame, error) {
	if len(m.Hands) > parameter.NetworkMaxHands {
		return gesture.Frame{}, fmt.Errorf("too many hands: %d", len(m.Hands))
	}
	f := gesture.Frame{Hands: make([]gesture.Hand, 0, len(m.Hands))}
	for i, h := range m.Hands {
		label, ok := gesture.ParseHandedness(h.Label)
		if !ok {
			return gesture.Frame{}, fmt.Errorf("hand %d: unknown label %q", i, h.Label)
		}
		if len(h.Landmarks) != parameter.LandmarkCount {
			return gesture.Frame{}, fmt.Errorf("hand %d: expected %d landmarks, got %d", i, parameter.LandmarkCount, len(h.Landmarks))
		}
		for j, l := range h.Landmarks {
			if !l.Valid() {
				return gesture.Frame{}, fmt.Errorf("hand %d: landmark %d out of range", i, j)
			}
		}
		f.Hands = append(f.Hands, gesture.Hand{Label: label, Landmarks: h.Landmarks})
	}
	return f, nil
}

// UpgradeKind resolves the purchase target
func (m *ClientMessage) UpgradeKind() (component.UpgradeKind, error) {
	kind, ok := component.ParseUpgradeKind(m.Upgrade)
	if !ok {
		return 0, fmt.Errorf("unknown upgrade %q", m.Upgrade)
	}
	return kind, nil
}
