package parameter

import "time"

// Pose server defaults
const (
	NetworkAddress           = ":7777"
	NetworkBroadcastInterval = 50 * time.Millisecond
	NetworkReadLimit         = 64 * 1024
	NetworkWriteTimeout      = 5 * time.Second
	NetworkMaxHands          = 2
)

// Pose server connection upkeep
const (
	NetworkPongWait     = 60 * time.Second
	NetworkPingInterval = 25 * time.Second
	NetworkSendQueue    = 64
	NetworkMaxPeers     = 8
)
