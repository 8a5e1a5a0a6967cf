package parameter

import "time"

// Game Loop & Engine Timing
const (
	// TickInterval is the clock driver interval between timer sweeps when no pose frame arrives
	TickInterval = 16 * time.Millisecond

	// EventCycleLimit bounds dispatch rounds per resolution cycle so handler feedback cannot spin forever
	EventCycleLimit = 16
)

// Event Queue Limits
const (
	// EventQueueSize is the fixed capacity of the event ring buffer
	EventQueueSize = 1024

	// EventBufferMask is the bitmask for fast modulo operations (1024 - 1)
	EventBufferMask = 1023
)

// RenderInterval is the terminal viewer redraw period
const RenderInterval = 33 * time.Millisecond
