package common

const (
	BaseWidth  = 800
	BaseHeight = 600

	// TickMs is the fixed simulation step in milliseconds (60 ticks per second).
	TickMs = 1000.0 / 60.0
)
