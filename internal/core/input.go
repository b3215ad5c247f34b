package core

// Event is a discrete input delivered to the simulation.
// The platform layer translates raw keys into events; the simulation never
// sees key codes.
type Event int

const (
	EventNone        Event = iota
	EventFlap              // Upward impulse
	EventTogglePause       // Running <-> Paused
	EventRestart           // GameOver -> Running
)

// String returns a human-readable name for the event.
func (e Event) String() string {
	switch e {
	case EventNone:
		return "none"
	case EventFlap:
		return "flap"
	case EventTogglePause:
		return "toggle_pause"
	case EventRestart:
		return "restart"
	default:
		return "unknown"
	}
}
