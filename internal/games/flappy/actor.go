package flappy

import (
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Actor is the bird: an axis-aligned box with integer vertical velocity.
// Horizontal position never changes; the world scrolls past it.
type Actor struct {
	X, Y          int
	Width, Height int
	VelocityY     int // Positive = falling
}

// NewActor creates an actor at its configured starting pose, at rest.
func NewActor(cfg config.ActorConfig) Actor {
	return Actor{
		X:      cfg.X,
		Y:      cfg.Y,
		Width:  cfg.Width,
		Height: cfg.Height,
	}
}

// Rect returns the actor's collision box.
func (a Actor) Rect() core.Rect {
	return core.NewRect(a.X, a.Y, a.Width, a.Height)
}

// Flap overwrites the vertical velocity with the flap impulse.
func (a *Actor) Flap(p config.PhysicsConfig) {
	a.VelocityY = p.FlapStrength
}

// Integrate advances the actor by one tick: gravity capped at the maximum
// fall speed, then position clamped at the top of the board. There is no
// clamp at the bottom.
func (a *Actor) Integrate(p config.PhysicsConfig) {
	a.VelocityY = min(a.VelocityY+p.Gravity, p.MaxVelocity)
	a.Y = max(a.Y+a.VelocityY, 0)
}

// Tilt returns the cosmetic rotation in degrees derived from velocity.
// It has no effect on physics or collision.
func (a Actor) Tilt(p config.PhysicsConfig) float64 {
	return core.ClampF(float64(a.VelocityY)*p.TiltFactor, -p.MaxTilt, p.MaxTilt)
}
