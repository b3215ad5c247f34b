package flappy

import "slices"

// ActorPose is the actor as a renderer sees it.
type ActorPose struct {
	X, Y          int
	Width, Height int
	VelocityY     int
	Tilt          float64 // Degrees, clamped to ±MaxTilt
}

// Snapshot is a read-only copy of everything a renderer needs.
// It shares no memory with the engine.
type Snapshot struct {
	Tick            uint64
	Phase           Phase
	Actor           ActorPose
	Obstacles       []Obstacle
	Score           float64
	HighScore       float64
	HorizontalSpeed int
	GapHeight       int
	BackgroundX     int // Scroll offset of the background, in (-BoardWidth, 0]
	BoardWidth      int
	BoardHeight     int
}

// Snapshot returns the current state for rendering and tests.
func (e *Engine) Snapshot() Snapshot {
	return Snapshot{
		Tick:  e.tick,
		Phase: e.state.Phase,
		Actor: ActorPose{
			X:         e.actor.X,
			Y:         e.actor.Y,
			Width:     e.actor.Width,
			Height:    e.actor.Height,
			VelocityY: e.actor.VelocityY,
			Tilt:      e.actor.Tilt(e.cfg.Physics),
		},
		Obstacles:       slices.Clone(e.stream.Obstacles()),
		Score:           e.state.Score,
		HighScore:       e.state.HighScore,
		HorizontalSpeed: e.state.HorizontalSpeed,
		GapHeight:       e.state.GapHeight,
		BackgroundX:     e.backgroundX,
		BoardWidth:      e.cfg.Board.Width,
		BoardHeight:     e.cfg.Board.Height,
	}
}

// PairCount returns how many distinct pairs are live in the snapshot.
func (s Snapshot) PairCount() int {
	seen := make(map[uint64]struct{}, len(s.Obstacles))
	for _, o := range s.Obstacles {
		seen[o.Pair] = struct{}{}
	}
	return len(seen)
}
