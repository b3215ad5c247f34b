// Package flappy implements the Flappy Bird simulation: a bird falls under
// gravity, the player flaps to climb, and the bird must pass through the
// gaps of a stream of obstacle pairs scrolling in from the right.
//
// The Engine is pure state. It never reads the clock or the keyboard;
// callers drive it with Tick, TrySpawn and the input events, and read it
// back through Snapshot.
package flappy

import (
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Phase is the coarse game mode.
type Phase int

const (
	PhaseRunning Phase = iota
	PhasePaused
	PhaseGameOver
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseRunning:
		return "running"
	case PhasePaused:
		return "paused"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// GameState is the session-wide state. Everything except HighScore is
// reset on restart.
type GameState struct {
	Score           float64
	HighScore       float64
	Phase           Phase
	HorizontalSpeed int // Units the obstacles move left per tick
	GapHeight       int // Gap used for the next spawned pair
}

// Engine owns the actor, the obstacle stream and the game state.
// It is not safe for concurrent use; clock.Loop serializes access.
type Engine struct {
	cfg         config.FlappyConfig
	actor       Actor
	stream      *Stream
	ramp        *config.Ramp
	state       GameState
	tick        uint64
	backgroundX int
}

// New creates an engine in the Running phase with an empty obstacle
// stream. The seed fixes obstacle placement.
func New(cfg config.FlappyConfig, seed int64) *Engine {
	e := &Engine{
		cfg:    cfg,
		stream: NewStream(seed, cfg),
		ramp:   config.NewRamp(cfg.Difficulty, cfg.FloorGap()),
	}
	e.reset()
	return e
}

// reset puts everything except the high score and the RNG back to the
// starting values.
func (e *Engine) reset() {
	e.actor = NewActor(e.cfg.Actor)
	e.stream.Clear()
	e.ramp.Reset()
	e.tick = 0
	e.backgroundX = 0
	e.state = GameState{
		HighScore:       e.state.HighScore,
		Phase:           PhaseRunning,
		HorizontalSpeed: e.cfg.Obstacles.InitialSpeed,
		GapHeight:       e.cfg.StartGap(),
	}
}

// Config returns the configuration the engine was built with.
func (e *Engine) Config() config.FlappyConfig {
	return e.cfg
}

// Phase returns the current phase.
func (e *Engine) Phase() Phase {
	return e.state.Phase
}

// State returns a copy of the game state.
func (e *Engine) State() GameState {
	return e.state
}

// Tick advances the simulation by one frame. It does nothing unless the
// game is running.
func (e *Engine) Tick() {
	if e.state.Phase != PhaseRunning {
		return
	}
	e.tick++

	e.actor.Integrate(e.cfg.Physics)

	res := e.stream.Advance(e.state.HorizontalSpeed, e.actor.Rect())
	e.state.Score += float64(res.Passed) * PassReward

	crashed := res.Collided || e.actor.Y > e.cfg.Board.Height

	e.scrollBackground()
	e.state.HorizontalSpeed, e.state.GapHeight, _ = e.ramp.Apply(
		e.state.Score, e.state.HorizontalSpeed, e.state.GapHeight)

	if crashed {
		e.state.Phase = PhaseGameOver
		e.state.HighScore = max(e.state.HighScore, e.state.Score)
	}
}

func (e *Engine) scrollBackground() {
	e.backgroundX -= e.state.HorizontalSpeed
	if e.backgroundX <= -e.cfg.Board.Width {
		e.backgroundX = 0
	}
}

// TrySpawn appends one obstacle pair using the current gap height.
// It reports false and does nothing unless the game is running.
func (e *Engine) TrySpawn() bool {
	if e.state.Phase != PhaseRunning {
		return false
	}
	e.stream.Spawn(e.state.GapHeight)
	return true
}

// Flap gives the actor its upward impulse. Only valid while running.
func (e *Engine) Flap() bool {
	if e.state.Phase != PhaseRunning {
		return false
	}
	e.actor.Flap(e.cfg.Physics)
	return true
}

// TogglePause flips between Running and Paused. Ignored after game over.
func (e *Engine) TogglePause() bool {
	switch e.state.Phase {
	case PhaseRunning:
		e.state.Phase = PhasePaused
	case PhasePaused:
		e.state.Phase = PhaseRunning
	default:
		return false
	}
	return true
}

// Restart starts a new round after game over. The high score is kept and
// the obstacle RNG continues where it left off.
func (e *Engine) Restart() bool {
	if e.state.Phase != PhaseGameOver {
		return false
	}
	e.reset()
	return true
}

// Apply dispatches an input event and reports whether it changed state.
// Events that are not valid in the current phase are no-ops.
func (e *Engine) Apply(ev core.Event) bool {
	switch ev {
	case core.EventFlap:
		return e.Flap()
	case core.EventTogglePause:
		return e.TogglePause()
	case core.EventRestart:
		return e.Restart()
	default:
		return false
	}
}
