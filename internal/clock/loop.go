// Package clock drives a flappy.Engine in real time: a fixed-rate tick
// driver, an independent spawn driver and an inbox of input events, all
// serviced by one goroutine so no two mutations ever interleave.
package clock

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/logging"
)

// DefaultInboxSize is the number of events that can wait for the loop.
const DefaultInboxSize = 64

// Loop owns an engine and advances it from its own goroutine.
// Events sent with Send are applied in arrival order between ticks.
// Snapshot may be called from any goroutine.
type Loop struct {
	engine        *flappy.Engine
	tickInterval  time.Duration
	spawnInterval time.Duration
	newTicker     TickerFunc
	inbox         chan core.Event
	logger        *log.Logger

	mu   sync.RWMutex
	snap flappy.Snapshot
}

// Option configures a Loop.
type Option func(*Loop)

// WithTicker replaces the ticker factory.
func WithTicker(f TickerFunc) Option {
	return func(l *Loop) {
		l.newTicker = f
	}
}

// WithLogger sets the logger for phase transitions.
func WithLogger(logger *log.Logger) Option {
	return func(l *Loop) {
		l.logger = logger
	}
}

// WithInboxSize sets the event buffer size.
func WithInboxSize(n int) Option {
	return func(l *Loop) {
		l.inbox = make(chan core.Event, n)
	}
}

// New creates a loop for engine, taking its cadences from the engine's
// config. The engine must not be used by anyone else afterwards.
func New(engine *flappy.Engine, opts ...Option) *Loop {
	cfg := engine.Config()
	l := &Loop{
		engine:        engine,
		tickInterval:  cfg.TickInterval(),
		spawnInterval: cfg.Timing.SpawnInterval,
		newTicker:     NewTicker,
		inbox:         make(chan core.Event, DefaultInboxSize),
		logger:        logging.Discard(),
	}
	for _, opt := range opts {
		opt(l)
	}
	l.publish()
	return l
}

// Send queues an event for the loop. It never blocks; it reports false
// if the inbox is full and the event was dropped.
func (l *Loop) Send(ev core.Event) bool {
	select {
	case l.inbox <- ev:
		return true
	default:
		l.logger.Warn("inbox full, dropping event", "event", ev)
		return false
	}
}

// Snapshot returns the state published after the last mutation. Each
// caller gets its own copy of the obstacle slice.
func (l *Loop) Snapshot() flappy.Snapshot {
	l.mu.RLock()
	defer l.mu.RUnlock()
	snap := l.snap
	snap.Obstacles = slices.Clone(snap.Obstacles)
	return snap
}

func (l *Loop) publish() {
	snap := l.engine.Snapshot()
	l.mu.Lock()
	l.snap = snap
	l.mu.Unlock()
}

// Run drives the engine until ctx is cancelled. Both drivers stop while
// the game is over and start again, from a full interval, on restart.
func (l *Loop) Run(ctx context.Context) error {
	ticks := l.newTicker(l.tickInterval)
	spawns := l.newTicker(l.spawnInterval)
	defer ticks.Stop()
	defer spawns.Stop()

	running := l.engine.Phase() != flappy.PhaseGameOver
	if !running {
		ticks.Stop()
		spawns.Stop()
	}

	l.logger.Debug("loop started", "tick", l.tickInterval, "spawn", l.spawnInterval)

	for {
		var tickC, spawnC <-chan time.Time
		if running {
			tickC, spawnC = ticks.C(), spawns.C()
		}

		before := l.engine.Phase()

		select {
		case <-ctx.Done():
			l.logger.Debug("loop stopped")
			return nil
		case ev := <-l.inbox:
			if l.engine.Apply(ev) {
				l.logger.Debug("event applied", "event", ev)
			}
		case <-tickC:
			l.engine.Tick()
		case <-spawnC:
			l.engine.TrySpawn()
		}

		after := l.engine.Phase()
		if after != before {
			l.logger.Debug("phase changed", "from", before, "to", after)
		}

		switch {
		case running && after == flappy.PhaseGameOver:
			ticks.Stop()
			spawns.Stop()
			running = false
			state := l.engine.State()
			l.logger.Info("game over", "score", state.Score, "high_score", state.HighScore)
		case !running && after != flappy.PhaseGameOver:
			ticks.Reset(l.tickInterval)
			spawns.Reset(l.spawnInterval)
			running = true
			l.logger.Info("game restarted")
		}

		l.publish()
	}
}
