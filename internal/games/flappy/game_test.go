package flappy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// tallBoard returns the default config with a board tall enough that the
// bird can free-fall for a long time without leaving it. The gaps stay
// those of the default 640 board.
func tallBoard() config.FlappyConfig {
	cfg := config.DefaultFlappyConfig()
	cfg.Board.Height = 10000
	cfg.Obstacles.InitialGap = 640 / 4
	cfg.Obstacles.MinGap = 640 / 6
	return cfg
}

// placePair puts a pair directly into the stream, bypassing the RNG.
func placePair(e *Engine, x, topY int) {
	top, bottom := ObstaclePair{
		X:         x,
		TopY:      topY,
		GapHeight: e.state.GapHeight,
		Width:     e.cfg.Obstacles.Width,
		Height:    e.cfg.Obstacles.Height,
	}.Obstacles()
	e.stream.obstacles = append(e.stream.obstacles, top, bottom)
}

func TestNewEngineStartsRunning(t *testing.T) {
	e := New(config.DefaultFlappyConfig(), 1)
	snap := e.Snapshot()

	assert.Equal(t, PhaseRunning, snap.Phase)
	assert.Equal(t, ActorPose{X: 45, Y: 180, Width: 34, Height: 24}, snap.Actor)
	assert.Empty(t, snap.Obstacles)
	assert.Zero(t, snap.Score)
	assert.Equal(t, 4, snap.HorizontalSpeed)
	assert.Equal(t, 160, snap.GapHeight)
}

func TestPhysicsRecurrence(t *testing.T) {
	e := New(tallBoard(), 1)
	p := e.cfg.Physics

	for i := 0; i < 60; i++ {
		before := e.actor
		e.Tick()

		wantV := min(before.VelocityY+p.Gravity, p.MaxVelocity)
		require.Equal(t, wantV, e.actor.VelocityY, "velocity at tick %d", i+1)
		require.Equal(t, max(before.Y+wantV, 0), e.actor.Y, "y at tick %d", i+1)
	}
}

func TestFreeFallReachesCapAtTickTen(t *testing.T) {
	e := New(tallBoard(), 1)

	var ys []int
	for i := 1; i <= 60; i++ {
		e.Tick()
		ys = append(ys, e.actor.Y)
		if i < 10 {
			require.Less(t, e.actor.VelocityY, 10, "tick %d", i)
		}
	}

	// Cap is reached on tick 10 and y grows by exactly the cap afterwards
	require.Equal(t, 10, e.actor.VelocityY)
	assert.Equal(t, 180+55, ys[9])
	for i := 10; i < len(ys); i++ {
		assert.Equal(t, 10, ys[i]-ys[i-1], "tick %d", i+1)
	}
	assert.Equal(t, PhaseRunning, e.Phase())
}

func TestFlapOverwritesVelocity(t *testing.T) {
	e := New(config.DefaultFlappyConfig(), 1)
	for i := 0; i < 5; i++ {
		e.Tick()
	}
	require.Equal(t, 5, e.actor.VelocityY)

	require.True(t, e.Flap())
	assert.Equal(t, -9, e.actor.VelocityY, "flap sets, not adds")

	y := e.actor.Y
	e.Tick()
	assert.Equal(t, -8, e.actor.VelocityY)
	assert.Equal(t, y-8, e.actor.Y)
}

func TestFlapIgnoredUnlessRunning(t *testing.T) {
	e := New(config.DefaultFlappyConfig(), 1)
	e.Tick()

	require.True(t, e.TogglePause())
	assert.False(t, e.Flap(), "flap while paused")
	assert.Equal(t, 1, e.actor.VelocityY)

	require.True(t, e.TogglePause())
	e.state.Phase = PhaseGameOver
	assert.False(t, e.Flap(), "flap after game over")
	assert.Equal(t, 1, e.actor.VelocityY)
}

func TestTopBoundaryClamps(t *testing.T) {
	e := New(config.DefaultFlappyConfig(), 1)

	for i := 0; i < 40; i++ {
		e.Flap()
		e.Tick()
	}

	assert.Equal(t, 0, e.actor.Y)
	assert.Equal(t, PhaseRunning, e.Phase(), "hitting the ceiling is not fatal")
}

func TestFallingBelowBoardEndsGame(t *testing.T) {
	t.Run("exactly at the bottom edge survives", func(t *testing.T) {
		e := New(config.DefaultFlappyConfig(), 1)
		e.actor.Y = 630
		e.actor.VelocityY = 9
		e.Tick()

		assert.Equal(t, 640, e.actor.Y)
		assert.Equal(t, PhaseRunning, e.Phase())
	})

	t.Run("below the bottom edge is game over", func(t *testing.T) {
		e := New(config.DefaultFlappyConfig(), 1)
		e.actor.Y = 635
		e.actor.VelocityY = 10
		e.Tick()

		assert.Equal(t, PhaseGameOver, e.Phase())
	})

	t.Run("free fall from the start position", func(t *testing.T) {
		e := New(config.DefaultFlappyConfig(), 1)
		ticks := 0
		for e.Phase() == PhaseRunning {
			e.Tick()
			ticks++
			require.Less(t, ticks, 1000)
		}
		// y = 235 after 10 ticks, then +10 per tick until y > 640
		assert.Equal(t, 51, ticks)
	})
}

func TestPassScoresHalfPerObstacle(t *testing.T) {
	e := New(config.DefaultFlappyConfig(), 1)
	// After one tick the pair's trailing edge (x=-24+64=40) is behind the
	// bird's left edge (45) but still on the board.
	placePair(e, -20, -128)

	e.Tick()
	assert.Equal(t, 1.0, e.State().Score, "two obstacles, +0.5 each")

	e.Tick()
	assert.Equal(t, 1.0, e.State().Score, "passing is counted once")
	for _, o := range e.stream.Obstacles() {
		assert.True(t, o.Passed)
	}
}

func TestSingleObstaclePassIsHalfPoint(t *testing.T) {
	e := New(config.DefaultFlappyConfig(), 1)
	top, _ := ObstaclePair{X: -20, TopY: -128, GapHeight: 160, Width: 64, Height: 512}.Obstacles()
	e.stream.obstacles = append(e.stream.obstacles, top)

	e.Tick()
	assert.Equal(t, 0.5, e.State().Score)
}

func TestCollisionEndsGameAndFreezes(t *testing.T) {
	e := New(config.DefaultFlappyConfig(), 1)
	// Top obstacle spans y in [-128, 384) which covers the bird.
	placePair(e, 50, -128)

	e.Tick()
	require.Equal(t, PhaseGameOver, e.Phase())

	frozen := e.Snapshot()
	e.Tick()
	assert.False(t, e.TrySpawn())
	assert.Equal(t, frozen, e.Snapshot(), "nothing moves after game over")
}

func TestCollisionSweepChecksEveryObstacle(t *testing.T) {
	e := New(config.DefaultFlappyConfig(), 1)
	placePair(e, 50, -128)  // Collides
	placePair(e, -20, -128) // Passed on the same tick

	e.Tick()

	assert.Equal(t, PhaseGameOver, e.Phase())
	assert.Equal(t, 1.0, e.State().Score, "obstacles after the hit are still scored")
	assert.Equal(t, 1.0, e.State().HighScore)
}

func TestPauseFreezesEverything(t *testing.T) {
	e := New(config.DefaultFlappyConfig(), 1)
	require.True(t, e.TrySpawn())
	e.Tick()

	require.True(t, e.TogglePause())
	require.Equal(t, PhasePaused, e.Phase())

	before := e.Snapshot()
	for i := 0; i < 10; i++ {
		e.Tick()
	}
	assert.False(t, e.TrySpawn())
	assert.Equal(t, before, e.Snapshot())

	require.True(t, e.TogglePause())
	assert.Equal(t, PhaseRunning, e.Phase())
}

func TestPauseIgnoredAfterGameOver(t *testing.T) {
	e := New(config.DefaultFlappyConfig(), 1)
	e.state.Phase = PhaseGameOver

	assert.False(t, e.TogglePause())
	assert.Equal(t, PhaseGameOver, e.Phase())
}

func TestRestart(t *testing.T) {
	e := New(config.DefaultFlappyConfig(), 1)

	assert.False(t, e.Restart(), "restart while running is a no-op")

	placePair(e, -20, -128)
	e.Tick()
	e.TrySpawn()
	e.actor.Y = 700
	e.Tick()
	require.Equal(t, PhaseGameOver, e.Phase())
	require.Equal(t, 1.0, e.State().HighScore)

	require.True(t, e.Restart())
	snap := e.Snapshot()
	assert.Equal(t, PhaseRunning, snap.Phase)
	assert.Zero(t, snap.Score)
	assert.Empty(t, snap.Obstacles)
	assert.Equal(t, ActorPose{X: 45, Y: 180, Width: 34, Height: 24}, snap.Actor)
	assert.Equal(t, 1.0, snap.HighScore, "high score survives restart")
	assert.Zero(t, snap.Tick)

	// A worse second round keeps the first round's best
	e.actor.Y = 700
	e.Tick()
	require.Equal(t, PhaseGameOver, e.Phase())
	assert.Equal(t, 1.0, e.State().HighScore)
}

func TestRestartResetsDifficulty(t *testing.T) {
	e := New(config.DefaultFlappyConfig(), 1)
	e.state.Score = 10
	e.Tick()
	require.Equal(t, 5, e.State().HorizontalSpeed)

	e.state.Phase = PhaseGameOver
	require.True(t, e.Restart())

	assert.Equal(t, 4, e.State().HorizontalSpeed)
	assert.Equal(t, 160, e.State().GapHeight)
}

func TestDifficultyRampEveryTick(t *testing.T) {
	e := New(tallBoard(), 1)
	e.state.Score = 10

	e.Tick()
	assert.Equal(t, 5, e.State().HorizontalSpeed)
	assert.Equal(t, 155, e.State().GapHeight)

	// Score still rests on 10, so the ramp fires again
	e.Tick()
	assert.Equal(t, 6, e.State().HorizontalSpeed)
	assert.Equal(t, 150, e.State().GapHeight)

	// New pairs use the shrunken gap
	require.True(t, e.TrySpawn())
	top, bottom := e.stream.Obstacles()[0], e.stream.Obstacles()[1]
	assert.Equal(t, 150, bottom.Y-(top.Y+top.Height))
}

func TestDifficultyRampOnCross(t *testing.T) {
	cfg := tallBoard()
	cfg.Difficulty.Trigger = config.TriggerOnCross
	e := New(cfg, 1)
	e.state.Score = 10

	for i := 0; i < 5; i++ {
		e.Tick()
	}
	assert.Equal(t, 5, e.State().HorizontalSpeed)
	assert.Equal(t, 155, e.State().GapHeight)
}

func TestDifficultyGapFloor(t *testing.T) {
	e := New(tallBoard(), 1)
	e.state.Score = 10

	for i := 0; i < 100; i++ {
		e.Tick()
	}
	assert.Equal(t, 640/6, e.State().GapHeight)
}

func TestGapsFollowBoardHeight(t *testing.T) {
	cfg := config.DefaultFlappyConfig()
	cfg.Board.Height = 1200

	e := New(cfg, 1)
	assert.Equal(t, 1200/4, e.State().GapHeight, "start gap")

	e.state.Score = 10
	for i := 0; i < 100; i++ {
		e.Tick()
	}
	require.Equal(t, PhaseRunning, e.Phase())
	assert.Equal(t, 1200/6, e.State().GapHeight, "floor gap")

	e.state.Phase = PhaseGameOver
	e.Restart()
	assert.Equal(t, 1200/4, e.State().GapHeight, "restart gap")
}

func TestDifficultyFrozenWhilePaused(t *testing.T) {
	e := New(tallBoard(), 1)
	e.state.Score = 10
	e.TogglePause()

	for i := 0; i < 10; i++ {
		e.Tick()
	}
	assert.Equal(t, 4, e.State().HorizontalSpeed)
}

func TestTrySpawnAddsOnePair(t *testing.T) {
	e := New(config.DefaultFlappyConfig(), 7)

	for i := 1; i <= 5; i++ {
		require.True(t, e.TrySpawn())
		snap := e.Snapshot()
		require.Len(t, snap.Obstacles, 2*i)
		assert.Equal(t, i, snap.PairCount())

		top, bottom := snap.Obstacles[2*i-2], snap.Obstacles[2*i-1]
		assert.Equal(t, ObstacleTop, top.Kind)
		assert.Equal(t, ObstacleBottom, bottom.Kind)
		assert.Equal(t, 360, top.X)
		assert.Equal(t, 360, bottom.X)
		assert.GreaterOrEqual(t, top.Y, -128)
		assert.Less(t, top.Y, 128)
		assert.Equal(t, top.Y+512+160, bottom.Y)
	}
}

func TestApplyDispatchesEvents(t *testing.T) {
	e := New(config.DefaultFlappyConfig(), 1)

	assert.True(t, e.Apply(core.EventFlap))
	assert.Equal(t, -9, e.actor.VelocityY)

	assert.True(t, e.Apply(core.EventTogglePause))
	assert.Equal(t, PhasePaused, e.Phase())

	assert.False(t, e.Apply(core.EventRestart))
	assert.False(t, e.Apply(core.EventNone))

	assert.True(t, e.Apply(core.EventTogglePause))
	e.state.Phase = PhaseGameOver
	assert.True(t, e.Apply(core.EventRestart))
	assert.Equal(t, PhaseRunning, e.Phase())
}

func TestDeterminism(t *testing.T) {
	run := func() Snapshot {
		e := New(config.DefaultFlappyConfig(), 12345)
		for i := 0; i < 400 && e.Phase() != PhaseGameOver; i++ {
			if i%90 == 0 {
				e.TrySpawn()
			}
			if i%14 == 0 {
				e.Flap()
			}
			e.Tick()
		}
		return e.Snapshot()
	}

	assert.Equal(t, run(), run())
}

func TestSnapshotIsACopy(t *testing.T) {
	e := New(config.DefaultFlappyConfig(), 1)
	e.TrySpawn()

	snap := e.Snapshot()
	snap.Obstacles[0].X = -999
	snap.Obstacles = append(snap.Obstacles, Obstacle{})

	assert.Equal(t, 360, e.stream.Obstacles()[0].X)
	assert.Equal(t, 2, e.stream.Len())
}

func TestTiltIsDerived(t *testing.T) {
	p := config.DefaultFlappyConfig().Physics

	tests := []struct {
		velocity int
		want     float64
	}{
		{0, 0},
		{2, 10},
		{10, 45},
		{-9, -45},
		{-5, -25},
	}
	for _, tc := range tests {
		a := Actor{VelocityY: tc.velocity}
		assert.Equal(t, tc.want, a.Tilt(p), "velocity %d", tc.velocity)
	}
}

func TestBackgroundWraps(t *testing.T) {
	e := New(tallBoard(), 1)

	for i := 0; i < 89; i++ {
		e.Tick()
	}
	assert.Equal(t, -356, e.Snapshot().BackgroundX)

	e.Tick()
	assert.Equal(t, 0, e.Snapshot().BackgroundX)
}

func TestPhaseString(t *testing.T) {
	assert.Equal(t, "running", PhaseRunning.String())
	assert.Equal(t, "paused", PhasePaused.String())
	assert.Equal(t, "game_over", PhaseGameOver.String())
	assert.Equal(t, "unknown", Phase(9).String())
}
