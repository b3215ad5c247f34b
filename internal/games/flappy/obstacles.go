package flappy

import (
	"math/rand"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// PassReward is the score awarded when the actor clears one obstacle.
// A pair has two obstacles that are checked independently, so one gap is
// worth 1.0.
const PassReward = 0.5

// ObstacleKind tells the top and bottom halves of a pair apart.
type ObstacleKind int

const (
	ObstacleTop ObstacleKind = iota
	ObstacleBottom
)

// Obstacle is one scorable, collidable box of a pair.
type Obstacle struct {
	Kind   ObstacleKind
	Pair   uint64 // ID of the pair this obstacle was spawned with
	X, Y   int
	Width  int
	Height int
	Passed bool
}

// Rect returns the collision box.
func (o Obstacle) Rect() core.Rect {
	return core.NewRect(o.X, o.Y, o.Width, o.Height)
}

// Right returns the x-coordinate of the trailing edge.
func (o Obstacle) Right() int {
	return o.X + o.Width
}

// ObstaclePair describes a top and a bottom obstacle sharing one gap.
type ObstaclePair struct {
	ID        uint64
	X         int
	TopY      int // Y of the top obstacle; its bottom edge is TopY+Height
	GapHeight int
	Width     int
	Height    int
}

// Obstacles expands the pair into its top and bottom obstacles.
func (p ObstaclePair) Obstacles() (top, bottom Obstacle) {
	top = Obstacle{
		Kind:   ObstacleTop,
		Pair:   p.ID,
		X:      p.X,
		Y:      p.TopY,
		Width:  p.Width,
		Height: p.Height,
	}
	bottom = Obstacle{
		Kind:   ObstacleBottom,
		Pair:   p.ID,
		X:      p.X,
		Y:      p.TopY + p.Height + p.GapHeight,
		Width:  p.Width,
		Height: p.Height,
	}
	return top, bottom
}

// AdvanceResult reports what happened to the stream during one tick.
type AdvanceResult struct {
	Passed   int  // Obstacles newly passed by the actor
	Collided bool // Any obstacle overlaps the actor
	Removed  int  // Obstacles dropped off the left edge
}

// Stream owns the ordered obstacle sequence. Insertion order is spawn
// order, which is also iteration and render order.
type Stream struct {
	obstacles  []Obstacle
	rng        *rand.Rand
	boardWidth int
	width      int
	height     int
	nextID     uint64
}

// NewStream creates an empty stream with the given RNG seed.
func NewStream(seed int64, cfg config.FlappyConfig) *Stream {
	s := &Stream{
		obstacles:  make([]Obstacle, 0, 16),
		boardWidth: cfg.Board.Width,
		width:      cfg.Obstacles.Width,
		height:     cfg.Obstacles.Height,
	}
	s.Reset(seed)
	return s
}

// Reset clears all obstacles and reseeds the RNG.
func (s *Stream) Reset(seed int64) {
	s.Clear()
	s.rng = rand.New(rand.NewSource(seed))
}

// Clear removes all obstacles and keeps the RNG position.
func (s *Stream) Clear() {
	clear(s.obstacles)
	s.obstacles = s.obstacles[:0]
}

// Spawn appends a new pair at the right edge of the board. The top
// obstacle's y is drawn uniformly from [-height/4, height/4).
func (s *Stream) Spawn(gapHeight int) ObstaclePair {
	offset := s.rng.Intn(s.height/2) - s.height/4

	s.nextID++
	pair := ObstaclePair{
		ID:        s.nextID,
		X:         s.boardWidth,
		TopY:      offset,
		GapHeight: gapHeight,
		Width:     s.width,
		Height:    s.height,
	}

	top, bottom := pair.Obstacles()
	s.obstacles = append(s.obstacles, top, bottom)
	return pair
}

// Advance moves every obstacle left by speed, marks obstacles the actor
// has passed, checks every obstacle for overlap with the actor and drops
// obstacles whose trailing edge has reached the left edge of the board.
//
// Removal is a single filter pass, so no obstacle is skipped or processed
// twice, and every live obstacle is collision-checked even after a hit.
func (s *Stream) Advance(speed int, actor core.Rect) AdvanceResult {
	var res AdvanceResult

	kept := s.obstacles[:0]
	for _, o := range s.obstacles {
		o.X -= speed

		if !o.Passed && actor.X > o.Right() {
			o.Passed = true
			res.Passed++
		}

		if actor.Intersects(o.Rect()) {
			res.Collided = true
		}

		if o.Right() <= 0 {
			res.Removed++
			continue
		}
		kept = append(kept, o)
	}
	clear(s.obstacles[len(kept):])
	s.obstacles = kept

	return res
}

// Obstacles returns the live obstacles. The slice is owned by the stream
// and must not be modified; Snapshot returns a copy.
func (s *Stream) Obstacles() []Obstacle {
	return s.obstacles
}

// Len returns the number of live obstacles.
func (s *Stream) Len() int {
	return len(s.obstacles)
}
