package flappy

import (
	"fmt"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Visual characters for rendering
const (
	ObstacleChar   = '█'
	CapTopChar     = '▀'
	CapBottomChar  = '▄'
	GroundChar     = '═'
	WallChar       = '│'
	BackgroundChar = '·'
	BirdBodyChar   = '●'
	BirdLevelChar  = '>'
	BirdClimbChar  = '╱'
	BirdDiveChar   = '╲'
)

const (
	minRenderWidth  = 12
	minRenderHeight = 8

	// Tilt beyond this many degrees switches the bird's head glyph.
	tiltGlyphThreshold = 15
)

// layout maps board units onto the terminal grid. Terminal cells are
// roughly twice as tall as wide, so one cell covers twice as many board
// units vertically as horizontally.
type layout struct {
	sx, sy  float64
	offsetX int
	field   core.Rect // Play field in screen cells
}

func newLayout(snap Snapshot, w, h int) layout {
	fieldH := h - 2 // HUD row on top, ground row at the bottom
	sy := float64(snap.BoardHeight) / float64(fieldH)
	sx := sy / 2

	fieldW := int(float64(snap.BoardWidth)/sx + 0.5)
	if fieldW > w-2 {
		fieldW = w - 2
		sx = float64(snap.BoardWidth) / float64(fieldW)
	}
	offsetX := (w - fieldW) / 2

	return layout{
		sx:      sx,
		sy:      sy,
		offsetX: offsetX,
		field:   core.NewRect(offsetX, 1, fieldW, fieldH),
	}
}

// project converts a board rectangle into clipped screen cells.
func (l layout) project(r core.Rect) (core.Rect, bool) {
	s := r.Scale(l.sx, l.sy)
	s.X += l.field.X
	s.Y += l.field.Y

	x0 := max(s.X, l.field.X)
	y0 := max(s.Y, l.field.Y)
	x1 := min(s.Right(), l.field.Right())
	y1 := min(s.Bottom(), l.field.Bottom())
	if x1 <= x0 || y1 <= y0 {
		return core.Rect{}, false
	}
	return core.NewRect(x0, y0, x1-x0, y1-y0), true
}

// Render draws the snapshot into dst, scaling the board to fit.
func Render(snap Snapshot, dst *core.Screen) {
	dst.Clear()

	w, h := dst.Width(), dst.Height()
	if w < minRenderWidth || h < minRenderHeight {
		dst.DrawTextCentered(h/2, "Terminal too small", core.ColorRed)
		return
	}

	l := newLayout(snap, w, h)

	drawBackground(dst, snap, l)
	for _, o := range snap.Obstacles {
		drawObstacle(dst, o, l)
	}
	drawBird(dst, snap.Actor, l)

	// Walls and ground
	for y := l.field.Y; y < l.field.Bottom(); y++ {
		dst.SetColored(l.field.X-1, y, WallChar, core.ColorGray)
		dst.SetColored(l.field.Right(), y, WallChar, core.ColorGray)
	}
	dst.DrawHLine(l.field.X-1, h-1, l.field.W+2, GroundChar, core.ColorYellow)

	// HUD
	hud := fmt.Sprintf(" Score: %d  Best: %d ", int(snap.Score), int(snap.HighScore))
	dst.DrawText(l.field.X, 0, hud, core.ColorBrightYellow)

	switch snap.Phase {
	case PhasePaused:
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	case PhaseGameOver:
		drawCenteredMessage(dst, "GAME OVER",
			fmt.Sprintf("Score: %d  High Score: %d", int(snap.Score), int(snap.HighScore)),
			"Press SPACE to restart")
	}
}

// drawBackground scatters dots that scroll with the background offset.
func drawBackground(dst *core.Screen, snap Snapshot, l layout) {
	const spacing = 48
	for row := 0; row < l.field.H; row += 3 {
		shift := (row * 17) % spacing
		for bx := shift; bx < snap.BoardWidth; bx += spacing {
			x := bx + snap.BackgroundX
			if x < 0 {
				x += snap.BoardWidth
			}
			cx := l.field.X + int(float64(x)/l.sx)
			if cx < l.field.Right() {
				dst.SetColored(cx, l.field.Y+row, BackgroundChar, core.ColorGray)
			}
		}
	}
}

func drawObstacle(dst *core.Screen, o Obstacle, l layout) {
	r, ok := l.project(o.Rect())
	if !ok {
		return
	}
	dst.DrawRect(r, ObstacleChar, core.ColorGreen)

	// Cap on the edge facing the gap, if that edge is visible
	gapEdge := o.Rect().Scale(l.sx, l.sy)
	if o.Kind == ObstacleTop {
		y := gapEdge.Bottom() - 1 + l.field.Y
		if y >= r.Y && y < r.Bottom() {
			dst.DrawHLine(r.X, y, r.W, CapTopChar, core.ColorBrightGreen)
		}
		return
	}
	y := gapEdge.Y + l.field.Y
	if y >= r.Y && y < r.Bottom() {
		dst.DrawHLine(r.X, y, r.W, CapBottomChar, core.ColorBrightGreen)
	}
}

func drawBird(dst *core.Screen, a ActorPose, l layout) {
	r, ok := l.project(core.NewRect(a.X, a.Y, a.Width, a.Height))
	if !ok {
		return
	}
	dst.DrawRect(r, BirdBodyChar, core.ColorYellow)

	head := BirdLevelChar
	switch {
	case a.Tilt <= -tiltGlyphThreshold:
		head = BirdClimbChar
	case a.Tilt >= tiltGlyphThreshold:
		head = BirdDiveChar
	}
	dst.SetColored(r.Right()-1, r.Y, head, core.ColorBrightYellow)
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title string, lines ...string) {
	w := dst.Width()
	h := dst.Height()

	boxW := len(title)
	for _, line := range lines {
		boxW = max(boxW, len(line))
	}
	boxW += 4
	boxH := 4 + len(lines)
	box := core.NewRect((w-boxW)/2, (h-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorWhite)

	dst.DrawText(box.X+(boxW-len(title))/2, box.Y+1, title, core.ColorBrightYellow)
	for i, line := range lines {
		dst.DrawText(box.X+(boxW-len(line))/2, box.Y+3+i, line, core.ColorWhite)
	}
}
