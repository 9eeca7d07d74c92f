// Package core provides the platform-neutral types shared by games and front
// ends: the screen buffer, input frames and runtime configuration. It has no
// UI dependencies so game logic stays testable.
package core

// Rect is an axis-aligned rectangle in screen cells.
type Rect struct {
	X, Y int // top-left corner
	W, H int
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate one past the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate one past the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Fits reports whether a w x h rectangle fits inside r.
func (r Rect) Fits(w, h int) bool {
	return w <= r.W && h <= r.H
}

// Centered returns a w x h rectangle centered inside r.
func (r Rect) Centered(w, h int) Rect {
	return Rect{X: r.X + (r.W-w)/2, Y: r.Y + (r.H-h)/2, W: w, H: h}
}

// SplitX cuts r into a left part w columns wide and whatever remains right
// of it after gap columns. Both parts keep r's height.
func (r Rect) SplitX(w, gap int) (left, right Rect) {
	w = min(max(w, 0), r.W)
	left = Rect{X: r.X, Y: r.Y, W: w, H: r.H}
	rx := min(r.X+w+gap, r.Right())
	right = Rect{X: rx, Y: r.Y, W: r.Right() - rx, H: r.H}
	return left, right
}
