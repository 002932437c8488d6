package world

import "github.com/go-gl/mathgl/mgl64"

// Panel is a UI element that can be shown or hidden.
type Panel struct {
	Name   string
	active bool
}

// SetActive shows or hides the panel.
func (p *Panel) SetActive(active bool) {
	p.active = active
}

// Active reports whether the panel is shown.
func (p *Panel) Active() bool {
	return p.active
}

// Text is a UI label with a position relative to its anchor.
// Positions are in reference pixels, Y up.
type Text struct {
	Name  string
	value string
	local mgl64.Vec2
}

// SetText replaces the label contents.
func (t *Text) SetText(s string) {
	t.value = s
}

// Text returns the label contents.
func (t *Text) Text() string {
	return t.value
}

// SetLocalPosition moves the label relative to its anchor.
func (t *Text) SetLocalPosition(p mgl64.Vec2) {
	t.local = p
}

// LocalPosition returns the label offset from its anchor.
func (t *Text) LocalPosition() mgl64.Vec2 {
	return t.local
}

// Surface is the level UI: a hidden game-over panel and the distance readout.
type Surface struct {
	GameOver *Panel
	Distance *Text
}

// NewSurface creates the UI in its initial state.
func NewSurface() *Surface {
	return &Surface{
		GameOver: &Panel{Name: "GameOverPanel"},
		Distance: &Text{Name: "DistanceText"},
	}
}
