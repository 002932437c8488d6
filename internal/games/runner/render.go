package runner

import (
	"fmt"
	"math"

	"github.com/vovakirdan/lane-runner/internal/core"
	"github.com/vovakirdan/lane-runner/internal/obstacle"
)

// Visual characters for rendering
const (
	PlayerChar   = '@'
	AirborneChar = '^'
	SlideChar    = '▁'
	ShadowChar   = '·'
	EdgeChar     = '│'
	LaneChar     = '┊'
	SeamChar     = '─'
)

// obstacleGlyphs maps archetypes to their top-down glyph and color.
var obstacleGlyphs = map[obstacle.Archetype]struct {
	r rune
	c core.Color
}{
	obstacle.BlockerLane: {'█', core.ColorRed},
	obstacle.HurdleJump:  {'▄', core.ColorYellow},
	obstacle.BarSlide:    {'▀', core.ColorMagenta},
}

const (
	maxLaneCols = 12
	viewMargin  = 2.0 // Meters shown beyond the spawn distance
)

// view projects world coordinates onto the screen: X across the lanes,
// Z up the screen with the player near the bottom.
type view struct {
	left, laneCols int
	half           int
	laneWidth      float64
	playerRow      int
	playerZ        float64
	metersPerRow   float64
}

func (g *Game) newView(dst *core.Screen) (view, bool) {
	w, h := dst.Width(), dst.Height()
	geo := g.player.Geometry()

	playerRow := h - 3
	if playerRow < 2 || w < geo.Count()+2 {
		return view{}, false
	}

	laneCols := core.Min(maxLaneCols, (w-2)/geo.Count())
	return view{
		left:         (w - laneCols*geo.Count()) / 2,
		laneCols:     laneCols,
		half:         geo.HalfSpan(),
		laneWidth:    geo.Width(),
		playerRow:    playerRow,
		playerZ:      g.ctrl.Position().Z(),
		metersPerRow: (g.cfg.Obstacles.SpawnZOffset + viewMargin) / float64(playerRow-1),
	}, true
}

func (v view) col(x float64) int {
	return v.left + int(math.Floor((x/v.laneWidth+float64(v.half)+0.5)*float64(v.laneCols)))
}

func (v view) row(z float64) int {
	return v.playerRow - int(math.Round((z-v.playerZ)/v.metersPerRow))
}

// Render draws a top-down view of the lanes.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.player == nil {
		return
	}

	if v, ok := g.newView(dst); ok {
		g.drawTrack(dst, v)
		g.drawObstacles(dst, v)
		g.drawPlayer(dst, v)
	}
	g.drawHUD(dst)

	if g.paused {
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
	if g.ui.GameOver.Active() {
		g.drawGameOver(dst)
	}
}

func (g *Game) drawTrack(dst *core.Screen, v view) {
	h := dst.Height()
	count := g.player.Geometry().Count()
	right := v.left + count*v.laneCols

	// Tile seams first so lane lines stay visible
	for _, tile := range g.ground.Tiles() {
		y := v.row(tile.Z)
		if y < 1 || y >= h-1 {
			continue
		}
		for x := v.left; x < right; x++ {
			dst.SetColored(x, y, SeamChar, core.ColorGray)
		}
	}

	dst.DrawVLine(v.left-1, 1, h-2, EdgeChar, core.ColorWhite)
	dst.DrawVLine(right, 1, h-2, EdgeChar, core.ColorWhite)
	for s := 1; s < count; s++ {
		dst.DrawVLine(v.left+s*v.laneCols, 1, h-2, LaneChar, core.ColorGray)
	}
}

func (g *Game) drawObstacles(dst *core.Screen, v view) {
	h := dst.Height()
	for _, inst := range g.scene.Tagged(g.cfg.Obstacles.Tag) {
		y := v.row(inst.Position.Z())
		if y < 1 || y >= h-1 {
			continue
		}

		glyph, ok := obstacleGlyphs[g.kinds[inst.Prefab]]
		if !ok {
			glyph = obstacleGlyphs[obstacle.BlockerLane]
		}
		b := inst.Bounds()
		for x := v.col(b.Min.X()); x < v.col(b.Max.X()); x++ {
			dst.SetColored(x, y, glyph.r, glyph.c)
		}
	}
}

func (g *Game) drawPlayer(dst *core.Screen, v view) {
	pos := g.ctrl.Position()
	x := v.col(pos.X())

	switch {
	case g.player.Sliding():
		dst.SetColored(x, v.playerRow, SlideChar, core.ColorBrightCyan)
	case !g.ctrl.IsGrounded() && pos.Y() > 0.05:
		dst.SetColored(x, v.playerRow, AirborneChar, core.ColorBrightGreen)
		dst.SetColored(x, v.playerRow+1, ShadowChar, core.ColorGray)
	default:
		dst.SetColored(x, v.playerRow, PlayerChar, core.ColorBrightGreen)
	}
}

func (g *Game) drawHUD(dst *core.Screen) {
	if !g.ui.GameOver.Active() {
		dst.DrawTextColored(1, 0, g.ui.Distance.Text(), core.ColorBrightWhite)
	}

	laneText := fmt.Sprintf("Lane %+d", g.player.Lane())
	dst.DrawTextColored(dst.Width()-len(laneText)-1, 0, laneText, core.ColorGray)
}

// drawGameOver shows the panel and the readout at its configured offset
// from the screen center.
func (g *Game) drawGameOver(dst *core.Screen) {
	subtitle := "Press R to restart"
	if cause := g.Cause(); cause != "" {
		subtitle = fmt.Sprintf("Hit %s  |  Press R to restart", cause)
	}
	drawCenteredMessage(dst, "GAME OVER", subtitle)

	text := g.ui.Distance.Text()
	local := g.ui.Distance.LocalPosition()
	x := (dst.Width()-len([]rune(text)))/2 + int(local.X()/core.CellWidthPx)
	y := dst.Height()/2 - int(local.Y()/core.CellHeightPx)
	dst.DrawTextColored(x, y, text, core.ColorBrightYellow)
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}
