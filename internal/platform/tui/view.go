package tui

import (
	"fmt"
	"math"
	"unicode/utf8"

	"kickup/internal/sim"
)

// projector maps between world units and terminal cells. Rendering is
// a read-only projection of the world snapshot; nothing here mutates
// simulation state.
type projector struct {
	cellW, cellH   int
	worldW, worldH float64
}

func (p projector) toCell(wx, wy float64) (int, int) {
	x := int(math.Round(wx / p.worldW * float64(p.cellW)))
	y := int(math.Round(wy / p.worldH * float64(p.cellH)))
	return x, y
}

func (p projector) toWorld(cx, cy int) (float64, float64) {
	wx := (float64(cx) + 0.5) / float64(p.cellW) * p.worldW
	wy := (float64(cy) + 0.5) / float64(p.cellH) * p.worldH
	return wx, wy
}

// scaleLen converts a world-unit extent to at least one cell.
func scaleLen(worldLen, worldDim float64, cells int) int {
	n := int(math.Round(worldLen / worldDim * float64(cells)))
	if n < 1 {
		n = 1
	}
	return n
}

func obstacleGlyph(kind sim.ObstacleKind) (rune, Color) {
	switch kind {
	case sim.KindCone:
		return '▲', ColorCone
	case sim.KindGoalpost:
		return '║', ColorGoalpost
	case sim.KindDefender:
		return '█', ColorDefender
	default:
		return '?', ColorDefault
	}
}

// drawWorld projects the world snapshot into the screen buffer.
func drawWorld(dst *Screen, w sim.World, cfg sim.Tuning, ballGlyph rune) {
	dst.Clear()

	p := projector{
		cellW:  dst.Width(),
		cellH:  dst.Height() - 1, // bottom row is the ground line
		worldW: cfg.ScreenW,
		worldH: cfg.ScreenH,
	}

	// Ground
	for x := 0; x < dst.Width(); x++ {
		dst.Set(x, dst.Height()-1, '═', ColorGround)
	}

	// Obstacles as scaled boxes of their kind's glyph
	for _, o := range w.Obstacles {
		cx, cy := p.toCell(o.Position.X, o.Position.Y)
		bw := scaleLen(o.Width, p.worldW, p.cellW)
		bh := scaleLen(o.Height, p.worldH, p.cellH)
		glyph, color := obstacleGlyph(o.Kind)
		for dy := 0; dy < bh; dy++ {
			for dx := 0; dx < bw; dx++ {
				dst.Set(cx-bw/2+dx, cy-bh/2+dy, glyph, color)
			}
		}
	}

	// Coins
	for _, c := range w.Coins {
		cx, cy := p.toCell(c.Position.X, c.Position.Y)
		glyph := '$'
		if c.Value > 1 {
			glyph = '§'
		}
		dst.Set(cx, cy, glyph, ColorCoin)
	}

	// Ball
	bx, by := p.toCell(w.Ball.Position.X, w.Ball.Position.Y)
	dst.Set(bx, by, ballGlyph, ColorBall)
}

// drawHUD writes the score line over the top row.
func drawHUD(dst *Screen, w sim.World, balance, highScore int) {
	hud := fmt.Sprintf(" %ds  ·  run $%d  ·  bank $%d  ·  best %ds ",
		w.DisplayScore(), w.RunCoins, balance, highScore)
	dst.DrawText(1, 0, hud, ColorHUD)
}

// drawCenteredMessage draws a bordered message box over the pitch.
func drawCenteredMessage(dst *Screen, lines ...string) {
	boxW := 0
	for _, l := range lines {
		// Rune count, not byte length; the box text is not ASCII-only.
		if n := utf8.RuneCountInString(l); n > boxW {
			boxW = n
		}
	}
	boxW += 4
	boxH := len(lines)*2 + 1
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	for y := 0; y < boxH; y++ {
		for x := 0; x < boxW; x++ {
			r := ' '
			switch {
			case (y == 0 || y == boxH-1) && (x == 0 || x == boxW-1):
				r = '+'
			case y == 0 || y == boxH-1:
				r = '-'
			case x == 0 || x == boxW-1:
				r = '|'
			}
			dst.Set(boxX+x, boxY+y, r, ColorDefault)
		}
	}

	for i, l := range lines {
		dst.DrawText(boxX+(boxW-utf8.RuneCountInString(l))/2, boxY+1+i*2, l, ColorDefault)
	}
}
