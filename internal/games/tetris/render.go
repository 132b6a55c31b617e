package tetris

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris/engine"
)

const (
	cellW   = 2 // terminal columns per playfield cell
	wellW   = engine.Cols*cellW + 2
	wellH   = engine.Rows + 2
	panelW  = 16
	gap     = 2
	layoutW = wellW + gap + panelW
	layoutH = wellH
)

// MinScreenSize is the smallest terminal the game can draw in.
func MinScreenSize() (w, h int) { return layoutW, layoutH }

func (g *Game) checkScreenSize() {
	wasSmall := g.tooSmall
	g.tooSmall = g.screenW < layoutW || g.screenH < layoutH
	if g.tooSmall && !wasSmall && g.session != nil {
		g.releaseSoftDrop()
	}
}

// Resize updates the screen size without restarting the game.
func (g *Game) Resize(w, h int) {
	g.screenW, g.screenH = w, h
	g.runtime.ScreenW, g.runtime.ScreenH = w, h
	g.checkScreenSize()
}

// pieceColor picks the colour of a kind for the configured background.
func (g *Game) pieceColor(k engine.Kind) core.Color {
	bright, dark := k.Colors()
	return core.Shade(bright, dark, g.cfg.DarkBackground())
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	area := core.NewRect(0, 0, g.screenW, g.screenH).CenteredIn(layoutW, layoutH)
	well := core.NewRect(area.X, area.Y, wellW, wellH)
	panel := core.NewRect(well.Right()+gap, area.Y, panelW, layoutH)

	dst.DrawBox(well, core.ColorGray)
	field := g.session.Field()
	g.renderField(dst, well, &field)
	if g.session.State() == engine.StateRunning {
		if g.cfg.Theme.Ghost {
			g.renderGhost(dst, well)
		}
		g.renderActive(dst, well)
	}
	g.renderPanel(dst, panel)
	g.renderOverlays(dst, well)
}

func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, fmt.Sprintf("Need %dx%d", layoutW, layoutH))
}

// cellAt returns the screen position of a playfield cell inside the well.
func cellAt(well core.Rect, row, col int) (x, y int) {
	return well.X + 1 + col*cellW, well.Y + 1 + row
}

func drawBlock(dst *core.Screen, x, y int, r rune, c core.Color) {
	dst.SetColor(x, y, r, c)
	dst.SetColor(x+1, y, r, c)
}

func (g *Game) renderField(dst *core.Screen, well core.Rect, pf *engine.Playfield) {
	for row := 0; row < engine.Rows; row++ {
		for col := 0; col < engine.Cols; col++ {
			x, y := cellAt(well, row, col)
			cell := pf.Cell(row, col)
			if k, ok := cell.Kind(); ok {
				drawBlock(dst, x, y, '█', g.pieceColor(k))
				continue
			}
			dst.SetColor(x+1, y, '·', core.ColorGray)
		}
	}
}

func (g *Game) renderGhost(dst *core.Screen, well core.Rect) {
	ghost := g.session.Current()
	ghost.Row = g.session.GhostRow()
	if ghost.Row == g.session.Current().Row {
		return
	}
	for _, p := range ghost.Cells() {
		if p.Row < 0 {
			continue
		}
		x, y := cellAt(well, p.Row, p.Col)
		drawBlock(dst, x, y, '░', core.ColorGray)
	}
}

func (g *Game) renderActive(dst *core.Screen, well core.Rect) {
	cur := g.session.Current()
	color := g.pieceColor(cur.Kind)
	for _, p := range cur.Cells() {
		if p.Row < 0 {
			continue
		}
		x, y := cellAt(well, p.Row, p.Col)
		drawBlock(dst, x, y, '█', color)
	}
}

func (g *Game) renderPanel(dst *core.Screen, panel core.Rect) {
	x, y := panel.X, panel.Y
	dst.DrawTextColor(x, y, g.Title(), core.ColorBrightWhite)

	// Next piece preview, 4x4 cells in a box.
	box := core.NewRect(x, y+1, 4*cellW+2, 6)
	dst.DrawBox(box, core.ColorGray)
	dst.DrawText(x+2, y+1, "NEXT")
	next := g.session.Next()
	shape := next.Kind.Shape(next.State)
	color := g.pieceColor(next.Kind)
	top := box.Y + 1 + (4-shape.Size)/2
	for r := 0; r < shape.Size; r++ {
		for c := 0; c < shape.Size; c++ {
			if shape.Filled(r, c) {
				drawBlock(dst, box.X+1+c*cellW, top+r, '█', color)
			}
		}
	}

	sc := g.session.Score()
	stats := []struct {
		label string
		value int
	}{
		{"Score", sc.Score},
		{"Lines", sc.Lines},
		{"Level", sc.Level},
	}
	sy := box.Bottom() + 1
	for i, st := range stats {
		dst.DrawText(x, sy+i*2, st.label)
		dst.DrawTextColor(x, sy+i*2+1, fmt.Sprintf("%d", st.value), core.ColorBrightYellow)
	}

	if g.flash != "" {
		dst.DrawTextColor(x, sy+len(stats)*2, truncate(g.flash, panelW), core.ColorBrightMagenta)
	}

	hints := g.hints()
	for i, h := range hints {
		dst.DrawTextColor(x, panel.Bottom()-len(hints)+i, truncate(h, panelW), core.ColorGray)
	}
}

// hints lists the configured keys of the main commands. Unbound commands
// are left out.
func (g *Game) hints() []string {
	k := g.cfg.Keys
	var out []string
	add := func(parts ...string) {
		var b strings.Builder
		for i := 0; i+1 < len(parts); i += 2 {
			key := keyHint(parts[i])
			if key == "" {
				continue
			}
			if b.Len() > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(key + " " + parts[i+1])
		}
		if b.Len() > 0 {
			out = append(out, b.String())
		}
	}
	add(first(k.ShiftLeft), "left", first(k.ShiftRight), "right")
	add(first(k.RotateCW), "cw", first(k.RotateCCW), "ccw")
	add(first(k.SoftDrop), "soft", first(k.HardDrop), "hard")
	add(first(k.Pause), "pause")
	add(first(k.Quit), "quit")
	return out
}

func first(keys []string) string {
	if len(keys) == 0 {
		return ""
	}
	return keys[0]
}

// keyHint is the short panel label of a key name.
func keyHint(key string) string {
	switch key {
	case "left":
		return "←"
	case "right":
		return "→"
	case "up":
		return "↑"
	case "down":
		return "↓"
	case " ":
		return "␣"
	}
	return key
}

func (g *Game) renderOverlays(dst *core.Screen, well core.Rect) {
	cy := well.Y + well.H/2
	switch g.session.State() {
	case engine.StatePaused:
		centerIn(dst, well, cy, "PAUSED", core.ColorBrightYellow)
		if key := keyHint(first(g.cfg.Keys.Pause)); key != "" {
			centerIn(dst, well, cy+1, key+" to resume", core.ColorWhite)
		}
	case engine.StateGameOver:
		centerIn(dst, well, cy-1, "GAME OVER", core.ColorBrightRed)
		centerIn(dst, well, cy, fmt.Sprintf("Score %d", g.session.Score().Score), core.ColorWhite)
		if key := keyHint(first(g.cfg.Keys.Restart)); key != "" {
			centerIn(dst, well, cy+1, key+" restart", core.ColorWhite)
		}
	}
}

func centerIn(dst *core.Screen, r core.Rect, y int, text string, c core.Color) {
	n := len([]rune(text))
	dst.DrawTextColor(r.X+(r.W-n)/2, y, text, c)
}

func truncate(s string, n int) string {
	rs := []rune(s)
	if len(rs) <= n {
		return s
	}
	return string(rs[:n])
}
