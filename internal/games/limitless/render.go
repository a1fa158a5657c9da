package limitless

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/limitless/internal/core"
	"github.com/vovakirdan/limitless/internal/sim"
)

// Glyphs
const (
	GlyphPlayer   = '@'
	GlyphAim      = '+'
	GlyphShield   = '∘'
	GlyphGrid     = '·'
	GlyphBarFull  = '█'
	GlyphBarEmpty = '░'
)

var enemyGlyphs = map[sim.EnemyKind]rune{
	sim.EnemyBasic:     '▒',
	sim.EnemyTank:      '█',
	sim.EnemySpeedster: '▓',
}

var abilityColors = map[sim.AbilityKind]core.Color{
	sim.AbilityBlue:   core.ColorBrightCyan,
	sim.AbilityRed:    core.ColorOrange,
	sim.AbilityPurple: core.ColorViolet,
	sim.AbilityDomain: core.ColorBrightWhite,
}

// Render draws the arena, HUD and overlays.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.session == nil {
		return
	}

	if g.tooSmall {
		msg := "Window too small"
		hint := fmt.Sprintf("Need %dx%d", MinScreenW, MinScreenH)
		dst.DrawTextCentered(dst.Height()/2-1, msg)
		dst.DrawTextCentered(dst.Height()/2+1, hint)
		return
	}

	snap := g.session.Snapshot()

	g.renderBackground(dst, snap)
	g.renderParticles(dst, snap)
	g.renderProjectiles(dst, snap)
	g.renderEnemies(dst, snap)
	g.renderPlayer(dst, snap)
	g.renderHUD(dst, snap)
	g.renderOverlay(dst, snap)
}

func (g *Game) renderBackground(dst *core.Screen, snap sim.Snapshot) {
	if snap.DomainActive {
		// Starfield keyed on cell coordinates so it holds still between frames
		for y := HUDRows; y < dst.Height(); y++ {
			for x := 0; x < dst.Width(); x++ {
				h := (x*73856093 ^ y*19349663) & 0xff
				switch {
				case h < 6:
					dst.SetColor(x, y, '*', core.ColorBrightWhite)
				case h < 24:
					dst.SetColor(x, y, '·', core.ColorDeepBlue)
				case h < 30:
					dst.SetColor(x, y, '·', core.ColorViolet)
				}
			}
		}
		return
	}

	// Sparse grid dot every 100 world units
	for y := HUDRows; y < dst.Height(); y++ {
		for x := 0; x < dst.Width(); x++ {
			if x%10 == 0 && (y-HUDRows)%5 == 0 {
				dst.SetColor(x, y, GlyphGrid, core.ColorDarkGray)
			}
		}
	}
}

func (g *Game) renderParticles(dst *core.Screen, snap sim.Snapshot) {
	for _, p := range snap.Particles {
		glyph := '.'
		if p.Fade() > 0.5 && p.Size > 3 {
			glyph = '•'
		}
		setWorld(dst, p.Pos, glyph, p.Color)
	}
}

func (g *Game) renderProjectiles(dst *core.Screen, snap sim.Snapshot) {
	for _, p := range snap.Projectiles {
		switch {
		case p.IsWave:
			r := snap.WaveRadius(p)
			fillDisc(dst, p.Pos, r*0.6, '░', core.ColorBrightWhite)
			drawRing(dst, p.Pos, r, '▒', core.ColorViolet)
		case p.Kind == sim.ProjectileBlue:
			drawRing(dst, p.Pos, p.Radius*3, '·', core.ColorBlue)
			fillDisc(dst, p.Pos, p.Radius, '░', p.Color)
			setWorld(dst, p.Pos, '◉', core.ColorBrightBlue)
		case p.Kind == sim.ProjectileRed:
			fillDisc(dst, p.Pos, p.Radius, '▓', p.Color)
			setWorld(dst, p.Pos, '●', core.ColorBrightRed)
		case p.Kind == sim.ProjectilePurple:
			fillDisc(dst, p.Pos, p.Radius, '▓', p.Color)
			setWorld(dst, p.Pos, '◆', core.ColorBrightMagenta)
		}
	}
}

func (g *Game) renderEnemies(dst *core.Screen, snap sim.Snapshot) {
	for _, e := range snap.Enemies {
		glyph, ok := enemyGlyphs[e.Kind]
		if !ok {
			glyph = '?'
		}
		color := e.Color
		if snap.DomainActive {
			color = core.ColorBrightBlue
		}
		fillDisc(dst, e.Pos, e.Radius, glyph, color)
	}
}

func (g *Game) renderPlayer(dst *core.Screen, snap sim.Snapshot) {
	p := snap.Player
	if p.Limitless {
		drawRing(dst, p.Pos, p.Radius+g.cfg.Player.RepelMargin, GlyphShield, core.ColorWhite)
	}
	setWorld(dst, p.Pos, GlyphPlayer, sim.PlayerColor)

	if snap.State == sim.StatePlaying {
		setWorld(dst, snap.Aim, GlyphAim, core.ColorYellow)
	}
}

// renderHUD draws the two status rows.
func (g *Game) renderHUD(dst *core.Screen, snap sim.Snapshot) {
	p := snap.Player
	hp := math.Max(0, p.HP)

	x := 1
	x = drawLabel(dst, x, 0, "HP ", core.ColorWhite)
	x = drawLabel(dst, x, 0, bar(hp, p.MaxHP, 10), hpColor(hp, p.MaxHP))
	x = drawLabel(dst, x, 0, fmt.Sprintf(" %3.0f  ", hp), core.ColorWhite)
	x = drawLabel(dst, x, 0, "EN ", core.ColorWhite)
	x = drawLabel(dst, x, 0, bar(p.Energy, p.MaxEnergy, 10), core.ColorBrightCyan)
	drawLabel(dst, x, 0, fmt.Sprintf(" %4.0f", p.Energy), core.ColorWhite)

	stats := fmt.Sprintf("Score: %d  Wave: %d", snap.Stats.Score, snap.Stats.Wave)
	dst.DrawText(dst.Width()-len(stats)-1, 0, stats)

	x = 1
	for i, a := range snap.Abilities {
		label := fmt.Sprintf("[%d]%s %s ", i+1, strings.ToUpper(a.Kind.String()), g.cooldownText(a))
		color := abilityColors[a.Kind]
		if !a.Ready || !a.Affordable {
			color = core.ColorGray
		}
		x = drawLabel(dst, x, 1, label, color)
	}

	var flags []string
	if p.Limitless {
		flags = append(flags, "LIMITLESS")
	}
	if snap.DomainActive {
		flags = append(flags, fmt.Sprintf("DOMAIN %s", g.seconds(snap.DomainRemaining)))
	}
	if len(flags) > 0 {
		text := strings.Join(flags, "  ")
		dst.DrawTextColor(dst.Width()-len(text)-1, 1, text, core.ColorBrightWhite)
	}
}

func (g *Game) cooldownText(a sim.AbilityStatus) string {
	switch {
	case !a.Ready:
		return g.seconds(a.Cooldown)
	case !a.Affordable:
		return "LOW"
	default:
		return "OK"
	}
}

func (g *Game) seconds(ticks int) string {
	return fmt.Sprintf("%.1fs", float64(ticks)/float64(g.runtime.TickRate))
}

// renderOverlay draws title, pause and game over boxes.
func (g *Game) renderOverlay(dst *core.Screen, snap sim.Snapshot) {
	switch {
	case snap.State == sim.StateMenu:
		drawCenteredBox(dst, []string{
			strings.ToUpper(g.Title()),
			"",
			"WASD move   mouse aim   SPACE limitless",
			"1 blue   2 red   3 purple   4 domain",
			"red into blue fuses a hollow wave",
			"",
			"ENTER start   TAB scores   Q quit",
		})
	case snap.State == sim.StateGameOver:
		drawCenteredBox(dst, []string{
			"GAME OVER",
			"",
			fmt.Sprintf("Score: %d  Wave: %d  Kills: %d", snap.Stats.Score, snap.Stats.Wave, snap.Stats.Kills),
			"",
			"R restart   TAB scores   Q quit",
		})
	case g.paused:
		drawCenteredBox(dst, []string{"PAUSED", "", "Press P to resume"})
	}
}

// drawCenteredBox draws a centered message box.
func drawCenteredBox(dst *core.Screen, lines []string) {
	width := 0
	for _, l := range lines {
		width = core.Max(width, len([]rune(l)))
	}

	boxW := width + 4
	boxH := len(lines) + 2
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ')
	dst.DrawBoxColor(box, core.ColorViolet)
	for i, l := range lines {
		x := box.X + (boxW-len([]rune(l)))/2
		color := core.ColorDefault
		if i == 0 {
			color = core.ColorBrightWhite
		}
		dst.DrawTextColor(x, box.Y+1+i, l, color)
	}
}

func drawLabel(dst *core.Screen, x, y int, text string, c core.Color) int {
	dst.DrawTextColor(x, y, text, c)
	return x + len([]rune(text))
}

func bar(value, limit float64, width int) string {
	filled := 0
	if limit > 0 {
		filled = int(math.Round(core.ClampF(value/limit, 0, 1) * float64(width)))
	}
	return strings.Repeat(string(GlyphBarFull), filled) + strings.Repeat(string(GlyphBarEmpty), width-filled)
}

func hpColor(hp, limit float64) core.Color {
	switch ratio := hp / limit; {
	case ratio > 0.6:
		return core.ColorBrightGreen
	case ratio > 0.3:
		return core.ColorBrightYellow
	default:
		return core.ColorBrightRed
	}
}

// setWorld draws one glyph at the cell containing p, never over the HUD.
func setWorld(dst *core.Screen, p core.Vec2, r rune, c core.Color) {
	x, y := WorldToCell(p)
	if y < HUDRows {
		return
	}
	dst.SetColor(x, y, r, c)
}

// fillDisc fills every cell whose center lies within r of center.
// The center cell is always drawn so small entities stay visible.
func fillDisc(dst *core.Screen, center core.Vec2, r float64, glyph rune, c core.Color) {
	forCells(dst, center, r, func(x, y int, d float64) {
		if d <= r {
			dst.SetColor(x, y, glyph, c)
		}
	})
	setWorld(dst, center, glyph, c)
}

// drawRing draws the cells whose centers lie near the circle of radius r.
func drawRing(dst *core.Screen, center core.Vec2, r float64, glyph rune, c core.Color) {
	if r <= 0 {
		return
	}
	const band = CellW * 0.6
	forCells(dst, center, r+band, func(x, y int, d float64) {
		if math.Abs(d-r) <= band {
			dst.SetColor(x, y, glyph, c)
		}
	})
}

// forCells visits the on-screen arena cells in the bounding box of a circle.
func forCells(dst *core.Screen, center core.Vec2, r float64, fn func(x, y int, d float64)) {
	x0, y0 := WorldToCell(center.Sub(core.V(r, r)))
	x1, y1 := WorldToCell(center.Add(core.V(r, r)))
	x0, x1 = core.Max(x0, 0), core.Min(x1, dst.Width()-1)
	y0, y1 = core.Max(y0, HUDRows), core.Min(y1, dst.Height()-1)

	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			d := core.Dist(center, CellToWorld(float64(x), float64(y)))
			fn(x, y, d)
		}
	}
}
