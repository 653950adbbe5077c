package rockboy

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/rock-boy/internal/core"
	"github.com/vovakirdan/rock-boy/internal/games/rockboy/sim"
)

// Visual characters for rendering
const (
	RockChar      = '█'
	RockCrackChar = '▒'
	GroundChar    = '▀'
	DirtChar      = '░'
	PlatformChar  = '▬'
	SpikeUpChar   = '▲'
	SpikeDownChar = '▼'
	StarChar      = '★'
	TrailChar     = '·'
	SparkChar     = '*'
	DebrisChar    = '◆'
	MinerHeadChar = 'o'
	MinerBodyChar = '#'
	BarFullChar   = '█'
	BarEmptyChar  = '░'
)

const hudRows = 1 // Rows reserved above the play area

// ScreenRenderer rasterises a sim.View into a character screen.
// World units are scaled so the camera viewport fills the screen below the HUD.
type ScreenRenderer struct {
	dst    *core.Screen
	scaleX float64 // World units per column
	scaleY float64 // World units per row
	camX   float64
	camY   float64
	field  core.Rect // Play area in cells, below the HUD
}

// NewScreenRenderer creates a renderer drawing into dst.
func NewScreenRenderer(dst *core.Screen) *ScreenRenderer {
	return &ScreenRenderer{dst: dst}
}

// RenderFrame implements sim.Renderer.
func (r *ScreenRenderer) RenderFrame(v *sim.View) error {
	if v == nil {
		return fmt.Errorf("rockboy: render: nil view")
	}
	w, h := r.dst.Width(), r.dst.Height()
	if w < 20 || h < hudRows+5 {
		return fmt.Errorf("rockboy: render: screen %dx%d too small", w, h)
	}

	r.dst.Clear()
	r.scaleX = v.Camera.W / float64(w)
	r.scaleY = v.Camera.H / float64(h-hudRows)
	r.camX = v.Camera.X
	r.camY = v.Camera.Y
	r.field = core.NewRect(0, hudRows, w, h-hudRows)

	r.drawGround(v)
	for _, p := range v.Platforms {
		r.drawPlatform(p)
	}
	for _, s := range v.Spikes {
		r.drawSpike(s)
	}
	for _, m := range v.Miners {
		r.drawMiner(m)
	}
	r.drawParticles(v, sim.ParticleTrail)
	if v.Star.Visible {
		r.plot(v.Star.X, v.Star.Y, StarChar, core.ColorGold)
	}
	if !v.Rock.Broken {
		r.drawRock(v)
	}
	for _, kind := range []sim.ParticleKind{sim.ParticleEvolution, sim.ParticleCollect, sim.ParticleSpark, sim.ParticleDebris, sim.ParticleCelebration} {
		r.drawParticles(v, kind)
	}

	r.drawHUD(v)
	if v.Debug {
		r.drawDebug(v)
	}

	switch v.Mode {
	case sim.ModeGameOver:
		r.drawMessage("GAME OVER", fmt.Sprintf("Score: %d  |  Press Space to try again", v.Stats.Score), core.ColorBrightRed)
	case sim.ModeInterstitial:
		if v.Interstitial.Final {
			r.drawMessage("YOU BECAME A DIAMOND!", fmt.Sprintf("Score: %d  |  Press Space to play again", v.Stats.Score), core.ColorIce)
		} else {
			secs := int(math.Ceil(float64(v.Interstitial.Remaining) / 60))
			r.drawMessage(fmt.Sprintf("WORLD %d CLEARED", v.Stats.WorldLevel), fmt.Sprintf("Next world in %ds", secs), core.ColorGold)
		}
	}
	return nil
}

// cell converts world coordinates to a screen cell.
func (r *ScreenRenderer) cell(wx, wy float64) (int, int) {
	cx := int(math.Floor((wx - r.camX) / r.scaleX))
	cy := hudRows + int(math.Floor((wy-r.camY)/r.scaleY))
	return cx, cy
}

func (r *ScreenRenderer) plot(wx, wy float64, ch rune, c core.Color) {
	x, y := r.cell(wx, wy)
	if !r.field.Contains(x, y) {
		return
	}
	r.dst.SetColored(x, y, ch, c)
}

// fillRect fills every cell covered by a world rectangle, at least one cell.
func (r *ScreenRenderer) fillRect(rect core.RectF, ch rune, c core.Color) {
	x0, y0 := r.cell(rect.X, rect.Y)
	x1, y1 := r.cell(rect.Right()-1e-6, rect.Bottom()-1e-6)
	if !r.field.Intersects(core.NewRect(x0, y0, x1-x0+1, y1-y0+1)) {
		return
	}
	for y := core.Max(y0, hudRows); y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			r.dst.SetColored(x, y, ch, c)
		}
	}
}

func (r *ScreenRenderer) drawGround(v *sim.View) {
	_, gy := r.cell(0, v.GroundY)
	w := r.dst.Width()
	for y := core.Max(gy, hudRows); y < r.dst.Height(); y++ {
		ch := DirtChar
		if y == gy {
			ch = GroundChar
		}
		for x := 0; x < w; x++ {
			r.dst.SetColored(x, y, ch, core.ColorBrown)
		}
	}

	// Arena walls
	if v.WorldW > 0 {
		for _, wx := range []float64{0, v.WorldW - r.scaleX} {
			x, _ := r.cell(wx, 0)
			for y := hudRows; y < r.dst.Height(); y++ {
				r.dst.SetColored(x, y, '┃', core.ColorGray)
			}
		}
	}
}

func (r *ScreenRenderer) drawPlatform(p core.RectF) {
	r.fillRect(p, PlatformChar, core.ColorBrown)
}

func (r *ScreenRenderer) drawSpike(s sim.SpikeView) {
	ch := SpikeUpChar
	if s.Hanging {
		ch = SpikeDownChar
	}
	r.fillRect(s.RectF, ch, core.ColorBrightRed)
}

func (r *ScreenRenderer) drawMiner(m sim.MinerView) {
	x0, y0 := r.cell(m.X, m.Y)
	x1, y1 := r.cell(m.Right()-1e-6, m.Bottom()-1e-6)
	for y := core.Max(y0, hudRows); y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			ch := MinerBodyChar
			if y == y0 {
				ch = MinerHeadChar
			}
			r.dst.SetColored(x, y, ch, core.ColorOrange)
		}
	}

	// Pickaxe on the facing side, raised then swung down
	px := x1 + 1
	if m.Facing < 0 {
		px = x0 - 1
	}
	pick := '/'
	if m.Facing < 0 {
		pick = '\\'
	}
	py := y0
	if m.Attacking && m.Swing >= 0.5 {
		py = y0 + 1
		pick = '_'
	}
	if py >= hudRows {
		r.dst.SetColored(px, py, pick, core.ColorGray)
	}
}

func (r *ScreenRenderer) drawRock(v *sim.View) {
	rock := v.Rock
	color := core.ColorFromHex(rock.Color)
	if color == core.ColorDefault {
		color = core.ColorGray
	}
	if v.Health.Flashing {
		color = core.ColorBrightRed
	}

	box := core.CircleBox(rock.X, rock.Y, rock.Radius)
	x0, y0 := r.cell(box.X, box.Y)
	x1, y1 := r.cell(box.Right(), box.Bottom())
	for y := core.Max(y0, hudRows); y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			// Sample the cell centre against the circle
			wx := r.camX + (float64(x)+0.5)*r.scaleX
			wy := r.camY + (float64(y-hudRows)+0.5)*r.scaleY
			if math.Hypot(wx-rock.X, wy-rock.Y) <= rock.Radius {
				r.dst.SetColored(x, y, RockChar, color)
			}
		}
	}

	// Cracks rotate with the rock so rolling is visible
	sin, cos := math.Sincos(rock.Rotation)
	for _, d := range rock.Details {
		mx, my := (d.X1+d.X2)/2, (d.Y1+d.Y2)/2
		wx := rock.X + mx*cos - my*sin
		wy := rock.Y + mx*sin + my*cos
		r.plot(wx, wy, RockCrackChar, core.ColorDarkGray)
	}

	// Guarantee the rock is visible even when smaller than a cell
	if x0 == x1 || y0 == y1 {
		r.plot(rock.X, rock.Y, RockChar, color)
	}
}

func (r *ScreenRenderer) drawParticles(v *sim.View, kind sim.ParticleKind) {
	for _, p := range v.Particles {
		if p.Kind != kind {
			continue
		}
		ch := SparkChar
		switch kind {
		case sim.ParticleTrail:
			ch = TrailChar
		case sim.ParticleDebris:
			ch = DebrisChar
		case sim.ParticleCelebration:
			if p.Alpha < 0.3 {
				ch = '.'
			}
		}
		c := core.ColorFromHex(p.Color)
		if c == core.ColorDefault {
			c = core.ColorYellow
		}
		r.plot(p.X, p.Y, ch, c)
	}
}

func (r *ScreenRenderer) drawHUD(v *sim.View) {
	s := v.Stats
	w := r.dst.Width()
	for x := 0; x < w; x++ {
		r.dst.SetColored(x, 0, ' ', core.ColorDefault)
	}

	x := 1
	write := func(text string, c core.Color) {
		for _, ch := range text {
			r.dst.SetColored(x, 0, ch, c)
			x++
		}
	}

	stageColor := core.ColorFromHex(s.StageColor)
	if stageColor == core.ColorDefault {
		stageColor = core.ColorWhite
	}
	write(fmt.Sprintf("Lv %d ", s.Level), core.ColorWhite)
	write(strings.ToUpper(s.Stage), stageColor)
	write("  XP ", core.ColorWhite)
	write(bar(s.XP/float64(core.Max(s.XPToNext, 1)), 10), core.ColorBrightCyan)
	write("  HP ", core.ColorWhite)
	hpColor := core.ColorBrightGreen
	switch {
	case v.Health.Flashing:
		hpColor = core.ColorBrightRed
	case v.Health.Max > 0 && v.Health.Current/v.Health.Max < 0.3:
		hpColor = core.ColorOrange
	}
	write(bar(v.Health.Current/math.Max(v.Health.Max, 1), 10), hpColor)
	write(fmt.Sprintf(" %d/%d", int(math.Ceil(v.Health.Current)), int(v.Health.Max)), hpColor)

	world := fmt.Sprintf("World %d", s.WorldLevel)
	if s.MaxWorld > 0 {
		world = fmt.Sprintf("World %d/%d", s.WorldLevel, s.MaxWorld)
	}
	right := fmt.Sprintf("%s  Score %d ", world, s.Score)
	if rx := w - len(right); rx > x+1 {
		x = rx
		write(right, core.ColorWhite)
	}
}

// bar renders a fill gauge of the given width.
func bar(frac float64, width int) string {
	frac = core.ClampF(frac, 0, 1)
	full := int(math.Round(frac * float64(width)))
	return strings.Repeat(string(BarFullChar), full) + strings.Repeat(string(BarEmptyChar), width-full)
}

func (r *ScreenRenderer) drawDebug(v *sim.View) {
	lines := []string{
		fmt.Sprintf("pos  %.1f, %.1f", v.Rock.X, v.Rock.Y),
		fmt.Sprintf("vel  %.2f, %.2f", v.Rock.VX, v.Rock.VY),
		fmt.Sprintf("r    %.2f  ground %v", v.Rock.Radius, v.Rock.Grounded),
		fmt.Sprintf("xp   %.1f/%d", v.Stats.XP, v.Stats.XPToNext),
		fmt.Sprintf("dt   %.2f  tick %d", v.DT, v.Tick),
		fmt.Sprintf("gen  %.0f .. %.0f", v.Frontier.Left, v.Frontier.Right),
		fmt.Sprintf("ents %d  fx %d", v.Frontier.Entities, len(v.Particles)),
	}
	for i, line := range lines {
		y := hudRows + 1 + i
		for j, ch := range line {
			r.dst.SetColored(1+j, y, ch, core.ColorBrightGreen)
		}
	}
}

// drawMessage draws a message box in the center of the play area.
func (r *ScreenRenderer) drawMessage(title, subtitle string, c core.Color) {
	w := r.dst.Width()
	h := r.dst.Height()

	boxW := core.Min(core.Max(len([]rune(title)), len([]rune(subtitle)))+4, w)
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2
	box := core.NewRect(boxX, boxY, boxW, boxH)

	r.dst.SetPen(c)
	r.dst.DrawRect(box, ' ')
	r.dst.DrawBox(box)
	_, cy := box.Center()
	r.dst.DrawText(boxX+(boxW-len([]rune(title)))/2, cy-1, title)
	r.dst.SetPen(core.ColorWhite)
	r.dst.DrawText(boxX+(boxW-len([]rune(subtitle)))/2, cy+1, subtitle)
	r.dst.SetPen(core.ColorDefault)
}
