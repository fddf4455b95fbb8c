package engine

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/lixenwraith/mouse-dash/constants"
	"github.com/lixenwraith/mouse-dash/game"
	"github.com/lixenwraith/mouse-dash/render"
	"github.com/lixenwraith/mouse-dash/vmath"
)

// Draw renders the current phase.
func (g *Game) Draw(screen *ebiten.Image) {
	switch g.phase {
	case PhaseMenu:
		g.drawMenu(screen)
	case PhasePlaying:
		g.drawScene(screen)
		g.drawHUD(screen)
	case PhasePaused:
		g.drawScene(screen)
		g.drawHUD(screen)
		g.drawPauseOverlay(screen)
	case PhaseGameOver:
		g.drawScene(screen)
		g.drawHUD(screen)
		g.drawGameOverOverlay(screen)
	}
}

// drawScene renders the playfield with the camera shake offset applied to
// everything except the HUD.
func (g *Game) drawScene(screen *ebiten.Image) {
	screen.DrawImage(g.bg, nil)
	offset := g.effects.ShakeOffset()

	for _, item := range g.run.Items {
		g.drawItem(screen, item, offset)
	}
	for _, h := range g.run.Hazards {
		g.drawHazard(screen, h, offset)
	}
	g.drawPlayer(screen, offset)

	for i := range g.effects.Particles {
		p := &g.effects.Particles[i]
		render.FillCircle(screen, p.Pos.X+offset.X, p.Pos.Y+offset.Y, p.Size,
			render.WithAlpha(p.Color, p.Alpha()))
	}
	for i := range g.effects.Floaters {
		f := &g.effects.Floaters[i]
		render.DrawTextCenteredAlpha(screen, f.Text, g.fonts.Small,
			f.Pos.X+offset.X, f.Pos.Y+offset.Y, f.Color, f.Alpha())
	}
}

func (g *Game) drawItem(screen *ebiten.Image, item *game.Item, offset vmath.Vec2) {
	bob := math.Sin(g.run.Elapsed*4+item.Wobble) * 2
	cx := item.Pos.X + offset.X
	cy := item.Pos.Y + offset.Y + bob

	if g.assets.Cheese != nil {
		angle := math.Sin(g.run.Elapsed*4+item.Wobble) * 10 * math.Pi / 180
		drawSprite(screen, g.assets.Cheese, cx+2, cy+3, constants.ItemSpriteScale, angle, false, shadowAlpha)
		drawSprite(screen, g.assets.Cheese, cx, cy, constants.ItemSpriteScale, angle, false, 1)
		return
	}

	render.FillCircle(screen, cx+2, cy+2, item.Radius, constants.ColorShadow)
	render.FillCircle(screen, cx, cy, item.Radius, constants.ColorItem)
	render.FillCircle(screen, cx, cy, item.Radius/2, constants.ColorItemCore)
	render.FillTriangle(screen,
		cx, cy-item.Radius+2,
		cx+6, cy+3,
		cx-6, cy+3,
		render.WithAlpha(constants.ColorHUD, 0.47))
}

func (g *Game) drawHazard(screen *ebiten.Image, h *game.Hazard, offset vmath.Vec2) {
	cx := h.Pos.X + offset.X
	cy := h.Pos.Y + offset.Y
	x := cx - h.Size/2
	y := cy - h.Size/2

	render.FillRoundedRect(screen, x+3, y+4, h.Size, h.Size, 6, constants.ColorShadow)
	render.FillRoundedRect(screen, x, y, h.Size, h.Size, 6, constants.ColorHazard)

	// Face
	render.FillCircle(screen, cx-6, cy-3, 4, constants.ColorPlayerOutline)
	render.FillCircle(screen, cx+6, cy-3, 4, constants.ColorPlayerOutline)
	render.FillRect(screen, cx-6, cy+5, 12, 3, constants.ColorPlayerOutline)

	// Stripes for movement flair
	render.StrokeLine(screen, x+4, y+6, x+10, y+16, 3, constants.ColorHazardStripe)
	render.StrokeLine(screen, x+h.Size-4, y+6, x+h.Size-10, y+16, 3, constants.ColorHazardStripe)
}

// shadowAlpha is the drop-shadow opacity; the negative sign selects the
// silhouette path in drawSprite.
const shadowAlpha = -0.55

func (g *Game) drawPlayer(screen *ebiten.Image, offset vmath.Vec2) {
	p := g.run.Player
	cx := p.Pos.X + offset.X
	cy := p.Pos.Y + offset.Y

	if len(g.assets.MouseFrames) > 0 {
		frame := g.assets.MouseFrames[p.AnimIndex%len(g.assets.MouseFrames)]
		facingLeft := p.LastMove.X < 0

		alpha := 1.0
		if p.HitCooldown > 0 {
			// Flicker between dim and near-opaque while invulnerable.
			if int(p.HitCooldown*12)%2 == 0 {
				alpha = 110.0 / 255
			} else {
				alpha = 220.0 / 255
			}
		}

		drawSprite(screen, frame, cx+3, cy+4, constants.PlayerSpriteScale, 0, facingLeft, shadowAlpha)
		drawSprite(screen, frame, cx, cy, constants.PlayerSpriteScale, 0, facingLeft, alpha)
		return
	}

	// Procedural mouse
	render.FillCircle(screen, cx+3, cy+4, p.Radius+2, constants.ColorShadow)

	// Fading trail, oldest first
	for idx, tpos := range p.Trail {
		alpha := 120.0 / 255 * float64(idx) / float64(len(p.Trail))
		if alpha <= 0 {
			continue
		}
		render.FillCircle(screen, tpos.X+offset.X, tpos.Y+offset.Y, p.Radius-4,
			render.WithAlpha(constants.ColorPlayer, alpha))
	}

	render.FillCircle(screen, cx, cy, p.Radius, constants.ColorPlayer)
	// Ears
	render.FillCircle(screen, cx-8, cy-10, p.Radius/2, constants.ColorPlayer)
	render.FillCircle(screen, cx+8, cy-10, p.Radius/2, constants.ColorPlayer)
	// Eyes follow the most recent trail direction
	var eye vmath.Vec2
	if len(p.Trail) >= 2 {
		eye = p.Trail[len(p.Trail)-1].Sub(p.Trail[len(p.Trail)-2])
		if !eye.IsZero() {
			eye = eye.Normalize().Scale(2)
		}
	}
	render.FillCircle(screen, cx-5+eye.X, cy-3+eye.Y, 3, constants.ColorPlayerOutline)
	render.FillCircle(screen, cx+5+eye.X, cy-3+eye.Y, 3, constants.ColorPlayerOutline)
	// Nose
	render.FillCircle(screen, cx, cy+8, 3, constants.ColorNose)
	// Whiskers
	render.StrokeLine(screen, cx-3, cy+6, cx-12, cy+4, 2, constants.ColorPlayerOutline)
	render.StrokeLine(screen, cx+3, cy+6, cx+12, cy+4, 2, constants.ColorPlayerOutline)
	// Tail
	render.StrokeLine(screen, cx, cy+10, cx, cy+24, 3, constants.ColorPlayerOutline)
	// Outline
	render.StrokeCircle(screen, cx, cy, p.Radius, 2, constants.ColorPlayerOutline)
}

// drawSprite blits img centered at (cx, cy) with uniform scale, rotation,
// and optional horizontal mirroring. A negative alpha renders the sprite as
// a translucent black silhouette for drop shadows.
func drawSprite(screen, img *ebiten.Image, cx, cy, scale, angle float64, flip bool, alpha float64) {
	w := float64(img.Bounds().Dx())
	h := float64(img.Bounds().Dy())

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-w/2, -h/2)
	if flip {
		op.GeoM.Scale(-1, 1)
	}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Rotate(angle)
	op.GeoM.Translate(cx, cy)

	if alpha < 0 {
		op.ColorScale.Scale(0, 0, 0, float32(-alpha))
	} else if alpha < 1 {
		op.ColorScale.ScaleAlpha(float32(alpha))
	}
	screen.DrawImage(img, op)
}
