package engine

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/lixenwraith/mouse-dash/constants"
	"github.com/lixenwraith/mouse-dash/render"
)

const (
	screenW = constants.ScreenWidth
	screenH = constants.ScreenHeight
)

// drawHUD renders the score strip, hearts, and status readouts.
func (g *Game) drawHUD(screen *ebiten.Image) {
	diff := g.run.Difficulty()

	render.DrawText(screen, fmt.Sprintf("Score: %d", g.run.Score), g.fonts.Small, 14, 10, constants.ColorHUD)
	render.DrawText(screen, fmt.Sprintf("Time: %ds", int(g.run.TimeLeft)), g.fonts.Small, 14, 34, constants.ColorHUD)
	render.DrawText(screen, fmt.Sprintf("Lives: %d", g.run.Lives), g.fonts.Small, screenW-120, 10, constants.ColorHUD)
	render.DrawText(screen, fmt.Sprintf("Difficulty: %s", diff.Name), g.fonts.Small, screenW-200, 34, constants.ColorHUD)
	render.DrawText(screen, fmt.Sprintf("High: %d", g.highScore), g.fonts.Small, screenW-200, 58, constants.ColorHUD)
	if g.run.Combo > 1 && g.phase == PhasePlaying {
		render.DrawText(screen, fmt.Sprintf("Combo x%d", g.run.Combo), g.fonts.Small, screenW-200, 82, constants.ColorItem)
	}

	g.drawLivesIcons(screen)

	if g.run.Player.HitCooldown > 0 && g.phase == PhasePlaying {
		render.FillRect(screen, 0, 0, screenW, screenH, render.WithAlpha(constants.ColorHUD, 35.0/255))
	}
}

func (g *Game) drawLivesIcons(screen *ebiten.Image) {
	for i := 0; i < g.run.Lives; i++ {
		x := float64(14 + i*26)
		y := 60.0
		render.FillCircle(screen, x+10, y+10, 10, constants.ColorHeart)
		render.FillCircle(screen, x+10, y+8, 4, constants.ColorHUD)
	}
}

// drawMenu renders the title screen with the difficulty list.
func (g *Game) drawMenu(screen *ebiten.Image) {
	screen.DrawImage(g.bg, nil)

	render.DrawTextCentered(screen, "Mouse Dash!", g.fonts.Huge, screenW/2, 110, constants.ColorHUD)
	render.DrawTextCentered(screen, "Collect cheese, dodge cats, beat the clock.", g.fonts.Small, screenW/2, 170, constants.ColorHUD)
	render.DrawTextCentered(screen, fmt.Sprintf("High Score: %d", g.highScore), g.fonts.Small, screenW/2, 195, constants.ColorHUD)

	for idx, diff := range constants.Difficulties {
		clr := constants.ColorHUD
		if idx == g.difficultyIndex {
			clr = constants.ColorItem
		}
		line := fmt.Sprintf("%d. %s - %d lives, %ds, %d cats",
			idx+1, diff.Name, diff.Lives, int(diff.Time), diff.Hazards)
		render.DrawTextCentered(screen, line, g.fonts.Big, screenW/2, float64(230+idx*50), clr)
	}

	render.DrawTextCentered(screen, "1/2/3: level  Enter/Space: start  Arrows/WASD: move  Q: quit",
		g.fonts.Small, screenW/2, screenH-80, constants.ColorHUD)
}

// dimScene darkens the frozen scene behind pause and game-over overlays.
func dimScene(screen *ebiten.Image) {
	render.FillRect(screen, 0, 0, screenW, screenH, render.WithAlpha(constants.ColorShadow, 140.0/255))
}

func (g *Game) drawPauseOverlay(screen *ebiten.Image) {
	dimScene(screen)
	render.DrawTextCentered(screen, "Paused", g.fonts.Huge, screenW/2, screenH/2-70, constants.ColorHUD)
	render.DrawTextCentered(screen, "P/Esc: resume   R: restart   M: menu   Q: quit",
		g.fonts.Small, screenW/2, screenH/2-10, constants.ColorHUD)
}

func (g *Game) drawGameOverOverlay(screen *ebiten.Image) {
	dimScene(screen)
	render.DrawTextCentered(screen, "Game Over", g.fonts.Huge, screenW/2, screenH/2-90, constants.ColorHUD)
	render.DrawTextCentered(screen, fmt.Sprintf("Score: %d", g.run.Score), g.fonts.Big, screenW/2, screenH/2-30, constants.ColorHUD)
	if g.newHighScore {
		render.DrawTextCentered(screen, "New High Score!", g.fonts.Small, screenW/2, screenH/2+5, constants.ColorItem)
	}
	render.DrawTextCentered(screen, fmt.Sprintf("High Score: %d", g.highScore), g.fonts.Small, screenW/2, screenH/2+40, constants.ColorHUD)
	render.DrawTextCentered(screen, "Enter/Space: restart   R/M: menu   Q: quit",
		g.fonts.Small, screenW/2, screenH/2+75, constants.ColorHUD)
}
