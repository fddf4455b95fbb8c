// Package engine ties the simulation, effects, input, rendering, and
// persistence together behind the ebiten game loop.
package engine

import (
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/lixenwraith/mouse-dash/asset"
	"github.com/lixenwraith/mouse-dash/audio"
	"github.com/lixenwraith/mouse-dash/constants"
	"github.com/lixenwraith/mouse-dash/effects"
	"github.com/lixenwraith/mouse-dash/game"
	"github.com/lixenwraith/mouse-dash/input"
	"github.com/lixenwraith/mouse-dash/render"
	"github.com/lixenwraith/mouse-dash/score"
)

// Game owns the full game state and implements ebiten.Game. One instance
// drives one window for the lifetime of the process.
type Game struct {
	phase           Phase
	difficultyIndex int

	run     *game.Run
	effects *effects.System

	assets *asset.Assets
	fonts  *render.Fonts
	bg     *ebiten.Image

	store        *score.Store
	highScore    int
	newHighScore bool

	audio *audio.Engine
	rng   *rand.Rand
}

// New creates a fully wired game. baseDir is where assets are searched and
// the high score is persisted.
func New(baseDir string, audioEngine *audio.Engine) (*Game, error) {
	fonts, err := render.LoadFonts()
	if err != nil {
		return nil, err
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	store := score.NewStore(baseDir)

	g := &Game{
		phase:     PhaseMenu,
		effects:   effects.NewSystem(rng),
		assets:    asset.Load(baseDir),
		fonts:     fonts,
		bg:        render.BuildBackground(),
		store:     store,
		highScore: store.Load(),
		audio:     audioEngine,
		rng:       rng,
	}
	g.resetRun()
	return g, nil
}

// resetRun builds a fresh run for the current difficulty without leaving
// the menu. Used at startup and when abandoning a run so the menu backdrop
// always has a populated field behind it.
func (g *Game) resetRun() {
	g.run = g.newRun()
	g.effects.Clear()
	g.newHighScore = false
}

func (g *Game) newRun() *game.Run {
	r := game.NewRun(g.difficultyIndex, g.assets.PlayerRadius(), g.assets.ItemRadius(), g.rng)
	r.Player.FrameCount = len(g.assets.MouseFrames)
	return r
}

// startRun begins playing a fresh run at the current difficulty.
func (g *Game) startRun() {
	g.resetRun()
	g.phase = PhasePlaying
}

// Update advances the game by one fixed tick.
func (g *Game) Update() error {
	for _, intent := range input.Intents() {
		if quit := g.handleIntent(intent); quit {
			return ebiten.Termination
		}
	}

	// Effects animate in every phase so pause and death visuals play out.
	g.effects.Update(constants.DeltaTime)

	if g.phase != PhasePlaying {
		return nil
	}

	events := g.run.Step(input.MoveVector(), constants.DeltaTime)
	for _, ev := range events {
		g.handleEvent(ev)
	}
	return nil
}

// handleIntent applies one discrete input to the phase machine. It returns
// true when the process should terminate.
func (g *Game) handleIntent(intent input.Intent) bool {
	if intent == input.IntentQuit {
		return true
	}

	switch g.phase {
	case PhaseMenu:
		switch intent {
		case input.IntentEscape:
			return true
		case input.IntentConfirm:
			g.startRun()
		case input.IntentDifficultyPrev:
			g.cycleDifficulty(-1)
		case input.IntentDifficultyNext:
			g.cycleDifficulty(+1)
		case input.IntentDifficulty1:
			g.selectDifficulty(0)
		case input.IntentDifficulty2:
			g.selectDifficulty(1)
		case input.IntentDifficulty3:
			g.selectDifficulty(2)
		}

	case PhasePlaying:
		switch intent {
		case input.IntentPauseToggle, input.IntentEscape:
			g.phase = PhasePaused
		case input.IntentRestart:
			g.startRun()
		}

	case PhasePaused:
		switch intent {
		case input.IntentPauseToggle, input.IntentEscape:
			g.phase = PhasePlaying
		case input.IntentRestart:
			g.startRun()
		case input.IntentMenu:
			g.phase = PhaseMenu
		}

	case PhaseGameOver:
		switch intent {
		case input.IntentConfirm:
			g.startRun()
		case input.IntentRestart, input.IntentMenu:
			g.phase = PhaseMenu
		}
	}
	return false
}

// handleEvent reacts to one simulation event with effects, sound, and, for
// game over, the high-score comparison and persist.
func (g *Game) handleEvent(ev game.Event) {
	switch ev.Kind {
	case game.EventPickup:
		g.effects.EmitCollect(ev.Pos, ev.Points, ev.Combo)
		g.audio.Play(audio.SoundPickup)
		if ev.Combo >= 2 {
			g.audio.PlayCombo(audio.SoundCombo, ev.Combo)
		}
	case game.EventHit:
		g.effects.EmitHit(ev.Pos)
		g.audio.Play(audio.SoundHit)
	case game.EventGameOver:
		g.enterGameOver()
	}
}

func (g *Game) enterGameOver() {
	g.phase = PhaseGameOver
	if g.run.Score > g.highScore {
		g.highScore = g.run.Score
		g.newHighScore = true
		g.store.Save(g.highScore)
	} else {
		g.newHighScore = false
	}
	g.audio.Play(audio.SoundGameOver)
}

// cycleDifficulty moves the menu selection, wrapping at both ends.
func (g *Game) cycleDifficulty(delta int) {
	n := len(constants.Difficulties)
	g.difficultyIndex = (g.difficultyIndex + delta + n) % n
}

// selectDifficulty picks a preset directly and starts; out-of-range
// indices are clamped rather than trusted.
func (g *Game) selectDifficulty(index int) {
	if index < 0 {
		index = 0
	}
	if index >= len(constants.Difficulties) {
		index = len(constants.Difficulties) - 1
	}
	g.difficultyIndex = index
	g.startRun()
}

// Layout reports the fixed logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return constants.ScreenWidth, constants.ScreenHeight
}
