package engine

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/mouse-dash/asset"
	"github.com/lixenwraith/mouse-dash/audio"
	"github.com/lixenwraith/mouse-dash/constants"
	"github.com/lixenwraith/mouse-dash/effects"
	"github.com/lixenwraith/mouse-dash/game"
	"github.com/lixenwraith/mouse-dash/input"
	"github.com/lixenwraith/mouse-dash/score"
	"github.com/lixenwraith/mouse-dash/vmath"
)

// newTestGame wires a game without fonts or a background image so the
// phase machine can run headless. Draw is never called here.
func newTestGame(t *testing.T) *Game {
	t.Helper()
	rng := rand.New(rand.NewSource(4242))
	store := score.NewStore(t.TempDir())
	g := &Game{
		phase:     PhaseMenu,
		effects:   effects.NewSystem(rng),
		assets:    &asset.Assets{},
		store:     store,
		highScore: store.Load(),
		audio:     audio.NewEngine(audio.DefaultAudioConfig()),
		rng:       rng,
	}
	g.resetRun()
	return g
}

func TestMenuConfirmStartsRun(t *testing.T) {
	g := newTestGame(t)
	g.handleIntent(input.IntentConfirm)
	assert.Equal(t, PhasePlaying, g.phase)
	assert.Equal(t, 0, g.run.Score)
	assert.Equal(t, constants.Difficulties[0].Lives, g.run.Lives)
}

func TestMenuDifficultyCycleWraps(t *testing.T) {
	g := newTestGame(t)
	n := len(constants.Difficulties)

	g.handleIntent(input.IntentDifficultyPrev)
	assert.Equal(t, n-1, g.difficultyIndex, "cycling up from the first entry wraps to the last")
	assert.Equal(t, PhaseMenu, g.phase, "cycling does not start a run")

	g.handleIntent(input.IntentDifficultyNext)
	assert.Equal(t, 0, g.difficultyIndex)
}

func TestMenuNumberSelectStartsChosenDifficulty(t *testing.T) {
	g := newTestGame(t)
	g.handleIntent(input.IntentDifficulty3)
	assert.Equal(t, PhasePlaying, g.phase)
	assert.Equal(t, 2, g.difficultyIndex)
	assert.Equal(t, constants.Difficulties[2].Hazards, len(g.run.Hazards))
}

func TestPauseToggle(t *testing.T) {
	g := newTestGame(t)
	g.handleIntent(input.IntentConfirm)

	g.handleIntent(input.IntentPauseToggle)
	assert.Equal(t, PhasePaused, g.phase)

	g.handleIntent(input.IntentEscape)
	assert.Equal(t, PhasePlaying, g.phase, "escape resumes like the pause key")
}

func TestRestartResetsRunSameDifficulty(t *testing.T) {
	g := newTestGame(t)
	g.difficultyIndex = 1
	g.handleIntent(input.IntentConfirm)
	g.run.Score = 999

	g.handleIntent(input.IntentRestart)
	assert.Equal(t, PhasePlaying, g.phase)
	assert.Equal(t, 0, g.run.Score)
	assert.Equal(t, 1, g.difficultyIndex)
}

func TestPausedMenuAbandonsRun(t *testing.T) {
	g := newTestGame(t)
	g.handleIntent(input.IntentConfirm)
	g.handleIntent(input.IntentPauseToggle)

	g.handleIntent(input.IntentMenu)
	assert.Equal(t, PhaseMenu, g.phase)
}

func TestQuitFromAnyPhase(t *testing.T) {
	g := newTestGame(t)
	for _, phase := range []Phase{PhaseMenu, PhasePlaying, PhasePaused, PhaseGameOver} {
		g.phase = phase
		assert.True(t, g.handleIntent(input.IntentQuit), "quit must terminate from %s", phase)
	}
}

func TestEscapeQuitsOnlyOnMenu(t *testing.T) {
	g := newTestGame(t)
	assert.True(t, g.handleIntent(input.IntentEscape))

	g.phase = PhasePlaying
	assert.False(t, g.handleIntent(input.IntentEscape))
	assert.Equal(t, PhasePaused, g.phase)
}

func TestGameOverPersistsNewHighScore(t *testing.T) {
	g := newTestGame(t)
	g.handleIntent(input.IntentConfirm)
	g.run.Score = 150

	g.handleEvent(game.Event{Kind: game.EventGameOver})

	assert.Equal(t, PhaseGameOver, g.phase)
	assert.True(t, g.newHighScore)
	assert.Equal(t, 150, g.highScore)
	assert.Equal(t, 150, g.store.Load(), "high score persisted at game over")
}

func TestGameOverKeepsOldHighScore(t *testing.T) {
	g := newTestGame(t)
	g.store.Save(500)
	g.highScore = 500
	g.handleIntent(input.IntentConfirm)
	g.run.Score = 120

	g.handleEvent(game.Event{Kind: game.EventGameOver})

	assert.False(t, g.newHighScore)
	assert.Equal(t, 500, g.highScore)
	assert.Equal(t, 500, g.store.Load())
}

func TestGameOverConfirmRestartsSameDifficulty(t *testing.T) {
	g := newTestGame(t)
	g.difficultyIndex = 2
	g.handleIntent(input.IntentConfirm)
	g.handleEvent(game.Event{Kind: game.EventGameOver})
	require.Equal(t, PhaseGameOver, g.phase)

	g.handleIntent(input.IntentConfirm)
	assert.Equal(t, PhasePlaying, g.phase)
	assert.Equal(t, 2, g.difficultyIndex)
	assert.False(t, g.run.Over)
}

func TestGameOverRestartOrMenuReturnsToMenu(t *testing.T) {
	for _, intent := range []input.Intent{input.IntentRestart, input.IntentMenu} {
		g := newTestGame(t)
		g.handleIntent(input.IntentConfirm)
		g.handleEvent(game.Event{Kind: game.EventGameOver})

		g.handleIntent(intent)
		assert.Equal(t, PhaseMenu, g.phase)
	}
}

func TestPickupEventEmitsEffects(t *testing.T) {
	g := newTestGame(t)
	g.handleIntent(input.IntentConfirm)

	g.handleEvent(game.Event{
		Kind:   game.EventPickup,
		Pos:    vmath.Vec2{X: 100, Y: 100},
		Points: 12,
		Combo:  2,
	})

	assert.Equal(t, constants.CollectParticleCount, len(g.effects.Particles))
	assert.Equal(t, 2, len(g.effects.Floaters))
}

func TestHitEventStartsShake(t *testing.T) {
	g := newTestGame(t)
	g.handleIntent(input.IntentConfirm)

	g.handleEvent(game.Event{Kind: game.EventHit, Pos: vmath.Vec2{X: 50, Y: 50}})

	assert.Equal(t, constants.HitParticleCount, len(g.effects.Particles))
	assert.True(t, g.effects.Shaking())
}

func TestStartRunClearsEffects(t *testing.T) {
	g := newTestGame(t)
	g.handleIntent(input.IntentConfirm)
	g.handleEvent(game.Event{Kind: game.EventHit, Pos: vmath.Vec2{}})
	require.True(t, g.effects.Shaking())

	g.handleIntent(input.IntentRestart)
	assert.False(t, g.effects.Shaking())
	assert.Empty(t, g.effects.Particles)
}

func TestSelectDifficultyClampsOutOfRange(t *testing.T) {
	g := newTestGame(t)
	g.selectDifficulty(99)
	assert.Equal(t, len(constants.Difficulties)-1, g.difficultyIndex)

	g.phase = PhaseMenu
	g.selectDifficulty(-3)
	assert.Equal(t, 0, g.difficultyIndex)
}

func TestPhaseStrings(t *testing.T) {
	assert.Equal(t, "menu", PhaseMenu.String())
	assert.Equal(t, "playing", PhasePlaying.String())
	assert.Equal(t, "paused", PhasePaused.String())
	assert.Equal(t, "game_over", PhaseGameOver.String())
}
