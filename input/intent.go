// Package input translates raw key state into semantic game intents.
package input

// Intent discriminates the discrete actions a key press can request.
// Held movement keys are read separately via MoveVector.
type Intent uint8

const (
	IntentNone Intent = iota

	// System-level intents
	IntentQuit   // Q
	IntentEscape // Escape: pause toggle in a run, quit on the menu

	// Run control
	IntentPauseToggle // P
	IntentRestart     // R
	IntentConfirm     // Enter, Space
	IntentMenu        // M

	// Menu navigation
	IntentDifficultyPrev // Up on the menu
	IntentDifficultyNext // Down on the menu
	IntentDifficulty1    // 1
	IntentDifficulty2    // 2
	IntentDifficulty3    // 3
)
