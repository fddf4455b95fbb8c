// Package constants holds the fixed tuning values for Mouse Dash.
package constants

// Screen Geometry
const (
	// ScreenWidth is the playfield width in pixels
	ScreenWidth = 900

	// ScreenHeight is the playfield height in pixels
	ScreenHeight = 600

	// HUDMargin is the height of the HUD strip reserved at the top of the playfield
	HUDMargin = 40
)

// Frame Timing
const (
	// TicksPerSecond is the fixed simulation rate
	TicksPerSecond = 60

	// DeltaTime is the fixed per-tick timestep in seconds
	DeltaTime = 1.0 / TicksPerSecond
)

// Player Tuning
const (
	// PlayerSpeed is the player movement speed in pixels per second
	PlayerSpeed = 280.0

	// PlayerFallbackRadius is the collision radius used when no sprite is loaded
	PlayerFallbackRadius = 18.0

	// InvulnTime is the hit cooldown in seconds after taking a hit
	InvulnTime = 1.0

	// TrailLength is the number of trailing positions kept for the visual trail
	TrailLength = 12

	// AnimFrameTime is the seconds per sprite animation frame while moving
	AnimFrameTime = 0.08
)

// Sprite Layout
const (
	// SpriteTile is the source tile size of the player sprite sheet
	SpriteTile = 16

	// PlayerSpriteScale is the render scale factor for player frames
	PlayerSpriteScale = 3

	// ItemSpriteScale is the render scale factor for the item sprite
	ItemSpriteScale = 3
)
