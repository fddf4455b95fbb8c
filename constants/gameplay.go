package constants

// Scoring and Combo Mechanics
const (
	// BasePoints is the score awarded per item before any combo bonus
	BasePoints = 10

	// ComboWindow is the seconds after a pickup during which the next pickup
	// extends the combo chain instead of restarting it
	ComboWindow = 1.25

	// ComboBonusStep is the bonus points added per combo level above one
	ComboBonusStep = 2

	// ComboBonusCap is the maximum combo bonus per pickup
	ComboBonusCap = 14
)

// Hazard Mechanics
const (
	// HazardSize is the square hazard edge length in pixels
	HazardSize = 24.0

	// HazardNudgeDistance is how far a hazard is pushed off the player on contact
	HazardNudgeDistance = 18.0
)

// Item Mechanics
const (
	// ItemFallbackRadius is the item collision radius used when no sprite is loaded
	ItemFallbackRadius = 10.0
)

// Spawn Placement
const (
	// ItemSpawnMargin is the distance items keep from the left/right/bottom edges
	ItemSpawnMargin = 40

	// ItemSpawnTopMargin is the distance items keep from the top edge (below the HUD)
	ItemSpawnTopMargin = 80

	// ItemMinPlayerDistance is the minimum item spawn distance from the player
	ItemMinPlayerDistance = 80.0

	// ItemSpacingPad is the extra gap required between a new item and an existing one
	ItemSpacingPad = 8.0

	// ItemHazardPad is the extra gap required between a new item and a hazard
	ItemHazardPad = 12.0

	// ItemSpawnAttemptsPerCount is the placement attempt budget multiplier for items
	ItemSpawnAttemptsPerCount = 20

	// HazardSpawnMarginX is the distance hazards keep from the left/right edges
	HazardSpawnMarginX = 60

	// HazardSpawnMarginTop is the distance hazards keep from the top edge
	HazardSpawnMarginTop = 100

	// HazardSpawnMarginBottom is the distance hazards keep from the bottom edge
	HazardSpawnMarginBottom = 60

	// HazardMinPlayerDistance is the minimum hazard spawn distance from the player
	HazardMinPlayerDistance = 120.0

	// HazardMinSpacing is the minimum distance between two spawned hazards
	HazardMinSpacing = 60.0

	// HazardSpawnAttemptsPerCount is the placement attempt budget multiplier for hazards
	HazardSpawnAttemptsPerCount = 25
)

// Visual Effects
const (
	// CollectParticleCount is the particles emitted per item pickup
	CollectParticleCount = 12

	// HitParticleCount is the particles emitted per hazard hit
	HitParticleCount = 18

	// FloaterLifetime is the floating text lifetime in seconds
	FloaterLifetime = 1.0

	// FloaterRiseSpeed is the floating text upward drift in pixels per second
	FloaterRiseSpeed = 30.0

	// ShakeDuration is the camera shake duration in seconds after a hit
	ShakeDuration = 0.25

	// ShakeStrength is the maximum camera shake offset in pixels
	ShakeStrength = 10.0
)
