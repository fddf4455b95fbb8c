package constants

import "image/color"

// Palette
var (
	ColorBackgroundTop    = color.RGBA{20, 160, 200, 255}
	ColorBackgroundBottom = color.RGBA{10, 90, 140, 255}
	ColorPlayer           = color.RGBA{250, 245, 230, 255}
	ColorPlayerOutline    = color.RGBA{80, 80, 80, 255}
	ColorItem             = color.RGBA{250, 210, 70, 255}
	ColorItemCore         = color.RGBA{230, 180, 40, 255}
	ColorHazard           = color.RGBA{250, 120, 60, 255}
	ColorHazardStripe     = color.RGBA{255, 170, 120, 255}
	ColorHUD              = color.RGBA{245, 245, 245, 255}
	ColorShadow           = color.RGBA{0, 0, 0, 255}
	ColorHeart            = color.RGBA{255, 95, 109, 255}
	ColorGold             = color.RGBA{255, 226, 120, 255}
	ColorNose             = color.RGBA{240, 140, 140, 255}
)

// Font Sizes
const (
	// FontSizeSmall is the HUD and hint text size
	FontSizeSmall = 26

	// FontSizeBig is the menu entry and summary text size
	FontSizeBig = 42

	// FontSizeHuge is the title and banner text size
	FontSizeHuge = 54
)
