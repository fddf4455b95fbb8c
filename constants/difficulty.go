package constants

// Difficulty describes one selectable game preset.
type Difficulty struct {
	Name           string
	Lives          int
	Time           float64 // run length in seconds
	Hazards        int
	Items          int
	HazardSpeedMin float64 // pixels per second
	HazardSpeedMax float64
}

// Difficulties is the fixed preset table, selected by index on the menu.
var Difficulties = []Difficulty{
	{
		Name:           "Easy",
		Lives:          5,
		Time:           60,
		Hazards:        3,
		Items:          8,
		HazardSpeedMin: 120,
		HazardSpeedMax: 170,
	},
	{
		Name:           "Normal",
		Lives:          4,
		Time:           50,
		Hazards:        4,
		Items:          10,
		HazardSpeedMin: 150,
		HazardSpeedMax: 210,
	},
	{
		Name:           "Hard",
		Lives:          3,
		Time:           40,
		Hazards:        10,
		Items:          12,
		HazardSpeedMin: 190,
		HazardSpeedMax: 260,
	},
}
