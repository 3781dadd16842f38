package config

import "image/color"

// ColorPreset is a named shape colour choice
type ColorPreset struct {
	Label string
	Mode  ColorMode
	Color color.RGBA
}

// ShapePreset is a named set of allowed shape kinds
type ShapePreset struct {
	Label  string
	Polies PolyType
}

// CommandConfig contains the step sizes and presets applied by runtime commands
type CommandConfig struct {
	DropRateStep  float64 // multiplier for faster/slower drops
	MinDropRate   float64
	MaxDropRate   float64
	SizeStep      float64 // multiplier for bigger/smaller shapes
	MinShapeSize  float64
	MaxShapeSize  float64
	FloatGravity  float64
	NormalGravity float64
	HeavyGravity  float64
	ColorPresets  []ColorPreset
	ShapePresets  []ShapePreset
}

// Commands is the global runtime command configuration
var Commands CommandConfig

func init() {
	Commands = CommandConfig{
		DropRateStep:  1.5,
		MinDropRate:   0.1,
		MaxDropRate:   64,
		SizeStep:      1.25,
		MinShapeSize:  8,
		MaxShapeSize:  160,
		FloatGravity:  0.25,
		NormalGravity: 1.0,
		HeavyGravity:  3.0,
		ColorPresets: []ColorPreset{
			{Label: "Rainbow", Mode: ColorRandom, Color: White},
			{Label: "Red", Mode: ColorBase, Color: Red},
			{Label: "Green", Mode: ColorBase, Color: Green},
			{Label: "Blue", Mode: ColorBase, Color: Blue},
			{Label: "Yellow", Mode: ColorBase, Color: Yellow},
		},
		ShapePresets: []ShapePreset{
			{Label: "Everything", Polies: PolyAll},
			{Label: "Triangles", Polies: PolyTriangle},
			{Label: "Squares", Polies: PolySquare},
			{Label: "Stars", Polies: PolyStar | PolyStar7},
			{Label: "Polygons", Polies: PolyTriangle | PolySquare | PolyPentagon | PolyHex},
			{Label: "Circles", Polies: PolyCircle | PolyBubble},
		},
	}
}
