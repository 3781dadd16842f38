package config

// PolyType is a bit set of drawable shape kinds
type PolyType uint16

const (
	PolyNone     PolyType = 0
	PolyTriangle PolyType = 1 << 0
	PolySquare   PolyType = 1 << 1
	PolyStar     PolyType = 1 << 2
	PolyPentagon PolyType = 1 << 3
	PolyHex      PolyType = 1 << 4
	PolyStar7    PolyType = 1 << 5
	PolyCircle   PolyType = 1 << 6
	PolyBubble   PolyType = 1 << 7
	PolyAll               = PolyTriangle | PolySquare | PolyStar | PolyPentagon |
		PolyHex | PolyStar7 | PolyCircle | PolyBubble
)

// PolyDef tells how a shape kind is traced: Sides vertices, stepping Skip vertices each time.
// Sides 1 is a filled circle, Sides 0 a bubble (hollow circle).
type PolyDef struct {
	Sides int
	Skip  int
	Name  string
}

// PolyTypes lists every single shape kind in spawn-table order
var PolyTypes = []PolyType{
	PolyTriangle, PolySquare, PolyStar, PolyPentagon,
	PolyHex, PolyStar7, PolyCircle, PolyBubble,
}

// PolyDefs maps each shape kind to its outline definition
var PolyDefs = map[PolyType]PolyDef{
	PolyTriangle: {Sides: 3, Skip: 1, Name: "triangle"},
	PolySquare:   {Sides: 4, Skip: 1, Name: "square"},
	PolyStar:     {Sides: 5, Skip: 2, Name: "star"},
	PolyPentagon: {Sides: 5, Skip: 1, Name: "pentagon"},
	PolyHex:      {Sides: 6, Skip: 1, Name: "hex"},
	PolyStar7:    {Sides: 7, Skip: 3, Name: "star7"},
	PolyCircle:   {Sides: 1, Skip: 1, Name: "circle"},
	PolyBubble:   {Sides: 0, Skip: 1, Name: "bubble"},
}

// Allowed returns the single kinds contained in p, in spawn-table order
func (p PolyType) Allowed() []PolyType {
	var out []PolyType
	for _, t := range PolyTypes {
		if p&t != 0 {
			out = append(out, t)
		}
	}
	return out
}

// IsRound reports whether the kind is drawn as a circle
func (p PolyType) IsRound() bool {
	return p == PolyCircle || p == PolyBubble
}

func (p PolyType) String() string {
	if def, ok := PolyDefs[p]; ok {
		return def.Name
	}
	return "mixed"
}
