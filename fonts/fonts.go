package fonts

import (
	"fmt"
	"math"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

// Faces are cached per whole point size; flying texts grow every tick and would otherwise
// parse a new face each frame.
var (
	regular *truetype.Font
	faces   = map[int]font.Face{}
)

// Load parses the bundled Go Regular font
func Load() error {
	f, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return fmt.Errorf("parse go regular: %w", err)
	}
	regular = f
	return nil
}

// Face returns the regular face at size points, rounded to a whole size
func Face(size float64) font.Face {
	if regular == nil {
		panic("fonts not loaded")
	}
	pt := int(math.Max(1, math.Round(size)))
	if f, ok := faces[pt]; ok {
		return f
	}
	f := truetype.NewFace(regular, &truetype.Options{Size: float64(pt)})
	faces[pt] = f
	return f
}
