package gamemath

import "math"

// PolygonVertices traces a regular polygon (skip 1) or star polygon (skip > 1) of radius
// size around (cx, cy), starting at angle theta. The returned outline is closed: it has
// sides+1 points with the last equal to the first. Fewer than 3 sides yields nil.
func PolygonVertices(sides, skip int, size, theta, cx, cy float64) [][2]float64 {
	if sides < 3 {
		return nil
	}
	if skip < 1 {
		skip = 1
	}

	step := 2 * math.Pi * float64(skip) / float64(sides)
	points := make([][2]float64, 0, sides+1)
	for i := 0; i <= sides; i++ {
		points = append(points, [2]float64{
			math.Cos(theta)*size + cx,
			math.Sin(theta)*size + cy,
		})
		theta += step
	}
	return points
}
