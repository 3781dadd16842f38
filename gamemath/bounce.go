package gamemath

import "math"

// Body is the moving side of a bounce: a circle of radius Size at (X,Y) with velocity (VX,VY)
type Body struct {
	X, Y   float64
	VX, VY float64
	Size   float64
}

// Contact is the limb side of a bounce: the touched point, the limb thickness and the
// limb velocity at that point, all in per-tick units.
type Contact struct {
	X, Y   float64
	Radius float64
	VX, VY float64
}

const bounceEpsilon = 0.000001

// BounceOff pushes b out to touching distance from c and reflects the normal component of
// b's velocity relative to the limb. A body already separating keeps its velocity.
func BounceOff(b Body, c Contact) Body {
	dist := c.Radius + b.Size

	xdif := c.X - b.X
	ydif := c.Y - b.Y
	d := math.Sqrt(xdif*xdif + ydif*ydif)

	// unit normal from body to contact; straight down when the centres coincide
	nx, ny := 0.0, 1.0
	if d > bounceEpsilon {
		nx, ny = xdif/d, ydif/d
	}

	out := b
	out.X = c.X - nx*dist
	out.Y = c.Y - ny*dist

	rvx := b.VX - c.VX
	rvy := b.VY - c.VY
	if math.Hypot(rvx, rvy) <= bounceEpsilon {
		return out
	}

	// speed toward the limb along the normal
	power := rvx*nx + rvy*ny
	if power <= 0 {
		return out
	}

	out.VX -= 2 * nx * power
	out.VY -= 2 * ny * power
	return out
}

// ReflectX mirrors a horizontal velocity off a side wall and nudges the position by the
// reflected velocity. It is not an exact collision-time reflection.
func ReflectX(x, vx float64) (float64, float64) {
	vx = -vx
	return x + vx, vx
}
