package internal

import (
	"math"
	"math/big"
)

// Orientation and incircle tests in float64. Each test computes a forward error
// bound proportional to the magnitude of its terms (Shewchuk's first-stage
// bounds). Orientation reports "don't know" as collinear. The incircle test
// settles results within its bound exactly, so that both triangles around an
// edge always agree on whether it is legal.

const (
	// Shewchuk's epsilon is half an ulp of 1.
	halfEpsilon = Epsilon / 2
	ccwErrBound = (3 + 16*halfEpsilon) * halfEpsilon
	iccErrBound = (10 + 96*halfEpsilon) * halfEpsilon
)

const (
	Counterclockwise = 1
	Clockwise        = -1
	Collinear        = 0
)

// Twice the signed area of a, b, c. Positive when the points wind
// counterclockwise (with y pointing up), negative when clockwise.
func Orient(ax, ay, bx, by, cx, cy float64) float64 {
	return (ax-cx)*(by-cy) - (ay-cy)*(bx-cx)
}

// Sign of Orient, or Collinear if the determinant is within its error bound.
func Orientation(ax, ay, bx, by, cx, cy float64) int {
	detLeft := (ax - cx) * (by - cy)
	detRight := (ay - cy) * (bx - cx)
	det := detLeft - detRight
	bound := ccwErrBound * (math.Abs(detLeft) + math.Abs(detRight))
	switch {
	case det > bound:
		return Counterclockwise
	case det < -bound:
		return Clockwise
	}
	return Collinear
}

// Lifted incircle determinant. Positive when d is inside the circle through a,
// b, c, provided that a, b, c are counterclockwise.
func InCircle(ax, ay, bx, by, cx, cy, dx, dy float64) float64 {
	det, _ := inCircle(ax, ay, bx, by, cx, cy, dx, dy)
	return det
}

// Whether d is strictly inside the circumcircle of the counterclockwise
// triangle a, b, c. Points exactly on the circle are outside.
func InCircumcircle(ax, ay, bx, by, cx, cy, dx, dy float64) bool {
	det, permanent := inCircle(ax, ay, bx, by, cx, cy, dx, dy)
	bound := iccErrBound * permanent
	switch {
	case det > bound:
		return true
	case det < -bound:
		return false
	}
	return exactInCircle(ax, ay, bx, by, cx, cy, dx, dy) > 0
}

// The precision of big.Float is high enough that products and sums of float64
// values are always exact.
func newBigFloat() *big.Float {
	return new(big.Float).SetPrec(big.MaxPrec)
}

// Sign of the incircle determinant, computed without rounding.
func exactInCircle(ax, ay, bx, by, cx, cy, dx, dy float64) int {
	sub := func(a, b float64) *big.Float {
		return newBigFloat().Sub(newBigFloat().SetFloat64(a), newBigFloat().SetFloat64(b))
	}
	mul := func(a, b *big.Float) *big.Float {
		return newBigFloat().Mul(a, b)
	}
	// a*d - b*c
	cross := func(a, b, c, d *big.Float) *big.Float {
		return newBigFloat().Sub(mul(a, d), mul(b, c))
	}

	adx, ady := sub(ax, dx), sub(ay, dy)
	bdx, bdy := sub(bx, dx), sub(by, dy)
	cdx, cdy := sub(cx, dx), sub(cy, dy)

	alift := newBigFloat().Add(mul(adx, adx), mul(ady, ady))
	blift := newBigFloat().Add(mul(bdx, bdx), mul(bdy, bdy))
	clift := newBigFloat().Add(mul(cdx, cdx), mul(cdy, cdy))

	det := mul(alift, cross(bdx, bdy, cdx, cdy))
	det.Add(det, mul(blift, cross(cdx, cdy, adx, ady)))
	det.Add(det, mul(clift, cross(adx, ady, bdx, bdy)))
	return det.Sign()
}

func inCircle(ax, ay, bx, by, cx, cy, dx, dy float64) (det, permanent float64) {
	adx, ady := ax-dx, ay-dy
	bdx, bdy := bx-dx, by-dy
	cdx, cdy := cx-dx, cy-dy

	bdxcdy, cdxbdy := bdx*cdy, cdx*bdy
	cdxady, adxcdy := cdx*ady, adx*cdy
	adxbdy, bdxady := adx*bdy, bdx*ady

	alift := adx*adx + ady*ady
	blift := bdx*bdx + bdy*bdy
	clift := cdx*cdx + cdy*cdy

	det = alift*(bdxcdy-cdxbdy) + blift*(cdxady-adxcdy) + clift*(adxbdy-bdxady)
	permanent = (math.Abs(bdxcdy)+math.Abs(cdxbdy))*alift +
		(math.Abs(cdxady)+math.Abs(adxcdy))*blift +
		(math.Abs(adxbdy)+math.Abs(bdxady))*clift
	return det, permanent
}

// Squared circumradius of a, b, c. Infinite (or NaN) when they are collinear,
// so callers should exclude collinear triples first.
func Circumradius(ax, ay, bx, by, cx, cy float64) float64 {
	x, y := circumcenterOffset(ax, ay, bx, by, cx, cy)
	return x*x + y*y
}

func Circumcenter(ax, ay, bx, by, cx, cy float64) (x, y float64) {
	ox, oy := circumcenterOffset(ax, ay, bx, by, cx, cy)
	return ax + ox, ay + oy
}

// Circumcenter relative to a
func circumcenterOffset(ax, ay, bx, by, cx, cy float64) (x, y float64) {
	dx := bx - ax
	dy := by - ay
	ex := cx - ax
	ey := cy - ay

	bl := dx*dx + dy*dy
	cl := ex*ex + ey*ey
	d := 0.5 / (dx*ey - dy*ex)

	return (ey*bl - dy*cl) * d, (dx*cl - ex*bl) * d
}

// A value in [0, 1) that increases monotonically with the angle of (dx, dy),
// without any trigonometry. The zero vector maps to 0.
func PseudoAngle(dx, dy float64) float64 {
	denominator := math.Abs(dx) + math.Abs(dy)
	if denominator == 0 {
		return 0
	}
	p := dx / denominator
	var result float64
	if dy > 0 {
		result = 3 - p
	} else {
		result = 1 + p
	}
	// Keep the range half-open so callers can scale it into buckets
	return math.Mod(result/4, 1)
}
