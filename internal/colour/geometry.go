package colour

import "math"

// XYToPolar converts cartesian coordinates to a radius and an angle in
// radians in (-π, π].
func XYToPolar(x, y float64) (r, phi float64) {
	r = math.Sqrt(x*x + y*y)
	phi = math.Atan2(y, x)
	return r, phi
}

// PolarToXY converts a radius and an angle in radians to cartesian coordinates.
func PolarToXY(r, phi float64) (x, y float64) {
	return r * math.Cos(phi), r * math.Sin(phi)
}

// RadToDeg maps an angle in (-π, π] onto (0, 360]. This is not rad*180/π:
// angle zero lands on 180° so that hue zero sits on the left of the wheel.
func RadToDeg(rad float64) float64 {
	return ((rad + math.Pi) / (2 * math.Pi)) * 360
}

// DegToRad converts degrees to radians.
func DegToRad(deg float64) float64 {
	return deg * (math.Pi / 180)
}

// HSVToXY returns the wheel position of an HSV colour with saturation as a
// fraction. The value channel has no position on the wheel and is ignored.
func HSVToXY(hue, saturation, value, radius float64) Point {
	adjustedHue := hue - 180
	x, y := PolarToXY(radius*saturation, DegToRad(adjustedHue))
	return Point{X: x + radius, Y: y + radius}
}

// XYToRGB returns the fully bright colour under a wheel position.
func XYToRGB(x, y, radius float64) RGB {
	c := WheelPosition(Point{X: x, Y: y}, radius)
	return HSVToRGB(c.H, c.S, c.V)
}

// WheelPosition returns the HSV colour (fractional saturation, value 1) at
// a wheel position.
func WheelPosition(p Point, radius float64) HSV {
	r, phi := XYToPolar(p.X-radius, p.Y-radius)
	return HSV{
		H: RadToDeg(phi),
		S: r / radius,
		V: 1.0,
	}
}

// ClampToWheel moves a dragged position back inside the wheel, keeping its
// angle and capping its distance from the centre at radius.
func ClampToWheel(p Point, radius float64) Point {
	r, phi := XYToPolar(p.X-radius, p.Y-radius)
	r = math.Min(r, radius)
	x, y := PolarToXY(r, phi)
	return Point{X: x + radius, Y: y + radius}
}
