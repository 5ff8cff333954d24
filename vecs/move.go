package vecs

// MoveTowards returns target when it is within maxStep, otherwise the point
// exactly maxStep away from v on the segment to target
func (v Vec) MoveTowards(target Vec, maxStep float64) Vec {
	d := target.Sub(v)
	length := d.Length()
	if length == 0 || length <= maxStep {
		return target
	}
	k := maxStep / length
	return Vec{X: v.X + k*d.X, Y: v.Y + k*d.Y}
}

// Rotate90CW maps (x, y) to (y, -x)
func (v Vec) Rotate90CW() Vec {
	return Vec{X: v.Y, Y: -v.X}
}

// Rotate90CCW maps (x, y) to (-y, x)
func (v Vec) Rotate90CCW() Vec {
	return Vec{X: -v.Y, Y: v.X}
}
