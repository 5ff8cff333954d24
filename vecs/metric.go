package vecs

import "math"

func (v Vec) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

func (v Vec) LengthSquared() float64 {
	return v.X*v.X + v.Y*v.Y
}

func (v Vec) Dist(b Vec) float64 {
	return b.Sub(v).Length()
}

// SquaredDist orders points by distance without a square root
func (v Vec) SquaredDist(b Vec) float64 {
	dx := v.X - b.X
	dy := v.Y - b.Y
	return dx*dx + dy*dy
}

func (v Vec) ManhattanDist(b Vec) float64 {
	return math.Abs(v.X-b.X) + math.Abs(v.Y-b.Y)
}

func (v Vec) Dot(b Vec) float64 {
	return v.X*b.X + v.Y*b.Y
}

// Cross returns the z component of the 3D cross product
func (v Vec) Cross(b Vec) float64 {
	return v.X*b.Y - b.X*v.Y
}

// Angle from the positive x axis, in (-Pi, Pi]
func (v Vec) Angle() float64 {
	a := math.Atan2(v.Y, v.X)
	if a == -math.Pi {
		// atan2 yields -Pi for a negative zero y
		return math.Pi
	}
	return a
}
