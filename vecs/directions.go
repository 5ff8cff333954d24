package vecs

var directions4 = [4]Vec{
	{X: 1, Y: 0},  // east
	{X: 0, Y: 1},  // south
	{X: -1, Y: 0}, // west
	{X: 0, Y: -1}, // north
}

// Directions4 returns the unit vectors in clockwise order starting east.
// The array is a copy.
func Directions4() [4]Vec {
	return directions4
}
