package testcommon

import "math"

// Coord is an (x, y) pair used to drive property style tests.
type Coord struct {
	X int
	Y int
}

// SampleCoords covers the origin, each axis, every quadrant and the int
// extremes.
func SampleCoords() []Coord {
	return []Coord{
		{0, 0},
		{0, 5},
		{5, 0},
		{-3, 4},
		{3, -4},
		{-7, -9},
		{15, 25},
		{1, 1},
		{math.MaxInt32, math.MinInt32},
		{math.MaxInt, math.MinInt},
	}
}

// SmallCoords excludes the extremes, for tests where arithmetic must not
// overflow.
func SmallCoords() []Coord {
	all := SampleCoords()
	return all[:len(all)-2]
}

// NonIntegers are dynamic values that must never be accepted as a coordinate.
func NonIntegers() []any {
	return []any{
		1.5,
		1.0,
		float32(2),
		"1",
		true,
		nil,
		[]int{1},
		struct{}{},
	}
}
