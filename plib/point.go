// Package plib provides Point, an immutable 2D integer coordinate.
package plib

import (
	"math"
	"reflect"
	"strconv"

	"golang.org/x/exp/constraints"
)

var (
	Center = Point{}
)

// Point is a location on an integer grid. Points are values: every operation
// returns a new Point and no method modifies its receiver, so Points can be
// shared between goroutines freely.
type Point struct {
	x int
	y int
}

func New(x int, y int) Point {
	return Point{x: x, y: y}
}

// NewPoint builds a Point from any integer type. It fails with TypeKind if a
// coordinate does not fit in an int.
func NewPoint[T constraints.Integer](x T, y T) (Point, error) {
	xi, ok := fitInt(x)
	if !ok {
		return Point{}, &Error{Kind: TypeKind, Op: "new", Arg: "x", Type: typeName(x)}
	}
	yi, ok := fitInt(y)
	if !ok {
		return Point{}, &Error{Kind: TypeKind, Op: "new", Arg: "y", Type: typeName(y)}
	}
	return Point{x: xi, y: yi}, nil
}

// FromValues builds a Point from dynamically typed coordinates. Only integer
// kinds are accepted; floats are rejected even when integral.
func FromValues(x any, y any) (Point, error) {
	xi, ok := intValue(x)
	if !ok {
		return Point{}, &Error{Kind: TypeKind, Op: "new", Arg: "x", Type: typeName(x)}
	}
	yi, ok := intValue(y)
	if !ok {
		return Point{}, &Error{Kind: TypeKind, Op: "new", Arg: "y", Type: typeName(y)}
	}
	return Point{x: xi, y: yi}, nil
}

func fitInt[T constraints.Integer](v T) (int, bool) {
	i := int(v)
	if T(i) != v || (i < 0) != (v < 0) {
		return 0, false
	}
	return i, true
}

func intValue(v any) (int, bool) {
	if v == nil {
		return 0, false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n := rv.Int()
		if n < math.MinInt || n > math.MaxInt {
			return 0, false
		}
		return int(n), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		n := rv.Uint()
		if n > math.MaxInt {
			return 0, false
		}
		return int(n), true
	}
	return 0, false
}

func (p Point) X() int {
	return p.x
}

func (p Point) Y() int {
	return p.y
}

// Add returns p+o. Accumulate with p = p.Add(o).
func (p Point) Add(o Point) Point {
	return Point{x: p.x + o.x, y: p.y + o.y}
}

func (p Point) Sub(o Point) Point {
	return Point{x: p.x - o.x, y: p.y - o.y}
}

func (p Point) Neg() Point {
	return Point{x: -p.x, y: -p.y}
}

func (p Point) Equal(o Point) bool {
	return p.x == o.x && p.y == o.y
}

// Eq compares p with an arbitrary value. other must be a Point or a non-nil
// *Point; anything else is a ComparisonNotSupportedKind error, not false.
func (p Point) Eq(other any) (bool, error) {
	switch o := other.(type) {
	case Point:
		return p.Equal(o), nil
	case *Point:
		if o != nil {
			return p.Equal(*o), nil
		}
	}
	return false, &Error{Kind: ComparisonNotSupportedKind, Op: "eq", Type: typeName(other)}
}

// To returns the Euclidean distance between p and o.
func (p Point) To(o Point) float64 {
	return math.Hypot(float64(p.x-o.x), float64(p.y-o.y))
}

func (p Point) IsCenter() bool {
	return p.x == 0 && p.y == 0
}

// String returns "Point(x, y)".
func (p Point) String() string {
	b := make([]byte, 0, 32)
	b = append(b, "Point("...)
	b = strconv.AppendInt(b, int64(p.x), 10)
	b = append(b, ", "...)
	b = strconv.AppendInt(b, int64(p.y), 10)
	b = append(b, ')')
	return string(b)
}

// GoString makes %#v print the same form as String.
func (p Point) GoString() string {
	return p.String()
}
