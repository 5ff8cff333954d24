package vecs

import (
	"fmt"
	"math"
	"strings"

	"github.com/reusee/turnbot/tokens"
)

// Vec is an immutable 2D point or vector in screen coordinates (y axis down).
// All methods take and return values.
type Vec struct {
	X, Y float64
}

func New(x, y float64) Vec {
	return Vec{X: x, Y: y}
}

func FromPolar(length, angle float64) Vec {
	return Vec{
		X: length * math.Cos(angle),
		Y: length * math.Sin(angle),
	}
}

// Parse reads exactly two whitespace separated numbers
func Parse(s string) (Vec, error) {
	parts := strings.Fields(s)
	if len(parts) != 2 {
		return Vec{}, &tokens.FormatError{
			Kind: tokens.KindVector,
			Text: s,
			Err:  fmt.Errorf("expecting 2 fields, got %d", len(parts)),
		}
	}
	x, err := tokens.ParseFloat(parts[0])
	if err != nil {
		return Vec{}, &tokens.FormatError{Kind: tokens.KindVector, Text: s, Err: err}
	}
	y, err := tokens.ParseFloat(parts[1])
	if err != nil {
		return Vec{}, &tokens.FormatError{Kind: tokens.KindVector, Text: s, Err: err}
	}
	return Vec{X: x, Y: y}, nil
}

func (v Vec) String() string {
	return tokens.FormatFloat(v.X) + " " + tokens.FormatFloat(v.Y)
}

// At returns X for 0 and Y for 1, and panics on any other dimension
func (v Vec) At(dim int) float64 {
	switch dim {
	case 0:
		return v.X
	case 1:
		return v.Y
	}
	panic(fmt.Errorf("bad dimension: %d", dim))
}

func (v Vec) Add(b Vec) Vec {
	return Vec{X: v.X + b.X, Y: v.Y + b.Y}
}

func (v Vec) Sub(b Vec) Vec {
	return Vec{X: v.X - b.X, Y: v.Y - b.Y}
}

func (v Vec) Neg() Vec {
	return Vec{X: -v.X, Y: -v.Y}
}

func (v Vec) Mul(k int) Vec {
	return Vec{X: v.X * float64(k), Y: v.Y * float64(k)}
}

func (v Vec) Scale(k float64) Vec {
	return Vec{X: v.X * k, Y: v.Y * k}
}

func (v Vec) Div(k int) Vec {
	return Vec{X: v.X / float64(k), Y: v.Y / float64(k)}
}

func (v Vec) Translate(dx, dy float64) Vec {
	return Vec{X: v.X + dx, Y: v.Y + dy}
}
