package vecs

import (
	"math"
	"testing"

	"pgregory.net/rapid"
)

func anyVec() *rapid.Generator[Vec] {
	return rapid.Custom(func(t *rapid.T) Vec {
		return New(
			rapid.Float64Range(-1e9, 1e9).Draw(t, "x"),
			rapid.Float64Range(-1e9, 1e9).Draw(t, "y"),
		)
	})
}

// grid points are exact in binary so squared distances never underflow
func gridVec() *rapid.Generator[Vec] {
	return rapid.Custom(func(t *rapid.T) Vec {
		return New(
			float64(rapid.IntRange(-1<<20, 1<<20).Draw(t, "x"))/8,
			float64(rapid.IntRange(-1<<20, 1<<20).Draw(t, "y"))/8,
		)
	})
}

func near(a, b float64) bool {
	return math.Abs(a-b) <= 1e-9*math.Max(1, math.Max(math.Abs(a), math.Abs(b)))
}

func TestRoundTripProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		v := anyVec().Draw(t, "v")
		got, err := Parse(v.String())
		if err != nil {
			t.Fatal(err)
		}
		if got != v {
			t.Fatalf("got %v, want %v", got, v)
		}
	})
}

func TestDistanceProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := gridVec().Draw(t, "a")
		b := gridVec().Draw(t, "b")
		d := a.Dist(b)
		sq := a.SquaredDist(b)
		if !near(sq, d*d) {
			t.Fatalf("squared %v, dist %v", sq, d)
		}
		if (sq == 0) != (a == b) {
			t.Fatalf("squared %v for %v %v", sq, a, b)
		}
	})
}

func TestMoveTowardsProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := gridVec().Draw(t, "a")
		target := gridVec().Draw(t, "target")
		step := rapid.Float64Range(0, 1e6).Draw(t, "step")

		moved := a.MoveTowards(target, step)
		want := math.Min(step, a.Dist(target))
		if got := a.Dist(moved); math.Abs(got-want) > 1e-6*math.Max(1, want) {
			t.Fatalf("moved %v, want %v", got, want)
		}

		if got := a.MoveTowards(a, step); got != a {
			t.Fatalf("got %v", got)
		}
	})
}

func TestRotationProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		v := anyVec().Draw(t, "v")
		if got := v.Rotate90CCW().Rotate90CW(); got != v {
			t.Fatalf("got %v", got)
		}
		if got := v.Rotate90CW().Rotate90CCW(); got != v {
			t.Fatalf("got %v", got)
		}
		if got := v.Rotate90CW().Rotate90CW().Rotate90CW().Rotate90CW(); got != v {
			t.Fatalf("got %v", got)
		}
	})
}

func TestAngleProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		v := gridVec().Draw(t, "v")
		if v == (Vec{}) {
			t.Skip("zero vector")
		}
		for _, u := range []Vec{v, v.Neg(), v.Rotate90CW(), v.Rotate90CCW()} {
			a := u.Angle()
			if !(a > -math.Pi && a <= math.Pi) {
				t.Fatalf("angle %v for %v", a, u)
			}
		}
	})
}
