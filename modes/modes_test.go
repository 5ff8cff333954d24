package modes

import (
	"testing"

	"github.com/reusee/dscope"
)

func TestForProduction(t *testing.T) {
	dscope.New(ForProduction()).Call(func(
		pt *testing.T,
		mode Mode,
	) {
		if pt != nil {
			t.Fatal()
		}
		if mode != ModeProduction {
			t.Fatalf("got %v", mode)
		}
	})
}

func TestForTest(t *testing.T) {
	dscope.New(ForTest(t)).Call(func(
		tt *testing.T,
		mode Mode,
	) {
		if tt != t {
			t.Fatal()
		}
		if mode != ModeDevelopment {
			t.Fatalf("got %v", mode)
		}
	})
}

func TestModeString(t *testing.T) {
	if str := ModeProduction.String(); str != "production" {
		t.Fatalf("got %s", str)
	}
	if str := Mode(0).String(); str != "unknown" {
		t.Fatalf("got %s", str)
	}
}
