package vector

import (
	"errors"
	"math"
	"testing"
)

func TestAdd(t *testing.T) {
	got := New(2, 4).Add(New(2, 1))
	if !got.Equal(New(4, 5)) {
		t.Fatalf("expected Vector(4, 5), got %s", got)
	}
}

func TestScale(t *testing.T) {
	got := New(3, 4).Scale(3)
	if got != New(9, 12) {
		t.Fatalf("expected Vector(9, 12), got %s", got)
	}
	if m := got.Magnitude(); m != 15 {
		t.Fatalf("expected magnitude 15, got %v", m)
	}
}

func TestMagnitude(t *testing.T) {
	tests := []struct {
		v    Vector
		want float64
	}{
		{New(3, 4), 5},
		{New(-3, -4), 5},
		{New(0, 0), 0},
		{New(1e200, 1e200), math.Sqrt2 * 1e200},
		{New(3e-200, 4e-200), 5e-200},
	}
	for _, tt := range tests {
		got := tt.v.Magnitude()
		if math.IsInf(got, 0) || got == 0 && tt.want != 0 {
			t.Fatalf("%s: magnitude over/underflowed: %v", tt.v, got)
		}
		if math.Abs(got-tt.want) > 1e-12*tt.want {
			t.Fatalf("%s: expected %v, got %v", tt.v, tt.want, got)
		}
	}
}

func TestBool(t *testing.T) {
	if New(0, 0).Bool() {
		t.Fatal("zero vector should be false")
	}
	if !New(1, 0).Bool() {
		t.Fatal("Vector(1, 0) should be true")
	}
	if !New(0, -0.5).Bool() {
		t.Fatal("Vector(0, -0.5) should be true")
	}
}

func TestImmutability(t *testing.T) {
	v := New(1, 2)
	_ = v.Add(New(5, 5))
	_ = v.Scale(10)
	if v != New(1, 2) {
		t.Fatalf("operations changed the receiver: %s", v)
	}
}

func TestString(t *testing.T) {
	tests := map[Vector]string{
		New(3, 4):      "Vector(3, 4)",
		New(-1.5, 0):   "Vector(-1.5, 0)",
		New(0.1, 1e21): "Vector(0.1, 1e+21)",
	}
	for v, want := range tests {
		if got := v.String(); got != want {
			t.Fatalf("expected %s, got %s", want, got)
		}
	}
}

func TestParse(t *testing.T) {
	v, err := Parse(" 3, -4.5 ")
	if err != nil {
		t.Fatal(err)
	}
	if v != New(3, -4.5) {
		t.Fatalf("unexpected vector %s", v)
	}

	for _, bad := range []string{"", "3", "3,4,5", "x,4", "3,y"} {
		if _, err := Parse(bad); !errors.Is(err, ErrInvalidVector) {
			t.Fatalf("Parse(%q): expected ErrInvalidVector, got %v", bad, err)
		}
	}
}
