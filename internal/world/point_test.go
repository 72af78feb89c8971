package world

import (
	"math"
	"testing"
)

func TestPointArithmetic(t *testing.T) {
	a := Pt(1, 2)
	b := Pt(3, -1)

	if got := a.Add(b); got != Pt(4, 1) {
		t.Fatalf("Add: got=%v want=(4, 1)", got)
	}
	if got := a.Sub(b); got != Pt(-2, 3) {
		t.Fatalf("Sub: got=%v want=(-2, 3)", got)
	}
	if got := a.Scale(2.5); got != Pt(2.5, 5) {
		t.Fatalf("Scale: got=%v want=(2.5, 5)", got)
	}
	if got := Pt(3, 4).Magnitude(); got != 5 {
		t.Fatalf("Magnitude: got=%v want=5", got)
	}
	if got := a.SquareDist(b); got != 13 {
		t.Fatalf("SquareDist: got=%v want=13", got)
	}
	if got := Pt(1.7, -1.2).Floor(); got != Pt(1, -2) {
		t.Fatalf("Floor: got=%v want=(1, -2)", got)
	}
	if got := Pt(0.12345, -0.98765).Round(3); got != Pt(0.123, -0.988) {
		t.Fatalf("Round: got=%v want=(0.123, -0.988)", got)
	}
	// a is unchanged by any of the above.
	if a != Pt(1, 2) {
		t.Fatalf("receiver mutated: %v", a)
	}
}

func TestNormal(t *testing.T) {
	if got := (Point{}).Normal(); got != (Point{}) {
		t.Fatalf("zero vector normal: got=%v want=(0, 0)", got)
	}
	n := Pt(3, 4).Normal()
	if math.Abs(n.X-0.6) > 1e-12 || math.Abs(n.Y-0.8) > 1e-12 {
		t.Fatalf("normal of (3,4): got=%v want=(0.6, 0.8)", n)
	}
	if math.Abs(n.Magnitude()-1) > 1e-12 {
		t.Fatalf("normal magnitude: got=%v want=1", n.Magnitude())
	}
}

func TestCollidesIsInclusive(t *testing.T) {
	p := Pt(0, 0)
	if !p.Collides(Pt(0.5, 0), 0.5) {
		t.Fatal("point exactly at minDist must collide")
	}
	if p.Collides(Pt(0.6, 0), 0.5) {
		t.Fatal("point beyond minDist must not collide")
	}
}

func TestRect(t *testing.T) {
	r := RectXYWH(10, 20, 100, 50)
	cases := []struct {
		p    Point
		want bool
	}{
		{Pt(10, 20), true},
		{Pt(109.9, 69.9), true},
		{Pt(110, 40), false},
		{Pt(50, 70), false},
		{Pt(9.99, 40), false},
	}
	for _, tc := range cases {
		if got := r.Contains(tc.p); got != tc.want {
			t.Errorf("Contains(%v): got=%v want=%v", tc.p, got, tc.want)
		}
	}
	if c := r.Center(); c != Pt(60, 45) {
		t.Fatalf("Center: got=%v want=(60, 45)", c)
	}
	if r.Width() != 100 || r.Height() != 50 {
		t.Fatalf("size: got=%vx%v want=100x50", r.Width(), r.Height())
	}
	if !RectXYWH(0, 0, 0, 5).Empty() {
		t.Fatal("zero-width rect must be empty")
	}
}
