package geom

import (
	"math"
	"testing"
)

func TestVecAddSub(t *testing.T) {
	a := V(1, 2)
	b := V(3, -4)

	sum := a.Add(b)
	if sum.X != 4 || sum.Y != -2 {
		t.Errorf("Add: expected (4, -2), got (%f, %f)", sum.X, sum.Y)
	}

	diff := a.Sub(b)
	if diff.X != -2 || diff.Y != 6 {
		t.Errorf("Sub: expected (-2, 6), got (%f, %f)", diff.X, diff.Y)
	}
}

func TestVecScale(t *testing.T) {
	v := V(2, -3).Scale(1.5)
	if v.X != 3 || v.Y != -4.5 {
		t.Errorf("Scale: expected (3, -4.5), got (%f, %f)", v.X, v.Y)
	}
}

func TestVecDist(t *testing.T) {
	a := V(0, 0)
	b := V(3, 4)

	if d := a.Dist(b); d != 5 {
		t.Errorf("Dist: expected 5, got %f", d)
	}
	if l := b.Len(); l != 5 {
		t.Errorf("Len: expected 5, got %f", l)
	}
	if d := a.Dist(a); d != 0 {
		t.Errorf("Dist to self: expected 0, got %f", d)
	}
}

func TestClampF(t *testing.T) {
	cases := []struct {
		val, min, max, want float64
	}{
		{5, 0, 10, 5},
		{-1, 0, 10, 0},
		{11, 0, 10, 10},
		{math.Inf(1), -4, 4, 4},
		{math.Inf(-1), -4, 4, -4},
	}
	for _, c := range cases {
		if got := ClampF(c.val, c.min, c.max); got != c.want {
			t.Errorf("ClampF(%f, %f, %f) = %f, want %f", c.val, c.min, c.max, got, c.want)
		}
	}
}
