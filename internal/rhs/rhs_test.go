package rhs

import (
	"math"
	"testing"
)

func TestDecayExactMatchesDerivative(t *testing.T) {
	d := NewDecay(0.7)
	exact := d.Exact(2.0, 0)
	f := d.Func()

	// Finite-difference slope of the exact solution must match f.
	eps := 1e-6
	for _, tt := range []float64{0, 0.5, 1.3, 4.0} {
		x := exact(tt)
		slope := (exact(tt+eps) - exact(tt-eps)) / (2 * eps)
		if math.Abs(slope-f(x, tt)) > 1e-5 {
			t.Errorf("t=%v: exact slope %v, f %v", tt, slope, f(x, tt))
		}
	}
}

func TestLogisticExact(t *testing.T) {
	l := NewLogistic(1.5, 10)
	exact := l.Exact(1.0, 0)

	if got := exact(0); math.Abs(got-1.0) > 1e-12 {
		t.Errorf("expected exact(t0) == x0, got %v", got)
	}
	// Solution approaches the carrying capacity.
	if got := exact(50); math.Abs(got-10) > 1e-6 {
		t.Errorf("expected approach to K=10, got %v", got)
	}

	zero := NewLogistic(1.5, 10).Exact(0, 0)
	if zero(3) != 0 {
		t.Error("x0 == 0 must stay at the fixed point")
	}
}

func TestHarmonicExact(t *testing.T) {
	h := NewHarmonic(2.0)
	exact := h.Exact(0.5, 0)

	if got := exact(0); got != 0.5 {
		t.Errorf("expected exact(t0) == x0, got %v", got)
	}
	want := 0.5 + math.Sin(2.0*1.2)/2.0
	if got := exact(1.2); math.Abs(got-want) > 1e-12 {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestConstantExact(t *testing.T) {
	c := NewConstant(-3)
	exact := c.Exact(1, 2)
	if got := exact(4); got != 1-3*2 {
		t.Errorf("expected -5, got %v", got)
	}
}

func TestCubicSineFunc(t *testing.T) {
	f := NewCubicSine().Func()
	want := -8.0 + math.Sin(0.3)
	if got := f(2, 0.3); math.Abs(got-want) > 1e-12 {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestRegistry(t *testing.T) {
	for _, name := range List() {
		m, err := Get(name, nil)
		if err != nil {
			t.Fatalf("Get(%s) failed: %v", name, err)
		}
		if m.Name() != name {
			t.Errorf("expected name %s, got %s", name, m.Name())
		}
	}

	if _, err := Get("lorenz", nil); err == nil {
		t.Error("expected error for unknown model")
	}

	d, err := Get("decay", map[string]float64{"lambda": 2.5})
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if d.(*Decay).Lambda != 2.5 {
		t.Errorf("expected lambda 2.5, got %v", d.(*Decay).Lambda)
	}
}
