package ode

import (
	"math"
	"testing"
)

func TestLinspace(t *testing.T) {
	tests := []struct {
		t0, t1 float64
		n      int
		first  float64
		last   float64
	}{
		{0, 10, 20, 0, 10},
		{0, 10, 1000, 0, 10},
		{-1, 1, 3, -1, 1},
		{5, 5, 2, 5, 5},
	}

	for _, tt := range tests {
		g := Linspace(tt.t0, tt.t1, tt.n)
		if len(g) != tt.n {
			t.Errorf("Linspace(%v,%v,%d): expected %d points, got %d", tt.t0, tt.t1, tt.n, tt.n, len(g))
		}
		if g[0] != tt.first {
			t.Errorf("expected first point %v, got %v", tt.first, g[0])
		}
		if g[len(g)-1] != tt.last {
			t.Errorf("expected last point %v, got %v", tt.last, g[len(g)-1])
		}
		if !IsUniform(g, 1e-12) {
			t.Errorf("Linspace(%v,%v,%d) not uniform", tt.t0, tt.t1, tt.n)
		}
	}
}

func TestLinspaceDegenerate(t *testing.T) {
	if g := Linspace(0, 1, 0); len(g) != 0 {
		t.Errorf("expected empty grid, got %d points", len(g))
	}
	g := Linspace(3, 9, 1)
	if len(g) != 1 || g[0] != 3 {
		t.Errorf("expected [3], got %v", g)
	}
}

func TestStepSize(t *testing.T) {
	if h := StepSize([]float64{0, 0.5, 1.0}); h != 0.5 {
		t.Errorf("expected 0.5, got %v", h)
	}
	if h := StepSize([]float64{1}); h != 0 {
		t.Errorf("expected 0 for single-point grid, got %v", h)
	}
	if h := StepSize(nil); h != 0 {
		t.Errorf("expected 0 for empty grid, got %v", h)
	}
}

func TestIsUniform(t *testing.T) {
	if !IsUniform([]float64{0, 1, 2, 3}, 1e-12) {
		t.Error("evenly spaced grid reported non-uniform")
	}
	if IsUniform([]float64{0, 1, 3, 4}, 1e-12) {
		t.Error("uneven grid reported uniform")
	}
	if !IsUniform([]float64{0, 1}, 0) {
		t.Error("two-point grid should be trivially uniform")
	}
}

func TestCheckGrid(t *testing.T) {
	if err := CheckGrid([]float64{0, 1, 2}); err != nil {
		t.Errorf("valid grid rejected: %v", err)
	}
	if err := CheckGrid([]float64{1}); err != ErrGridTooShort {
		t.Errorf("expected ErrGridTooShort, got %v", err)
	}
	if err := CheckGrid([]float64{2, 2, 2}); err != ErrZeroStep {
		t.Errorf("expected ErrZeroStep, got %v", err)
	}
	if err := CheckGrid([]float64{0, 1, 2.5}); err != ErrNonUniformGrid {
		t.Errorf("expected ErrNonUniformGrid, got %v", err)
	}
}

func TestTrajectoryIsValid(t *testing.T) {
	if !(Trajectory{0, 1, -2.5}).IsValid() {
		t.Error("finite trajectory reported invalid")
	}
	if (Trajectory{0, math.NaN()}).IsValid() {
		t.Error("NaN trajectory reported valid")
	}
	if (Trajectory{math.Inf(1)}).IsValid() {
		t.Error("Inf trajectory reported valid")
	}
}

func TestTrajectoryMaxAbsDiff(t *testing.T) {
	a := Trajectory{0, 1, 2}
	b := Trajectory{0, 1.5, 1}
	if d := a.MaxAbsDiff(b); d != 1 {
		t.Errorf("expected 1, got %v", d)
	}
}
