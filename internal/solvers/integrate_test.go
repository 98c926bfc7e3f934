package solvers

import (
	"math"
	"testing"

	"github.com/san-kum/odelab/internal/ode"
)

func allMethods() []Method {
	return []Method{NewEuler(), NewRK2(), NewRK4()}
}

func TestInitialConditionPreserved(t *testing.T) {
	grid := ode.Linspace(0, 10, 50)
	f := func(x, tt float64) float64 { return -x + math.Sin(tt) }

	for _, m := range allMethods() {
		x := Integrate(m, f, grid, 3.25)
		if len(x) != len(grid) {
			t.Errorf("%s: expected %d values, got %d", m.Name(), len(grid), len(x))
		}
		if x[0] != 3.25 {
			t.Errorf("%s: expected x[0] == 3.25 exactly, got %v", m.Name(), x[0])
		}
	}
}

func TestZeroDerivative(t *testing.T) {
	grid := ode.Linspace(0, 5, 40)
	f := func(x, tt float64) float64 { return 0 }

	for _, m := range allMethods() {
		x := Integrate(m, f, grid, 1.5)
		for i, v := range x {
			if v != 1.5 {
				t.Errorf("%s: expected constant 1.5 at i=%d, got %v", m.Name(), i, v)
				break
			}
		}
	}
}

func TestConstantDerivative(t *testing.T) {
	// All correction terms vanish for f = c, so every method must produce
	// the same exact linear ramp x0 + i*h*c.
	grid := ode.Linspace(0, 8, 17)
	h := grid[1] - grid[0]
	c := -2.5
	x0 := 4.0
	f := func(x, tt float64) float64 { return c }

	for _, m := range allMethods() {
		x := Integrate(m, f, grid, x0)
		for i, v := range x {
			want := x0 + float64(i)*h*c
			if math.Abs(v-want) > 1e-12 {
				t.Errorf("%s: at i=%d expected %v, got %v", m.Name(), i, want, v)
				break
			}
		}
	}
}

func TestEulerUnitSlope(t *testing.T) {
	grid := []float64{0, 1, 2, 3}
	x := IntegrateEuler(func(x, tt float64) float64 { return 1 }, grid, 0)

	want := []float64{0, 1, 2, 3}
	for i := range want {
		if x[i] != want[i] {
			t.Errorf("at i=%d expected %v, got %v", i, want[i], x[i])
		}
	}
}

func TestDegenerateGrids(t *testing.T) {
	f := func(x, tt float64) float64 { return x }

	for _, m := range allMethods() {
		if x := Integrate(m, f, nil, 1.0); len(x) != 0 {
			t.Errorf("%s: expected empty trajectory for empty grid, got %d values", m.Name(), len(x))
		}
		x := Integrate(m, f, []float64{2.0}, 7.0)
		if len(x) != 1 || x[0] != 7.0 {
			t.Errorf("%s: expected [7] for single-point grid, got %v", m.Name(), x)
		}
	}
}

func TestZeroStepFreezesTrajectory(t *testing.T) {
	// h = t[1]-t[0] appears only as a multiplicand, so a zero step yields a
	// constant trajectory rather than an error.
	grid := []float64{1, 1, 1, 1}
	for _, m := range allMethods() {
		x := Integrate(m, func(x, tt float64) float64 { return 100 }, grid, 0.5)
		for i, v := range x {
			if v != 0.5 {
				t.Errorf("%s: expected constant 0.5 at i=%d, got %v", m.Name(), i, v)
				break
			}
		}
	}
}

func TestStepSizeTakenFromFirstSpacing(t *testing.T) {
	// The step is derived once from t[1]-t[0]; later spacings are ignored.
	uneven := []float64{0, 1, 5, 6}
	even := []float64{0, 1, 2, 3}
	f := func(x, tt float64) float64 { return 1 }

	for _, m := range allMethods() {
		got := Integrate(m, f, uneven, 0)
		want := Integrate(m, f, even, 0)
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("%s: at i=%d expected %v, got %v", m.Name(), i, want[i], got[i])
			}
		}
	}
}

func maxErrorVsExact(m Method, n int) float64 {
	// dx/dt = -x, x(0) = 1, exact solution e^-t.
	grid := ode.Linspace(0, 2, n)
	x := Integrate(m, func(x, tt float64) float64 { return -x }, grid, 1.0)

	max := 0.0
	for i, v := range x {
		if e := math.Abs(v - math.Exp(-grid[i])); e > max {
			max = e
		}
	}
	return max
}

func TestConvergenceOrders(t *testing.T) {
	// Halving h must shrink the error by ~2^p for a method of order p.
	tests := []struct {
		m        Method
		minOrder float64
	}{
		{NewEuler(), 0.9},
		{NewRK2(), 1.9},
		{NewRK4(), 3.9},
	}

	for _, tt := range tests {
		coarse := maxErrorVsExact(tt.m, 41)
		fine := maxErrorVsExact(tt.m, 81)
		observed := math.Log2(coarse / fine)
		if observed < tt.minOrder {
			t.Errorf("%s: observed order %.2f, expected at least %.2f", tt.m.Name(), observed, tt.minOrder)
		}
	}
}

func TestMethodAccuracyRanking(t *testing.T) {
	errEuler := maxErrorVsExact(NewEuler(), 101)
	errRK2 := maxErrorVsExact(NewRK2(), 101)
	errRK4 := maxErrorVsExact(NewRK4(), 101)

	if !(errRK4 < errRK2 && errRK2 < errEuler) {
		t.Errorf("expected rk4 < rk2 < euler, got %.3e / %.3e / %.3e", errRK4, errRK2, errEuler)
	}
}

func TestCubicSineStaysFinite(t *testing.T) {
	grid := ode.Linspace(0, 10, 1000)
	f := func(x, tt float64) float64 { return -x*x*x + math.Sin(tt) }

	trajectories := make(map[string]ode.Trajectory)
	for _, m := range allMethods() {
		x := Integrate(m, f, grid, 0)
		if len(x) != 1000 {
			t.Fatalf("%s: expected 1000 values, got %d", m.Name(), len(x))
		}
		if !x.IsValid() {
			t.Errorf("%s: trajectory contains NaN or Inf", m.Name())
		}
		trajectories[m.Name()] = x
	}

	// RK4 on a 10x finer grid serves as the reference; RK4 on the coarse
	// grid must land closest to it.
	ref := Integrate(NewRK4(), f, ode.Linspace(0, 10, 9991), 0)
	refErr := func(x ode.Trajectory) float64 {
		max := 0.0
		for i, v := range x {
			if d := math.Abs(v - ref[i*10]); d > max {
				max = d
			}
		}
		return max
	}

	eEuler := refErr(trajectories["euler"])
	eRK2 := refErr(trajectories["rk2"])
	eRK4 := refErr(trajectories["rk4"])
	if !(eRK4 <= eRK2 && eRK4 <= eEuler) {
		t.Errorf("expected rk4 closest to reference, got euler=%.3e rk2=%.3e rk4=%.3e", eEuler, eRK2, eRK4)
	}
}

func TestWrappersMatchMethods(t *testing.T) {
	grid := ode.Linspace(0, 1, 11)
	f := func(x, tt float64) float64 { return x*tt - 1 }

	pairs := []struct {
		name    string
		wrapper func(ode.Func, []float64, float64) ode.Trajectory
		m       Method
	}{
		{"euler", IntegrateEuler, NewEuler()},
		{"rk2", IntegrateRK2, NewRK2()},
		{"rk4", IntegrateRK4, NewRK4()},
	}

	for _, p := range pairs {
		got := p.wrapper(f, grid, 0.3)
		want := Integrate(p.m, f, grid, 0.3)
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("%s wrapper diverges from Integrate at i=%d", p.name, i)
				break
			}
		}
	}
}

func TestRegistry(t *testing.T) {
	for _, name := range []string{"euler", "rk2", "rk4"} {
		m, err := Get(name)
		if err != nil {
			t.Fatalf("Get(%s) failed: %v", name, err)
		}
		if m.Name() != name {
			t.Errorf("expected name %s, got %s", name, m.Name())
		}
	}

	if _, err := Get("rk45"); err == nil {
		t.Error("expected error for unknown method")
	}

	names := List()
	if len(names) != 3 {
		t.Errorf("expected 3 methods, got %d", len(names))
	}
}
