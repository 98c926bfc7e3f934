package plot

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/san-kum/odelab/internal/ode"
	"github.com/san-kum/odelab/internal/rhs"
	"github.com/san-kum/odelab/internal/solvers"
)

func TestSavePNG(t *testing.T) {
	grid := ode.Linspace(0, 10, 100)
	f := rhs.NewCubicSine().Func()

	series := map[string]ode.Trajectory{
		"euler": solvers.IntegrateEuler(f, grid, 0),
		"rk4":   solvers.IntegrateRK4(f, grid, 0),
	}

	path := filepath.Join(t.TempDir(), "out.png")
	if err := SavePNG(grid, series, "cubicsine", path); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("expected png to exist: %v", err)
	}
	if info.Size() == 0 {
		t.Error("expected non-empty png")
	}
}

func TestSavePNGRejectsEmpty(t *testing.T) {
	if err := SavePNG(nil, nil, "x", "out.png"); err == nil {
		t.Error("expected error for empty input")
	}
}
