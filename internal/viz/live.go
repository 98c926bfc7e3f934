package viz

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/odelab/internal/ode"
	"github.com/san-kum/odelab/internal/solvers"
)

type TickMsg time.Time

// Model steps an integration across its time grid a few points per frame
// and renders the trajectory as it grows.
type Model struct {
	f         ode.Func
	method    solvers.Method
	grid      []float64
	h         float64
	x         ode.Trajectory
	idx       int
	running   bool
	modelName string
	fps       int
}

// NewModel prepares a live view. The step size is fixed from the first two
// grid points, same as a batch run.
func NewModel(f ode.Func, method solvers.Method, grid []float64, x0 float64, modelName string, fps int) Model {
	if fps <= 0 {
		fps = 30
	}
	x := make(ode.Trajectory, 0, len(grid))
	if len(grid) > 0 {
		x = append(x, x0)
	}
	return Model{
		f:         f,
		method:    method,
		grid:      grid,
		h:         ode.StepSize(grid),
		x:         x,
		idx:       0,
		running:   true,
		modelName: modelName,
		fps:       fps,
	}
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

// Update handles input events and advances the integration.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "r":
			if len(m.x) > 0 {
				m.x = m.x[:1]
			}
			m.idx = 0
		}
	case TickMsg:
		if m.running {
			m.advance()
		}
		return m, m.tick()
	}
	return m, nil
}

// advance takes a handful of grid steps per frame so long runs finish in a
// few seconds of wall time.
func (m *Model) advance() {
	steps := len(m.grid) / 300
	if steps < 1 {
		steps = 1
	}
	for s := 0; s < steps && m.idx+1 < len(m.grid); s++ {
		next := m.method.Step(m.f, m.x[m.idx], m.grid[m.idx], m.h)
		m.x = append(m.x, next)
		m.idx++
	}
}

func (m Model) View() string {
	status := "running"
	if m.idx+1 >= len(m.grid) {
		status = "done"
	} else if !m.running {
		status = pausedStyle.Render("paused")
	}

	t := 0.0
	cur := 0.0
	if m.idx < len(m.grid) {
		t = m.grid[m.idx]
	}
	if len(m.x) > 0 {
		cur = m.x[m.idx]
	}

	head := Header("odelab live", [][2]string{
		{"model", m.modelName},
		{"method", m.method.Name()},
		{"t", fmt.Sprintf("%.4f", t)},
		{"x", fmt.Sprintf("%.6f", cur)},
		{"step", fmt.Sprintf("%d / %d", m.idx, len(m.grid)-1)},
		{"status", status},
	})

	graph := ""
	if len(m.x) >= 2 {
		graph = graphStyle.Render(Plot(m.x, fmt.Sprintf("%s (%s)", m.modelName, m.method.Name())))
	}

	help := helpStyle.Render("space pause · r reset · q quit")

	return head + graph + "\n" + help + "\n"
}
