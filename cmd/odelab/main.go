package main

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/san-kum/odelab/internal/analysis"
	"github.com/san-kum/odelab/internal/config"
	"github.com/san-kum/odelab/internal/ode"
	"github.com/san-kum/odelab/internal/plot"
	"github.com/san-kum/odelab/internal/rhs"
	"github.com/san-kum/odelab/internal/solvers"
	"github.com/san-kum/odelab/internal/storage"
	"github.com/san-kum/odelab/internal/viz"
)

var (
	dataDir string
	method  string
	x0      float64
	t0      float64
	t1      float64
	points  int
	// Model parameters
	lambda float64 // decay rate
	cval   float64 // constant slope
	rval   float64 // logistic growth rate
	kval   float64 // logistic carrying capacity
	omega  float64 // harmonic forcing frequency
	// Config file and preset
	configFile string
	preset     string
	// Frame rate for live view
	frameRate int
	// Convergence study grids
	gridCounts string
	// PNG output
	pngPath string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "odelab",
		Short: "fixed-step ODE integration lab",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".odelab", "data directory")

	runCmd := &cobra.Command{
		Use:   "run [model]",
		Short: "integrate a model and store the trajectory",
		Args:  cobra.ExactArgs(1),
		RunE:  runModel,
	}
	addProblemFlags(runCmd)
	runCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	runCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")

	demoCmd := &cobra.Command{
		Use:   "demo",
		Short: "run all three methods on dx/dt = -x^3 + sin(t)",
		RunE:  runDemo,
	}
	demoCmd.Flags().StringVar(&pngPath, "png", "", "also write a PNG plot to this path")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a stored run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	compareCmd := &cobra.Command{
		Use:   "compare [model] [method1] [method2] ...",
		Short: "compare methods on the same problem",
		Args:  cobra.MinimumNArgs(2),
		RunE:  compareMethods,
	}
	addProblemFlags(compareCmd)

	convergenceCmd := &cobra.Command{
		Use:   "convergence [model] [method]",
		Short: "measure error against grid resolution",
		Args:  cobra.ExactArgs(2),
		RunE:  runConvergence,
	}
	addProblemFlags(convergenceCmd)
	convergenceCmd.Flags().StringVar(&gridCounts, "grids", "21,41,81,161", "comma-separated grid sizes")

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export run metadata",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export run data to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export run data to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	liveCmd := &cobra.Command{
		Use:   "live [model]",
		Short: "watch the integration advance point by point",
		Args:  cobra.ExactArgs(1),
		RunE:  runLive,
	}
	addProblemFlags(liveCmd)
	liveCmd.Flags().IntVar(&frameRate, "fps", 30, "frame rate")

	presetsCmd := &cobra.Command{
		Use:   "presets [model]",
		Short: "list available presets for a model",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			presets := config.ListPresets(args[0])
			if len(presets) == 0 {
				fmt.Printf("no presets for model: %s\n", args[0])
				return nil
			}
			fmt.Printf("presets for %s:\n", args[0])
			for _, p := range presets {
				fmt.Printf("  %s\n", p)
			}
			return nil
		},
	}

	renderCmd := &cobra.Command{
		Use:   "render [run_id]",
		Short: "render a stored run to PNG",
		Args:  cobra.ExactArgs(1),
		RunE:  renderRun,
	}
	renderCmd.Flags().StringVar(&pngPath, "out", "run.png", "output PNG path")

	rootCmd.AddCommand(runCmd, demoCmd, listCmd, plotCmd, compareCmd, convergenceCmd,
		exportCmd, exportCSVCmd, exportJSONCmd, liveCmd, presetsCmd, renderCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addProblemFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&method, "method", "rk4", "integration method")
	cmd.Flags().Float64Var(&x0, "x0", 0.0, "initial value x(t0)")
	cmd.Flags().Float64Var(&t0, "t0", 0.0, "interval start")
	cmd.Flags().Float64Var(&t1, "t1", 10.0, "interval end")
	cmd.Flags().IntVar(&points, "points", 1000, "grid points")
	cmd.Flags().Float64Var(&lambda, "lambda", 1.0, "decay rate (decay)")
	cmd.Flags().Float64Var(&cval, "c", 1.0, "slope (constant)")
	cmd.Flags().Float64Var(&rval, "r", 1.0, "growth rate (logistic)")
	cmd.Flags().Float64Var(&kval, "k", 1.0, "carrying capacity (logistic)")
	cmd.Flags().Float64Var(&omega, "omega", 1.0, "frequency (harmonic)")
}

func modelParams() map[string]float64 {
	return map[string]float64{
		"lambda": lambda,
		"c":      cval,
		"r":      rval,
		"k":      kval,
		"omega":  omega,
	}
}

func buildConfig(cmd *cobra.Command, model string) (*config.Config, error) {
	cfg := config.DefaultConfig()
	cfg.Model = model

	if preset != "" {
		p := config.GetPreset(model, preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(model))
		}
		*cfg = *p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		*cfg = *loaded
		cfg.Model = model
	}

	// CLI flags override preset and config file.
	if cmd.Flags().Changed("method") || cfg.Method == "" {
		cfg.Method = method
	}
	if cmd.Flags().Changed("x0") {
		cfg.X0 = x0
	}
	if cmd.Flags().Changed("t0") {
		cfg.T0 = t0
	}
	if cmd.Flags().Changed("t1") {
		cfg.T1 = t1
	}
	if cmd.Flags().Changed("points") {
		cfg.Points = points
	}
	if cfg.Params == nil {
		cfg.Params = modelParams()
	} else {
		for name, v := range modelParams() {
			if _, ok := cfg.Params[name]; !ok || cmd.Flags().Changed(name) {
				cfg.Params[name] = v
			}
		}
	}

	return cfg, cfg.Validate()
}

func runModel(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args[0])
	if err != nil {
		return err
	}

	model, err := rhs.Get(cfg.Model, cfg.Params)
	if err != nil {
		return err
	}
	m, err := solvers.Get(cfg.Method)
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	grid := cfg.TimeGrid()

	fmt.Printf("integrating %s with %s...\n", cfg.Model, cfg.Method)
	start := time.Now()
	x := solvers.Integrate(m, model.Func(), grid, cfg.X0)
	elapsed := time.Since(start)

	runID, err := st.Save(cfg.Model, cfg.Method, cfg.X0, cfg.Params, grid, x)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("points: %d (h=%.6g)\n", len(x), ode.StepSize(grid))
	fmt.Printf("final: x(%.4g) = %.6f\n", grid[len(grid)-1], x[len(x)-1])
	if !x.IsValid() {
		fmt.Println("warning: trajectory contains NaN or Inf")
	}

	return nil
}

func runDemo(cmd *cobra.Command, args []string) error {
	model := rhs.NewCubicSine()
	f := model.Func()

	coarse := ode.Linspace(0, 10, 20)
	fine := ode.Linspace(0, 10, 1000)

	fmt.Println(viz.Header("dx/dt = -x^3 + sin(t), x(0) = 0", [][2]string{
		{"grids", "20 and 1000 points over [0, 10]"},
		{"methods", strings.Join(solvers.List(), ", ")},
	}))

	finePerMethod := make(map[string]ode.Trajectory)
	for _, name := range solvers.List() {
		m, err := solvers.Get(name)
		if err != nil {
			return err
		}

		xCoarse := solvers.Integrate(m, f, coarse, 0)
		xFine := solvers.Integrate(m, f, fine, 0)
		finePerMethod[name] = xFine

		graph := viz.PlotMany(
			[]ode.Trajectory{xCoarse, xFine},
			[]string{"n=20", "n=1000"},
			fmt.Sprintf("%s: final %.6f (n=20) vs %.6f (n=1000)", name, xCoarse[len(xCoarse)-1], xFine[len(xFine)-1]),
		)
		fmt.Println(graph)
		fmt.Println()
	}

	if pngPath != "" {
		if err := plot.SavePNG(fine, finePerMethod, "dx/dt = -x^3 + sin(t)", pngPath); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", pngPath)
	}

	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tMODEL\tMETHOD\tTIME\tPOINTS\tH\tFINAL")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%.6g\t%.6f\n",
			run.ID,
			run.Model,
			run.Method,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Points,
			run.H,
			run.Final,
		)
	}

	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	_, x, err := st.LoadTrajectory(runID)
	if err != nil {
		return err
	}
	if len(x) < 2 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Println(viz.Header(meta.ID, [][2]string{
		{"model", meta.Model},
		{"method", meta.Method},
		{"samples", strconv.Itoa(len(x))},
	}))

	fmt.Println(viz.Plot(x, fmt.Sprintf("x vs time (%s, %s)", meta.Model, meta.Method)))
	return nil
}

func compareMethods(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args[0])
	if err != nil {
		return err
	}
	methodNames := args[1:]

	model, err := rhs.Get(cfg.Model, cfg.Params)
	if err != nil {
		return err
	}
	f := model.Func()
	grid := cfg.TimeGrid()

	// Error baseline: closed form when the model has one, otherwise an RK4
	// run on a 10x finer grid.
	var baseline ode.Trajectory
	if e, ok := model.(rhs.Exact); ok {
		exact := e.Exact(cfg.X0, cfg.T0)
		baseline = make(ode.Trajectory, len(grid))
		for i, tt := range grid {
			baseline[i] = exact(tt)
		}
	} else {
		baseline = analysis.Reference(f, grid, cfg.X0, 10)
	}

	fmt.Printf("comparing methods for %s (points=%d, h=%.6g)\n\n", cfg.Model, cfg.Points, ode.StepSize(grid))

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "METHOD\tFINAL\tMAX_ERR\tTIME")

	series := make([]ode.Trajectory, 0, len(methodNames))
	labels := make([]string, 0, len(methodNames))

	for _, name := range methodNames {
		m, err := solvers.Get(name)
		if err != nil {
			fmt.Fprintf(w, "%s\terror: %v\n", name, err)
			continue
		}

		start := time.Now()
		x := solvers.Integrate(m, f, grid, cfg.X0)
		elapsed := time.Since(start)

		fmt.Fprintf(w, "%s\t%.6f\t%.3e\t%v\n", name, x[len(x)-1], x.MaxAbsDiff(baseline), elapsed)
		series = append(series, x)
		labels = append(labels, name)
	}

	if err := w.Flush(); err != nil {
		return err
	}

	if len(series) > 1 {
		fmt.Println()
		fmt.Println(viz.PlotMany(series, labels, cfg.Model))
	}

	return nil
}

func runConvergence(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args[0])
	if err != nil {
		return err
	}

	model, err := rhs.Get(cfg.Model, cfg.Params)
	if err != nil {
		return err
	}
	m, err := solvers.Get(args[1])
	if err != nil {
		return err
	}

	counts, err := parseGridCounts(gridCounts)
	if err != nil {
		return err
	}

	rows, err := analysis.Convergence(m, model, cfg.T0, cfg.T1, cfg.X0, counts)
	if err != nil {
		return err
	}

	fmt.Printf("convergence of %s on %s over [%g, %g]\n\n", m.Name(), cfg.Model, cfg.T0, cfg.T1)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "POINTS\tH\tMAX_ERR\tORDER")
	for i, row := range rows {
		order := "-"
		if i > 0 {
			order = fmt.Sprintf("%.2f", row.Order)
		}
		fmt.Fprintf(w, "%d\t%.6g\t%.3e\t%s\n", row.Points, row.H, row.MaxError, order)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Printf("\ntheoretical order: %d\n", m.Order())
	return nil
}

func parseGridCounts(s string) ([]int, error) {
	parts := strings.Split(s, ",")
	counts := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("bad grid size %q: %w", p, err)
		}
		counts = append(counts, n)
	}
	return counts, nil
}

func exportRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}

func exportCSV(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	times, x, err := st.LoadTrajectory(args[0])
	if err != nil {
		return err
	}
	if len(x) == 0 {
		return fmt.Errorf("no data to export")
	}

	w := csv.NewWriter(os.Stdout)
	defer w.Flush()

	if err := w.Write([]string{"time", "x"}); err != nil {
		return err
	}
	for i := range times {
		row := []string{
			strconv.FormatFloat(times[i], 'f', 6, 64),
			strconv.FormatFloat(x[i], 'g', 17, 64),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return nil
}

func exportJSON(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	times, x, err := st.LoadTrajectory(args[0])
	if err != nil {
		return err
	}

	return storage.ExportJSONStdout(meta, times, x)
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args[0])
	if err != nil {
		return err
	}

	model, err := rhs.Get(cfg.Model, cfg.Params)
	if err != nil {
		return err
	}
	m, err := solvers.Get(cfg.Method)
	if err != nil {
		return err
	}

	vm := viz.NewModel(model.Func(), m, cfg.TimeGrid(), cfg.X0, cfg.Model, frameRate)
	p := tea.NewProgram(vm)
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

func renderRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	times, x, err := st.LoadTrajectory(args[0])
	if err != nil {
		return err
	}
	if len(x) == 0 {
		return fmt.Errorf("no data to render")
	}

	series := map[string]ode.Trajectory{meta.Method: x}
	title := fmt.Sprintf("%s (%s)", meta.Model, meta.Method)
	if err := plot.SavePNG(times, series, title, pngPath); err != nil {
		return err
	}

	fmt.Printf("wrote %s\n", pngPath)
	return nil
}
