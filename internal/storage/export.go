package storage

import (
	"encoding/json"
	"io"
	"os"

	"github.com/san-kum/odelab/internal/ode"
)

type ExportData struct {
	ID     string             `json:"id"`
	Model  string             `json:"model"`
	Method string             `json:"method"`
	X0     float64            `json:"x0"`
	H      float64            `json:"h"`
	Points int                `json:"points"`
	Times  []float64          `json:"times"`
	Values []float64          `json:"values"`
	Params map[string]float64 `json:"params,omitempty"`
}

func exportJSON(w io.Writer, meta *RunMetadata, times []float64, x ode.Trajectory) error {
	data := ExportData{
		ID:     meta.ID,
		Model:  meta.Model,
		Method: meta.Method,
		X0:     meta.X0,
		H:      meta.H,
		Points: meta.Points,
		Times:  times,
		Values: x,
		Params: meta.Params,
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

// ExportJSON writes a full run (metadata plus trajectory) to path.
func ExportJSON(path string, meta *RunMetadata, times []float64, x ode.Trajectory) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return exportJSON(f, meta, times, x)
}

// ExportJSONStdout writes a full run to stdout.
func ExportJSONStdout(meta *RunMetadata, times []float64, x ode.Trajectory) error {
	return exportJSON(os.Stdout, meta, times, x)
}
