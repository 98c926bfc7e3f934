package rhs

import (
	"fmt"
	"sort"
)

// Builders take a params map so the CLI and config layers can construct
// models by name. Missing params fall back to defaults.
var builders = map[string]func(params map[string]float64) Model{
	"cubicsine": func(params map[string]float64) Model {
		return NewCubicSine()
	},
	"decay": func(params map[string]float64) Model {
		lambda := paramOr(params, "lambda", 1.0)
		return NewDecay(lambda)
	},
	"constant": func(params map[string]float64) Model {
		return NewConstant(paramOr(params, "c", 1.0))
	},
	"logistic": func(params map[string]float64) Model {
		r := paramOr(params, "r", 1.0)
		k := paramOr(params, "k", 1.0)
		return NewLogistic(r, k)
	},
	"harmonic": func(params map[string]float64) Model {
		return NewHarmonic(paramOr(params, "omega", 1.0))
	},
}

func paramOr(params map[string]float64, name string, def float64) float64 {
	if v, ok := params[name]; ok {
		return v
	}
	return def
}

// Get builds the model registered under name with the given params.
func Get(name string, params map[string]float64) (Model, error) {
	fn, ok := builders[name]
	if !ok {
		return nil, fmt.Errorf("unknown model: %s", name)
	}
	return fn(params), nil
}

// List returns the registered model names in sorted order.
func List() []string {
	names := make([]string, 0, len(builders))
	for name := range builders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
