package config

var Presets = map[string]map[string]*Config{
	"cubicsine": {
		// The two demo grids: 20 and 1000 points over [0, 10].
		"coarse": {
			Model: "cubicsine", Method: "rk4", X0: 0, T0: 0, T1: 10, Points: 20,
		},
		"fine": {
			Model: "cubicsine", Method: "rk4", X0: 0, T0: 0, T1: 10, Points: 1000,
		},
		"euler-coarse": {
			Model: "cubicsine", Method: "euler", X0: 0, T0: 0, T1: 10, Points: 20,
		},
	},
	"decay": {
		"halflife": {
			Model: "decay", Method: "rk4", X0: 1, T0: 0, T1: 5, Points: 500,
			Params: map[string]float64{"lambda": 1.0},
		},
		"slow": {
			Model: "decay", Method: "rk2", X0: 1, T0: 0, T1: 20, Points: 1000,
			Params: map[string]float64{"lambda": 0.1},
		},
	},
	"logistic": {
		"growth": {
			Model: "logistic", Method: "rk4", X0: 0.1, T0: 0, T1: 10, Points: 500,
			Params: map[string]float64{"r": 1.0, "k": 1.0},
		},
	},
	"harmonic": {
		"slow": {
			Model: "harmonic", Method: "rk4", X0: 0, T0: 0, T1: 20, Points: 800,
			Params: map[string]float64{"omega": 0.5},
		},
	},
}

func GetPreset(model, preset string) *Config {
	modelPresets, ok := Presets[model]
	if !ok {
		return nil
	}
	cfg, ok := modelPresets[preset]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets(model string) []string {
	modelPresets, ok := Presets[model]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(modelPresets))
	for name := range modelPresets {
		names = append(names, name)
	}
	return names
}
