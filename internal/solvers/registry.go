package solvers

import (
	"fmt"
	"sort"
)

var methods = map[string]func() Method{
	"euler": func() Method { return NewEuler() },
	"rk2":   func() Method { return NewRK2() },
	"rk4":   func() Method { return NewRK4() },
}

// Get returns the method registered under name.
func Get(name string) (Method, error) {
	fn, ok := methods[name]
	if !ok {
		return nil, fmt.Errorf("unknown method: %s", name)
	}
	return fn(), nil
}

// List returns the registered method names in sorted order.
func List() []string {
	names := make([]string, 0, len(methods))
	for name := range methods {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
