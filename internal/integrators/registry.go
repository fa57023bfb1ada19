package integrators

import (
	"fmt"
	"sort"

	"github.com/san-kum/lorenzbox/internal/dynamo"
)

var registry = map[string]func() dynamo.DeltaIntegrator{
	"euler": func() dynamo.DeltaIntegrator { return NewEuler() },
	"rk4":   func() dynamo.DeltaIntegrator { return NewRK4() },
}

// Get returns a fresh integrator by name.
func Get(name string) (dynamo.DeltaIntegrator, error) {
	fn, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%q: %w", name, dynamo.ErrUnknownIntegrator)
	}
	return fn(), nil
}

func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
