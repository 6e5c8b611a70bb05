package palettes

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownGeneration is returned by Lookup for names outside Generations
var ErrUnknownGeneration = errors.New("unknown generation")

// Latest is the current release
var Latest Generation = V2024

// Generations lists every release, oldest first
var Generations = []Generation{V2019, V2021, V2024}

// Lookup finds a release by name. An empty name selects Latest.
func Lookup(name string) (Generation, error) {
	if name == "" {
		return Latest, nil
	}
	for _, g := range Generations {
		if g.Name() == name {
			return g, nil
		}
	}
	var names []string
	for _, g := range Generations {
		names = append(names, g.Name())
	}
	return nil, fmt.Errorf("%w %q (want one of %s)", ErrUnknownGeneration, name, strings.Join(names, ", "))
}
