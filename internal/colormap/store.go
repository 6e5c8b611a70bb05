package colormap

import (
	"errors"
	"fmt"
	"sort"

	"github.com/aclements/go-gg/palette"

	"github.com/lunit-heesungyang/fau-colors/internal/model"
)

var (
	// ErrAlreadyRegistered is returned when a name is bound to another colormap
	ErrAlreadyRegistered = errors.New("already registered")
	// ErrNotRegistered is returned when unregistering an unknown name
	ErrNotRegistered = errors.New("not registered")
)

// Store is an in-memory colormap table. It is the plotting environment's
// registry; callers share one Store instead of a package global.
// A Store is not safe for concurrent use.
type Store struct {
	cmaps map[string]model.Colormap
}

// NewStore creates an empty Store
func NewStore() *Store {
	return &Store{cmaps: make(map[string]model.Colormap)}
}

// Register binds name to cmap. It fails if name is already taken, even by
// an identical colormap.
func (s *Store) Register(name string, cmap model.Colormap) error {
	if _, ok := s.cmaps[name]; ok {
		return fmt.Errorf("a colormap named %q is %w", name, ErrAlreadyRegistered)
	}
	c := cmap.Clone()
	c.Name = name
	s.cmaps[name] = c
	return nil
}

// Unregister removes name from the table
func (s *Store) Unregister(name string) error {
	if _, ok := s.cmaps[name]; !ok {
		return fmt.Errorf("colormap %q is %w", name, ErrNotRegistered)
	}
	delete(s.cmaps, name)
	return nil
}

// Get returns a copy of the colormap bound to name
func (s *Store) Get(name string) (model.Colormap, bool) {
	c, ok := s.cmaps[name]
	if !ok {
		return model.Colormap{}, false
	}
	return c.Clone(), true
}

// Contains reports whether name is bound
func (s *Store) Contains(name string) bool {
	_, ok := s.cmaps[name]
	return ok
}

// Len returns the number of registered colormaps
func (s *Store) Len() int {
	return len(s.cmaps)
}

// Names returns the registered names, sorted
func (s *Store) Names() []string {
	names := make([]string, 0, len(s.cmaps))
	for name := range s.cmaps {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Continuous returns the colormap bound to name as a plotting palette
func (s *Store) Continuous(name string) (palette.Continuous, bool) {
	c, ok := s.cmaps[name]
	if !ok {
		return nil, false
	}
	return c, true
}
