package colormap

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/lunit-heesungyang/fau-colors/internal/model"
)

// ErrNoRegistry is returned when the injected environment offers neither API
var ErrNoRegistry = errors.New("no colormap registry available")

// Registry is the table-shaped colormap API
type Registry interface {
	Register(name string, cmap model.Colormap) error
	Unregister(name string) error
	Get(name string) (model.Colormap, bool)
	Contains(name string) bool
}

// LegacyRegistry is the older API made of a register/unregister pair only
type LegacyRegistry interface {
	RegisterCmap(name string, cmap model.Colormap) error
	UnregisterCmap(name string) error
}

// LegacyFuncs adapts a pair of free functions to LegacyRegistry
type LegacyFuncs struct {
	Register   func(name string, cmap model.Colormap) error
	Unregister func(name string) error
}

// RegisterCmap calls f.Register
func (f LegacyFuncs) RegisterCmap(name string, cmap model.Colormap) error {
	if f.Register == nil {
		return fmt.Errorf("register %q: %w", name, ErrNoRegistry)
	}
	return f.Register(name, cmap)
}

// UnregisterCmap calls f.Unregister
func (f LegacyFuncs) UnregisterCmap(name string) error {
	if f.Unregister == nil {
		return fmt.Errorf("unregister %q: %w", name, ErrNoRegistry)
	}
	return f.Unregister(name)
}

// strategy is one way of talking to the environment's colormap table
type strategy interface {
	register(name string, cmap model.Colormap) error
	unregister(name string) error
	// same reports whether name is already bound to an equal colormap
	same(name string, cmap model.Colormap) bool
	kind() string
}

type modern struct{ r Registry }

func (m modern) register(name string, cmap model.Colormap) error { return m.r.Register(name, cmap) }
func (m modern) unregister(name string) error                    { return m.r.Unregister(name) }
func (m modern) kind() string                                    { return "registry" }

func (m modern) same(name string, cmap model.Colormap) bool {
	if !m.r.Contains(name) {
		return false
	}
	got, ok := m.r.Get(name)
	return ok && got.Equal(cmap, model.Tolerance)
}

type legacy struct{ l LegacyRegistry }

func (l legacy) register(name string, cmap model.Colormap) error { return l.l.RegisterCmap(name, cmap) }
func (l legacy) unregister(name string) error                    { return l.l.UnregisterCmap(name) }
func (l legacy) same(string, model.Colormap) bool                { return false }
func (l legacy) kind() string                                    { return "legacy" }

// Adapter registers colormaps with whichever API the environment offers
type Adapter struct {
	env    any
	logger *slog.Logger
}

// NewAdapter creates an adapter for env, which should implement Registry or
// LegacyRegistry. The choice is made on every call, not here.
func NewAdapter(env any, logger *slog.Logger) *Adapter {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Adapter{env: env, logger: logger}
}

func (a *Adapter) strategy() (strategy, error) {
	switch env := a.env.(type) {
	case Registry:
		return modern{env}, nil
	case LegacyRegistry:
		return legacy{env}, nil
	}
	return nil, fmt.Errorf("%w in %T", ErrNoRegistry, a.env)
}

// RegisterAll registers every colormap under its name, in order. Names
// already bound to an equal colormap are skipped; names bound to a different
// one are handed to the environment, which reports the conflict.
func (a *Adapter) RegisterAll(cmaps []model.Colormap) error {
	s, err := a.strategy()
	if err != nil {
		return err
	}
	for _, cm := range cmaps {
		if s.same(cm.Name, cm) {
			a.logger.Debug("colormap", "action", "skip", "name", cm.Name)
			continue
		}
		if err := s.register(cm.Name, cm); err != nil {
			return fmt.Errorf("registering colormap %q: %w", cm.Name, err)
		}
		a.logger.Debug("colormap", "action", "register", "name", cm.Name, "api", s.kind())
	}
	return nil
}

// UnregisterAll removes every name. Errors, including ErrNotRegistered, are
// returned as is; see IgnoreNotRegistered.
func (a *Adapter) UnregisterAll(names []string) error {
	s, err := a.strategy()
	if err != nil {
		return err
	}
	for _, name := range names {
		if err := s.unregister(name); err != nil {
			return fmt.Errorf("unregistering colormap %q: %w", name, err)
		}
		a.logger.Debug("colormap", "action", "unregister", "name", name, "api", s.kind())
	}
	return nil
}

// IgnoreNotRegistered drops ErrNotRegistered and keeps every other error
func IgnoreNotRegistered(err error) error {
	if errors.Is(err, ErrNotRegistered) {
		return nil
	}
	return err
}

// Names lists the names of cmaps in order
func Names(cmaps []model.Colormap) []string {
	names := make([]string, len(cmaps))
	for i, c := range cmaps {
		names[i] = c.Name
	}
	return names
}
