package colormap_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lunit-heesungyang/fau-colors/internal/colormap"
	"github.com/lunit-heesungyang/fau-colors/internal/model"
	"github.com/lunit-heesungyang/fau-colors/internal/palettes"
)

// countingRegistry wraps a Store and counts calls to Register
type countingRegistry struct {
	*colormap.Store
	registers int
}

func (r *countingRegistry) Register(name string, cmap model.Colormap) error {
	r.registers++
	return r.Store.Register(name, cmap)
}

func TestRegisterAllIsIdempotent(t *testing.T) {
	reg := &countingRegistry{Store: colormap.NewStore()}
	a := colormap.NewAdapter(reg, nil)
	cmaps := palettes.V2024.Colormaps()

	if err := a.RegisterAll(cmaps); err != nil {
		t.Fatal(err)
	}
	before := reg.Names()
	if err := a.RegisterAll(cmaps); err != nil {
		t.Fatalf("second registration failed: %v", err)
	}

	if reg.registers != len(cmaps) {
		t.Errorf("Register called %d times, want %d", reg.registers, len(cmaps))
	}
	if d := cmp.Diff(before, reg.Names()); d != "" {
		t.Errorf("registry changed (-before +after):\n%s", d)
	}
	if reg.Len() != len(cmaps) {
		t.Errorf("registry holds %d colormaps, want %d", reg.Len(), len(cmaps))
	}
}

func TestRegisterAllConflict(t *testing.T) {
	store := colormap.NewStore()
	a := colormap.NewAdapter(store, nil)
	if err := a.RegisterAll(palettes.V2024.Colormaps()); err != nil {
		t.Fatal(err)
	}

	err := a.RegisterAll(palettes.V2021.Colormaps())
	if err == nil {
		t.Fatal("registering a different palette under a taken name succeeded")
	}
	if !errors.Is(err, colormap.ErrAlreadyRegistered) {
		t.Errorf("got %v, want ErrAlreadyRegistered", err)
	}
	if !strings.Contains(err.Error(), "already registered") {
		t.Errorf("error %q does not mention the conflict", err)
	}

	// The earlier palette stays untouched.
	got, _ := store.Get("fau")
	want := palettes.V2024.Colormaps()[4]
	if want.Name != "fau" || !got.Equal(want, model.Tolerance) {
		t.Errorf("colormap fau was overwritten")
	}
}

func TestRegisterSingleName(t *testing.T) {
	a := colormap.NewAdapter(colormap.NewStore(), nil)
	x1 := model.Colormap{Name: "x", Colors: []model.RGB{{R: 1}}}
	x2 := model.Colormap{Name: "x", Colors: []model.RGB{{G: 1}}}

	if err := a.RegisterAll([]model.Colormap{x1}); err != nil {
		t.Fatal(err)
	}
	err := a.RegisterAll([]model.Colormap{x2})
	if err == nil || !strings.Contains(err.Error(), "already registered") {
		t.Errorf("got %v, want an already registered error", err)
	}
}

func TestUnregisterAll(t *testing.T) {
	store := colormap.NewStore()
	a := colormap.NewAdapter(store, nil)
	g := palettes.V2019
	if err := a.RegisterAll(g.Colormaps()); err != nil {
		t.Fatal(err)
	}
	if err := a.UnregisterAll(palettes.Names(g)); err != nil {
		t.Fatal(err)
	}
	if store.Len() != 0 {
		t.Errorf("registry still holds %v", store.Names())
	}

	err := a.UnregisterAll(palettes.Names(g))
	if !errors.Is(err, colormap.ErrNotRegistered) {
		t.Errorf("got %v, want ErrNotRegistered", err)
	}
	if colormap.IgnoreNotRegistered(err) != nil {
		t.Error("IgnoreNotRegistered kept a not-registered error")
	}
	other := errors.New("boom")
	if colormap.IgnoreNotRegistered(other) != other {
		t.Error("IgnoreNotRegistered dropped an unrelated error")
	}
}

func TestLegacyFallback(t *testing.T) {
	var registered []string
	var cmaps []model.Colormap
	var unregistered []string
	legacy := colormap.LegacyFuncs{
		Register: func(name string, cmap model.Colormap) error {
			registered = append(registered, name)
			cmaps = append(cmaps, cmap)
			return nil
		},
		Unregister: func(name string) error {
			unregistered = append(unregistered, name)
			return nil
		},
	}
	a := colormap.NewAdapter(legacy, nil)

	demo := model.Colormap{Name: "demo", Colors: []model.RGB{{}}}
	if err := a.RegisterAll([]model.Colormap{demo}); err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff([]string{"demo"}, registered); d != "" {
		t.Errorf("legacy register calls (-want +got):\n%s", d)
	}
	if d := cmp.Diff([]model.Colormap{demo}, cmaps); d != "" {
		t.Errorf("legacy register colormaps (-want +got):\n%s", d)
	}

	if err := a.UnregisterAll([]string{"demo"}); err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff([]string{"demo"}, unregistered); d != "" {
		t.Errorf("legacy unregister calls (-want +got):\n%s", d)
	}
}

func TestLegacyErrorsPropagate(t *testing.T) {
	conflict := errors.New(`a colormap named "demo" is already registered`)
	a := colormap.NewAdapter(colormap.LegacyFuncs{
		Register: func(string, model.Colormap) error { return conflict },
	}, nil)
	err := a.RegisterAll([]model.Colormap{{Name: "demo"}})
	if !errors.Is(err, conflict) {
		t.Errorf("got %v, want the legacy error", err)
	}
}

func TestNoRegistry(t *testing.T) {
	a := colormap.NewAdapter(struct{}{}, nil)
	if err := a.RegisterAll(nil); !errors.Is(err, colormap.ErrNoRegistry) {
		t.Errorf("RegisterAll: got %v, want ErrNoRegistry", err)
	}
	if err := a.UnregisterAll(nil); !errors.Is(err, colormap.ErrNoRegistry) {
		t.Errorf("UnregisterAll: got %v, want ErrNoRegistry", err)
	}
}

func TestStoreContinuous(t *testing.T) {
	store := colormap.NewStore()
	cm := model.Colormap{Name: "rg", Colors: []model.RGB{{R: 1}, {G: 1}}}
	if err := store.Register("rg", cm); err != nil {
		t.Fatal(err)
	}
	p, ok := store.Continuous("rg")
	if !ok {
		t.Fatal("registered colormap not found")
	}
	if got, want := p.Map(0.9), (model.RGB{G: 1}).RGBA(); got != want {
		t.Errorf("Map(0.9) = %v, want %v", got, want)
	}
	if _, ok := store.Continuous("missing"); ok {
		t.Error("found a colormap that was never registered")
	}
}
